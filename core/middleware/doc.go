// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route except the Swagger UI.
//   - rayid: assigns each request a unique Request ID (RayID), injecting it into
//     the context locals and response headers for tracing.
//
// These middleware components are registered globally in cmd/start.go.
package middleware
