// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) handles the server startup;
// this package only defines the configuration structure: listen port, the API key
// protecting every non-documentation route, and the request body limit.
package server
