// Package integrity provides system health checks for the uniform manager.
//
// # Checks Provided
//
//   - Structure: Checks if the required folders exist in the storage bucket (e.g., /forecast).
//   - Server: Validates that the connected database schema matches the stock and
//     uniform record models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs server schema check.
package integrity
