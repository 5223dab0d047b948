// Package integrity provides system health checks for the Ingredient Manager.
//
// Unlike the 'containers' and 'transfer' packages, which serve the domain, this
// package validates the infrastructure the domain relies on.
//
// # Checks Provided
//
//   - Structure: Checks that the journal bucket and its folders exist.
//   - Server: Validates that the database schema matches the container models (columns, types).
//   - Contents: Audits persisted containers for counts above capacity, misplaced or duplicated slots and empty rows.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs server schema check.
//   - GET /integrity/contents : Runs the contents audit.
package integrity
