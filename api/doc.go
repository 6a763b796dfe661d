// Package api provides the HTTP REST surface of the referee.
//
// The api package implements:
//   - Game log submission and verdict reporting
//   - Report listing, retrieval and deletion
//   - Rules discovery for clients
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Reports:
//   - POST /api/reports - Submit a game log for validation
//   - GET /api/reports - List all reports, newest first
//   - GET /api/reports/{id} - Get one report
//   - DELETE /api/reports/{id} - Delete a report
//
// Discovery:
//   - GET /api/rules - Input format and the verdict code table
//   - GET /api/health - Liveness probe
//
// WebSocket:
//   - GET /ws - Upgrade; every accepted submission is broadcast here
//
// Request/Response Format:
//
// All endpoints accept and return JSON. A submission is:
//
//	{
//	  "name": "round-12",          // optional label
//	  "log": "7 6 4\n1\n2\n1\n..." // the raw game log, newline separated
//	}
//
// The response carries the stored report, including the verdict:
//
//	{
//	  "id": "1a2b3c4d",
//	  "name": "round-12",
//	  "verdict": { "legal": true, "outcome": 1, "code": 1, ... },
//	  "submitted_at": "..."
//	}
//
// An illegal game is a successful submission: the verdict's code field
// carries the failure. HTTP errors are reserved for malformed requests and
// unknown report IDs:
//
//	{
//	  "error": "error message"
//	}
package api
