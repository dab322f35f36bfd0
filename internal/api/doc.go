// Package api provides the HTTP surface of the operator: health probes for
// load balancers and monitoring, Prometheus metrics, and a small read-only
// management API.
//
// # Endpoints
//
//   - GET /health           aggregate verdict; 200 only when fully healthy
//   - GET /health/detailed  full evaluation; 503 only when quorum is lost
//   - GET /ready            readiness quorum; 200 iff every group has a passing member
//   - GET /live             process liveness; always 200
//   - GET /metrics          Prometheus exposition
//   - GET /api/v1/profiles  profile catalog
//   - GET /api/v1/status    version and registry summary
//
// Health responses are evaluated fresh per request, carry Cache-Control:
// no-cache, and serve their documented body shapes directly. Management
// responses under /api/v1 wrap payloads in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "error_code",
//	    "message": "Human-readable error message"
//	  }
//	}
package api
