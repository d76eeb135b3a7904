// Package server exposes a [nav.Navigator] over HTTP.
//
// The server is a thin driver: it parses requests, forwards them to the
// navigator, and renders results as JSON. All navigation state lives in the
// navigator, which serializes concurrent requests.
//
// # Routes
//
//	GET  /healthz         liveness probe
//	GET  /focus           current focus identifier and layout path
//	POST /navigate        {"directive": "down"} or {"directive": "button:R1"}
//	POST /jump            {"focus_id": "hades"}
//	POST /items/{path...} insert into a growable layout; the focus id is
//	                      generated when the body omits it
//	GET  /tree            snapshot of the whole tree in layout-file JSON
//	GET  /grid/{path...}  text grid of one layout
//	GET  /diagram         Graphviz diagram, ?format=dot (default) or svg
//
// Layout paths are slash-separated child identifiers below the root; an
// empty path addresses the root.
//
// # Errors
//
// Failures are reported as {"code": ..., "message": ...} with the code from
// [errors.Classify] and a matching HTTP status.
package server
