// Package middleware wires a shield into a gin HTTP server.
//
// Shield derives the rule tree path from the request URL (or a custom
// PathFunc), consults the shield, and aborts with the denial's HTTP status
// and a JSON error body when the request is refused. BearerClaims parses an
// optional bearer token into the request context so claim-based rules can
// see it; it never rejects requests itself — whether authentication is
// required is the permission tree's decision.
package middleware
