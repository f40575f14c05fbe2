// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method-aware patterns.

# Routes

	GET  /            → liveness string
	GET  /health      → "OK"
	POST /api/login
	POST /api/register
	GET  /api/classes
	POST /api/classes
	POST /api/join-class
	GET  /api/history
	POST /api/history

All API routes are wrapped with middleware.WithLogging. The CORS wrapper
is applied around the whole mux in main so preflight requests are handled
before routing.
*/
package router
