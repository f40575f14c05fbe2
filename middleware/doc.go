// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Components

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: consistent JSON output
  - ParseJSONBody: JSON decoding plus `validate` tag enforcement
  - CORS: permissive cross-origin policy (any origin, preflight handled)

# Error Format

ErrorResponse produces:

	{"error": "Not Found", "message": "Class not found"}

The error field is the HTTP status text; message carries the short
human-readable detail.
*/
package middleware
