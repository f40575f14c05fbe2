// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Validation

Each endpoint has an explicit request struct; required fields carry a
`validate:"required"` tag checked by go-playground/validator before any
database access:

	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil { ... }

# Domain Types

Domain structs (User, Class, HistoryRecord) serialize with the same keys
as their database columns. Nullable columns map to pointer fields so a
NULL round-trips as JSON null rather than a zero value.
*/
package models
