// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the AISTUDYTEC API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - LoginHandler: Credential verification
  - RegisterHandler: Teacher/student account creation
  - ClassHandler: Class creation, listing, and join-code lookup
  - HistoryHandler: Quiz/activity record creation and listing

Handlers are created via constructor functions that accept *sql.DB and Config:

	loginHandler := handlers.NewLoginHandler(db, cfg)

# Request Flow

Every handler is stateless per request:

	POST /api/login      → Login (200 user record, 401 generic failure)
	POST /api/register   → Register (201 created record, 409 duplicate
	                       username, 404 unknown class code)
	POST /api/classes    → CreateClass (201 {id, code})
	GET  /api/classes    → ListClasses (?teacherId= filter)
	POST /api/join-class → JoinClass (200 class record, 404 unknown code)
	POST /api/history    → CreateHistory (201 ack)
	GET  /api/history    → ListHistory (?userId= filter, newest first)

# Uniqueness

Duplicate usernames and join codes are rejected by unique constraints in
the schema, not by pre-checks, so the conflict signal is the constraint
violation itself (see isUniqueViolation in register.go).

# Known Exposure

Login and register responses include the stored bcrypt password hash,
because existing clients consume the row verbatim. Do not extend this
pattern to new endpoints.
*/
package handlers
