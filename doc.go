// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the AISTUDYTEC API server.

AISTUDYTEC is a minimal educational-platform backend: account
registration and login for teachers and students, classroom join codes,
and quiz/activity history records, all stored in a single embedded
SQLite database file.

# Starting the Server

The server runs with no required configuration:

	go run main.go

Settings can come from a .env file, environment variables, or CLI flags:

	PORT=5000 DATABASE_PATH=aistudytec.db go run main.go
	go run main.go -p 5000 -d aistudytec.db

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_PATH (-d): SQLite file path (default: aistudytec.db)
  - MASTER_PASSWORD (--master-pass): Bootstrap master account password

# Startup Sequence

 1. Load .env (if present) and parse configuration
 2. Open the SQLite file and ping it
 3. Create tables idempotently
 4. Bootstrap the master account if no master row exists
 5. Serve the JSON API with permissive CORS

Any failure in steps 1-4 is fatal.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, register, classes, history)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON + validation helpers
  - models: Request/response types
  - auth: Identity generation and password hashing
  - db: Schema creation and master bootstrap
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
