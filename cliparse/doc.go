// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags take precedence over environment variables, which take
precedence over built-in defaults:

	go run main.go -p 5000 -d aistudytec.db

Or with environment variables:

	PORT=5000 DATABASE_PATH=aistudytec.db go run main.go

# Settings

All settings are optional:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_PATH (-d): SQLite database file (default: aistudytec.db)
  - MASTER_PASSWORD (--master-pass): Bootstrap master account password.
    Defaults to the historical literal so a fresh install is immediately
    usable; override it for anything exposed to a network.
*/
package cliparse
