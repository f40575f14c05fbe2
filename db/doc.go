// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and master-account bootstrap.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Teachers, students, and the master account
  - classes: Classroom records with unique join codes
  - history: Immutable quiz/activity result records

# Constraints

Uniqueness is enforced at the storage level rather than by pre-checks,
so concurrent writers cannot race past it:

  - users.username (unique; NULL allowed for accounts without credentials)
  - classes.code (unique)

# Bootstrap

EnsureMaster runs once at startup, after CreateSchema, and inserts the
single privileged master account if no master row exists. Any failure
during schema creation or bootstrap is fatal to startup.
*/
package db
