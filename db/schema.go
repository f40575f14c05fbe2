// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL CHECK (type IN ('teacher', 'student', 'master')),
    name TEXT NOT NULL,
    email TEXT,
    phone TEXT,
    dob TEXT,
    username TEXT UNIQUE,
    password TEXT,
    class_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_users_type ON users(type);

-- Classes
CREATE TABLE IF NOT EXISTS classes (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    code TEXT UNIQUE NOT NULL,
    theme TEXT,
    teacher_id TEXT NOT NULL,
    created_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_classes_teacher_id ON classes(teacher_id);

-- History
CREATE TABLE IF NOT EXISTS history (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    user_id TEXT,
    student_name_snapshot TEXT,
    theme TEXT,
    score INTEGER,
    total INTEGER,
    percentage INTEGER,
    date TEXT,
    created_at TEXT,
    details TEXT
);

CREATE INDEX IF NOT EXISTS idx_history_user_id ON history(user_id);
CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
`
