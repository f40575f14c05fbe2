// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aistudytec/server/auth"
	"github.com/aistudytec/server/models"
)

// MasterUsername is the login identifier of the bootstrap account.
const MasterUsername = "Master"

// EnsureMaster guarantees a single master account exists. Runs once at
// process start, before the server accepts requests; when a master row is
// already present it is a no-op.
func EnsureMaster(db *sql.DB, password string) error {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE type = ?)
	`, models.RoleMaster).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for master account: %w", err)
	}

	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash master password: %w", err)
	}

	masterID := auth.NewID()
	_, err = db.Exec(`
		INSERT INTO users (id, type, name, username, password)
		VALUES (?, ?, ?, ?, ?)
	`, masterID, models.RoleMaster, "Master Administrator", MasterUsername, hash)
	if err != nil {
		return fmt.Errorf("failed to create master account: %w", err)
	}

	slog.Info("master account created", "user_id", masterID, "username", MasterUsername)

	return nil
}
