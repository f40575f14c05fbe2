// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aistudytec/server/auth"
	"github.com/aistudytec/server/cliparse"
	"github.com/aistudytec/server/middleware"
	"github.com/aistudytec/server/models"
)

type RegisterHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRegisterHandler(db *sql.DB, cfg cliparse.Config) *RegisterHandler {
	return &RegisterHandler{db: db, cfg: cfg}
}

// nullable maps an absent optional field to SQL NULL instead of ""
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isUniqueViolation reports whether err is a uniqueness-constraint
// failure on the given column, e.g. "users.username"
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// Register handles POST /api/register
// Duplicate usernames are rejected by the users.username unique
// constraint; there is no pre-check, so concurrent registrations cannot
// both slip through.
func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Resolve the class before inserting anything: an unknown join code
	// must leave no user row behind
	var classID *string
	if req.Type == models.RoleStudent && req.ClassCode != "" {
		var id string
		err := h.db.QueryRow(`
			SELECT id FROM classes WHERE code = ?
		`, req.ClassCode).Scan(&id)

		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusNotFound, "Invalid class code")
			return
		}
		if err != nil {
			slog.Error("failed to resolve class code", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		classID = &id
	}

	var password *string
	if req.Pass != "" {
		hash, err := auth.HashPassword(req.Pass)
		if err != nil {
			slog.Error("failed to hash password", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		password = &hash
	}

	userID := auth.NewID()
	_, err := h.db.Exec(`
		INSERT INTO users (id, type, name, email, phone, dob, username, password, class_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, userID, req.Type, req.Name, nullable(req.Email), nullable(req.Phone),
		nullable(req.DOB), nullable(req.User), password, classID)

	if err != nil {
		if isUniqueViolation(err, "users.username") {
			middleware.ErrorResponse(w, http.StatusConflict, "Username already exists")
			return
		}
		slog.Error("failed to insert user", "error", err)
		// Raw storage error in the response is long-standing behavior
		// that existing clients display verbatim
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Re-read so the response is the record exactly as stored
	user, err := scanUser(h.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE id = ?
	`, userID))
	if err != nil {
		slog.Error("failed to re-read user", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("user registered", "user_id", userID, "type", req.Type)

	middleware.JSONResponse(w, http.StatusCreated, user)
}
