// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/aistudytec/server/auth"
	"github.com/aistudytec/server/cliparse"
	"github.com/aistudytec/server/middleware"
	"github.com/aistudytec/server/models"
)

// userColumns is the full users row; kept in one place because login and
// registration both return the record exactly as stored.
const userColumns = "id, type, name, email, phone, dob, username, password, class_id"

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Type, &u.Name, &u.Email, &u.Phone,
		&u.DOB, &u.Username, &u.Password, &u.ClassID,
	)
	return u, err
}

type LoginHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewLoginHandler(db *sql.DB, cfg cliparse.Config) *LoginHandler {
	return &LoginHandler{db: db, cfg: cfg}
}

// Login handles POST /api/login
// On success returns the full user record as stored; the response carries
// the password hash (see models.User). Unknown user and wrong password
// produce the same generic failure.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := scanUser(h.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE username = ?
	`, req.User))

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if user.Password == nil || auth.CheckPassword(*user.Password, req.Pass) != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "type", user.Type)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message: "Success",
		User:    user,
	})
}
