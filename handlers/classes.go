// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/aistudytec/server/auth"
	"github.com/aistudytec/server/cliparse"
	"github.com/aistudytec/server/middleware"
	"github.com/aistudytec/server/models"
)

type ClassHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewClassHandler(db *sql.DB, cfg cliparse.Config) *ClassHandler {
	return &ClassHandler{db: db, cfg: cfg}
}

// CreateClass handles POST /api/classes
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClassRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	classID := auth.NewID()
	code := auth.GenerateJoinCode()

	_, err := h.db.Exec(`
		INSERT INTO classes (id, name, code, theme, teacher_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, classID, req.Name, code, nullable(req.Theme), req.TeacherID,
		time.Now().Format(time.RFC3339))

	if err != nil {
		slog.Error("failed to insert class", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create class")
		return
	}

	slog.Info("class created", "class_id", classID, "code", code, "teacher_id", req.TeacherID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateClassResponse{
		ID:   classID,
		Code: code,
	})
}

// ListClasses handles GET /api/classes
// Optional ?teacherId= filter restricts the list to one teacher's classes
func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	teacherID := r.URL.Query().Get("teacherId")

	var rows *sql.Rows
	var err error
	if teacherID != "" {
		rows, err = h.db.Query(`
			SELECT id, name, code, theme, teacher_id, created_at
			FROM classes
			WHERE teacher_id = ?
		`, teacherID)
	} else {
		rows, err = h.db.Query(`
			SELECT id, name, code, theme, teacher_id, created_at
			FROM classes
		`)
	}

	if err != nil {
		slog.Error("failed to query classes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Theme, &c.TeacherID, &c.CreatedAt); err != nil {
			slog.Error("failed to scan class", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		classes = append(classes, c)
	}

	middleware.JSONResponse(w, http.StatusOK, classes)
}

// JoinClass handles POST /api/join-class
// Looks up a class by its join code and returns the full record. Nothing
// is written: enrollment is only persisted through registration.
func (h *ClassHandler) JoinClass(w http.ResponseWriter, r *http.Request) {
	var req models.JoinClassRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var c models.Class
	err := h.db.QueryRow(`
		SELECT id, name, code, theme, teacher_id, created_at
		FROM classes
		WHERE code = ?
	`, req.Code).Scan(&c.ID, &c.Name, &c.Code, &c.Theme, &c.TeacherID, &c.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Class not found")
		return
	}
	if err != nil {
		slog.Error("failed to query class by code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}
