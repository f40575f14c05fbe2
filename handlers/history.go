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

// displayDate is the human-facing timestamp format stored in history.date
const displayDate = "02/01/2006 15:04"

// sortableDate orders history rows. Fixed-width fractional seconds keep
// lexicographic order equal to chronological order.
const sortableDate = "2006-01-02T15:04:05.000000000Z07:00"

type HistoryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHistoryHandler(db *sql.DB, cfg cliparse.Config) *HistoryHandler {
	return &HistoryHandler{db: db, cfg: cfg}
}

// CreateHistory handles POST /api/history
// Records are write-once; the student name is snapshotted into the row so
// the display value is independent of the users table.
func (h *HistoryHandler) CreateHistory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHistoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := time.Now()
	recordID := auth.NewID()

	_, err := h.db.Exec(`
		INSERT INTO history (id, type, user_id, student_name_snapshot, theme,
		                     score, total, percentage, date, created_at, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recordID, req.Type, nullable(req.UserID), nullable(req.StudentName),
		nullable(req.Theme), req.Score, req.Total, req.Percentage,
		now.Format(displayDate), now.Format(sortableDate), nullable(req.Details))

	if err != nil {
		slog.Error("failed to insert history record", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save history")
		return
	}

	slog.Info("history record created", "record_id", recordID, "type", req.Type)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateHistoryResponse{
		Msg: "Saved",
	})
}

// ListHistory handles GET /api/history
// Optional ?userId= filter restricts the list to one user's records.
// Always newest first.
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	var rows *sql.Rows
	var err error
	if userID != "" {
		rows, err = h.db.Query(`
			SELECT id, type, user_id, student_name_snapshot, theme,
			       score, total, percentage, date, created_at, details
			FROM history
			WHERE user_id = ?
			ORDER BY created_at DESC
		`, userID)
	} else {
		rows, err = h.db.Query(`
			SELECT id, type, user_id, student_name_snapshot, theme,
			       score, total, percentage, date, created_at, details
			FROM history
			ORDER BY created_at DESC
		`)
	}

	if err != nil {
		slog.Error("failed to query history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	records := []models.HistoryRecord{}
	for rows.Next() {
		var rec models.HistoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.Type, &rec.UserID, &rec.StudentName, &rec.Theme,
			&rec.Score, &rec.Total, &rec.Percentage, &rec.Date, &rec.CreatedAt, &rec.Details,
		); err != nil {
			slog.Error("failed to scan history record", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		records = append(records, rec)
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}
