// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aistudytec/server/models"
	"github.com/aistudytec/server/testutil"
)

func intPtr(i int) *int { return &i }

func TestCreateHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHistoryHandler(conn, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "full record",
			requestBody: models.CreateHistoryRequest{
				Type:        "quiz",
				UserID:      "U1",
				StudentName: "Ana",
				Theme:       "fractions",
				Score:       intPtr(8),
				Total:       intPtr(10),
				Percentage:  intPtr(80),
				Details:     `{"questions":10}`,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "minimal record",
			requestBody: models.CreateHistoryRequest{
				Type: "practice",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing type",
			requestBody:    map[string]string{"theme": "fractions"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/history", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateHistory(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreateHistoryResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp.Msg != "Saved" {
					t.Errorf("Expected ack 'Saved', got %q", resp.Msg)
				}
			}
		})
	}
}

func TestCreateHistoryStoresSnapshot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHistoryHandler(conn, cfg)

	body, _ := json.Marshal(models.CreateHistoryRequest{
		Type:        "quiz",
		UserID:      "U1",
		StudentName: "Ana Maria",
		Score:       intPtr(5),
		Total:       intPtr(10),
		Percentage:  intPtr(50),
	})
	req := httptest.NewRequest("POST", "/api/history", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateHistory(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create failed: %d - %s", w.Code, w.Body.String())
	}

	var snapshot, date string
	var score int
	err := conn.QueryRow(`
		SELECT student_name_snapshot, date, score FROM history WHERE user_id = 'U1'
	`).Scan(&snapshot, &date, &score)
	if err != nil {
		t.Fatalf("Failed to query history: %v", err)
	}

	if snapshot != "Ana Maria" {
		t.Errorf("Expected snapshot 'Ana Maria', got %q", snapshot)
	}
	if score != 5 {
		t.Errorf("Expected score 5, got %d", score)
	}
	// Display timestamp is DD/MM/YYYY HH:MM
	if _, err := time.Parse(displayDate, date); err != nil {
		t.Errorf("Stored date %q does not match display format: %v", date, err)
	}
}

func TestListHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHistoryHandler(conn, cfg)

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	oldU1 := testutil.AddTestHistory(t, conn, "U1", "quiz", base)
	newU1 := testutil.AddTestHistory(t, conn, "U1", "quiz", base.Add(2*time.Hour))
	u2 := testutil.AddTestHistory(t, conn, "U2", "practice", base.Add(time.Hour))

	t.Run("user filter newest first", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/history?userId=U1", nil)
		w := httptest.NewRecorder()

		handler.ListHistory(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var records []models.HistoryRecord
		if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("Expected 2 records for U1, got %d", len(records))
		}
		if records[0].ID != newU1 || records[1].ID != oldU1 {
			t.Errorf("Expected newest-first order [%s %s], got [%s %s]",
				newU1, oldU1, records[0].ID, records[1].ID)
		}
		for _, rec := range records {
			if rec.UserID == nil || *rec.UserID != "U1" {
				t.Errorf("Expected only U1 records, got %v", rec.UserID)
			}
		}
	})

	t.Run("unfiltered newest first", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/history", nil)
		w := httptest.NewRecorder()

		handler.ListHistory(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var records []models.HistoryRecord
		if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("Expected 3 records, got %d", len(records))
		}
		want := []string{newU1, u2, oldU1}
		for i, id := range want {
			if records[i].ID != id {
				t.Errorf("Position %d: expected %s, got %s", i, id, records[i].ID)
			}
		}
	})

	t.Run("empty result is an array", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/history?userId=U999", nil)
		w := httptest.NewRecorder()

		handler.ListHistory(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]\n" && body != "[]" {
			t.Errorf("Expected [], got %s", body)
		}
	})
}
