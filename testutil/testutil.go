// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aistudytec/server/auth"
	"github.com/aistudytec/server/cliparse"
	"github.com/aistudytec/server/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to one connection: in-memory sqlite databases are
// per-connection, so a second connection would see an empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5000,
		DatabasePath:   ":memory:",
		MasterPassword: "test-master-pass",
	}
}

// CreateTestClass inserts a class and returns its ID and join code
func CreateTestClass(t *testing.T, conn *sql.DB, name, teacherID string) (classID, code string) {
	t.Helper()

	classID = auth.NewID()
	code = auth.GenerateJoinCode()

	_, err := conn.Exec(`
		INSERT INTO classes (id, name, code, theme, teacher_id, created_at)
		VALUES (?, ?, ?, NULL, ?, ?)
	`, classID, name, code, teacherID, time.Now().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test class: %v", err)
	}

	return classID, code
}

// CreateTestUser inserts a user with hashed credentials and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, userType, name, username, password string) string {
	t.Helper()

	userID := auth.NewID()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, type, name, username, password)
		VALUES (?, ?, ?, ?, ?)
	`, userID, userType, name, username, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// AddTestHistory inserts a history record with an explicit sortable
// timestamp and returns the record ID
func AddTestHistory(t *testing.T, conn *sql.DB, userID, recordType string, createdAt time.Time) string {
	t.Helper()

	recordID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO history (id, type, user_id, date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, recordID, recordType, userID,
		createdAt.Format("02/01/2006 15:04"),
		createdAt.Format("2006-01-02T15:04:05.000000000Z07:00"))
	if err != nil {
		t.Fatalf("Failed to create test history record: %v", err)
	}

	return recordID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
