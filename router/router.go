// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/aistudytec/server/cliparse"
	"github.com/aistudytec/server/handlers"
	"github.com/aistudytec/server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(db, cfg)
	registerHandler := handlers.NewRegisterHandler(db, cfg)
	classHandler := handlers.NewClassHandler(db, cfg)
	historyHandler := handlers.NewHistoryHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/login", middleware.WithLogging(loginHandler.Login))
	mux.HandleFunc("POST /api/register", middleware.WithLogging(registerHandler.Register))

	// Classes (one endpoint, two verbs)
	mux.HandleFunc("POST /api/classes", middleware.WithLogging(classHandler.CreateClass))
	mux.HandleFunc("GET /api/classes", middleware.WithLogging(classHandler.ListClasses))
	mux.HandleFunc("POST /api/join-class", middleware.WithLogging(classHandler.JoinClass))

	// History (one endpoint, two verbs)
	mux.HandleFunc("POST /api/history", middleware.WithLogging(historyHandler.CreateHistory))
	mux.HandleFunc("GET /api/history", middleware.WithLogging(historyHandler.ListHistory))

	// Root endpoint (liveness)
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AISTUDYTEC backend online"))
	})

	return mux
}
