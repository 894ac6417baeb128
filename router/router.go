// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/linkboard/cliparse"
	"github.com/danielhkuo/linkboard/handlers"
	"github.com/danielhkuo/linkboard/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	itemHandler := handlers.NewItemHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Items (feed, submission, deletion)
	mux.HandleFunc("GET /items", middleware.WithLogging(itemHandler.List))
	mux.HandleFunc("POST /items", middleware.WithLogging(itemHandler.Create))
	mux.HandleFunc("DELETE /items/{id}", middleware.WithLogging(itemHandler.Delete))

	// Votes
	mux.HandleFunc("POST /items/{id}/vote", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("DELETE /items/{id}/vote", middleware.WithLogging(voteHandler.Remove))

	// Comments
	mux.HandleFunc("GET /items/{id}/comments", middleware.WithLogging(commentHandler.List))
	mux.HandleFunc("POST /items/{id}/comments", middleware.WithLogging(commentHandler.Create))
	mux.HandleFunc("DELETE /comments/{id}", middleware.WithLogging(commentHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("linkboard API v1"))
	})

	return mux
}
