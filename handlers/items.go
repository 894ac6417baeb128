// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/danielhkuo/linkboard/auth"
	"github.com/danielhkuo/linkboard/cliparse"
	"github.com/danielhkuo/linkboard/middleware"
	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
)

type ItemHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewItemHandler(db *sql.DB, cfg cliparse.Config) *ItemHandler {
	return &ItemHandler{db: db, cfg: cfg}
}

// List handles GET /items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if p := auth.FromRequest(r); p != nil {
		userID = p.UserID
	}

	feed, err := BuildFeed(h.db, userID)
	if err != nil {
		slog.Error("failed to build feed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, feed)
}

// Create handles POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := auth.FromRequest(r)
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.Link == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title, description and link are required")
		return
	}
	if !validLink(req.Link) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "link must be a valid http(s) URL")
		return
	}

	item := models.Item{
		ID:          uuid.NewString(),
		Title:       sanitizeText(req.Title, models.TitleMaxLen),
		Description: sanitizeText(req.Description, models.DescriptionMaxLen),
		Link:        req.Link,
		AuthorID:    p.UserID,
		AuthorName:  p.UserDetails,
		CreatedAt:   time.Now().UTC(),
	}
	if item.Title == "" || item.Description == "" {
		// Input was markup-only and sanitized away to nothing.
		middleware.ErrorResponse(w, http.StatusBadRequest, "title, description and link are required")
		return
	}

	if err := store.InsertItem(h.db, item); err != nil {
		slog.Error("failed to insert item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	slog.Info("item created", "item_id", item.ID, "author_id", item.AuthorID)

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// Delete handles DELETE /items/{id}
//
// The cascade is three independent deletes (item, then its votes, then its
// comments) with no transaction. A failure mid-cascade leaves orphaned
// child rows behind; that is logged and tolerated rather than fatal,
// because every read path joins starting from live items and orphans are
// simply unreachable.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p := auth.FromRequest(r)
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := r.PathValue("id")

	item, err := store.GetItem(h.db, id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to read item", "error", err, "item_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if item.AuthorID != p.UserID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized to delete this item")
		return
	}

	if err := store.DeleteItem(h.db, id); err != nil {
		slog.Error("failed to delete item", "error", err, "item_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	if err := store.DeleteVotesForItem(h.db, id); err != nil {
		slog.Warn("cascade: failed to delete votes for item", "error", err, "item_id", id)
	}
	if err := store.DeleteCommentsForItem(h.db, id); err != nil {
		slog.Warn("cascade: failed to delete comments for item", "error", err, "item_id", id)
	}

	slog.Info("item deleted", "item_id", id, "author_id", p.UserID)

	w.WriteHeader(http.StatusNoContent)
}

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips any markup from user-supplied text and truncates it
// to max runes.
func sanitizeText(s string, max int) string {
	s = strings.TrimSpace(textPolicy.Sanitize(s))
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max])
	}
	return s
}

func validLink(link string) bool {
	u, err := url.ParseRequestURI(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
