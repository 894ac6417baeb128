// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/linkboard/auth"
	"github.com/danielhkuo/linkboard/cliparse"
	"github.com/danielhkuo/linkboard/middleware"
	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
)

type CommentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCommentHandler(db *sql.DB, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{db: db, cfg: cfg}
}

// List handles GET /items/{id}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	comments, err := store.ListCommentsForItem(h.db, itemID)
	if err != nil {
		slog.Error("failed to list comments", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, comments)
}

// Create handles POST /items/{id}/comments
//
// Sequence: verify the item exists, persist the comment, then
// read-modify-write the item's commentCount. The two writes are not atomic;
// a failure between them leaves the count one low until another write
// refreshes it, which the design accepts.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := auth.FromRequest(r)
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID := r.PathValue("id")

	var req models.CreateCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := sanitizeText(req.Text, models.CommentMaxLen)
	if strings.TrimSpace(text) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Comment text is required")
		return
	}

	item, err := store.GetItem(h.db, itemID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to read item", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		UserID:    p.UserID,
		UserName:  p.UserDetails,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := store.InsertComment(h.db, comment); err != nil {
		slog.Error("failed to insert comment", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	item.CommentCount++
	if err := store.ReplaceItem(h.db, item); err != nil {
		slog.Error("failed to update comment count", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update comment count")
		return
	}

	slog.Info("comment created", "comment_id", comment.ID, "item_id", itemID, "user_id", p.UserID)

	middleware.JSONResponse(w, http.StatusCreated, comment)
}

// Delete handles DELETE /comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p := auth.FromRequest(r)
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := r.PathValue("id")

	comment, err := store.GetComment(h.db, id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Comment not found")
		return
	}
	if err != nil {
		slog.Error("failed to read comment", "error", err, "comment_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if comment.UserID != p.UserID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized to delete this comment")
		return
	}

	if err := store.DeleteComment(h.db, id); err != nil {
		slog.Error("failed to delete comment", "error", err, "comment_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	item, err := store.GetItem(h.db, comment.ItemID)
	if err == sql.ErrNoRows {
		// Orphaned comment: its item is already gone, so there is no
		// counter to maintain. Deliberately not an error.
		slog.Warn("deleted orphaned comment", "comment_id", id, "item_id", comment.ItemID)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to read item", "error", err, "item_id", comment.ItemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if item.CommentCount > 0 {
		item.CommentCount--
	}
	if err := store.ReplaceItem(h.db, item); err != nil {
		slog.Error("failed to update comment count", "error", err, "item_id", comment.ItemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update comment count")
		return
	}

	slog.Info("comment deleted", "comment_id", id, "item_id", comment.ItemID, "user_id", p.UserID)

	w.WriteHeader(http.StatusNoContent)
}
