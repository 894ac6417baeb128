// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/linkboard/auth"
	"github.com/danielhkuo/linkboard/cliparse"
	"github.com/danielhkuo/linkboard/middleware"
	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Cast handles POST /items/{id}/vote
//
// The write sequence is ordered and non-atomic: the vote record is
// persisted before the item counters, so a crash in between leaves the
// vote records as the more authoritative side (counters could be recomputed
// from them). There is no rollback; re-issuing the same direction is a safe
// no-op.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	p := auth.FromRequest(r)
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID := r.PathValue("id")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Vote != models.VoteUp && req.Vote != models.VoteDown {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote must be 1 or -1")
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

	var existing *models.Vote
	vote, err := store.GetVote(h.db, itemID, p.UserID)
	if err == nil {
		existing = &vote
	} else if err != sql.ErrNoRows {
		slog.Error("failed to read vote", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	action, delta := ReconcileVote(existing, req.Vote)

	switch action {
	case VoteActionCreate:
		newVote := models.Vote{
			ID:        uuid.NewString(),
			ItemID:    itemID,
			UserID:    p.UserID,
			Value:     req.Vote,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.InsertVote(h.db, newVote); err != nil {
			slog.Error("failed to insert vote", "error", err, "item_id", itemID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
			return
		}
	case VoteActionUpdate:
		existing.Value = req.Vote
		if err := store.ReplaceVote(h.db, *existing); err != nil {
			slog.Error("failed to update vote", "error", err, "item_id", itemID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
			return
		}
	case VoteActionNone:
		// Idempotent re-vote: no writes, just report current state.
	}

	if action != VoteActionNone {
		ApplyVoteDelta(&item, delta)
		if err := store.ReplaceItem(h.db, item); err != nil {
			// The vote record is already persisted; the counter write is
			// not compensated (rollback-free protocol).
			slog.Error("failed to update item counters", "error", err, "item_id", itemID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update vote counts")
			return
		}
		slog.Info("vote cast", "item_id", itemID, "user_id", p.UserID, "vote", req.Vote)
	}

	userVote := req.Vote
	middleware.JSONResponse(w, http.StatusOK, models.VoteStateResponse{
		Upvotes:   item.Upvotes,
		Downvotes: item.Downvotes,
		UserVote:  &userVote,
	})
}

// Remove handles DELETE /items/{id}/vote
//
// Removal sequence: find the caller's vote, read the item, write the
// decremented counters (floored at zero), then delete the vote record.
func (h *VoteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	p := auth.FromRequest(r)
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID := r.PathValue("id")

	vote, err := store.GetVote(h.db, itemID, p.UserID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No vote to remove")
		return
	}
	if err != nil {
		slog.Error("failed to read vote", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	item, err := store.GetItem(h.db, itemID)
	if err == sql.ErrNoRows {
		// The item is gone; this vote is an orphan a past cascade left
		// behind. Orphans are unreachable through the feed, so leave it.
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to read item", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ApplyVoteDelta(&item, RemovalDelta(vote))
	if err := store.ReplaceItem(h.db, item); err != nil {
		slog.Error("failed to update item counters", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update vote counts")
		return
	}

	if err := store.DeleteVote(h.db, vote.ID); err != nil {
		// Counters already decremented; the next removal attempt will
		// decrement again but the zero floor bounds the damage.
		slog.Error("failed to delete vote", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove vote")
		return
	}

	slog.Info("vote removed", "item_id", itemID, "user_id", p.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteStateResponse{
		Upvotes:   item.Upvotes,
		Downvotes: item.Downvotes,
		UserVote:  nil,
	})
}
