// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/linkboard/models"
)

// VoteAction is the vote-record mutation the reconciliation engine decided on.
type VoteAction int

const (
	// VoteActionNone: the caller re-cast their current direction; nothing to write.
	VoteActionNone VoteAction = iota
	// VoteActionCreate: the caller has no live vote; create one.
	VoteActionCreate
	// VoteActionUpdate: the caller flipped direction; update the existing record.
	VoteActionUpdate
)

// VoteDelta is the counter adjustment to apply to an item. Either field may
// be negative; ApplyVoteDelta floors the stored counters at zero.
type VoteDelta struct {
	Upvotes   int
	Downvotes int
}

// ReconcileVote decides how a requested direction changes the caller's vote
// record and the item's counters. existing is nil when the caller has no
// live vote on the item. The engine performs no storage I/O; it returns the
// intended mutations for the handler's write sequence to apply.
//
// requested must already be validated as +1 or -1 - anything else is a
// caller error, not a state-machine case.
func ReconcileVote(existing *models.Vote, requested int) (VoteAction, VoteDelta) {
	if existing == nil {
		return VoteActionCreate, directionDelta(requested, 1)
	}

	if existing.Value == requested {
		// Idempotent re-vote.
		return VoteActionNone, VoteDelta{}
	}

	// Flip: undo the old direction, apply the new one.
	delta := directionDelta(existing.Value, -1)
	inc := directionDelta(requested, 1)
	delta.Upvotes += inc.Upvotes
	delta.Downvotes += inc.Downvotes
	return VoteActionUpdate, delta
}

// RemovalDelta is the counter adjustment for deleting an existing vote.
func RemovalDelta(existing models.Vote) VoteDelta {
	return directionDelta(existing.Value, -1)
}

// ApplyVoteDelta mutates the item's counters, flooring at zero. Under
// concurrent writes a decrement can arrive after the counter already reads
// zero; counters must never go negative regardless.
func ApplyVoteDelta(item *models.Item, delta VoteDelta) {
	item.Upvotes += delta.Upvotes
	item.Downvotes += delta.Downvotes
	if item.Upvotes < 0 {
		item.Upvotes = 0
	}
	if item.Downvotes < 0 {
		item.Downvotes = 0
	}
}

// directionDelta builds a delta of the given sign on the counter matching
// the vote direction.
func directionDelta(direction, sign int) VoteDelta {
	if direction == models.VoteUp {
		return VoteDelta{Upvotes: sign}
	}
	return VoteDelta{Downvotes: sign}
}
