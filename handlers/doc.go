// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Linkboard API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ItemHandler: feed listing, item submission, item deletion
  - VoteHandler: casting and removing votes
  - CommentHandler: listing, creating and deleting comments

Handlers are created via constructor functions that accept *sql.DB and Config:

	itemHandler := handlers.NewItemHandler(db, cfg)

# Vote Reconciliation

The pure vote state machine is implemented in reconcile.go:

	action, delta := handlers.ReconcileVote(existingVote, requested)

Casting with no prior vote creates a record and increments the matching
counter; re-casting the same direction is a no-op; casting the opposite
direction flips the record and moves one count across; removal deletes the
record and decrements, floored at zero.

# Counter Maintenance

Item counters (upvotes, downvotes, commentCount) are denormalized caches
over the vote and comment collections. Every mutation applies an ordered
sequence of independent writes with no cross-record transaction and no
rollback: vote records are written before item counters, cascades continue
past per-collection failures, and a comment whose item has vanished is
cleaned up without touching any counter. Concurrent read-modify-write
cycles on the same item can lose an update; that is an accepted property
of the design, not a bug.

# Feed

The feed aggregator is implemented in feed.go:

	feed, err := handlers.BuildFeed(db, userID)

Items are ordered by net score (upvotes - downvotes) descending with
createdAt descending as the tie-break, and annotated with the requesting
user's own vote where one exists.
*/
package handlers
