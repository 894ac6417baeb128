// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// There are deliberately no foreign keys between the tables: cascade cleanup
// on item deletion is performed by the handlers, and orphaned vote/comment
// rows left by a partial cascade are tolerated (reads always start from live
// items). The UNIQUE constraint on vote enforces one live vote per
// (item, user) pair.
const schema = `
-- Items
CREATE TABLE IF NOT EXISTS item (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    link TEXT NOT NULL,
    author_id TEXT NOT NULL,
    author_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    upvotes INTEGER NOT NULL DEFAULT 0,
    downvotes INTEGER NOT NULL DEFAULT 0,
    comment_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_item_author_id ON item(author_id);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    vote INTEGER NOT NULL CHECK (vote IN (1, -1)),
    created_at TIMESTAMP NOT NULL,
    UNIQUE (item_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_item_id ON vote(item_id);
CREATE INDEX IF NOT EXISTS idx_vote_user_id ON vote(user_id);

-- Comments
CREATE TABLE IF NOT EXISTS comment (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    user_name TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comment_item_id ON comment(item_id);
`
