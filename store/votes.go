// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"

	"github.com/danielhkuo/linkboard/models"
)

// InsertVote creates a new vote row. The UNIQUE (item_id, user_id)
// constraint rejects a second live vote for the same pair.
func InsertVote(db *sql.DB, vote models.Vote) error {
	_, err := db.Exec(`
		INSERT INTO vote (id, item_id, user_id, vote, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.ItemID, vote.UserID, vote.Value, vote.CreatedAt)
	return err
}

// GetVote reads the caller's vote on an item. Returns sql.ErrNoRows when the
// caller has no live vote.
func GetVote(db *sql.DB, itemID, userID string) (models.Vote, error) {
	var vote models.Vote
	err := db.QueryRow(`
		SELECT id, item_id, user_id, vote, created_at
		FROM vote WHERE item_id = $1 AND user_id = $2
	`, itemID, userID).Scan(&vote.ID, &vote.ItemID, &vote.UserID, &vote.Value, &vote.CreatedAt)
	return vote, err
}

// ReplaceVote updates the direction of an existing vote row.
func ReplaceVote(db *sql.DB, vote models.Vote) error {
	_, err := db.Exec(`UPDATE vote SET vote = $1 WHERE id = $2`, vote.Value, vote.ID)
	return err
}

// DeleteVote removes one vote row by id.
func DeleteVote(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM vote WHERE id = $1`, id)
	return err
}

// ListVotesByUser returns every live vote the user holds, across all items.
func ListVotesByUser(db *sql.DB, userID string) ([]models.Vote, error) {
	rows, err := db.Query(`
		SELECT id, item_id, user_id, vote, created_at
		FROM vote WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make([]models.Vote, 0)
	for rows.Next() {
		var vote models.Vote
		if err := rows.Scan(&vote.ID, &vote.ItemID, &vote.UserID, &vote.Value, &vote.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, vote)
	}

	return votes, rows.Err()
}

// CountVotesForItem reports how many live vote rows reference the item.
func CountVotesForItem(db *sql.DB, itemID string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM vote WHERE item_id = $1`, itemID).Scan(&n)
	return n, err
}

// DeleteVotesForItem removes every vote row referencing the item. Used by
// the item-deletion cascade.
func DeleteVotesForItem(db *sql.DB, itemID string) error {
	_, err := db.Exec(`DELETE FROM vote WHERE item_id = $1`, itemID)
	return err
}
