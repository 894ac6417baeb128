// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"

	"github.com/danielhkuo/linkboard/models"
)

// InsertComment creates a new comment row.
func InsertComment(db *sql.DB, comment models.Comment) error {
	_, err := db.Exec(`
		INSERT INTO comment (id, item_id, user_id, user_name, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.ItemID, comment.UserID, comment.UserName, comment.Text, comment.CreatedAt)
	return err
}

// GetComment reads one comment by id. Returns sql.ErrNoRows when absent.
func GetComment(db *sql.DB, id string) (models.Comment, error) {
	var comment models.Comment
	err := db.QueryRow(`
		SELECT id, item_id, user_id, user_name, body, created_at
		FROM comment WHERE id = $1
	`, id).Scan(&comment.ID, &comment.ItemID, &comment.UserID, &comment.UserName,
		&comment.Text, &comment.CreatedAt)
	return comment, err
}

// DeleteComment removes one comment row by id.
func DeleteComment(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM comment WHERE id = $1`, id)
	return err
}

// ListCommentsForItem returns the item's comments ordered oldest first.
// An unknown item simply yields an empty list.
func ListCommentsForItem(db *sql.DB, itemID string) ([]models.Comment, error) {
	rows, err := db.Query(`
		SELECT id, item_id, user_id, user_name, body, created_at
		FROM comment WHERE item_id = $1
		ORDER BY created_at ASC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.ItemID, &comment.UserID, &comment.UserName,
			&comment.Text, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// CountCommentsForItem reports how many comment rows reference the item.
func CountCommentsForItem(db *sql.DB, itemID string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM comment WHERE item_id = $1`, itemID).Scan(&n)
	return n, err
}

// DeleteCommentsForItem removes every comment row referencing the item.
// Used by the item-deletion cascade.
func DeleteCommentsForItem(db *sql.DB, itemID string) error {
	_, err := db.Exec(`DELETE FROM comment WHERE item_id = $1`, itemID)
	return err
}
