// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"

	"github.com/danielhkuo/linkboard/models"
)

// InsertItem creates a new item row.
func InsertItem(db *sql.DB, item models.Item) error {
	_, err := db.Exec(`
		INSERT INTO item (id, title, description, link, author_id, author_name, created_at, upvotes, downvotes, comment_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, item.ID, item.Title, item.Description, item.Link, item.AuthorID, item.AuthorName,
		item.CreatedAt, item.Upvotes, item.Downvotes, item.CommentCount)
	return err
}

// GetItem reads one item by id. Returns sql.ErrNoRows when absent.
func GetItem(db *sql.DB, id string) (models.Item, error) {
	var item models.Item
	err := db.QueryRow(`
		SELECT id, title, description, link, author_id, author_name, created_at, upvotes, downvotes, comment_count
		FROM item WHERE id = $1
	`, id).Scan(&item.ID, &item.Title, &item.Description, &item.Link, &item.AuthorID,
		&item.AuthorName, &item.CreatedAt, &item.Upvotes, &item.Downvotes, &item.CommentCount)
	return item, err
}

// ReplaceItem overwrites every mutable column of the item row. This is a
// blind last-write-wins replace with no version check: two concurrent
// counter updates can lose one increment, which the board accepts instead
// of paying for conditional writes and retries.
func ReplaceItem(db *sql.DB, item models.Item) error {
	_, err := db.Exec(`
		UPDATE item
		SET title = $1, description = $2, link = $3, author_id = $4, author_name = $5,
		    created_at = $6, upvotes = $7, downvotes = $8, comment_count = $9
		WHERE id = $10
	`, item.Title, item.Description, item.Link, item.AuthorID, item.AuthorName,
		item.CreatedAt, item.Upvotes, item.Downvotes, item.CommentCount, item.ID)
	return err
}

// DeleteItem removes the item row only; dependent vote and comment rows are
// the caller's responsibility.
func DeleteItem(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM item WHERE id = $1`, id)
	return err
}

// ListItemsByScore returns every item ordered by net score descending,
// newest first among equals.
func ListItemsByScore(db *sql.DB) ([]models.Item, error) {
	rows, err := db.Query(`
		SELECT id, title, description, link, author_id, author_name, created_at, upvotes, downvotes, comment_count
		FROM item
		ORDER BY (upvotes - downvotes) DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Link, &item.AuthorID,
			&item.AuthorName, &item.CreatedAt, &item.Upvotes, &item.Downvotes, &item.CommentCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
