// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
)

// BuildFeed produces the item feed: every item ordered by net score
// descending (newest first among equals), each annotated with the
// requesting user's live vote. userID is empty for anonymous callers,
// which leaves every annotation absent.
//
// The feed is read-only and tolerates store staleness; it never fabricates
// a 0 vote - "no vote" is the absence of the annotation.
func BuildFeed(db *sql.DB, userID string) ([]models.FeedItem, error) {
	items, err := store.ListItemsByScore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	userVotes := make(map[string]int)
	if userID != "" {
		votes, err := store.ListVotesByUser(db, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list votes: %w", err)
		}
		for _, v := range votes {
			userVotes[v.ItemID] = v.Value
		}
	}

	feed := make([]models.FeedItem, 0, len(items))
	for _, item := range items {
		entry := models.FeedItem{Item: item}
		if value, ok := userVotes[item.ID]; ok {
			v := value
			entry.UserVote = &v
		}
		feed = append(feed, entry)
	}

	return feed, nil
}
