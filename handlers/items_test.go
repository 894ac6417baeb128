// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
	"github.com/danielhkuo/linkboard/testutil"
)

func TestCreateItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewItemHandler(db, cfg)

	tests := []struct {
		name           string
		userID         string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.Item)
	}{
		{
			name:   "valid item",
			userID: "u1",
			requestBody: models.CreateItemRequest{
				Title:       "My Project",
				Description: "A thing I built",
				Link:        "https://example.com/my-project",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Item) {
				if resp.ID == "" {
					t.Error("Expected non-empty id")
				}
				if resp.AuthorID != "u1" || resp.AuthorName != "User u1" {
					t.Errorf("author = %s/%s, want u1/User u1", resp.AuthorID, resp.AuthorName)
				}
				if resp.Upvotes != 0 || resp.Downvotes != 0 || resp.CommentCount != 0 {
					t.Errorf("new item counters not zero: %+v", resp)
				}
			},
		},
		{
			name:           "anonymous caller",
			userID:         "",
			requestBody:    models.CreateItemRequest{Title: "T", Description: "D", Link: "https://x.com"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing title",
			userID:         "u1",
			requestBody:    models.CreateItemRequest{Description: "D", Link: "https://x.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing description",
			userID:         "u1",
			requestBody:    models.CreateItemRequest{Title: "T", Link: "https://x.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing link",
			userID:         "u1",
			requestBody:    models.CreateItemRequest{Title: "T", Description: "D"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "relative link",
			userID:         "u1",
			requestBody:    models.CreateItemRequest{Title: "T", Description: "D", Link: "/not/absolute"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-http scheme",
			userID:         "u1",
			requestBody:    models.CreateItemRequest{Title: "T", Description: "D", Link: "ftp://x.com/f"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "over-length title truncated",
			userID: "u1",
			requestBody: models.CreateItemRequest{
				Title:       strings.Repeat("a", 150),
				Description: strings.Repeat("b", 600),
				Link:        "https://example.com",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Item) {
				if len(resp.Title) != models.TitleMaxLen {
					t.Errorf("title length = %d, want %d", len(resp.Title), models.TitleMaxLen)
				}
				if len(resp.Description) != models.DescriptionMaxLen {
					t.Errorf("description length = %d, want %d", len(resp.Description), models.DescriptionMaxLen)
				}
			},
		},
		{
			name:   "markup stripped from text fields",
			userID: "u1",
			requestBody: models.CreateItemRequest{
				Title:       `Hello <script>alert(1)</script>world`,
				Description: "<b>bold</b> claim",
				Link:        "https://example.com",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Item) {
				if strings.Contains(resp.Title, "<script>") {
					t.Errorf("script tag survived sanitization: %q", resp.Title)
				}
				if strings.Contains(resp.Description, "<b>") {
					t.Errorf("markup survived sanitization: %q", resp.Description)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/items", tt.requestBody, tt.userID, "User "+tt.userID)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var resp models.Item
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestCreateItemAnonymousWritesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewItemHandler(db, cfg)

	req := testutil.MakeRequest("POST", "/items",
		models.CreateItemRequest{Title: "T", Description: "D", Link: "https://x.com"}, "", "")
	w := httptest.NewRecorder()
	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	items, err := store.ListItemsByScore(db)
	if err != nil {
		t.Fatalf("Failed to list items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("anonymous create persisted %d items, want 0", len(items))
	}
}

func TestDeleteItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewItemHandler(db, cfg)

	item := testutil.CreateTestItem(t, db, "u1", "Alice")

	tests := []struct {
		name           string
		itemID         string
		userID         string
		expectedStatus int
	}{
		{"anonymous caller", item.ID, "", http.StatusUnauthorized},
		{"not the author", item.ID, "u2", http.StatusForbidden},
		{"unknown item", "no-such-item", "u1", http.StatusNotFound},
		{"author deletes", item.ID, "u1", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/items/"+tt.itemID, nil, tt.userID, "User "+tt.userID)
			req.SetPathValue("id", tt.itemID)
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

// Deleting an item with votes and comments makes all of them unreachable.
func TestDeleteItemCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewItemHandler(db, cfg)

	item := testutil.CreateTestItem(t, db, "u1", "Alice")
	testutil.CreateTestVote(t, db, item.ID, "u2", models.VoteUp)
	testutil.CreateTestVote(t, db, item.ID, "u3", models.VoteDown)
	testutil.CreateTestComment(t, db, item.ID, "u2", "Bob", "first")
	testutil.CreateTestComment(t, db, item.ID, "u3", "Carol", "second")
	testutil.CreateTestComment(t, db, item.ID, "u2", "Bob", "third")

	req := testutil.MakeRequest("DELETE", "/items/"+item.ID, nil, "u1", "Alice")
	req.SetPathValue("id", item.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	if _, err := store.GetItem(db, item.ID); err == nil {
		t.Error("item still readable after delete")
	}
	if n, _ := store.CountVotesForItem(db, item.ID); n != 0 {
		t.Errorf("%d vote records survived the cascade, want 0", n)
	}
	if n, _ := store.CountCommentsForItem(db, item.ID); n != 0 {
		t.Errorf("%d comment records survived the cascade, want 0", n)
	}

	comments, err := store.ListCommentsForItem(db, item.ID)
	if err != nil {
		t.Fatalf("Failed to list comments: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comment listing still returns %d rows", len(comments))
	}
}
