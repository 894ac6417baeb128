// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/linkboard/auth"
	"github.com/danielhkuo/linkboard/cliparse"
	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	if err := store.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3330,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// PrincipalToken builds the platform identity header value for a test user.
func PrincipalToken(userID, userDetails string) string {
	raw, _ := json.Marshal(models.Principal{
		UserID:           userID,
		UserDetails:      userDetails,
		IdentityProvider: "github",
		UserRoles:        []string{"anonymous", "authenticated"},
	})
	return base64.StdEncoding.EncodeToString(raw)
}

// CreateTestItem inserts an item with zeroed counters and returns it.
func CreateTestItem(t *testing.T, db *sql.DB, authorID, authorName string) models.Item {
	t.Helper()

	item := models.Item{
		ID:          uuid.NewString(),
		Title:       "Test Item",
		Description: "A test item",
		Link:        "https://example.com/project",
		AuthorID:    authorID,
		AuthorName:  authorName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.InsertItem(db, item); err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	return item
}

// CreateTestVote inserts a vote record and returns it. It does not touch
// the item's counters; tests that need consistent counters adjust the item
// themselves.
func CreateTestVote(t *testing.T, db *sql.DB, itemID, userID string, value int) models.Vote {
	t.Helper()

	vote := models.Vote{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.InsertVote(db, vote); err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return vote
}

// CreateTestComment inserts a comment record and returns it.
func CreateTestComment(t *testing.T, db *sql.DB, itemID, userID, userName, text string) models.Comment {
	t.Helper()

	comment := models.Comment{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.InsertComment(db, comment); err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// MakeRequest creates an HTTP test request. An empty userID leaves the
// request anonymous.
func MakeRequest(method, path string, body interface{}, userID, userName string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if userID != "" {
		req.Header.Set(auth.PrincipalHeader, PrincipalToken(userID, userName))
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
