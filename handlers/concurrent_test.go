// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/linkboard/models"
	"github.com/danielhkuo/linkboard/store"
	"github.com/danielhkuo/linkboard/testutil"
)

// Concurrent first-casts from distinct users. The counter protocol is
// last-write-wins, so increments may be lost under interleaving - the
// invariants are that every vote record lands, no request errors, and the
// counters stay within [0, N]. Exact counter values are NOT asserted.
func TestConcurrentVoteCasts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)
	item := testutil.CreateTestItem(t, db, "author", "Author")

	const numVoters = 20

	var wg sync.WaitGroup
	var successCount int64
	var errorCount int64

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voter int) {
			defer wg.Done()

			userID := fmt.Sprintf("voter-%d", voter)
			w := castVote(t, handler, item.ID, userID, models.VoteUp)
			if w.Code == http.StatusOK {
				atomic.AddInt64(&successCount, 1)
			} else {
				atomic.AddInt64(&errorCount, 1)
				t.Errorf("voter %d: status %d, body %s", voter, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if successCount != numVoters {
		t.Errorf("%d of %d casts succeeded (%d errors)", successCount, numVoters, errorCount)
	}

	// Every vote record must have landed regardless of counter races.
	n, err := store.CountVotesForItem(db, item.ID)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if n != numVoters {
		t.Errorf("%d vote records, want %d", n, numVoters)
	}

	got, err := store.GetItem(db, item.ID)
	if err != nil {
		t.Fatalf("Failed to read item: %v", err)
	}
	if got.Upvotes < 0 || got.Upvotes > numVoters {
		t.Errorf("upvotes = %d, want within [0, %d]", got.Upvotes, numVoters)
	}
	if got.Downvotes != 0 {
		t.Errorf("downvotes = %d, want 0", got.Downvotes)
	}
}

// Concurrent flips by one user on an existing vote record. The record must
// end in a valid direction and stay singular; counters must stay bounded.
func TestConcurrentVoteFlips(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)
	item := testutil.CreateTestItem(t, db, "author", "Author")

	// Establish the record through the handler so counters start consistent.
	w := castVote(t, handler, item.ID, "flipper", models.VoteUp)
	testutil.AssertStatus(t, w, http.StatusOK)

	const numFlips = 10

	var wg sync.WaitGroup
	for i := 0; i < numFlips; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			direction := models.VoteUp
			if i%2 == 0 {
				direction = models.VoteDown
			}
			w := castVote(t, handler, item.ID, "flipper", direction)
			if w.Code != http.StatusOK {
				t.Errorf("flip %d: status %d, body %s", i, w.Code, w.Body.String())
			}
		}(i)
	}
	wg.Wait()

	if n := liveVoteCount(t, handler, item.ID, "flipper"); n != 1 {
		t.Errorf("%d live vote records for one user, want 1", n)
	}

	vote, err := store.GetVote(db, item.ID, "flipper")
	if err != nil {
		t.Fatalf("Failed to read vote: %v", err)
	}
	if vote.Value != models.VoteUp && vote.Value != models.VoteDown {
		t.Errorf("vote value = %d, want 1 or -1", vote.Value)
	}

	got, err := store.GetItem(db, item.ID)
	if err != nil {
		t.Fatalf("Failed to read item: %v", err)
	}
	if got.Upvotes < 0 || got.Downvotes < 0 {
		t.Errorf("counters went negative: %+v", got)
	}
}

// Concurrent comment creation from distinct users. Records always land;
// the denormalized count stays within [0, N].
func TestConcurrentCommentCreates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewCommentHandler(db, cfg)
	item := testutil.CreateTestItem(t, db, "author", "Author")

	const numCommenters = 10

	var wg sync.WaitGroup
	for i := 0; i < numCommenters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			userID := fmt.Sprintf("commenter-%d", i)
			req := testutil.MakeRequest("POST", "/items/"+item.ID+"/comments",
				models.CreateCommentRequest{Text: fmt.Sprintf("comment %d", i)}, userID, "User "+userID)
			req.SetPathValue("id", item.ID)
			w := httptest.NewRecorder()
			handler.Create(w, req)
			if w.Code != http.StatusCreated {
				t.Errorf("commenter %d: status %d, body %s", i, w.Code, w.Body.String())
			}
		}(i)
	}
	wg.Wait()

	n, err := store.CountCommentsForItem(db, item.ID)
	if err != nil {
		t.Fatalf("Failed to count comments: %v", err)
	}
	if n != numCommenters {
		t.Errorf("%d comment records, want %d", n, numCommenters)
	}

	got, err := store.GetItem(db, item.ID)
	if err != nil {
		t.Fatalf("Failed to read item: %v", err)
	}
	if got.CommentCount < 0 || got.CommentCount > numCommenters {
		t.Errorf("commentCount = %d, want within [0, %d]", got.CommentCount, numCommenters)
	}
}
