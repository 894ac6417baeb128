package models

import "time"

// Vote directions. A vote is always exactly one of these; "no vote" is
// represented by the absence of a vote record, never by 0.
const (
	VoteUp   = 1
	VoteDown = -1
)

// Field limits, applied by truncation on write.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
	CommentMaxLen     = 1000
)

// Request types

type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type CastVoteRequest struct {
	Vote int `json:"vote"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// Response types

// VoteStateResponse reports an item's counters after a vote operation,
// together with the caller's own vote. UserVote is null after a removal.
type VoteStateResponse struct {
	Upvotes   int  `json:"upvotes"`
	Downvotes int  `json:"downvotes"`
	UserVote  *int `json:"userVote"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Item is a submitted showcase entry. Upvotes, Downvotes and CommentCount
// are denormalized counters maintained by the vote and comment handlers;
// they can drift transiently under concurrent writes but never go negative.
type Item struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Link         string    `json:"link"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	CreatedAt    time.Time `json:"createdAt"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CommentCount int       `json:"commentCount"`
}

// FeedItem is an Item annotated with the requesting user's live vote.
// UserVote is omitted entirely when the caller has no vote on the item or
// is anonymous.
type FeedItem struct {
	Item
	UserVote *int `json:"userVote,omitempty"`
}

// Vote is the durable record of one user's current direction on one item.
// At most one live record exists per (ItemID, UserID) pair.
type Vote struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	UserID    string    `json:"userId"`
	Value     int       `json:"vote"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Principal is a resolved authenticated caller identity, decoded from the
// platform-supplied client principal token.
type Principal struct {
	UserID           string   `json:"userId"`
	UserDetails      string   `json:"userDetails"`
	IdentityProvider string   `json:"identityProvider"`
	UserRoles        []string `json:"userRoles"`
}
