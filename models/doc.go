// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON types shared across the Linkboard API.

# Domain Types

Three record kinds are persisted, each keyed by a v4 UUID:

  - Item: a submitted link with title, description and denormalized
    upvotes/downvotes/commentCount counters
  - Vote: one user's current direction (+1/-1) on one item; at most one
    live record per (item, user) pair
  - Comment: free text attached to an item, listed oldest first

Principal is the decoded caller identity supplied by the hosting platform;
it is consumed, never persisted.

# Counters

Item counters are caches derived from vote and comment records. The write
protocol in the handlers package keeps them best-effort consistent without
cross-record transactions; they may drift transiently under concurrent
writes and are floored at zero.
*/
package models
