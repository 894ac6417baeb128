// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Linkboard API server.

Linkboard is a voting/showcase board: users submit links with a title and
description, other users upvote/downvote and comment, and the feed is
sorted by net score.

# Starting the Server

The server runs on a local sqlite database by default:

	go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..."

# Configuration

Settings come from CLI flags, environment variables, or a .env file:

  - PORT (-p): server port (default: 3330)
  - DATABASE_URL (-d): connection string or sqlite path (default: linkboard.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CORS_ORIGIN (-cors-origin): pinned CORS origin (default: echo request origin)

# Identity

Caller identity arrives as the X-Client-Principal header, supplied by the
hosting platform: base64-encoded JSON with userId and userDetails. Requests
without a valid header are treated as anonymous; writes require one.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers, vote reconciliation, feed aggregation
  - store: record-level access to the item/vote/comment collections
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain records and request/response types
  - auth: client principal resolution
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
