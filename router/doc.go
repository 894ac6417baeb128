// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

	GET    /items                 list the feed (optional identity)
	POST   /items                 submit an item (authenticated)
	DELETE /items/{id}            delete own item, cascading
	POST   /items/{id}/vote       cast or change a vote
	DELETE /items/{id}/vote       remove a vote
	GET    /items/{id}/comments   list comments, oldest first
	POST   /items/{id}/comments   add a comment (authenticated)
	DELETE /comments/{id}         delete own comment

Plus GET /health and a GET / banner. Every route is wrapped with request
logging; CORS is applied around the whole mux in main.
*/
package router
