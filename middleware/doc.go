// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by every handler.

  - WithLogging: per-request structured logging (method, path, client IP,
    duration)
  - CORS: cross-origin support, mounted once around the router in main
  - JSONResponse / ErrorResponse: uniform JSON body and error envelope
  - ParseJSONBody: request body decoding

ErrorResponse pairs the standard status text with a human-readable message:

	{"error": "Not Found", "message": "Item not found"}
*/
package middleware
