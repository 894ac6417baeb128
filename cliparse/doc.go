// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

CLI flags take precedence over environment variables:

	-p / PORT                   server port (default 3330)
	-d / DATABASE_URL           database URL or sqlite path (default linkboard.db)
	-t / DATABASE_TYPE          sqlite or postgres (default sqlite)
	-cors-origin / CORS_ORIGIN  allowed CORS origin

A database URL is only mandatory for postgres; the sqlite default keeps
local development zero-config.
*/
package cliparse
