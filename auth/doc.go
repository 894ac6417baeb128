// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves the caller identity supplied by the hosting platform.

# Client Principal Tokens

The platform forwards the authenticated user as an opaque header,
base64-encoded UTF-8 JSON:

	{"userId": "...", "userDetails": "...", "identityProvider": "...", "userRoles": [...]}

Decoding is explicit so callers can tell a bad token from a missing one:

	p, err := auth.DecodePrincipal(token)

# Request Resolution

Handlers use FromRequest, which collapses both the absent and the corrupt
case to anonymous (nil):

	if p := auth.FromRequest(r); p == nil {
		// anonymous caller
	}

Authentication failures are indistinguishable from "not logged in" at this
layer; each operation decides for itself whether it requires a principal.
*/
package auth
