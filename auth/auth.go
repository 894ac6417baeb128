// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/linkboard/models"
)

// PrincipalHeader carries the platform-supplied identity token: base64 of a
// UTF-8 JSON client principal object.
const PrincipalHeader = "X-Client-Principal"

var ErrMalformedPrincipal = errors.New("malformed client principal token")

// DecodePrincipal decodes a client principal token. A token that fails
// base64 decoding, fails JSON parsing, or carries no userId returns
// ErrMalformedPrincipal — no stable user id means no operation can treat
// the caller as authenticated.
func DecodePrincipal(token string) (models.Principal, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrMalformedPrincipal, err)
	}

	var p models.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrMalformedPrincipal, err)
	}

	if p.UserID == "" {
		return models.Principal{}, fmt.Errorf("%w: missing userId", ErrMalformedPrincipal)
	}

	return p, nil
}

// FromRequest resolves the caller identity for a request. Absent and corrupt
// tokens both resolve to nil (anonymous); the decision to require
// authentication belongs to each operation, not to the resolver. Corrupt
// tokens are logged at debug level so the two cases stay distinguishable
// when auditing.
func FromRequest(r *http.Request) *models.Principal {
	token := r.Header.Get(PrincipalHeader)
	if token == "" {
		return nil
	}

	p, err := DecodePrincipal(token)
	if err != nil {
		slog.Debug("ignoring corrupt client principal", "error", err)
		return nil
	}

	return &p
}
