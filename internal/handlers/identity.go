package handlers

import (
	"net/http"
	"strconv"
)

// identityHeader carries the caller-asserted acting user id. It is not
// verified; ownership checks based on it are a courtesy, not a security
// boundary.
const identityHeader = "X-User-Id"

// actorIDFromRequest parses the identity header. Returns nil when the header
// is absent or not an integer.
func actorIDFromRequest(r *http.Request) *int64 {
	raw := r.Header.Get(identityHeader)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
