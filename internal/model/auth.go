package model

import "github.com/google/uuid"

// AuthUser is the request-scoped identity derived from a verified
// bearer token. It lives only for the duration of the request and is
// never persisted.
type AuthUser struct {
	ID       uuid.UUID
	Username string
}
