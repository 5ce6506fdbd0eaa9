// Package common contains constants shared by the HRM portal client packages.
package common

// Storage keys of the persisted client session. Logout removes all of them.
const (
	AccessTokenKey = "access_token"
	UserKey        = "user"
	TokenTypeKey   = "token_type"
	ExpiresInKey   = "expires_in"
)

// SessionKeys lists every key owned by the session store.
var SessionKeys = []string{AccessTokenKey, UserKey, TokenTypeKey, ExpiresInKey}

// HTTP header names used by the request gateway.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"
)

// Wire formats of calendar dates and wall-clock timestamps sent to the backend.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"
)
