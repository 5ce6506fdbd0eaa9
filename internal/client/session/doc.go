// Package session keeps the signed-in user's bearer token and cached profile.
//
// A Store is the single source of truth for "is this client authenticated" and
// "who is the current user" within one running client. The session is
// persisted in the local SQLite metadata table under fixed keys, loaded once
// at startup and overwritten wholesale on every login. A forced expiry (the
// backend rejected the token mid-session) clears it and notifies the
// registered listeners so the UI can return to the sign-in state.
package session
