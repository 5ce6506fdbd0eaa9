// Package cli provides the interactive HRM portal command-line client.
//
// It plays the part of the portal's screens: sign-in, user administration,
// attendance with face validation, leave and permission workflows and the
// holiday calendar. Each command is a thin wrapper over a domain service; the
// backend decides what the signed-in user may actually do, the role checks
// here only decide what is offered.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// A forced session expiry (see App.SessionExpired) drops the REPL back to the
// signed-out command set.
package cli
