// Package api is the request gateway of the HRM portal client.
//
// Every backend call goes through Gateway.Call, which resolves an endpoint key
// or explicit path to a URL, attaches the bearer token, encodes a JSON or
// multipart body and folds the response into a uniform *Result. Call never
// returns a Go error: failures are reported through Result.Err and can be
// matched with errors.Is against ErrConfig, ErrAuth, ErrSessionExpired,
// ErrServer and ErrNetwork.
//
// A 401 on any call other than login tears the session down exactly once and
// yields ErrSessionExpired. Calls are never retried.
package api
