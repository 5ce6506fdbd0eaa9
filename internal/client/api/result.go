package api

import (
	"encoding/json"
	"errors"
)

var ErrNoData = errors.New("response has no data")

// Result is what every gateway call returns.
type Result struct {
	Status int
	// Data is the raw JSON body of a successful response; nil for 204 and
	// empty bodies.
	Data json.RawMessage
	Err  *Error
}

func (r *Result) Success() bool {
	return r != nil && r.Err == nil
}

// Decode unmarshals Data into v. It returns the call's error for failed
// results and ErrNoData when the response had no body.
func (r *Result) Decode(v any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(r.Data) == 0 {
		return ErrNoData
	}
	return json.Unmarshal(r.Data, v)
}

// Message is the user-facing failure message, empty on success.
func (r *Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// AsError returns the failure as an error value, or nil on success.
func (r *Result) AsError() error {
	if r.Err == nil {
		return nil
	}
	return r.Err
}

func failure(kind error, status int, msg string, cause error) *Result {
	return &Result{Status: status, Err: &Error{Kind: kind, Status: status, Message: msg, Err: cause}}
}
