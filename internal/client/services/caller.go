// Package services contains the domain service clients of the HRM portal:
// authentication, users, attendance, leave and the holiday calendar.
//
// Every operation is a thin call through the request gateway with a fixed
// endpoint and payload shape. Results are returned untransformed, so failure
// handling is the same everywhere: check Result.Success and show
// Result.Message.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/common"
)

// Caller performs a gateway call; *api.Gateway implements it.
type Caller interface {
	Call(ctx context.Context, key api.Key, opts api.Options) *api.Result
}

// File is an upload attached to a multipart request.
type File struct {
	Field   string
	Name    string
	Content []byte
}

func formatDate(t time.Time) string {
	return t.Format(common.DateLayout)
}

func formatTimestamp(t time.Time) string {
	return t.Format(common.TimestampLayout)
}
