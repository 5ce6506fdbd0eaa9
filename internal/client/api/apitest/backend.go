// Package apitest provides an in-process fake of the HRM backend for tests.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Request is a recorded inbound request.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Backend records every request it receives and answers from the handlers
// registered with Handle or Reply. Unrouted requests get a FastAPI-style 404.
type Backend struct {
	URL string

	srv    *httptest.Server
	router chi.Router

	mu       sync.Mutex
	requests []Request
}

func New(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{router: chi.NewRouter()}
	b.router.Use(b.record)
	b.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Reply(http.StatusNotFound, `{"detail":"Not Found"}`)(w, r)
	})

	b.srv = httptest.NewServer(b.router)
	b.URL = b.srv.URL
	t.Cleanup(b.srv.Close)
	return b
}

// Handle routes method+pattern (chi syntax) to h.
func (b *Backend) Handle(method, pattern string, h http.HandlerFunc) {
	b.router.MethodFunc(method, pattern, h)
}

// Reply routes method+pattern to a fixed JSON answer.
func (b *Backend) Reply(method, pattern string, status int, body string) {
	b.Handle(method, pattern, Reply(status, body))
}

// ReplyAny answers every otherwise unrouted request with a fixed JSON body.
func (b *Backend) ReplyAny(status int, body string) {
	b.router.HandleFunc("/*", Reply(status, body))
}

// Reply returns a handler answering with status and a JSON body. An empty
// body writes no content.
func Reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		if body != "" {
			_, _ = io.WriteString(w, body)
		}
	}
}

// Close shuts the server down so calls fail at the network level.
func (b *Backend) Close() {
	b.srv.Close()
}

func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

func (b *Backend) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// Last returns the most recent request; the zero Request if none arrived.
func (b *Backend) Last() Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return Request{}
	}
	return b.requests[len(b.requests)-1]
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
