// Package aitest provides a fake prediction API for tests of the AI services.
package aitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/precast-erp/backend/internal/infrastructure/ai"
	"github.com/stretchr/testify/require"
)

// Request is a request received by the fake API
type Request struct {
	Path string
	Body map[string]any
}

// ModelType returns the modelType tag of the request
func (r Request) ModelType() string {
	s, _ := r.Body[ai.ModelTypeField].(string)
	return s
}

// Server is a fake prediction API replying with a fixed status and body
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	status   int
	reply    []byte
}

// New starts a fake API replying with status and the JSON encoding of reply,
// and returns a client pointed at it.
func New(t *testing.T, status int, reply any) (*ai.Client, *Server) {
	t.Helper()
	body, err := json.Marshal(reply)
	require.NoError(t, err)

	s := &Server{status: status, reply: body}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	client, err := ai.NewClient(ai.Config{BaseURL: s.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return client, s
}

// Failing starts a fake API that answers every request with a 500
func Failing(t *testing.T) *ai.Client {
	t.Helper()
	client, _ := New(t, http.StatusInternalServerError, map[string]string{"error": "model unavailable"})
	return client
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{Path: r.URL.Path, Body: body})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)
	_, _ = w.Write(s.reply)
}

// Last returns the most recent request; it fails the test if there is none
func (s *Server) Last(t *testing.T) Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests, "no request reached the AI server")
	return s.requests[len(s.requests)-1]
}
