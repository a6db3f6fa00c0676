// ABOUTME: Shared test fixtures: a recording fake server and JSON builders
// ABOUTME: Every handler sees its request logged with auth, query, and form fields

package letschat

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedRequest captures everything the assertions need about one request.
type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	Form        url.Values
	Body        []byte
	BasicUser   string
	BasicPass   string
	ContentType string
}

type requestLog struct {
	entries []recordedRequest
}

func (l *requestLog) count() int {
	return len(l.entries)
}

func (l *requestLog) last(t *testing.T) recordedRequest {
	t.Helper()
	require.NotEmpty(t, l.entries, "no requests recorded")
	return l.entries[len(l.entries)-1]
}

// countPath counts recorded requests for an exact path.
func (l *requestLog) countPath(path string) int {
	n := 0
	for _, e := range l.entries {
		if e.Path == path {
			n++
		}
	}
	return n
}

// newTestClient starts a recording fake server and returns a Client pointed
// at it. A nil handler answers every request with an empty body. Form bodies
// are parsed into the log entry for POST/PUT assertions.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *requestLog) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		entry := recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.Query(),
			Body:        body,
			ContentType: r.Header.Get("Content-Type"),
		}
		entry.BasicUser, entry.BasicPass, _ = r.BasicAuth()
		if strings.HasPrefix(entry.ContentType, "application/x-www-form-urlencoded") {
			entry.Form, _ = url.ParseQuery(string(body))
		}
		log.entries = append(log.entries, entry)

		// Hand the handler a re-readable body for multipart parsing.
		r.Body = io.NopCloser(bytes.NewReader(body))
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, "test-token"), log
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func roomJSON(id, slug, name string) map[string]any {
	return map[string]any{
		"id":          id,
		"slug":        slug,
		"name":        name,
		"description": "a test room",
		"created":     "2015-02-02T01:43:19Z",
		"lastActive":  "2015-02-03T09:12:00Z",
		"owner":       "owner-1",
	}
}

func userJSON(id, username string) map[string]any {
	return map[string]any{
		"id":          id,
		"username":    username,
		"displayName": username + " display",
		"firstName":   username,
		"lastName":    "Tester",
		"avatar":      "0123456789abcdef0123456789abcdef",
	}
}

// messageJSON builds a message with bare owner and room ids.
func messageJSON(id, roomID, ownerID, text string) map[string]any {
	return map[string]any{
		"id":     id,
		"text":   text,
		"posted": "2015-02-02T01:43:19Z",
		"owner":  ownerID,
		"room":   roomID,
	}
}

// expandedMessageJSON builds a message with inlined owner and room records.
func expandedMessageJSON(id, roomID, text string, owner map[string]any) map[string]any {
	return map[string]any{
		"id":     id,
		"text":   text,
		"posted": "2015-02-02T01:43:19Z",
		"owner":  owner,
		"room":   roomJSON(roomID, "room-"+roomID, "Room "+roomID),
	}
}
