// ABOUTME: Tests for the authenticated transport
// ABOUTME: Covers auth placement, param placement, error surfacing, empty bodies

package letschat

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://chat.example.com", "https://chat.example.com"},
		{"https://chat.example.com/", "https://chat.example.com"},
		{"https://chat.example.com///", "https://chat.example.com"},
		{"https://chat.example.com/ \n", "https://chat.example.com"},
	}
	for _, tt := range tests {
		c := New(tt.in, "tok")
		assert.Equal(t, tt.want, c.Endpoint(), "endpoint %q", tt.in)
	}
}

func TestCall_TokenAsBasicAuthUsername(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, userJSON("u1", "alice"))
	})

	_, err := c.GetAccount()
	require.NoError(t, err)

	req := log.last(t)
	assert.Equal(t, "test-token", req.BasicUser)
	assert.Equal(t, basicAuthPassword, req.BasicPass)
	assert.Equal(t, "/account", req.Path)
}

func TestCall_ParamPlacement(t *testing.T) {
	c, log := newTestClient(t, nil)

	// GET carries params in the query string.
	_, err := c.GetUsers(10, 20)
	require.NoError(t, err)
	req := log.last(t)
	assert.Equal(t, "10", req.Query.Get("skip"))
	assert.Equal(t, "20", req.Query.Get("take"))
	assert.Empty(t, req.Body)

	// PUT carries params as a form-encoded body, not the query string.
	name := "New Name"
	require.NoError(t, c.UpdateRoom("general", UpdateRoomParams{Name: &name}))
	req = log.last(t)
	assert.Empty(t, req.Query)
	assert.Equal(t, "New Name", req.Form.Get("name"))
}

func TestCall_HTTPError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such room", http.StatusNotFound)
	})

	_, err := c.GetRoom("nope")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr), "want *HTTPError, got %T", err)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "no such room")
	assert.Contains(t, httpErr.Error(), "404")
}

func TestCall_EmptyBodyIsNoContent(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.RemoveRoom("general"))

	req := log.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/rooms/general", req.Path)
}

func TestCall_PathSegmentsJoined(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	})

	_, err := c.RoomUsers("general")
	require.NoError(t, err)
	assert.Equal(t, "/rooms/general/users", log.last(t).Path)
}
