// ABOUTME: Client construction and the slug-keyed room cache
// ABOUTME: Holds the endpoint, API token, and underlying HTTP client

package letschat

import (
	"net/http"
	"strings"
)

// Client talks to a Let's Chat server. Construct one with New; the endpoint
// and token are fixed for the Client's lifetime.
type Client struct {
	endpoint string
	token    string
	http     *http.Client

	// rooms maps slug to wrapper, populated lazily by Rooms. Entries are
	// never evicted, even if the room is removed server-side.
	rooms map[string]*Room
}

// New creates a Client for the given base endpoint and API token. Trailing
// whitespace and slashes are stripped from the endpoint.
func New(endpoint, token string) *Client {
	endpoint = strings.TrimRight(endpoint, " \t\r\n")
	endpoint = strings.TrimRight(endpoint, "/")
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     http.DefaultClient,
		rooms:    make(map[string]*Room),
	}
}

// SetHTTPClient replaces the underlying HTTP client. The library configures no
// timeouts of its own; supply a client with a Timeout if a hung server call
// must not hang the caller indefinitely.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.http = hc
}

// Endpoint returns the normalized base endpoint the Client was built with.
func (c *Client) Endpoint() string {
	return c.endpoint
}
