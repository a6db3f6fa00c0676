// ABOUTME: File wrapper with lazy owner resolution and memoized content download
// ABOUTME: Content downloads reuse the Client's authenticated transport

package letschat

import (
	"net/http"
	"strings"
)

// File is a binary attachment uploaded to a room. The owner and the file
// bytes both resolve lazily through explicit accessors and are cached after
// the first successful fetch.
type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OwnerID  string `json:"owner"`
	RoomID   string `json:"room"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Uploaded string `json:"uploaded"`
	URL      string `json:"url"`

	api     *Client
	owner   *Account
	content []byte
}

// Owner resolves the file's owner id into a full account record, fetching at
// most once per instance.
func (f *File) Owner() (*Account, error) {
	if f.owner != nil {
		return f.owner, nil
	}
	owner, err := f.api.GetUser(f.OwnerID)
	if err != nil {
		return nil, err
	}
	f.owner = owner
	return f.owner, nil
}

// Content downloads the file bytes through the authenticated transport,
// fetching at most once per instance.
func (f *File) Content() ([]byte, error) {
	if f.content != nil {
		return f.content, nil
	}
	bits := strings.Split(strings.TrimPrefix(f.URL, "/"), "/")
	content, err := f.api.callRaw(http.MethodGet, bits, nil)
	if err != nil {
		return nil, err
	}
	f.content = content
	return f.content, nil
}
