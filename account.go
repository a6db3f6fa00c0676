// ABOUTME: Account wrapper with gravatar URL construction and memoized fetch
// ABOUTME: The avatar service is public; fetches carry no authentication

package letschat

import (
	"fmt"
	"io"
	"net/http"
)

// gravatarBaseURL is the public avatar service; the stored avatar hash is
// appended to form the image URL.
var gravatarBaseURL = "https://www.gravatar.com/avatar/"

// Account is a user record. Accounts decoded from server responses are
// snapshots; only the gravatar image bytes are cached on the instance.
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Avatar      string `json:"avatar"`

	gravatar []byte
}

// GravatarURL returns the deterministic avatar image URL built from the
// account's stored gravatar hash.
func (a *Account) GravatarURL() string {
	return gravatarBaseURL + a.Avatar
}

// Gravatar fetches the account's avatar image, at most once per instance:
// the bytes are cached after the first successful fetch and returned without
// a request thereafter. Fetch failures propagate and are not cached.
func (a *Account) Gravatar() ([]byte, error) {
	if a.gravatar != nil {
		return a.gravatar, nil
	}
	resp, err := http.Get(a.GravatarURL())
	if err != nil {
		return nil, fmt.Errorf("fetching gravatar: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gravatar response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	a.gravatar = body
	return a.gravatar, nil
}
