// ABOUTME: Error types surfaced by API calls
// ABOUTME: HTTPError carries the status and body of a failed server response

package letschat

import (
	"errors"
	"fmt"
)

// ErrNotImage is returned by Room.PostImage when the file content does not
// match any recognized image signature. The check runs before any upload, so
// no request is issued for unrecognized content.
var ErrNotImage = errors.New("content is not a recognized image format")

// HTTPError is returned for any non-2xx response from the server. The body is
// included verbatim; Let's Chat error bodies are short JSON or plain text.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %s", e.Status)
	}
	return fmt.Sprintf("server returned %s: %s", e.Status, e.Body)
}
