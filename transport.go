// ABOUTME: Authenticated HTTP transport for the Let's Chat API
// ABOUTME: Builds requests from path segments and params, decodes JSON responses

package letschat

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// The server ignores the basic-auth password when the username is an API
// token, but some HTTP stacks reject empty passwords.
const basicAuthPassword = "password not needed"

// call performs an authenticated request and decodes the JSON response into
// out. Params travel as query parameters for GET/DELETE and as a form-encoded
// body for POST/PUT. An empty response body leaves out untouched and returns
// nil; pass a nil out to discard the body.
func (c *Client) call(method string, bits []string, params url.Values, out any) error {
	body, err := c.callRaw(method, bits, params)
	if err != nil {
		return err
	}
	if len(body) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s /%s response: %w", method, strings.Join(bits, "/"), err)
	}
	return nil
}

// callRaw performs an authenticated request and returns the raw response body.
// Non-2xx statuses return an *HTTPError carrying the status and body.
func (c *Client) callRaw(method string, bits []string, params url.Values) ([]byte, error) {
	target := c.endpoint + "/" + strings.Join(bits, "/")

	var reqBody io.Reader
	form := false
	switch method {
	case http.MethodPost, http.MethodPut:
		form = true
		reqBody = strings.NewReader(params.Encode())
	default:
		if len(params) > 0 {
			target += "?" + params.Encode()
		}
	}

	req, err := http.NewRequest(method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}
	if form {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.SetBasicAuth(c.token, basicAuthPassword)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s /%s: %w", method, strings.Join(bits, "/"), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s /%s response: %w", method, strings.Join(bits, "/"), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	return body, nil
}
