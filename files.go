// ABOUTME: File endpoints: listing and multipart upload
// ABOUTME: The upload endpoint is undocumented upstream; its response is returned unparsed

package letschat

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// GetFiles fetches a room's file records, with the same skip/take omission
// rule as message listings.
func (c *Client) GetFiles(roomID string, skip, take int) ([]File, error) {
	params := pageParams(skip, take)
	params.Set("room", roomID)

	var files []File
	if err := c.call(http.MethodGet, []string{"files"}, params, &files); err != nil {
		return nil, err
	}
	for i := range files {
		files[i].api = c
	}
	return files, nil
}

// PostFile uploads content to a room as a multipart form with body fields
// post=true and room=<id>, the payload under a "file" field carrying the
// given filename and MIME type. The upload endpoint is undocumented upstream
// and its response shape is unstable, so the raw response body is returned
// unparsed.
func (c *Client) PostFile(roomID string, content []byte, filename, mimeType string) ([]byte, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("post", "true"); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := form.WriteField("room", roomID); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint+"/files", &buf)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.SetBasicAuth(c.token, basicAuthPassword)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	return body, nil
}
