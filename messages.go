// ABOUTME: Message endpoints and MessageQuery parameter marshaling
// ABOUTME: Optional params are omitted from the request at their default values

package letschat

import (
	"net/http"
	"net/url"
	"strconv"
)

// defaultTake is the server's default page size; a take equal to it is
// omitted from requests.
const defaultTake = 500

// MessageQuery selects and shapes a message listing. The zero value fetches a
// room's most recent messages with all server defaults; every field carries
// an explicit omit-at-default rule so the emitted request matches what an
// unparameterized call would send.
type MessageQuery struct {
	// SinceID limits results to messages with an id greater than (more
	// recent than) this one. Empty means no lower bound.
	SinceID string

	// From and To bound the posted date, inclusive on To. Format:
	// 2015-02-02T01:43:19Z. Empty means unbounded.
	From string
	To   string

	// Skip discards the first n messages; omitted when 0.
	Skip int

	// Take caps the number of messages returned (server max 5000). Omitted
	// when 0 or equal to the server default of 500.
	Take int

	// Reverse orders results most-recent-first and defaults to true on the
	// server. Nil or true is omitted; false is sent explicitly for
	// chronological order.
	Reverse *bool

	// ExpandOwner and ExpandRoom inline the owner and room records into each
	// message instead of bare ids.
	ExpandOwner bool
	ExpandRoom  bool
}

// values marshals the query for a given room. The expand tokens join in the
// fixed order owner,room.
func (q MessageQuery) values(roomID string) url.Values {
	params := url.Values{}
	params.Set("room", roomID)
	if q.SinceID != "" {
		params.Set("since_id", q.SinceID)
	}
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}
	if q.Skip != 0 {
		params.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Take != 0 && q.Take != defaultTake {
		params.Set("take", strconv.Itoa(q.Take))
	}
	if q.Reverse != nil && !*q.Reverse {
		params.Set("reverse", "false")
	}
	expand := ""
	if q.ExpandOwner {
		expand = "owner"
	}
	if q.ExpandRoom {
		if expand != "" {
			expand += ","
		}
		expand += "room"
	}
	if expand != "" {
		params.Set("expand", expand)
	}
	return params
}

// GetMessages fetches messages for a room, filtered and shaped by q.
func (c *Client) GetMessages(roomID string, q MessageQuery) ([]Message, error) {
	var msgs []Message
	if err := c.call(http.MethodGet, []string{"messages"}, q.values(roomID), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// PostMessage posts text to a room. The returned message carries bare owner
// and room ids, not expanded records.
func (c *Client) PostMessage(roomID, text string) (*Message, error) {
	params := url.Values{}
	params.Set("text", text)
	params.Set("room", roomID)

	var msg Message
	if err := c.call(http.MethodPost, []string{"messages"}, params, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
