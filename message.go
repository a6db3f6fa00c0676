// ABOUTME: Message wrapper: decoding of bare and expanded forms, Reply, HTML
// ABOUTME: Reply posts an @username mention back to the parent room

package letschat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
)

// Message is a single posted chat entry. Messages are snapshots: they are
// never mutated after decoding. Owner is non-nil only when the listing
// requested owner expansion; OwnerID and RoomID are always populated.
type Message struct {
	ID      string
	Text    string
	Posted  string
	OwnerID string
	RoomID  string

	// Owner is the expanded owner record, nil when the server returned a
	// bare id.
	Owner *Account

	room *Room
}

// UnmarshalJSON accepts both response shapes: owner and room as bare id
// strings, or as inlined records when the listing requested expansion.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     string          `json:"id"`
		Text   string          `json:"text"`
		Posted string          `json:"posted"`
		Owner  json.RawMessage `json:"owner"`
		Room   json.RawMessage `json:"room"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	m.Text = raw.Text
	m.Posted = raw.Posted

	if len(raw.Owner) > 0 {
		if raw.Owner[0] == '{' {
			var owner Account
			if err := json.Unmarshal(raw.Owner, &owner); err != nil {
				return fmt.Errorf("decoding expanded owner: %w", err)
			}
			m.Owner = &owner
			m.OwnerID = owner.ID
		} else if err := json.Unmarshal(raw.Owner, &m.OwnerID); err != nil {
			return fmt.Errorf("decoding owner id: %w", err)
		}
	}

	if len(raw.Room) > 0 {
		if raw.Room[0] == '{' {
			var room struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(raw.Room, &room); err != nil {
				return fmt.Errorf("decoding expanded room: %w", err)
			}
			m.RoomID = room.ID
		} else if err := json.Unmarshal(raw.Room, &m.RoomID); err != nil {
			return fmt.Errorf("decoding room id: %w", err)
		}
	}
	return nil
}

// Room returns the parent room wrapper this message was listed through, or
// nil for messages decoded outside a room context.
func (m *Message) Room() *Room {
	return m.room
}

// Reply posts text to the parent room prefixed with an @mention of this
// message's author, e.g. "@alice: hi". It requires an expanded owner (as
// returned by Room.Messages and Room.Unread) and an attached parent room;
// either missing is an error raised before any request.
func (m *Message) Reply(text string) (*Message, error) {
	if m.room == nil {
		return nil, errors.New("message has no parent room attached")
	}
	if m.Owner == nil {
		return nil, errors.New("message owner not expanded; cannot build mention")
	}
	return m.room.Post("@" + m.Owner.Username + ": " + text)
}

// HTML renders the message text as markdown, the way the Let's Chat web UI
// displays it.
func (m *Message) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(m.Text), &buf); err != nil {
		return "", fmt.Errorf("rendering message markdown: %w", err)
	}
	return buf.String(), nil
}
