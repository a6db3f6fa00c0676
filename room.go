// ABOUTME: Room wrapper: unread cursor, posting, image upload, field updates
// ABOUTME: The cursor advances monotonically; Unread never rewinds it

package letschat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/2389/letschat-client/internal/imgfmt"
)

// Room is a named chat channel. Wrappers returned by Client.Rooms, GetRoom,
// and CreateRoom carry a seeded unread cursor; Name and Description reflect
// the last fetch, not any update issued since (see Rename and Redescribe).
type Room struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Created     string `json:"created"`
	LastActive  string `json:"lastActive"`
	OwnerID     string `json:"owner"`

	api      *Client
	lastSeen string
}

// chronological requests oldest-first ordering with owner and room expansion,
// the shape every room-level listing uses.
func chronological(sinceID string) MessageQuery {
	reverse := false
	return MessageQuery{
		SinceID:     sinceID,
		Reverse:     &reverse,
		ExpandOwner: true,
		ExpandRoom:  true,
	}
}

// Messages fetches up to 500 of the room's most recent messages in
// chronological order with owner and room expanded. Every call re-fetches.
func (r *Room) Messages() ([]Message, error) {
	msgs, err := r.api.GetMessages(r.ID, chronological(""))
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		msgs[i].room = r
	}
	return msgs, nil
}

// Unread fetches messages posted after the room's cursor, in chronological
// order with owner and room expanded, and advances the cursor to the last
// message returned. A room with nothing new yields an empty slice and leaves
// the cursor where it was; the cursor never moves backward.
func (r *Room) Unread() ([]Message, error) {
	msgs, err := r.api.GetMessages(r.ID, chronological(r.lastSeen))
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		msgs[i].room = r
	}
	if len(msgs) > 0 {
		r.lastSeen = msgs[len(msgs)-1].ID
	}
	return msgs, nil
}

// Post posts text to this room. The returned message carries bare owner and
// room ids; re-fetch through Messages or Unread for expanded records.
func (r *Room) Post(text string) (*Message, error) {
	msg, err := r.api.PostMessage(r.ID, text)
	if err != nil {
		return nil, err
	}
	msg.room = r
	return msg, nil
}

// PostImage uploads a local image file to the room. The image format is
// detected from the file's binary signature, never its extension; content
// that matches no known image format fails with ErrNotImage before any
// request is issued.
func (r *Room) PostImage(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}
	mimeType, err := imgfmt.DetectMIME(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, filepath.Base(path))
	}
	return r.api.PostFile(r.ID, content, filepath.Base(path), mimeType)
}

// Users fetches the room's current users. Every call re-fetches.
func (r *Room) Users() ([]Account, error) {
	return r.api.RoomUsers(r.Slug)
}

// Files fetches the room's files. Every call re-fetches.
func (r *Room) Files() ([]File, error) {
	return r.api.GetFiles(r.ID, 0, 0)
}

// Rename updates the room's name on the server. The wrapper's Name field
// keeps the previously fetched value; re-fetch the room to observe the
// change.
func (r *Room) Rename(name string) error {
	return r.api.UpdateRoom(r.Slug, UpdateRoomParams{Name: &name})
}

// Redescribe updates the room's description on the server. As with Rename,
// the wrapper's Description field is not touched.
func (r *Room) Redescribe(description string) error {
	return r.api.UpdateRoom(r.Slug, UpdateRoomParams{Description: &description})
}

// LastSeen returns the id of the most recent message this wrapper has
// observed, empty for a room with no messages at seed time.
func (r *Room) LastSeen() string {
	return r.lastSeen
}
