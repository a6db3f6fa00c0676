// ABOUTME: Room endpoints: list, fetch, create, update, remove, room users
// ABOUTME: Maintains the Client's slug-keyed cache of Room wrappers

package letschat

import (
	"net/http"
	"net/url"
	"strconv"
)

// UpdateRoomParams selects which room fields to change. Nil fields are left
// out of the request entirely.
type UpdateRoomParams struct {
	Name        *string
	Description *string
}

// ListRooms fetches room records with optional pagination. A skip of 0 is
// omitted from the request; take is omitted when 0 or equal to the server
// default of 500. The returned rooms are plain snapshots: they can issue
// calls through the Client but their unread cursors are unseeded. Use Rooms
// or GetRoom for cursor-tracking wrappers.
func (c *Client) ListRooms(skip, take int) ([]Room, error) {
	var records []Room
	if err := c.call(http.MethodGet, []string{"rooms"}, pageParams(skip, take), &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].api = c
	}
	return records, nil
}

// GetRoom fetches a single room by id or slug and returns a wrapper with a
// seeded unread cursor.
func (c *Client) GetRoom(idOrSlug string) (*Room, error) {
	var room Room
	if err := c.call(http.MethodGet, []string{"rooms", idOrSlug}, nil, &room); err != nil {
		return nil, err
	}
	return c.adopt(&room)
}

// Rooms fetches all rooms and returns the Client's slug-keyed cache. A
// wrapper is created (and its unread cursor seeded) for every slug not
// already cached; existing wrappers keep their cursors. Entries are never
// evicted, so rooms removed server-side linger until the Client is discarded.
func (c *Client) Rooms() (map[string]*Room, error) {
	records, err := c.ListRooms(0, 0)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if _, ok := c.rooms[records[i].Slug]; ok {
			continue
		}
		room, err := c.adopt(&records[i])
		if err != nil {
			return nil, err
		}
		c.rooms[room.Slug] = room
	}
	return c.rooms, nil
}

// RoomByID scans the room cache for a matching id. It returns nil when no
// cached room matches or Rooms has never been called.
func (c *Client) RoomByID(id string) *Room {
	for _, room := range c.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

// CreateRoom creates a room and returns a wrapper for it. A freshly created
// room has no messages, so its unread cursor starts empty.
func (c *Client) CreateRoom(name, slug, description string) (*Room, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("slug", slug)
	params.Set("description", description)

	var room Room
	if err := c.call(http.MethodPost, []string{"rooms"}, params, &room); err != nil {
		return nil, err
	}
	return c.adopt(&room)
}

// UpdateRoom changes a room's name and/or description. Only non-nil fields
// are sent. The server returns no body on success.
func (c *Client) UpdateRoom(slug string, update UpdateRoomParams) error {
	params := url.Values{}
	if update.Name != nil {
		params.Set("name", *update.Name)
	}
	if update.Description != nil {
		params.Set("description", *update.Description)
	}
	return c.call(http.MethodPut, []string{"rooms", slug}, params, nil)
}

// RemoveRoom deletes a room by slug. The cached wrapper, if any, is not
// evicted.
func (c *Client) RemoveRoom(slug string) error {
	return c.call(http.MethodDelete, []string{"rooms", slug}, nil, nil)
}

// RoomUsers fetches the users currently in a room.
func (c *Client) RoomUsers(slug string) ([]Account, error) {
	var users []Account
	if err := c.call(http.MethodGet, []string{"rooms", slug, "users"}, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// adopt attaches the Client to a room wrapper and seeds its unread cursor
// from the single most recent message. An empty room leaves the cursor empty;
// that is the expected state, not an error.
func (c *Client) adopt(room *Room) (*Room, error) {
	room.api = c
	msgs, err := c.GetMessages(room.ID, MessageQuery{Take: 1})
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		room.lastSeen = msgs[0].ID
	}
	return room, nil
}

// pageParams builds skip/take pagination params, omitting each when it equals
// the server default (skip 0, take 500 or unset).
func pageParams(skip, take int) url.Values {
	params := url.Values{}
	if skip != 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	if take != 0 && take != defaultTake {
		params.Set("take", strconv.Itoa(take))
	}
	return params
}
