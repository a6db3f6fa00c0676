// Package letschat is a client library for the Let's Chat REST API.
//
// # Overview
//
// The package wraps the HTTP API of a Let's Chat server (rooms, messages,
// users, files, accounts) behind a Client facade plus lightweight entity
// wrappers. A Client is constructed once per session with an endpoint and an
// API token; entity wrappers (Room, Message, Account, File) are value-like
// snapshots built from individual API responses.
//
//	api := letschat.New("https://chat.example.com", token)
//	rooms, err := api.Rooms()
//	if err != nil {
//		return err
//	}
//	unread, err := rooms["general"].Unread()
//	if err != nil {
//		return err
//	}
//	for _, msg := range unread {
//		if _, err := msg.Reply("on it"); err != nil {
//			return err
//		}
//	}
//
// # Authentication
//
// Every request authenticates with HTTP Basic, sending the API token as the
// username and a fixed placeholder password that the server ignores. Gravatar
// fetches go to the public avatar service unauthenticated.
//
// # Unread tracking
//
// Each Room wrapper carries a cursor holding the id of the most recent message
// it has observed, seeded at construction from the single most recent message
// in the room. Room.Unread returns only messages after the cursor and advances
// it, so bots that reconnect do not re-answer old messages.
//
// # Concurrency
//
// The library is fully synchronous and performs no locking; it assumes
// single-threaded use. Callers wanting concurrency should use one Client per
// goroutine or serialize access externally. No timeouts are configured; use
// Client.SetHTTPClient to supply an *http.Client with a timeout.
package letschat
