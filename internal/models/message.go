package models

import "time"

type Message struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomMessage is a message joined with its author's display name, the shape
// the room timeline is served in.
type RoomMessage struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Body   string `json:"body"`
}
