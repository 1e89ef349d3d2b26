package models

import (
	"context"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"liveboard.app/pkg/livesync"
)

// Room is the dashboard channel of one event. Members receive the check-in
// counter over their websocket; the stored count seeds members that join
// later.
type Room struct {
	EventID string
	Count   int
	members map[*websocket.Conn]struct{}
}

func NewRoom(eventID string) Room {
	return Room{
		EventID: eventID,
		Count:   0,
		members: make(map[*websocket.Conn]struct{}),
	}
}

// AddMember registers a dashboard connection and immediately sends it env,
// so late joiners start from the current count.
func (r *Room) AddMember(
	ctx context.Context,
	conn *websocket.Conn,
	env livesync.Envelope,
) {
	r.members[conn] = struct{}{}
	_ = wsjson.Write(ctx, conn, env)
}

func (r *Room) RemoveMember(conn *websocket.Conn) {
	delete(r.members, conn)
}

// Broadcast writes env to every member. Write errors are ignored; a dead
// connection removes itself when its handler returns.
func (r *Room) Broadcast(ctx context.Context, env livesync.Envelope) {
	for conn := range r.members {
		_ = wsjson.Write(ctx, conn, env)
	}
}
