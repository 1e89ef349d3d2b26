package liveboard

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"liveboard.app/internal/dtos"
	"liveboard.app/pkg/livesync"
)

func (app *Liveboard) wsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/ws", prefix),
		app.WsHandler(),
	)
}

// WsHandler serves the room channel. A connection can join any number of
// event rooms by sending joinEvent messages; every joined room pushes its
// check-in counter until the connection drops. Malformed and unknown
// messages are dropped so a single bad client frame never kills the
// connection.
func (app *Liveboard) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(
			w,
			r,
			//nolint:exhaustruct //other fields are optional
			&websocket.AcceptOptions{InsecureSkipVerify: true},
		)
		if err != nil {
			log.Printf("websocket accept error: %v", err)
			return
		}
		defer conn.Close(
			websocket.StatusNormalClosure,
			"closing connection",
		) // normal closure

		var joined []string
		defer func() {
			for _, eventID := range joined {
				app.Services.Rooms.Leave(eventID, conn)
			}
		}()

		for {
			var env livesync.Envelope
			err = wsjson.Read(r.Context(), conn, &env)
			if err != nil {
				return
			}

			if env.Event != livesync.JoinEvent {
				continue
			}

			var msg dtos.JoinEventDto
			if err = json.Unmarshal(env.Payload, &msg); err != nil {
				log.Printf("malformed join message: %v", err)
				continue
			}

			if valid, _ := msg.Validate(); !valid {
				log.Printf("invalid join message for event %q", msg.EventUUID)
				continue
			}

			if app.Services.Rooms.Join(r.Context(), msg.EventUUID, conn) {
				joined = append(joined, msg.EventUUID)
			}
		}
	}
}
