package livesync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// ErrNotConnected is returned by Emit while the transport has no live
// connection. Callers treat joins as fire-and-forget; the connect signal
// after the next successful dial covers re-sending them.
var ErrNotConnected = errors.New("transport not connected")

// WebSocketTransport is the production Transport: a persistent websocket
// connection that reconnects on its own after every drop, waiting backoff
// between attempts.
type WebSocketTransport struct {
	logger  *slog.Logger
	url     string
	backoff time.Duration

	ctx       context.Context
	ctxCancel context.CancelFunc

	mu         sync.Mutex
	conn       *websocket.Conn
	connectFns []func()
	handlers   map[string][]func(payload []byte)
}

func NewWebSocketTransport(
	logger *slog.Logger,
	url string,
	backoff time.Duration,
) *WebSocketTransport {
	ctx, cancel := context.WithCancel(context.Background())

	transport := &WebSocketTransport{
		logger:     logger,
		url:        url,
		backoff:    backoff,
		ctx:        ctx,
		ctxCancel:  cancel,
		mu:         sync.Mutex{},
		conn:       nil,
		connectFns: nil,
		handlers:   make(map[string][]func(payload []byte)),
	}

	go transport.run()

	return transport
}

func (transport *WebSocketTransport) Emit(event string, payload any) error {
	transport.mu.Lock()
	conn := transport.conn
	transport.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	env, err := NewEnvelope(event, payload)
	if err != nil {
		return err
	}

	return wsjson.Write(transport.ctx, conn, env)
}

func (transport *WebSocketTransport) OnConnect(fn func()) {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	transport.connectFns = append(transport.connectFns, fn)
}

func (transport *WebSocketTransport) OnEvent(
	event string,
	fn func(payload []byte),
) {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	transport.handlers[event] = append(transport.handlers[event], fn)
}

func (transport *WebSocketTransport) Close() error {
	transport.ctxCancel()

	transport.mu.Lock()
	conn := transport.conn
	transport.conn = nil
	transport.mu.Unlock()

	if conn != nil {
		return conn.Close(websocket.StatusNormalClosure, "closing connection")
	}
	return nil
}

func (transport *WebSocketTransport) run() {
	for {
		if transport.ctx.Err() != nil {
			return
		}

		//nolint:exhaustruct //other fields are optional
		conn, _, err := websocket.Dial(transport.ctx, transport.url, nil)
		if err != nil {
			transport.logger.Warn("websocket dial failed", logging.ErrAttr(err))
			if !transport.wait() {
				return
			}
			continue
		}

		transport.setConn(conn)
		transport.fireConnect()

		transport.readLoop(conn)
		transport.setConn(nil)

		if transport.ctx.Err() != nil {
			return
		}

		transport.logger.Warn("websocket connection lost, reconnecting")
		if !transport.wait() {
			return
		}
	}
}

func (transport *WebSocketTransport) readLoop(conn *websocket.Conn) {
	for {
		var env Envelope
		err := wsjson.Read(transport.ctx, conn, &env)
		if err != nil {
			return
		}

		transport.dispatch(env)
	}
}

func (transport *WebSocketTransport) dispatch(env Envelope) {
	transport.mu.Lock()
	handlers := make([]func([]byte), len(transport.handlers[env.Event]))
	copy(handlers, transport.handlers[env.Event])
	transport.mu.Unlock()

	for _, fn := range handlers {
		fn(env.Payload)
	}
}

func (transport *WebSocketTransport) fireConnect() {
	transport.mu.Lock()
	connectFns := make([]func(), len(transport.connectFns))
	copy(connectFns, transport.connectFns)
	transport.mu.Unlock()

	for _, fn := range connectFns {
		fn()
	}
}

func (transport *WebSocketTransport) setConn(conn *websocket.Conn) {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	transport.conn = conn
}

// wait sleeps for the reconnect backoff, returning false when the transport
// was closed meanwhile.
func (transport *WebSocketTransport) wait() bool {
	select {
	case <-time.After(transport.backoff):
		return true
	case <-transport.ctx.Done():
		return false
	}
}
