package httpapi

import (
	"net/http"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/platform/id"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

const (
	liveWriteWait      = 10 * time.Second
	livePongWait       = 60 * time.Second
	livePingPeriod     = (livePongWait * 9) / 10
	liveSendBufferSize = 16
)

type liveEvent struct {
	Type string  `json:"type"`
	Game gameDTO `json:"game"`
}

type liveClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// LiveHub fans live game updates out to websocket subscribers. Slow
// subscribers are dropped rather than allowed to stall the broadcast.
type LiveHub struct {
	logger   *logging.Logger
	ids      id.Generator
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*liveClient
	closed  bool
}

func NewLiveHub(ids id.Generator, logger *logging.Logger) *LiveHub {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveHub{
		logger: logger,
		ids:    ids,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[string]*liveClient),
	}
}

// ServeWS upgrades the connection and keeps it subscribed until the
// client disconnects.
func (h *LiveHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	clientID, err := h.ids.NewID()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "generate subscriber id failed", "error", err)
		_ = conn.Close()
		return
	}

	client := &liveClient{id: clientID, conn: conn, send: make(chan []byte, liveSendBufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[clientID] = client
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.InfoContext(r.Context(), "live subscriber connected", "subscriber_id", clientID, "total", total)

	go h.writePump(client)
	h.readPump(client)
}

// BroadcastGameUpdate pushes one changed game to every subscriber.
// Implements usecase.Broadcaster.
func (h *LiveHub) BroadcastGameUpdate(g game.Game) {
	payload, err := sonic.Marshal(liveEvent{Type: "GAME_UPDATED", Game: mapGameDTO(g, "")})
	if err != nil {
		h.logger.Error("marshal live event failed", "error", err)
		return
	}

	h.mu.RLock()
	stale := make([]*liveClient, 0)
	for _, client := range h.clients {
		select {
		case client.send <- payload:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.logger.Warn("dropping slow live subscriber", "subscriber_id", client.id)
		h.drop(client)
	}
}

// Close disconnects every subscriber and rejects new ones.
func (h *LiveHub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*liveClient, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[string]*liveClient)
	h.mu.Unlock()

	for _, client := range clients {
		close(client.send)
		_ = client.conn.Close()
	}
}

func (h *LiveHub) drop(client *liveClient) {
	h.mu.Lock()
	current, ok := h.clients[client.id]
	if !ok || current != client {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.id)
	h.mu.Unlock()

	close(client.send)
	_ = client.conn.Close()
}

func (h *LiveHub) readPump(client *liveClient) {
	defer h.drop(client)

	client.conn.SetReadLimit(512)
	_ = client.conn.SetReadDeadline(time.Now().Add(livePongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	// The stream is one-way: incoming frames are only read to detect
	// disconnects and answer pings.
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *LiveHub) writePump(client *liveClient) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
