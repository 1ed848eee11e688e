// Package live pushes stock changes to connected websocket clients.
package live

import (
	"net/http"
	"sync"

	"github.com/matthewmachida/yumis-bakery/internal/logger"

	"github.com/gorilla/websocket"
)

// StockEvent is broadcast after every purchase or restock.
type StockEvent struct {
	Item  int64 `json:"item"`
	Stock int   `json:"stock"`
}

// Hub fans StockEvents out to every connected client.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// Serve upgrades the request and keeps the connection registered until
// the client goes away. Incoming messages are discarded; the feed is
// one-directional.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("websocket upgrade error", "error", err, "remote_addr", r.RemoteAddr)
		return
	}

	clientAddr := conn.RemoteAddr().String()
	logger.Log.Infow("stock feed client connected", "remote_addr", clientAddr)

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnw("websocket error", "error", err, "remote_addr", clientAddr)
			}
			break
		}
	}

	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()

	logger.Log.Infow("stock feed client disconnected", "remote_addr", clientAddr)
}

// Broadcast sends the event to every client, dropping connections whose
// writes fail.
func (h *Hub) Broadcast(ev StockEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(ev); err != nil {
			logger.Log.Warnw("dropping stock feed client", "error", err, "remote_addr", conn.RemoteAddr())
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
