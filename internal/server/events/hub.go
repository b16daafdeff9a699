// Package events streams sync progress to websocket subscribers.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

const (
	// bufferSize - емкость очереди событий; при переполнении события теряются
	bufferSize = 256

	writeTimeout = 5 * time.Second
)

// Hub fans progress events out to connected clients. Publish never blocks
// the sync run.
type Hub struct {
	ctx       context.Context
	logger    *slog.Logger
	clients   map[*websocket.Conn]struct{}
	broadcast chan api.ProgressEvent
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
}

// NewHub creates a hub and starts its broadcast loop.
func NewHub(logger *slog.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger.With("component", "events"),
		clients:   make(map[*websocket.Conn]struct{}),
		broadcast: make(chan api.ProgressEvent, bufferSize),
	}

	h.wg.Add(1)
	go h.loop()
	return h
}

// Publish queues a progress event. It matches syncsvc.ProgressFunc.
func (h *Hub) Publish(p syncsvc.Progress) {
	ev := api.ProgressEvent{
		Phase:    string(p.Phase),
		EntityID: p.EntityID,
		Title:    p.Title,
		Status:   string(p.Status),
		Current:  p.Current,
		Total:    p.Total,
	}

	select {
	case h.broadcast <- ev:
	case <-h.ctx.Done():
	default:
		h.logger.Debug("Progress queue full, dropping event", "entity_id", p.EntityID)
	}
}

// ServeHTTP upgrades GET /api/v1/sync/events to a websocket.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug("Progress subscriber connected", "clients", count)

	go h.readLoop(conn)
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close stops the loop and disconnects every subscriber.
func (h *Hub) Close() error {
	h.cancel()
	h.wg.Wait()

	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	for conn := range clients {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	return nil
}

func (h *Hub) loop() {
	defer h.wg.Done()

	for {
		select {
		case <-h.ctx.Done():
			return
		case ev := <-h.broadcast:
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("Failed to encode progress event", "error", err)
				continue
			}

			h.mu.RLock()
			clients := make([]*websocket.Conn, 0, len(h.clients))
			for conn := range h.clients {
				clients = append(clients, conn)
			}
			h.mu.RUnlock()

			for _, conn := range clients {
				ctx, cancel := context.WithTimeout(h.ctx, writeTimeout)
				err := conn.Write(ctx, websocket.MessageText, data)
				cancel()
				if err != nil {
					h.remove(conn)
				}
			}
		}
	}
}

// readLoop держит соединение и замечает отключение клиента
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.Read(h.ctx); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if ok {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
}
