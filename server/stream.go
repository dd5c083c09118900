package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/spektr-org/launchdash/binder"
	"github.com/spektr-org/launchdash/engine"
	"github.com/spektr-org/launchdash/internal/logging"
)

const (
	writeWait      = 5 * time.Second
	clientBuffer   = 16
	pingInterval   = 30 * time.Second
	readLimitBytes = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Update is one message on the view stream.
type Update struct {
	View binder.ViewID    `json:"view"`
	Spec engine.ChartSpec `json:"spec"`
}

type client struct {
	id   string
	send chan Update
}

// Hub fans out freshly built ChartSpecs to websocket clients. Its Observe
// method is a binder.Observer.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *slog.Logger
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logging.New("stream"),
	}
}

// Observe queues the update on every client. A client whose buffer is full
// misses the update; the next recomputation of the same view supersedes it.
func (h *Hub) Observe(id binder.ViewID, spec engine.ChartSpec) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- Update{View: id, Spec: spec}:
		default:
			h.logger.Warn("dropping update for slow client", "client", c.id, "view", string(id))
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register() *client {
	c := &client{id: uuid.New().String(), send: make(chan Update, clientBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// HandleStream handles GET /api/stream. The client first receives the
// current spec of both views, then every recomputed view as it happens.
// Messages from the client are discarded.
//
// The client is registered before the snapshot is taken, so an event applied
// in between is delivered as an update after the snapshot rather than lost.
func (h *Handlers) HandleStream(c *gin.Context) {
	cl := h.hub.register()
	defer h.hub.unregister(cl)

	snap, err := h.queue.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "HandleStream", err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade the websocket", "error", err)
		return
	}
	defer ws.Close()

	logger := h.logger.With("handler", "HandleStream", "client", cl.id)
	logger.Info("stream client connected")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		ws.SetReadLimit(readLimitBytes)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for _, u := range []Update{
		{View: binder.ViewProportion, Spec: snap.Views.Proportion},
		{View: binder.ViewCorrelation, Spec: snap.Views.Correlation},
	} {
		if err := writeUpdate(ws, u); err != nil {
			logger.Warn("failed to write initial view", "error", err)
			return
		}
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	for {
		select {
		case <-closed:
			logger.Info("stream client disconnected")
			return
		case <-c.Request.Context().Done():
			return
		case u := <-cl.send:
			if err := writeUpdate(ws, u); err != nil {
				logger.Warn("failed to write update", "error", err)
				return
			}
		case <-ping.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func writeUpdate(ws *websocket.Conn, u Update) error {
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteJSON(u)
}
