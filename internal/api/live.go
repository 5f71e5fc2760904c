package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/api/handlers"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

const (
	// Ping/Pong settings
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
)

// LiveHandler runs live what-if sessions over WebSocket. The client
// streams full CalculatorInputs frames as sliders move and receives a
// recomputed result frame for each one.
// ⭐ SSOT: the live session protocol lives in this file and nowhere else.
type LiveHandler struct {
	engine   *roi.Engine
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewLiveHandler creates a new live session handler
func NewLiveHandler(engine *roi.Engine, log *logger.Logger) *LiveHandler {
	return &LiveHandler{
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The sales tool runs on its own origin in every deployment
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// Handle upgrades the request and serves the session
// GET /ws/roi
func (h *LiveHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade live session")
		return
	}

	h.logger.WithField("client", conn.RemoteAddr().String()).Debug("Live session opened")

	go h.session(conn)
}

// session owns one connection: a read loop for inputs frames and a ping
// loop sharing a write lock, per the gorilla single-writer rule.
func (h *LiveHandler) session(conn *websocket.Conn) {
	defer conn.Close()

	var writeMu sync.Mutex
	write := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(v)
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				writeMu.Lock()
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				err := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).Warn("Live session read failed")
			} else {
				h.logger.Debug("Live session closed")
			}
			return
		}

		var inputs roi.CalculatorInputs
		if err := json.Unmarshal(message, &inputs); err != nil {
			// A malformed frame answers with an error frame; the session stays up
			if werr := write(map[string]string{"error": "invalid inputs frame"}); werr != nil {
				return
			}
			continue
		}

		result := h.engine.Calculate(inputs)

		if err := write(handlers.NewCalculateResponse(result)); err != nil {
			h.logger.WithError(err).Warn("Live session write failed")
			return
		}
	}
}
