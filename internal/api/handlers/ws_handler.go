package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/davrk/leadbot/internal/services"
	"github.com/davrk/leadbot/internal/utils"
)

// WSHandler serves the chat widget's streaming transport: one question frame
// in, one answer frame out, over a long-lived connection.
type WSHandler struct {
	chat     services.ChatService
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(chat services.ChatService, log *logrus.Logger) *WSHandler {
	return &WSHandler{
		chat: chat,
		log:  log,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(os.Getenv("WS_ALLOWED_ORIGIN")),
		},
	}
}

// originChecker gates browser connections: when an origin is configured only
// that origin may connect. Requests without an Origin header (non-browser
// clients) always pass.
func originChecker(allowed string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed == "" {
			return true
		}
		return strings.EqualFold(origin, allowed)
	}
}

type wsQuestion struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

type wsAnswer struct {
	Type           string                   `json:"type"` // "answer" | "error"
	Response       string                   `json:"response,omitempty"`
	Source         string                   `json:"source,omitempty"`
	SuggestSupport bool                     `json:"suggest_support,omitempty"`
	Metadata       *services.AnswerMetadata `json:"metadata,omitempty"`
	Error          string                   `json:"error,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteJSON(v)
}

func (h *WSHandler) ChatWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote the response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
		return nil
	})

	for {
		_, data, rerr := conn.ReadMessage()
		if rerr != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))

		var q wsQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			_ = wc.writeJSON(wsAnswer{Type: "error", Error: "invalid json"})
			continue
		}

		res, meta, err := h.chat.Ask(c.Request.Context(), q.UserID, q.Message)
		if err != nil {
			_ = wc.writeJSON(wsAnswer{Type: "error", Error: utils.SafeMessage(err)})
			continue
		}

		if err := wc.writeJSON(wsAnswer{
			Type:           "answer",
			Response:       res.Answer,
			Source:         res.Source,
			SuggestSupport: res.SuggestSupport,
			Metadata:       &meta,
		}); err != nil {
			h.log.WithError(err).Debug("websocket write failed")
			return
		}
	}
}
