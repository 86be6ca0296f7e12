package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/maschat/internal/jwt"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/ratelimit"
	"github.com/tidwall/gjson"
)

//go:generate mockgen -source=controller.go -destination=mock_controller.go -package=chat

const handleTimeout = 10 * time.Second

// MessageSender stores and relays chat messages.
type MessageSender interface {
	SendMessage(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*models.Message, error) // Persists and relays a message
}

// Tokener validates connection tokens.
type Tokener interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error) // Validates the token and returns its claims
}

type sendPayload struct {
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

type addUserPayload struct {
	Username string `json:"username"`
}

// Controller authenticates WebSocket connections and handles their frames.
type Controller struct {
	hub      *Hub
	sender   MessageSender
	tokener  Tokener
	limiter  *ratelimit.Limiter
	upgrader websocket.Upgrader
}

// NewController creates a Controller. limiter may be nil.
func NewController(hub *Hub, sender MessageSender, tokener Tokener, limiter *ratelimit.Limiter) *Controller {
	return &Controller{
		hub:     hub,
		sender:  sender,
		tokener: tokener,
		limiter: limiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades an authenticated request to a chat connection. The
// token comes from the "token" query parameter or the bearer header.
// @Summary Chat WebSocket
// @Description Upgrades to a WebSocket carrying JSON frames {command, destination, payload}. Send to /chat.send or /chat.addUser; messages arrive on /user/{id}/queue/messages.
// @Tags chat
// @Param token query string false "JWT, alternative to the Authorization header"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws [get]
func (ctl *Controller) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, err := ctl.tokener.GetClaims(r.Context(), tokenFromRequest(r))
	if err != nil {
		logger.Log.Errorw("chat authorization failed", "err", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return
	}

	conn, err := ctl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("websocket upgrade failed", "userID", claims.UserID, "error", err)
		return
	}

	c := newClient(claims.UserID, conn)
	if !ctl.hub.register(c) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	logger.Log.Infow("chat connected", "userID", claims.UserID)

	go c.writePump()
	go c.readPump(ctl.hub, ctl.handle)
}

func tokenFromRequest(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func (ctl *Controller) handle(c *client, data []byte) {
	if !gjson.ValidBytes(data) {
		ctl.hub.sendTo(c, errorFrame("", "malformed frame"))
		return
	}
	destination := gjson.GetBytes(data, "destination").String()

	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		ctl.hub.sendTo(c, errorFrame(destination, "malformed frame"))
		return
	}
	if frame.Command != CommandSend {
		ctl.hub.sendTo(c, errorFrame(destination, "unsupported command"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	switch destination {
	case DestinationSend:
		if err := ctl.send(ctx, c, frame.Payload); err != nil {
			logger.Log.Errorw("chat send failed", "userID", c.userID, "error", err)
			ctl.hub.sendTo(c, errorFrame(destination, err.Error()))
		}
	case DestinationAddUser:
		var p addUserPayload
		_ = json.Unmarshal(frame.Payload, &p)
		logger.Log.Infow("chat user joined", "userID", c.userID, "username", p.Username)
	default:
		ctl.hub.sendTo(c, errorFrame(destination, "unknown destination"))
	}
}

var (
	errSenderMismatch = errors.New("senderId does not match the connection")
	errBadRecipient   = errors.New("recipientId must be a user id")
	errRateLimited    = errors.New("too many messages")
)

func (ctl *Controller) send(ctx context.Context, c *client, raw json.RawMessage) error {
	var p sendPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return errors.New("malformed payload")
	}
	if p.SenderID != "" && p.SenderID != c.userID.String() {
		return errSenderMismatch
	}
	recipientID, err := uuid.Parse(p.RecipientID)
	if err != nil {
		return errBadRecipient
	}
	if ctl.limiter != nil && !ctl.limiter.Allow(c.userID.String()) {
		return errRateLimited
	}

	_, err = ctl.sender.SendMessage(ctx, c.userID, recipientID, p.Content)
	return err
}
