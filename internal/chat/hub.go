package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/maschat/internal/logger"
)

const channelPrefix = "chat:user:"

// ErrHubClosed is returned by Deliver after Close.
var ErrHubClosed = errors.New("chat hub closed")

// Hub tracks the connections of this instance and routes frames to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	closed  bool

	rdb *redis.Client
}

// NewHub creates a Hub. With a nil rdb frames are delivered to local
// connections only.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*client]struct{}),
		rdb:     rdb,
	}
}

func userChannel(userID uuid.UUID) string {
	return channelPrefix + userID.String()
}

// Deliver sends payload to every connection of userID on any instance.
func (h *Hub) Deliver(ctx context.Context, userID uuid.UUID, destination string, payload any) error {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		return ErrHubClosed
	}

	data, err := newFrame(CommandMessage, UserDestination(userID, destination), payload)
	if err != nil {
		return err
	}

	if h.rdb == nil {
		h.deliverLocal(userID, data)
		return nil
	}

	err = h.rdb.Publish(ctx, userChannel(userID), data).Err()
	logger.Log.Debugw("chat frame published", "userID", userID, "destination", destination, "error", err)
	return err
}

// Run forwards frames published for any user to the local connections of
// that user until ctx is done. It returns at once when Redis is not used.
func (h *Hub) Run(ctx context.Context) error {
	if h.rdb == nil {
		return nil
	}

	pubsub := h.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	logger.Log.Infow("chat hub subscribed", "pattern", channelPrefix+"*")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			userID, err := uuid.Parse(strings.TrimPrefix(msg.Channel, channelPrefix))
			if err != nil {
				logger.Log.Warnw("ignoring chat frame on unexpected channel", "channel", msg.Channel)
				continue
			}
			h.deliverLocal(userID, []byte(msg.Payload))
		}
	}
}

func (h *Hub) deliverLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	var slow []*client
	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Log.Warnw("dropping slow chat consumer", "userID", userID)
		h.unregister(c)
	}
}

// sendTo queues data for one connection, dropping it when its buffer is full.
func (h *Hub) sendTo(c *client, data []byte) {
	h.mu.RLock()
	_, ok := h.clients[c.userID][c]
	if ok {
		select {
		case c.send <- data:
			h.mu.RUnlock()
			return
		default:
		}
	}
	h.mu.RUnlock()
	if ok {
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	return true
}

// unregister removes c and closes its queue; later calls are no-ops.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
}

// Connections returns the number of local connections of userID.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close disconnects every local connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for userID, conns := range h.clients {
		for c := range conns {
			close(c.send)
		}
		delete(h.clients, userID)
	}
}
