package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func fakeClient(userID uuid.UUID, buffer int) *client {
	return &client{userID: userID, send: make(chan []byte, buffer)}
}

func TestHub_DeliverLocal(t *testing.T) {
	hub := NewHub(nil)
	alice := uuid.New()
	c := fakeClient(alice, 4)
	require.True(t, hub.register(c))

	require.NoError(t, hub.Deliver(context.Background(), alice, "/queue/messages", map[string]string{"content": "hi"}))

	var frame Frame
	require.NoError(t, json.Unmarshal(<-c.send, &frame))
	assert.Equal(t, CommandMessage, frame.Command)
	assert.Equal(t, fmt.Sprintf("/user/%s/queue/messages", alice), frame.Destination)
	assert.JSONEq(t, `{"content":"hi"}`, string(frame.Payload))

	// nobody connected is not an error
	assert.NoError(t, hub.Deliver(context.Background(), uuid.New(), "/queue/messages", "x"))
}

func TestHub_DropsSlowConsumer(t *testing.T) {
	hub := NewHub(nil)
	alice := uuid.New()
	slow := fakeClient(alice, 1)
	fast := fakeClient(alice, 8)
	require.True(t, hub.register(slow))
	require.True(t, hub.register(fast))

	ctx := context.Background()
	require.NoError(t, hub.Deliver(ctx, alice, "/queue/messages", 1))
	require.NoError(t, hub.Deliver(ctx, alice, "/queue/messages", 2))

	assert.Equal(t, 1, hub.Connections(alice))
	assert.Len(t, fast.send, 2)

	<-slow.send
	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(nil)
	alice := uuid.New()
	c := fakeClient(alice, 1)
	require.True(t, hub.register(c))

	hub.Close()
	hub.unregister(c)

	_, open := <-c.send
	assert.False(t, open)
	assert.False(t, hub.register(fakeClient(alice, 1)))
	assert.ErrorIs(t, hub.Deliver(context.Background(), alice, "/queue/messages", "x"), ErrHubClosed)
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestHub_FansOutAcrossInstances(t *testing.T) {
	rdb := setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher := NewHub(rdb)
	subscriber := NewHub(rdb)
	go func() { _ = subscriber.Run(ctx) }()

	bob := uuid.New()
	c := fakeClient(bob, 16)
	require.True(t, subscriber.register(c))

	// retry until the subscription is live
	require.Eventually(t, func() bool {
		if err := publisher.Deliver(ctx, bob, "/queue/messages", "ping"); err != nil {
			return false
		}
		select {
		case data := <-c.send:
			var frame Frame
			return json.Unmarshal(data, &frame) == nil && frame.Command == CommandMessage
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 50*time.Millisecond)
}
