// Package chat relays chat frames between WebSocket clients. Per-user
// queues fan out across instances through Redis pub/sub.
package chat

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Frame commands.
const (
	CommandSend    = "SEND"
	CommandMessage = "MESSAGE"
	CommandError   = "ERROR"
)

// Inbound destinations.
const (
	DestinationSend    = "/chat.send"
	DestinationAddUser = "/chat.addUser"
)

// Frame is the JSON envelope exchanged over the socket.
type Frame struct {
	Command     string          `json:"command"`
	Destination string          `json:"destination,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// UserDestination is the destination a frame for userID carries once
// it reaches that user's queue.
func UserDestination(userID uuid.UUID, queue string) string {
	return fmt.Sprintf("/user/%s%s", userID, queue)
}

func newFrame(command, destination string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Command: command, Destination: destination, Payload: raw})
}

func errorFrame(destination, message string) []byte {
	data, _ := newFrame(CommandError, destination, map[string]string{"error": message})
	return data
}
