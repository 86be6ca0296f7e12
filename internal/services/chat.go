package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/repositories"
)

//go:generate mockgen -source=chat.go -destination=mock_chat.go -package=services

// MessagesQueue is the per-user destination chat messages are relayed to.
const MessagesQueue = "/queue/messages"

const (
	maxMessageLength  = 4000
	conversationLimit = 200
)

var (
	ErrEmptyMessage    = errors.New("message content is empty")
	ErrMessageTooLong  = errors.New("message content is too long")
	ErrMessageNotFound = errors.New("message not found")
)

// MessageRepository persists chat messages.
type MessageRepository interface {
	Save(ctx context.Context, msg *models.Message) error                                                // Inserts a message
	Conversation(ctx context.Context, userID, partnerID uuid.UUID, limit int) ([]models.Message, error) // Latest messages between two users, oldest first
	MarkRead(ctx context.Context, userID, partnerID uuid.UUID) (int64, error)                           // Marks the partner's messages read
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error                                         // Hides a message for one participant
}

// Relayer delivers frames to a user's queue on every connected node.
type Relayer interface {
	Deliver(ctx context.Context, userID uuid.UUID, destination string, payload any) error // Publishes payload to the user's destination
}

// ChatService stores chat messages and relays them to both participants.
type ChatService struct {
	messages MessageRepository
	relayer  Relayer
}

// NewChatService creates a ChatService.
func NewChatService(messages MessageRepository, relayer Relayer) *ChatService {
	return &ChatService{messages: messages, relayer: relayer}
}

// SendMessage persists the message and relays it to the recipient's and the
// sender's queues. Relay failures are logged; the message stays stored.
func (s *ChatService) SendMessage(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		logger.Log.Errorw("failed to save message", "sender", senderID, "recipient", recipientID, "error", err)
		return nil, err
	}

	targets := []uuid.UUID{recipientID, senderID}
	if recipientID == senderID {
		targets = targets[:1]
	}
	if s.relayer != nil {
		for _, userID := range targets {
			if err := s.relayer.Deliver(ctx, userID, MessagesQueue, msg); err != nil {
				logger.Log.Errorw("failed to relay message", "message_id", msg.ID, "userID", userID, "error", err)
			}
		}
	}
	return msg, nil
}

// Conversation returns the latest messages between the user and partnerID,
// oldest first, without the ones the user deleted.
func (s *ChatService) Conversation(ctx context.Context, userID, partnerID uuid.UUID) ([]models.Message, error) {
	msgs, err := s.messages.Conversation(ctx, userID, partnerID, conversationLimit)
	if err != nil {
		logger.Log.Errorw("failed to load conversation", "userID", userID, "partner", partnerID, "error", err)
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// MarkRead marks the partner's unread messages to the user as read.
func (s *ChatService) MarkRead(ctx context.Context, userID, partnerID uuid.UUID) (int64, error) {
	return s.messages.MarkRead(ctx, userID, partnerID)
}

// DeleteMessage hides the message for the user.
func (s *ChatService) DeleteMessage(ctx context.Context, userID, id uuid.UUID) error {
	err := s.messages.SoftDelete(ctx, id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrMessageNotFound
	}
	return err
}
