package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a persisted chat message.
// swagger:model Message
type Message struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	SenderID           uuid.UUID  `json:"senderId" db:"sender_id"`
	RecipientID        uuid.UUID  `json:"recipientId" db:"recipient_id"`
	Content            string     `json:"content" db:"content"`
	SentAt             time.Time  `json:"sentAt" db:"sent_at"`
	ReadAt             *time.Time `json:"readAt,omitempty" db:"read_at"`
	DeletedBySender    bool       `json:"-" db:"deleted_by_sender"`
	DeletedByRecipient bool       `json:"-" db:"deleted_by_recipient"`
}
