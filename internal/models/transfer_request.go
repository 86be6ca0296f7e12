package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequestStatus is the state of a transfer request.
type TransferRequestStatus string

const (
	TransferRequestPending   TransferRequestStatus = "PENDING"
	TransferRequestApproved  TransferRequestStatus = "APPROVED"
	TransferRequestRejected  TransferRequestStatus = "REJECTED"
	TransferRequestExpired   TransferRequestStatus = "EXPIRED"
	TransferRequestCancelled TransferRequestStatus = "CANCELLED"
)

// TransferRequest asks the recipient to approve a transfer from the sender.
// swagger:model TransferRequest
type TransferRequest struct {
	ID          uuid.UUID             `json:"id" db:"id"`
	SenderID    uuid.UUID             `json:"senderId" db:"sender_id"`
	RecipientID uuid.UUID             `json:"recipientId" db:"recipient_id"`
	Amount      decimal.Decimal       `json:"amount" db:"amount"`
	Message     *string               `json:"message,omitempty" db:"message"`
	ContextType string                `json:"contextType" db:"context_type"`
	ContextID   *string               `json:"contextId,omitempty" db:"context_id"`
	Status      TransferRequestStatus `json:"status" db:"status"`
	CreatedAt   time.Time             `json:"createdAt" db:"created_at"`
	ExpiresAt   time.Time             `json:"expiresAt" db:"expires_at"`
}
