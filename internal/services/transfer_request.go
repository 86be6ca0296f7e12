package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/repositories"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transfer_request.go -destination=mock_transfer_request.go -package=services

var (
	ErrTransferRequestNotFound   = errors.New("transfer request not found")
	ErrTransferRequestNotPending = errors.New("transfer request is not pending")
	ErrTransferRequestExpired    = errors.New("transfer request has expired")
	ErrTransferRequestForbidden  = errors.New("not allowed to act on this transfer request")
)

// TransferRequestRepository persists transfer requests.
type TransferRequestRepository interface {
	Create(ctx context.Context, req *models.TransferRequest) error                               // Inserts a PENDING request
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.TransferRequest, error)             // Locks a request
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransferRequestStatus) error // Moves status when it still equals from
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TransferRequest, error)          // Requests sent or received, newest first
	CountPending(ctx context.Context, recipientID uuid.UUID) (int64, error)                      // Unexpired pending requests addressed to the user
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)                             // Marks overdue requests EXPIRED
}

// WalletTransferer executes wallet transfers.
type WalletTransferer interface {
	TransferInTx(ctx context.Context, in TransferInput) (*models.Transaction, error) // Moves balance inside the caller's transaction
	PublishTransaction(ctx context.Context, txn *models.Transaction)                 // Publishes a committed transaction
}

// TransferRequestInput describes a new transfer request.
type TransferRequestInput struct {
	RecipientID uuid.UUID
	Amount      decimal.Decimal
	Message     *string
	ContextType string
	ContextID   *string
}

// TransferRequestService proposes transfers that the recipient approves.
type TransferRequestService struct {
	tx       Transactor
	requests TransferRequestRepository
	wallet   WalletTransferer
	ttl      time.Duration
	now      func() time.Time
}

// NewTransferRequestService creates a TransferRequestService; requests
// expire ttl after creation.
func NewTransferRequestService(tx Transactor, requests TransferRequestRepository, wallet WalletTransferer, ttl time.Duration) *TransferRequestService {
	return &TransferRequestService{
		tx:       tx,
		requests: requests,
		wallet:   wallet,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create stores a PENDING request from senderID.
func (s *TransferRequestService) Create(ctx context.Context, senderID uuid.UUID, in TransferRequestInput) (*models.TransferRequest, error) {
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	if senderID == in.RecipientID {
		return nil, ErrSelfTransfer
	}
	if in.ContextType == "" {
		in.ContextType = models.ContextProfile
	}

	req := &models.TransferRequest{
		SenderID:    senderID,
		RecipientID: in.RecipientID,
		Amount:      in.Amount,
		Message:     in.Message,
		ContextType: in.ContextType,
		ContextID:   in.ContextID,
		ExpiresAt:   s.now().Add(s.ttl),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		logger.Log.Errorw("failed to create transfer request", "sender", senderID, "recipient", in.RecipientID, "error", err)
		return nil, err
	}
	return req, nil
}

// Approve executes the requested transfer. Only the recipient may approve.
// The transfer is published once the approval has committed.
func (s *TransferRequestService) Approve(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error) {
	var (
		req *models.TransferRequest
		txn *models.Transaction
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) (err error) {
		req, err = s.lockActionable(ctx, userID, id, true)
		if err != nil {
			return err
		}

		requestID := req.ID.String()
		description := "Transfer request"
		if req.Message != nil && *req.Message != "" {
			description = *req.Message
		}
		txn, err = s.wallet.TransferInTx(ctx, TransferInput{
			SenderID:    req.SenderID,
			RecipientID: req.RecipientID,
			Amount:      req.Amount,
			Type:        models.TransactionP2PTransfer,
			Description: description,
			ContextType: models.ContextRequest,
			ContextID:   &requestID,
		})
		if err != nil {
			return err
		}
		return s.setStatus(ctx, req, models.TransferRequestApproved)
	})
	if err != nil {
		logger.Log.Errorw("failed to approve transfer request", "request_id", id, "userID", userID, "error", err)
		return nil, err
	}

	s.wallet.PublishTransaction(ctx, txn)
	return req, nil
}

// Reject declines a request addressed to the user.
func (s *TransferRequestService) Reject(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error) {
	return s.close(ctx, userID, id, true, models.TransferRequestRejected)
}

// Cancel withdraws a request the user sent.
func (s *TransferRequestService) Cancel(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error) {
	return s.close(ctx, userID, id, false, models.TransferRequestCancelled)
}

func (s *TransferRequestService) close(ctx context.Context, userID, id uuid.UUID, asRecipient bool, status models.TransferRequestStatus) (*models.TransferRequest, error) {
	var req *models.TransferRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) (err error) {
		req, err = s.lockActionable(ctx, userID, id, asRecipient)
		if err != nil {
			return err
		}
		return s.setStatus(ctx, req, status)
	})
	if err != nil {
		logger.Log.Errorw("failed to close transfer request", "request_id", id, "status", status, "error", err)
		return nil, err
	}
	return req, nil
}

func (s *TransferRequestService) lockActionable(ctx context.Context, userID, id uuid.UUID, asRecipient bool) (*models.TransferRequest, error) {
	req, err := s.requests.GetForUpdate(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrTransferRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	owner := req.SenderID
	if asRecipient {
		owner = req.RecipientID
	}
	if owner != userID {
		return nil, ErrTransferRequestForbidden
	}
	if req.Status != models.TransferRequestPending {
		return nil, ErrTransferRequestNotPending
	}
	if !s.now().Before(req.ExpiresAt) {
		return nil, ErrTransferRequestExpired
	}
	return req, nil
}

func (s *TransferRequestService) setStatus(ctx context.Context, req *models.TransferRequest, status models.TransferRequestStatus) error {
	err := s.requests.UpdateStatus(ctx, req.ID, models.TransferRequestPending, status)
	if errors.Is(err, repositories.ErrStatusConflict) {
		return ErrTransferRequestNotPending
	}
	if err != nil {
		return err
	}
	req.Status = status
	return nil
}

// List returns requests the user sent or received, newest first.
func (s *TransferRequestService) List(ctx context.Context, userID uuid.UUID) ([]models.TransferRequest, error) {
	list, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transfer requests", "userID", userID, "error", err)
		return nil, err
	}
	if list == nil {
		list = []models.TransferRequest{}
	}
	return list, nil
}

// PendingCount returns the number of pending requests addressed to the user.
func (s *TransferRequestService) PendingCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.requests.CountPending(ctx, userID)
}

// ExpireOverdue marks overdue PENDING requests EXPIRED.
func (s *TransferRequestService) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := s.requests.ExpireOverdue(ctx, s.now())
	if err != nil {
		logger.Log.Errorw("failed to expire transfer requests", "error", err)
		return 0, err
	}
	if n > 0 {
		logger.Log.Infow("transfer requests expired", "count", n)
	}
	return n, nil
}
