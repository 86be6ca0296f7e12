package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transfer_request.go -destination=mock_transfer_request.go -package=handlers

// TransferRequestCreator proposes transfers.
type TransferRequestCreator interface {
	Create(ctx context.Context, senderID uuid.UUID, in services.TransferRequestInput) (*models.TransferRequest, error) // Inserts a PENDING request
}

// TransferRequestActor acts on an existing transfer request.
type TransferRequestActor interface {
	Approve(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error) // Recipient accepts and the transfer runs
	Reject(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error)  // Recipient declines
	Cancel(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error)  // Sender withdraws the request
}

// TransferRequestLister reads a user's transfer requests.
type TransferRequestLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TransferRequest, error) // Sent or received, newest first
	PendingCount(ctx context.Context, userID uuid.UUID) (int64, error)            // Pending requests addressed to the user
}

// CreateTransferRequest is the body of POST /masscoin/transfer-request.
// swagger:model CreateTransferRequest
type CreateTransferRequest struct {
	// required: true
	RecipientID uuid.UUID `json:"recipientId" validate:"required"`

	// required: true
	// default: 25
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	Message *string `json:"message,omitempty" validate:"omitempty,max=500"`

	// default: CHAT
	ContextType string `json:"contextType" validate:"omitempty,oneof=POST PROFILE CHAT"`

	ContextID *string `json:"contextId,omitempty" validate:"omitempty,max=255"`
}

// PendingCountResponse is the body of GET /masscoin/transfer-requests/pending-count.
// swagger:model PendingCountResponse
type PendingCountResponse struct {
	Count int64 `json:"count"`
}

// NewCreateTransferRequestHandler returns an HTTP handler that proposes a transfer.
// @Summary Create transfer request
// @Description Asks the recipient to approve a transfer from the caller. Requests expire when not acted on.
// @Tags transfer-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.CreateTransferRequest true "Transfer request"
// @Success 201 {object} models.TransferRequest
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /masscoin/transfer-request [post]
func NewCreateTransferRequestHandler(svc TransferRequestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CreateTransferRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := svc.Create(r.Context(), userID, services.TransferRequestInput{
			RecipientID: req.RecipientID,
			Amount:      req.Amount,
			Message:     req.Message,
			ContextType: req.ContextType,
			ContextID:   req.ContextID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

type transferRequestAction func(ctx context.Context, userID, id uuid.UUID) (*models.TransferRequest, error)

func newTransferRequestActionHandler(action transferRequestAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := parseUUID(w, chi.URLParam(r, "id"), "transfer request id")
		if !ok {
			return
		}

		req, err := action(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

// NewApproveTransferRequestHandler returns an HTTP handler that approves a request.
// @Summary Approve transfer request
// @Description Only the recipient may approve. The transfer runs in the same database transaction.
// @Tags transfer-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transfer request id"
// @Success 200 {object} models.TransferRequest
// @Failure 400 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 403 {object} handlers.ErrorResponse "Not the recipient"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Not pending or expired"
// @Router /masscoin/transfer-request/{id}/approve [post]
func NewApproveTransferRequestHandler(svc TransferRequestActor) http.HandlerFunc {
	return newTransferRequestActionHandler(svc.Approve)
}

// NewRejectTransferRequestHandler returns an HTTP handler that rejects a request.
// @Summary Reject transfer request
// @Tags transfer-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transfer request id"
// @Success 200 {object} models.TransferRequest
// @Failure 403 {object} handlers.ErrorResponse "Not the recipient"
// @Failure 409 {object} handlers.ErrorResponse "Not pending"
// @Router /masscoin/transfer-request/{id}/reject [post]
func NewRejectTransferRequestHandler(svc TransferRequestActor) http.HandlerFunc {
	return newTransferRequestActionHandler(svc.Reject)
}

// NewCancelTransferRequestHandler returns an HTTP handler that cancels a request.
// @Summary Cancel transfer request
// @Tags transfer-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transfer request id"
// @Success 200 {object} models.TransferRequest
// @Failure 403 {object} handlers.ErrorResponse "Not the sender"
// @Failure 409 {object} handlers.ErrorResponse "Not pending"
// @Router /masscoin/transfer-request/{id}/cancel [post]
func NewCancelTransferRequestHandler(svc TransferRequestActor) http.HandlerFunc {
	return newTransferRequestActionHandler(svc.Cancel)
}

// NewListTransferRequestsHandler returns an HTTP handler listing the caller's requests.
// @Summary List transfer requests
// @Tags transfer-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TransferRequest
// @Router /masscoin/transfer-requests [get]
func NewListTransferRequestsHandler(svc TransferRequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		reqs, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if reqs == nil {
			reqs = []models.TransferRequest{}
		}

		writeJSON(w, http.StatusOK, reqs)
	}
}

// NewPendingCountHandler returns an HTTP handler counting requests awaiting the caller.
// @Summary Count pending transfer requests
// @Tags transfer-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PendingCountResponse
// @Router /masscoin/transfer-requests/pending-count [get]
func NewPendingCountHandler(svc TransferRequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		count, err := svc.PendingCount(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PendingCountResponse{Count: count})
	}
}
