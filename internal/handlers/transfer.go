package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transfer.go -destination=mock_transfer.go -package=handlers

// Transferer moves MassCoin between users.
type Transferer interface {
	Transfer(ctx context.Context, in services.TransferInput) (*models.Transaction, error) // Moves balance between wallets
}

// Tipper tips content creators.
type Tipper interface {
	Tip(ctx context.Context, senderID, creatorID uuid.UUID, postID string, amount decimal.Decimal) (*models.Transaction, error) // Transfers a CONTENT_TIP
}

// TransferRequest is the body of POST /masscoin/transfer.
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient user id
	// required: true
	RecipientID uuid.UUID `json:"recipientId" validate:"required"`

	// Amount in MASS
	// required: true
	// default: 10.5
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	// Optional note
	Message *string `json:"message,omitempty" validate:"omitempty,max=500"`

	// POST, PROFILE or CHAT
	// default: PROFILE
	ContextType string `json:"contextType" validate:"omitempty,oneof=POST PROFILE CHAT"`

	ContextID *string `json:"contextId,omitempty" validate:"omitempty,max=255"`

	// Defaults to P2P_TRANSFER
	TransactionType models.TransactionType `json:"transactionType,omitempty"`
}

// NewTransferHandler returns an HTTP handler for wallet to wallet transfers.
// @Summary Transfer MassCoin
// @Description Moves balance from the caller to the recipient and records the transaction.
// @Tags masscoin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.TransferRequest true "Transfer"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /masscoin/transfer [post]
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req TransferRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := services.TransferInput{
			SenderID:    userID,
			RecipientID: req.RecipientID,
			Amount:      req.Amount,
			Type:        req.TransactionType,
			Description: "Transfer",
			ContextType: req.ContextType,
			ContextID:   req.ContextID,
		}
		if req.Message != nil && *req.Message != "" {
			in.Description = *req.Message
		}

		txn, err := svc.Transfer(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}

// NewTipHandler returns an HTTP handler that tips the creator of a post.
// @Summary Tip a creator
// @Description Transfers MassCoin to the creator of a post as a CONTENT_TIP.
// @Tags masscoin
// @Produce json
// @Security BearerAuth
// @Param postId query string true "Post id"
// @Param amount query string true "Amount in MASS"
// @Param creatorId query string true "Creator user id"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Router /masscoin/tip [post]
func NewTipHandler(svc Tipper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		postID := q.Get("postId")
		if postID == "" {
			writeError(w, http.StatusBadRequest, "postId is required")
			return
		}
		amount, ok := parseAmount(w, q.Get("amount"))
		if !ok {
			return
		}
		creatorID, ok := parseUUID(w, q.Get("creatorId"), "creatorId")
		if !ok {
			return
		}

		txn, err := svc.Tip(r.Context(), userID, creatorID, postID, amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}

func parseAmount(w http.ResponseWriter, raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return decimal.Zero, false
	}
	return amount, true
}
