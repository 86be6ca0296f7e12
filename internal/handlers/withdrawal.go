package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=withdrawal.go -destination=mock_withdrawal.go -package=handlers

// IdempotencyKeyHeader carries the client supplied idempotency key.
const IdempotencyKeyHeader = "Idempotency-Key"

// WithdrawalRequester accepts withdrawal orders.
type WithdrawalRequester interface {
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, req services.WithdrawalRequest) (*models.Withdrawal, error) // Debits the wallet and stores a PENDING withdrawal
}

// WithdrawalReader reads a user's withdrawals.
type WithdrawalReader interface {
	ListWithdrawals(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error)  // Newest first
	GetWithdrawal(ctx context.Context, userID, id uuid.UUID) (*models.Withdrawal, error) // Only the owner's rows
}

// WithdrawalRequest is the body of POST /masscoin/withdrawals.
// swagger:model WithdrawalRequest
type WithdrawalRequest struct {
	// required: true
	// default: 100
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	// BANK, MOBILE_MONEY or P2P
	// required: true
	Method string `json:"method" validate:"required,oneof=BANK MOBILE_MONEY P2P"`

	// Account number, mobile money wallet or peer address
	// required: true
	Destination string `json:"destination" validate:"required,max=255"`

	// Optional JSON object, or a string holding JSON
	Metadata json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// NewRequestWithdrawalHandler returns an HTTP handler that orders a withdrawal.
// @Summary Request withdrawal
// @Description Debits the wallet and stores a PENDING withdrawal. A repeated Idempotency-Key returns the stored withdrawal when the payload matches.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body handlers.WithdrawalRequest true "Withdrawal"
// @Success 201 {object} models.Withdrawal
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 409 {object} handlers.ErrorResponse "Idempotency key reused with a different payload"
// @Router /masscoin/withdrawals [post]
func NewRequestWithdrawalHandler(svc WithdrawalRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req WithdrawalRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		key := r.Header.Get(IdempotencyKeyHeader)
		if len(key) > 255 {
			writeError(w, http.StatusBadRequest, "idempotency key is too long")
			return
		}

		withdrawal, err := svc.RequestWithdrawal(r.Context(), userID, services.WithdrawalRequest{
			Amount:         req.Amount,
			Method:         models.WithdrawalMethod(req.Method),
			Destination:    req.Destination,
			Metadata:       metadataString(req.Metadata),
			IdempotencyKey: key,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, withdrawal)
	}
}

// metadataString accepts metadata both as a JSON value and as a string
// holding JSON.
func metadataString(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	s = string(raw)
	return &s
}

// NewListWithdrawalsHandler returns an HTTP handler listing the caller's withdrawals.
// @Summary List withdrawals
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Withdrawal
// @Router /masscoin/withdrawals [get]
func NewListWithdrawalsHandler(svc WithdrawalReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		list, err := svc.ListWithdrawals(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if list == nil {
			list = []models.Withdrawal{}
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// NewGetWithdrawalHandler returns an HTTP handler showing one withdrawal.
// @Summary Get withdrawal
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal id"
// @Success 200 {object} models.Withdrawal
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /masscoin/withdrawals/{id} [get]
func NewGetWithdrawalHandler(svc WithdrawalReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := parseUUID(w, chi.URLParam(r, "id"), "withdrawal id")
		if !ok {
			return
		}

		withdrawal, err := svc.GetWithdrawal(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, withdrawal)
	}
}
