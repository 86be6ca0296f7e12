package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=handlers

// WalletGetter returns the caller's wallet.
type WalletGetter interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) // Returns the wallet, creating an empty one
}

// AddressUpdater binds an on-chain address to a wallet.
type AddressUpdater interface {
	UpdateWalletAddress(ctx context.Context, userID uuid.UUID, address string) (*models.Wallet, error) // Stores the address and enqueues registration
}

// UpdateAddressRequest is the body of POST /masscoin/wallet/address.
// swagger:model UpdateAddressRequest
type UpdateAddressRequest struct {
	// EVM address
	// required: true
	// default: 0x52908400098527886E0F7030069857D2E4169EE7
	Address string `json:"address" validate:"required"`
}

// NewGetWalletHandler returns an HTTP handler that shows the caller's wallet.
// @Summary Get wallet
// @Description Returns the MassCoin wallet of the authenticated user. The wallet is created with a zero balance on first access.
// @Tags masscoin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Wallet
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /masscoin/wallet [get]
func NewGetWalletHandler(svc WalletGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		wallet, err := svc.GetWallet(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, wallet)
	}
}

// NewUpdateAddressHandler returns an HTTP handler that sets the wallet address.
// @Summary Set wallet address
// @Description Validates an EVM address, stores it on the wallet and registers it on the ledger.
// @Tags masscoin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.UpdateAddressRequest true "Wallet address"
// @Success 200 {object} models.Wallet
// @Failure 400 {object} handlers.ErrorResponse "Invalid address"
// @Failure 409 {object} handlers.ErrorResponse "Address already in use"
// @Router /masscoin/wallet/address [post]
func NewUpdateAddressHandler(svc AddressUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req UpdateAddressRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		wallet, err := svc.UpdateWalletAddress(r.Context(), userID, req.Address)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, wallet)
	}
}
