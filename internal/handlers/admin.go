package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=handlers

// BlockchainSwitch toggles between the real and the simulated ledger.
type BlockchainSwitch interface {
	IsEnabled() bool // Reports whether the real ledger is active
	Enable()         // Switches to the real ledger
	Disable()        // Switches to the simulated ledger
}

// Rewarder credits platform rewards.
type Rewarder interface {
	Reward(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error) // Credits a REWARD_DISTRIBUTION
}

// BlockchainStatusResponse reports the active ledger.
// swagger:model BlockchainStatusResponse
type BlockchainStatusResponse struct {
	Enabled bool `json:"enabled"`
}

// RewardRequest is the body of POST /admin/rewards.
// swagger:model RewardRequest
type RewardRequest struct {
	// required: true
	UserID uuid.UUID `json:"userId" validate:"required"`
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	// default: Weekly creator reward
	Description string `json:"description" validate:"max=255"`
}

// NewBlockchainStatusHandler returns an HTTP handler reporting the active ledger.
// @Summary Blockchain status
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} handlers.BlockchainStatusResponse
// @Router /admin/blockchain/status [get]
func NewBlockchainStatusHandler(svc BlockchainSwitch) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, BlockchainStatusResponse{Enabled: svc.IsEnabled()})
	}
}

// NewBlockchainToggleHandler returns an HTTP handler that switches the ledger on or off.
// @Summary Enable or disable the blockchain
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} handlers.BlockchainStatusResponse
// @Router /admin/blockchain/enable [post]
// @Router /admin/blockchain/disable [post]
func NewBlockchainToggleHandler(svc BlockchainSwitch, enable bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if enable {
			svc.Enable()
		} else {
			svc.Disable()
		}
		logger.Log.Infow("blockchain switched", "enabled", svc.IsEnabled())
		writeJSON(w, http.StatusOK, BlockchainStatusResponse{Enabled: svc.IsEnabled()})
	}
}

// NewRewardHandler returns an HTTP handler that credits a reward.
// @Summary Distribute reward
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param request body handlers.RewardRequest true "Reward"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid reward"
// @Router /admin/rewards [post]
func NewRewardHandler(svc Rewarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RewardRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Description == "" {
			req.Description = "Reward"
		}

		txn, err := svc.Reward(r.Context(), req.UserID, req.Amount, req.Description)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}
