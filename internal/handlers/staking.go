package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=staking.go -destination=mock_staking.go -package=handlers

// Staker locks and releases staked MassCoin.
type Staker interface {
	Stake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, periodMonths int) (*models.Wallet, error) // Moves balance to staked
	Unstake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)                 // Moves staked back to balance
}

// NewStakeHandler returns an HTTP handler that stakes MassCoin.
// @Summary Stake MassCoin
// @Description Locks part of the balance for the given number of months.
// @Tags masscoin
// @Produce json
// @Security BearerAuth
// @Param amount query string true "Amount in MASS"
// @Param period query int true "Staking period in months"
// @Success 200 {object} models.Wallet
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or period"
// @Router /masscoin/stake [post]
func NewStakeHandler(svc Staker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		amount, ok := parseAmount(w, q.Get("amount"))
		if !ok {
			return
		}
		period, err := strconv.Atoi(q.Get("period"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid period")
			return
		}

		wallet, err := svc.Stake(r.Context(), userID, amount, period)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, wallet)
	}
}

// NewUnstakeHandler returns an HTTP handler that releases staked MassCoin.
// @Summary Unstake MassCoin
// @Tags masscoin
// @Produce json
// @Security BearerAuth
// @Param amount query string true "Amount in MASS"
// @Success 200 {object} models.Wallet
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Router /masscoin/unstake [post]
func NewUnstakeHandler(svc Staker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		amount, ok := parseAmount(w, r.URL.Query().Get("amount"))
		if !ok {
			return
		}

		wallet, err := svc.Unstake(r.Context(), userID, amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, wallet)
	}
}
