package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=handlers

// TransactionLister pages through a user's transactions.
type TransactionLister interface {
	Transactions(ctx context.Context, userID uuid.UUID, page, size int) (*models.TransactionPage, error) // Newest first
}

// StatsReader aggregates a user's activity.
type StatsReader interface {
	UserStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)
}

// NewTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary List transactions
// @Description Returns one page of the caller's transactions, newest first, with USD values.
// @Tags masscoin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, from 0"
// @Param size query int false "Page size"
// @Success 200 {object} models.TransactionPage
// @Failure 400 {object} handlers.ErrorResponse "Invalid paging"
// @Router /masscoin/transactions [get]
func NewTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		page, ok := queryInt(w, q.Get("page"), "page", 0)
		if !ok {
			return
		}
		size, ok := queryInt(w, q.Get("size"), "size", 0)
		if !ok {
			return
		}

		result, err := svc.Transactions(r.Context(), userID, page, size)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewUserStatsHandler returns an HTTP handler with the caller's statistics.
// @Summary User statistics
// @Tags masscoin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserStats
// @Router /masscoin/user-stats [get]
func NewUserStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		stats, err := svc.UserStats(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// queryInt parses a non-negative query parameter; empty means def.
func queryInt(w http.ResponseWriter, raw, name string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}
