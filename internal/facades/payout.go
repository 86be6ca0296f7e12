package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/tidwall/gjson"
)

// ErrPayoutRejected is returned when the provider refuses a payout.
var ErrPayoutRejected = errors.New("payout rejected by provider")

type payoutRequest struct {
	WithdrawalID string          `json:"withdrawalId"`
	UserID       string          `json:"userId"`
	Amount       string          `json:"amount"`
	Currency     string          `json:"currency"`
	Method       string          `json:"method"`
	Destination  string          `json:"destination"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
}

// PayoutHTTPFacade sends BANK and MOBILE_MONEY withdrawals to an HTTP
// payout provider.
type PayoutHTTPFacade struct {
	client *resty.Client
}

// NewPayoutHTTPFacade creates a facade for the provider at baseURL.
func NewPayoutHTTPFacade(baseURL, apiKey string, timeout time.Duration) *PayoutHTTPFacade {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("X-API-Key", apiKey).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	return &PayoutHTTPFacade{client: client}
}

// Send submits the payout and returns the provider reference. The
// withdrawal id is the idempotency key, so retries never pay twice.
func (f *PayoutHTTPFacade) Send(ctx context.Context, w *models.Withdrawal) (string, error) {
	body := payoutRequest{
		WithdrawalID: w.ID.String(),
		UserID:       w.UserID.String(),
		Amount:       w.Amount.StringFixed(6),
		Currency:     "MASS",
		Method:       string(w.Method),
		Destination:  w.Destination,
	}
	if w.Metadata != nil {
		body.Metadata = json.RawMessage(*w.Metadata)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", w.ID.String()).
		SetBody(body).
		Post("/payouts")
	if err != nil {
		logger.Log.Errorw("payout request failed", "withdrawal_id", w.ID, "error", err)
		return "", err
	}

	// the provider may have accepted the payout; the caller retries with
	// the same idempotency key
	if resp.StatusCode() >= http.StatusInternalServerError {
		logger.Log.Warnw("payout provider unavailable", "withdrawal_id", w.ID, "status", resp.StatusCode())
		return "", fmt.Errorf("payout provider unavailable: %s", resp.Status())
	}

	result := gjson.ParseBytes(resp.Body())
	if resp.IsError() {
		reason := result.Get("error").String()
		if reason == "" {
			reason = result.Get("message").String()
		}
		if reason == "" {
			reason = resp.Status()
		}
		logger.Log.Errorw("payout refused", "withdrawal_id", w.ID, "status", resp.StatusCode(), "reason", reason)
		return "", fmt.Errorf("%w: %s", ErrPayoutRejected, reason)
	}

	if status := result.Get("status").String(); status == "REJECTED" || status == "FAILED" {
		return "", fmt.Errorf("%w: %s", ErrPayoutRejected, result.Get("reason").String())
	}

	ref := result.Get("reference").String()
	if ref == "" {
		ref = result.Get("id").String()
	}
	if ref == "" {
		return "", fmt.Errorf("%w: response without reference", ErrPayoutRejected)
	}
	return ref, nil
}
