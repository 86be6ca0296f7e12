package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestBlockchainAdminHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sw := NewMockBlockchainSwitch(ctrl)

	t.Run("status", func(t *testing.T) {
		sw.EXPECT().IsEnabled().Return(false)

		rr := serve(http.MethodGet, "/admin/blockchain/status", "/admin/blockchain/status", nil, nil,
			NewBlockchainStatusHandler(sw))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"enabled":false}`, rr.Body.String())
	})

	t.Run("enable", func(t *testing.T) {
		gomock.InOrder(
			sw.EXPECT().Enable(),
			sw.EXPECT().IsEnabled().Return(true).Times(2),
		)

		rr := serve(http.MethodPost, "/admin/blockchain/enable", "/admin/blockchain/enable", nil, nil,
			NewBlockchainToggleHandler(sw, true))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"enabled":true}`, rr.Body.String())
	})

	t.Run("disable", func(t *testing.T) {
		gomock.InOrder(
			sw.EXPECT().Disable(),
			sw.EXPECT().IsEnabled().Return(false).Times(2),
		)

		rr := serve(http.MethodPost, "/admin/blockchain/disable", "/admin/blockchain/disable", nil, nil,
			NewBlockchainToggleHandler(sw, false))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"enabled":false}`, rr.Body.String())
	})
}

func TestRewardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRewarder(ctrl)
	h := NewRewardHandler(svc)

	t.Run("default description", func(t *testing.T) {
		svc.EXPECT().Reward(gomock.Any(), bob, decEq("15"), "Reward").
			Return(&models.Transaction{RecipientID: bob, Amount: dec("15"), Type: models.TransactionRewardDistribution}, nil)

		rr := serve(http.MethodPost, "/admin/rewards", "/admin/rewards",
			jsonBody(`{"userId":"`+bob.String()+`","amount":"15"}`), nil, h)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "REWARD_DISTRIBUTION", gjson.Get(rr.Body.String(), "transactionType").String())
		assert.False(t, gjson.Get(rr.Body.String(), "senderId").Exists())
	})

	t.Run("zero amount", func(t *testing.T) {
		svc.EXPECT().Reward(gomock.Any(), bob, decEq("0"), "weekly").Return(nil, services.ErrInvalidAmount)

		rr := serve(http.MethodPost, "/admin/rewards", "/admin/rewards",
			jsonBody(`{"userId":"`+bob.String()+`","amount":0,"description":"weekly"}`), nil, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody(services.ErrInvalidAmount.Error()), rr.Body.String())
	})
}
