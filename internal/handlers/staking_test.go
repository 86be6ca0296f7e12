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

func TestStakeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStaker(ctrl)
	h := NewStakeHandler(svc)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Stake(gomock.Any(), alice, decEq("50"), 6).
			Return(&models.Wallet{UserID: alice, Balance: dec("50"), StakedAmount: dec("50")}, nil)

		rr := serve(http.MethodPost, "/masscoin/stake", "/masscoin/stake?amount=50&period=6", nil, &alice, h)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "50", gjson.Get(rr.Body.String(), "stakedAmount").String())
	})

	t.Run("bad period", func(t *testing.T) {
		rr := serve(http.MethodPost, "/masscoin/stake", "/masscoin/stake?amount=50&period=six", nil, &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody("invalid period"), rr.Body.String())
	})

	t.Run("period out of range", func(t *testing.T) {
		svc.EXPECT().Stake(gomock.Any(), alice, decEq("50"), 0).Return(nil, services.ErrInvalidStakingPeriod)

		rr := serve(http.MethodPost, "/masscoin/stake", "/masscoin/stake?amount=50&period=0", nil, &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody(services.ErrInvalidStakingPeriod.Error()), rr.Body.String())
	})
}

func TestUnstakeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStaker(ctrl)
	h := NewUnstakeHandler(svc)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Unstake(gomock.Any(), alice, decEq("20")).
			Return(&models.Wallet{UserID: alice, Balance: dec("70"), StakedAmount: dec("30")}, nil)

		rr := serve(http.MethodPost, "/masscoin/unstake", "/masscoin/unstake?amount=20", nil, &alice, h)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "70", gjson.Get(rr.Body.String(), "balance").String())
	})

	t.Run("more than staked", func(t *testing.T) {
		svc.EXPECT().Unstake(gomock.Any(), alice, decEq("999")).Return(nil, services.ErrInsufficientFunds)

		rr := serve(http.MethodPost, "/masscoin/unstake", "/masscoin/unstake?amount=999", nil, &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing amount", func(t *testing.T) {
		rr := serve(http.MethodPost, "/masscoin/unstake", "/masscoin/unstake", nil, &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody("invalid amount"), rr.Body.String())
	})
}
