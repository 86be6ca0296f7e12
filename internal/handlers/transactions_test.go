package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTransactionLister(ctrl)
	h := NewTransactionsHandler(svc)

	t.Run("paging passed through", func(t *testing.T) {
		svc.EXPECT().Transactions(gomock.Any(), alice, 2, 10).Return(&models.TransactionPage{
			Content:       []models.Transaction{{RecipientID: alice, Amount: dec("1")}},
			Page:          2,
			Size:          10,
			TotalElements: 21,
			Last:          true,
		}, nil)

		rr := serve(http.MethodGet, "/masscoin/transactions", "/masscoin/transactions?page=2&size=10", nil, &alice, h)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Equal(t, int64(21), gjson.Get(body, "totalElements").Int())
		assert.True(t, gjson.Get(body, "last").Bool())
		assert.Equal(t, 1, len(gjson.Get(body, "content").Array()))
	})

	t.Run("defaults", func(t *testing.T) {
		svc.EXPECT().Transactions(gomock.Any(), alice, 0, 0).Return(&models.TransactionPage{Content: []models.Transaction{}}, nil)

		rr := serve(http.MethodGet, "/masscoin/transactions", "/masscoin/transactions", nil, &alice, h)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("negative page", func(t *testing.T) {
		rr := serve(http.MethodGet, "/masscoin/transactions", "/masscoin/transactions?page=-1", nil, &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody("invalid page"), rr.Body.String())
	})
}

func TestUserStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStatsReader(ctrl)
	h := NewUserStatsHandler(svc)

	svc.EXPECT().UserStats(gomock.Any(), alice).Return(&models.UserStats{
		TotalTransactions: 4,
		TotalVolume:       dec("40"),
		TipsReceived:      dec("5"),
	}, nil)
	rr := serve(http.MethodGet, "/masscoin/user-stats", "/masscoin/user-stats", nil, &alice, h)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(4), gjson.Get(rr.Body.String(), "totalTransactions").Int())
	assert.Equal(t, "5", gjson.Get(rr.Body.String(), "tipsReceived").String())

	svc.EXPECT().UserStats(gomock.Any(), alice).Return(nil, errors.New("boom"))
	rr = serve(http.MethodGet, "/masscoin/user-stats", "/masscoin/user-stats", nil, &alice, h)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
