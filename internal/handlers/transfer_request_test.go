package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestCreateTransferRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTransferRequestCreator(ctrl)
	h := NewCreateTransferRequestHandler(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), alice, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, in services.TransferRequestInput) (*models.TransferRequest, error) {
				assert.Equal(t, bob, in.RecipientID)
				assert.True(t, in.Amount.Equal(dec("25")))
				require.NotNil(t, in.Message)
				assert.Equal(t, "rent", *in.Message)
				return &models.TransferRequest{
					SenderID:    alice,
					RecipientID: bob,
					Amount:      in.Amount,
					Status:      models.TransferRequestPending,
				}, nil
			})

		body := `{"recipientId":"` + bob.String() + `","amount":25,"message":"rent","contextType":"CHAT"}`
		rr := serve(http.MethodPost, "/masscoin/transfer-request", "/masscoin/transfer-request", jsonBody(body), &alice, h)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "PENDING", gjson.Get(rr.Body.String(), "status").String())
	})

	t.Run("to self", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), alice, gomock.Any()).Return(nil, services.ErrSelfTransfer)

		body := `{"recipientId":"` + alice.String() + `","amount":25}`
		rr := serve(http.MethodPost, "/masscoin/transfer-request", "/masscoin/transfer-request", jsonBody(body), &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("message too long", func(t *testing.T) {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}
		body := `{"recipientId":"` + bob.String() + `","amount":1,"message":"` + string(long) + `"}`
		rr := serve(http.MethodPost, "/masscoin/transfer-request", "/masscoin/transfer-request", jsonBody(body), &alice, h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody("message failed on max=500"), rr.Body.String())
	})
}

func TestTransferRequestActionHandlers(t *testing.T) {
	id := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	tests := []struct {
		name         string
		action       string
		target       string
		mockSetup    func(m *MockTransferRequestActor)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "approve",
			action: "approve",
			target: "/masscoin/transfer-request/" + id.String() + "/approve",
			mockSetup: func(m *MockTransferRequestActor) {
				m.EXPECT().Approve(gomock.Any(), bob, id).
					Return(&models.TransferRequest{ID: id, Status: models.TransferRequestApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "approve by sender",
			action: "approve",
			target: "/masscoin/transfer-request/" + id.String() + "/approve",
			mockSetup: func(m *MockTransferRequestActor) {
				m.EXPECT().Approve(gomock.Any(), bob, id).Return(nil, services.ErrTransferRequestForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  services.ErrTransferRequestForbidden.Error(),
		},
		{
			name:   "approve expired",
			action: "approve",
			target: "/masscoin/transfer-request/" + id.String() + "/approve",
			mockSetup: func(m *MockTransferRequestActor) {
				m.EXPECT().Approve(gomock.Any(), bob, id).Return(nil, services.ErrTransferRequestExpired)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  services.ErrTransferRequestExpired.Error(),
		},
		{
			name:   "reject",
			action: "reject",
			target: "/masscoin/transfer-request/" + id.String() + "/reject",
			mockSetup: func(m *MockTransferRequestActor) {
				m.EXPECT().Reject(gomock.Any(), bob, id).
					Return(&models.TransferRequest{ID: id, Status: models.TransferRequestRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "cancel unknown",
			action: "cancel",
			target: "/masscoin/transfer-request/" + id.String() + "/cancel",
			mockSetup: func(m *MockTransferRequestActor) {
				m.EXPECT().Cancel(gomock.Any(), bob, id).Return(nil, services.ErrTransferRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  services.ErrTransferRequestNotFound.Error(),
		},
		{
			name:         "bad id",
			action:       "approve",
			target:       "/masscoin/transfer-request/42/approve",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid transfer request id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockTransferRequestActor(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			byAction := map[string]http.HandlerFunc{
				"approve": NewApproveTransferRequestHandler(svc),
				"reject":  NewRejectTransferRequestHandler(svc),
				"cancel":  NewCancelTransferRequestHandler(svc),
			}

			rr := serve(http.MethodPost, "/masscoin/transfer-request/{id}/"+tt.action, tt.target, nil, &bob, byAction[tt.action])

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.JSONEq(t, errorBody(tt.expectedErr), rr.Body.String())
			} else {
				assert.Equal(t, id.String(), gjson.Get(rr.Body.String(), "id").String())
			}
		})
	}
}

func TestListTransferRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTransferRequestLister(ctrl)

	t.Run("empty list is an array", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), alice).Return(nil, nil)

		rr := serve(http.MethodGet, "/masscoin/transfer-requests", "/masscoin/transfer-requests", nil, &alice,
			NewListTransferRequestsHandler(svc))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("pending count", func(t *testing.T) {
		svc.EXPECT().PendingCount(gomock.Any(), alice).Return(int64(3), nil)

		rr := serve(http.MethodGet, "/masscoin/transfer-requests/pending-count", "/masscoin/transfer-requests/pending-count",
			nil, &alice, NewPendingCountHandler(svc))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"count":3}`, rr.Body.String())
	})
}
