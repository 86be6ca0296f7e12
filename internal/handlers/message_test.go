package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestSendMessageHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockMessageService)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "sent",
			body: `{"recipientId":"` + bob.String() + `","content":"hi bob"}`,
			mockSetup: func(m *MockMessageService) {
				m.EXPECT().SendMessage(gomock.Any(), alice, bob, "hi bob").
					Return(&models.Message{SenderID: alice, RecipientID: bob, Content: "hi bob"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "empty content",
			body:         `{"recipientId":"` + bob.String() + `","content":""}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "content failed on required",
		},
		{
			name: "whitespace content",
			body: `{"recipientId":"` + bob.String() + `","content":"   "}`,
			mockSetup: func(m *MockMessageService) {
				m.EXPECT().SendMessage(gomock.Any(), alice, bob, "   ").Return(nil, services.ErrEmptyMessage)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrEmptyMessage.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockMessageService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serve(http.MethodPost, "/messages/send", "/messages/send", jsonBody(tt.body), &alice, NewSendMessageHandler(svc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.JSONEq(t, errorBody(tt.expectedErr), rr.Body.String())
			} else {
				assert.Equal(t, "hi bob", gjson.Get(rr.Body.String(), "content").String())
			}
		})
	}
}

func TestConversationHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockMessageService(ctrl)
	msgID := uuid.MustParse("55555555-5555-5555-5555-555555555555")

	t.Run("conversation", func(t *testing.T) {
		svc.EXPECT().Conversation(gomock.Any(), alice, bob).Return([]models.Message{
			{ID: msgID, SenderID: bob, RecipientID: alice, Content: "yo"},
		}, nil)

		rr := serve(http.MethodGet, "/messages/conversation", "/messages/conversation?with="+bob.String(), nil, &alice,
			NewConversationHandler(svc))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "yo", gjson.Get(rr.Body.String(), "0.content").String())
	})

	t.Run("conversation without partner", func(t *testing.T) {
		rr := serve(http.MethodGet, "/messages/conversation", "/messages/conversation", nil, &alice,
			NewConversationHandler(svc))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, errorBody("invalid partner id"), rr.Body.String())
	})

	t.Run("mark read", func(t *testing.T) {
		svc.EXPECT().MarkRead(gomock.Any(), alice, bob).Return(int64(2), nil)

		rr := serve(http.MethodPost, "/messages/mark-read", "/messages/mark-read?partnerId="+bob.String(), nil, &alice,
			NewMarkReadHandler(svc))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"updated":2}`, rr.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		svc.EXPECT().DeleteMessage(gomock.Any(), alice, msgID).Return(nil)

		rr := serve(http.MethodDelete, "/messages/{id}", "/messages/"+msgID.String(), nil, &alice,
			NewDeleteMessageHandler(svc))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("delete missing", func(t *testing.T) {
		svc.EXPECT().DeleteMessage(gomock.Any(), alice, msgID).Return(services.ErrMessageNotFound)

		rr := serve(http.MethodDelete, "/messages/{id}", "/messages/"+msgID.String(), nil, &alice,
			NewDeleteMessageHandler(svc))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
