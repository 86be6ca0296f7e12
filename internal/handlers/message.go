package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
)

//go:generate mockgen -source=message.go -destination=mock_message.go -package=handlers

// MessageService stores and relays chat messages.
type MessageService interface {
	SendMessage(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*models.Message, error) // Persists and relays to both users
	Conversation(ctx context.Context, userID, partnerID uuid.UUID) ([]models.Message, error)                   // Oldest first, without the caller's deletions
	MarkRead(ctx context.Context, userID, partnerID uuid.UUID) (int64, error)                                  // Marks the partner's messages read
	DeleteMessage(ctx context.Context, userID, id uuid.UUID) error                                             // Soft deletes for the caller
}

// SendMessageRequest is the body of POST /messages/send.
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// required: true
	RecipientID uuid.UUID `json:"recipientId" validate:"required"`
	// required: true
	// default: hello
	Content string `json:"content" validate:"required"`
}

// MarkReadResponse reports how many messages were marked read.
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// NewSendMessageHandler returns an HTTP handler that sends a chat message.
// @Summary Send message
// @Description Persists a message and relays it to the sender and recipient queues.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.SendMessageRequest true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} handlers.ErrorResponse "Invalid message"
// @Router /messages/send [post]
func NewSendMessageHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req SendMessageRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		msg, err := svc.SendMessage(r.Context(), userID, req.RecipientID, req.Content)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, msg)
	}
}

// NewConversationHandler returns an HTTP handler with the conversation between the caller and a partner.
// @Summary Conversation
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param with query string true "Partner user id"
// @Success 200 {array} models.Message
// @Failure 400 {object} handlers.ErrorResponse "Invalid partner id"
// @Router /messages/conversation [get]
func NewConversationHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		partnerID, ok := parseUUID(w, r.URL.Query().Get("with"), "partner id")
		if !ok {
			return
		}

		msgs, err := svc.Conversation(r.Context(), userID, partnerID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if msgs == nil {
			msgs = []models.Message{}
		}

		writeJSON(w, http.StatusOK, msgs)
	}
}

// NewMarkReadHandler returns an HTTP handler that marks a partner's messages read.
// @Summary Mark messages read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param partnerId query string true "Partner user id"
// @Success 200 {object} handlers.MarkReadResponse
// @Router /messages/mark-read [post]
func NewMarkReadHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		partnerID, ok := parseUUID(w, r.URL.Query().Get("partnerId"), "partner id")
		if !ok {
			return
		}

		n, err := svc.MarkRead(r.Context(), userID, partnerID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MarkReadResponse{Updated: n})
	}
}

// NewDeleteMessageHandler returns an HTTP handler that hides a message for the caller.
// @Summary Delete message
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /messages/{id} [delete]
func NewDeleteMessageHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := parseUUID(w, chi.URLParam(r, "id"), "message id")
		if !ok {
			return
		}

		if err := svc.DeleteMessage(r.Context(), userID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
