package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/maschat/internal/models"
)

const messageColumns = `id, sender_id, recipient_id, content, sent_at, read_at,
	deleted_by_sender, deleted_by_recipient`

// MessageRepository handles chat messages.
type MessageRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageRepository {
	return &MessageRepository{db: db, txGetter: txGetter}
}

// Save inserts msg and fills in its id and send time.
func (r *MessageRepository) Save(ctx context.Context, msg *models.Message) error {
	const query = `
		INSERT INTO messages (id, sender_id, recipient_id, content, sent_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING sent_at
	`
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	args := []any{msg.ID, msg.SenderID, msg.RecipientID, msg.Content}

	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &msg.SentAt, query, args...)
	logQuery(query, args, msg.SentAt, err)
	return err
}

// Conversation returns the latest limit messages between two users in
// chronological order, hiding the ones userID deleted.
func (r *MessageRepository) Conversation(ctx context.Context, userID, partnerID uuid.UUID, limit int) ([]models.Message, error) {
	const query = `
		SELECT * FROM (
			SELECT ` + messageColumns + `
			FROM messages
			WHERE (sender_id = $1 AND recipient_id = $2 AND NOT deleted_by_sender)
			   OR (sender_id = $2 AND recipient_id = $1 AND NOT deleted_by_recipient)
			ORDER BY sent_at DESC, id DESC
			LIMIT $3
		) latest
		ORDER BY sent_at, id
	`

	messages := []models.Message{}
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &messages, query, userID, partnerID, limit)
	logQuery(query, []any{userID, partnerID, limit}, len(messages), err)
	return messages, err
}

// MarkRead marks every unread message from partnerID to userID read.
func (r *MessageRepository) MarkRead(ctx context.Context, userID, partnerID uuid.UUID) (int64, error) {
	const query = `
		UPDATE messages SET read_at = NOW()
		WHERE recipient_id = $1 AND sender_id = $2 AND read_at IS NULL
	`

	res, err := getExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, partnerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, partnerID}, rowsAffected, err)
	return rowsAffected, err
}

// SoftDelete hides a message for userID. It returns ErrNotFound when the
// message does not exist or userID is not part of it.
func (r *MessageRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	const query = `
		UPDATE messages
		SET deleted_by_sender = deleted_by_sender OR sender_id = $2,
		    deleted_by_recipient = deleted_by_recipient OR recipient_id = $2
		WHERE id = $1 AND (sender_id = $2 OR recipient_id = $2)
	`

	res, err := getExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, userID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
