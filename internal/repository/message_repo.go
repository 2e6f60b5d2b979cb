package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
)

// MessageOrder selects the retrieval ordering for Query.
type MessageOrder int

const (
	// OldestFirst groups sessions together and orders causally within each;
	// this is the ordering the pairing scan depends on.
	OldestFirst MessageOrder = iota
	// NewestFirst is the listing order for recent-activity views.
	NewestFirst
)

// MessageFilter is a conjunction of optional equality filters.
type MessageFilter struct {
	SessionID *string
	Role      *string
	OwnerID   *int64
}

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Append inserts one message row. The database assigns id and created_at,
// so insertion order and timestamps stay monotonic under concurrent writers.
func (r *MessageRepo) Append(ctx context.Context, role, content string, sessionID *string, ownerID int64) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		OwnerID:   ownerID,
	}

	query := `
		INSERT INTO chat_messages (session_id, role, content, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, sessionID, role, content, ownerID).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to append chat message: %w", err)
	}
	return msg, nil
}

// Query returns messages matching the filter in the requested order.
// A limit <= 0 means no limit.
func (r *MessageRepo) Query(ctx context.Context, filter MessageFilter, order MessageOrder, limit, offset int) ([]models.ChatMessage, error) {
	query := `SELECT id, session_id, role, content, owner_id, created_at FROM chat_messages`

	where, args := buildWhere(filter)
	query += where

	switch order {
	case NewestFirst:
		query += " ORDER BY created_at DESC, id DESC"
	default:
		query += " ORDER BY session_id ASC NULLS FIRST, created_at ASC, id ASC"
	}

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]models.ChatMessage, 0)
	for rows.Next() {
		var msg models.ChatMessage
		if scanErr := rows.Scan(
			&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.OwnerID, &msg.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		msgs = append(msgs, msg)
	}

	return msgs, rows.Err()
}

func (r *MessageRepo) Count(ctx context.Context, filter MessageFilter) (int, error) {
	query := `SELECT COUNT(*) FROM chat_messages`

	where, args := buildWhere(filter)
	query += where

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func buildWhere(filter MessageFilter) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.SessionID != nil {
		args = append(args, *filter.SessionID)
		conditions = append(conditions, fmt.Sprintf("session_id = $%d", len(args)))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
