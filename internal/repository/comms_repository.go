package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// CommsRepository manages per-ticket message threads. Messages live inside
// the thread row as a JSONB array, so a thread reads and appends as one
// document.
type CommsRepository interface {
	Create(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error)
	// AppendMessage pushes msg onto the thread matching ticketOrRequestID and
	// returns the number of threads matched (0 when no thread exists).
	AppendMessage(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error)
	GetThread(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error)
}

type commsRepository struct {
	pool *pgxpool.Pool
}

// NewCommsRepository instantiates repository.
func NewCommsRepository(pool *pgxpool.Pool) CommsRepository {
	return &commsRepository{pool: pool}
}

func (r *commsRepository) Create(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error) {
	const query = `
        INSERT INTO comms (ticket_or_request_id)
        VALUES ($1)
        RETURNING id, created_at`

	comms := &domain.Comms{
		TicketOrRequestID: ticketOrRequestID,
		Messages:          []domain.Message{},
	}
	err := r.pool.QueryRow(ctx, query, ticketOrRequestID).Scan(&comms.ID, &comms.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return comms, nil
}

func (r *commsRepository) AppendMessage(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("marshal message: %w", err)
	}

	const query = `
        UPDATE comms SET messages = messages || $2::jsonb
        WHERE ticket_or_request_id=$1`
	cmd, err := r.pool.Exec(ctx, query, ticketOrRequestID, string(payload))
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *commsRepository) GetThread(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error) {
	const query = `
        SELECT id, ticket_or_request_id, messages, created_at
        FROM comms WHERE ticket_or_request_id=$1`

	var comms domain.Comms
	var raw []byte
	if err := r.pool.QueryRow(ctx, query, ticketOrRequestID).Scan(
		&comms.ID,
		&comms.TicketOrRequestID,
		&raw,
		&comms.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comms.Messages = []domain.Message{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &comms.Messages); err != nil {
			return nil, fmt.Errorf("unmarshal thread messages: %w", err)
		}
	}
	return &comms, nil
}
