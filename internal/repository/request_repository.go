package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// RequestRepository manages the denormalized requests ledger.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) error
	List(ctx context.Context) ([]domain.Request, error)
	ListByContact(ctx context.Context, contactID string) ([]domain.Request, error)
	DeleteByTicketOrRequestID(ctx context.Context, id string) error
}

type requestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository instantiates repository.
func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &requestRepository{pool: pool}
}

func (r *requestRepository) Create(ctx context.Context, request *domain.Request) error {
	const query = `
        INSERT INTO requests (request_type, contact_id, ticket_or_request_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		request.RequestType,
		request.ContactID,
		request.TicketOrRequestID,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *requestRepository) List(ctx context.Context) ([]domain.Request, error) {
	const query = `
        SELECT id, request_type, contact_id, ticket_or_request_id, created_at
        FROM requests ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *requestRepository) ListByContact(ctx context.Context, contactID string) ([]domain.Request, error) {
	const query = `
        SELECT id, request_type, contact_id, ticket_or_request_id, created_at
        FROM requests WHERE contact_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *requestRepository) DeleteByTicketOrRequestID(ctx context.Context, id string) error {
	const query = `DELETE FROM requests WHERE ticket_or_request_id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRequests(rows pgx.Rows) ([]domain.Request, error) {
	var result []domain.Request
	for rows.Next() {
		var request domain.Request
		if err := rows.Scan(
			&request.ID,
			&request.RequestType,
			&request.ContactID,
			&request.TicketOrRequestID,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
