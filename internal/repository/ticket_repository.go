package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// TicketRepository encapsulates ticket detail persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.TicketDetail) error
	List(ctx context.Context) ([]domain.TicketDetail, error)
	GetByID(ctx context.Context, id string) (*domain.TicketDetail, error)
	ListByContact(ctx context.Context, contactID string) ([]domain.TicketDetail, error)
	Delete(ctx context.Context, id string) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.TicketDetail) error {
	const query = `
        INSERT INTO tickets (subject, description, contact_id, agent_id, priority)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Subject,
		ticket.Description,
		ticket.ContactID,
		ticket.AgentID,
		nullablePriority(ticket.Priority),
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.TicketDetail, error) {
	const query = `
        SELECT id, subject, description, contact_id, agent_id, priority, created_at
        FROM tickets ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.TicketDetail, error) {
	const query = `
        SELECT id, subject, description, contact_id, agent_id, priority, created_at
        FROM tickets WHERE id=$1`

	var ticket domain.TicketDetail
	var priority *string
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Subject,
		&ticket.Description,
		&ticket.ContactID,
		&ticket.AgentID,
		&priority,
		&ticket.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if priority != nil {
		ticket.Priority = domain.TicketPriority(*priority)
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByContact(ctx context.Context, contactID string) ([]domain.TicketDetail, error) {
	const query = `
        SELECT id, subject, description, contact_id, agent_id, priority, created_at
        FROM tickets WHERE contact_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tickets WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTickets(rows pgx.Rows) ([]domain.TicketDetail, error) {
	var result []domain.TicketDetail
	for rows.Next() {
		var ticket domain.TicketDetail
		var priority *string
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Subject,
			&ticket.Description,
			&ticket.ContactID,
			&ticket.AgentID,
			&priority,
			&ticket.CreatedAt,
		); err != nil {
			return nil, err
		}
		if priority != nil {
			ticket.Priority = domain.TicketPriority(*priority)
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func nullablePriority(p domain.TicketPriority) *string {
	if p == "" {
		return nil
	}
	s := string(p)
	return &s
}
