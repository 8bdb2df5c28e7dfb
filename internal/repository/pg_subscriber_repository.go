package repository

import (
	"context"
	"errors"

	"github.com/gundeepm/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSubscriberRepository is the PostgreSQL implementation of SubscriberRepository.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriberRepository creates a PgSubscriberRepository backed by the given pool.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

// Ensure PgSubscriberRepository implements SubscriberRepository at compile time.
var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

// Create inserts a new subscribers row and populates sub.ID and
// sub.SubscribedAt from the RETURNING clause. A unique-constraint
// conflict on the email column is translated to ErrDuplicateEmail.
func (r *PgSubscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO subscribers (email)
		 VALUES ($1)
		 RETURNING id, subscribed_at`,
		sub.Email,
	).Scan(&sub.ID, &sub.SubscribedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

// FindByEmail returns the subscriber with the given normalized email.
func (r *PgSubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, subscribed_at FROM subscribers WHERE email = $1`,
		email,
	).Scan(&s.ID, &s.Email, &s.SubscribedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns subscribers ordered by subscribed_at desc.
func (r *PgSubscriberRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, subscribed_at FROM subscribers
		 ORDER BY subscribed_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubscribers(rows)
}

// All returns every subscriber ordered by subscribed_at asc.
func (r *PgSubscriberRepository) All(ctx context.Context) ([]*model.Subscriber, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, subscribed_at FROM subscribers ORDER BY subscribed_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubscribers(rows)
}

func scanSubscribers(rows pgx.Rows) ([]*model.Subscriber, error) {
	var subs []*model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
