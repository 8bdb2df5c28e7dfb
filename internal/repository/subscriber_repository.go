package repository

import (
	"context"

	"github.com/gundeepm/portfolio-backend/internal/model"
)

// SubscriberRepository defines the persistence interface for newsletter
// subscribers. Emails are expected to arrive already normalized.
type SubscriberRepository interface {
	// Create inserts a new subscriber and populates ID and SubscribedAt.
	// Returns ErrDuplicateEmail if the email is already subscribed.
	Create(ctx context.Context, sub *model.Subscriber) error

	// FindByEmail returns the subscriber with the given normalized email,
	// or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)

	// List returns subscribers newest first.
	List(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error)

	// All returns every subscriber, oldest first. Used by the newsletter
	// batch job.
	All(ctx context.Context) ([]*model.Subscriber, error)
}
