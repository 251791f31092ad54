package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Publish(ctx context.Context, id string, publishedOn time.Time) (*domain.Event, error)
	Reject(ctx context.Context, id string) (*domain.Event, error)
	Cancel(ctx context.Context, id string) (*domain.Event, error)
	ListByInitiator(ctx context.Context, userID string) ([]*domain.Event, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
}
