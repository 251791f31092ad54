package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RequestRepo interface {
	// Create inserts the request atomically with the event-side guards
	// (published, no self-request, capacity, duplicate) and may flip the
	// status to confirmed when the event needs no moderation or has no
	// participant limit.
	Create(ctx context.Context, r *domain.Request) error

	// CancelOwn cancels the requester's own request and, when the request
	// was confirmed, decrements the event's confirmed counter in the same
	// transaction.
	CancelOwn(ctx context.Context, requestID, userID string) (*domain.Request, error)

	GetByID(ctx context.Context, id string) (*domain.Request, error)
	ListByIDs(ctx context.Context, eventID string, ids []string) ([]*domain.Request, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error)
	ListByRequester(ctx context.Context, userID string) ([]*domain.Request, error)

	// ApplyAdmission moves the listed requests to confirmed/rejected and
	// bumps the event's confirmed counter in a single transaction. Every
	// listed request must still be pending and the counter must stay within
	// the participant limit, otherwise nothing is applied. With cascade set,
	// every request of the event still pending after the listed moves is
	// rejected inside the same transaction and returned.
	ApplyAdmission(ctx context.Context, eventID string, confirmIDs, rejectIDs []string, cascade bool) ([]*domain.Request, error)
}
