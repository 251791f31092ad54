package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RequestNotifier interface {
	NotifyRequestCreated(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestRejected(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestCanceled(ctx context.Context, user *domain.User, event *domain.Event)
}
