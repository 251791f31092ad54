package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
