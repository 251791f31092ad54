package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
)

type CategoryService struct {
	repo ports.CategoryRepo
}

func NewCategoryService(repo ports.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	category := &domain.Category{
		ID:        uuid.New().String(),
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}
