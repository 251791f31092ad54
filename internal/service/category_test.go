package service

import (
	"context"
	"testing"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	category, err := svc.Create(context.Background(), domain.CreateCategoryInput{Name: "concerts"})

	require.NoError(t, err)
	assert.Equal(t, "concerts", category.Name)
	assert.NotEmpty(t, category.ID)
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCategoryInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryService_Create_NameTaken(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCategoryNameTaken)

	_, err := svc.Create(context.Background(), domain.CreateCategoryInput{Name: "concerts"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestCategoryService_List(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Category{{ID: "c1"}}, nil)

	categories, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
