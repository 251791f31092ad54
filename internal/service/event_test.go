package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testMinLeadTime        = 2 * time.Hour
	testPublishMinLeadTime = time.Hour
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockCategoryRepo, *mocks.MockUserRepo, *mocks.MockStatsClient) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	stats := mocks.NewMockStatsClient(t)
	svc := NewEventService(repo, categoryRepo, userRepo, stats, newTestLogger(t), testMinLeadTime, testPublishMinLeadTime)
	return svc, repo, categoryRepo, userRepo, stats
}

func TestEventService_Create(t *testing.T) {
	svc, repo, categoryRepo, userRepo, _ := newEventService(t)

	input := domain.CreateEventInput{
		Title:            "Go meetup",
		Annotation:       "monthly",
		CategoryID:       "c1",
		EventDate:        time.Now().Add(3 * time.Hour),
		ParticipantLimit: 10,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	categoryRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "u1", input)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPending, event.Status)
	assert.Equal(t, "u1", event.InitiatorID)
	assert.True(t, event.RequestModeration) // default
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_ModerationDisabled(t *testing.T) {
	svc, repo, categoryRepo, userRepo, _ := newEventService(t)

	moderation := false
	input := domain.CreateEventInput{
		Title:             "Open doors",
		CategoryID:        "c1",
		EventDate:         time.Now().Add(3 * time.Hour),
		RequestModeration: &moderation,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	categoryRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "u1", input)

	require.NoError(t, err)
	assert.False(t, event.RequestModeration)
}

func TestEventService_Create_DateTooSoon(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	input := domain.CreateEventInput{
		Title:      "Rushed",
		CategoryID: "c1",
		EventDate:  time.Now().Add(30 * time.Minute),
	}

	_, err := svc.Create(context.Background(), "u1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventDateTooSoon)
}

func TestEventService_Create_EmptyTitle(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	_, err := svc.Create(context.Background(), "u1", domain.CreateEventInput{
		EventDate: time.Now().Add(3 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_NegativeLimit(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	_, err := svc.Create(context.Background(), "u1", domain.CreateEventInput{
		Title:            "Bad",
		EventDate:        time.Now().Add(3 * time.Hour),
		ParticipantLimit: -1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_UpdateByOwner(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	event := &domain.Event{
		ID:          "e1",
		InitiatorID: "u1",
		Title:       "Old title",
		Status:      domain.EventStatusPending,
	}
	newTitle := "New title"

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdateByOwner(context.Background(), "u1", "e1", domain.UpdateEventInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
}

func TestEventService_UpdateByOwner_NotOwner(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1", Status: domain.EventStatusPending}, nil)

	_, err := svc.UpdateByOwner(context.Background(), "intruder", "e1", domain.UpdateEventInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestEventService_UpdateByOwner_PublishedIsImmutable(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1", Status: domain.EventStatusPublished}, nil)

	_, err := svc.UpdateByOwner(context.Background(), "u1", "e1", domain.UpdateEventInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotPending)
}

func TestEventService_UpdateByOwner_DateTooSoon(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1", Status: domain.EventStatusPending}, nil)

	soon := time.Now().Add(time.Hour)
	_, err := svc.UpdateByOwner(context.Background(), "u1", "e1", domain.UpdateEventInput{
		EventDate: &soon,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventDateTooSoon)
}

func TestEventService_Publish(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	event := &domain.Event{
		ID:        "e1",
		Status:    domain.EventStatusPending,
		EventDate: time.Now().Add(2 * time.Hour),
	}
	published := &domain.Event{ID: "e1", Status: domain.EventStatusPublished}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Publish(mock.Anything, "e1", mock.Anything).Return(published, nil)

	got, err := svc.Publish(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPublished, got.Status)
}

func TestEventService_Publish_DateTooSoon(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", EventDate: time.Now().Add(30 * time.Minute)}, nil)

	_, err := svc.Publish(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventDateTooSoon)
}

func TestEventService_Publish_NotPending(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Status: domain.EventStatusPublished, EventDate: time.Now().Add(2 * time.Hour)}, nil)
	repo.EXPECT().Publish(mock.Anything, "e1", mock.Anything).Return(nil, domain.ErrEventNotPending)

	_, err := svc.Publish(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotPending)
}

func TestEventService_Reject_PublishedConflict(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().Reject(mock.Anything, "e1").Return(nil, domain.ErrEventPublished)

	_, err := svc.Reject(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventPublished)
}

func TestEventService_CancelByOwner(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "u1", Status: domain.EventStatusPending}
	canceled := &domain.Event{ID: "e1", InitiatorID: "u1", Status: domain.EventStatusCanceled}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Cancel(mock.Anything, "e1").Return(canceled, nil)

	got, err := svc.CancelByOwner(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCanceled, got.Status)
}

func TestEventService_CancelByOwner_NotOwner(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)

	_, err := svc.CancelByOwner(context.Background(), "intruder", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestEventService_GetPublished(t *testing.T) {
	svc, repo, _, _, stats := newEventService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusPublished}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	stats.EXPECT().Hit(mock.Anything, "/events/e1", "10.0.0.1").Return()
	stats.EXPECT().Views(mock.Anything, []string{"e1"}).Return(map[string]int64{"e1": 7}, nil)

	details, err := svc.GetPublished(context.Background(), "e1", "/events/e1", "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
	assert.Equal(t, int64(7), details.Views)

	time.Sleep(50 * time.Millisecond) // goroutine hit
}

func TestEventService_GetPublished_StatsDown(t *testing.T) {
	svc, repo, _, _, stats := newEventService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusPublished}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	stats.EXPECT().Hit(mock.Anything, "/events/e1", "10.0.0.1").Return()
	stats.EXPECT().Views(mock.Anything, []string{"e1"}).
		Return(nil, errors.New("stats unavailable"))

	details, err := svc.GetPublished(context.Background(), "e1", "/events/e1", "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
	assert.Equal(t, int64(0), details.Views)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_GetPublished_HidesUnpublished(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Status: domain.EventStatusPending}, nil)

	_, err := svc.GetPublished(context.Background(), "e1", "/events/e1", "10.0.0.1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
