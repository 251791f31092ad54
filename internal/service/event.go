package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo         ports.EventRepo
	categoryRepo ports.CategoryRepo
	userRepo     ports.UserRepo
	stats        ports.StatsClient
	logger       logger.Logger

	// minLeadTime guards owner create/update, publishMinLeadTime guards
	// admin publication.
	minLeadTime        time.Duration
	publishMinLeadTime time.Duration
}

func NewEventService(
	repo ports.EventRepo,
	categoryRepo ports.CategoryRepo,
	userRepo ports.UserRepo,
	stats ports.StatsClient,
	log logger.Logger,
	minLeadTime time.Duration,
	publishMinLeadTime time.Duration,
) *EventService {
	return &EventService{
		repo:               repo,
		categoryRepo:       categoryRepo,
		userRepo:           userRepo,
		stats:              stats,
		logger:             log,
		minLeadTime:        minLeadTime,
		publishMinLeadTime: publishMinLeadTime,
	}
}

func (s *EventService) Create(ctx context.Context, userID string, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.ParticipantLimit < 0 {
		return nil, fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
	}
	if time.Until(input.EventDate) < s.minLeadTime {
		return nil, domain.ErrEventDateTooSoon
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	moderation := true
	if input.RequestModeration != nil {
		moderation = *input.RequestModeration
	}

	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             input.Title,
		Annotation:        input.Annotation,
		Description:       input.Description,
		CategoryID:        input.CategoryID,
		InitiatorID:       userID,
		EventDate:         input.EventDate,
		ParticipantLimit:  input.ParticipantLimit,
		RequestModeration: moderation,
		Paid:              input.Paid,
		Status:            domain.EventStatusPending,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// UpdateByOwner patches a pending event. Published and canceled events are
// immutable for the owner.
func (s *EventService) UpdateByOwner(ctx context.Context, userID, eventID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != userID {
		return nil, domain.ErrNotOwner
	}
	if event.Status != domain.EventStatusPending {
		return nil, domain.ErrEventNotPending
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
		}
		event.Title = *input.Title
	}
	if input.Annotation != nil {
		event.Annotation = *input.Annotation
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("check category: %w", err)
		}
		event.CategoryID = *input.CategoryID
	}
	if input.EventDate != nil {
		if time.Until(*input.EventDate) < s.minLeadTime {
			return nil, domain.ErrEventDateTooSoon
		}
		event.EventDate = *input.EventDate
	}
	if input.ParticipantLimit != nil {
		if *input.ParticipantLimit < 0 {
			return nil, fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
		}
		event.ParticipantLimit = *input.ParticipantLimit
	}
	if input.RequestModeration != nil {
		event.RequestModeration = *input.RequestModeration
	}
	if input.Paid != nil {
		event.Paid = *input.Paid
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Publish(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if time.Until(event.EventDate) < s.publishMinLeadTime {
		return nil, domain.ErrEventDateTooSoon
	}

	published, err := s.repo.Publish(ctx, eventID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}

	return published, nil
}

func (s *EventService) Reject(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.repo.Reject(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("reject event: %w", err)
	}

	return event, nil
}

func (s *EventService) CancelByOwner(ctx context.Context, userID, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != userID {
		return nil, domain.ErrNotOwner
	}

	canceled, err := s.repo.Cancel(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}

	return canceled, nil
}

func (s *EventService) GetByOwner(ctx context.Context, userID, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != userID {
		return nil, domain.ErrNotOwner
	}

	return event, nil
}

func (s *EventService) ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error) {
	return s.repo.ListByInitiator(ctx, userID)
}

// GetPublished is the public read: only published events are visible, the
// view is recorded with the stats service and the current view count is
// attached to the response. A stats outage does not fail the read, the
// event is served with zero views.
func (s *EventService) GetPublished(ctx context.Context, eventID, uri, ip string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusPublished {
		return nil, domain.ErrEventNotFound
	}

	go s.stats.Hit(context.WithoutCancel(ctx), uri, ip)

	views, err := s.stats.Views(ctx, []string{eventID})
	if err != nil {
		s.logger.Error("failed to get views, serving without them",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		views = nil
	}

	return &domain.EventDetails{Event: *event, Views: views[eventID]}, nil
}

func (s *EventService) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListPublished(ctx)
}
