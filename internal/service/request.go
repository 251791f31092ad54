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

type RequestService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.RequestNotifier
	logger      logger.Logger
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RequestNotifier,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create submits a participation request. The repository decides pending vs
// auto-confirmed inside its transaction; the returned request carries the
// final status.
func (s *RequestService) Create(ctx context.Context, userID, eventID string) (*domain.Request, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	request := &domain.Request{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: userID,
		Status:      domain.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("participation request created",
		logger.String("request_id", request.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("status", string(request.Status)),
	)

	if request.Status == domain.RequestStatusConfirmed {
		go s.notifier.NotifyRequestConfirmed(context.WithoutCancel(ctx), user, event)
	} else {
		go s.notifier.NotifyRequestCreated(context.WithoutCancel(ctx), user, event)
	}

	return request, nil
}

// Cancel is the requester's self-cancel. Freed capacity is not reassigned to
// another pending request: no backfill.
func (s *RequestService) Cancel(ctx context.Context, userID, requestID string) (*domain.Request, error) {
	request, err := s.requestRepo.CancelOwn(ctx, requestID, userID)
	if err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}

	s.logger.Info("participation request canceled",
		logger.String("request_id", request.ID),
		logger.String("event_id", request.EventID),
		logger.String("user_id", userID),
	)

	go s.notifyCanceled(context.WithoutCancel(ctx), request)

	return request, nil
}

func (s *RequestService) notifyCanceled(ctx context.Context, request *domain.Request) {
	user, err := s.userRepo.GetByID(ctx, request.RequesterID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", request.RequesterID),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, request.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", request.EventID),
		)
		return
	}

	s.notifier.NotifyRequestCanceled(ctx, user, event)
}

func (s *RequestService) ListByRequester(ctx context.Context, userID string) ([]*domain.Request, error) {
	return s.requestRepo.ListByRequester(ctx, userID)
}
