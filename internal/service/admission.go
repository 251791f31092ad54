package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AdmissionService decides, under the event's participant limit, which
// pending requests become confirmed and which become rejected. It is the only
// code path allowed to move a request to confirmed or rejected; all its
// mutations go through a single RequestRepo transaction per call.
type AdmissionService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.RequestNotifier
	logger      logger.Logger
}

func NewAdmissionService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RequestNotifier,
	logger logger.Logger,
) *AdmissionService {
	return &AdmissionService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

type StatusUpdateInput struct {
	RequestIDs []string
	Status     domain.RequestStatus
}

// ListForEvent returns every participation request of an event the caller owns.
func (s *AdmissionService) ListForEvent(ctx context.Context, userID, eventID string) ([]*domain.Request, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != userID {
		return nil, domain.ErrNotOwner
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

// UpdateStatuses applies an owner's batch confirm/reject decision.
//
// Validation is all-or-nothing: an unknown or non-pending request id fails the
// whole batch before anything is written. On the confirm path requests are
// taken in creation order until capacity runs out; the moment the confirmed
// count reaches the limit, every other pending request of the event is
// rejected as well, including ones outside the submitted batch. A limit of
// zero means unlimited and never triggers the cascade.
func (s *AdmissionService) UpdateStatuses(
	ctx context.Context,
	userID, eventID string,
	input StatusUpdateInput,
) (*domain.AdmissionResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != userID {
		return nil, domain.ErrNotOwner
	}

	if input.Status != domain.RequestStatusConfirmed && input.Status != domain.RequestStatusRejected {
		return nil, fmt.Errorf("%w: status must be confirmed or rejected", domain.ErrValidation)
	}

	ids := dedup(input.RequestIDs)
	if len(ids) == 0 {
		return &domain.AdmissionResult{Confirmed: []*domain.Request{}, Rejected: []*domain.Request{}}, nil
	}

	// ListByIDs returns the batch in creation order, which fixes the
	// confirmation order below.
	batch, err := s.requestRepo.ListByIDs(ctx, eventID, ids)
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	if len(batch) != len(ids) {
		return nil, domain.ErrRequestNotFound
	}
	for _, req := range batch {
		if req.Status != domain.RequestStatusPending {
			return nil, domain.ErrRequestNotPending
		}
	}

	if input.Status == domain.RequestStatusRejected {
		return s.rejectBatch(ctx, event, batch)
	}

	return s.confirmBatch(ctx, event, batch)
}

func (s *AdmissionService) rejectBatch(
	ctx context.Context,
	event *domain.Event,
	batch []*domain.Request,
) (*domain.AdmissionResult, error) {
	if _, err := s.requestRepo.ApplyAdmission(ctx, event.ID, nil, requestIDs(batch), false); err != nil {
		return nil, fmt.Errorf("apply rejection: %w", err)
	}
	markStatus(batch, domain.RequestStatusRejected)

	s.logger.Info("requests rejected",
		logger.String("event_id", event.ID),
		logger.Int("count", len(batch)),
	)
	go s.notify(context.WithoutCancel(ctx), event, nil, batch)

	return &domain.AdmissionResult{Confirmed: []*domain.Request{}, Rejected: batch}, nil
}

func (s *AdmissionService) confirmBatch(
	ctx context.Context,
	event *domain.Event,
	batch []*domain.Request,
) (*domain.AdmissionResult, error) {
	limit := event.ParticipantLimit
	if limit > 0 && event.ConfirmedRequests >= limit {
		return nil, domain.ErrParticipantLimitReached
	}

	confirm := batch
	var rejected []*domain.Request
	if limit > 0 {
		available := limit - event.ConfirmedRequests
		if available < len(batch) {
			confirm = batch[:available]
			rejected = batch[available:]
		}
	}

	// Capacity exhausted by this call: the whole remaining waiting list
	// goes, not just the batch leftovers. The repository rejects it inside
	// the admission transaction, so a request committed after our read
	// still gets picked up.
	cascade := limit > 0 && event.ConfirmedRequests+len(confirm) >= limit

	cascaded, err := s.requestRepo.ApplyAdmission(ctx, event.ID, requestIDs(confirm), requestIDs(rejected), cascade)
	if err != nil {
		return nil, fmt.Errorf("apply admission: %w", err)
	}
	markStatus(confirm, domain.RequestStatusConfirmed)
	markStatus(rejected, domain.RequestStatusRejected)
	rejected = append(rejected, cascaded...)

	s.logger.Info("admission applied",
		logger.String("event_id", event.ID),
		logger.Int("confirmed", len(confirm)),
		logger.Int("rejected", len(rejected)),
	)
	go s.notify(context.WithoutCancel(ctx), event, confirm, rejected)

	return &domain.AdmissionResult{Confirmed: confirm, Rejected: rejected}, nil
}

func (s *AdmissionService) notify(ctx context.Context, event *domain.Event, confirmed, rejected []*domain.Request) {
	for _, req := range confirmed {
		if user := s.lookupRequester(ctx, req.RequesterID); user != nil {
			s.notifier.NotifyRequestConfirmed(ctx, user, event)
		}
	}
	for _, req := range rejected {
		if user := s.lookupRequester(ctx, req.RequesterID); user != nil {
			s.notifier.NotifyRequestRejected(ctx, user, event)
		}
	}
}

func (s *AdmissionService) lookupRequester(ctx context.Context, userID string) *domain.User {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	return user
}

func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

func requestIDs(requests []*domain.Request) []string {
	ids := make([]string, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	return ids
}

func markStatus(requests []*domain.Request, status domain.RequestStatus) {
	for _, req := range requests {
		req.Status = status
	}
}
