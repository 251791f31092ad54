package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/stpnv0/EventHub/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, userID string, input domain.CreateEventInput) (*domain.Event, error)
	UpdateByOwner(ctx context.Context, userID, eventID string, input domain.UpdateEventInput) (*domain.Event, error)
	Publish(ctx context.Context, eventID string) (*domain.Event, error)
	Reject(ctx context.Context, eventID string) (*domain.Event, error)
	CancelByOwner(ctx context.Context, userID, eventID string) (*domain.Event, error)
	GetByOwner(ctx context.Context, userID, eventID string) (*domain.Event, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error)
	GetPublished(ctx context.Context, eventID, uri, ip string) (*domain.EventDetails, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
}

type RequestSvc interface {
	Create(ctx context.Context, userID, eventID string) (*domain.Request, error)
	Cancel(ctx context.Context, userID, requestID string) (*domain.Request, error)
	ListByRequester(ctx context.Context, userID string) ([]*domain.Request, error)
}

type AdmissionSvc interface {
	ListForEvent(ctx context.Context, userID, eventID string) ([]*domain.Request, error)
	UpdateStatuses(ctx context.Context, userID, eventID string, input service.StatusUpdateInput) (*domain.AdmissionResult, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type CategorySvc interface {
	Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

type Handler struct {
	eventService     EventSvc
	requestService   RequestSvc
	admissionService AdmissionSvc
	userService      UserSvc
	categoryService  CategorySvc
}

func NewHandler(
	eventService EventSvc,
	requestService RequestSvc,
	admissionService AdmissionSvc,
	userService UserSvc,
	categoryService CategorySvc,
) *Handler {
	return &Handler{
		eventService:     eventService,
		requestService:   requestService,
		admissionService: admissionService,
		userService:      userService,
		categoryService:  categoryService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		EventDate:         eventDate,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
		Paid:              req.Paid,
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId", "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
		Paid:              req.Paid,
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid event_date format, expected RFC3339",
			})
			return
		}
		input.EventDate = &eventDate
	}

	event, err := h.eventService.UpdateByOwner(c.Request.Context(), userID, eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId", "invalid event id")
	if !ok {
		return
	}

	event, err := h.eventService.CancelByOwner(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetOwnerEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId", "invalid event id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByOwner(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListOwnerEvents(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	events, err := h.eventService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

func (h *Handler) AdminUpdateEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId", "invalid event id")
	if !ok {
		return
	}

	var req dto.AdminEventActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		event *domain.Event
		err   error
	)
	switch domain.AdminEventAction(req.Action) {
	case domain.AdminActionPublish:
		event, err = h.eventService.Publish(c.Request.Context(), eventID)
	case domain.AdminActionReject:
		event, err = h.eventService.Reject(c.Request.Context(), eventID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetPublicEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.GetPublished(
		c.Request.Context(), eventID, c.Request.URL.Path, c.ClientIP(),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListPublicEvents(c *ginext.Context) {
	events, err := h.eventService.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

// Participation requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	eventID := c.Query("eventId")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId", "invalid request id")
	if !ok {
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

func (h *Handler) ListOwnRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	requests, err := h.requestService.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) ListEventRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId", "invalid event id")
	if !ok {
		return
	}

	requests, err := h.admissionService.ListForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) UpdateEventRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId", "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.admissionService.UpdateStatuses(c.Request.Context(), userID, eventID, service.StatusUpdateInput{
		RequestIDs: req.RequestIDs,
		Status:     domain.RequestStatus(req.Status),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdmissionResultResponse(result))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Categories

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), domain.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrEventNotPending),
		errors.Is(err, domain.ErrEventPublished),
		errors.Is(err, domain.ErrEventDateTooSoon),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrSelfRequest),
		errors.Is(err, domain.ErrParticipantLimitReached),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrRequestFinalized),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrCategoryNameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context, name, message string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
		return "", false
	}
	return id, true
}

func toEventResponses(events []*domain.Event) []dto.EventResponse {
	res := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, dto.ToEventResponse(e))
	}
	return res
}
