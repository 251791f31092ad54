package dto

import (
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type EventResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Annotation        string `json:"annotation"`
	Description       string `json:"description"`
	CategoryID        string `json:"category_id"`
	InitiatorID       string `json:"initiator_id"`
	EventDate         string `json:"event_date"`
	ParticipantLimit  int    `json:"participant_limit"`
	RequestModeration bool   `json:"request_moderation"`
	Paid              bool   `json:"paid"`
	Status            string `json:"status"`
	PublishedOn       string `json:"published_on,omitempty"`
	ConfirmedRequests int    `json:"confirmed_requests"`
	CreatedAt         string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event EventResponse `json:"event"`
	Views int64         `json:"views"`
}

type RequestResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	RequesterID string `json:"requester_id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type AdmissionResultResponse struct {
	ConfirmedRequests []RequestResponse `json:"confirmed_requests"`
	RejectedRequests  []RequestResponse `json:"rejected_requests"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		CategoryID:        e.CategoryID,
		InitiatorID:       e.InitiatorID,
		EventDate:         e.EventDate.Format(time.RFC3339),
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		Paid:              e.Paid,
		Status:            string(e.Status),
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
	if e.PublishedOn != nil {
		resp.PublishedOn = e.PublishedOn.Format(time.RFC3339)
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event: ToEventResponse(&d.Event),
		Views: d.Views,
	}
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		EventID:     r.EventID,
		RequesterID: r.RequesterID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRequestResponses(requests []*domain.Request) []RequestResponse {
	res := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, ToRequestResponse(r))
	}
	return res
}

func ToAdmissionResultResponse(result *domain.AdmissionResult) AdmissionResultResponse {
	return AdmissionResultResponse{
		ConfirmedRequests: ToRequestResponses(result.Confirmed),
		RejectedRequests:  ToRequestResponses(result.Rejected),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}
