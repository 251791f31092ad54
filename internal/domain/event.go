package domain

import "time"

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusPublished EventStatus = "published"
	EventStatusCanceled  EventStatus = "canceled"
)

type Event struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Annotation        string      `json:"annotation"`
	Description       string      `json:"description"`
	CategoryID        string      `json:"category_id"`
	InitiatorID       string      `json:"initiator_id"`
	EventDate         time.Time   `json:"event_date"`
	ParticipantLimit  int         `json:"participant_limit"` // 0 = unlimited
	RequestModeration bool        `json:"request_moderation"`
	Paid              bool        `json:"paid"`
	Status            EventStatus `json:"status"`
	PublishedOn       *time.Time  `json:"published_on"`
	ConfirmedRequests int         `json:"confirmed_requests"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// EventDetails is the public read model: the event plus the view count
// fetched from the external stats service.
type EventDetails struct {
	Event Event `json:"event"`
	Views int64 `json:"views"`
}

type CreateEventInput struct {
	Title             string
	Annotation        string
	Description       string
	CategoryID        string
	EventDate         time.Time
	ParticipantLimit  int
	RequestModeration *bool
	Paid              bool
}

type UpdateEventInput struct {
	Title             *string
	Annotation        *string
	Description       *string
	CategoryID        *string
	EventDate         *time.Time
	ParticipantLimit  *int
	RequestModeration *bool
	Paid              *bool
}

type AdminEventAction string

const (
	AdminActionPublish AdminEventAction = "publish"
	AdminActionReject  AdminEventAction = "reject"
)
