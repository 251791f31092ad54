package dto

type CreateEventRequest struct {
	Title             string `json:"title" binding:"required"`
	Annotation        string `json:"annotation"`
	Description       string `json:"description"`
	CategoryID        string `json:"category_id" binding:"required,uuid"`
	EventDate         string `json:"event_date" binding:"required"`
	ParticipantLimit  int    `json:"participant_limit" binding:"gte=0"`
	RequestModeration *bool  `json:"request_moderation"`
	Paid              bool   `json:"paid"`
}

type UpdateEventRequest struct {
	Title             *string `json:"title"`
	Annotation        *string `json:"annotation"`
	Description       *string `json:"description"`
	CategoryID        *string `json:"category_id" binding:"omitempty,uuid"`
	EventDate         *string `json:"event_date"`
	ParticipantLimit  *int    `json:"participant_limit" binding:"omitempty,gte=0"`
	RequestModeration *bool   `json:"request_moderation"`
	Paid              *bool   `json:"paid"`
}

type AdminEventActionRequest struct {
	Action string `json:"action" binding:"required,oneof=publish reject"`
}

type UpdateRequestStatusRequest struct {
	RequestIDs []string `json:"request_ids" binding:"required,min=1,dive,uuid"`
	Status     string   `json:"status" binding:"required,oneof=confirmed rejected"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
