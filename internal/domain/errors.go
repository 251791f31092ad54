package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrCategoryNotFound = errors.New("category not found")
)

var (
	ErrNotOwner = errors.New("user is not the event initiator")
)

var (
	ErrEventNotPublished       = errors.New("event is not published")
	ErrEventNotPending         = errors.New("event is not in pending status")
	ErrEventPublished          = errors.New("published event cannot be rejected")
	ErrEventDateTooSoon        = errors.New("event date is too soon")
	ErrDuplicateRequest        = errors.New("user already has a request for this event")
	ErrSelfRequest             = errors.New("initiator cannot request own event")
	ErrParticipantLimitReached = errors.New("the participant limit has been reached")
	ErrRequestNotPending       = errors.New("request must have status pending")
	ErrRequestFinalized        = errors.New("request is already finalized")
)

var (
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrCategoryNameTaken = errors.New("category name is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
