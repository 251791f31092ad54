package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCanceled  RequestStatus = "canceled"
)

type Request struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AdmissionResult is the partition of requests moved by a single
// owner-driven status update call. Historical confirmations are not included.
type AdmissionResult struct {
	Confirmed []*Request `json:"confirmed_requests"`
	Rejected  []*Request `json:"rejected_requests"`
}
