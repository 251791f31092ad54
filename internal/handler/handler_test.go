package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	hmocks "github.com/stpnv0/EventHub/internal/handler/mocks"
	"github.com/stpnv0/EventHub/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	eventSvc     *hmocks.MockEventSvc
	requestSvc   *hmocks.MockRequestSvc
	admissionSvc *hmocks.MockAdmissionSvc
	userSvc      *hmocks.MockUserSvc
	categorySvc  *hmocks.MockCategorySvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		eventSvc:     hmocks.NewMockEventSvc(t),
		requestSvc:   hmocks.NewMockRequestSvc(t),
		admissionSvc: hmocks.NewMockAdmissionSvc(t),
		userSvc:      hmocks.NewMockUserSvc(t),
		categorySvc:  hmocks.NewMockCategorySvc(t),
	}

	h := NewHandler(m.eventSvc, m.requestSvc, m.admissionSvc, m.userSvc, m.categorySvc)

	return m, router.InitRouter("test", h)
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	categoryID := uuid.New().String()
	eventDate := time.Now().Add(24 * time.Hour)

	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             "Go meetup",
		CategoryID:        categoryID,
		InitiatorID:       userID,
		EventDate:         eventDate,
		ParticipantLimit:  50,
		RequestModeration: true,
		Status:            domain.EventStatusPending,
	}

	m.eventSvc.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users/"+userID+"/events", dto.CreateEventRequest{
		Title:            "Go meetup",
		CategoryID:       categoryID,
		EventDate:        eventDate.Format(time.RFC3339),
		ParticipantLimit: 50,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Go meetup", resp.Title)
	assert.Equal(t, string(domain.EventStatusPending), resp.Status)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	userID := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/users/"+userID+"/events", map[string]any{
		"title":       "X",
		"category_id": uuid.New().String(),
		"event_date":  "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidUserID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/not-a-uuid/events", dto.CreateEventRequest{
		Title:      "X",
		CategoryID: uuid.New().String(),
		EventDate:  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPublicEvent(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event: domain.Event{ID: eventID, Title: "Go meetup", Status: domain.EventStatusPublished},
		Views: 42,
	}

	m.eventSvc.EXPECT().
		GetPublished(mock.Anything, eventID, "/api/events/"+eventID, mock.Anything).
		Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Views)
	assert.Equal(t, eventID, resp.Event.ID)
}

func TestHandler_GetPublicEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().
		GetPublished(mock.Anything, eventID, mock.Anything, mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AdminUpdateEvent_Publish(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	published := &domain.Event{ID: eventID, Status: domain.EventStatusPublished}

	m.eventSvc.EXPECT().Publish(mock.Anything, eventID).Return(published, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/events/"+eventID, dto.AdminEventActionRequest{
		Action: "publish",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.EventStatusPublished), resp.Status)
}

func TestHandler_AdminUpdateEvent_RejectPublishedConflict(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Reject(mock.Anything, eventID).Return(nil, domain.ErrEventPublished)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/events/"+eventID, dto.AdminEventActionRequest{
		Action: "reject",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AdminUpdateEvent_UnknownAction(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()
	w := doJSON(t, r, http.MethodPatch, "/api/admin/events/"+eventID, map[string]any{
		"action": "vanish",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Participation requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	request := &domain.Request{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: userID,
		Status:      domain.RequestStatusPending,
	}

	m.requestSvc.EXPECT().Create(mock.Anything, userID, eventID).Return(request, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users/"+userID+"/requests?eventId="+eventID, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.RequestStatusPending), resp.Status)
}

func TestHandler_CreateRequest_MissingEventID(t *testing.T) {
	_, r := setupRouter(t)

	userID := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/users/"+userID+"/requests", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRequest_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	m.requestSvc.EXPECT().Create(mock.Anything, userID, eventID).
		Return(nil, domain.ErrDuplicateRequest)

	w := doJSON(t, r, http.MethodPost, "/api/users/"+userID+"/requests?eventId="+eventID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelRequest_RejectedIsFinal(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	requestID := uuid.New().String()

	m.requestSvc.EXPECT().Cancel(mock.Anything, userID, requestID).
		Return(nil, domain.ErrRequestFinalized)

	w := doJSON(t, r, http.MethodPatch, "/api/users/"+userID+"/requests/"+requestID+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListOwnRequests(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.requestSvc.EXPECT().ListByRequester(mock.Anything, userID).
		Return([]*domain.Request{{ID: uuid.New().String(), RequesterID: userID}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/requests", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Owner moderation ---

func TestHandler_UpdateEventRequests_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	r1 := uuid.New().String()
	r2 := uuid.New().String()

	result := &domain.AdmissionResult{
		Confirmed: []*domain.Request{{ID: r1, EventID: eventID, Status: domain.RequestStatusConfirmed}},
		Rejected:  []*domain.Request{{ID: r2, EventID: eventID, Status: domain.RequestStatusRejected}},
	}

	m.admissionSvc.EXPECT().
		UpdateStatuses(mock.Anything, userID, eventID, mock.Anything).
		Return(result, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/users/"+userID+"/events/"+eventID+"/requests",
		dto.UpdateRequestStatusRequest{
			RequestIDs: []string{r1, r2},
			Status:     "confirmed",
		})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AdmissionResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ConfirmedRequests, 1)
	require.Len(t, resp.RejectedRequests, 1)
	assert.Equal(t, r1, resp.ConfirmedRequests[0].ID)
	assert.Equal(t, r2, resp.RejectedRequests[0].ID)
}

func TestHandler_UpdateEventRequests_NonPendingConflict(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	m.admissionSvc.EXPECT().
		UpdateStatuses(mock.Anything, userID, eventID, mock.Anything).
		Return(nil, domain.ErrRequestNotPending)

	w := doJSON(t, r, http.MethodPatch, "/api/users/"+userID+"/events/"+eventID+"/requests",
		dto.UpdateRequestStatusRequest{
			RequestIDs: []string{uuid.New().String()},
			Status:     "confirmed",
		})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateEventRequests_NotOwner(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	m.admissionSvc.EXPECT().
		UpdateStatuses(mock.Anything, userID, eventID, mock.Anything).
		Return(nil, domain.ErrNotOwner)

	w := doJSON(t, r, http.MethodPatch, "/api/users/"+userID+"/events/"+eventID+"/requests",
		dto.UpdateRequestStatusRequest{
			RequestIDs: []string{uuid.New().String()},
			Status:     "rejected",
		})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateEventRequests_InvalidStatus(t *testing.T) {
	_, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	w := doJSON(t, r, http.MethodPatch, "/api/users/"+userID+"/events/"+eventID+"/requests",
		map[string]any{
			"request_ids": []string{uuid.New().String()},
			"status":      "canceled",
		})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEventRequests(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	m.admissionSvc.EXPECT().ListForEvent(mock.Anything, userID, eventID).
		Return([]*domain.Request{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/events/"+eventID+"/requests", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Users & categories ---

func TestHandler_CreateUser(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice"}
	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	m, r := setupRouter(t)

	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateCategory(t *testing.T) {
	m, r := setupRouter(t)

	category := &domain.Category{ID: uuid.New().String(), Name: "concerts"}
	m.categorySvc.EXPECT().Create(mock.Anything, mock.Anything).Return(category, nil)

	w := doJSON(t, r, http.MethodPost, "/api/categories", dto.CreateCategoryRequest{Name: "concerts"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ListCategories(t *testing.T) {
	m, r := setupRouter(t)

	m.categorySvc.EXPECT().List(mock.Anything).
		Return([]*domain.Category{{ID: uuid.New().String(), Name: "concerts"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}
