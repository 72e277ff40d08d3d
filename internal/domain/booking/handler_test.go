package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func doRequest(h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h(c)
}

func TestHandlerCreateBooking(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	body := `{"doctorId":"doc-1","doctorName":"Dr. Mehta","patientId":"user-1","patientName":"Asha","date":"2026-03-11","time":"10:30"}`
	rec, err := doRequest(h.Create, http.MethodPost, "/api/v1/bookings", body)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool     `json:"success"`
		Booking *Booking `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success || resp.Booking == nil || resp.Booking.ID == "" {
		t.Fatal("expected success envelope with a stored booking")
	}
}

func TestHandlerCreateBookingMissingDoctor(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	body := `{"patientId":"user-1","patientName":"Asha","date":"2026-03-11","time":"10:30"}`
	_, err := doRequest(h.Create, http.MethodPost, "/api/v1/bookings", body)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerListRequiresScope(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	_, err := doRequest(h.List, http.MethodGet, "/api/v1/bookings", "")
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerCalendarReschedule(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)
	ctx := context.Background()

	b := newTestBooking()
	if err := svc.Create(ctx, b); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	body := `{"appointmentId":"` + b.ID + `","action":"reschedule","newDate":"2026-03-15","newTime":"09:00"}`
	rec, err := doRequest(h.Calendar, http.MethodPatch, "/api/v1/calendar", body)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	moved, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if moved.Date != "2026-03-15" || moved.Time != "09:00" {
		t.Errorf("reschedule not applied: %s %s", moved.Date, moved.Time)
	}
}

func TestHandlerCalendarCancel(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)
	ctx := context.Background()

	b := newTestBooking()
	if err := svc.Create(ctx, b); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	body := `{"appointmentId":"` + b.ID + `","action":"cancel"}`
	rec, err := doRequest(h.Calendar, http.MethodPatch, "/api/v1/calendar", body)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cancelled, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Status)
	}
}

func TestHandlerCalendarUnknownAction(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	body := `{"appointmentId":"some-id","action":"postpone"}`
	_, err := doRequest(h.Calendar, http.MethodPatch, "/api/v1/calendar", body)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerCalendarUnknownAppointment(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	body := `{"appointmentId":"missing","action":"cancel"}`
	_, err := doRequest(h.Calendar, http.MethodPatch, "/api/v1/calendar", body)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
