package booking

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/bookings", h.Create)
	api.GET("/bookings", h.List)
	api.GET("/bookings/:id", h.Get)
	api.PATCH("/bookings/:id", h.Update)
	api.POST("/bookings/:id/details", h.UpdatePatientDetails)
	api.POST("/bookings/:id/payment", h.RecordPayment)

	// The calendar endpoint is how the doctor dashboard reschedules and
	// cancels appointments.
	api.PATCH("/calendar", h.Calendar)
}

type itemResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}

type listResponse struct {
	Success  bool   `json:"success"`
	Bookings []View `json:"bookings"`
	Count    int    `json:"count"`
	Total    int    `json:"total"`
}

func httpError(err error, fallback string) error {
	switch {
	case apperr.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}

func (h *Handler) Create(c echo.Context) error {
	var b Booking
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &b); err != nil {
		return httpError(err, "failed to create booking")
	}
	return c.JSON(http.StatusCreated, itemResponse{Success: true, Booking: &b})
}

func (h *Handler) Get(c echo.Context) error {
	b, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "failed to fetch booking")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Booking: b})
}

func (h *Handler) List(c echo.Context) error {
	class := c.QueryParam("view")
	ctx := c.Request().Context()

	var (
		items []View
		err   error
	)
	switch {
	case c.QueryParam("patientId") != "":
		items, err = h.svc.ListByPatient(ctx, c.QueryParam("patientId"), class)
	case c.QueryParam("doctorId") != "":
		items, err = h.svc.ListByDoctor(ctx, c.QueryParam("doctorId"), class)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "patientId or doctorId query parameter required")
	}
	if err != nil {
		return httpError(err, "failed to fetch bookings")
	}

	pg := pagination.FromContext(c)
	total := len(items)
	start, end := pg.Slice(total)
	page := items[start:end]

	return c.JSON(http.StatusOK, listResponse{
		Success:  true,
		Bookings: page,
		Count:    len(page),
		Total:    total,
	})
}

type updateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *Handler) Update(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	ctx := c.Request().Context()

	var (
		b   *Booking
		err error
	)
	switch req.Status {
	case "":
		b, err = h.svc.UpdateNotes(ctx, id, req.Notes)
	case StatusCancelled:
		b, err = h.svc.Cancel(ctx, id)
	case StatusCompleted:
		b, err = h.svc.MarkComplete(ctx, id)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status must be \"cancelled\" or \"completed\"")
	}
	if err != nil {
		return httpError(err, "failed to update booking")
	}
	if req.Status != "" && req.Notes != "" {
		if b, err = h.svc.UpdateNotes(ctx, id, req.Notes); err != nil {
			return httpError(err, "failed to update booking")
		}
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Booking: b})
}

func (h *Handler) UpdatePatientDetails(c echo.Context) error {
	var details PatientDetails
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.UpdatePatientDetails(c.Request().Context(), c.Param("id"), &details)
	if err != nil {
		return httpError(err, "failed to update booking")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Booking: b})
}

func (h *Handler) RecordPayment(c echo.Context) error {
	var details PaymentDetails
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.RecordPayment(c.Request().Context(), c.Param("id"), &details)
	if err != nil {
		return httpError(err, "failed to record payment")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Booking: b})
}

// Calendar actions supported by the doctor dashboard.
const (
	actionReschedule = "reschedule"
	actionCancel     = "cancel"
)

type calendarRequest struct {
	AppointmentID string `json:"appointmentId"`
	Action        string `json:"action"`
	NewDate       string `json:"newDate"`
	NewTime       string `json:"newTime"`
}

func (h *Handler) Calendar(c echo.Context) error {
	var req calendarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AppointmentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "appointmentId is required")
	}
	ctx := c.Request().Context()

	var (
		b   *Booking
		err error
	)
	switch req.Action {
	case actionReschedule:
		b, err = h.svc.Reschedule(ctx, req.AppointmentID, req.NewDate, req.NewTime)
	case actionCancel:
		b, err = h.svc.Cancel(ctx, req.AppointmentID)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "action must be \"reschedule\" or \"cancel\"")
	}
	if err != nil {
		return httpError(err, "failed to update appointment")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Booking: b})
}
