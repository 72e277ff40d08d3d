package prescription

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/auth"
	"github.com/ayushhh101/Team-Champions-1-sub000/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Only doctors write prescriptions.
	api.POST("/prescriptions", h.Create, auth.RequireRole("doctor"))
	api.GET("/prescriptions", h.List)
	api.GET("/prescriptions/:id", h.Get)
}

type itemResponse struct {
	Success      bool          `json:"success"`
	Prescription *Prescription `json:"prescription"`
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
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return httpError(err, "failed to create prescription")
	}
	return c.JSON(http.StatusCreated, itemResponse{Success: true, Prescription: &p})
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "failed to fetch prescription")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Prescription: p})
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []*Prescription
		err   error
	)
	switch {
	case c.QueryParam("patientId") != "":
		items, err = h.svc.ListByPatient(ctx, c.QueryParam("patientId"))
	case c.QueryParam("doctorId") != "":
		items, err = h.svc.ListByDoctor(ctx, c.QueryParam("doctorId"))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "patientId or doctorId query parameter required")
	}
	if err != nil {
		return httpError(err, "failed to fetch prescriptions")
	}

	pg := pagination.FromContext(c)
	total := len(items)
	start, end := pg.Slice(total)
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], total, pg.Limit, pg.Offset))
}
