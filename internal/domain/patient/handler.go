package patient

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
	api.POST("/patients", h.Create)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id", h.Update)

	// Only staff may enumerate patient accounts.
	api.GET("/patients", h.List, auth.RequireRole("doctor"))
}

type itemResponse struct {
	Success bool     `json:"success"`
	Patient *Patient `json:"patient"`
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
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return httpError(err, "failed to create patient")
	}
	return c.JSON(http.StatusCreated, itemResponse{Success: true, Patient: &p})
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "failed to fetch patient")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Patient: p})
}

func (h *Handler) Update(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = c.Param("id")
	if err := h.svc.Update(c.Request().Context(), &p); err != nil {
		return httpError(err, "failed to update patient")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Patient: &p})
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err, "failed to fetch patients")
	}

	pg := pagination.FromContext(c)
	total := len(items)
	start, end := pg.Slice(total)
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], total, pg.Limit, pg.Offset))
}
