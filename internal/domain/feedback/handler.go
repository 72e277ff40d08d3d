package feedback

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/feedback", h.Create)
	api.GET("/feedback", h.List)
}

type itemResponse struct {
	Success  bool      `json:"success"`
	Feedback *Feedback `json:"feedback"`
}

type listResponse struct {
	Success  bool        `json:"success"`
	Feedback []*Feedback `json:"feedback"`
	Count    int         `json:"count"`
	Average  float64     `json:"averageRating"`
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
	var f Feedback
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &f); err != nil {
		return httpError(err, "failed to submit feedback")
	}
	return c.JSON(http.StatusCreated, itemResponse{Success: true, Feedback: &f})
}

func (h *Handler) List(c echo.Context) error {
	doctorID := c.QueryParam("doctorId")
	if doctorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId query parameter required")
	}

	ctx := c.Request().Context()
	items, err := h.svc.ListByDoctor(ctx, doctorID)
	if err != nil {
		return httpError(err, "failed to fetch feedback")
	}
	avg, _, err := h.svc.AverageRating(ctx, doctorID)
	if err != nil {
		return httpError(err, "failed to fetch feedback")
	}
	if items == nil {
		items = []*Feedback{}
	}
	return c.JSON(http.StatusOK, listResponse{
		Success:  true,
		Feedback: items,
		Count:    len(items),
		Average:  avg,
	})
}
