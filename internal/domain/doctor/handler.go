package doctor

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
	api.GET("/doctors", h.List)
	api.GET("/doctors/:id", h.Get)

	// Profile management is restricted to doctors and admins.
	write := api.Group("", auth.RequireRole("doctor"))
	write.POST("/doctors", h.Create)
	write.PUT("/doctors/:id", h.Update)
	write.DELETE("/doctors/:id", h.Delete)
}

type itemResponse struct {
	Success bool    `json:"success"`
	Doctor  *Doctor `json:"doctor"`
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
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &d); err != nil {
		return httpError(err, "failed to create doctor")
	}
	return c.JSON(http.StatusCreated, itemResponse{Success: true, Doctor: &d})
}

func (h *Handler) Get(c echo.Context) error {
	d, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "failed to fetch doctor")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Doctor: d})
}

func (h *Handler) List(c echo.Context) error {
	// By default only active doctors appear in the directory.
	activeOnly := c.QueryParam("includeInactive") != "true"
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("speciality"), c.QueryParam("name"), activeOnly)
	if err != nil {
		return httpError(err, "failed to fetch doctors")
	}

	pg := pagination.FromContext(c)
	total := len(items)
	start, end := pg.Slice(total)
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], total, pg.Limit, pg.Offset))
}

func (h *Handler) Update(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = c.Param("id")
	if err := h.svc.Update(c.Request().Context(), &d); err != nil {
		return httpError(err, "failed to update doctor")
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Doctor: &d})
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err, "failed to delete doctor")
	}
	return c.NoContent(http.StatusNoContent)
}
