package reminder

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	sched *Scheduler
}

func NewHandler(sched *Scheduler) *Handler {
	return &Handler{sched: sched}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/reminders/start", h.Start)
	api.POST("/reminders/stop", h.Stop)
	api.GET("/reminders/status", h.Status)
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type statusResponse struct {
	Success bool `json:"success"`
	Running bool `json:"running"`
}

func (h *Handler) Start(c echo.Context) error {
	// The scheduler outlives the request, so it must not inherit the
	// request context.
	h.sched.Start(context.Background())
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "reminder scheduler running"})
}

func (h *Handler) Stop(c echo.Context) error {
	h.sched.Stop()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "reminder scheduler stopped"})
}

func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{Success: true, Running: h.sched.Running()})
}
