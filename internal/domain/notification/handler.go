package notification

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
	api.GET("/notifications", h.List)
	api.POST("/notifications", h.Create)
	api.PATCH("/notifications", h.MarkRead)
	api.DELETE("/notifications", h.Delete)
}

type listResponse struct {
	Success       bool            `json:"success"`
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int             `json:"unreadCount"`
	Count         int             `json:"count"`
}

type itemResponse struct {
	Success      bool          `json:"success"`
	Notification *Notification `json:"notification"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// httpError maps a service error to the right status code. Anything that is
// neither a validation nor a not-found error is a storage failure and gets a
// generic 500 so internals never leak to clients.
func httpError(err error, fallback string) error {
	switch {
	case apperr.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}

func (h *Handler) List(c echo.Context) error {
	recipientID := c.QueryParam("recipientId")
	recipientType := c.QueryParam("recipientType")
	unreadOnly := c.QueryParam("unreadOnly") == "true"
	ctx := c.Request().Context()

	items, err := h.svc.List(ctx, recipientID, recipientType, unreadOnly)
	if err != nil {
		return httpError(err, "failed to fetch notifications")
	}
	unread, err := h.svc.UnreadCount(ctx, recipientID, recipientType)
	if err != nil {
		return httpError(err, "failed to fetch notifications")
	}
	if items == nil {
		items = []*Notification{}
	}

	return c.JSON(http.StatusOK, listResponse{
		Success:       true,
		Notifications: items,
		UnreadCount:   unread,
		Count:         len(items),
	})
}

func (h *Handler) Create(c echo.Context) error {
	var n Notification
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &n); err != nil {
		return httpError(err, "failed to create notification")
	}
	return c.JSON(http.StatusCreated, itemResponse{Success: true, Notification: &n})
}

type markReadRequest struct {
	RecipientID    string `json:"recipientId"`
	RecipientType  string `json:"recipientType"`
	NotificationID string `json:"notificationId"`
	MarkAllAsRead  bool   `json:"markAllAsRead"`
}

func (h *Handler) MarkRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	if req.MarkAllAsRead {
		if err := h.svc.MarkAllRead(ctx, req.RecipientID, req.RecipientType); err != nil {
			return httpError(err, "failed to update notifications")
		}
		return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "all notifications marked as read"})
	}

	if req.NotificationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "notificationId is required")
	}
	ok, err := h.svc.MarkRead(ctx, req.RecipientID, req.RecipientType, req.NotificationID)
	if err != nil {
		return httpError(err, "failed to update notification")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "notification marked as read"})
}

// Delete identifies the notification through query parameters, like List:
// DELETE requests commonly carry no body.
func (h *Handler) Delete(c echo.Context) error {
	recipientID := c.QueryParam("recipientId")
	recipientType := c.QueryParam("recipientType")
	notificationID := c.QueryParam("notificationId")
	if notificationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "notificationId is required")
	}

	ok, err := h.svc.Delete(c.Request().Context(), recipientID, recipientType, notificationID)
	if err != nil {
		return httpError(err, "failed to delete notification")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "notification deleted"})
}
