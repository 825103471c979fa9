package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "solvency-backend/internal/usecase/notification"
)

type NotificationHandler struct {
	uc               *uc.Usecase
	defaultRecipient string
}

func NewNotificationHandler(u *uc.Usecase, defaultRecipient string) *NotificationHandler {
	return &NotificationHandler{uc: u, defaultRecipient: defaultRecipient}
}

type listNotificationsResp struct {
	Notifications []uc.NotificationDTO `json:"notifications"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	recipient := c.QueryParam("recipientId")
	if recipient == "" {
		recipient = h.defaultRecipient
	}
	rows, err := h.uc.ListByRecipient(c.Request().Context(), recipient)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, listNotificationsResp{Notifications: rows})
}
