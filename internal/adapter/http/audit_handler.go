package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "solvency-backend/internal/usecase/audit"
)

type AuditHandler struct{ uc *uc.Usecase }

func NewAuditHandler(u *uc.Usecase) *AuditHandler { return &AuditHandler{uc: u} }

type listEventsResp struct {
	Events []uc.EventDTO `json:"events"`
	Count  int           `json:"count"`
}

func (h *AuditHandler) List(c echo.Context) error {
	events, err := h.uc.List(c.Request().Context(), c.QueryParam("submissionId"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, listEventsResp{Events: events, Count: len(events)})
}
