package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	uc "solvency-backend/internal/usecase/decision"
)

type DecisionHandler struct{ uc *uc.Usecase }

func NewDecisionHandler(u *uc.Usecase) *DecisionHandler { return &DecisionHandler{uc: u} }

type decideReq struct {
	Comments string `json:"comments" validate:"omitempty,max=2000"`
}

func (h *DecisionHandler) Approve(c echo.Context) error {
	return h.decide(c, h.uc.Approve)
}

func (h *DecisionHandler) Reject(c echo.Context) error {
	return h.decide(c, h.uc.Reject)
}

func (h *DecisionHandler) decide(c echo.Context, do func(ctx context.Context, in uc.DecideInput) (*uc.DecisionDTO, error)) error {
	submissionID := c.Param("id")
	if submissionID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}

	// Body is optional; an empty body means no comments.
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := do(c.Request().Context(), uc.DecideInput{
		SubmissionID: submissionID,
		Comments:     req.Comments,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
