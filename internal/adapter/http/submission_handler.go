package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domain "solvency-backend/internal/domain/submission"
	uc "solvency-backend/internal/usecase/submission"
)

type SubmissionHandler struct{ uc *uc.Usecase }

func NewSubmissionHandler(u *uc.Usecase) *SubmissionHandler { return &SubmissionHandler{uc: u} }

type createSubmissionReq struct {
	InsurerID   string   `json:"insurerId"   validate:"required,hex32"`
	Capital     *float64 `json:"capital"     validate:"required,gte=0,lte=90000000000000000,dec2"`
	Liabilities *float64 `json:"liabilities" validate:"required,gte=0,lte=90000000000000000,dec2"`
	// Canonical date `YYYY-MM-DD` (the reporting period day)
	SubmissionDate string `json:"submissionDate" validate:"required,datetime=2006-01-02"`
}

func (h *SubmissionHandler) Create(c echo.Context) error {
	var req createSubmissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	day, err := time.Parse("2006-01-02", req.SubmissionDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submissionDate"})
	}

	dto, err := h.uc.Create(c.Request().Context(), uc.CreateInput{
		InsurerID:      req.InsurerID,
		CapitalKES:     *req.Capital,
		LiabilitiesKES: *req.Liabilities,
		SubmissionDate: day,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SubmissionHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type listSubmissionsResp struct {
	Submissions []uc.SubmissionDTO `json:"submissions"`
	Count       int                `json:"count"`
}

func (h *SubmissionHandler) List(c echo.Context) error {
	in := uc.ListInput{InsurerID: c.QueryParam("insurerId")}
	if raw := c.QueryParam("status"); raw != "" {
		st, err := domain.ParseStatus(raw)
		if err != nil {
			return writeDomainError(c, err)
		}
		in.Status = &st
	}

	dtos, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, listSubmissionsResp{Submissions: dtos, Count: len(dtos)})
}

func (h *SubmissionHandler) Verify(c echo.Context) error {
	dto, err := h.uc.Verify(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
