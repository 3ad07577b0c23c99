package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/inteller-studio/zervtek-admin/internal/ai"
	"github.com/inteller-studio/zervtek-admin/internal/reqctx"
	"github.com/inteller-studio/zervtek-admin/internal/service"
	"github.com/labstack/echo/v4"
)

// SheetHandler asks Gemini for an estimated auction sheet grade based on the
// purchased vehicle and the inspector remarks supplied by the admin.
type SheetHandler struct {
	purchases service.PurchaseService
	grader    *ai.SheetGradeClient
}

func NewSheetHandler(purchases service.PurchaseService, grader *ai.SheetGradeClient) *SheetHandler {
	return &SheetHandler{purchases: purchases, grader: grader}
}

type SheetGradeRequest struct {
	Remarks string `json:"remarks"`
}

type SheetGradeResponse struct {
	PurchaseID uint64  `json:"purchaseId"`
	Grade      float64 `json:"grade"`
}

func (h *SheetHandler) EstimateGrade(c echo.Context) error {
	if h.grader == nil {
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("ai_disabled", "sheet grading is not configured"))
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req SheetGradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.Remarks == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "remarks is required"))
	}

	ctx := c.Request().Context()
	p, err := h.purchases.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch purchase"))
	}

	ctx = reqctx.WithRID(ctx, uuid.NewString())
	ctx = reqctx.WithPurchaseID(ctx, p.ID)
	grade, err := h.grader.EstimateGrade(ctx, p.VehicleMake, p.VehicleModel, p.VehicleYear, req.Remarks)
	if err != nil {
		return c.JSON(http.StatusBadGateway, NewErrorResponse("ai_failed", "grade estimation failed"))
	}
	return c.JSON(http.StatusOK, SheetGradeResponse{PurchaseID: p.ID, Grade: grade})
}
