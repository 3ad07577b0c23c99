package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	svc service.InvoiceService
}

func NewInvoiceHandler(svc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

type InvoiceLineResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type InvoiceResponse struct {
	ID         uint64                `json:"id"`
	PurchaseID uint64                `json:"purchaseId"`
	Number     string                `json:"number"`
	IssuedAt   string                `json:"issuedAt"`
	IssuedBy   string                `json:"issuedBy"`
	Subtotal   int64                 `json:"subtotal"`
	GrandTotal int64                 `json:"grandTotal"`
	Currency   string                `json:"currency"`
	Lines      []InvoiceLineResponse `json:"lines"`
}

func toInvoiceResponse(inv *model.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         inv.ID,
		PurchaseID: inv.PurchaseID,
		Number:     inv.Number,
		IssuedAt:   inv.IssuedAt.Format(time.RFC3339),
		IssuedBy:   inv.IssuedBy,
		Subtotal:   inv.Subtotal,
		GrandTotal: inv.GrandTotal,
		Currency:   inv.Currency,
		Lines:      make([]InvoiceLineResponse, 0, len(inv.Lines)),
	}
	for _, l := range inv.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			Kind:        string(l.Kind),
			Description: l.Description,
			Amount:      l.Amount,
		})
	}
	return resp
}

type AdjustmentRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type GenerateInvoiceRequest struct {
	AdditionalFees []AdjustmentRequest `json:"additionalFees"`
	Discounts      []AdjustmentRequest `json:"discounts"`
}

func (h *InvoiceHandler) Generate(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	purchaseID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req GenerateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	in := service.GenerateInvoiceInput{}
	for _, f := range req.AdditionalFees {
		in.AdditionalFees = append(in.AdditionalFees, service.InvoiceAdjustment{Description: f.Description, Amount: f.Amount})
	}
	for _, d := range req.Discounts {
		in.Discounts = append(in.Discounts, service.InvoiceAdjustment{Description: d.Description, Amount: d.Amount})
	}
	inv, err := h.svc.Generate(c.Request().Context(), purchaseID, uid, in)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, toInvoiceResponse(inv))
}

func (h *InvoiceHandler) ListByPurchase(c echo.Context) error {
	purchaseID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	list, err := h.svc.ListByPurchase(c.Request().Context(), purchaseID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch invoices"))
	}
	resp := make([]InvoiceResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toInvoiceResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"invoices": resp})
}

func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid invoice id"))
	}
	inv, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "invoice not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch invoice"))
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(inv))
}
