package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/service"
	"github.com/inteller-studio/zervtek-admin/internal/workflow"
	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct {
	svc    service.PurchaseService
	notify service.NotificationService
}

func NewPurchaseHandler(svc service.PurchaseService, notify service.NotificationService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, notify: notify}
}

type PaymentResponse struct {
	ReferenceID     string `json:"referenceId"`
	Amount          int64  `json:"amount"`
	Method          string `json:"method"`
	PaidAt          string `json:"paidAt"`
	RecordedBy      string `json:"recordedBy"`
	ReferenceNumber string `json:"referenceNumber,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type DocumentResponse struct {
	ReferenceID string `json:"referenceId"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	FileURL     string `json:"fileUrl,omitempty"`
	UploadedBy  string `json:"uploadedBy"`
	UploadedAt  string `json:"uploadedAt"`
}

type ShipmentResponse struct {
	Carrier        string  `json:"carrier"`
	TrackingNumber string  `json:"trackingNumber"`
	VesselName     string  `json:"vesselName,omitempty"`
	Status         string  `json:"status"`
	Location       string  `json:"location,omitempty"`
	ETA            *string `json:"eta,omitempty"`
}

type WorkflowStageResponse struct {
	Stage       int     `json:"stage"`
	Label       string  `json:"label"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt,omitempty"`
	CompletedBy string  `json:"completedBy,omitempty"`
	Accessible  bool    `json:"accessible"`
}

type ChecklistEntryResponse struct {
	Key         string  `json:"key"`
	Received    bool    `json:"received"`
	ReceivedAt  *string `json:"receivedAt,omitempty"`
	ReceivedBy  string  `json:"receivedBy,omitempty"`
	DocumentRef string  `json:"documentRef,omitempty"`
}

type WorkflowResponse struct {
	CurrentStage int                      `json:"currentStage"`
	Finalized    bool                     `json:"finalized"`
	Stages       []WorkflowStageResponse  `json:"stages"`
	Checklist    []ChecklistEntryResponse `json:"checklist"`
}

type TimelineResponse struct {
	PaymentReceived   *string `json:"paymentReceived,omitempty"`
	DocumentsUploaded *string `json:"documentsUploaded,omitempty"`
	ShippingStarted   *string `json:"shippingStarted,omitempty"`
	Delivered         *string `json:"delivered,omitempty"`
	Completed         *string `json:"completed,omitempty"`
}

type PurchaseResponse struct {
	ID             uint64             `json:"id"`
	AuctionID      string             `json:"auctionId,omitempty"`
	Source         string             `json:"source"`
	LotNumber      string             `json:"lotNumber,omitempty"`
	AuctionHouse   string             `json:"auctionHouse,omitempty"`
	StockVehicleID *uint64            `json:"stockVehicleId,omitempty"`
	VehicleMake    string             `json:"vehicleMake"`
	VehicleModel   string             `json:"vehicleModel"`
	VehicleYear    int                `json:"vehicleYear"`
	VIN            string             `json:"vin,omitempty"`
	Mileage        int                `json:"mileage"`
	Color          string             `json:"color,omitempty"`
	ImageURL       *string            `json:"imageUrl,omitempty"`
	WinningBid     int64              `json:"winningBid"`
	ShippingCost   int64              `json:"shippingCost"`
	InsuranceFee   int64              `json:"insuranceFee"`
	TotalAmount    int64              `json:"totalAmount"`
	PaidAmount     int64              `json:"paidAmount"`
	PaymentStatus  string             `json:"paymentStatus"`
	Status         string             `json:"status"`
	StatusLabel    string             `json:"statusLabel"`
	Payments       []PaymentResponse  `json:"payments"`
	Documents      []DocumentResponse `json:"documents"`
	Shipment       *ShipmentResponse  `json:"shipment,omitempty"`
	Workflow       *WorkflowResponse  `json:"workflow,omitempty"`
	Timeline       TimelineResponse   `json:"timeline"`
	CreatedAt      string             `json:"createdAt"`
	UpdatedAt      string             `json:"updatedAt"`
}

func fmtTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	val := t.Format(time.RFC3339)
	return &val
}

func toPurchaseResponse(p *model.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		ID:             p.ID,
		AuctionID:      p.AuctionID,
		Source:         string(p.Source),
		LotNumber:      p.LotNumber,
		AuctionHouse:   p.AuctionHouse,
		StockVehicleID: p.StockVehicleID,
		VehicleMake:    p.VehicleMake,
		VehicleModel:   p.VehicleModel,
		VehicleYear:    p.VehicleYear,
		VIN:            p.VIN,
		Mileage:        p.Mileage,
		Color:          p.Color,
		ImageURL:       p.ImageURL,
		WinningBid:     p.WinningBid,
		ShippingCost:   p.ShippingCost,
		InsuranceFee:   p.InsuranceFee,
		TotalAmount:    p.TotalAmount,
		PaidAmount:     p.PaidAmount,
		PaymentStatus:  string(p.PaymentStatus),
		Status:         string(p.Status),
		StatusLabel:    workflow.StatusLabel(p.Status),
		Payments:       make([]PaymentResponse, 0, len(p.Payments)),
		Documents:      make([]DocumentResponse, 0, len(p.Documents)),
		Timeline: TimelineResponse{
			PaymentReceived:   fmtTime(p.PaymentReceivedAt),
			DocumentsUploaded: fmtTime(p.DocumentsUploadedAt),
			ShippingStarted:   fmtTime(p.ShippingStartedAt),
			Delivered:         fmtTime(p.DeliveredAt),
			Completed:         fmtTime(p.CompletedAt),
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	for _, pay := range p.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ReferenceID:     pay.ReferenceID,
			Amount:          pay.Amount,
			Method:          string(pay.Method),
			PaidAt:          pay.PaidAt.Format(time.RFC3339),
			RecordedBy:      pay.RecordedBy,
			ReferenceNumber: pay.ReferenceNumber,
			Notes:           pay.Notes,
		})
	}
	for _, d := range p.Documents {
		resp.Documents = append(resp.Documents, DocumentResponse{
			ReferenceID: d.ReferenceID,
			Type:        string(d.Type),
			Name:        d.Name,
			FileURL:     d.FileURL,
			UploadedBy:  d.UploadedBy,
			UploadedAt:  d.UploadedAt.Format(time.RFC3339),
		})
	}
	if p.Shipment != nil {
		resp.Shipment = &ShipmentResponse{
			Carrier:        p.Shipment.Carrier,
			TrackingNumber: p.Shipment.TrackingNumber,
			VesselName:     p.Shipment.VesselName,
			Status:         string(p.Shipment.Status),
			Location:       p.Shipment.Location,
			ETA:            fmtTime(p.Shipment.ETA),
		}
	}
	if p.Workflow != nil {
		wf := &WorkflowResponse{
			CurrentStage: int(workflow.CurrentStage(p.Workflow)),
			Finalized:    p.Workflow.Finalized,
			Stages:       make([]WorkflowStageResponse, 0, len(p.Workflow.Stages)),
			Checklist:    make([]ChecklistEntryResponse, 0, len(p.Workflow.Checklist)),
		}
		for _, rec := range p.Workflow.Stages {
			wf.Stages = append(wf.Stages, WorkflowStageResponse{
				Stage:       int(rec.Stage),
				Label:       rec.Stage.Label(),
				Completed:   rec.Completed,
				CompletedAt: fmtTime(rec.CompletedAt),
				CompletedBy: rec.CompletedBy,
				Accessible:  workflow.CanAccessStage(p.Workflow, rec.Stage),
			})
		}
		for _, e := range p.Workflow.Checklist {
			wf.Checklist = append(wf.Checklist, ChecklistEntryResponse{
				Key:         e.Key,
				Received:    e.Received,
				ReceivedAt:  fmtTime(e.ReceivedAt),
				ReceivedBy:  e.ReceivedBy,
				DocumentRef: e.DocumentRef,
			})
		}
		resp.Workflow = wf
	}
	return resp
}

type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	Total     int64              `json:"total"`
}

type CreatePurchaseRequest struct {
	Source         string  `json:"source"`
	AuctionID      string  `json:"auctionId"`
	LotNumber      string  `json:"lotNumber"`
	AuctionHouse   string  `json:"auctionHouse"`
	StockVehicleID *uint64 `json:"stockVehicleId"`
	VehicleMake    string  `json:"vehicleMake"`
	VehicleModel   string  `json:"vehicleModel"`
	VehicleYear    int     `json:"vehicleYear"`
	VIN            string  `json:"vin"`
	Mileage        int     `json:"mileage"`
	Color          string  `json:"color"`
	ImageURL       *string `json:"imageUrl"`
	WinningBid     int64   `json:"winningBid"`
	ShippingCost   int64   `json:"shippingCost"`
	InsuranceFee   int64   `json:"insuranceFee"`
	WithWorkflow   bool    `json:"withWorkflow"`
}

func (h *PurchaseHandler) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.Create(c.Request().Context(), uid, service.CreatePurchaseInput{
		Source:         model.PurchaseSource(req.Source),
		AuctionID:      req.AuctionID,
		LotNumber:      req.LotNumber,
		AuctionHouse:   req.AuctionHouse,
		StockVehicleID: req.StockVehicleID,
		VehicleMake:    req.VehicleMake,
		VehicleModel:   req.VehicleModel,
		VehicleYear:    req.VehicleYear,
		VIN:            req.VIN,
		Mileage:        req.Mileage,
		Color:          req.Color,
		ImageURL:       req.ImageURL,
		WinningBid:     req.WinningBid,
		ShippingCost:   req.ShippingCost,
		InsuranceFee:   req.InsuranceFee,
		WithWorkflow:   req.WithWorkflow,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "stock vehicle not found"))
		case errors.Is(err, service.ErrVehicleUnavailable):
			return c.JSON(http.StatusConflict, NewErrorResponse("vehicle_unavailable", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, toPurchaseResponse(p))
}

func (h *PurchaseHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.errorJSON(c, err)
	}
	uid, _ := c.Get("uid").(string)
	if h.notify != nil && uid != "" {
		_ = h.notify.MarkByPurchase(c.Request().Context(), uid, p.ID)
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

func (h *PurchaseHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	status := model.PurchaseStatus(c.QueryParam("status"))
	list, total, err := h.svc.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", err.Error()))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	resp := PurchaseListResponse{
		Purchases: make([]PurchaseResponse, 0, len(list)),
		Total:     total,
	}
	for i := range list {
		resp.Purchases = append(resp.Purchases, toPurchaseResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

type RecordPaymentRequest struct {
	Amount          int64  `json:"amount"`
	Method          string `json:"method"`
	PaidAt          string `json:"paidAt"`
	ReferenceNumber string `json:"referenceNumber"`
	Notes           string `json:"notes"`
}

func (h *PurchaseHandler) RecordPayment(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	var paidAt time.Time
	if req.PaidAt != "" {
		paidAt, err = time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "paidAt must be RFC3339"))
		}
	}
	p, err := h.svc.RecordPayment(c.Request().Context(), id, uid, service.RecordPaymentInput{
		Amount:          req.Amount,
		Method:          model.PaymentMethod(req.Method),
		PaidAt:          paidAt,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.Is(err, workflow.ErrPaymentExceedsOutstanding):
			return c.JSON(http.StatusUnprocessableEntity, NewErrorResponse("exceeds_outstanding", err.Error()))
		case errors.Is(err, service.ErrPurchaseCompleted):
			return c.JSON(http.StatusConflict, NewErrorResponse("purchase_completed", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, toPurchaseResponse(p))
}

type UploadDocumentRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	FileURL     string `json:"fileUrl"`
	Data        []byte `json:"data"` // base64 file contents, optional
	ContentType string `json:"contentType"`
}

type UploadDocumentsRequest struct {
	Documents []UploadDocumentRequest `json:"documents"`
}

func (h *PurchaseHandler) UploadDocuments(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req UploadDocumentsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	docs := make([]service.DocumentInput, 0, len(req.Documents))
	for _, d := range req.Documents {
		docs = append(docs, service.DocumentInput{
			Type:        model.DocumentType(d.Type),
			Name:        d.Name,
			FileURL:     d.FileURL,
			Data:        d.Data,
			ContentType: d.ContentType,
		})
	}
	p, err := h.svc.UploadDocuments(c.Request().Context(), id, uid, docs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.Is(err, service.ErrPurchaseCompleted):
			return c.JSON(http.StatusConflict, NewErrorResponse("purchase_completed", err.Error()))
		case errors.Is(err, service.ErrStorageDisabled):
			return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("storage_disabled", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, toPurchaseResponse(p))
}

func (h *PurchaseHandler) DeleteDocument(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	ref := c.Param("documentId")
	p, err := h.svc.DeleteDocument(c.Request().Context(), id, ref)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

type UpdateShippingRequest struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	VesselName     string `json:"vesselName"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	ETA            string `json:"eta"`
}

func (h *PurchaseHandler) UpdateShipping(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req UpdateShippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	var eta *time.Time
	if req.ETA != "" {
		t, err := time.Parse(time.RFC3339, req.ETA)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "eta must be RFC3339"))
		}
		eta = &t
	}
	p, err := h.svc.UpdateShipping(c.Request().Context(), id, service.ShipmentInput{
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		VesselName:     req.VesselName,
		Status:         model.ShipmentStatus(req.Status),
		Location:       req.Location,
		ETA:            eta,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.Is(err, service.ErrShipmentIdentity):
			return c.JSON(http.StatusConflict, NewErrorResponse("shipment_immutable", err.Error()))
		case errors.Is(err, service.ErrPurchaseCompleted):
			return c.JSON(http.StatusConflict, NewErrorResponse("purchase_completed", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

func (h *PurchaseHandler) MarkDelivered(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	p, err := h.svc.MarkDelivered(c.Request().Context(), id, uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.Is(err, service.ErrBackwardTransition):
			return c.JSON(http.StatusConflict, NewErrorResponse("invalid_transition", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

func (h *PurchaseHandler) MarkCompleted(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	p, err := h.svc.MarkCompleted(c.Request().Context(), id, uid)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

func (h *PurchaseHandler) CompleteWorkflowStage(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	stageNum, err := strconv.Atoi(c.Param("stage"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid stage"))
	}
	p, err := h.svc.CompleteWorkflowStage(c.Request().Context(), id, model.WorkflowStage(stageNum), uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.Is(err, service.ErrNoWorkflow):
			return c.JSON(http.StatusConflict, NewErrorResponse("no_workflow", err.Error()))
		case errors.Is(err, workflow.ErrStageNotAccessible):
			return c.JSON(http.StatusConflict, NewErrorResponse("stage_locked", err.Error()))
		case errors.Is(err, workflow.ErrWorkflowFinalized):
			return c.JSON(http.StatusConflict, NewErrorResponse("workflow_finalized", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

type UpdateWorkflowRequest struct {
	CompleteStages []int `json:"completeStages"`
	Finalized      *bool `json:"finalized"`
}

func (h *PurchaseHandler) UpdateWorkflow(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req UpdateWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	stages := make([]model.WorkflowStage, 0, len(req.CompleteStages))
	for _, s := range req.CompleteStages {
		stages = append(stages, model.WorkflowStage(s))
	}
	p, err := h.svc.UpdateWorkflow(c.Request().Context(), id, uid, service.UpdateWorkflowInput{
		CompleteStages: stages,
		Finalized:      req.Finalized,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.Is(err, workflow.ErrStageNotAccessible):
			return c.JSON(http.StatusConflict, NewErrorResponse("stage_locked", err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

type RequiredDocumentResponse struct {
	Type      string `json:"type"`
	Satisfied bool   `json:"satisfied"`
}

type ProgressResponse struct {
	PaymentProgressPercent int                        `json:"paymentProgressPercent"`
	OutstandingBalance     int64                      `json:"outstandingBalance"`
	RequiredDocuments      []RequiredDocumentResponse `json:"requiredDocuments"`
	DocumentsSatisfied     int                        `json:"documentsSatisfied"`
	DocumentsRequired      int                        `json:"documentsRequired"`
	CurrentStageLabel      string                     `json:"currentStageLabel"`
	CanAdvance             bool                       `json:"canAdvance"`
}

func (h *PurchaseHandler) Progress(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	prog, err := h.svc.Progress(c.Request().Context(), id)
	if err != nil {
		return h.errorJSON(c, err)
	}
	resp := ProgressResponse{
		PaymentProgressPercent: prog.PaymentProgressPercent,
		OutstandingBalance:     prog.OutstandingBalance,
		RequiredDocuments:      make([]RequiredDocumentResponse, 0, len(prog.RequiredDocuments)),
		DocumentsSatisfied:     prog.DocumentsSatisfied,
		DocumentsRequired:      prog.DocumentsRequired,
		CurrentStageLabel:      prog.CurrentStageLabel,
		CanAdvance:             prog.CanAdvance,
	}
	for _, r := range prog.RequiredDocuments {
		resp.RequiredDocuments = append(resp.RequiredDocuments, RequiredDocumentResponse{
			Type:      string(r.Type),
			Satisfied: r.Satisfied,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PurchaseHandler) errorJSON(c echo.Context, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
	}
	return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
}

func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
