package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/repository"
	"github.com/inteller-studio/zervtek-admin/internal/workflow"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrPurchaseCompleted  = errors.New("purchase is already completed")
	ErrBackwardTransition = errors.New("status cannot move backward")
	ErrShipmentIdentity   = errors.New("carrier and tracking number cannot change once set")
	ErrNoWorkflow         = errors.New("purchase has no workflow attached")
	ErrStorageDisabled    = errors.New("document file storage is not configured")
)

type CreatePurchaseInput struct {
	Source       model.PurchaseSource
	AuctionID    string
	LotNumber    string
	AuctionHouse string
	// stock-sourced
	StockVehicleID *uint64

	// vehicle snapshot; ignored for stock purchases (taken from the vehicle row)
	VehicleMake  string
	VehicleModel string
	VehicleYear  int
	VIN          string
	Mileage      int
	Color        string
	ImageURL     *string

	WinningBid   int64
	ShippingCost int64
	InsuranceFee int64

	WithWorkflow bool
}

type RecordPaymentInput struct {
	Amount          int64
	Method          model.PaymentMethod
	PaidAt          time.Time
	ReferenceNumber string
	Notes           string
}

type DocumentInput struct {
	Type        model.DocumentType
	Name        string
	FileURL     string
	Data        []byte
	ContentType string
}

type ShipmentInput struct {
	Carrier        string
	TrackingNumber string
	VesselName     string
	Status         model.ShipmentStatus
	Location       string
	ETA            *time.Time
}

type UpdateWorkflowInput struct {
	CompleteStages []model.WorkflowStage
	Finalized      *bool
}

// PurchaseProgress is the derived view the dashboard polls.
type PurchaseProgress struct {
	PaymentProgressPercent int
	OutstandingBalance     int64
	RequiredDocuments      []workflow.DocumentRequirement
	DocumentsSatisfied     int
	DocumentsRequired      int
	CurrentStageLabel      string
	CanAdvance             bool
}

// DocumentUploader stores document bytes and returns a public URL.
type DocumentUploader interface {
	UploadDocument(ctx context.Context, purchaseID uint64, filename, contentType string, data []byte) (string, error)
}

type PurchaseService interface {
	Create(ctx context.Context, actor string, in CreatePurchaseInput) (*model.Purchase, error)
	Get(ctx context.Context, id uint64) (*model.Purchase, error)
	List(ctx context.Context, status model.PurchaseStatus, limit, offset int) ([]model.Purchase, int64, error)
	RecordPayment(ctx context.Context, id uint64, actor string, in RecordPaymentInput) (*model.Purchase, error)
	UploadDocuments(ctx context.Context, id uint64, actor string, docs []DocumentInput) (*model.Purchase, error)
	DeleteDocument(ctx context.Context, id uint64, documentRef string) (*model.Purchase, error)
	UpdateShipping(ctx context.Context, id uint64, in ShipmentInput) (*model.Purchase, error)
	MarkDelivered(ctx context.Context, id uint64, actor string) (*model.Purchase, error)
	MarkCompleted(ctx context.Context, id uint64, actor string) (*model.Purchase, error)
	CompleteWorkflowStage(ctx context.Context, id uint64, stage model.WorkflowStage, actor string) (*model.Purchase, error)
	UpdateWorkflow(ctx context.Context, id uint64, actor string, in UpdateWorkflowInput) (*model.Purchase, error)
	Progress(ctx context.Context, id uint64) (*PurchaseProgress, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	vehicleRepo  repository.VehicleRepository
	notify       NotificationService
	uploader     DocumentUploader
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository, vehicleRepo repository.VehicleRepository, notify NotificationService, uploader DocumentUploader) PurchaseService {
	return &purchaseService{purchaseRepo: purchaseRepo, vehicleRepo: vehicleRepo, notify: notify, uploader: uploader}
}

func (s *purchaseService) Create(ctx context.Context, actor string, in CreatePurchaseInput) (*model.Purchase, error) {
	p := &model.Purchase{
		Source:       in.Source,
		AuctionID:    strings.TrimSpace(in.AuctionID),
		WinningBid:   in.WinningBid,
		ShippingCost: in.ShippingCost,
		InsuranceFee: in.InsuranceFee,
	}

	switch in.Source {
	case model.PurchaseSourceAuction:
		if in.StockVehicleID != nil {
			return nil, errors.New("auction purchase cannot reference a stock vehicle")
		}
		if p.AuctionID == "" {
			return nil, errors.New("auctionId is required for auction purchases")
		}
		p.LotNumber = strings.TrimSpace(in.LotNumber)
		p.AuctionHouse = strings.TrimSpace(in.AuctionHouse)
		if p.LotNumber == "" || p.AuctionHouse == "" {
			return nil, errors.New("lotNumber and auctionHouse are required for auction purchases")
		}
		p.VehicleMake = strings.TrimSpace(in.VehicleMake)
		p.VehicleModel = strings.TrimSpace(in.VehicleModel)
		if p.VehicleMake == "" || p.VehicleModel == "" {
			return nil, errors.New("vehicle make and model are required")
		}
		p.VehicleYear = in.VehicleYear
		p.VIN = strings.TrimSpace(in.VIN)
		p.Mileage = in.Mileage
		p.Color = strings.TrimSpace(in.Color)
		p.ImageURL = in.ImageURL
	case model.PurchaseSourceStock:
		if in.LotNumber != "" || in.AuctionHouse != "" {
			return nil, errors.New("stock purchase cannot carry auction lot fields")
		}
		if in.StockVehicleID == nil {
			return nil, errors.New("stockVehicleId is required for stock purchases")
		}
		v, err := s.vehicleRepo.FindByID(ctx, *in.StockVehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if v.Status != model.VehicleStatusAvailable {
			return nil, ErrVehicleUnavailable
		}
		p.StockVehicleID = in.StockVehicleID
		p.VehicleMake = v.Make
		p.VehicleModel = v.Model
		p.VehicleYear = v.Year
		p.VIN = v.VIN
		p.Mileage = v.Mileage
		p.Color = v.Color
		p.ImageURL = v.ImageURL
		if p.WinningBid == 0 {
			p.WinningBid = v.Price
		}
	default:
		return nil, errors.New("source must be auction or stock")
	}

	if p.WinningBid <= 0 {
		return nil, errors.New("winningBid must be positive")
	}
	if p.ShippingCost < 0 || p.InsuranceFee < 0 {
		return nil, errors.New("shippingCost and insuranceFee cannot be negative")
	}

	p.TotalAmount = workflow.Total(p.WinningBid, p.ShippingCost, p.InsuranceFee)
	p.PaymentStatus = model.PaymentStatusPending
	p.Status = model.PurchaseStatusPaymentPending

	if err := s.purchaseRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if in.WithWorkflow {
		wf := workflow.NewWorkflow(p.ID)
		if err := s.purchaseRepo.SaveWorkflow(ctx, wf); err != nil {
			return nil, err
		}
		p.Workflow = wf
	}

	// Reserving the stock unit is this service's job as the cross-aggregate
	// caller; the purchase aggregate itself never touches vehicles.
	if p.StockVehicleID != nil {
		if err := s.vehicleRepo.UpdateStatus(ctx, *p.StockVehicleID, model.VehicleStatusReserved); err != nil {
			return nil, err
		}
	}

	if s.notify != nil {
		s.notify.Notify(ctx, actor, "purchase_created", "Purchase created",
			fmt.Sprintf("%s %s registered as %s", p.VehicleMake, p.VehicleModel, p.Status), &p.ID, p.StockVehicleID)
	}
	return p, nil
}

func (s *purchaseService) Get(ctx context.Context, id uint64) (*model.Purchase, error) {
	return s.find(ctx, id)
}

func (s *purchaseService) List(ctx context.Context, status model.PurchaseStatus, limit, offset int) ([]model.Purchase, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if status != "" && !workflow.ValidStatus(status) {
		return nil, 0, errors.New("unknown status filter")
	}
	return s.purchaseRepo.List(ctx, status, limit, offset)
}

func (s *purchaseService) RecordPayment(ctx context.Context, id uint64, actor string, in RecordPaymentInput) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == model.PurchaseStatusCompleted {
		return nil, ErrPurchaseCompleted
	}
	if err := workflow.ValidatePaymentAmount(in.Amount, p.TotalAmount, p.PaidAmount); err != nil {
		return nil, err
	}
	if in.Method == "" {
		return nil, errors.New("payment method is required")
	}
	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	payment := &model.Payment{
		PurchaseID:      p.ID,
		ReferenceID:     uuid.NewString(),
		Amount:          in.Amount,
		Method:          in.Method,
		PaidAt:          paidAt,
		RecordedBy:      actor,
		ReferenceNumber: strings.TrimSpace(in.ReferenceNumber),
		Notes:           in.Notes,
	}

	updated := *p
	updated.PaidAmount += in.Amount
	updated.PaymentStatus = workflow.PaymentStatusFor(updated.PaidAmount, updated.TotalAmount)
	completedNow := false
	if updated.PaymentStatus == model.PaymentStatusCompleted {
		if updated.PaymentReceivedAt == nil {
			now := time.Now()
			updated.PaymentReceivedAt = &now
		}
		// Recording a payment never advances status by itself; this service
		// advances out of payment_pending once it observes full payment.
		if updated.Status == model.PurchaseStatusPaymentPending {
			updated.Status = model.PurchaseStatusProcessing
		}
		completedNow = true
	}

	// The payment row and the new totals land in one transaction; the
	// aggregate in memory is only touched once that write succeeds.
	if err := s.purchaseRepo.AddPayment(ctx, &updated, payment); err != nil {
		return nil, err
	}
	*p = updated
	p.Payments = append(p.Payments, *payment)

	if completedNow && s.notify != nil {
		s.notify.Notify(ctx, actor, "payment_completed", "Payment completed",
			fmt.Sprintf("purchase #%d is fully paid", p.ID), &p.ID, nil)
	}
	return p, nil
}

func (s *purchaseService) UploadDocuments(ctx context.Context, id uint64, actor string, docs []DocumentInput) (*model.Purchase, error) {
	if len(docs) == 0 {
		return nil, errors.New("at least one document is required")
	}
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == model.PurchaseStatusCompleted {
		return nil, ErrPurchaseCompleted
	}
	for _, d := range docs {
		if strings.TrimSpace(d.Name) == "" {
			return nil, errors.New("document name is required")
		}
		if !validDocumentType(d.Type) {
			return nil, fmt.Errorf("unknown document type %q", d.Type)
		}
		if len(d.Data) > 0 && s.uploader == nil {
			return nil, ErrStorageDisabled
		}
	}

	now := time.Now()
	for _, d := range docs {
		fileURL := strings.TrimSpace(d.FileURL)
		if len(d.Data) > 0 {
			url, err := s.uploader.UploadDocument(ctx, p.ID, strings.TrimSpace(d.Name), d.ContentType, d.Data)
			if err != nil {
				return nil, fmt.Errorf("upload document: %w", err)
			}
			fileURL = url
		}
		doc := &model.Document{
			PurchaseID:  p.ID,
			ReferenceID: uuid.NewString(),
			Type:        d.Type,
			Name:        strings.TrimSpace(d.Name),
			FileURL:     fileURL,
			UploadedBy:  actor,
			UploadedAt:  now,
		}
		if err := s.purchaseRepo.AddDocument(ctx, doc); err != nil {
			return nil, err
		}
		p.Documents = append(p.Documents, *doc)

		if p.Workflow != nil {
			if key, ok := workflow.ChecklistKeyFor(d.Type); ok {
				if entry := workflow.MarkChecklistReceived(p.Workflow, key, actor, doc.ReferenceID, now); entry != nil {
					if err := s.purchaseRepo.UpdateChecklistEntry(ctx, entry); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if p.DocumentsUploadedAt == nil {
		p.DocumentsUploadedAt = &now
	}
	// Any upload moves a purchase out of documents_pending, regardless of
	// type or count; the checklist gate is display-only.
	if p.Status == model.PurchaseStatusDocumentsPending {
		p.Status = model.PurchaseStatusProcessing
	}

	if err := s.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) DeleteDocument(ctx context.Context, id uint64, documentRef string) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.purchaseRepo.DeleteDocumentByRef(ctx, p.ID, documentRef)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	kept := p.Documents[:0]
	for _, d := range p.Documents {
		if d.ReferenceID != documentRef {
			kept = append(kept, d)
		}
	}
	p.Documents = kept
	return p, nil
}

func (s *purchaseService) UpdateShipping(ctx context.Context, id uint64, in ShipmentInput) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == model.PurchaseStatusCompleted {
		return nil, ErrPurchaseCompleted
	}

	carrier := strings.TrimSpace(in.Carrier)
	tracking := strings.TrimSpace(in.TrackingNumber)
	status := in.Status
	if status == "" {
		status = model.ShipmentStatusPreparing
	}

	if p.Shipment == nil {
		if carrier == "" || tracking == "" {
			return nil, errors.New("carrier and trackingNumber are required")
		}
		p.Shipment = &model.Shipment{
			PurchaseID:     p.ID,
			Carrier:        carrier,
			TrackingNumber: tracking,
			VesselName:     strings.TrimSpace(in.VesselName),
			Status:         status,
			Location:       strings.TrimSpace(in.Location),
			ETA:            in.ETA,
		}
	} else {
		if (carrier != "" && carrier != p.Shipment.Carrier) ||
			(tracking != "" && tracking != p.Shipment.TrackingNumber) {
			return nil, ErrShipmentIdentity
		}
		p.Shipment.Status = status
		if v := strings.TrimSpace(in.VesselName); v != "" {
			p.Shipment.VesselName = v
		}
		if l := strings.TrimSpace(in.Location); l != "" {
			p.Shipment.Location = l
		}
		if in.ETA != nil {
			p.Shipment.ETA = in.ETA
		}
	}
	if err := s.purchaseRepo.SaveShipment(ctx, p.Shipment); err != nil {
		return nil, err
	}

	// Forward into shipping from any earlier status; never backward out of
	// delivered, even though shipment details stay editable.
	if workflow.StatusIndex(p.Status) < workflow.StatusIndex(model.PurchaseStatusShipping) {
		p.Status = model.PurchaseStatusShipping
	}
	if p.ShippingStartedAt == nil {
		now := time.Now()
		p.ShippingStartedAt = &now
	}
	if err := s.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) MarkDelivered(ctx context.Context, id uint64, actor string) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == model.PurchaseStatusDelivered {
		return p, nil
	}
	if !workflow.IsForward(p.Status, model.PurchaseStatusDelivered) {
		return nil, ErrBackwardTransition
	}
	p.Status = model.PurchaseStatusDelivered
	if p.DeliveredAt == nil {
		now := time.Now()
		p.DeliveredAt = &now
	}
	if err := s.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	if s.notify != nil {
		s.notify.Notify(ctx, actor, "purchase_delivered", "Vehicle delivered",
			fmt.Sprintf("purchase #%d marked delivered", p.ID), &p.ID, nil)
	}
	return p, nil
}

func (s *purchaseService) MarkCompleted(ctx context.Context, id uint64, actor string) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == model.PurchaseStatusCompleted {
		return p, nil
	}
	p.Status = model.PurchaseStatusCompleted
	if p.CompletedAt == nil {
		now := time.Now()
		p.CompletedAt = &now
	}
	if err := s.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.Workflow != nil && !p.Workflow.Finalized {
		p.Workflow.Finalized = true
		if err := s.purchaseRepo.SaveWorkflow(ctx, p.Workflow); err != nil {
			return nil, err
		}
	}
	if p.StockVehicleID != nil {
		if err := s.vehicleRepo.UpdateStatus(ctx, *p.StockVehicleID, model.VehicleStatusSold); err != nil {
			return nil, err
		}
	}
	if s.notify != nil {
		s.notify.Notify(ctx, actor, "purchase_completed", "Purchase completed",
			fmt.Sprintf("purchase #%d is complete", p.ID), &p.ID, nil)
	}
	return p, nil
}

func (s *purchaseService) CompleteWorkflowStage(ctx context.Context, id uint64, stage model.WorkflowStage, actor string) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Workflow == nil {
		return nil, ErrNoWorkflow
	}
	wasComplete := workflow.StageComplete(p.Workflow, stage)
	rec, err := workflow.CompleteStage(p.Workflow, stage, actor, time.Now())
	if err != nil {
		return nil, err
	}
	if wasComplete {
		return p, nil
	}
	if err := s.purchaseRepo.UpdateStageRecord(ctx, rec); err != nil {
		return nil, err
	}
	if s.notify != nil {
		next := workflow.CurrentStage(p.Workflow)
		s.notify.Notify(ctx, actor, "stage_completed",
			fmt.Sprintf("%s stage completed", stage.Label()),
			fmt.Sprintf("purchase #%d moved to %s", p.ID, next.Label()), &p.ID, nil)
	}
	return p, nil
}

func (s *purchaseService) UpdateWorkflow(ctx context.Context, id uint64, actor string, in UpdateWorkflowInput) (*model.Purchase, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Workflow == nil {
		wf := workflow.NewWorkflow(p.ID)
		if err := s.purchaseRepo.SaveWorkflow(ctx, wf); err != nil {
			return nil, err
		}
		p.Workflow = wf
	}

	now := time.Now()
	for _, stage := range in.CompleteStages {
		rec, err := workflow.CompleteStage(p.Workflow, stage, actor, now)
		if err != nil {
			return nil, err
		}
		if err := s.purchaseRepo.UpdateStageRecord(ctx, rec); err != nil {
			return nil, err
		}
	}

	// Finalized is terminal: it can be raised, never cleared.
	if in.Finalized != nil && *in.Finalized && !p.Workflow.Finalized {
		p.Workflow.Finalized = true
		if err := s.purchaseRepo.SaveWorkflow(ctx, p.Workflow); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *purchaseService) Progress(ctx context.Context, id uint64) (*PurchaseProgress, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	reqs := workflow.RequiredDocumentsStatus(p.Status, p.Documents)
	satisfied := 0
	for _, r := range reqs {
		if r.Satisfied {
			satisfied++
		}
	}

	label := workflow.StatusLabel(p.Status)
	if p.Workflow != nil {
		label = workflow.CurrentStage(p.Workflow).Label()
	}

	return &PurchaseProgress{
		PaymentProgressPercent: workflow.ProgressPercent(p.PaidAmount, p.TotalAmount),
		OutstandingBalance:     workflow.Outstanding(p.TotalAmount, p.PaidAmount),
		RequiredDocuments:      reqs,
		DocumentsSatisfied:     satisfied,
		DocumentsRequired:      len(reqs),
		CurrentStageLabel:      label,
		CanAdvance:             canAdvance(p, satisfied, len(reqs)),
	}, nil
}

func canAdvance(p *model.Purchase, satisfied, required int) bool {
	switch p.Status {
	case model.PurchaseStatusPaymentPending:
		return p.PaymentStatus == model.PaymentStatusCompleted
	case model.PurchaseStatusDocumentsPending:
		return satisfied == required
	case model.PurchaseStatusShipping:
		return p.Shipment != nil
	case model.PurchaseStatusCompleted:
		return false
	default:
		return true
	}
}

func (s *purchaseService) find(ctx context.Context, id uint64) (*model.Purchase, error) {
	p, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func validDocumentType(t model.DocumentType) bool {
	switch t {
	case model.DocumentTypeInvoice, model.DocumentTypeExportCertificate,
		model.DocumentTypeBillOfLading, model.DocumentTypeInsurance,
		model.DocumentTypeInspection, model.DocumentTypeOther:
		return true
	}
	return false
}
