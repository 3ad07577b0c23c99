package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/workflow"
)

type fakePurchaseRepo struct {
	purchases map[uint64]*model.Purchase
	nextID    uint64

	payments    int
	documents   int
	updates     int
	stageSaves  int
	failPayment bool
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: map[uint64]*model.Purchase{}}
}

func (r *fakePurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	r.nextID++
	p.ID = r.nextID
	r.purchases[p.ID] = p
	return nil
}

func (r *fakePurchaseRepo) FindByID(_ context.Context, id uint64) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePurchaseRepo) Update(_ context.Context, p *model.Purchase) error {
	if _, ok := r.purchases[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.purchases[p.ID] = p
	r.updates++
	return nil
}

func (r *fakePurchaseRepo) List(_ context.Context, status model.PurchaseStatus, limit, offset int) ([]model.Purchase, int64, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) AddPayment(_ context.Context, _ *model.Purchase, payment *model.Payment) error {
	if r.failPayment {
		return errors.New("insert failed")
	}
	r.payments++
	payment.ID = uint64(r.payments)
	return nil
}

func (r *fakePurchaseRepo) AddDocument(_ context.Context, doc *model.Document) error {
	r.documents++
	doc.ID = uint64(r.documents)
	return nil
}

func (r *fakePurchaseRepo) DeleteDocumentByRef(_ context.Context, purchaseID uint64, referenceID string) (int64, error) {
	p, ok := r.purchases[purchaseID]
	if !ok {
		return 0, nil
	}
	var rows int64
	for _, d := range p.Documents {
		if d.ReferenceID == referenceID {
			rows++
		}
	}
	return rows, nil
}

func (r *fakePurchaseRepo) SaveShipment(_ context.Context, s *model.Shipment) error {
	if s.ID == 0 {
		s.ID = 1
	}
	return nil
}

func (r *fakePurchaseRepo) SaveWorkflow(_ context.Context, wf *model.PurchaseWorkflow) error {
	if wf.ID == 0 {
		wf.ID = 1
	}
	return nil
}

func (r *fakePurchaseRepo) UpdateStageRecord(_ context.Context, _ *model.WorkflowStageRecord) error {
	r.stageSaves++
	return nil
}

func (r *fakePurchaseRepo) UpdateChecklistEntry(_ context.Context, _ *model.WorkflowChecklistEntry) error {
	return nil
}

func (r *fakePurchaseRepo) SetDB(_ *gorm.DB) {}

type fakeVehicleRepo struct {
	vehicles map[uint64]*model.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[uint64]*model.Vehicle{}}
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	if v.ID == 0 {
		v.ID = uint64(len(r.vehicles) + 1)
	}
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) FindByID(_ context.Context, id uint64) (*model.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *fakeVehicleRepo) List(_ context.Context, _ model.VehicleStatus, _ string, _, _ int) ([]model.Vehicle, int64, error) {
	return nil, 0, nil
}

func (r *fakeVehicleRepo) UpdateStatus(_ context.Context, id uint64, status model.VehicleStatus) error {
	v, ok := r.vehicles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVehicleRepo) SetDB(_ *gorm.DB) {}

type fakeNotifier struct {
	types []string
}

func (n *fakeNotifier) Notify(_ context.Context, _, typ, _, _ string, _, _ *uint64) {
	n.types = append(n.types, typ)
}

func (n *fakeNotifier) List(_ context.Context, _ string, _ bool, _ int) ([]model.Notification, int64, error) {
	return nil, 0, nil
}

func (n *fakeNotifier) MarkAllRead(_ context.Context, _ string) error { return nil }

func (n *fakeNotifier) MarkByPurchase(_ context.Context, _ string, _ uint64) error { return nil }

func (n *fakeNotifier) count(typ string) int {
	c := 0
	for _, t := range n.types {
		if t == typ {
			c++
		}
	}
	return c
}

type fakeUploader struct {
	calls int
}

func (u *fakeUploader) UploadDocument(_ context.Context, purchaseID uint64, filename, _ string, _ []byte) (string, error) {
	u.calls++
	return "https://storage.example.com/" + filename, nil
}

func newTestService() (PurchaseService, *fakePurchaseRepo, *fakeVehicleRepo, *fakeNotifier) {
	purchases := newFakePurchaseRepo()
	vehicles := newFakeVehicleRepo()
	notifier := &fakeNotifier{}
	svc := NewPurchaseService(purchases, vehicles, notifier, &fakeUploader{})
	return svc, purchases, vehicles, notifier
}

func auctionInput() CreatePurchaseInput {
	return CreatePurchaseInput{
		Source:       model.PurchaseSourceAuction,
		AuctionID:    "USS-20240115-042",
		LotNumber:    "42",
		AuctionHouse: "USS Tokyo",
		VehicleMake:  "Toyota",
		VehicleModel: "Supra",
		VehicleYear:  1997,
		VIN:          "JZA80-0123456",
		Mileage:      84000,
		Color:        "white",
		WinningBid:   800000,
		ShippingCost: 150000,
		InsuranceFee: 50000,
	}
}

func TestCreatePurchaseAuction(t *testing.T) {
	svc, _, _, notifier := newTestService()

	in := auctionInput()
	in.WithWorkflow = true
	p, err := svc.Create(context.Background(), "admin-uid", in)
	require.NoError(t, err)

	assert.Equal(t, int64(1000000), p.TotalAmount)
	assert.Equal(t, int64(0), p.PaidAmount)
	assert.Equal(t, model.PurchaseStatusPaymentPending, p.Status)
	assert.Equal(t, model.PaymentStatusPending, p.PaymentStatus)
	require.NotNil(t, p.Workflow)
	assert.Len(t, p.Workflow.Stages, model.StageCount)
	assert.Equal(t, 1, notifier.count("purchase_created"))
}

func TestCreatePurchaseStockReservesVehicle(t *testing.T) {
	svc, _, vehicles, _ := newTestService()
	v := &model.Vehicle{
		Make: "Nissan", Model: "Skyline GT-R", Year: 1999,
		VIN: "BNR34-000111", Price: 4500000,
		Status: model.VehicleStatusAvailable,
	}
	require.NoError(t, vehicles.Create(context.Background(), v))

	p, err := svc.Create(context.Background(), "admin-uid", CreatePurchaseInput{
		Source:         model.PurchaseSourceStock,
		StockVehicleID: &v.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Nissan", p.VehicleMake)
	assert.Equal(t, "Skyline GT-R", p.VehicleModel)
	assert.Equal(t, v.Price, p.WinningBid)
	assert.Equal(t, v.Price, p.TotalAmount)
	assert.Equal(t, model.VehicleStatusReserved, v.Status)
}

func TestCreatePurchaseValidation(t *testing.T) {
	svc, _, vehicles, _ := newTestService()
	reserved := &model.Vehicle{Make: "Honda", Model: "NSX", Year: 1995, Price: 9000000, Status: model.VehicleStatusReserved}
	require.NoError(t, vehicles.Create(context.Background(), reserved))

	tests := []struct {
		name    string
		mutate  func(*CreatePurchaseInput)
		wantErr error
	}{
		{"missing auction id", func(in *CreatePurchaseInput) { in.AuctionID = "" }, nil},
		{"missing lot number", func(in *CreatePurchaseInput) { in.LotNumber = "" }, nil},
		{"non-positive bid", func(in *CreatePurchaseInput) { in.WinningBid = 0 }, nil},
		{"negative shipping", func(in *CreatePurchaseInput) { in.ShippingCost = -1 }, nil},
		{"unknown source", func(in *CreatePurchaseInput) { in.Source = "leasing" }, nil},
		{"stock with lot fields", func(in *CreatePurchaseInput) {
			in.Source = model.PurchaseSourceStock
			in.StockVehicleID = &reserved.ID
		}, nil},
		{"reserved stock vehicle", func(in *CreatePurchaseInput) {
			in.Source = model.PurchaseSourceStock
			in.LotNumber = ""
			in.AuctionHouse = ""
			in.StockVehicleID = &reserved.ID
		}, ErrVehicleUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := auctionInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), "admin-uid", in)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRecordPaymentFlow(t *testing.T) {
	svc, _, _, notifier := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	require.Equal(t, int64(1000000), p.TotalAmount)

	pay := func(amount int64) (*model.Purchase, error) {
		return svc.RecordPayment(context.Background(), p.ID, "admin-uid", RecordPaymentInput{
			Amount: amount,
			Method: model.PaymentMethodBankTransfer,
		})
	}

	// partial payment
	got, err := pay(600000)
	require.NoError(t, err)
	assert.Equal(t, int64(600000), got.PaidAmount)
	assert.Equal(t, model.PaymentStatusPartial, got.PaymentStatus)
	assert.Equal(t, model.PurchaseStatusPaymentPending, got.Status)
	assert.Nil(t, got.PaymentReceivedAt)

	// exceeding the outstanding balance is rejected and changes nothing
	_, err = pay(500000)
	require.ErrorIs(t, err, workflow.ErrPaymentExceedsOutstanding)
	assert.Equal(t, int64(600000), got.PaidAmount)
	assert.Len(t, got.Payments, 1)

	// exact remainder completes payment and advances the purchase
	got, err = pay(400000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), got.PaidAmount)
	assert.Equal(t, model.PaymentStatusCompleted, got.PaymentStatus)
	assert.Equal(t, model.PurchaseStatusProcessing, got.Status)
	require.NotNil(t, got.PaymentReceivedAt)
	assert.Len(t, got.Payments, 2)
	assert.Equal(t, 1, notifier.count("payment_completed"))

	firstReceived := got.PaymentReceivedAt

	prog, err := svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, prog.PaymentProgressPercent)
	assert.Equal(t, int64(0), prog.OutstandingBalance)

	// every payment carries its own reference id and the recording actor
	for _, pm := range got.Payments {
		assert.NotEmpty(t, pm.ReferenceID)
		assert.Equal(t, "admin-uid", pm.RecordedBy)
	}
	assert.Same(t, firstReceived, got.PaymentReceivedAt)
}

func TestRecordPaymentPersistFailureLeavesTotalsUntouched(t *testing.T) {
	svc, repo, _, notifier := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	repo.failPayment = true
	_, err = svc.RecordPayment(context.Background(), p.ID, "admin-uid", RecordPaymentInput{
		Amount: 1000000,
		Method: model.PaymentMethodBankTransfer,
	})
	require.Error(t, err)

	stored := repo.purchases[p.ID]
	assert.Equal(t, int64(0), stored.PaidAmount)
	assert.Equal(t, model.PaymentStatusPending, stored.PaymentStatus)
	assert.Equal(t, model.PurchaseStatusPaymentPending, stored.Status)
	assert.Nil(t, stored.PaymentReceivedAt)
	assert.Empty(t, stored.Payments)
	assert.Equal(t, 0, notifier.count("payment_completed"))
}

func TestRecordPaymentOnCompletedPurchase(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	repo.purchases[p.ID].Status = model.PurchaseStatusCompleted

	_, err = svc.RecordPayment(context.Background(), p.ID, "admin-uid", RecordPaymentInput{
		Amount: 1000,
		Method: model.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, ErrPurchaseCompleted)
}

func TestUploadDocuments(t *testing.T) {
	svc, repo, _, _ := newTestService()
	in := auctionInput()
	in.WithWorkflow = true
	p, err := svc.Create(context.Background(), "admin-uid", in)
	require.NoError(t, err)
	repo.purchases[p.ID].Status = model.PurchaseStatusDocumentsPending

	got, err := svc.UploadDocuments(context.Background(), p.ID, "admin-uid", []DocumentInput{
		{Type: model.DocumentTypeInvoice, Name: "invoice.pdf", FileURL: "https://files.example.com/invoice.pdf"},
	})
	require.NoError(t, err)

	// any upload moves the purchase out of documents_pending
	assert.Equal(t, model.PurchaseStatusProcessing, got.Status)
	require.Len(t, got.Documents, 1)
	assert.NotEmpty(t, got.Documents[0].ReferenceID)
	require.NotNil(t, got.DocumentsUploadedAt)

	// the matching checklist slot is marked with the document reference
	var entry *model.WorkflowChecklistEntry
	for i := range got.Workflow.Checklist {
		if got.Workflow.Checklist[i].Key == "invoice" {
			entry = &got.Workflow.Checklist[i]
		}
	}
	require.NotNil(t, entry)
	assert.True(t, entry.Received)
	assert.Equal(t, got.Documents[0].ReferenceID, entry.DocumentRef)

	// once out of documents_pending the checklist no longer gates advancement
	prog, err := svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, prog.DocumentsSatisfied)
	assert.Equal(t, 3, prog.DocumentsRequired)
	assert.True(t, prog.CanAdvance)
}

func TestProgressDocumentsPendingGatesOnChecklist(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	repo.purchases[p.ID].Status = model.PurchaseStatusDocumentsPending
	repo.purchases[p.ID].Documents = []model.Document{
		{Type: model.DocumentTypeInvoice},
		{Type: model.DocumentTypeExportCertificate},
	}

	prog, err := svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, prog.DocumentsSatisfied)
	assert.Equal(t, 3, prog.DocumentsRequired)
	assert.False(t, prog.CanAdvance)

	repo.purchases[p.ID].Documents = append(repo.purchases[p.ID].Documents,
		model.Document{Type: model.DocumentTypeInspection})
	prog, err = svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, prog.CanAdvance)
}

func TestUploadDocumentsValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	_, err = svc.UploadDocuments(context.Background(), p.ID, "admin-uid", nil)
	require.Error(t, err)

	_, err = svc.UploadDocuments(context.Background(), p.ID, "admin-uid", []DocumentInput{
		{Type: "passport", Name: "passport.pdf"},
	})
	require.Error(t, err)

	noStorage := NewPurchaseService(newFakePurchaseRepo(), newFakeVehicleRepo(), nil, nil)
	p2, err := noStorage.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	_, err = noStorage.UploadDocuments(context.Background(), p2.ID, "admin-uid", []DocumentInput{
		{Type: model.DocumentTypeInvoice, Name: "invoice.pdf", Data: []byte("pdf"), ContentType: "application/pdf"},
	})
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestDeleteDocument(t *testing.T) {
	svc, _, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	got, err := svc.UploadDocuments(context.Background(), p.ID, "admin-uid", []DocumentInput{
		{Type: model.DocumentTypeInvoice, Name: "invoice.pdf", FileURL: "https://files.example.com/invoice.pdf"},
	})
	require.NoError(t, err)
	ref := got.Documents[0].ReferenceID

	got, err = svc.DeleteDocument(context.Background(), p.ID, ref)
	require.NoError(t, err)
	assert.Empty(t, got.Documents)

	_, err = svc.DeleteDocument(context.Background(), p.ID, "no-such-ref")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateShipping(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	repo.purchases[p.ID].Status = model.PurchaseStatusProcessing

	_, err = svc.UpdateShipping(context.Background(), p.ID, ShipmentInput{})
	require.Error(t, err, "first update must carry carrier and tracking")

	got, err := svc.UpdateShipping(context.Background(), p.ID, ShipmentInput{
		Carrier:        "NYK Line",
		TrackingNumber: "NYKU1234567",
		VesselName:     "NYK Delphinus",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseStatusShipping, got.Status)
	require.NotNil(t, got.Shipment)
	require.NotNil(t, got.ShippingStartedAt)
	started := got.ShippingStartedAt

	// detail updates are fine, the start timestamp is written once
	got, err = svc.UpdateShipping(context.Background(), p.ID, ShipmentInput{
		Status:   model.ShipmentStatusInTransit,
		Location: "Pacific Ocean",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ShipmentStatusInTransit, got.Shipment.Status)
	assert.Same(t, started, got.ShippingStartedAt)

	// carrier and tracking are locked after the first write
	_, err = svc.UpdateShipping(context.Background(), p.ID, ShipmentInput{
		Carrier: "Maersk",
	})
	assert.ErrorIs(t, err, ErrShipmentIdentity)

	// a shipping update never drags a delivered purchase backward
	repo.purchases[p.ID].Status = model.PurchaseStatusDelivered
	got, err = svc.UpdateShipping(context.Background(), p.ID, ShipmentInput{
		Status: model.ShipmentStatusArrived,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseStatusDelivered, got.Status)
}

func TestMarkDelivered(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	repo.purchases[p.ID].Status = model.PurchaseStatusShipping

	got, err := svc.MarkDelivered(context.Background(), p.ID, "admin-uid")
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseStatusDelivered, got.Status)
	require.NotNil(t, got.DeliveredAt)
	first := got.DeliveredAt

	// repeat call is a no-op
	got, err = svc.MarkDelivered(context.Background(), p.ID, "admin-uid")
	require.NoError(t, err)
	assert.Same(t, first, got.DeliveredAt)

	repo.purchases[p.ID].Status = model.PurchaseStatusCompleted
	_, err = svc.MarkDelivered(context.Background(), p.ID, "admin-uid")
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestMarkCompleted(t *testing.T) {
	svc, repo, vehicles, notifier := newTestService()
	v := &model.Vehicle{Make: "Mazda", Model: "RX-7", Year: 1999, Price: 3200000, Status: model.VehicleStatusAvailable}
	require.NoError(t, vehicles.Create(context.Background(), v))

	p, err := svc.Create(context.Background(), "admin-uid", CreatePurchaseInput{
		Source:         model.PurchaseSourceStock,
		StockVehicleID: &v.ID,
		WithWorkflow:   true,
	})
	require.NoError(t, err)
	repo.purchases[p.ID].Status = model.PurchaseStatusDelivered

	got, err := svc.MarkCompleted(context.Background(), p.ID, "admin-uid")
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.Workflow.Finalized)
	assert.Equal(t, model.VehicleStatusSold, v.Status)
	first := got.CompletedAt

	got, err = svc.MarkCompleted(context.Background(), p.ID, "admin-uid")
	require.NoError(t, err)
	assert.Same(t, first, got.CompletedAt)
	assert.Equal(t, 1, notifier.count("purchase_completed"))
}

func TestCompleteWorkflowStage(t *testing.T) {
	svc, _, _, notifier := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	_, err = svc.CompleteWorkflowStage(context.Background(), p.ID, model.StagePurchase, "admin-uid")
	assert.ErrorIs(t, err, ErrNoWorkflow)

	in := auctionInput()
	in.WithWorkflow = true
	p, err = svc.Create(context.Background(), "admin-uid", in)
	require.NoError(t, err)

	_, err = svc.CompleteWorkflowStage(context.Background(), p.ID, model.StagePayment, "admin-uid")
	assert.ErrorIs(t, err, workflow.ErrStageNotAccessible)

	got, err := svc.CompleteWorkflowStage(context.Background(), p.ID, model.StagePurchase, "admin-uid")
	require.NoError(t, err)
	assert.True(t, workflow.StageComplete(got.Workflow, model.StagePurchase))
	assert.Equal(t, 1, notifier.count("stage_completed"))

	// re-completing is silent
	_, err = svc.CompleteWorkflowStage(context.Background(), p.ID, model.StagePurchase, "admin-uid")
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.count("stage_completed"))
}

func TestUpdateWorkflow(t *testing.T) {
	svc, _, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)
	require.Nil(t, p.Workflow)

	finalized := true
	got, err := svc.UpdateWorkflow(context.Background(), p.ID, "admin-uid", UpdateWorkflowInput{
		CompleteStages: []model.WorkflowStage{model.StagePurchase, model.StageTransport},
		Finalized:      &finalized,
	})
	require.NoError(t, err)
	require.NotNil(t, got.Workflow)
	assert.True(t, workflow.StageComplete(got.Workflow, model.StageTransport))
	assert.True(t, got.Workflow.Finalized)

	// finalized can never be cleared
	cleared := false
	got, err = svc.UpdateWorkflow(context.Background(), p.ID, "admin-uid", UpdateWorkflowInput{Finalized: &cleared})
	require.NoError(t, err)
	assert.True(t, got.Workflow.Finalized)
}

func TestProgressCanAdvance(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	// payment_pending with nothing paid
	prog, err := svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, prog.CanAdvance)

	repo.purchases[p.ID].PaidAmount = p.TotalAmount
	repo.purchases[p.ID].PaymentStatus = model.PaymentStatusCompleted
	prog, err = svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, prog.CanAdvance)

	repo.purchases[p.ID].Status = model.PurchaseStatusShipping
	prog, err = svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, prog.CanAdvance, "shipping requires a shipment record")

	repo.purchases[p.ID].Status = model.PurchaseStatusCompleted
	prog, err = svc.Progress(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, prog.CanAdvance)
}

func TestGetNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Get(context.Background(), 404)
	require.True(t, errors.Is(err, ErrNotFound))
}
