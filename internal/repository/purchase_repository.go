package repository

import (
	"context"
	"errors"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"gorm.io/gorm"
)

var ErrDBNotReady = errors.New("database not initialized")

type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) error
	FindByID(ctx context.Context, id uint64) (*model.Purchase, error)
	Update(ctx context.Context, p *model.Purchase) error
	List(ctx context.Context, status model.PurchaseStatus, limit, offset int) ([]model.Purchase, int64, error)
	AddPayment(ctx context.Context, p *model.Purchase, payment *model.Payment) error
	AddDocument(ctx context.Context, doc *model.Document) error
	DeleteDocumentByRef(ctx context.Context, purchaseID uint64, referenceID string) (int64, error)
	SaveShipment(ctx context.Context, s *model.Shipment) error
	SaveWorkflow(ctx context.Context, wf *model.PurchaseWorkflow) error
	UpdateStageRecord(ctx context.Context, rec *model.WorkflowStageRecord) error
	UpdateChecklistEntry(ctx context.Context, e *model.WorkflowChecklistEntry) error
	SetDB(db *gorm.DB)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, p *model.Purchase) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uint64) (*model.Purchase, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var p model.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payments.id ASC") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("documents.id ASC") }).
		Preload("Shipment").
		Preload("Workflow").
		Preload("Workflow.Stages", func(db *gorm.DB) *gorm.DB { return db.Order("workflow_stage_records.stage ASC") }).
		Preload("Workflow.Checklist").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepository) Update(ctx context.Context, p *model.Purchase) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	// Associations are persisted through their own methods; Save here would
	// re-save payment rows and break the append-only audit trail.
	return r.db.WithContext(ctx).Omit("Payments", "Documents", "Shipment", "Workflow").Save(p).Error
}

func (r *purchaseRepository) List(ctx context.Context, status model.PurchaseStatus, limit, offset int) ([]model.Purchase, int64, error) {
	if r.db == nil {
		return nil, 0, ErrDBNotReady
	}
	q := r.db.WithContext(ctx).Model(&model.Purchase{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Purchase
	if err := q.
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// AddPayment inserts the payment row and saves the purchase totals in one
// transaction so a crash cannot leave a payment behind a stale PaidAmount.
func (r *purchaseRepository) AddPayment(ctx context.Context, p *model.Purchase, payment *model.Payment) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Omit("Payments", "Documents", "Shipment", "Workflow").Save(p).Error
	})
}

func (r *purchaseRepository) AddDocument(ctx context.Context, doc *model.Document) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *purchaseRepository) DeleteDocumentByRef(ctx context.Context, purchaseID uint64, referenceID string) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Where("purchase_id = ? AND reference_id = ?", purchaseID, referenceID).
		Delete(&model.Document{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *purchaseRepository) SaveShipment(ctx context.Context, s *model.Shipment) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *purchaseRepository) SaveWorkflow(ctx context.Context, wf *model.PurchaseWorkflow) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(wf).Error
}

func (r *purchaseRepository) UpdateStageRecord(ctx context.Context, rec *model.WorkflowStageRecord) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *purchaseRepository) UpdateChecklistEntry(ctx context.Context, e *model.WorkflowChecklistEntry) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *purchaseRepository) SetDB(db *gorm.DB) {
	r.db = db
}
