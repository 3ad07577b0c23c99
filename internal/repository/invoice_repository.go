package repository

import (
	"context"

	"github.com/inteller-studio/zervtek-admin/internal/model"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	FindByID(ctx context.Context, id uint64) (*model.Invoice, error)
	ListByPurchase(ctx context.Context, purchaseID uint64) ([]model.Invoice, error)
	SetDB(db *gorm.DB)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *model.Invoice) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uint64) (*model.Invoice, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var inv model.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) ListByPurchase(ctx context.Context, purchaseID uint64) ([]model.Invoice, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.Invoice
	if err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *invoiceRepository) SetDB(db *gorm.DB) {
	r.db = db
}
