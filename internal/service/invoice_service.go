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
	"gorm.io/gorm"
)

type InvoiceAdjustment struct {
	Description string
	Amount      int64
}

type GenerateInvoiceInput struct {
	AdditionalFees []InvoiceAdjustment
	Discounts      []InvoiceAdjustment
}

type InvoiceService interface {
	Generate(ctx context.Context, purchaseID uint64, actor string, in GenerateInvoiceInput) (*model.Invoice, error)
	Get(ctx context.Context, id uint64) (*model.Invoice, error)
	ListByPurchase(ctx context.Context, purchaseID uint64) ([]model.Invoice, error)
}

type invoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	purchaseRepo repository.PurchaseRepository
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, purchaseRepo repository.PurchaseRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, purchaseRepo: purchaseRepo}
}

// Generate snapshots the purchase totals into a new invoice. Fees and
// discounts live only on the invoice; the purchase row is never repriced.
func (s *invoiceService) Generate(ctx context.Context, purchaseID uint64, actor string, in GenerateInvoiceInput) (*model.Invoice, error) {
	p, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	for _, a := range append(append([]InvoiceAdjustment{}, in.AdditionalFees...), in.Discounts...) {
		if strings.TrimSpace(a.Description) == "" {
			return nil, errors.New("adjustment description is required")
		}
		if a.Amount <= 0 {
			return nil, errors.New("adjustment amount must be positive")
		}
	}

	now := time.Now()
	inv := &model.Invoice{
		PurchaseID: p.ID,
		Number:     invoiceNumber(now),
		IssuedAt:   now,
		IssuedBy:   actor,
		Currency:   "JPY",
	}

	inv.Lines = append(inv.Lines,
		model.InvoiceLine{Kind: model.InvoiceLineCharge, Description: "Winning bid", Amount: p.WinningBid},
		model.InvoiceLine{Kind: model.InvoiceLineCharge, Description: "Shipping", Amount: p.ShippingCost},
		model.InvoiceLine{Kind: model.InvoiceLineCharge, Description: "Insurance", Amount: p.InsuranceFee},
	)
	inv.Subtotal = p.TotalAmount
	inv.GrandTotal = p.TotalAmount

	for _, fee := range in.AdditionalFees {
		inv.Lines = append(inv.Lines, model.InvoiceLine{
			Kind:        model.InvoiceLineFee,
			Description: strings.TrimSpace(fee.Description),
			Amount:      fee.Amount,
		})
		inv.GrandTotal += fee.Amount
	}
	for _, d := range in.Discounts {
		inv.Lines = append(inv.Lines, model.InvoiceLine{
			Kind:        model.InvoiceLineDiscount,
			Description: strings.TrimSpace(d.Description),
			Amount:      d.Amount,
		})
		inv.GrandTotal -= d.Amount
	}
	if inv.GrandTotal < 0 {
		return nil, errors.New("discounts exceed invoice total")
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, id uint64) (*model.Invoice, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) ListByPurchase(ctx context.Context, purchaseID uint64) ([]model.Invoice, error) {
	return s.invoiceRepo.ListByPurchase(ctx, purchaseID)
}

func invoiceNumber(issuedAt time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", issuedAt.Format("200601"), suffix)
}
