package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inteller-studio/zervtek-admin/internal/model"
)

type fakeInvoiceRepo struct {
	invoices map[uint64]*model.Invoice
	nextID   uint64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[uint64]*model.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *model.Invoice) error {
	r.nextID++
	inv.ID = r.nextID
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uint64) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) ListByPurchase(_ context.Context, purchaseID uint64) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if inv.PurchaseID == purchaseID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) SetDB(_ *gorm.DB) {}

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{6}-[0-9A-F]{8}$`)

func TestGenerateInvoice(t *testing.T) {
	purchases := newFakePurchaseRepo()
	psvc := NewPurchaseService(purchases, newFakeVehicleRepo(), nil, nil)
	p, err := psvc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	svc := NewInvoiceService(newFakeInvoiceRepo(), purchases)
	inv, err := svc.Generate(context.Background(), p.ID, "admin-uid", GenerateInvoiceInput{
		AdditionalFees: []InvoiceAdjustment{{Description: "Inland transport", Amount: 30000}},
		Discounts:      []InvoiceAdjustment{{Description: "Repeat customer", Amount: 50000}},
	})
	require.NoError(t, err)

	assert.Regexp(t, invoiceNumberPattern, inv.Number)
	assert.Equal(t, "JPY", inv.Currency)
	assert.Equal(t, p.TotalAmount, inv.Subtotal)
	assert.Equal(t, p.TotalAmount+30000-50000, inv.GrandTotal)
	require.Len(t, inv.Lines, 5)
	assert.Equal(t, model.InvoiceLineCharge, inv.Lines[0].Kind)
	assert.Equal(t, model.InvoiceLineFee, inv.Lines[3].Kind)
	assert.Equal(t, model.InvoiceLineDiscount, inv.Lines[4].Kind)

	// invoicing never reprices the purchase itself
	assert.Equal(t, int64(1000000), purchases.purchases[p.ID].TotalAmount)
}

func TestGenerateInvoiceValidation(t *testing.T) {
	purchases := newFakePurchaseRepo()
	psvc := NewPurchaseService(purchases, newFakeVehicleRepo(), nil, nil)
	p, err := psvc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	svc := NewInvoiceService(newFakeInvoiceRepo(), purchases)

	_, err = svc.Generate(context.Background(), p.ID, "admin-uid", GenerateInvoiceInput{
		AdditionalFees: []InvoiceAdjustment{{Description: "", Amount: 1000}},
	})
	require.Error(t, err)

	_, err = svc.Generate(context.Background(), p.ID, "admin-uid", GenerateInvoiceInput{
		Discounts: []InvoiceAdjustment{{Description: "oops", Amount: -5}},
	})
	require.Error(t, err)

	// discounts cannot push the total below zero
	_, err = svc.Generate(context.Background(), p.ID, "admin-uid", GenerateInvoiceInput{
		Discounts: []InvoiceAdjustment{{Description: "everything", Amount: 2000000}},
	})
	require.Error(t, err)

	_, err = svc.Generate(context.Background(), 404, "admin-uid", GenerateInvoiceInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListInvoicesByPurchase(t *testing.T) {
	purchases := newFakePurchaseRepo()
	psvc := NewPurchaseService(purchases, newFakeVehicleRepo(), nil, nil)
	p, err := psvc.Create(context.Background(), "admin-uid", auctionInput())
	require.NoError(t, err)

	svc := NewInvoiceService(newFakeInvoiceRepo(), purchases)
	_, err = svc.Generate(context.Background(), p.ID, "admin-uid", GenerateInvoiceInput{})
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), p.ID, "admin-uid", GenerateInvoiceInput{})
	require.NoError(t, err)

	list, err := svc.ListByPurchase(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
