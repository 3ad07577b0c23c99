package model

import "time"

type InvoiceLineKind string

const (
	InvoiceLineCharge   InvoiceLineKind = "charge"
	InvoiceLineFee      InvoiceLineKind = "fee"
	InvoiceLineDiscount InvoiceLineKind = "discount"
)

// Invoice is a point-in-time statement generated from a purchase. Extra fees
// and discounts live only on the invoice; the purchase keeps its locked totals.
type Invoice struct {
	ID         uint64        `gorm:"primaryKey;autoIncrement"`
	PurchaseID uint64        `gorm:"column:purchase_id;index;not null"`
	Number     string        `gorm:"column:number;size:32;uniqueIndex;not null"`
	IssuedAt   time.Time     `gorm:"column:issued_at;not null"`
	IssuedBy   string        `gorm:"column:issued_by;size:128;not null"`
	Subtotal   int64         `gorm:"column:subtotal;not null"`
	GrandTotal int64         `gorm:"column:grand_total;not null"`
	Currency   string        `gorm:"column:currency;size:8;not null"`
	Lines      []InvoiceLine `gorm:"foreignKey:InvoiceID"`
	CreatedAt  time.Time     `gorm:"autoCreateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceLine struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	InvoiceID   uint64          `gorm:"column:invoice_id;index;not null"`
	Kind        InvoiceLineKind `gorm:"column:kind;size:16;not null"`
	Description string          `gorm:"column:description;size:128;not null"`
	Amount      int64           `gorm:"column:amount;not null"`
}

func (InvoiceLine) TableName() string {
	return "invoice_lines"
}
