package reqctx

import "context"

type ctxKey string

const (
	keyRID        ctxKey = "req_rid"
	keyPurchaseID ctxKey = "req_purchase_id"
)

// WithRID stores a correlation id for sheet grading logs.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns the correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}

// WithPurchaseID stores the purchase id for sheet grading logs.
func WithPurchaseID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, keyPurchaseID, id)
}

// PurchaseID returns the purchase id if present.
func PurchaseID(ctx context.Context) uint64 {
	v, _ := ctx.Value(keyPurchaseID).(uint64)
	return v
}
