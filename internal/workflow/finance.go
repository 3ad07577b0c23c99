package workflow

import (
	"errors"
	"math"

	"github.com/inteller-studio/zervtek-admin/internal/model"
)

var (
	ErrNonPositiveAmount         = errors.New("payment amount must be positive")
	ErrPaymentExceedsOutstanding = errors.New("payment amount exceeds outstanding balance")
)

// Total is computed once at purchase creation and never again; later changes
// to shipping or insurance do not reprice an existing purchase.
func Total(winningBid, shippingCost, insuranceFee int64) int64 {
	return winningBid + shippingCost + insuranceFee
}

func Outstanding(total, paid int64) int64 {
	if paid >= total {
		return 0
	}
	return total - paid
}

// ProgressPercent returns round(100*paid/total), 0 for a zero total.
func ProgressPercent(paid, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(paid) / float64(total)))
}

func PaymentStatusFor(paid, total int64) model.PaymentStatus {
	switch {
	case paid == 0:
		return model.PaymentStatusPending
	case paid >= total:
		return model.PaymentStatusCompleted
	default:
		return model.PaymentStatusPartial
	}
}

// ValidatePaymentAmount is the only gate through which paidAmount may grow.
func ValidatePaymentAmount(amount, total, paid int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > Outstanding(total, paid) {
		return ErrPaymentExceedsOutstanding
	}
	return nil
}
