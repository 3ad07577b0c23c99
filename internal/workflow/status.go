// Package workflow holds the pure purchase fulfillment rules: the ordered
// status progression, the 8-stage pipeline, the document checklist table and
// the financial aggregation. Nothing here touches I/O; the services in
// internal/service apply these rules and persist the outcome.
package workflow

import "github.com/inteller-studio/zervtek-admin/internal/model"

var statusOrder = []model.PurchaseStatus{
	model.PurchaseStatusPaymentPending,
	model.PurchaseStatusProcessing,
	model.PurchaseStatusDocumentsPending,
	model.PurchaseStatusShipping,
	model.PurchaseStatusDelivered,
	model.PurchaseStatusCompleted,
}

var statusLabels = map[model.PurchaseStatus]string{
	model.PurchaseStatusPaymentPending:   "Payment Pending",
	model.PurchaseStatusProcessing:       "Processing",
	model.PurchaseStatusDocumentsPending: "Documents Pending",
	model.PurchaseStatusShipping:         "Shipping",
	model.PurchaseStatusDelivered:        "Delivered",
	model.PurchaseStatusCompleted:        "Completed",
}

// StatusIndex returns the zero-based position of s in the progression, or -1.
func StatusIndex(s model.PurchaseStatus) int {
	for i, v := range statusOrder {
		if v == s {
			return i
		}
	}
	return -1
}

func ValidStatus(s model.PurchaseStatus) bool {
	return StatusIndex(s) >= 0
}

// IsForward reports whether moving from one status to another goes strictly
// forward in the fixed order. Backward moves are invariant violations.
func IsForward(from, to model.PurchaseStatus) bool {
	fi, ti := StatusIndex(from), StatusIndex(to)
	return fi >= 0 && ti >= 0 && ti > fi
}

func IsTerminal(s model.PurchaseStatus) bool {
	return s == model.PurchaseStatusCompleted
}

func StatusLabel(s model.PurchaseStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
