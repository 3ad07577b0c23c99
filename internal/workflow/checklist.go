package workflow

import "github.com/inteller-studio/zervtek-admin/internal/model"

// Required document types are cumulative along the status progression.
var requiredByStatus = map[model.PurchaseStatus][]model.DocumentType{
	model.PurchaseStatusPaymentPending: {
		model.DocumentTypeInvoice,
	},
	model.PurchaseStatusProcessing: {
		model.DocumentTypeInvoice,
		model.DocumentTypeExportCertificate,
		model.DocumentTypeInspection,
	},
	model.PurchaseStatusDocumentsPending: {
		model.DocumentTypeInvoice,
		model.DocumentTypeExportCertificate,
		model.DocumentTypeInspection,
	},
	model.PurchaseStatusShipping: {
		model.DocumentTypeInvoice,
		model.DocumentTypeExportCertificate,
		model.DocumentTypeInspection,
		model.DocumentTypeBillOfLading,
		model.DocumentTypeInsurance,
	},
	model.PurchaseStatusDelivered: {
		model.DocumentTypeInvoice,
		model.DocumentTypeExportCertificate,
		model.DocumentTypeInspection,
		model.DocumentTypeBillOfLading,
		model.DocumentTypeInsurance,
	},
	model.PurchaseStatusCompleted: {
		model.DocumentTypeInvoice,
		model.DocumentTypeExportCertificate,
		model.DocumentTypeInspection,
		model.DocumentTypeBillOfLading,
		model.DocumentTypeInsurance,
	},
}

// checklistKeyByType maps a document type onto the named workflow checklist
// slot it satisfies. Types outside this table (e.g. "other") satisfy nothing.
var checklistKeyByType = map[model.DocumentType]string{
	model.DocumentTypeInvoice:           "invoice",
	model.DocumentTypeExportCertificate: "exportCertificate",
	model.DocumentTypeBillOfLading:      "billOfLading",
	model.DocumentTypeInsurance:         "insurance",
	model.DocumentTypeInspection:        "inspectionReport",
}

var checklistKeys = []string{
	"invoice",
	"exportCertificate",
	"billOfLading",
	"insurance",
	"inspectionReport",
}

// RequiredDocumentTypes returns the ordered required set for a status.
func RequiredDocumentTypes(status model.PurchaseStatus) []model.DocumentType {
	types := requiredByStatus[status]
	out := make([]model.DocumentType, len(types))
	copy(out, types)
	return out
}

type DocumentRequirement struct {
	Type      model.DocumentType
	Satisfied bool
}

// RequiredDocumentsStatus reports, per required type, whether at least one
// uploaded document of that type exists. Duplicates do not change anything.
func RequiredDocumentsStatus(status model.PurchaseStatus, docs []model.Document) []DocumentRequirement {
	present := make(map[model.DocumentType]bool, len(docs))
	for _, d := range docs {
		present[d.Type] = true
	}
	types := requiredByStatus[status]
	out := make([]DocumentRequirement, 0, len(types))
	for _, t := range types {
		out = append(out, DocumentRequirement{Type: t, Satisfied: present[t]})
	}
	return out
}

// ChecklistCompletion returns satisfied and required counts for a status.
func ChecklistCompletion(status model.PurchaseStatus, docs []model.Document) (satisfied, required int) {
	reqs := RequiredDocumentsStatus(status, docs)
	for _, r := range reqs {
		if r.Satisfied {
			satisfied++
		}
	}
	return satisfied, len(reqs)
}

// ChecklistKeyFor returns the workflow checklist key a document type maps to.
func ChecklistKeyFor(t model.DocumentType) (string, bool) {
	k, ok := checklistKeyByType[t]
	return k, ok
}

// ChecklistKeys returns every named checklist slot, in display order.
func ChecklistKeys() []string {
	out := make([]string, len(checklistKeys))
	copy(out, checklistKeys)
	return out
}
