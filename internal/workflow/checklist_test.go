package workflow

import (
	"testing"

	"github.com/inteller-studio/zervtek-admin/internal/model"
)

func TestRequiredDocumentTypes(t *testing.T) {
	tests := []struct {
		status model.PurchaseStatus
		want   []model.DocumentType
	}{
		{model.PurchaseStatusPaymentPending, []model.DocumentType{
			model.DocumentTypeInvoice,
		}},
		{model.PurchaseStatusProcessing, []model.DocumentType{
			model.DocumentTypeInvoice,
			model.DocumentTypeExportCertificate,
			model.DocumentTypeInspection,
		}},
		{model.PurchaseStatusDocumentsPending, []model.DocumentType{
			model.DocumentTypeInvoice,
			model.DocumentTypeExportCertificate,
			model.DocumentTypeInspection,
		}},
		{model.PurchaseStatusShipping, []model.DocumentType{
			model.DocumentTypeInvoice,
			model.DocumentTypeExportCertificate,
			model.DocumentTypeInspection,
			model.DocumentTypeBillOfLading,
			model.DocumentTypeInsurance,
		}},
		{model.PurchaseStatusCompleted, []model.DocumentType{
			model.DocumentTypeInvoice,
			model.DocumentTypeExportCertificate,
			model.DocumentTypeInspection,
			model.DocumentTypeBillOfLading,
			model.DocumentTypeInsurance,
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := RequiredDocumentTypes(tt.status)
			if len(got) != len(tt.want) {
				t.Fatalf("len=%d want=%d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got[%d]=%s want=%s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRequiredDocumentsStatus(t *testing.T) {
	docs := []model.Document{
		{Type: model.DocumentTypeInvoice},
		{Type: model.DocumentTypeInvoice}, // duplicates count once
		{Type: model.DocumentTypeInsurance},
		{Type: model.DocumentTypeOther}, // not required, no effect
	}
	got := RequiredDocumentsStatus(model.PurchaseStatusShipping, docs)
	want := map[model.DocumentType]bool{
		model.DocumentTypeInvoice:           true,
		model.DocumentTypeExportCertificate: false,
		model.DocumentTypeInspection:        false,
		model.DocumentTypeBillOfLading:      false,
		model.DocumentTypeInsurance:         true,
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d want=%d", len(got), len(want))
	}
	for _, r := range got {
		if r.Satisfied != want[r.Type] {
			t.Fatalf("type=%s satisfied=%v want=%v", r.Type, r.Satisfied, want[r.Type])
		}
	}

	sat, req := ChecklistCompletion(model.PurchaseStatusShipping, docs)
	if sat != 2 || req != 5 {
		t.Fatalf("completion=%d/%d want=2/5", sat, req)
	}
}

func TestChecklistKeyFor(t *testing.T) {
	tests := []struct {
		docType model.DocumentType
		want    string
		ok      bool
	}{
		{model.DocumentTypeInvoice, "invoice", true},
		{model.DocumentTypeExportCertificate, "exportCertificate", true},
		{model.DocumentTypeBillOfLading, "billOfLading", true},
		{model.DocumentTypeInsurance, "insurance", true},
		{model.DocumentTypeInspection, "inspectionReport", true},
		{model.DocumentTypeOther, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			got, ok := ChecklistKeyFor(tt.docType)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("got=(%q,%v) want=(%q,%v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
