package model

import "time"

// WorkflowStage is the fine-grained 8-step fulfillment pipeline layered on top
// of the coarse PurchaseStatus. The current stage is never stored; it is always
// derived from the completion records (see internal/workflow).
type WorkflowStage int

const (
	StagePurchase  WorkflowStage = 1
	StageTransport WorkflowStage = 2
	StagePayment   WorkflowStage = 3
	StageRepair    WorkflowStage = 4
	StageDocs      WorkflowStage = 5
	StageBooking   WorkflowStage = 6
	StageShipped   WorkflowStage = 7
	StageDHL       WorkflowStage = 8
)

const StageCount = 8

var stageLabels = map[WorkflowStage]string{
	StagePurchase:  "Purchase",
	StageTransport: "Transport",
	StagePayment:   "Payment",
	StageRepair:    "Repair",
	StageDocs:      "Docs",
	StageBooking:   "Booking",
	StageShipped:   "Shipped",
	StageDHL:       "DHL",
}

func (s WorkflowStage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return "Unknown"
}

func (s WorkflowStage) Valid() bool {
	return s >= StagePurchase && s <= StageDHL
}

type PurchaseWorkflow struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	PurchaseID uint64 `gorm:"column:purchase_id;uniqueIndex;not null"`
	// Finalized is terminal and independent of stage progress.
	Finalized bool `gorm:"column:finalized;not null"`

	Stages    []WorkflowStageRecord    `gorm:"foreignKey:WorkflowID"`
	Checklist []WorkflowChecklistEntry `gorm:"foreignKey:WorkflowID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PurchaseWorkflow) TableName() string {
	return "purchase_workflows"
}

type WorkflowStageRecord struct {
	ID          uint64        `gorm:"primaryKey;autoIncrement"`
	WorkflowID  uint64        `gorm:"column:workflow_id;index;not null"`
	Stage       WorkflowStage `gorm:"column:stage;not null"`
	Completed   bool          `gorm:"column:completed;not null"`
	CompletedAt *time.Time    `gorm:"column:completed_at"`
	CompletedBy string        `gorm:"column:completed_by;size:128"`
}

func (WorkflowStageRecord) TableName() string {
	return "workflow_stage_records"
}

// WorkflowChecklistEntry is a named document slot in the workflow. Keys are
// distinct from Document types; the fixed mapping lives in internal/workflow.
type WorkflowChecklistEntry struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	WorkflowID  uint64     `gorm:"column:workflow_id;index;not null"`
	Key         string     `gorm:"column:entry_key;size:32;not null"`
	Received    bool       `gorm:"column:received;not null"`
	ReceivedAt  *time.Time `gorm:"column:received_at"`
	ReceivedBy  string     `gorm:"column:received_by;size:128"`
	DocumentRef string     `gorm:"column:document_ref;size:36"`
}

func (WorkflowChecklistEntry) TableName() string {
	return "workflow_checklist_entries"
}
