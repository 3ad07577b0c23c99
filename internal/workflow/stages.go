package workflow

import (
	"errors"
	"time"

	"github.com/inteller-studio/zervtek-admin/internal/model"
)

var (
	ErrStageNotAccessible = errors.New("stage is not accessible until all prior stages are complete")
	ErrUnknownStage       = errors.New("unknown workflow stage")
	ErrWorkflowFinalized  = errors.New("workflow is finalized")
)

func stageRecord(wf *model.PurchaseWorkflow, stage model.WorkflowStage) *model.WorkflowStageRecord {
	for i := range wf.Stages {
		if wf.Stages[i].Stage == stage {
			return &wf.Stages[i]
		}
	}
	return nil
}

// StageComplete reports whether a stage has a completion record.
func StageComplete(wf *model.PurchaseWorkflow, stage model.WorkflowStage) bool {
	rec := stageRecord(wf, stage)
	return rec != nil && rec.Completed
}

// CurrentStage is derived, never stored: it is the first incomplete stage,
// or the last stage when every stage is complete.
func CurrentStage(wf *model.PurchaseWorkflow) model.WorkflowStage {
	for s := model.StagePurchase; s <= model.StageDHL; s++ {
		if !StageComplete(wf, s) {
			return s
		}
	}
	return model.StageDHL
}

// CanAccessStage is true iff all strictly-prior stages are complete.
// Stage 1 is always accessible.
func CanAccessStage(wf *model.PurchaseWorkflow, stage model.WorkflowStage) bool {
	if !stage.Valid() {
		return false
	}
	for s := model.StagePurchase; s < stage; s++ {
		if !StageComplete(wf, s) {
			return false
		}
	}
	return true
}

// CompleteStage marks a stage complete in place. Completing an already
// complete stage is a no-op; completing an inaccessible stage is an error.
// The caller persists the mutated record and fires the stage notification.
func CompleteStage(wf *model.PurchaseWorkflow, stage model.WorkflowStage, actor string, now time.Time) (*model.WorkflowStageRecord, error) {
	if !stage.Valid() {
		return nil, ErrUnknownStage
	}
	if wf.Finalized {
		return nil, ErrWorkflowFinalized
	}
	if !CanAccessStage(wf, stage) {
		return nil, ErrStageNotAccessible
	}
	rec := stageRecord(wf, stage)
	if rec == nil {
		return nil, ErrUnknownStage
	}
	if rec.Completed {
		return rec, nil
	}
	rec.Completed = true
	rec.CompletedAt = &now
	rec.CompletedBy = actor
	return rec, nil
}

// CoarseStatus projects the stage-completion vector onto the 6-value status
// enum so the two representations can never drift: the workflow records are
// the single source of truth and this function is the only bridge.
func CoarseStatus(wf *model.PurchaseWorkflow) model.PurchaseStatus {
	if wf.Finalized {
		return model.PurchaseStatusCompleted
	}
	if StageComplete(wf, model.StageDHL) {
		return model.PurchaseStatusDelivered
	}
	switch CurrentStage(wf) {
	case model.StagePurchase, model.StageTransport, model.StagePayment:
		return model.PurchaseStatusPaymentPending
	case model.StageRepair:
		return model.PurchaseStatusProcessing
	case model.StageDocs:
		return model.PurchaseStatusDocumentsPending
	case model.StageBooking, model.StageShipped:
		return model.PurchaseStatusShipping
	default:
		return model.PurchaseStatusDelivered
	}
}

// NewWorkflow builds an empty workflow with one record per stage and one
// checklist entry per named slot.
func NewWorkflow(purchaseID uint64) *model.PurchaseWorkflow {
	wf := &model.PurchaseWorkflow{PurchaseID: purchaseID}
	for s := model.StagePurchase; s <= model.StageDHL; s++ {
		wf.Stages = append(wf.Stages, model.WorkflowStageRecord{Stage: s})
	}
	for _, key := range ChecklistKeys() {
		wf.Checklist = append(wf.Checklist, model.WorkflowChecklistEntry{Key: key})
	}
	return wf
}

// MarkChecklistReceived flags the named slot as received. Unknown keys and
// already-received slots are no-ops; the first document wins.
func MarkChecklistReceived(wf *model.PurchaseWorkflow, key, actor, documentRef string, now time.Time) *model.WorkflowChecklistEntry {
	for i := range wf.Checklist {
		e := &wf.Checklist[i]
		if e.Key != key {
			continue
		}
		if e.Received {
			return e
		}
		e.Received = true
		e.ReceivedAt = &now
		e.ReceivedBy = actor
		e.DocumentRef = documentRef
		return e
	}
	return nil
}
