package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/allometrik/clm-platform-sub000/model"
)

// Decisions an approver can take on the current step.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionReturn  = "return"
)

var (
	ErrFlowNotInProgress = errors.New("approval flow is not in progress")
	ErrNotCurrentStep    = errors.New("decision must target the current step")
	ErrStepAlreadyDone   = errors.New("step has already been decided")
	ErrUnknownDecision   = errors.New("unknown decision")
)

// Decide applies an approver decision to the step at stepIndex and
// returns the updated flow snapshot. The input flow is not mutated.
//
// Only the step equal to CurrentStep accepts a decision, and only
// while it is pending (or returned, awaiting re-decision). Approving
// advances CurrentStep; the flow completes once every required step is
// approved. Rejecting a step rejects the whole flow immediately.
// Returning sends the flow back to targetStep: every step from the
// target up to the current one resets to pending and the acted-on step
// keeps the returned marker until it is decided again. A negative
// targetStep means the first step.
func Decide(f *model.ApprovalFlow, stepIndex int, decision, comment string, targetStep int, now time.Time) (*model.ApprovalFlow, error) {
	if f.Status != model.FlowInProgress {
		return nil, ErrFlowNotInProgress
	}
	if stepIndex != f.CurrentStep {
		return nil, ErrNotCurrentStep
	}
	if stepIndex < 0 || stepIndex >= len(f.Steps) {
		return nil, fmt.Errorf("step index %d out of range", stepIndex)
	}

	out := cloneFlow(f)
	step := &out.Steps[stepIndex]
	if step.Status != model.StepPending && step.Status != model.StepReturned {
		return nil, ErrStepAlreadyDone
	}

	switch decision {
	case DecisionApprove:
		step.Status = model.StepApproved
		step.Comment = comment
		step.DecidedDate = now
		if allRequiredApproved(out) {
			out.Status = model.FlowCompleted
		}
		if stepIndex+1 < len(out.Steps) {
			out.CurrentStep = stepIndex + 1
		}

	case DecisionReject:
		step.Status = model.StepRejected
		step.Comment = comment
		step.DecidedDate = now
		out.Status = model.FlowRejected

	case DecisionReturn:
		if targetStep < 0 {
			targetStep = 0
		}
		if targetStep >= stepIndex {
			return nil, fmt.Errorf("return target %d must precede step %d", targetStep, stepIndex)
		}
		step.Status = model.StepReturned
		step.Comment = comment
		step.DecidedDate = now
		// Earlier approvals in the returned range must be re-decided.
		for i := targetStep; i < stepIndex; i++ {
			out.Steps[i].Status = model.StepPending
			out.Steps[i].Comment = ""
			out.Steps[i].DecidedDate = time.Time{}
		}
		out.CurrentStep = targetStep

	default:
		return nil, ErrUnknownDecision
	}

	return out, nil
}

// FlowStatus derives the flow-level status from its steps: rejected if
// any required step is rejected, completed iff every required step is
// approved, otherwise in progress.
func FlowStatus(f *model.ApprovalFlow) string {
	for _, s := range f.Steps {
		if s.Required && s.Status == model.StepRejected {
			return model.FlowRejected
		}
	}
	if allRequiredApproved(f) {
		return model.FlowCompleted
	}
	return model.FlowInProgress
}

func allRequiredApproved(f *model.ApprovalFlow) bool {
	for _, s := range f.Steps {
		if s.Required && s.Status != model.StepApproved {
			return false
		}
	}
	return true
}

func cloneFlow(f *model.ApprovalFlow) *model.ApprovalFlow {
	out := *f
	out.Steps = append([]model.ApprovalStep(nil), f.Steps...)
	return &out
}
