package model

import "time"

// ApprovalStep is a single sign-off step within a flow
type ApprovalStep struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Approver    string    `json:"approver"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Required    bool      `json:"required"`
	Comment     string    `json:"comment,omitempty"`
	DecidedDate time.Time `json:"decided_date,omitempty"`
}

// Step status constants
const (
	StepPending  = "pending"
	StepApproved = "approved"
	StepRejected = "rejected"
	StepReturned = "returned"
)

// ApprovalFlow is an ordered sequence of sign-off steps gating a contract.
// CurrentStep always indexes an existing step.
type ApprovalFlow struct {
	ID          string         `json:"id"`
	ContractID  string         `json:"contract_id"`
	CurrentStep int            `json:"current_step"`
	Steps       []ApprovalStep `json:"steps"`
	Status      string         `json:"status"`
	StartedDate time.Time      `json:"started_date"`
}

// Flow status constants
const (
	FlowInProgress = "in_progress"
	FlowCompleted  = "completed"
	FlowRejected   = "rejected"
)
