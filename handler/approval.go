package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/allometrik/clm-platform-sub000/pkg/logger"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	store *service.Store
}

func NewApprovalHandler(store *service.Store) *ApprovalHandler {
	return &ApprovalHandler{store: store}
}

// List returns all approval flows
func (h *ApprovalHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"approvals": h.store.ListFlows()})
}

// Get returns a single approval flow
func (h *ApprovalHandler) Get(c *gin.Context) {
	flow, ok := h.store.GetFlow(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approval flow not found"})
		return
	}

	c.JSON(http.StatusOK, flow)
}

// ForContract returns the flow gating a contract
func (h *ApprovalHandler) ForContract(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetContract(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	flow, ok := h.store.FlowForContract(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No approval flow for this contract"})
		return
	}

	c.JSON(http.StatusOK, flow)
}

type DecideRequest struct {
	Decision string `json:"decision"` // approve, reject, return
	Comment  string `json:"comment"`
	// TargetStep names the step a "return" decision goes back to.
	// Omitted or negative means the first step.
	TargetStep *int `json:"target_step"`
}

// Decide applies an approver decision to the current step of a flow
func (h *ApprovalHandler) Decide(c *gin.Context) {
	flow, ok := h.store.GetFlow(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approval flow not found"})
		return
	}

	stepIndex, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step index"})
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	target := -1
	if req.TargetStep != nil {
		target = *req.TargetStep
	}

	updated, err := service.Decide(flow, stepIndex, req.Decision, req.Comment, target, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFlowNotInProgress),
			errors.Is(err, service.ErrNotCurrentStep),
			errors.Is(err, service.ErrStepAlreadyDone):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.store.UpdateFlow(updated)

	// A completed flow moves the gated contract forward
	if updated.Status == model.FlowCompleted {
		h.store.UpdateContractStatus(updated.ContractID, model.StatusApproved)
		logger.Info(c.Request.Context(), "approval flow completed",
			"flow_id", updated.ID,
			"contract_id", updated.ContractID,
		)
	}

	c.JSON(http.StatusOK, updated)
}
