package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant *service.AssistantService
	store     *service.Store
}

func NewAssistantHandler(assistant *service.AssistantService, store *service.Store) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, store: store}
}

type GenerateRequest struct {
	// Either Text or ClauseID supplies the source text.
	Text     string `json:"text"`
	ClauseID string `json:"clause_id"`
	Action   string `json:"action"` // improve, simplify, expand, translate
}

// Generate returns revised clause text for the requested action
func (h *AssistantHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	text := req.Text
	if text == "" && req.ClauseID != "" {
		clause, ok := h.store.GetClause(req.ClauseID)
		if !ok || h.store.ClauseDeleted(req.ClauseID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
			return
		}
		text = clause.Content
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either text or clause_id is required"})
		return
	}

	revised, err := h.assistant.Generate(c.Request.Context(), text, req.Action)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, context.Canceled) {
			// Client dismissed the request mid-generation
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"action":  req.Action,
		"revised": revised,
	})
}
