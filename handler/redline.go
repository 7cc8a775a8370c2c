package handler

import (
	"net/http"

	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
)

type RedlineHandler struct {
	store *service.Store
}

func NewRedlineHandler(store *service.Store) *RedlineHandler {
	return &RedlineHandler{store: store}
}

// List returns redlines, optionally filtered by contract version
func (h *RedlineHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"redlines": h.store.ListRedlines(c.Query("version_id"))})
}

// Accept marks a pending redline as accepted
func (h *RedlineHandler) Accept(c *gin.Context) {
	h.decide(c, model.RedlineAccepted)
}

// Reject marks a pending redline as rejected
func (h *RedlineHandler) Reject(c *gin.Context) {
	h.decide(c, model.RedlineRejected)
}

func (h *RedlineHandler) decide(c *gin.Context, status string) {
	id := c.Param("id")

	if _, ok := h.store.GetRedline(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Redline not found"})
		return
	}

	if !h.store.SetRedlineStatus(id, status) {
		c.JSON(http.StatusConflict, gin.H{"error": "Redline has already been decided"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}
