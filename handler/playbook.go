package handler

import (
	"net/http"

	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
)

type PlaybookHandler struct {
	store *service.Store
}

func NewPlaybookHandler(store *service.Store) *PlaybookHandler {
	return &PlaybookHandler{store: store}
}

// List returns the negotiation playbooks
func (h *PlaybookHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"playbooks": h.store.ListPlaybooks()})
}
