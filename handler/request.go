package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/allometrik/clm-platform-sub000/middleware"
	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	store *service.Store
}

func NewRequestHandler(store *service.Store) *RequestHandler {
	return &RequestHandler{store: store}
}

// List returns intake requests, optionally filtered by status
func (h *RequestHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": h.store.ListRequests(c.Query("status"))})
}

// Get returns a single intake request
func (h *RequestHandler) Get(c *gin.Context) {
	r, ok := h.store.GetRequest(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	c.JSON(http.StatusOK, r)
}

type CreateRequestRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// Create files a new intake request. The requester is the logged-in
// user; the ticket number is derived from the current year and count.
func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	now := time.Now()
	ticket := fmt.Sprintf("REQ-%d-%03d", now.Year(), len(h.store.ListRequests(""))+1)

	r, err := model.NewContractRequest(uuid.New().String(), ticket, req.Title, middleware.GetUsername(c), req.Department, req.Type, req.Priority, req.Description, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.AddRequest(r)
	c.JSON(http.StatusCreated, r)
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an intake request through its workflow
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetRequest(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	switch req.Status {
	case model.RequestPending, model.RequestInProgress, model.RequestCompleted, model.RequestRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	h.store.UpdateRequestStatus(id, req.Status)
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
