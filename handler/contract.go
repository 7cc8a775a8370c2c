package handler

import (
	"net/http"
	"time"

	"github.com/allometrik/clm-platform-sub000/middleware"
	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContractHandler struct {
	store    *service.Store
	resolver *service.Resolver
	export   *service.ExportService
}

func NewContractHandler(store *service.Store, resolver *service.Resolver, export *service.ExportService) *ContractHandler {
	return &ContractHandler{store: store, resolver: resolver, export: export}
}

// List returns contracts, optionally filtered by status
func (h *ContractHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !model.ValidContractStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	contracts := h.store.ListContracts(status)

	result := make([]gin.H, len(contracts))
	for i, contract := range contracts {
		result[i] = gin.H{
			"id":              contract.ID,
			"title":           contract.Title,
			"client":          contract.Client,
			"status":          contract.Status,
			"template_id":     contract.TemplateID,
			"current_version": contract.CurrentVersion,
			"created_date":    contract.CreatedDate.Format(time.RFC3339),
			"last_modified":   contract.LastModified.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"contracts": result})
}

// Get returns a single contract
func (h *ContractHandler) Get(c *gin.Context) {
	contract, ok := h.store.GetContract(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

type CreateContractRequest struct {
	Title      string `json:"title"`
	Client     string `json:"client"`
	TemplateID string `json:"template_id"`
	RequestID  string `json:"request_id"`
	Content    string `json:"content"`
}

// Create adds a draft contract with its initial version. When the
// payload names an intake request, that request moves to in progress.
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.TemplateID != "" {
		if _, ok := h.store.GetTemplate(req.TemplateID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template not found"})
			return
		}
	}

	contract, err := model.NewContract(uuid.New().String(), req.Title, req.Client, req.TemplateID, req.RequestID, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.AddContract(contract)

	content := req.Content
	if content == "" && req.TemplateID != "" {
		clauses, _ := h.resolver.ResolveTemplateClauses(req.TemplateID)
		content = service.RenderDocument(contract, clauses)
	}
	h.store.AddContractVersion(&model.ContractVersion{
		ID:            uuid.New().String(),
		ContractID:    contract.ID,
		VersionNumber: 1,
		Content:       content,
		CreatedBy:     middleware.GetUsername(c),
		CreatedDate:   time.Now(),
		Changes:       "Borrador inicial",
	})

	// Informal request link: flip the matching intake ticket
	if req.RequestID != "" {
		for _, r := range h.store.ListRequests("") {
			if r.RequestID == req.RequestID && r.Status == model.RequestPending {
				h.store.UpdateRequestStatus(r.ID, model.RequestInProgress)
				break
			}
		}
	}

	c.JSON(http.StatusCreated, contract)
}

type UpdateContractStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a contract through its lifecycle
func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetContract(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	var req UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidContractStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	h.store.UpdateContractStatus(id, req.Status)
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// Versions returns the contract's version history
func (h *ContractHandler) Versions(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetContract(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"versions": h.store.ContractVersions(id)})
}

type AddContractVersionRequest struct {
	Content string `json:"content"`
	Changes string `json:"changes"`
}

// AddVersion appends a new contract version and makes it the active one
func (h *ContractHandler) AddVersion(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetContract(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	var req AddContractVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Changes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Change description is required"})
		return
	}

	existing := h.store.ContractVersions(id)
	next := 1
	for _, v := range existing {
		if v.VersionNumber >= next {
			next = v.VersionNumber + 1
		}
	}

	version := &model.ContractVersion{
		ID:            uuid.New().String(),
		ContractID:    id,
		VersionNumber: next,
		Content:       req.Content,
		CreatedBy:     middleware.GetUsername(c),
		CreatedDate:   time.Now(),
		Changes:       req.Changes,
	}
	h.store.AddContractVersion(version)

	c.JSON(http.StatusCreated, version)
}

// Clauses resolves the contract's clause set through its template
func (h *ContractHandler) Clauses(c *gin.Context) {
	id := c.Param("id")

	clauses, ok := h.resolver.ResolveContractClauses(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract_id": id, "clauses": clauses})
}

// Risk returns the contract's risk assessment
func (h *ContractHandler) Risk(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetContract(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	assessment, ok := h.store.GetRiskAssessment(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No risk assessment for this contract"})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// Export assembles the contract document and returns a download URL
func (h *ContractHandler) Export(c *gin.Context) {
	id := c.Param("id")

	contract, ok := h.store.GetContract(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	if h.export == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Export is not configured"})
		return
	}

	clauses, _ := h.resolver.ResolveContractClauses(id)
	url, err := h.export.Export(c.Request.Context(), contract, clauses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export document: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract_id": id, "url": url})
}
