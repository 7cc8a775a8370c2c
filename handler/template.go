package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/allometrik/clm-platform-sub000/middleware"
	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	store    *service.Store
	resolver *service.Resolver
}

func NewTemplateHandler(store *service.Store, resolver *service.Resolver) *TemplateHandler {
	return &TemplateHandler{store: store, resolver: resolver}
}

// List returns templates, optionally filtered by category or public flag
func (h *TemplateHandler) List(c *gin.Context) {
	publicOnly := c.Query("public") == "true"
	templates := h.store.ListTemplates(c.Query("category"), publicOnly)

	result := make([]gin.H, len(templates))
	for i, t := range templates {
		result[i] = gin.H{
			"id":            t.ID,
			"name":          t.Name,
			"description":   t.Description,
			"category":      t.Category,
			"is_public":     t.IsPublic,
			"usage_count":   t.UsageCount,
			"clause_count":  len(t.ClauseIDs),
			"last_modified": t.LastModified.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"templates": result})
}

// Get returns a single template
func (h *TemplateHandler) Get(c *gin.Context) {
	t, ok := h.store.GetTemplate(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// Clauses returns the template's clause records resolved in section
// order. Dangling references are omitted.
func (h *TemplateHandler) Clauses(c *gin.Context) {
	id := c.Param("id")

	clauses, ok := h.resolver.ResolveTemplateClauses(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template_id": id, "clauses": clauses})
}

type CreateTemplateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ClauseIDs   []string `json:"clauses"`
	IsPublic    bool     `json:"is_public"`
}

// Create adds a new template
func (h *TemplateHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	t, err := model.NewTemplate(uuid.New().String(), req.Name, req.Description, req.Category, req.ClauseIDs, req.IsPublic, middleware.GetUsername(c), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.AddTemplate(t)
	c.JSON(http.StatusCreated, t)
}

type UpdateTemplateRequest struct {
	ClauseIDs []string `json:"clauses"`
	Changes   string   `json:"changes"`
	Mode      string   `json:"mode"` // new_version or overwrite
}

// Update changes a template's clause composition through the ledger
func (h *TemplateHandler) Update(c *gin.Context) {
	id := c.Param("id")

	t, ok := h.store.GetTemplate(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if len(req.ClauseIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template needs at least one clause"})
		return
	}

	author := middleware.GetUsername(c)

	var updated *model.Template
	switch req.Mode {
	case "overwrite":
		updated = service.OverwriteLatestTemplateVersion(t, req.ClauseIDs, author, req.Changes, time.Now())
	case "new_version", "":
		var err error
		updated, err = service.RecordNewTemplateVersion(t, req.ClauseIDs, author, req.Changes, time.Now())
		if err != nil {
			if errors.Is(err, service.ErrChangeDescriptionRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Change description is required when saving as new version"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mode"})
		return
	}

	h.store.UpdateTemplate(updated)
	c.JSON(http.StatusOK, updated)
}

// Delete removes a template
func (h *TemplateHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetTemplate(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	h.store.DeleteTemplate(id)
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}
