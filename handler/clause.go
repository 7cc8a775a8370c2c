package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/allometrik/clm-platform-sub000/middleware"
	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClauseHandler struct {
	store    *service.Store
	resolver *service.Resolver
}

func NewClauseHandler(store *service.Store, resolver *service.Resolver) *ClauseHandler {
	return &ClauseHandler{store: store, resolver: resolver}
}

// List returns clauses, optionally filtered by category
func (h *ClauseHandler) List(c *gin.Context) {
	clauses := h.store.ListClauses(c.Query("category"))

	// Version history is omitted from the list view
	result := make([]gin.H, len(clauses))
	for i, clause := range clauses {
		result[i] = gin.H{
			"id":            clause.ID,
			"title":         clause.Title,
			"category":      clause.Category,
			"content":       clause.Content,
			"last_modified": clause.LastModified.Format(time.RFC3339),
			"version_count": len(clause.Versions),
		}
	}

	c.JSON(http.StatusOK, gin.H{"clauses": result})
}

// Get returns a single clause with its full version history
func (h *ClauseHandler) Get(c *gin.Context) {
	id := c.Param("id")

	clause, ok := h.store.GetClause(id)
	if !ok || h.store.ClauseDeleted(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
		return
	}

	c.JSON(http.StatusOK, clause)
}

type CreateClauseRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Create adds a new clause. All fields are required; invalid input
// leaves the store untouched.
func (h *ClauseHandler) Create(c *gin.Context) {
	var req CreateClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	clause, err := model.NewClause(uuid.New().String(), req.Title, req.Category, req.Content, middleware.GetUsername(c), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.AddClause(clause)
	c.JSON(http.StatusCreated, clause)
}

type UpdateClauseRequest struct {
	Content string `json:"content"`
	Changes string `json:"changes"`
	// Mode selects how the edit lands in the version history:
	// "new_version" appends, "overwrite" replaces the latest entry.
	Mode string `json:"mode"`
}

// Update edits clause content through the version ledger
func (h *ClauseHandler) Update(c *gin.Context) {
	id := c.Param("id")

	clause, ok := h.store.GetClause(id)
	if !ok || h.store.ClauseDeleted(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
		return
	}

	var req UpdateClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	author := middleware.GetUsername(c)

	var updated *model.Clause
	switch req.Mode {
	case "overwrite":
		updated = service.OverwriteLatestClauseVersion(clause, req.Content, author, req.Changes, time.Now())
	case "new_version", "":
		var err error
		updated, err = service.RecordNewClauseVersion(clause, req.Content, author, req.Changes, time.Now())
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

	h.store.UpdateClause(updated)
	c.JSON(http.StatusOK, updated)
}

// Versions returns the ordered version history of a clause
func (h *ClauseHandler) Versions(c *gin.Context) {
	id := c.Param("id")

	clause, ok := h.store.GetClause(id)
	if !ok || h.store.ClauseDeleted(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"versions": clause.Versions})
}

// CompareVersions pairs two versions for side-by-side display
func (h *ClauseHandler) CompareVersions(c *gin.Context) {
	id := c.Param("id")

	clause, ok := h.store.GetClause(id)
	if !ok || h.store.ClauseDeleted(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
		return
	}

	a, errA := strconv.Atoi(c.Query("a"))
	b, errB := strconv.Atoi(c.Query("b"))
	if errA != nil || errB != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameters a and b must be version numbers"})
		return
	}

	pair, err := service.CompareClauseVersions(clause, a, b)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Usage returns the templates referencing a clause, for usage counts
// and deletion-impact warnings
func (h *ClauseHandler) Usage(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetClause(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
		return
	}

	templates := h.resolver.TemplatesUsingClause(id)
	refs := make([]gin.H, len(templates))
	for i, t := range templates {
		refs[i] = gin.H{"id": t.ID, "name": t.Name}
	}

	c.JSON(http.StatusOK, gin.H{
		"clause_id": id,
		"count":     len(templates),
		"templates": refs,
	})
}

// Delete soft-deletes a clause. Templates keep the clause id in their
// lists; the clause just stops resolving.
func (h *ClauseHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetClause(id); !ok || h.store.ClauseDeleted(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clause not found"})
		return
	}

	usage := h.resolver.ClauseUsageCount(id)
	h.store.DeleteClause(id)

	c.JSON(http.StatusOK, gin.H{
		"message":            "Clause deleted",
		"affected_templates": usage,
	})
}
