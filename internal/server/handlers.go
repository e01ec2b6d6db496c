package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorekeep/lattice/internal/core"
	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/gateway"
)

func (s *Server) BootstrapSchema(c *gin.Context) {
	result, err := s.Bootstrap.Ensure(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"status": result.Status}
	if result.Schema != nil {
		resp["version"] = result.Schema.Version
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreateEntry(c *gin.Context) {
	var attrs model.EntryAttrs
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry, err := s.Entries.Create(c.Request.Context(), c.Param("workspace_id"), attrs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) GetEntry(c *gin.Context) {
	result, err := s.Entries.Get(c.Request.Context(), c.Param("workspace_id"), c.Param("entry_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type linkRequest struct {
	ToID string `json:"to_id"`
	Type string `json:"type"`
}

func (s *Server) LinkEntry(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err := s.Entries.Link(c.Request.Context(), c.Param("workspace_id"), c.Param("entry_id"), req.ToID, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) TraverseGraph(c *gin.Context) {
	var params core.TraverseParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entries, err := s.Traversal.Traverse(c.Request.Context(), c.Param("workspace_id"), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

type draftRequest struct {
	Text string `json:"text"`
}

func (s *Server) DraftEntry(c *gin.Context) {
	if s.Drafter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "drafting is not configured"})
		return
	}

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	attrs, err := s.Drafter.Draft(c.Request.Context(), req.Text)
	if err != nil {
		log.Printf("Failed to draft entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to draft entry"})
		return
	}

	c.JSON(http.StatusOK, attrs)
}

// respondError maps core errors onto HTTP statuses: validation tags to 422,
// missing records to 404, everything else to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case core.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, gateway.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	default:
		log.Printf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
