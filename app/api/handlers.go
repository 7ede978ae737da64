package api

import (
	"cmp"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tlforge/content-forge/app/database"
	"github.com/tlforge/content-forge/app/forge"
	"github.com/tlforge/content-forge/app/relay"
)

const defaultSourceListLimit = 25
const maxSourceListLimit = 100

func NewHandler(sourceRepo database.SourceRepository, derivativeRepo database.DerivativeRepository,
	writer *forge.Writer, relayClient RelayClientInterface) *Handler {
	return &Handler{
		sourceRepo:     sourceRepo,
		derivativeRepo: derivativeRepo,
		writer:         writer,
		relayClient:    relayClient,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(); err == nil {
		health["sources"] = sourceCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	sourceCount, err := h.sourceRepo.GetSourceCount()
	if err != nil {
		slog.Error("Database error", "operation", "source_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	statusCounts, err := h.derivativeRepo.GetStatusCounts()
	if err != nil {
		slog.Error("Database error", "operation", "status_counts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sources":               sourceCount,
		"derivatives_by_status": statusCounts,
	})
}

// CreateSource persists a source and its five platform derivatives.
func (h *Handler) CreateSource(c *gin.Context) {
	var req CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sourceID, err := h.writer.CreateSource(forge.Input{
		Title:        req.Title,
		Slug:         req.Slug,
		Summary:      req.Summary,
		CanonicalURL: cmp.Or(req.CanonicalURL, req.CanonicalURLAlt),
		Variant:      req.Variant,
	})
	if err != nil {
		var validationErr *forge.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		slog.Error("Source creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "source_id": sourceID})
}

func (h *Handler) ListSources(c *gin.Context) {
	limit := defaultSourceListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = min(parsed, maxSourceListLimit)
	}

	sources, err := h.sourceRepo.ListSources(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	list := make([]gin.H, 0, len(sources))
	for _, s := range sources {
		list = append(list, gin.H{
			"id":            s.ID,
			"title":         s.Title,
			"slug":          s.Slug,
			"summary":       s.Summary,
			"canonical_url": s.CanonicalURL,
			"created_at":    s.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"sources": list, "total": len(list)})
}

// GetSourceDerivatives lists the non-archived derivatives of one source,
// ordered by platform, kind, then descending creation time. An orphaned
// source (no derivative rows) yields an empty list, not an error.
func (h *Handler) GetSourceDerivatives(c *gin.Context) {
	id := c.Param("id")

	source, err := h.sourceRepo.GetSource(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_source", "source_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if source == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		return
	}

	derivatives, err := h.derivativeRepo.ListBySource(id)
	if err != nil {
		slog.Error("Database error", "operation", "list_derivatives", "source_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	list := make([]gin.H, 0, len(derivatives))
	for _, d := range derivatives {
		list = append(list, gin.H{
			"id":         d.ID,
			"platform":   d.Platform,
			"kind":       d.Kind,
			"status":     d.Status,
			"payload":    json.RawMessage(d.Payload),
			"created_at": d.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"source_id":   source.ID,
		"derivatives": list,
		"total":       len(list),
	})
}

// UpdateDerivativeStatus flips one derivative to approved or archived; no
// other transitions exist.
func (h *Handler) UpdateDerivativeStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if req.Status != database.StatusApproved && req.Status != database.StatusArchived {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'approved' or 'archived'"})
		return
	}

	updated, err := h.derivativeRepo.UpdateStatus(id, req.Status)
	if err != nil {
		slog.Error("Database error", "operation", "update_status", "derivative_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Derivative not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id, "status": req.Status})
}

// Relay forwards the raw request body to the automation webhook and returns
// its response together with the best-effort source field extraction.
func (h *Handler) Relay(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	resp, err := h.relayClient.Forward(c.Request.Context(), body)
	if err != nil {
		h.relayError(c, err)
		return
	}

	result := gin.H{"ok": true, "status": resp.StatusCode}
	if resp.IsJSON {
		result["data"] = resp.Data
		result["source"] = relay.Extract(resp.Data)
	} else {
		result["data"] = resp.Text
	}

	c.JSON(http.StatusOK, result)
}

// Forge runs the full pipeline in one request: relay the prompt, extract the
// draft fields, persist the source with its derivatives.
func (h *Handler) Forge(c *gin.Context) {
	var req ForgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	relayBody, err := json.Marshal(gin.H{"prompt": req.Prompt})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode relay request"})
		return
	}

	resp, err := h.relayClient.Forward(c.Request.Context(), relayBody)
	if err != nil {
		h.relayError(c, err)
		return
	}
	if !resp.IsJSON {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Automation endpoint returned a non-JSON draft"})
		return
	}

	fields := relay.Extract(resp.Data)
	if fields.Title == "" {
		fields.Title = "Untitled"
	}

	sourceID, err := h.writer.CreateSource(forge.Input{
		Title:        fields.Title,
		Slug:         fields.Slug,
		Summary:      fields.Summary,
		CanonicalURL: fields.CanonicalURL,
		Variant:      req.Variant,
	})
	if err != nil {
		var validationErr *forge.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		slog.Error("Forge pipeline failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "source_id": sourceID, "source": fields})
}

func (h *Handler) relayError(c *gin.Context, err error) {
	slog.Error("Relay failed", "error", err)

	if errors.Is(err, relay.ErrNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
