package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfcheck/backend/internal/domain"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	records domain.RecordRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(records domain.RecordRepository) *Handler {
	return &Handler{records: records}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shelfcheck-backend",
		"version": "1.0.0",
	})
}

// ListRecords returns all persisted verification records in append order.
func (h *Handler) ListRecords(c *gin.Context) {
	if h.records == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record store not configured"})
		return
	}

	records, err := h.records.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []domain.VerificationRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "total": len(records)})
}

// GetRecord returns a single verification record by its capture identifier.
func (h *Handler) GetRecord(c *gin.Context) {
	if h.records == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record store not configured"})
		return
	}

	record, err := h.records.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetSummary returns the batch roll-up: record counts and a verified flag
// that is true only when every record is Approved.
func (h *Handler) GetSummary(c *gin.Context) {
	if h.records == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record store not configured"})
		return
	}

	records, err := h.records.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var summary domain.BatchSummary
	for _, record := range records {
		summary.Total++
		switch {
		case record.Failed():
			summary.Failed++
		case record.Verdict == domain.VerdictApproved:
			summary.Approved++
		default:
			summary.Disapproved++
		}
	}

	verified := summary.Total > 0 && summary.Approved == summary.Total

	c.JSON(http.StatusOK, gin.H{
		"total":       summary.Total,
		"approved":    summary.Approved,
		"disapproved": summary.Disapproved,
		"failed":      summary.Failed,
		"verified":    verified,
	})
}
