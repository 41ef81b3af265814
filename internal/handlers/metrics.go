package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/store"
)

// MetricsHandler exposes the KV counter snapshot for operators.
type MetricsHandler struct {
	log     *logger.Logger
	metrics store.Metrics
}

func NewMetricsHandler(log *logger.Logger, metrics store.Metrics) *MetricsHandler {
	return &MetricsHandler{log: log.With("handler", "Metrics"), metrics: metrics}
}

func (h *MetricsHandler) Snapshot(c *gin.Context) {
	snap, err := h.metrics.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error("metrics snapshot failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "snapshot failed"})
		return
	}
	c.JSON(http.StatusOK, snap)
}
