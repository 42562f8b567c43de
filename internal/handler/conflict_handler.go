package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/service"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/response"
)

// ConflictHandler serves the cross-tier conflict report.
type ConflictHandler struct {
	service *service.ConflictService
	metrics *service.MetricsService
}

// NewConflictHandler constructs handler. metrics may be nil.
func NewConflictHandler(svc *service.ConflictService, metrics *service.MetricsService) *ConflictHandler {
	return &ConflictHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List teacher double-bookings across both tiers
// @Tags Conflicts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /conflicts [get]
func (h *ConflictHandler) List(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.SetConflictCount(len(report.Records))
	}

	keys := make([]string, 0, len(report.Keys))
	for key := range report.Keys {
		keys = append(keys, key)
	}
	response.JSON(c, http.StatusOK, report.Records, nil, map[string]interface{}{"keys": keys})
}
