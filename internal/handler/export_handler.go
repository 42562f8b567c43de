package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/service"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/response"
)

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Timetable godoc
// @Summary Download a tier's timetable as CSV or PDF
// @Tags Exports
// @Produce octet-stream
// @Param tier path string true "Tier (mts or ma)"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /schedules/{tier}/export [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.Timetable(c.Request.Context(), tier, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
