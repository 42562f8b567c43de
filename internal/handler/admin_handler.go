package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/service"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/response"
)

// AdminHandler exposes maintenance operations.
type AdminHandler struct {
	timetables  *service.TimetableService
	assignments *service.AssignmentService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(timetables *service.TimetableService, assignments *service.AssignmentService) *AdminHandler {
	return &AdminHandler{timetables: timetables, assignments: assignments}
}

// Reset godoc
// @Summary Wipe all persisted schedules and the teacher roster
// @Description Both timetables fall back to the built-in defaults and the
// @Description roster is re-derived from them on the next request.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.timetables.Reset(ctx); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.assignments.Reset(ctx); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "reset"}, nil)
}
