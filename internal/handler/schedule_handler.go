package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/service"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/response"
)

type timetableService interface {
	View(ctx context.Context, tier models.Tier) (*service.TimetableView, error)
	UpdateSubject(ctx context.Context, tier models.Tier, req service.UpdateSubjectRequest) (*service.MutationResult, error)
	RenameTimeSlot(ctx context.Context, tier models.Tier, req service.RenameTimeSlotRequest) (*service.MutationResult, error)
	AddDay(ctx context.Context, tier models.Tier, req service.AddDayRequest) (*service.MutationResult, error)
	DeleteDay(ctx context.Context, tier models.Tier, day string) (*service.MutationResult, error)
	AddRow(ctx context.Context, tier models.Tier, day string, req service.AddRowRequest) (*service.MutationResult, error)
	DeleteRow(ctx context.Context, tier models.Tier, day, time string) (*service.MutationResult, error)
}

// ScheduleHandler manages timetable endpoints.
type ScheduleHandler struct {
	service timetableService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc timetableService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// parseTier maps the :tier path segment to a tier, accepting any casing.
func parseTier(raw string) (models.Tier, error) {
	switch strings.ToLower(raw) {
	case "mts":
		return models.TierMTs, nil
	case "ma":
		return models.TierMA, nil
	}
	return "", appErrors.Clone(appErrors.ErrUnknownTier, "unknown tier: "+raw)
}

// mutationMeta surfaces the conflict warning next to the committed data.
func mutationMeta(result *service.MutationResult) map[string]interface{} {
	if result == nil || result.Conflict == nil {
		return nil
	}
	return map[string]interface{}{"conflict": result.Conflict}
}

// Get godoc
// @Summary Get a tier's timetable
// @Tags Schedules
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Success 200 {object} response.Envelope
// @Router /schedules/{tier} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.View(c.Request.Context(), tier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// UpdateSubject godoc
// @Summary Update one cohort slot's subject
// @Tags Schedules
// @Accept json
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Param payload body service.UpdateSubjectRequest true "Subject payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/{tier}/subject [patch]
func (h *ScheduleHandler) UpdateSubject(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.UpdateSubject(c.Request.Context(), tier, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil, mutationMeta(result))
}

// RenameTimeSlot godoc
// @Summary Rename a row's time slot
// @Tags Schedules
// @Accept json
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Param payload body service.RenameTimeSlotRequest true "Time slot payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/{tier}/time-slot [patch]
func (h *ScheduleHandler) RenameTimeSlot(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.RenameTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.RenameTimeSlot(c.Request.Context(), tier, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// AddDay godoc
// @Summary Add an empty day
// @Tags Schedules
// @Accept json
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Param payload body service.AddDayRequest true "Day payload"
// @Success 201 {object} response.Envelope
// @Router /schedules/{tier}/days [post]
func (h *ScheduleHandler) AddDay(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AddDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.AddDay(c.Request.Context(), tier, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteDay godoc
// @Summary Delete a day and its rows
// @Tags Schedules
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Param day path string true "Day name"
// @Success 200 {object} response.Envelope
// @Router /schedules/{tier}/days/{day} [delete]
func (h *ScheduleHandler) DeleteDay(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.DeleteDay(c.Request.Context(), tier, c.Param("day"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// AddRow godoc
// @Summary Add an empty row to a day
// @Tags Schedules
// @Accept json
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Param day path string true "Day name"
// @Param payload body service.AddRowRequest true "Row payload"
// @Success 201 {object} response.Envelope
// @Router /schedules/{tier}/days/{day}/rows [post]
func (h *ScheduleHandler) AddRow(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AddRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.AddRow(c.Request.Context(), tier, c.Param("day"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteRow godoc
// @Summary Delete a row by time slot
// @Tags Schedules
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Param day path string true "Day name"
// @Param time query string true "Time slot label"
// @Success 200 {object} response.Envelope
// @Router /schedules/{tier}/days/{day}/rows [delete]
func (h *ScheduleHandler) DeleteRow(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.DeleteRow(c.Request.Context(), tier, c.Param("day"), c.Query("time"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
