package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/service"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/response"
)

type assignmentService interface {
	List(ctx context.Context, tier models.Tier) ([]models.TeachingAssignment, error)
	Create(ctx context.Context, req service.CreateAssignmentRequest) (*models.TeachingAssignment, error)
	Update(ctx context.Context, id string, req service.UpdateAssignmentRequest) (*models.TeachingAssignment, error)
	Delete(ctx context.Context, id string) error
	Subjects(ctx context.Context, tier models.Tier) ([]service.SubjectOption, error)
}

// AssignmentHandler manages roster endpoints.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler constructs handler.
func NewAssignmentHandler(svc assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// List godoc
// @Summary List teaching assignments
// @Tags Assignments
// @Produce json
// @Param tier query string false "Filter by tier (mts or ma)"
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	var tier models.Tier
	if raw := c.Query("tier"); raw != "" {
		parsed, err := parseTier(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		tier = parsed
	}
	assignments, err := h.service.List(c.Request.Context(), tier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

// Create godoc
// @Summary Create a teaching assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body service.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assignment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Update godoc
// @Summary Update a teaching assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param payload body service.UpdateAssignmentRequest true "Assignment payload"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assignment, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}

// Delete godoc
// @Summary Delete a teaching assignment
// @Tags Assignments
// @Param id path string true "Assignment ID"
// @Success 204
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Subjects godoc
// @Summary List a tier's subject catalog
// @Tags Assignments
// @Produce json
// @Param tier path string true "Tier (mts or ma)"
// @Success 200 {object} response.Envelope
// @Router /subjects/{tier} [get]
func (h *AssignmentHandler) Subjects(c *gin.Context) {
	tier, err := parseTier(c.Param("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	subjects, err := h.service.Subjects(c.Request.Context(), tier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects, nil)
}
