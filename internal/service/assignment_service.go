package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
)

type assignmentRepository interface {
	Get(ctx context.Context) ([]models.TeachingAssignment, bool, error)
	Save(ctx context.Context, assignments []models.TeachingAssignment) error
	Remove(ctx context.Context) error
}

// CreateAssignmentRequest describes a new roster record.
type CreateAssignmentRequest struct {
	TeacherCode  string `json:"teacher_code" validate:"required"`
	TeacherName  string `json:"teacher_name" validate:"required"`
	SubjectName  string `json:"subject_name" validate:"required"`
	TeachesInMTs bool   `json:"teaches_in_mts"`
	TeachesInMA  bool   `json:"teaches_in_ma"`
}

// UpdateAssignmentRequest replaces an existing record's fields.
type UpdateAssignmentRequest struct {
	TeacherCode  string `json:"teacher_code" validate:"required"`
	TeacherName  string `json:"teacher_name" validate:"required"`
	SubjectName  string `json:"subject_name" validate:"required"`
	TeachesInMTs bool   `json:"teaches_in_mts"`
	TeachesInMA  bool   `json:"teaches_in_ma"`
}

// SubjectOption is one entry of a tier's subject catalog.
type SubjectOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AssignmentService manages the teaching-assignment roster backing the
// timetables. The roster and the timetables are independent collections,
// reconciled only when a schedule cell is edited.
type AssignmentService struct {
	assignments assignmentRepository
	seedMTs     models.Timetable
	seedMA      models.Timetable
	policy      IgnorePolicy
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAssignmentService instantiates AssignmentService. The seed timetables
// are the bootstrap source for a never-initialised roster.
func NewAssignmentService(assignments assignmentRepository, seedMTs, seedMA models.Timetable, policy IgnorePolicy, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		assignments: assignments,
		seedMTs:     seedMTs,
		seedMA:      seedMA,
		policy:      policy,
		validator:   validate,
		logger:      logger,
	}
}

// List returns the roster sorted by teacher code then subject, optionally
// filtered to records eligible in one tier.
func (s *AssignmentService) List(ctx context.Context, tier models.Tier) ([]models.TeachingAssignment, error) {
	assignments, _, err := s.assignments.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	if tier != "" {
		if !tier.Valid() {
			return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
		}
		filtered := make([]models.TeachingAssignment, 0, len(assignments))
		for _, a := range assignments {
			if a.TeachesIn(tier) {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	sort.Slice(assignments, func(i, j int) bool { return models.AssignmentLess(assignments[i], assignments[j]) })
	return assignments, nil
}

// Create appends a roster record. A duplicate teacher/subject pairing is
// tolerated as redundant rather than rejected.
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*models.TeachingAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	assignments, _, err := s.assignments.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	assignment := models.TeachingAssignment{
		ID:           uuid.NewString(),
		TeacherCode:  strings.TrimSpace(req.TeacherCode),
		TeacherName:  strings.TrimSpace(req.TeacherName),
		SubjectName:  strings.TrimSpace(req.SubjectName),
		TeachesInMTs: req.TeachesInMTs,
		TeachesInMA:  req.TeachesInMA,
	}
	assignments = append(assignments, assignment)
	if err := s.assignments.Save(ctx, assignments); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save roster")
	}

	s.logger.Info("assignment created", zap.String("teacher", assignment.TeacherCode), zap.String("subject", assignment.SubjectName))
	return &assignment, nil
}

// Update replaces the fields of an existing record.
func (s *AssignmentService) Update(ctx context.Context, id string, req UpdateAssignmentRequest) (*models.TeachingAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	assignments, _, err := s.assignments.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	for i := range assignments {
		if assignments[i].ID != id {
			continue
		}
		assignments[i].TeacherCode = strings.TrimSpace(req.TeacherCode)
		assignments[i].TeacherName = strings.TrimSpace(req.TeacherName)
		assignments[i].SubjectName = strings.TrimSpace(req.SubjectName)
		assignments[i].TeachesInMTs = req.TeachesInMTs
		assignments[i].TeachesInMA = req.TeachesInMA
		if err := s.assignments.Save(ctx, assignments); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save roster")
		}
		updated := assignments[i]
		return &updated, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
}

// Delete removes a record by ID.
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	assignments, _, err := s.assignments.Get(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	filtered := make([]models.TeachingAssignment, 0, len(assignments))
	found := false
	for _, a := range assignments {
		if a.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, a)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	if err := s.assignments.Save(ctx, filtered); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save roster")
	}
	return nil
}

// Subjects returns the tier's subject catalog: unique non-ignored subject
// names from the roster, sorted, followed by the ignored labels so schedule
// cells can still be set to breaks and ceremonies.
func (s *AssignmentService) Subjects(ctx context.Context, tier models.Tier) ([]SubjectOption, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}
	assignments, _, err := s.assignments.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	seen := make(map[string]struct{})
	var options []SubjectOption
	for _, a := range assignments {
		if !a.TeachesIn(tier) || s.policy.IgnoredSubject(a.SubjectName) {
			continue
		}
		if _, dup := seen[a.SubjectName]; dup {
			continue
		}
		seen[a.SubjectName] = struct{}{}
		options = append(options, SubjectOption{ID: a.SubjectName, Name: a.SubjectName})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })

	for _, label := range s.policy.IgnoredSubjects() {
		options = append(options, SubjectOption{ID: label, Name: label})
	}
	return options, nil
}

// Bootstrap derives the initial roster from the seed timetables when nothing
// has ever been persisted. A stored roster of any length, including an empty
// array left by a reset, disables the derivation permanently.
func (s *AssignmentService) Bootstrap(ctx context.Context) error {
	_, persisted, err := s.assignments.Get(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	if persisted {
		return nil
	}

	derived := s.deriveFromSeeds()
	if err := s.assignments.Save(ctx, derived); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save bootstrapped roster")
	}
	s.logger.Info("roster bootstrapped from seed timetables", zap.Int("assignments", len(derived)))
	return nil
}

func (s *AssignmentService) deriveFromSeeds() []models.TeachingAssignment {
	byPair := make(map[string]*models.TeachingAssignment)
	var order []string

	scan := func(timetable models.Timetable, tier models.Tier) {
		for _, rows := range timetable {
			for i := range rows {
				row := rows[i]
				for _, level := range models.ClassLevels {
					slot := row.Slot(level)
					if slot.Teacher == "" || s.policy.IgnoredTeacher(slot.Teacher) {
						continue
					}
					if slot.Subject == "" || s.policy.IgnoredSubject(slot.Subject) {
						continue
					}
					key := slot.Teacher + "|" + slot.Subject
					record, ok := byPair[key]
					if !ok {
						record = &models.TeachingAssignment{
							ID:          uuid.NewString(),
							TeacherCode: slot.Teacher,
							TeacherName: "(Nama untuk " + slot.Teacher + ")",
							SubjectName: slot.Subject,
						}
						byPair[key] = record
						order = append(order, key)
					}
					if tier == models.TierMTs {
						record.TeachesInMTs = true
					} else {
						record.TeachesInMA = true
					}
				}
			}
		}
	}

	scan(s.seedMTs, models.TierMTs)
	scan(s.seedMA, models.TierMA)

	derived := make([]models.TeachingAssignment, 0, len(order))
	for _, key := range order {
		derived = append(derived, *byPair[key])
	}
	sort.Slice(derived, func(i, j int) bool { return models.AssignmentLess(derived[i], derived[j]) })
	return derived
}

// Reset drops the roster blob. Unlike the schedule reset this re-arms the
// bootstrap derivation on the next start.
func (s *AssignmentService) Reset(ctx context.Context) error {
	if err := s.assignments.Remove(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset roster")
	}
	s.logger.Info("roster reset")
	return nil
}
