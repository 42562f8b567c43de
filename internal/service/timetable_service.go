package service

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
)

type timetableRepository interface {
	Get(ctx context.Context, tier models.Tier) (models.Timetable, error)
	Save(ctx context.Context, tier models.Tier, timetable models.Timetable) error
	Remove(ctx context.Context, tier models.Tier) error
}

type rosterReader interface {
	Get(ctx context.Context) ([]models.TeachingAssignment, bool, error)
}

// UpdateSubjectRequest edits one cohort slot of a row.
type UpdateSubjectRequest struct {
	Day        string            `json:"day" validate:"required"`
	Time       string            `json:"time" validate:"required"`
	ClassLevel models.ClassLevel `json:"class_level" validate:"required,oneof=A B C"`
	Subject    string            `json:"subject"`
}

// RenameTimeSlotRequest changes a row's time label.
type RenameTimeSlotRequest struct {
	Day     string `json:"day" validate:"required"`
	OldTime string `json:"old_time" validate:"required"`
	NewTime string `json:"new_time" validate:"required"`
}

// AddDayRequest inserts a new empty day.
type AddDayRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddRowRequest inserts a new empty row into a day.
type AddRowRequest struct {
	Time string `json:"time" validate:"required"`
}

// ConflictWarning signals that a committed edit double-books a teacher.
// It travels alongside the mutation result, never as an error: the write is
// not blocked, only flagged.
type ConflictWarning struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Teacher string `json:"teacher"`
	Message string `json:"message"`
}

// MutationResult carries the committed timetable and an optional warning.
type MutationResult struct {
	Tier      models.Tier      `json:"tier"`
	Timetable models.Timetable `json:"timetable"`
	Changed   bool             `json:"changed"`
	Conflict  *ConflictWarning `json:"conflict,omitempty"`
}

// DayView is one ordered entry of a timetable view.
type DayView struct {
	Day  string             `json:"day"`
	Rows models.DaySchedule `json:"rows"`
}

// TimetableView is a tier's timetable with days in canonical weekday order.
type TimetableView struct {
	Tier models.Tier `json:"tier"`
	Days []DayView   `json:"days"`
}

// TimetableService implements the transactional schedule mutations. Every
// operation reads a full snapshot, transforms it and writes the whole blob
// back; the mutex serialises concurrent requests so read-modify-write cycles
// never interleave.
type TimetableService struct {
	timetables timetableRepository
	roster     rosterReader
	policy     IgnorePolicy
	validator  *validator.Validate
	logger     *zap.Logger
	mu         sync.Mutex
}

// NewTimetableService instantiates TimetableService.
func NewTimetableService(timetables timetableRepository, roster rosterReader, policy IgnorePolicy, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		timetables: timetables,
		roster:     roster,
		policy:     policy,
		validator:  validate,
		logger:     logger,
	}
}

// View returns a tier's timetable with days ordered Senin through Minggu.
func (s *TimetableService) View(ctx context.Context, tier models.Tier) (*TimetableView, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}
	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	view := &TimetableView{Tier: tier}
	for _, day := range timetable.SortedDays() {
		view.Days = append(view.Days, DayView{Day: day, Rows: timetable[day]})
	}
	return view, nil
}

// UpdateSubject sets a slot's subject label and re-derives its teacher from
// the roster. The re-derivation is unconditional: a previously hand-set
// teacher code is overwritten by the subject-driven lookup. The edit always
// commits; when the derived teacher is double-booked at that day and time the
// result carries a conflict warning.
func (s *TimetableService) UpdateSubject(ctx context.Context, tier models.Tier, req UpdateSubjectRequest) (*MutationResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	rows, ok := timetable[req.Day]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "day not found")
	}
	idx := models.FindRow(rows, req.Time)
	if idx == -1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "time slot not found")
	}

	assignments, _, err := s.roster.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	candidate := timetable.Clone()
	slot := candidate[req.Day][idx].Slot(req.ClassLevel)
	slot.Subject = req.Subject
	slot.Teacher = s.deriveTeacher(tier, req.Subject, assignments)

	var warning *ConflictWarning
	if slot.Teacher != s.policy.NoTeacher() && !s.policy.IgnoredTeacher(slot.Teacher) {
		warning = s.precheckConflict(ctx, tier, candidate, req.Day, req.Time, slot.Teacher)
	}

	if err := s.timetables.Save(ctx, tier, candidate); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	s.logger.Info("subject updated",
		zap.String("tier", string(tier)),
		zap.String("day", req.Day),
		zap.String("time", req.Time),
		zap.String("subject", req.Subject),
		zap.String("teacher", slot.Teacher),
		zap.Bool("conflict", warning != nil),
	)
	return &MutationResult{Tier: tier, Timetable: candidate, Changed: true, Conflict: warning}, nil
}

// deriveTeacher maps a subject label to a teacher code. Ignored subjects and
// subjects with no eligible roster record for the tier resolve to the
// no-teacher sentinel. The first matching record wins; matching is exact on
// the trimmed subject name.
func (s *TimetableService) deriveTeacher(tier models.Tier, subject string, assignments []models.TeachingAssignment) string {
	trimmed := strings.TrimSpace(subject)
	if s.policy.IgnoredSubject(trimmed) {
		return s.policy.NoTeacher()
	}
	for _, a := range assignments {
		if strings.TrimSpace(a.SubjectName) == trimmed && a.TeachesIn(tier) {
			return a.TeacherCode
		}
	}
	return s.policy.NoTeacher()
}

// precheckConflict runs the detector against the hypothetical state with the
// candidate substituted for the edited tier. The membership check is keyed on
// the row's current time label, matching the edit that was just applied.
func (s *TimetableService) precheckConflict(ctx context.Context, tier models.Tier, candidate models.Timetable, day, time, teacher string) *ConflictWarning {
	other := models.TierMA
	if tier == models.TierMA {
		other = models.TierMTs
	}
	otherTimetable, err := s.timetables.Get(ctx, other)
	if err != nil {
		s.logger.Warn("conflict pre-check skipped", zap.Error(err))
		return nil
	}

	mts, ma := candidate, otherTimetable
	if tier == models.TierMA {
		mts, ma = otherTimetable, candidate
	}
	report := DetectConflicts(mts, ma, s.policy.IgnoredTeachers())
	if !report.Has(day, time, teacher) {
		return nil
	}
	return &ConflictWarning{
		Day:     day,
		Time:    time,
		Teacher: teacher,
		Message: "Bentrok: Guru " + teacher + " memiliki jadwal di jam yang sama!",
	}
}

// RenameTimeSlot changes a row's time label and re-sorts the day. Renaming to
// the same label is a silent no-op; renaming onto another row's label aborts
// with a duplicate error. No conflict pre-check runs here: a rename moves a
// whole row, it cannot introduce a new teacher overlap at a label.
func (s *TimetableService) RenameTimeSlot(ctx context.Context, tier models.Tier, req RenameTimeSlotRequest) (*MutationResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	rows, ok := timetable[req.Day]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "day not found")
	}
	idx := models.FindRow(rows, req.OldTime)
	if idx == -1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "time slot not found")
	}

	newTime := strings.TrimSpace(req.NewTime)
	if newTime == req.OldTime {
		return &MutationResult{Tier: tier, Timetable: timetable, Changed: false}, nil
	}
	for i := range rows {
		if i != idx && rows[i].Time == newTime {
			return nil, appErrors.Clone(appErrors.ErrDuplicateTimeSlot, "Slot waktu '"+newTime+"' sudah ada di hari ini.")
		}
	}

	updated := timetable.Clone()
	updated[req.Day][idx].Time = newTime
	models.SortRows(updated[req.Day])

	if err := s.timetables.Save(ctx, tier, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	s.logger.Info("time slot renamed",
		zap.String("tier", string(tier)),
		zap.String("day", req.Day),
		zap.String("old_time", req.OldTime),
		zap.String("new_time", newTime),
	)
	return &MutationResult{Tier: tier, Timetable: updated, Changed: true}, nil
}

// AddDay inserts an empty day schedule under the given name.
func (s *TimetableService) AddDay(ctx context.Context, tier models.Tier, req AddDayRequest) (*MutationResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid day payload")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "day name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	if _, exists := timetable[name]; exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicateDay, "Hari '"+name+"' sudah ada.")
	}

	updated := timetable.Clone()
	updated[name] = models.DaySchedule{}

	if err := s.timetables.Save(ctx, tier, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	s.logger.Info("day added", zap.String("tier", string(tier)), zap.String("day", name))
	return &MutationResult{Tier: tier, Timetable: updated, Changed: true}, nil
}

// DeleteDay removes a day and all of its rows. Confirmation is the caller's
// responsibility; once invoked the removal is unconditional.
func (s *TimetableService) DeleteDay(ctx context.Context, tier models.Tier, day string) (*MutationResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	if _, exists := timetable[day]; !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "day not found")
	}

	updated := timetable.Clone()
	delete(updated, day)

	if err := s.timetables.Save(ctx, tier, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	s.logger.Info("day deleted", zap.String("tier", string(tier)), zap.String("day", day))
	return &MutationResult{Tier: tier, Timetable: updated, Changed: true}, nil
}

// AddRow inserts a row with all three slots unassigned, then re-sorts the day.
func (s *TimetableService) AddRow(ctx context.Context, tier models.Tier, day string, req AddRowRequest) (*MutationResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid row payload")
	}
	time := strings.TrimSpace(req.Time)
	if time == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "time slot is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	rows, ok := timetable[day]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "day not found")
	}
	if models.FindRow(rows, time) != -1 {
		return nil, appErrors.Clone(appErrors.ErrDuplicateTimeSlot, "Slot waktu '"+time+"' sudah ada di hari ini.")
	}

	updated := timetable.Clone()
	empty := models.EmptyRow(time)
	empty.SlotA.Teacher = s.policy.NoTeacher()
	empty.SlotB.Teacher = s.policy.NoTeacher()
	empty.SlotC.Teacher = s.policy.NoTeacher()
	updated[day] = append(updated[day], empty)
	models.SortRows(updated[day])

	if err := s.timetables.Save(ctx, tier, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	s.logger.Info("row added", zap.String("tier", string(tier)), zap.String("day", day), zap.String("time", time))
	return &MutationResult{Tier: tier, Timetable: updated, Changed: true}, nil
}

// DeleteRow removes the row with the given time label. Deleting an absent row
// commits unchanged state rather than failing.
func (s *TimetableService) DeleteRow(ctx context.Context, tier models.Tier, day, time string) (*MutationResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	rows, ok := timetable[day]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "day not found")
	}

	updated := timetable.Clone()
	filtered := make(models.DaySchedule, 0, len(rows))
	changed := false
	for _, row := range updated[day] {
		if row.Time == time {
			changed = true
			continue
		}
		filtered = append(filtered, row)
	}
	updated[day] = filtered

	if err := s.timetables.Save(ctx, tier, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	s.logger.Info("row deleted", zap.String("tier", string(tier)), zap.String("day", day), zap.String("time", time), zap.Bool("changed", changed))
	return &MutationResult{Tier: tier, Timetable: updated, Changed: changed}, nil
}

// Reset drops both persisted timetables; subsequent reads fall back to the
// seed schedules.
func (s *TimetableService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tier := range []models.Tier{models.TierMTs, models.TierMA} {
		if err := s.timetables.Remove(ctx, tier); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset timetable")
		}
	}
	s.logger.Info("timetables reset")
	return nil
}
