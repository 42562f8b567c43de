package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
)

// DetectConflicts scans both tiers' timetables and reports every
// (day, time, teacher) triple referenced more than once across their union.
// Slots with an empty teacher code or one in ignoredTeachers are skipped.
// The function is pure: it never mutates its inputs and is deterministic for
// deterministic iteration order. The detection is tier-agnostic once
// occurrences are collected, so a teacher double-booked across two cohorts of
// the same row is reported exactly like a cross-tier clash.
func DetectConflicts(mts, ma models.Timetable, ignoredTeachers []string) models.ConflictReport {
	ignored := make(map[string]struct{}, len(ignoredTeachers))
	for _, code := range ignoredTeachers {
		ignored[code] = struct{}{}
	}

	type occurrence struct {
		day, time, teacher string
	}
	occurrences := make(map[string][]models.ConflictDetail)
	meta := make(map[string]occurrence)

	scan := func(timetable models.Timetable, tier models.Tier) {
		for day, rows := range timetable {
			for i := range rows {
				row := rows[i]
				for _, level := range models.ClassLevels {
					slot := row.Slot(level)
					if slot.Teacher == "" {
						continue
					}
					if _, skip := ignored[slot.Teacher]; skip {
						continue
					}
					key := models.ConflictKey(day, row.Time, slot.Teacher)
					occurrences[key] = append(occurrences[key], models.ConflictDetail{
						Tier:       tier,
						Subject:    slot.Subject,
						ClassLabel: level.Label(tier),
					})
					meta[key] = occurrence{day: day, time: row.Time, teacher: slot.Teacher}
				}
			}
		}
	}

	scan(mts, models.TierMTs)
	scan(ma, models.TierMA)

	report := models.ConflictReport{Keys: make(map[string]struct{})}
	for key, details := range occurrences {
		if len(details) < 2 {
			continue
		}
		at := meta[key]
		report.Records = append(report.Records, models.Conflict{
			Day:     at.day,
			Time:    at.time,
			Teacher: at.teacher,
			Details: details,
		})
		report.Keys[key] = struct{}{}
	}
	return report
}

type timetableReader interface {
	Get(ctx context.Context, tier models.Tier) (models.Timetable, error)
}

// ConflictService serves the cross-tier conflict report. Conflicts are
// recomputed from live state on every call and never persisted.
type ConflictService struct {
	timetables timetableReader
	policy     IgnorePolicy
	logger     *zap.Logger
}

// NewConflictService instantiates ConflictService.
func NewConflictService(timetables timetableReader, policy IgnorePolicy, logger *zap.Logger) *ConflictService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConflictService{timetables: timetables, policy: policy, logger: logger}
}

// Report loads both timetables and returns the detected conflicts.
func (s *ConflictService) Report(ctx context.Context) (models.ConflictReport, error) {
	mts, err := s.timetables.Get(ctx, models.TierMTs)
	if err != nil {
		return models.ConflictReport{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load MTs timetable")
	}
	ma, err := s.timetables.Get(ctx, models.TierMA)
	if err != nil {
		return models.ConflictReport{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load MA timetable")
	}

	report := DetectConflicts(mts, ma, s.policy.IgnoredTeachers())
	if len(report.Records) > 0 {
		s.logger.Info("schedule conflicts detected", zap.Int("count", len(report.Records)))
	}
	return report, nil
}
