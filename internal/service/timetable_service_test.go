package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
)

type stubTimetableRepo struct {
	tables    map[models.Tier]models.Timetable
	saveCalls int
	getErr    error
	saveErr   error
}

func newStubTimetableRepo() *stubTimetableRepo {
	return &stubTimetableRepo{tables: make(map[models.Tier]models.Timetable)}
}

func (s *stubTimetableRepo) Get(_ context.Context, tier models.Tier) (models.Timetable, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if table, ok := s.tables[tier]; ok {
		return table.Clone(), nil
	}
	return models.Timetable{}, nil
}

func (s *stubTimetableRepo) Save(_ context.Context, tier models.Tier, timetable models.Timetable) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saveCalls++
	s.tables[tier] = timetable.Clone()
	return nil
}

func (s *stubTimetableRepo) Remove(_ context.Context, tier models.Tier) error {
	delete(s.tables, tier)
	return nil
}

type stubRoster struct {
	assignments []models.TeachingAssignment
	persisted   bool
}

func (s *stubRoster) Get(_ context.Context) ([]models.TeachingAssignment, bool, error) {
	return s.assignments, s.persisted, nil
}

func defaultPolicy() IgnorePolicy {
	return NewIgnorePolicy(
		[]string{"ISTIRAHAT", "UPACARA BENDERA", "EKSKUL WAJIB"},
		[]string{"-", "OSIS", "WALI", "PEMBINA"},
		"-",
	)
}

func newTimetableFixture() (*TimetableService, *stubTimetableRepo, *stubRoster) {
	repo := newStubTimetableRepo()
	repo.tables[models.TierMTs] = models.Timetable{
		"Senin": {
			slotRow("07:00 - 07:40", [2]string{"Matematika", "G1"}, [2]string{"IPA", "G2"}, [2]string{"IPS", "G3"}),
			slotRow("07:40 - 08:20", [2]string{"IPA", "G2"}, [2]string{"Matematika", "G1"}, [2]string{"Bahasa Arab", "G4"}),
		},
	}
	repo.tables[models.TierMA] = models.Timetable{
		"Senin": {
			slotRow("07:00 - 07:40", [2]string{"Fisika", "G5"}, [2]string{"Kimia", "G6"}, [2]string{"Biologi", "G7"}),
		},
	}
	roster := &stubRoster{
		assignments: []models.TeachingAssignment{
			{ID: "1", TeacherCode: "G1", TeacherName: "Ahmad", SubjectName: "Matematika", TeachesInMTs: true},
			{ID: "2", TeacherCode: "G5", TeacherName: "Budi", SubjectName: "Fisika", TeachesInMA: true},
			{ID: "3", TeacherCode: "G8", TeacherName: "Citra", SubjectName: "Bahasa Inggris", TeachesInMTs: true, TeachesInMA: true},
		},
		persisted: true,
	}
	svc := NewTimetableService(repo, roster, defaultPolicy(), nil, nil)
	return svc, repo, roster
}

func TestUpdateSubjectDerivesTeacherFromRoster(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelB, Subject: "Bahasa Inggris",
	})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Nil(t, result.Conflict)

	saved := repo.tables[models.TierMTs]["Senin"][0]
	assert.Equal(t, "Bahasa Inggris", saved.SlotB.Subject)
	assert.Equal(t, "G8", saved.SlotB.Teacher)
}

func TestUpdateSubjectOverwritesHandSetTeacher(t *testing.T) {
	// The roster lookup always wins, even when the slot already carried a
	// manually assigned code for the same subject.
	svc, repo, roster := newTimetableFixture()
	roster.assignments = append(roster.assignments,
		models.TeachingAssignment{ID: "4", TeacherCode: "G9", TeacherName: "Dewi", SubjectName: "IPS", TeachesInMTs: true})

	result, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelC, Subject: "IPS",
	})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "G9", repo.tables[models.TierMTs]["Senin"][0].SlotC.Teacher)
}

func TestUpdateSubjectIgnoredSubjectGetsSentinel(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelA, Subject: "ISTIRAHAT & SHOLAT",
	})

	require.NoError(t, err)
	assert.Nil(t, result.Conflict)
	saved := repo.tables[models.TierMTs]["Senin"][0]
	assert.Equal(t, "ISTIRAHAT & SHOLAT", saved.SlotA.Subject)
	assert.Equal(t, "-", saved.SlotA.Teacher)
}

func TestUpdateSubjectUnknownSubjectGetsSentinel(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	_, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelA, Subject: "Astronomi",
	})

	require.NoError(t, err)
	assert.Equal(t, "-", repo.tables[models.TierMTs]["Senin"][0].SlotA.Teacher)
}

func TestUpdateSubjectWrongTierRosterRecordGetsSentinel(t *testing.T) {
	// Fisika is only taught by an MA-eligible teacher, so an MTs edit
	// resolves to the sentinel.
	svc, repo, _ := newTimetableFixture()

	_, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelA, Subject: "Fisika",
	})

	require.NoError(t, err)
	assert.Equal(t, "-", repo.tables[models.TierMTs]["Senin"][0].SlotA.Teacher)
}

func TestUpdateSubjectCommitsDespiteConflict(t *testing.T) {
	// Assigning Matematika at 07:40 double-books G1, who already holds that
	// period in slot B. The edit commits and the conflict travels as a warning.
	svc, repo, _ := newTimetableFixture()

	result, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:40 - 08:20", ClassLevel: models.ClassLevelC, Subject: "Matematika",
	})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	require.NotNil(t, result.Conflict)
	assert.Equal(t, "G1", result.Conflict.Teacher)
	assert.Equal(t, "Bentrok: Guru G1 memiliki jadwal di jam yang sama!", result.Conflict.Message)

	assert.Equal(t, "G1", repo.tables[models.TierMTs]["Senin"][1].SlotC.Teacher)
}

func TestUpdateSubjectCrossTierConflict(t *testing.T) {
	svc, _, roster := newTimetableFixture()
	roster.assignments = append(roster.assignments,
		models.TeachingAssignment{ID: "5", TeacherCode: "G5", TeacherName: "Budi", SubjectName: "IPA Terpadu", TeachesInMTs: true})

	result, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelA, Subject: "IPA Terpadu",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Conflict)
	assert.Equal(t, "G5", result.Conflict.Teacher)
}

func TestUpdateSubjectIsIdempotent(t *testing.T) {
	svc, repo, _ := newTimetableFixture()
	req := UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelB, Subject: "Bahasa Inggris",
	}

	first, err := svc.UpdateSubject(context.Background(), models.TierMTs, req)
	require.NoError(t, err)
	afterFirst := repo.tables[models.TierMTs]["Senin"][0]

	second, err := svc.UpdateSubject(context.Background(), models.TierMTs, req)
	require.NoError(t, err)
	afterSecond := repo.tables[models.TierMTs]["Senin"][0]

	assert.Equal(t, afterFirst, afterSecond)
	assert.Equal(t, first.Conflict, second.Conflict)
}

func TestUpdateSubjectUnknownDay(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	_, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Rabu", Time: "07:00 - 07:40", ClassLevel: models.ClassLevelA, Subject: "Matematika",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.saveCalls)
}

func TestUpdateSubjectInvalidClassLevel(t *testing.T) {
	svc, _, _ := newTimetableFixture()

	_, err := svc.UpdateSubject(context.Background(), models.TierMTs, UpdateSubjectRequest{
		Day: "Senin", Time: "07:00 - 07:40", ClassLevel: "D", Subject: "Matematika",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRenameTimeSlotSortsDay(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.RenameTimeSlot(context.Background(), models.TierMTs, RenameTimeSlotRequest{
		Day: "Senin", OldTime: "07:00 - 07:40", NewTime: "09:00 - 09:40",
	})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	rows := repo.tables[models.TierMTs]["Senin"]
	require.Len(t, rows, 2)
	assert.Equal(t, "07:40 - 08:20", rows[0].Time)
	assert.Equal(t, "09:00 - 09:40", rows[1].Time)
	// The renamed row keeps its slots.
	assert.Equal(t, "Matematika", rows[1].SlotA.Subject)
}

func TestRenameTimeSlotSameLabelIsNoOp(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.RenameTimeSlot(context.Background(), models.TierMTs, RenameTimeSlotRequest{
		Day: "Senin", OldTime: "07:00 - 07:40", NewTime: "07:00 - 07:40",
	})

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Zero(t, repo.saveCalls)
}

func TestRenameTimeSlotDuplicateAborts(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	_, err := svc.RenameTimeSlot(context.Background(), models.TierMTs, RenameTimeSlotRequest{
		Day: "Senin", OldTime: "07:00 - 07:40", NewTime: "07:40 - 08:20",
	})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDuplicateTimeSlot.Code, appErr.Code)
	assert.Equal(t, "Slot waktu '07:40 - 08:20' sudah ada di hari ini.", appErr.Message)
	assert.Zero(t, repo.saveCalls)
	assert.Equal(t, "07:00 - 07:40", repo.tables[models.TierMTs]["Senin"][0].Time)
}

func TestAddDay(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.AddDay(context.Background(), models.TierMTs, AddDayRequest{Name: "Selasa"})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Contains(t, repo.tables[models.TierMTs], "Selasa")
	assert.Empty(t, repo.tables[models.TierMTs]["Selasa"])
}

func TestAddDayDuplicate(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	_, err := svc.AddDay(context.Background(), models.TierMTs, AddDayRequest{Name: "Senin"})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDuplicateDay.Code, appErr.Code)
	assert.Equal(t, "Hari 'Senin' sudah ada.", appErr.Message)
	assert.Zero(t, repo.saveCalls)
}

func TestAddDayThenDeleteDayRestoresState(t *testing.T) {
	svc, repo, _ := newTimetableFixture()
	before := repo.tables[models.TierMTs].Clone()

	_, err := svc.AddDay(context.Background(), models.TierMTs, AddDayRequest{Name: "Kamis"})
	require.NoError(t, err)
	_, err = svc.DeleteDay(context.Background(), models.TierMTs, "Kamis")
	require.NoError(t, err)

	assert.Equal(t, before, repo.tables[models.TierMTs])
}

func TestDeleteDayRemovesAllRows(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.DeleteDay(context.Background(), models.TierMTs, "Senin")

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.NotContains(t, repo.tables[models.TierMTs], "Senin")
}

func TestDeleteDayAbsent(t *testing.T) {
	svc, _, _ := newTimetableFixture()

	_, err := svc.DeleteDay(context.Background(), models.TierMTs, "Minggu")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAddRowInsertsEmptySortedRow(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.AddRow(context.Background(), models.TierMTs, "Senin", AddRowRequest{Time: "06:30 - 07:00"})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	rows := repo.tables[models.TierMTs]["Senin"]
	require.Len(t, rows, 3)
	assert.Equal(t, "06:30 - 07:00", rows[0].Time)
	assert.Equal(t, "", rows[0].SlotA.Subject)
	assert.Equal(t, "-", rows[0].SlotA.Teacher)
	assert.Equal(t, "-", rows[0].SlotB.Teacher)
	assert.Equal(t, "-", rows[0].SlotC.Teacher)
}

func TestAddRowDuplicateTimeAborts(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	_, err := svc.AddRow(context.Background(), models.TierMTs, "Senin", AddRowRequest{Time: "07:00 - 07:40"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateTimeSlot.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.saveCalls)
	assert.Len(t, repo.tables[models.TierMTs]["Senin"], 2)
}

func TestAddRowUnknownDay(t *testing.T) {
	svc, _, _ := newTimetableFixture()

	_, err := svc.AddRow(context.Background(), models.TierMTs, "Kamis", AddRowRequest{Time: "07:00 - 07:40"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteRow(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.DeleteRow(context.Background(), models.TierMTs, "Senin", "07:00 - 07:40")

	require.NoError(t, err)
	assert.True(t, result.Changed)
	rows := repo.tables[models.TierMTs]["Senin"]
	require.Len(t, rows, 1)
	assert.Equal(t, "07:40 - 08:20", rows[0].Time)
}

func TestDeleteRowAbsentCommitsUnchanged(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	result, err := svc.DeleteRow(context.Background(), models.TierMTs, "Senin", "23:00 - 23:40")

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, 1, repo.saveCalls)
	assert.Len(t, repo.tables[models.TierMTs]["Senin"], 2)
}

func TestResetDropsBothTiers(t *testing.T) {
	svc, repo, _ := newTimetableFixture()

	require.NoError(t, svc.Reset(context.Background()))

	assert.Empty(t, repo.tables)
}

func TestViewOrdersDays(t *testing.T) {
	svc, repo, _ := newTimetableFixture()
	repo.tables[models.TierMTs]["Rabu"] = models.DaySchedule{}
	repo.tables[models.TierMTs]["Selasa"] = models.DaySchedule{}

	view, err := svc.View(context.Background(), models.TierMTs)

	require.NoError(t, err)
	require.Len(t, view.Days, 3)
	assert.Equal(t, "Senin", view.Days[0].Day)
	assert.Equal(t, "Selasa", view.Days[1].Day)
	assert.Equal(t, "Rabu", view.Days[2].Day)
}

func TestViewUnknownTier(t *testing.T) {
	svc, _, _ := newTimetableFixture()

	_, err := svc.View(context.Background(), models.Tier("SD"))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnknownTier.Code, appErrors.FromError(err).Code)
}
