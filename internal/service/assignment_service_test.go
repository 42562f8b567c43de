package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
)

type stubAssignmentRepo struct {
	assignments []models.TeachingAssignment
	persisted   bool
	getErr      error
	saveErr     error
}

func (s *stubAssignmentRepo) Get(_ context.Context) ([]models.TeachingAssignment, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	return s.assignments, s.persisted, nil
}

func (s *stubAssignmentRepo) Save(_ context.Context, assignments []models.TeachingAssignment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.assignments = assignments
	s.persisted = true
	return nil
}

func (s *stubAssignmentRepo) Remove(_ context.Context) error {
	s.assignments = nil
	s.persisted = false
	return nil
}

func seedTimetables() (models.Timetable, models.Timetable) {
	mts := models.Timetable{
		"Senin": {
			slotRow("07:00 - 07:40", [2]string{"UPACARA BENDERA", "-"}, [2]string{"UPACARA BENDERA", "-"}, [2]string{"UPACARA BENDERA", "-"}),
			slotRow("07:40 - 08:20", [2]string{"Matematika", "G1"}, [2]string{"IPA", "G2"}, [2]string{"Matematika", "G1"}),
		},
	}
	ma := models.Timetable{
		"Senin": {
			slotRow("07:40 - 08:20", [2]string{"Matematika", "G1"}, [2]string{"Fisika", "G10"}, [2]string{"Kimia", "G2"}),
		},
	}
	return mts, ma
}

func newAssignmentFixture(repo *stubAssignmentRepo) *AssignmentService {
	mts, ma := seedTimetables()
	return NewAssignmentService(repo, mts, ma, defaultPolicy(), nil, nil)
}

func TestBootstrapDerivesRosterFromSeeds(t *testing.T) {
	repo := &stubAssignmentRepo{}
	svc := newAssignmentFixture(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))

	require.True(t, repo.persisted)
	// G1/Matematika appears in both tiers and collapses into one record with
	// both flags. The ceremony row contributes nothing.
	require.Len(t, repo.assignments, 4)

	byKey := make(map[string]models.TeachingAssignment)
	for _, a := range repo.assignments {
		byKey[a.TeacherCode+"|"+a.SubjectName] = a
	}

	g1 := byKey["G1|Matematika"]
	assert.True(t, g1.TeachesInMTs)
	assert.True(t, g1.TeachesInMA)
	assert.Equal(t, "(Nama untuk G1)", g1.TeacherName)
	assert.NotEmpty(t, g1.ID)

	g2ipa := byKey["G2|IPA"]
	assert.True(t, g2ipa.TeachesInMTs)
	assert.False(t, g2ipa.TeachesInMA)

	g2kimia := byKey["G2|Kimia"]
	assert.False(t, g2kimia.TeachesInMTs)
	assert.True(t, g2kimia.TeachesInMA)
}

func TestBootstrapSkipsWhenRosterPersisted(t *testing.T) {
	// An empty but persisted roster means a deliberate wipe, not a first run.
	repo := &stubAssignmentRepo{assignments: []models.TeachingAssignment{}, persisted: true}
	svc := newAssignmentFixture(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))

	assert.Empty(t, repo.assignments)
}

func TestBootstrapSortsNumerically(t *testing.T) {
	repo := &stubAssignmentRepo{}
	svc := newAssignmentFixture(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))

	codes := make([]string, 0, len(repo.assignments))
	for _, a := range repo.assignments {
		codes = append(codes, a.TeacherCode)
	}
	// G2 before G10 despite lexicographic order saying otherwise.
	assert.Equal(t, []string{"G1", "G2", "G2", "G10"}, codes)
}

func TestCreateAssignmentTrimsFields(t *testing.T) {
	repo := &stubAssignmentRepo{persisted: true}
	svc := newAssignmentFixture(repo)

	created, err := svc.Create(context.Background(), CreateAssignmentRequest{
		TeacherCode: "  G3 ", TeacherName: " Hasan ", SubjectName: " Fiqih ", TeachesInMTs: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "G3", created.TeacherCode)
	assert.Equal(t, "Hasan", created.TeacherName)
	assert.Equal(t, "Fiqih", created.SubjectName)
	assert.NotEmpty(t, created.ID)
	require.Len(t, repo.assignments, 1)
}

func TestCreateAssignmentValidation(t *testing.T) {
	repo := &stubAssignmentRepo{persisted: true}
	svc := newAssignmentFixture(repo)

	_, err := svc.Create(context.Background(), CreateAssignmentRequest{TeacherCode: "G3"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.assignments)
}

func TestCreateAssignmentToleratesDuplicatePair(t *testing.T) {
	repo := &stubAssignmentRepo{
		assignments: []models.TeachingAssignment{{ID: "1", TeacherCode: "G3", TeacherName: "Hasan", SubjectName: "Fiqih", TeachesInMTs: true}},
		persisted:   true,
	}
	svc := newAssignmentFixture(repo)

	_, err := svc.Create(context.Background(), CreateAssignmentRequest{
		TeacherCode: "G3", TeacherName: "Hasan", SubjectName: "Fiqih", TeachesInMTs: true,
	})

	require.NoError(t, err)
	assert.Len(t, repo.assignments, 2)
}

func TestUpdateAssignment(t *testing.T) {
	repo := &stubAssignmentRepo{
		assignments: []models.TeachingAssignment{{ID: "a-1", TeacherCode: "G3", TeacherName: "Hasan", SubjectName: "Fiqih", TeachesInMTs: true}},
		persisted:   true,
	}
	svc := newAssignmentFixture(repo)

	updated, err := svc.Update(context.Background(), "a-1", UpdateAssignmentRequest{
		TeacherCode: "G3", TeacherName: "Hasan Basri", SubjectName: "Fiqih", TeachesInMTs: true, TeachesInMA: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hasan Basri", updated.TeacherName)
	assert.True(t, updated.TeachesInMA)
	assert.Equal(t, "a-1", updated.ID)
}

func TestUpdateAssignmentNotFound(t *testing.T) {
	repo := &stubAssignmentRepo{persisted: true}
	svc := newAssignmentFixture(repo)

	_, err := svc.Update(context.Background(), "missing", UpdateAssignmentRequest{
		TeacherCode: "G3", TeacherName: "Hasan", SubjectName: "Fiqih",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteAssignment(t *testing.T) {
	repo := &stubAssignmentRepo{
		assignments: []models.TeachingAssignment{
			{ID: "a-1", TeacherCode: "G3", SubjectName: "Fiqih"},
			{ID: "a-2", TeacherCode: "G4", SubjectName: "Aqidah"},
		},
		persisted: true,
	}
	svc := newAssignmentFixture(repo)

	require.NoError(t, svc.Delete(context.Background(), "a-1"))

	require.Len(t, repo.assignments, 1)
	assert.Equal(t, "a-2", repo.assignments[0].ID)
}

func TestDeleteAssignmentNotFound(t *testing.T) {
	repo := &stubAssignmentRepo{persisted: true}
	svc := newAssignmentFixture(repo)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestListFiltersByTier(t *testing.T) {
	repo := &stubAssignmentRepo{
		assignments: []models.TeachingAssignment{
			{ID: "a-1", TeacherCode: "G10", SubjectName: "Fisika", TeachesInMA: true},
			{ID: "a-2", TeacherCode: "G2", SubjectName: "IPA", TeachesInMTs: true},
			{ID: "a-3", TeacherCode: "G1", SubjectName: "Matematika", TeachesInMTs: true, TeachesInMA: true},
		},
		persisted: true,
	}
	svc := newAssignmentFixture(repo)

	mtsOnly, err := svc.List(context.Background(), models.TierMTs)
	require.NoError(t, err)
	require.Len(t, mtsOnly, 2)
	assert.Equal(t, "G1", mtsOnly[0].TeacherCode)
	assert.Equal(t, "G2", mtsOnly[1].TeacherCode)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListUnknownTier(t *testing.T) {
	repo := &stubAssignmentRepo{persisted: true}
	svc := newAssignmentFixture(repo)

	_, err := svc.List(context.Background(), models.Tier("SD"))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnknownTier.Code, appErrors.FromError(err).Code)
}

func TestSubjectsCatalog(t *testing.T) {
	repo := &stubAssignmentRepo{
		assignments: []models.TeachingAssignment{
			{ID: "a-1", TeacherCode: "G2", SubjectName: "IPA", TeachesInMTs: true},
			{ID: "a-2", TeacherCode: "G1", SubjectName: "Matematika", TeachesInMTs: true},
			{ID: "a-3", TeacherCode: "G5", SubjectName: "Matematika", TeachesInMTs: true},
			{ID: "a-4", TeacherCode: "G10", SubjectName: "Fisika", TeachesInMA: true},
		},
		persisted: true,
	}
	svc := newAssignmentFixture(repo)

	options, err := svc.Subjects(context.Background(), models.TierMTs)

	require.NoError(t, err)
	// Unique teachable subjects sorted first, then the structural labels so
	// breaks and ceremonies stay assignable.
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{"IPA", "Matematika", "ISTIRAHAT", "UPACARA BENDERA", "EKSKUL WAJIB"}, names)
}

func TestResetRearmsBootstrap(t *testing.T) {
	repo := &stubAssignmentRepo{assignments: []models.TeachingAssignment{{ID: "a-1"}}, persisted: true}
	svc := newAssignmentFixture(repo)

	require.NoError(t, svc.Reset(context.Background()))
	assert.False(t, repo.persisted)

	require.NoError(t, svc.Bootstrap(context.Background()))
	assert.True(t, repo.persisted)
	assert.NotEmpty(t, repo.assignments)
}
