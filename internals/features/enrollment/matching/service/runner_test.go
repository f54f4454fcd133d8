package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	coursemodel "rinschool_backend/internals/features/courses/courses/model"
	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
	appmodel "rinschool_backend/internals/features/enrollment/applications/model"
	mmodel "rinschool_backend/internals/features/enrollment/matching/model"
)

/* =========================
   Fake store in-memory
========================= */

type fakeStore struct {
	course  coursemodel.CourseModel
	windows []twmodel.CourseTimeWindowModel
	apps    []appmodel.ApplicationModel
	matches []mmodel.MatchModel

	runs          []mmodel.MatchingRunModel
	createdMS     []mmodel.MatchStudentModel
	matchedAppIDs []uuid.UUID

	hasRunning   bool
	failLoadApps bool
	failCreateMS bool

	createMatchCalls int
}

func (f *fakeStore) HasRunningRun(courseID uuid.UUID) (bool, error) { return f.hasRunning, nil }

func (f *fakeStore) CreateRun(run *mmodel.MatchingRunModel) error {
	run.MatchingRunID = uuid.New()
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeStore) FinalizeRun(runID uuid.UUID, status mmodel.MatchingRunStatus) error {
	for i := range f.runs {
		if f.runs[i].MatchingRunID == runID {
			f.runs[i].MatchingRunStatus = status
		}
	}
	return nil
}

func (f *fakeStore) LoadCourse(courseID uuid.UUID) (*coursemodel.CourseModel, error) {
	c := f.course
	return &c, nil
}

func (f *fakeStore) LoadWindows(courseID uuid.UUID) ([]twmodel.CourseTimeWindowModel, error) {
	return f.windows, nil
}

func (f *fakeStore) LoadPendingApplications(courseID uuid.UUID) ([]appmodel.ApplicationModel, error) {
	if f.failLoadApps {
		return nil, errors.New("db down")
	}
	return f.apps, nil
}

func (f *fakeStore) LoadMatchesInRange(courseID uuid.UUID, from, to time.Time) ([]mmodel.MatchModel, error) {
	return f.matches, nil
}

func (f *fakeStore) CreateMatch(match *mmodel.MatchModel) error {
	f.createMatchCalls++
	match.MatchID = uuid.New()
	f.matches = append(f.matches, *match)
	return nil
}

func (f *fakeStore) CreateMatchStudent(ms *mmodel.MatchStudentModel) error {
	if f.failCreateMS {
		return errors.New("insert gagal")
	}
	ms.MatchStudentID = uuid.New()
	f.createdMS = append(f.createdMS, *ms)
	return nil
}

func (f *fakeStore) MarkApplicationMatched(applicationID uuid.UUID) error {
	f.matchedAppIDs = append(f.matchedAppIDs, applicationID)
	return nil
}

/* =========================
   Fixtures
========================= */

var (
	courseID  = uuid.New()
	studentA  = uuid.New()
	studentB  = uuid.New()
	studentC  = uuid.New()
	adminUser = uuid.New()

	// 2026-01-12 Senin 00:00 UTC; "now" sehari sebelumnya
	runFrom = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	runNow  = time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)
)

func fixedCourse(capacity int) coursemodel.CourseModel {
	return coursemodel.CourseModel{
		CourseID:              courseID,
		CourseTitle:           "Matematika SMP",
		CourseCapacity:        capacity,
		CourseDurationMinutes: 60,
		CourseIsTimeFixed:     true,
	}
}

func pendingApp(student uuid.UUID, createdAt time.Time, windowIDs ...uuid.UUID) appmodel.ApplicationModel {
	app := appmodel.ApplicationModel{
		ApplicationID:        uuid.New(),
		ApplicationCourseID:  courseID,
		ApplicationStudentID: student,
		ApplicationStatus:    appmodel.ApplicationPending,
		ApplicationCreatedAt: createdAt,
	}
	for i, w := range windowIDs {
		id := w
		app.ApplicationTimeChoices = append(app.ApplicationTimeChoices, appmodel.ApplicationTimeChoiceModel{
			ApplicationTimeChoiceID:            uuid.New(),
			ApplicationTimeChoiceApplicationID: app.ApplicationID,
			ApplicationTimeChoicePosition:      i,
			ApplicationTimeChoiceWindowID:      &id,
		})
	}
	return app
}

func params() RunParams {
	return RunParams{
		CourseID:    courseID,
		From:        runFrom,
		To:          runFrom.AddDate(0, 0, 14),
		RequestedBy: adminUser,
		Now:         runNow,
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

/* =========================
   Tests
========================= */

// Skenario dasar: 1 window Senin 10-11 kapasitas 2, dua aplikasi →
// satu Match di Senin pertama, dua MatchStudent, keduanya matched.
func TestRunMatching_TwoStudentsShareOneMatch(t *testing.T) {
	wID := uuid.New()
	appA := pendingApp(studentA, runNow.Add(-2*time.Hour), wID)
	appB := pendingApp(studentB, runNow.Add(-1*time.Hour), wID)

	store := &fakeStore{
		course:  fixedCourse(2),
		windows: []twmodel.CourseTimeWindowModel{window(wID, 1, "10:00", "11:00")},
		apps:    []appmodel.ApplicationModel{appA, appB},
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}

	if res.MatchedCount != 2 || res.UnmatchedCount != 0 {
		t.Errorf("counts = %d/%d, want 2/0", res.MatchedCount, res.UnmatchedCount)
	}
	if store.createMatchCalls != 1 {
		t.Errorf("Match dibuat %d kali, want 1 (reuse occurrence yang sama)", store.createMatchCalls)
	}
	if len(store.createdMS) != 2 {
		t.Fatalf("MatchStudent = %d, want 2", len(store.createdMS))
	}
	if store.createdMS[0].MatchStudentMatchID != store.createdMS[1].MatchStudentMatchID {
		t.Errorf("dua siswa harus masuk Match row yang sama")
	}

	wantStart := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	if !store.matches[0].MatchSlotStartAt.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v (Senin pertama)", store.matches[0].MatchSlotStartAt, wantStart)
	}

	if !containsID(store.matchedAppIDs, appA.ApplicationID) || !containsID(store.matchedAppIDs, appB.ApplicationID) {
		t.Errorf("kedua application harus matched")
	}

	if len(store.runs) != 1 || store.runs[0].MatchingRunStatus != mmodel.MatchingRunDone {
		t.Errorf("run harus finalize ke done, got %+v", store.runs)
	}
}

// Kapasitas 1, tiga aplikasi A<B<C → hanya A matched, B & C tetap pending.
func TestRunMatching_CapacityExhaustion(t *testing.T) {
	wID := uuid.New()
	appA := pendingApp(studentA, runNow.Add(-3*time.Hour), wID)
	appB := pendingApp(studentB, runNow.Add(-2*time.Hour), wID)
	appC := pendingApp(studentC, runNow.Add(-1*time.Hour), wID)

	capOne := 1
	store := &fakeStore{
		course: fixedCourse(4), // default course besar, window override = 1
		windows: []twmodel.CourseTimeWindowModel{
			{
				CourseTimeWindowID:        wID,
				CourseTimeWindowDayOfWeek: 1,
				CourseTimeWindowStartTime: "10:00",
				CourseTimeWindowEndTime:   "11:00",
				CourseTimeWindowCapacity:  &capOne,
			},
		},
		apps: []appmodel.ApplicationModel{appA, appB, appC},
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}

	if res.MatchedCount != 1 || res.UnmatchedCount != 2 {
		t.Errorf("counts = %d/%d, want 1/2", res.MatchedCount, res.UnmatchedCount)
	}
	if !containsID(store.matchedAppIDs, appA.ApplicationID) {
		t.Errorf("FIFO: application paling awal yang harus matched")
	}
	if containsID(store.matchedAppIDs, appB.ApplicationID) || containsID(store.matchedAppIDs, appC.ApplicationID) {
		t.Errorf("B dan C tidak boleh matched")
	}
}

// Kapasitas 1 per occurrence tapi ada 2 Senin dalam range: siswa kedua jatuh
// ke occurrence berikutnya untuk window yang sama (earliest-first per window).
func TestRunMatching_SecondStudentGetsNextOccurrence(t *testing.T) {
	wID := uuid.New()
	capOne := 1
	appA := pendingApp(studentA, runNow.Add(-2*time.Hour), wID)
	appB := pendingApp(studentB, runNow.Add(-1*time.Hour), wID)

	store := &fakeStore{
		course: fixedCourse(4),
		windows: []twmodel.CourseTimeWindowModel{
			{
				CourseTimeWindowID:        wID,
				CourseTimeWindowDayOfWeek: 1,
				CourseTimeWindowStartTime: "10:00",
				CourseTimeWindowEndTime:   "11:00",
				CourseTimeWindowCapacity:  &capOne,
			},
		},
		apps: []appmodel.ApplicationModel{appA, appB},
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}
	if res.MatchedCount != 2 {
		t.Fatalf("matched = %d, want 2", res.MatchedCount)
	}
	if len(store.matches) != 2 {
		t.Fatalf("matches = %d, want 2 (dua occurrence)", len(store.matches))
	}

	first := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)
	if !store.matches[0].MatchSlotStartAt.Equal(first) || !store.matches[1].MatchSlotStartAt.Equal(second) {
		t.Errorf("slot order salah: %v, %v", store.matches[0].MatchSlotStartAt, store.matches[1].MatchSlotStartAt)
	}
}

// Urutan preferensi siswa menang atas urutan waktu: window kedua (lebih pagi)
// baru dipakai kalau pilihan pertama tidak tersedia.
func TestRunMatching_PreferenceOrderBeatsEarliestTime(t *testing.T) {
	laterWindow := uuid.New()   // Rabu 14:00 — pilihan pertama siswa
	earlierWindow := uuid.New() // Senin 10:00 — pilihan kedua

	app := pendingApp(studentA, runNow.Add(-time.Hour), laterWindow, earlierWindow)

	store := &fakeStore{
		course: fixedCourse(2),
		windows: []twmodel.CourseTimeWindowModel{
			window(earlierWindow, 1, "10:00", "11:00"),
			window(laterWindow, 3, "14:00", "15:00"),
		},
		apps: []appmodel.ApplicationModel{app},
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("matched = %d, want 1", res.MatchedCount)
	}

	wantStart := time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC) // Rabu
	if !store.matches[0].MatchSlotStartAt.Equal(wantStart) {
		t.Errorf("harus ikut preferensi pertama siswa: got %v, want %v", store.matches[0].MatchSlotStartAt, wantStart)
	}
}

// Aplikasi yang semua pilihannya penuh tetap pending dan dihitung unmatched.
func TestRunMatching_UnmatchedFallback(t *testing.T) {
	wID := uuid.New()
	capZero := 0
	app := pendingApp(studentA, runNow.Add(-time.Hour), wID)

	store := &fakeStore{
		course: fixedCourse(4),
		windows: []twmodel.CourseTimeWindowModel{
			{
				CourseTimeWindowID:        wID,
				CourseTimeWindowDayOfWeek: 1,
				CourseTimeWindowStartTime: "10:00",
				CourseTimeWindowEndTime:   "11:00",
				CourseTimeWindowCapacity:  &capZero,
			},
		},
		apps: []appmodel.ApplicationModel{app},
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}
	if res.MatchedCount != 0 || res.UnmatchedCount != 1 {
		t.Errorf("counts = %d/%d, want 0/1", res.MatchedCount, res.UnmatchedCount)
	}
	if len(store.matchedAppIDs) != 0 {
		t.Errorf("tidak boleh ada application yang matched")
	}
}

// Match lama (run sebelumnya) dipakai ulang: siswa baru join row yang sama,
// sisa kapasitas dihitung dari enrolled yang sudah ada.
func TestRunMatching_ReusesExistingMatchAcrossRuns(t *testing.T) {
	wID := uuid.New()
	existingMatchID := uuid.New()
	slotStart := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)

	store := &fakeStore{
		course:  fixedCourse(2),
		windows: []twmodel.CourseTimeWindowModel{window(wID, 1, "10:00", "11:00")},
		apps:    []appmodel.ApplicationModel{pendingApp(studentB, runNow.Add(-time.Hour), wID)},
		matches: []mmodel.MatchModel{
			{
				MatchID:          existingMatchID,
				MatchCourseID:    courseID,
				MatchSlotStartAt: slotStart,
				MatchSlotEndAt:   slotStart.Add(time.Hour),
				MatchStatus:      mmodel.MatchConfirmed,
				MatchStudents: []mmodel.MatchStudentModel{
					{MatchStudentID: uuid.New(), MatchStudentMatchID: existingMatchID, MatchStudentStudentID: studentA},
				},
			},
		},
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("matched = %d, want 1", res.MatchedCount)
	}
	if store.createMatchCalls != 0 {
		t.Errorf("tidak boleh membuat Match baru, harus reuse yang lama")
	}
	if len(store.createdMS) != 1 || store.createdMS[0].MatchStudentMatchID != existingMatchID {
		t.Errorf("siswa harus join Match lama %s", existingMatchID)
	}
}

// Guard: run yang masih `running` menolak run baru sebelum ada state apa pun.
func TestRunMatching_RejectsConcurrentRun(t *testing.T) {
	store := &fakeStore{
		course:     fixedCourse(2),
		hasRunning: true,
	}

	_, err := RunMatching(store, params())
	if !errors.Is(err, ErrRunInProgress) {
		t.Fatalf("err = %v, want ErrRunInProgress", err)
	}
	if len(store.runs) != 0 {
		t.Errorf("tidak boleh ada run row yang dibuat")
	}
}

// Load gagal → run difinalize ke failed dan error diteruskan.
func TestRunMatching_LoadFailureFinalizesFailed(t *testing.T) {
	store := &fakeStore{
		course:       fixedCourse(2),
		failLoadApps: true,
	}

	_, err := RunMatching(store, params())
	if err == nil {
		t.Fatal("expect error")
	}
	if len(store.runs) != 1 || store.runs[0].MatchingRunStatus != mmodel.MatchingRunFailed {
		t.Errorf("run harus failed, got %+v", store.runs)
	}
}

// Insert MatchStudent gagal → kandidat di-skip, run tetap done.
func TestRunMatching_PerAssignmentFailureDoesNotFailRun(t *testing.T) {
	wID := uuid.New()
	store := &fakeStore{
		course:       fixedCourse(2),
		windows:      []twmodel.CourseTimeWindowModel{window(wID, 1, "10:00", "11:00")},
		apps:         []appmodel.ApplicationModel{pendingApp(studentA, runNow.Add(-time.Hour), wID)},
		failCreateMS: true,
	}

	res, err := RunMatching(store, params())
	if err != nil {
		t.Fatalf("run tidak boleh gagal karena error per-assignment: %v", err)
	}
	if res.MatchedCount != 0 || res.UnmatchedCount != 1 {
		t.Errorf("counts = %d/%d, want 0/1", res.MatchedCount, res.UnmatchedCount)
	}
	if len(store.matchedAppIDs) != 0 {
		t.Errorf("application tidak boleh matched kalau MatchStudent gagal tersimpan")
	}
	if store.runs[0].MatchingRunStatus != mmodel.MatchingRunDone {
		t.Errorf("run harus tetap done, got %s", store.runs[0].MatchingRunStatus)
	}
}

// Occurrence yang sudah lewat tidak pernah dipakai.
func TestRunMatching_SkipsPastOccurrences(t *testing.T) {
	wID := uuid.New()
	app := pendingApp(studentA, runNow.Add(-time.Hour), wID)

	store := &fakeStore{
		course:  fixedCourse(2),
		windows: []twmodel.CourseTimeWindowModel{window(wID, 1, "10:00", "11:00")},
		apps:    []appmodel.ApplicationModel{app},
	}

	// now setelah Senin kedua → semua occurrence dalam range sudah lewat
	p := params()
	p.Now = runFrom.AddDate(0, 0, 21)

	res, err := RunMatching(store, p)
	if err != nil {
		t.Fatalf("RunMatching error: %v", err)
	}
	if res.MatchedCount != 0 || res.UnmatchedCount != 1 {
		t.Errorf("counts = %d/%d, want 0/1", res.MatchedCount, res.UnmatchedCount)
	}
}
