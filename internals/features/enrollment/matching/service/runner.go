// file: internals/features/enrollment/matching/service/runner.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
	mmodel "rinschool_backend/internals/features/enrollment/matching/model"
)

/* =========================
   Matching Run Controller + Assignment Engine
   Greedy, satu pass, FIFO per created_at. Kapasitas dihitung sekali dari
   match yang sudah ada lalu dikurangi in-memory — tidak pernah re-query
   di tengah run.
========================= */

// ErrRunInProgress: masih ada run berstatus `running` untuk course ini.
var ErrRunInProgress = errors.New("masih ada matching run yang sedang berjalan untuk course ini")

const instructorKeyNone = "none"

type RunParams struct {
	CourseID    uuid.UUID
	From        time.Time
	To          time.Time
	RequestedBy uuid.UUID

	// Now dipakai untuk filter "slot sudah lewat"; zero value → time.Now().
	Now time.Time
}

type RunResult struct {
	RunID          uuid.UUID `json:"run_id"`
	MatchedCount   int       `json:"matched_count"`
	UnmatchedCount int       `json:"unmatched_count"`
}

// occurrenceState: kapasitas tersisa per (instructor-key, slot-start), in-memory,
// scoped ke satu run. matchID di-cache supaya occurrence yang sama tidak pernah
// membuat dua baris Match dalam run yang sama.
type occurrenceState struct {
	window    *twmodel.CourseTimeWindowModel
	start     time.Time
	end       time.Time
	key       string
	matchID   *uuid.UUID
	remaining int
}

// RunMatching menjalankan satu pass matching untuk course pada rentang [from, to).
//
// Guard concurrency: check-then-insert pada matching_runs — dua run yang nyaris
// bersamaan bisa sama-sama lolos check (race window, tidak ada constraint unik).
// Run yang mati sebelum finalize meninggalkan baris `running` dan memblokir run
// berikutnya sampai direset manual (endpoint admin reset).
func RunMatching(store Store, p RunParams) (RunResult, error) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	running, err := store.HasRunningRun(p.CourseID)
	if err != nil {
		return RunResult{}, err
	}
	if running {
		return RunResult{}, ErrRunInProgress
	}

	run := mmodel.MatchingRunModel{
		MatchingRunCourseID:  p.CourseID,
		MatchingRunStatus:    mmodel.MatchingRunRunning,
		MatchingRunRangeFrom: p.From,
		MatchingRunRangeTo:   p.To,
		MatchingRunCreatedBy: p.RequestedBy,
	}
	if err := store.CreateRun(&run); err != nil {
		return RunResult{}, fmt.Errorf("gagal membuat matching run: %w", err)
	}

	result, err := executeRun(store, &run, p, now)
	if err != nil {
		if ferr := store.FinalizeRun(run.MatchingRunID, mmodel.MatchingRunFailed); ferr != nil {
			log.Printf("[ERROR] finalize run %s ke failed gagal: %v", run.MatchingRunID, ferr)
		}
		return RunResult{}, err
	}

	if err := store.FinalizeRun(run.MatchingRunID, mmodel.MatchingRunDone); err != nil {
		log.Printf("[ERROR] finalize run %s ke done gagal: %v", run.MatchingRunID, err)
	}

	result.RunID = run.MatchingRunID
	return result, nil
}

func executeRun(store Store, run *mmodel.MatchingRunModel, p RunParams, now time.Time) (RunResult, error) {
	course, err := store.LoadCourse(p.CourseID)
	if err != nil {
		return RunResult{}, fmt.Errorf("load course: %w", err)
	}
	windows, err := store.LoadWindows(p.CourseID)
	if err != nil {
		return RunResult{}, fmt.Errorf("load windows: %w", err)
	}
	applications, err := store.LoadPendingApplications(p.CourseID)
	if err != nil {
		return RunResult{}, fmt.Errorf("load applications: %w", err)
	}
	existing, err := store.LoadMatchesInRange(p.CourseID, p.From, p.To)
	if err != nil {
		return RunResult{}, fmt.Errorf("load matches: %w", err)
	}

	states := buildOccurrenceStates(course.CourseCapacity, windows, existing, p.From, p.To, now)

	matched, unmatched := 0, 0

	for _, app := range applications {
		assigned := false

		// Preferensi dicoba sesuai urutan yang disubmit siswa — bukan urutan waktu.
		for _, choice := range app.ApplicationTimeChoices {
			if choice.ApplicationTimeChoiceWindowID == nil {
				continue // slot fleksibel, tidak di-match by window id
			}
			windowID := *choice.ApplicationTimeChoiceWindowID

			// Kandidat untuk window ini: occurrence dengan sisa kapasitas,
			// states sudah urut start ASC → yang pertama = paling awal.
			var picked *occurrenceState
			for _, st := range states {
				if st.window.CourseTimeWindowID == windowID && st.remaining > 0 {
					picked = st
					break
				}
			}
			if picked == nil {
				continue
			}

			matchID := picked.matchID
			if matchID == nil {
				match := mmodel.MatchModel{
					MatchCourseID:       p.CourseID,
					MatchSlotStartAt:    picked.start,
					MatchSlotEndAt:      picked.end,
					MatchInstructorID:   picked.window.CourseTimeWindowInstructorID,
					MatchInstructorName: picked.window.CourseTimeWindowInstructorName,
					MatchStatus:         mmodel.MatchConfirmed,
					MatchUpdatedBy:      &p.RequestedBy,
				}
				if err := store.CreateMatch(&match); err != nil {
					// kandidat dianggap tidak tersedia, lanjut ke pilihan berikutnya
					log.Printf("[WARN] create match gagal (run %s): %v", run.MatchingRunID, err)
					continue
				}
				id := match.MatchID
				matchID = &id
				picked.matchID = &id
			}

			ms := mmodel.MatchStudentModel{
				MatchStudentMatchID:   *matchID,
				MatchStudentStudentID: app.ApplicationStudentID,
			}
			if err := store.CreateMatchStudent(&ms); err != nil {
				log.Printf("[WARN] insert match student gagal (run %s): %v", run.MatchingRunID, err)
				continue
			}

			// Status baru boleh pindah ke matched SETELAH MatchStudent tersimpan.
			if err := store.MarkApplicationMatched(app.ApplicationID); err != nil {
				log.Printf("[ERROR] update status application %s gagal: %v", app.ApplicationID, err)
			}

			picked.remaining--
			matched++
			assigned = true
			break
		}

		if !assigned {
			unmatched++
		}
	}

	return RunResult{MatchedCount: matched, UnmatchedCount: unmatched}, nil
}

// buildOccurrenceStates: expand window → occurrence, hitung sisa kapasitas dari
// match yang sudah ada (sekali saja), buang occurrence yang sudah lewat.
func buildOccurrenceStates(
	courseCapacity int,
	windows []twmodel.CourseTimeWindowModel,
	existing []mmodel.MatchModel,
	from, to, now time.Time,
) []*occurrenceState {
	windowByID := make(map[uuid.UUID]*twmodel.CourseTimeWindowModel, len(windows))
	for i := range windows {
		windowByID[windows[i].CourseTimeWindowID] = &windows[i]
	}

	// match yang ada, keyed (instructor-key, slot-start)
	type existingMatch struct {
		id       uuid.UUID
		enrolled int
	}
	existingByKey := make(map[string]existingMatch, len(existing))
	for _, m := range existing {
		key := occurrenceKey(m.MatchInstructorID, m.MatchSlotStartAt)
		existingByKey[key] = existingMatch{id: m.MatchID, enrolled: len(m.MatchStudents)}
	}

	occurrences := GenerateOccurrences(windows, from, to)

	states := make([]*occurrenceState, 0, len(occurrences))
	for _, occ := range occurrences {
		if !occ.Start.After(now) {
			continue // sudah lewat
		}
		w := windowByID[occ.WindowID]
		if w == nil {
			continue
		}

		capacity := courseCapacity
		if w.CourseTimeWindowCapacity != nil {
			capacity = *w.CourseTimeWindowCapacity
		}

		key := occurrenceKey(w.CourseTimeWindowInstructorID, occ.Start)
		st := &occurrenceState{
			window: w,
			start:  occ.Start,
			end:    occ.End,
			key:    key,
		}
		if em, ok := existingByKey[key]; ok {
			id := em.id
			st.matchID = &id
			capacity -= em.enrolled
		}
		if capacity < 0 {
			capacity = 0
		}
		st.remaining = capacity

		states = append(states, st)
	}

	return states
}

func occurrenceKey(instructorID *uuid.UUID, start time.Time) string {
	key := instructorKeyNone
	if instructorID != nil {
		key = instructorID.String()
	}
	return key + "|" + start.UTC().Format(time.RFC3339)
}
