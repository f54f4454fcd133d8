package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
)

func window(id uuid.UUID, dow int, start, end string) twmodel.CourseTimeWindowModel {
	return twmodel.CourseTimeWindowModel{
		CourseTimeWindowID:        id,
		CourseTimeWindowDayOfWeek: dow,
		CourseTimeWindowStartTime: start,
		CourseTimeWindowEndTime:   end,
	}
}

// 2026-01-12 adalah Senin.
var (
	monday = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
)

func TestGenerateOccurrences_WeeklyExpansion(t *testing.T) {
	wID := uuid.New()
	windows := []twmodel.CourseTimeWindowModel{
		window(wID, 1, "10:00", "11:00"), // Senin
	}

	occs := GenerateOccurrences(windows, monday, monday.AddDate(0, 0, 14))

	if len(occs) != 2 {
		t.Fatalf("expect 2 occurrences (2 Senin dalam 14 hari), got %d", len(occs))
	}

	wantFirst := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	wantSecond := time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)
	if !occs[0].Start.Equal(wantFirst) {
		t.Errorf("occurrence[0].Start = %v, want %v", occs[0].Start, wantFirst)
	}
	if !occs[1].Start.Equal(wantSecond) {
		t.Errorf("occurrence[1].Start = %v, want %v", occs[1].Start, wantSecond)
	}
	if !occs[0].End.Equal(wantFirst.Add(time.Hour)) {
		t.Errorf("occurrence[0].End = %v, want %v", occs[0].End, wantFirst.Add(time.Hour))
	}
}

func TestGenerateOccurrences_Deterministic(t *testing.T) {
	windows := []twmodel.CourseTimeWindowModel{
		window(uuid.New(), 1, "10:00", "11:00"),
		window(uuid.New(), 3, "14:00", "15:30"),
		window(uuid.New(), 1, "08:00", "09:00"),
	}
	from := monday
	to := monday.AddDate(0, 0, 14)

	a := GenerateOccurrences(windows, from, to)
	b := GenerateOccurrences(windows, from, to)

	if len(a) != len(b) {
		t.Fatalf("panjang beda: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("occurrence[%d] beda: %+v vs %+v", i, a[i], b[i])
		}
	}

	// urut start ASC
	for i := 1; i < len(a); i++ {
		if a[i].Start.Before(a[i-1].Start) {
			t.Errorf("occurrence tidak urut pada index %d", i)
		}
	}
}

func TestGenerateOccurrences_UpperBoundExclusive(t *testing.T) {
	wID := uuid.New()
	windows := []twmodel.CourseTimeWindowModel{
		window(wID, 1, "10:00", "11:00"),
	}

	// to tepat di Senin kedua → tanggal `to` tidak ikut
	occs := GenerateOccurrences(windows, monday, monday.AddDate(0, 0, 7))
	if len(occs) != 1 {
		t.Fatalf("expect 1 occurrence, got %d", len(occs))
	}
	if !occs[0].Start.Equal(time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", occs[0].Start)
	}
}

func TestGenerateOccurrences_InvertedWindowYieldsNothing(t *testing.T) {
	windows := []twmodel.CourseTimeWindowModel{
		window(uuid.New(), 1, "11:00", "10:00"), // kebalik
		window(uuid.New(), 1, "10:00", "10:00"), // zero-length
	}

	occs := GenerateOccurrences(windows, monday, monday.AddDate(0, 0, 14))
	if len(occs) != 0 {
		t.Fatalf("expect 0 occurrences, got %d", len(occs))
	}
}

func TestGenerateOccurrences_TieBreakByWindowID(t *testing.T) {
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	windows := []twmodel.CourseTimeWindowModel{
		window(idB, 1, "10:00", "11:00"),
		window(idA, 1, "10:00", "12:00"),
	}

	occs := GenerateOccurrences(windows, monday, monday.AddDate(0, 0, 7))
	if len(occs) != 2 {
		t.Fatalf("expect 2 occurrences, got %d", len(occs))
	}
	if occs[0].WindowID != idA || occs[1].WindowID != idB {
		t.Errorf("tie-break salah: got [%s, %s]", occs[0].WindowID, occs[1].WindowID)
	}
}
