// file: internals/features/enrollment/matching/service/occurrence.go
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
)

/* =========================
   Occurrence Generator
   Proyeksikan pola mingguan (day_of_week + jam dinding) ke tanggal konkret.
   Murni & deterministik: input sama → output sama.
========================= */

type Occurrence struct {
	WindowID uuid.UUID
	Start    time.Time
	End      time.Time
}

// GenerateOccurrences menghasilkan occurrence untuk setiap tanggal di [from, to)
// yang weekday-nya cocok dengan day_of_week window (0 = Minggu).
// Batas atas eksklusif terhadap TANGGAL `to`: tanggal kalender `to` tidak ikut.
// Window dengan start >= end tidak menghasilkan apa-apa.
// Tidak ada filter "sudah lewat" atau "sudah penuh" di sini — itu urusan pemanggil.
func GenerateOccurrences(windows []twmodel.CourseTimeWindowModel, from, to time.Time) []Occurrence {
	out := make([]Occurrence, 0)

	fromDay := atMidnight(from)
	toDay := atMidnight(to)

	for day := fromDay; day.Before(toDay); day = day.AddDate(0, 0, 1) {
		dow := int(day.Weekday())
		for _, w := range windows {
			if w.CourseTimeWindowDayOfWeek != dow {
				continue
			}
			sh, sm, ok := parseHHMM(w.CourseTimeWindowStartTime)
			if !ok {
				continue
			}
			eh, em, ok := parseHHMM(w.CourseTimeWindowEndTime)
			if !ok {
				continue
			}
			start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, day.Location())
			end := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, day.Location())
			if !start.Before(end) {
				continue // zero-length atau kebalik
			}
			out = append(out, Occurrence{
				WindowID: w.CourseTimeWindowID,
				Start:    start,
				End:      end,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].WindowID.String() < out[j].WindowID.String()
		}
		return out[i].Start.Before(out[j].Start)
	})

	return out
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseHHMM menerima "HH:MM" (atau "HH:MM:SS", detik diabaikan).
func parseHHMM(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, 0, false
		}
	}
	return t.Hour(), t.Minute(), true
}
