// file: internals/features/enrollment/matching/service/availability.go
package service

import (
	"time"
)

/* =========================
   Availability Resolver (mode fleksibel)
   Ubah preferensi (day_of_week, start_time, end_time) menjadi slot konkret
   pada tanggal terdekat yang masih di masa depan.
========================= */

type DayTimeRange struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ResolvedSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveDayTimeRanges memetakan tiap range ke satu slot konkret.
// Range invalid (day_of_week di luar 0..6, jam gagal parse, start >= end)
// di-drop diam-diam — bukan error untuk seluruh batch.
// Pemanggil yang memutuskan hasil kosong = submission error.
func ResolveDayTimeRanges(ranges []DayTimeRange, now time.Time) []ResolvedSlot {
	out := make([]ResolvedSlot, 0, len(ranges))

	for _, r := range ranges {
		if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
			continue
		}
		sh, sm, ok := parseHHMM(r.StartTime)
		if !ok {
			continue
		}
		eh, em, ok := parseHHMM(r.EndTime)
		if !ok {
			continue
		}

		// tanggal terdekat dengan weekday yang diminta (hari ini termasuk)
		today := atMidnight(now)
		ahead := (r.DayOfWeek - int(today.Weekday()) + 7) % 7
		day := today.AddDate(0, 0, ahead)

		start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, day.Location())
		// kalau hari ini tapi jamnya sudah lewat → maju 7 hari
		if !start.After(now) {
			day = day.AddDate(0, 0, 7)
			start = time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, day.Location())
		}
		end := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, day.Location())

		if !start.Before(end) {
			continue
		}

		out = append(out, ResolvedSlot{Start: start, End: end})
	}

	return out
}
