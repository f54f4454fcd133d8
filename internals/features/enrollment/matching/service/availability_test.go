package service

import (
	"testing"
	"time"
)

// 2026-01-07 adalah Rabu.
var wednesdayNoon = time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

func TestResolveDayTimeRanges_NextMatchingDay(t *testing.T) {
	ranges := []DayTimeRange{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"}, // Senin depan
	}

	slots := ResolveDayTimeRanges(ranges, wednesdayNoon)
	if len(slots) != 1 {
		t.Fatalf("expect 1 slot, got %d", len(slots))
	}

	want := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	if !slots[0].Start.Equal(want) {
		t.Errorf("Start = %v, want %v", slots[0].Start, want)
	}
	if !slots[0].End.Equal(want.Add(time.Hour)) {
		t.Errorf("End = %v, want %v", slots[0].End, want.Add(time.Hour))
	}
}

func TestResolveDayTimeRanges_TodayButTimePassedAdvancesWeek(t *testing.T) {
	ranges := []DayTimeRange{
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "11:00"}, // Rabu, jam sudah lewat
	}

	slots := ResolveDayTimeRanges(ranges, wednesdayNoon)
	if len(slots) != 1 {
		t.Fatalf("expect 1 slot, got %d", len(slots))
	}

	want := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC) // Rabu depan
	if !slots[0].Start.Equal(want) {
		t.Errorf("Start = %v, want %v", slots[0].Start, want)
	}
}

func TestResolveDayTimeRanges_TodayTimeStillAhead(t *testing.T) {
	ranges := []DayTimeRange{
		{DayOfWeek: 3, StartTime: "15:00", EndTime: "16:00"}, // Rabu ini, masih di depan
	}

	slots := ResolveDayTimeRanges(ranges, wednesdayNoon)
	if len(slots) != 1 {
		t.Fatalf("expect 1 slot, got %d", len(slots))
	}

	want := time.Date(2026, 1, 7, 15, 0, 0, 0, time.UTC)
	if !slots[0].Start.Equal(want) {
		t.Errorf("Start = %v, want %v", slots[0].Start, want)
	}
}

func TestResolveDayTimeRanges_DropsInvalidRanges(t *testing.T) {
	tests := []struct {
		name string
		in   DayTimeRange
	}{
		{"day_of_week di luar 0..6", DayTimeRange{DayOfWeek: 7, StartTime: "10:00", EndTime: "11:00"}},
		{"day_of_week negatif", DayTimeRange{DayOfWeek: -1, StartTime: "10:00", EndTime: "11:00"}},
		{"start gagal parse", DayTimeRange{DayOfWeek: 1, StartTime: "siang", EndTime: "11:00"}},
		{"end gagal parse", DayTimeRange{DayOfWeek: 1, StartTime: "10:00", EndTime: ""}},
		{"start >= end", DayTimeRange{DayOfWeek: 1, StartTime: "11:00", EndTime: "10:00"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := ResolveDayTimeRanges([]DayTimeRange{tc.in}, wednesdayNoon)
			if len(slots) != 0 {
				t.Errorf("range invalid harus di-drop, got %d slot", len(slots))
			}
		})
	}
}

func TestResolveDayTimeRanges_MixedValidAndInvalid(t *testing.T) {
	ranges := []DayTimeRange{
		{DayOfWeek: 7, StartTime: "10:00", EndTime: "11:00"}, // invalid, di-drop
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"}, // valid
	}

	slots := ResolveDayTimeRanges(ranges, wednesdayNoon)
	if len(slots) != 1 {
		t.Fatalf("expect hanya range valid yang lolos, got %d", len(slots))
	}
}
