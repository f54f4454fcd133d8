// file: internals/features/enrollment/matching/dto/matching_dto.go
package dto

import (
	"time"

	mmodel "rinschool_backend/internals/features/enrollment/matching/model"
)

type RunMatchingRequest struct {
	CourseID string  `json:"course_id" validate:"required,uuid"`
	From     *string `json:"from"` // RFC3339; default sekarang
	To       *string `json:"to"`   // RFC3339; default from + 14 hari
}

type MatchingRunResponse struct {
	RunID     string    `json:"run_id"`
	CourseID  string    `json:"course_id"`
	Status    string    `json:"status"`
	RangeFrom time.Time `json:"range_from"`
	RangeTo   time.Time `json:"range_to"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMatchingRunResponse(m *mmodel.MatchingRunModel) MatchingRunResponse {
	return MatchingRunResponse{
		RunID:     m.MatchingRunID.String(),
		CourseID:  m.MatchingRunCourseID.String(),
		Status:    string(m.MatchingRunStatus),
		RangeFrom: m.MatchingRunRangeFrom,
		RangeTo:   m.MatchingRunRangeTo,
		CreatedBy: m.MatchingRunCreatedBy.String(),
		CreatedAt: m.MatchingRunCreatedAt,
	}
}

func ToMatchingRunResponses(runs []mmodel.MatchingRunModel) []MatchingRunResponse {
	out := make([]MatchingRunResponse, 0, len(runs))
	for i := range runs {
		out = append(out, ToMatchingRunResponse(&runs[i]))
	}
	return out
}

type MatchStudentItem struct {
	StudentID string `json:"student_id"`
}

type MatchResponse struct {
	MatchID        string             `json:"match_id"`
	CourseID       string             `json:"course_id"`
	SlotStartAt    time.Time          `json:"slot_start_at"`
	SlotEndAt      time.Time          `json:"slot_end_at"`
	InstructorID   *string            `json:"instructor_id,omitempty"`
	InstructorName *string            `json:"instructor_name,omitempty"`
	Status         string             `json:"status"`
	Students       []MatchStudentItem `json:"students"`
}

func ToMatchResponse(m *mmodel.MatchModel) MatchResponse {
	resp := MatchResponse{
		MatchID:        m.MatchID.String(),
		CourseID:       m.MatchCourseID.String(),
		SlotStartAt:    m.MatchSlotStartAt,
		SlotEndAt:      m.MatchSlotEndAt,
		InstructorName: m.MatchInstructorName,
		Status:         string(m.MatchStatus),
		Students:       make([]MatchStudentItem, 0, len(m.MatchStudents)),
	}
	if m.MatchInstructorID != nil {
		s := m.MatchInstructorID.String()
		resp.InstructorID = &s
	}
	for i := range m.MatchStudents {
		resp.Students = append(resp.Students, MatchStudentItem{
			StudentID: m.MatchStudents[i].MatchStudentStudentID.String(),
		})
	}
	return resp
}

func ToMatchResponses(matches []mmodel.MatchModel) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		out = append(out, ToMatchResponse(&matches[i]))
	}
	return out
}
