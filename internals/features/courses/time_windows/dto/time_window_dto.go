// file: internals/features/courses/time_windows/dto/time_window_dto.go
package dto

import (
	"github.com/google/uuid"

	twmodel "rinschool_backend/internals/features/courses/time_windows/model"
)

type CreateTimeWindowRequest struct {
	DayOfWeek      int     `json:"day_of_week" validate:"min=0,max=6"`
	StartTime      string  `json:"start_time" validate:"required,len=5"` // "HH:MM"
	EndTime        string  `json:"end_time" validate:"required,len=5"`
	InstructorID   *string `json:"instructor_id" validate:"omitempty,uuid"`
	InstructorName *string `json:"instructor_name" validate:"omitempty,max=100"`
	Capacity       *int    `json:"capacity" validate:"omitempty,min=1,max=50"`
}

type UpdateTimeWindowRequest struct {
	DayOfWeek      *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	StartTime      *string `json:"start_time" validate:"omitempty,len=5"`
	EndTime        *string `json:"end_time" validate:"omitempty,len=5"`
	InstructorID   *string `json:"instructor_id" validate:"omitempty,uuid"`
	InstructorName *string `json:"instructor_name" validate:"omitempty,max=100"`
	Capacity       *int    `json:"capacity" validate:"omitempty,min=1,max=50"`
}

type TimeWindowResponse struct {
	WindowID       string  `json:"window_id"`
	CourseID       string  `json:"course_id"`
	DayOfWeek      int     `json:"day_of_week"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	InstructorID   *string `json:"instructor_id,omitempty"`
	InstructorName *string `json:"instructor_name,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
}

func ToTimeWindowResponse(m *twmodel.CourseTimeWindowModel) TimeWindowResponse {
	resp := TimeWindowResponse{
		WindowID:       m.CourseTimeWindowID.String(),
		CourseID:       m.CourseTimeWindowCourseID.String(),
		DayOfWeek:      m.CourseTimeWindowDayOfWeek,
		StartTime:      m.CourseTimeWindowStartTime,
		EndTime:        m.CourseTimeWindowEndTime,
		InstructorName: m.CourseTimeWindowInstructorName,
		Capacity:       m.CourseTimeWindowCapacity,
	}
	if m.CourseTimeWindowInstructorID != nil {
		s := m.CourseTimeWindowInstructorID.String()
		resp.InstructorID = &s
	}
	return resp
}

func ToTimeWindowResponses(windows []twmodel.CourseTimeWindowModel) []TimeWindowResponse {
	out := make([]TimeWindowResponse, 0, len(windows))
	for i := range windows {
		out = append(out, ToTimeWindowResponse(&windows[i]))
	}
	return out
}

func (r *CreateTimeWindowRequest) ToModel(courseID uuid.UUID) (twmodel.CourseTimeWindowModel, error) {
	m := twmodel.CourseTimeWindowModel{
		CourseTimeWindowCourseID:       courseID,
		CourseTimeWindowDayOfWeek:      r.DayOfWeek,
		CourseTimeWindowStartTime:      r.StartTime,
		CourseTimeWindowEndTime:        r.EndTime,
		CourseTimeWindowInstructorName: r.InstructorName,
		CourseTimeWindowCapacity:       r.Capacity,
	}
	if r.InstructorID != nil {
		id, err := uuid.Parse(*r.InstructorID)
		if err != nil {
			return m, err
		}
		m.CourseTimeWindowInstructorID = &id
	}
	return m, nil
}
