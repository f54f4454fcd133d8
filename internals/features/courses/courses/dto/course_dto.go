// file: internals/features/courses/courses/dto/course_dto.go
package dto

import (
	"time"

	coursemodel "rinschool_backend/internals/features/courses/courses/model"
)

type CreateCourseRequest struct {
	Title           string  `json:"title" validate:"required,min=3,max=200"`
	Subject         string  `json:"subject" validate:"required,max=100"`
	GradeRange      string  `json:"grade_range" validate:"required,max=50"`
	Description     *string `json:"description"`
	Capacity        *int    `json:"capacity" validate:"omitempty,min=1,max=50"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	IsTimeFixed     *bool   `json:"is_time_fixed"`
	Weeks           *int    `json:"weeks" validate:"omitempty,min=1,max=52"`
}

type UpdateCourseRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=3,max=200"`
	Subject         *string `json:"subject" validate:"omitempty,max=100"`
	GradeRange      *string `json:"grade_range" validate:"omitempty,max=50"`
	Description     *string `json:"description"`
	Capacity        *int    `json:"capacity" validate:"omitempty,min=1,max=50"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	IsTimeFixed     *bool   `json:"is_time_fixed"`
	Weeks           *int    `json:"weeks" validate:"omitempty,min=1,max=52"`
}

type CourseResponse struct {
	CourseID        string    `json:"course_id"`
	Title           string    `json:"title"`
	Subject         string    `json:"subject"`
	GradeRange      string    `json:"grade_range"`
	Description     *string   `json:"description,omitempty"`
	Capacity        int       `json:"capacity"`
	DurationMinutes int       `json:"duration_minutes"`
	IsTimeFixed     bool      `json:"is_time_fixed"`
	Weeks           int       `json:"weeks"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToCourseResponse(m *coursemodel.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:        m.CourseID.String(),
		Title:           m.CourseTitle,
		Subject:         m.CourseSubject,
		GradeRange:      m.CourseGradeRange,
		Description:     m.CourseDescription,
		Capacity:        m.CourseCapacity,
		DurationMinutes: m.CourseDurationMinutes,
		IsTimeFixed:     m.CourseIsTimeFixed,
		Weeks:           m.CourseWeeks,
		ImageURL:        m.CourseImageURL,
		CreatedAt:       m.CourseCreatedAt,
	}
}

func ToCourseResponses(courses []coursemodel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, ToCourseResponse(&courses[i]))
	}
	return out
}

func (r *CreateCourseRequest) ToModel() coursemodel.CourseModel {
	m := coursemodel.CourseModel{
		CourseTitle:       r.Title,
		CourseSubject:     r.Subject,
		CourseGradeRange:  r.GradeRange,
		CourseDescription: r.Description,
	}
	if r.Capacity != nil {
		m.CourseCapacity = *r.Capacity
	} else {
		m.CourseCapacity = 4
	}
	if r.DurationMinutes != nil {
		m.CourseDurationMinutes = *r.DurationMinutes
	} else {
		m.CourseDurationMinutes = 60
	}
	if r.IsTimeFixed != nil {
		m.CourseIsTimeFixed = *r.IsTimeFixed
	}
	if r.Weeks != nil {
		m.CourseWeeks = *r.Weeks
	} else {
		m.CourseWeeks = 4
	}
	return m
}

// ApplyUpdates: hanya field non-nil yang masuk map update.
func (r *UpdateCourseRequest) ApplyUpdates() map[string]any {
	updates := map[string]any{}
	if r.Title != nil {
		updates["course_title"] = *r.Title
	}
	if r.Subject != nil {
		updates["course_subject"] = *r.Subject
	}
	if r.GradeRange != nil {
		updates["course_grade_range"] = *r.GradeRange
	}
	if r.Description != nil {
		updates["course_description"] = *r.Description
	}
	if r.Capacity != nil {
		updates["course_capacity"] = *r.Capacity
	}
	if r.DurationMinutes != nil {
		updates["course_duration_minutes"] = *r.DurationMinutes
	}
	if r.IsTimeFixed != nil {
		updates["course_is_time_fixed"] = *r.IsTimeFixed
	}
	if r.Weeks != nil {
		updates["course_weeks"] = *r.Weeks
	}
	return updates
}
