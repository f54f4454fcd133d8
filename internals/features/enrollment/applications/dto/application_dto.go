// file: internals/features/enrollment/applications/dto/application_dto.go
package dto

import (
	"time"

	appmodel "rinschool_backend/internals/features/enrollment/applications/model"
	matchsvc "rinschool_backend/internals/features/enrollment/matching/service"
)

// ApplyRequest: course fixed → window_ids (urutan = preferensi),
// course fleksibel → preferences (day/time ranges).
type ApplyRequest struct {
	CourseID    string                 `json:"course_id" validate:"required,uuid"`
	WindowIDs   []string               `json:"window_ids" validate:"omitempty,max=10,dive,uuid"`
	Preferences []matchsvc.DayTimeRange `json:"preferences" validate:"omitempty,max=10"`
}

type TimeChoiceResponse struct {
	Position    int        `json:"position"`
	WindowID    *string    `json:"window_id,omitempty"`
	SlotStartAt *time.Time `json:"slot_start_at,omitempty"`
	SlotEndAt   *time.Time `json:"slot_end_at,omitempty"`
}

type ApplicationResponse struct {
	ApplicationID string               `json:"application_id"`
	CourseID      string               `json:"course_id"`
	StudentID     string               `json:"student_id"`
	Status        string               `json:"status"`
	TimeChoices   []TimeChoiceResponse `json:"time_choices"`
	CreatedAt     time.Time            `json:"created_at"`
}

func ToApplicationResponse(m *appmodel.ApplicationModel) ApplicationResponse {
	resp := ApplicationResponse{
		ApplicationID: m.ApplicationID.String(),
		CourseID:      m.ApplicationCourseID.String(),
		StudentID:     m.ApplicationStudentID.String(),
		Status:        string(m.ApplicationStatus),
		TimeChoices:   make([]TimeChoiceResponse, 0, len(m.ApplicationTimeChoices)),
		CreatedAt:     m.ApplicationCreatedAt,
	}
	for i := range m.ApplicationTimeChoices {
		ch := &m.ApplicationTimeChoices[i]
		item := TimeChoiceResponse{
			Position:    ch.ApplicationTimeChoicePosition,
			SlotStartAt: ch.ApplicationTimeChoiceSlotStartAt,
			SlotEndAt:   ch.ApplicationTimeChoiceSlotEndAt,
		}
		if ch.ApplicationTimeChoiceWindowID != nil {
			s := ch.ApplicationTimeChoiceWindowID.String()
			item.WindowID = &s
		}
		resp.TimeChoices = append(resp.TimeChoices, item)
	}
	return resp
}

func ToApplicationResponses(apps []appmodel.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, ToApplicationResponse(&apps[i]))
	}
	return out
}
