package dto

import (
	"time"

	m "presensiku_backend/internals/features/school/exemptions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateExemptionRequest struct {
	SubjectID int `json:"subjectId" validate:"required,min=1"`
	// nil = subject-wide (seluruh slot subject pada tanggal itu)
	ScheduleID *int   `json:"scheduleId" validate:"omitempty,min=1"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required,max=500"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ExemptionResponse struct {
	ExemptionID int       `json:"exemption_id"`
	SubjectID   int       `json:"subject_id"`
	ScheduleID  *int      `json:"schedule_id,omitempty"`
	Date        string    `json:"date"`
	Reason      string    `json:"reason"`
	ExemptedBy  int       `json:"exempted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromExemptionModel(e m.ExemptionModel) ExemptionResponse {
	return ExemptionResponse{
		ExemptionID: e.ExemptionID,
		SubjectID:   e.ExemptionSubjectID,
		ScheduleID:  e.ExemptionScheduleID,
		Date:        e.ExemptionDate.Format("2006-01-02"),
		Reason:      e.ExemptionReason,
		ExemptedBy:  e.ExemptionExemptedBy,
		CreatedAt:   e.ExemptionCreatedAt,
	}
}
