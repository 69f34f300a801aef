package dto

import (
	m "presensiku_backend/internals/features/school/subjects/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type ScheduleSlotRequest struct {
	DayOfWeek string `json:"dayOfWeek" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04:05"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04:05"`
}

type CreateSubjectRequest struct {
	Code      string                `json:"code" validate:"required,max=20"`
	Name      string                `json:"name" validate:"required,max=100"`
	Room      string                `json:"room" validate:"omitempty,max=50"`
	Schedules []ScheduleSlotRequest `json:"schedules" validate:"omitempty,dive"`
}

type AddScheduleRequest struct {
	ScheduleSlotRequest
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// ScheduleWithSubject — satu slot plus identitas subject-nya, dipakai
// endpoint jadwal (hari ini / per hari / mingguan).
type ScheduleWithSubject struct {
	ScheduleID  int    `json:"schedule_id"`
	SubjectID   int    `json:"subject_id"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	SubjectRoom string `json:"subject_room"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func FromSchedule(subject m.SubjectModel, slot m.SubjectScheduleModel) ScheduleWithSubject {
	return ScheduleWithSubject{
		ScheduleID:  slot.SubjectScheduleID,
		SubjectID:   subject.SubjectID,
		SubjectCode: subject.SubjectCode,
		SubjectName: subject.SubjectName,
		SubjectRoom: subject.SubjectRoom,
		DayOfWeek:   slot.SubjectScheduleDayOfWeek,
		StartTime:   slot.SubjectScheduleStartTime,
		EndTime:     slot.SubjectScheduleEndTime,
	}
}
