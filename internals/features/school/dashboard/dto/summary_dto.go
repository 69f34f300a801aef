package dto

import (
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
)

// RateBlock — hitungan + rate (persen, 2 desimal; 0 saat total 0).
type RateBlock struct {
	Total       int     `json:"total"`
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Late        int     `json:"late"`
	PresentRate float64 `json:"present_rate"`
	AbsentRate  float64 `json:"absent_rate"`
	LateRate    float64 `json:"late_rate"`
}

type StudentRollup struct {
	StudentNumber  string `json:"student_number"`
	StudentName    string `json:"student_name"`
	StudentSection string `json:"student_section"`
	RateBlock
}

type SubjectRollup struct {
	SubjectID   int                                 `json:"subject_id"`
	SubjectCode string                              `json:"subject_code"`
	SubjectName string                              `json:"subject_name"`
	SubjectRoom string                              `json:"subject_room"`
	Schedules   []subjectModel.SubjectScheduleModel `json:"schedules"`
	RateBlock
}

// RateExtremes — top-3/bottom-3 menurut satu rate. Seri dipecahkan oleh urutan
// scan (stable sort, tanpa secondary key).
type RateExtremes struct {
	Top    []StudentRollup `json:"top"`
	Bottom []StudentRollup `json:"bottom"`
}

type Summary struct {
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Overall       RateBlock       `json:"overall"`
	Students      []StudentRollup `json:"students"`
	Subjects      []SubjectRollup `json:"subjects"`
	ByPresentRate RateExtremes    `json:"by_present_rate"`
	ByAbsentRate  RateExtremes    `json:"by_absent_rate"`
	ByLateRate    RateExtremes    `json:"by_late_rate"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Rate    float64 `json:"rate"`
}
