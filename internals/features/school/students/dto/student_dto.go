package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentNumber string `json:"studentNumber" validate:"required,student_number"`
	Name          string `json:"name" validate:"required,max=100"`
	Section       string `json:"section" validate:"required,max=50"`
	YearLevel     string `json:"yearLevel" validate:"required,max=50"`
}

// UpdateStudentRequest — student_number immutable, jadi tidak ada di sini.
type UpdateStudentRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Section   *string `json:"section" validate:"omitempty,max=50"`
	YearLevel *string `json:"yearLevel" validate:"omitempty,max=50"`
	IsActive  *bool   `json:"isActive"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type StudentAttendanceStats struct {
	Total       int     `json:"total"`
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Late        int     `json:"late"`
	PresentRate float64 `json:"present_rate"`
	AbsentRate  float64 `json:"absent_rate"`
	LateRate    float64 `json:"late_rate"`
}

type StudentAttendanceHistoryRow struct {
	AttendanceID int    `json:"attendance_id"`
	SubjectID    int    `json:"subject_id"`
	SubjectCode  string `json:"subject_code"`
	SubjectName  string `json:"subject_name"`
	ScheduleID   int    `json:"schedule_id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks"`
}
