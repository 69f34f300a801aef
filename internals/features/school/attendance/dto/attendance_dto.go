package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MarkAttendanceRecord struct {
	StudentNumber string `json:"studentNumber" validate:"required,student_number"`
	Status        string `json:"status" validate:"required,oneof=present absent late"`
	Remarks       string `json:"remarks" validate:"omitempty,max=500"`
}

type MarkAttendanceRequest struct {
	Date              string                 `json:"date" validate:"required,datetime=2006-01-02"`
	SubjectID         int                    `json:"subjectId" validate:"required,min=1"`
	ScheduleID        int                    `json:"scheduleId" validate:"required,min=1"`
	AttendanceRecords []MarkAttendanceRecord `json:"attendanceRecords" validate:"required,min=1,dive"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ClassAttendanceRow struct {
	AttendanceID   int    `json:"attendance_id"`
	StudentNumber  string `json:"student_number"`
	StudentName    string `json:"student_name"`
	StudentSection string `json:"student_section"`
	SubjectID      int    `json:"subject_id"`
	ScheduleID     int    `json:"schedule_id"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	Remarks        string `json:"remarks"`
	MarkedBy       int    `json:"marked_by"`
}
