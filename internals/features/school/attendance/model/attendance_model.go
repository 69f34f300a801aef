package model

import "time"

// AttendanceModel — satu baris per (student, subject, schedule, date).
// Unique index adalah backstop untuk race dua request menandai tuple yang
// sama bersamaan; logika service sendiri tidak menjamin itu.
type AttendanceModel struct {
	AttendanceID            int       `gorm:"primaryKey;autoIncrement;column:attendance_id" json:"attendance_id"`
	AttendanceStudentNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_attendance_tuple;column:attendance_student_number" json:"attendance_student_number"`
	AttendanceSubjectID     int       `gorm:"not null;uniqueIndex:uq_attendance_tuple;column:attendance_subject_id" json:"attendance_subject_id"`
	AttendanceScheduleID    int       `gorm:"not null;uniqueIndex:uq_attendance_tuple;column:attendance_schedule_id" json:"attendance_schedule_id"`
	AttendanceDate          time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_tuple;index:idx_attendance_date;column:attendance_date" json:"attendance_date"`
	AttendanceStatus        string    `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`
	AttendanceRemarks       string    `gorm:"type:text;column:attendance_remarks" json:"attendance_remarks"`
	AttendanceMarkedBy      int       `gorm:"column:attendance_marked_by" json:"attendance_marked_by"`
	AttendanceMarkedAt      time.Time `gorm:"column:attendance_marked_at;autoCreateTime" json:"attendance_marked_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
