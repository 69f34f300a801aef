package model

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceLogModel — jejak audit append-only. Tidak pernah di-update atau
// dihapus; field referensi nullable karena tiap aksi mengisi subset berbeda.
type AttendanceLogModel struct {
	LogID            int            `gorm:"primaryKey;autoIncrement;column:log_id" json:"log_id"`
	LogAction        string         `gorm:"type:varchar(10);not null;index:idx_logs_action_logged_at;column:log_action" json:"log_action"`
	LogStudentNumber *string        `gorm:"type:varchar(20);index:idx_logs_student_logged_at;column:log_student_number" json:"log_student_number,omitempty"`
	LogSubjectID     *int           `gorm:"index:idx_logs_subject_logged_at;column:log_subject_id" json:"log_subject_id,omitempty"`
	LogScheduleID    *int           `gorm:"column:log_schedule_id" json:"log_schedule_id,omitempty"`
	LogDate          *time.Time     `gorm:"type:date;column:log_date" json:"log_date,omitempty"`
	LogOldStatus     *string        `gorm:"type:varchar(10);column:log_old_status" json:"log_old_status,omitempty"`
	LogNewStatus     *string        `gorm:"type:varchar(10);column:log_new_status" json:"log_new_status,omitempty"`
	LogChanges       datatypes.JSON `gorm:"column:log_changes" json:"log_changes,omitempty"`
	LogRemarks       string         `gorm:"type:text;column:log_remarks" json:"log_remarks"`
	LogPerformedBy   int            `gorm:"not null;index;column:log_performed_by" json:"log_performed_by"`
	LogIPAddress     string         `gorm:"type:varchar(45);column:log_ip_address" json:"log_ip_address"`
	LogLoggedAt      time.Time      `gorm:"column:log_logged_at;autoCreateTime;index:idx_logs_action_logged_at,sort:desc" json:"log_logged_at"`
}

func (AttendanceLogModel) TableName() string { return "attendance_logs" }
