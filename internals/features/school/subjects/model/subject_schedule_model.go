package model

import "time"

// SubjectScheduleModel — slot mingguan per subject (boleh lebih dari satu
// slot pada hari yang sama, mis. kuliah + lab). Jam dinding "HH:MM:SS",
// tanpa timezone, invariant start < end.
type SubjectScheduleModel struct {
	SubjectScheduleID        int       `gorm:"primaryKey;autoIncrement;column:subject_schedule_id" json:"subject_schedule_id"`
	SubjectScheduleSubjectID int       `gorm:"not null;index;column:subject_schedule_subject_id" json:"subject_schedule_subject_id"`
	SubjectScheduleDayOfWeek string    `gorm:"type:varchar(9);not null;column:subject_schedule_day_of_week" json:"subject_schedule_day_of_week"`
	SubjectScheduleStartTime string    `gorm:"type:time;not null;column:subject_schedule_start_time" json:"subject_schedule_start_time"`
	SubjectScheduleEndTime   string    `gorm:"type:time;not null;column:subject_schedule_end_time" json:"subject_schedule_end_time"`
	SubjectScheduleCreatedAt time.Time `gorm:"column:subject_schedule_created_at;autoCreateTime" json:"subject_schedule_created_at"`
}

func (SubjectScheduleModel) TableName() string { return "subject_schedules" }
