package model

import "time"

// ExemptionModel — peniadaan absensi untuk satu subject pada satu tanggal.
// exemption_schedule_id NULL = berlaku untuk seluruh slot subject hari itu.
// Unik per (subject, schedule-or-null, date); exemption subject-wide dan
// slot-specific boleh sama-sama ada untuk subject+tanggal yang sama.
type ExemptionModel struct {
	ExemptionID         int       `gorm:"primaryKey;autoIncrement;column:exemption_id" json:"exemption_id"`
	ExemptionSubjectID  int       `gorm:"not null;uniqueIndex:uq_exemptions_subject_schedule_date;column:exemption_subject_id" json:"exemption_subject_id"`
	ExemptionScheduleID *int      `gorm:"uniqueIndex:uq_exemptions_subject_schedule_date;column:exemption_schedule_id" json:"exemption_schedule_id,omitempty"`
	ExemptionDate       time.Time `gorm:"type:date;not null;uniqueIndex:uq_exemptions_subject_schedule_date;index:idx_exemptions_date_subject;column:exemption_date" json:"exemption_date"`
	ExemptionReason     string    `gorm:"type:text;not null;column:exemption_reason" json:"exemption_reason"`
	ExemptionExemptedBy int       `gorm:"not null;column:exemption_exempted_by" json:"exemption_exempted_by"`
	ExemptionCreatedAt  time.Time `gorm:"column:exemption_created_at;autoCreateTime" json:"exemption_created_at"`
}

func (ExemptionModel) TableName() string { return "exemptions" }
