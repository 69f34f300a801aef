package model

import "time"

// StudentModel — identitas murid. student_number immutable, tidak pernah
// hard-delete: nonaktifkan lewat student_is_active.
type StudentModel struct {
	StudentID        int        `gorm:"primaryKey;autoIncrement;column:student_id" json:"student_id"`
	StudentNumber    string     `gorm:"type:varchar(20);uniqueIndex;not null;column:student_number" json:"student_number"`
	StudentName      string     `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
	StudentSection   string     `gorm:"type:varchar(50);not null;column:student_section" json:"student_section"`
	StudentYearLevel string     `gorm:"type:varchar(50);not null;column:student_year_level" json:"student_year_level"`
	StudentIsActive  bool       `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`
	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
