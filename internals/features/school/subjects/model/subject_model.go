package model

import "time"

type SubjectModel struct {
	SubjectID        int       `gorm:"primaryKey;autoIncrement;column:subject_id" json:"subject_id"`
	SubjectCode      string    `gorm:"type:varchar(20);not null;column:subject_code" json:"subject_code"`
	SubjectName      string    `gorm:"type:varchar(100);not null;column:subject_name" json:"subject_name"`
	SubjectRoom      string    `gorm:"type:varchar(50);column:subject_room" json:"subject_room"`
	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`

	// Subject memiliki jadwalnya; hapus subject ikut menghapus slot.
	SubjectSchedules []SubjectScheduleModel `gorm:"foreignKey:SubjectScheduleSubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject_schedules,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
