package repository

import (
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/attendance/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
)

type StudentGormStore struct{ DB *gorm.DB }

func NewStudentGormStore(db *gorm.DB) *StudentGormStore {
	return &StudentGormStore{DB: db}
}

func (s *StudentGormStore) ByNumber(number string) (*studentModel.StudentModel, error) {
	var m studentModel.StudentModel
	if err := s.DB.First(&m, "student_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type LedgerGormStore struct{ DB *gorm.DB }

func NewLedgerGormStore(db *gorm.DB) *LedgerGormStore {
	return &LedgerGormStore{DB: db}
}

func (s *LedgerGormStore) Find(studentNumber string, subjectID, scheduleID int, date time.Time) (*model.AttendanceModel, error) {
	var m model.AttendanceModel
	err := s.DB.First(&m,
		"attendance_student_number = ? AND attendance_subject_id = ? AND attendance_schedule_id = ? AND attendance_date = ?",
		studentNumber, subjectID, scheduleID, date,
	).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *LedgerGormStore) Create(rec *model.AttendanceModel) error {
	return s.DB.Create(rec).Error
}

func (s *LedgerGormStore) Update(rec *model.AttendanceModel) error {
	return s.DB.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", rec.AttendanceID).
		Updates(map[string]interface{}{
			"attendance_status":    rec.AttendanceStatus,
			"attendance_remarks":   rec.AttendanceRemarks,
			"attendance_marked_by": rec.AttendanceMarkedBy,
		}).Error
}
