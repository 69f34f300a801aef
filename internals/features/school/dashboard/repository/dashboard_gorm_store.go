package repository

import (
	"time"

	"gorm.io/gorm"

	attendanceModel "presensiku_backend/internals/features/school/attendance/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
)

type LedgerGormScanner struct{ DB *gorm.DB }

func NewLedgerGormScanner(db *gorm.DB) *LedgerGormScanner {
	return &LedgerGormScanner{DB: db}
}

func (s *LedgerGormScanner) ScanRange(start, end time.Time) ([]attendanceModel.AttendanceModel, error) {
	var rows []attendanceModel.AttendanceModel
	err := s.DB.
		Where("attendance_date BETWEEN ? AND ?", start, end).
		Order("attendance_id ASC").
		Find(&rows).Error
	return rows, err
}

func (s *LedgerGormScanner) ScanDate(date time.Time) ([]attendanceModel.AttendanceModel, error) {
	var rows []attendanceModel.AttendanceModel
	err := s.DB.
		Where("attendance_date = ?", date).
		Order("attendance_id ASC").
		Find(&rows).Error
	return rows, err
}

type ReferenceGormStore struct{ DB *gorm.DB }

func NewReferenceGormStore(db *gorm.DB) *ReferenceGormStore {
	return &ReferenceGormStore{DB: db}
}

func (s *ReferenceGormStore) StudentsByNumbers(numbers []string) (map[string]studentModel.StudentModel, error) {
	out := make(map[string]studentModel.StudentModel, len(numbers))
	if len(numbers) == 0 {
		return out, nil
	}

	var rows []studentModel.StudentModel
	if err := s.DB.Where("student_number IN ?", numbers).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].StudentNumber] = rows[i]
	}
	return out, nil
}

func (s *ReferenceGormStore) SubjectsByIDs(ids []int) (map[int]subjectModel.SubjectModel, error) {
	out := make(map[int]subjectModel.SubjectModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []subjectModel.SubjectModel
	if err := s.DB.Preload("SubjectSchedules").Where("subject_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].SubjectID] = rows[i]
	}
	return out, nil
}
