package repository

import (
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/exemptions/model"
)

type ExemptionGormStore struct{ DB *gorm.DB }

func NewExemptionGormStore(db *gorm.DB) *ExemptionGormStore {
	return &ExemptionGormStore{DB: db}
}

func (s *ExemptionGormStore) FindForDate(subjectID int, date time.Time) ([]model.ExemptionModel, error) {
	var rows []model.ExemptionModel
	err := s.DB.
		Where("exemption_subject_id = ? AND exemption_date = ?", subjectID, date).
		Find(&rows).Error
	return rows, err
}

func (s *ExemptionGormStore) FindExact(subjectID int, scheduleID *int, date time.Time) (*model.ExemptionModel, error) {
	q := s.DB.Where("exemption_subject_id = ? AND exemption_date = ?", subjectID, date)
	if scheduleID == nil {
		q = q.Where("exemption_schedule_id IS NULL")
	} else {
		q = q.Where("exemption_schedule_id = ?", *scheduleID)
	}

	var m model.ExemptionModel
	if err := q.First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ExemptionGormStore) Create(e *model.ExemptionModel) error {
	return s.DB.Create(e).Error
}

func (s *ExemptionGormStore) ByID(id int) (*model.ExemptionModel, error) {
	var m model.ExemptionModel
	if err := s.DB.First(&m, "exemption_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ExemptionGormStore) Delete(id int) error {
	return s.DB.Delete(&model.ExemptionModel{}, "exemption_id = ?", id).Error
}
