package repository

import (
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/subjects/model"
)

type ScheduleGormStore struct{ DB *gorm.DB }

func NewScheduleGormStore(db *gorm.DB) *ScheduleGormStore {
	return &ScheduleGormStore{DB: db}
}

func (s *ScheduleGormStore) SubjectByID(id int) (*model.SubjectModel, error) {
	var m model.SubjectModel
	if err := s.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ScheduleGormStore) ScheduleByID(id int) (*model.SubjectScheduleModel, error) {
	var m model.SubjectScheduleModel
	if err := s.DB.First(&m, "subject_schedule_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ScheduleGormStore) SlotsForSubjectOnDay(subjectID int, day string) ([]model.SubjectScheduleModel, error) {
	var rows []model.SubjectScheduleModel
	err := s.DB.
		Where("subject_schedule_subject_id = ? AND subject_schedule_day_of_week = ?", subjectID, day).
		Order("subject_schedule_start_time ASC").
		Find(&rows).Error
	return rows, err
}
