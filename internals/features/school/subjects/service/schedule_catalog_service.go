package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/subjects/model"
)

var (
	ErrSubjectNotFound  = errors.New("subject tidak ditemukan")
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan untuk subject tersebut")
	ErrScheduleMismatch = errors.New("jadwal tidak sesuai dengan hari pada tanggal tersebut")
)

type ScheduleStore interface {
	SubjectByID(id int) (*model.SubjectModel, error)
	ScheduleByID(id int) (*model.SubjectScheduleModel, error)
	SlotsForSubjectOnDay(subjectID int, day string) ([]model.SubjectScheduleModel, error)
}

// ScheduleCatalogService — katalog jadwal referensi: slot per subject per hari
// dan pengecekan "tanggal X memang hari kuliah untuk jadwal Y".
type ScheduleCatalogService struct {
	Store ScheduleStore
}

func NewScheduleCatalogService(store ScheduleStore) *ScheduleCatalogService {
	return &ScheduleCatalogService{Store: store}
}

// SlotsForSubjectOnDay mengembalikan slot subject di hari tertentu, urut jam
// mulai. Hasil kosong valid: artinya tidak ada kelas hari itu (precondition
// gagal untuk marking, bukan error).
func (s *ScheduleCatalogService) SlotsForSubjectOnDay(subjectID int, day string) ([]model.SubjectScheduleModel, error) {
	if _, err := s.Store.SubjectByID(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return s.Store.SlotsForSubjectOnDay(subjectID, day)
}

// IsDateScheduled memastikan schedule milik subject dan day_of_week-nya sama
// dengan nama hari Gregorian tanggal tersebut (timezone-naive).
func (s *ScheduleCatalogService) IsDateScheduled(subjectID int, date time.Time, scheduleID int) error {
	sch, err := s.Store.ScheduleByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleMismatch
		}
		return err
	}
	if sch.SubjectScheduleSubjectID != subjectID {
		return ErrScheduleMismatch
	}
	if sch.SubjectScheduleDayOfWeek != date.Weekday().String() {
		return ErrScheduleMismatch
	}
	return nil
}
