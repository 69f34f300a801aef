package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
	"presensiku_backend/internals/features/school/exemptions/model"
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
	subjectService "presensiku_backend/internals/features/school/subjects/service"
	"presensiku_backend/internals/constants"
)

var (
	ErrExemptionNotFound  = errors.New("exemption tidak ditemukan")
	ErrDuplicateExemption = errors.New("exemption untuk subject/jadwal/tanggal tersebut sudah ada")
)

type ExemptionStore interface {
	FindForDate(subjectID int, date time.Time) ([]model.ExemptionModel, error)
	FindExact(subjectID int, scheduleID *int, date time.Time) (*model.ExemptionModel, error)
	Create(e *model.ExemptionModel) error
	ByID(id int) (*model.ExemptionModel, error)
	Delete(id int) error
}

type CatalogStore interface {
	SubjectByID(id int) (*subjectModel.SubjectModel, error)
	ScheduleByID(id int) (*subjectModel.SubjectScheduleModel, error)
}

type AuditLogger interface {
	Record(e *logModel.AttendanceLogModel)
}

// ExemptionService — registry peniadaan absensi per subject/tanggal,
// opsional dipersempit ke satu slot jadwal.
type ExemptionService struct {
	Store   ExemptionStore
	Catalog CatalogStore
	Audit   AuditLogger
}

func NewExemptionService(store ExemptionStore, catalog CatalogStore, audit AuditLogger) *ExemptionService {
	return &ExemptionService{Store: store, Catalog: catalog, Audit: audit}
}

// Create menolak duplikat pada tuple persis (subject, schedule-or-null, date).
// scheduleID nil adalah key tersendiri: exemption subject-wide dan slot-specific
// boleh sama-sama ada untuk subject+tanggal yang sama.
func (s *ExemptionService) Create(subjectID int, scheduleID *int, date time.Time, reason string, adminID int, sourceIP string) (*model.ExemptionModel, error) {
	if _, err := s.Catalog.SubjectByID(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subjectService.ErrSubjectNotFound
		}
		return nil, err
	}

	if scheduleID != nil {
		sch, err := s.Catalog.ScheduleByID(*scheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, subjectService.ErrScheduleNotFound
			}
			return nil, err
		}
		if sch.SubjectScheduleSubjectID != subjectID {
			return nil, subjectService.ErrScheduleNotFound
		}
	}

	existing, err := s.Store.FindExact(subjectID, scheduleID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateExemption
	}

	e := &model.ExemptionModel{
		ExemptionSubjectID:  subjectID,
		ExemptionScheduleID: scheduleID,
		ExemptionDate:       date,
		ExemptionReason:     reason,
		ExemptionExemptedBy: adminID,
	}
	if err := s.Store.Create(e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateExemption
		}
		return nil, err
	}

	s.Audit.Record(&logModel.AttendanceLogModel{
		LogAction:      constants.ActionExempt,
		LogSubjectID:   &subjectID,
		LogScheduleID:  scheduleID,
		LogDate:        &date,
		LogRemarks:     "Exemption: " + reason,
		LogPerformedBy: adminID,
		LogIPAddress:   sourceIP,
	})

	return e, nil
}

// FindActive mengembalikan exemption subject-wide untuk tanggal itu kalau ada,
// kalau tidak exemption slot untuk scheduleID, kalau tidak nil. Caller yang
// mengecek scheduleID tertentu tetap kena exemption subject-wide.
func (s *ExemptionService) FindActive(subjectID int, date time.Time, scheduleID *int) (*model.ExemptionModel, error) {
	rows, err := s.Store.FindForDate(subjectID, date)
	if err != nil {
		return nil, err
	}

	var slotMatch *model.ExemptionModel
	for i := range rows {
		if rows[i].ExemptionScheduleID == nil {
			return &rows[i], nil
		}
		if scheduleID != nil && *rows[i].ExemptionScheduleID == *scheduleID && slotMatch == nil {
			slotMatch = &rows[i]
		}
	}
	return slotMatch, nil
}

// Delete menghapus exemption; entri audit "delete" ditulis (best-effort)
// sebelum barisnya hilang.
func (s *ExemptionService) Delete(id int, adminID int, sourceIP string) error {
	e, err := s.Store.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExemptionNotFound
		}
		return err
	}

	date := e.ExemptionDate
	s.Audit.Record(&logModel.AttendanceLogModel{
		LogAction:      constants.ActionDelete,
		LogSubjectID:   &e.ExemptionSubjectID,
		LogScheduleID:  e.ExemptionScheduleID,
		LogDate:        &date,
		LogRemarks:     "Deleted exemption: " + e.ExemptionReason,
		LogPerformedBy: adminID,
		LogIPAddress:   sourceIP,
	})

	return s.Store.Delete(id)
}
