package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
	logService "presensiku_backend/internals/features/school/attendance_logs/service"
	"presensiku_backend/internals/features/school/attendance/model"
	exemptionModel "presensiku_backend/internals/features/school/exemptions/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
)

// ExemptedError: ada exemption aktif untuk sesi ini; seluruh batch ditolak,
// caller yang memutuskan mau override (hapus exemption dulu) atau tidak.
type ExemptedError struct {
	Reason string
}

func (e *ExemptedError) Error() string {
	return fmt.Sprintf("absensi diliburkan untuk tanggal ini: %s", e.Reason)
}

type MarkRecord struct {
	StudentNumber string
	Status        string
	Remarks       string
}

// Outcome per record batch: created | updated | error.
type Outcome struct {
	StudentNumber string `json:"studentNumber"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type StudentStore interface {
	ByNumber(number string) (*studentModel.StudentModel, error)
}

type LedgerStore interface {
	Find(studentNumber string, subjectID, scheduleID int, date time.Time) (*model.AttendanceModel, error)
	Create(rec *model.AttendanceModel) error
	Update(rec *model.AttendanceModel) error
}

type ScheduleChecker interface {
	IsDateScheduled(subjectID int, date time.Time, scheduleID int) error
}

type ExemptionFinder interface {
	FindActive(subjectID int, date time.Time, scheduleID *int) (*exemptionModel.ExemptionModel, error)
}

type AuditLogger interface {
	Record(e *logModel.AttendanceLogModel)
}

// AttendanceService — aturan penandaan kehadiran. Satu tuple
// (student, subject, schedule, date) punya maksimal satu baris ledger;
// penandaan ulang menimpa baris yang sama (idempotent per tuple).
type AttendanceService struct {
	Students   StudentStore
	Ledger     LedgerStore
	Catalog    ScheduleChecker
	Exemptions ExemptionFinder
	Audit      AuditLogger
}

func NewAttendanceService(students StudentStore, ledger LedgerStore, catalog ScheduleChecker, exemptions ExemptionFinder, audit AuditLogger) *AttendanceService {
	return &AttendanceService{
		Students:   students,
		Ledger:     ledger,
		Catalog:    catalog,
		Exemptions: exemptions,
		Audit:      audit,
	}
}

// MarkBatch memproses satu sesi kelas:
//  1. gate jadwal — sekali per batch, karena schedule invariant untuk batch;
//  2. gate exemption — exemption aktif menolak seluruh batch;
//  3. per record independen: murid tidak ketemu jadi Outcome "error" tanpa
//     menghentikan sisanya; baris yang sudah ada ditimpa (updated), yang
//     belum dibuat (created); tiap tulisan diikuti entri audit.
//
// Tidak ada transaksi lintas record: tiap tulisan sudah durable saat
// Outcome-nya keluar.
func (s *AttendanceService) MarkBatch(date time.Time, subjectID, scheduleID int, records []MarkRecord, adminID int, sourceIP string) ([]Outcome, error) {
	if err := s.Catalog.IsDateScheduled(subjectID, date, scheduleID); err != nil {
		return nil, err
	}

	ex, err := s.Exemptions.FindActive(subjectID, date, &scheduleID)
	if err != nil {
		return nil, err
	}
	if ex != nil {
		return nil, &ExemptedError{Reason: ex.ExemptionReason}
	}

	outcomes := make([]Outcome, 0, len(records))
	for _, rec := range records {
		student, err := s.Students.ByNumber(rec.StudentNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcomes = append(outcomes, Outcome{
					StudentNumber: rec.StudentNumber,
					Status:        "error",
					Message:       "Student not found",
				})
				continue
			}
			return outcomes, err
		}

		existing, err := s.Ledger.Find(student.StudentNumber, subjectID, scheduleID, date)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return outcomes, err
		}

		if existing != nil {
			oldStatus := existing.AttendanceStatus
			existing.AttendanceStatus = rec.Status
			existing.AttendanceRemarks = rec.Remarks
			existing.AttendanceMarkedBy = adminID
			if err := s.Ledger.Update(existing); err != nil {
				return outcomes, err
			}

			s.recordAudit(constants.ActionUpdate, student.StudentNumber, subjectID, scheduleID, date, &oldStatus, &rec.Status, rec.Remarks, adminID, sourceIP)
			outcomes = append(outcomes, Outcome{
				StudentNumber: rec.StudentNumber,
				Status:        "updated",
				Message:       "Attendance updated",
			})
			continue
		}

		newRec := &model.AttendanceModel{
			AttendanceStudentNumber: student.StudentNumber,
			AttendanceSubjectID:     subjectID,
			AttendanceScheduleID:    scheduleID,
			AttendanceDate:          date,
			AttendanceStatus:        rec.Status,
			AttendanceRemarks:       rec.Remarks,
			AttendanceMarkedBy:      adminID,
		}
		if err := s.Ledger.Create(newRec); err != nil {
			return outcomes, err
		}

		s.recordAudit(constants.ActionCreate, student.StudentNumber, subjectID, scheduleID, date, nil, &rec.Status, rec.Remarks, adminID, sourceIP)
		outcomes = append(outcomes, Outcome{
			StudentNumber: rec.StudentNumber,
			Status:        "created",
			Message:       "Attendance recorded",
		})
	}

	return outcomes, nil
}

func (s *AttendanceService) recordAudit(action, studentNumber string, subjectID, scheduleID int, date time.Time, oldStatus, newStatus *string, remarks string, adminID int, sourceIP string) {
	entry := &logModel.AttendanceLogModel{
		LogAction:        action,
		LogStudentNumber: &studentNumber,
		LogSubjectID:     &subjectID,
		LogScheduleID:    &scheduleID,
		LogDate:          &date,
		LogOldStatus:     oldStatus,
		LogNewStatus:     newStatus,
		LogRemarks:       remarks,
		LogPerformedBy:   adminID,
		LogIPAddress:     sourceIP,
	}
	if oldStatus != nil && newStatus != nil {
		entry.LogChanges = logService.StatusChanges(*oldStatus, *newStatus)
	}
	s.Audit.Record(entry)
}
