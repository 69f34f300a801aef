package service

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
	"presensiku_backend/internals/features/school/exemptions/model"
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
	subjectService "presensiku_backend/internals/features/school/subjects/service"
)

/* ===================== mocks ===================== */

type mockExemptionStore struct {
	rows    []model.ExemptionModel
	nextID  int
	deleted []int
}

func sameDate(a, b time.Time) bool { return a.Equal(b) }

func (m *mockExemptionStore) FindForDate(subjectID int, date time.Time) ([]model.ExemptionModel, error) {
	var out []model.ExemptionModel
	for _, r := range m.rows {
		if r.ExemptionSubjectID == subjectID && sameDate(r.ExemptionDate, date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockExemptionStore) FindExact(subjectID int, scheduleID *int, date time.Time) (*model.ExemptionModel, error) {
	for i, r := range m.rows {
		if r.ExemptionSubjectID != subjectID || !sameDate(r.ExemptionDate, date) {
			continue
		}
		if scheduleID == nil && r.ExemptionScheduleID == nil {
			return &m.rows[i], nil
		}
		if scheduleID != nil && r.ExemptionScheduleID != nil && *scheduleID == *r.ExemptionScheduleID {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExemptionStore) Create(e *model.ExemptionModel) error {
	m.nextID++
	e.ExemptionID = m.nextID
	m.rows = append(m.rows, *e)
	return nil
}

func (m *mockExemptionStore) ByID(id int) (*model.ExemptionModel, error) {
	for i, r := range m.rows {
		if r.ExemptionID == id {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExemptionStore) Delete(id int) error {
	m.deleted = append(m.deleted, id)
	for i, r := range m.rows {
		if r.ExemptionID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockCatalogStore struct {
	subjects  map[int]*subjectModel.SubjectModel
	schedules map[int]*subjectModel.SubjectScheduleModel
}

func (m *mockCatalogStore) SubjectByID(id int) (*subjectModel.SubjectModel, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogStore) ScheduleByID(id int) (*subjectModel.SubjectScheduleModel, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockAudit struct {
	entries []*logModel.AttendanceLogModel
}

func (m *mockAudit) Record(e *logModel.AttendanceLogModel) {
	m.entries = append(m.entries, e)
}

var testDate = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func newTestCatalog() *mockCatalogStore {
	return &mockCatalogStore{
		subjects: map[int]*subjectModel.SubjectModel{
			1: {SubjectID: 1, SubjectCode: "MOC"},
		},
		schedules: map[int]*subjectModel.SubjectScheduleModel{
			10: {SubjectScheduleID: 10, SubjectScheduleSubjectID: 1, SubjectScheduleDayOfWeek: "Monday"},
			20: {SubjectScheduleID: 20, SubjectScheduleSubjectID: 2, SubjectScheduleDayOfWeek: "Monday"},
		},
	}
}

func intPtr(v int) *int { return &v }

/* ===================== tests ===================== */

func TestCreateExemptionRejectsDuplicate(t *testing.T) {
	store := &mockExemptionStore{}
	svc := NewExemptionService(store, newTestCatalog(), &mockAudit{})

	if _, err := svc.Create(1, nil, testDate, "Libur", 0, "127.0.0.1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(1, nil, testDate, "Libur lagi", 0, "127.0.0.1"); !errors.Is(err, ErrDuplicateExemption) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCreateExemptionSubjectWideAndSlotCanCoexist(t *testing.T) {
	store := &mockExemptionStore{}
	svc := NewExemptionService(store, newTestCatalog(), &mockAudit{})

	if _, err := svc.Create(1, nil, testDate, "Libur", 0, "127.0.0.1"); err != nil {
		t.Fatalf("subject-wide: %v", err)
	}
	if _, err := svc.Create(1, intPtr(10), testDate, "Slot sore saja", 0, "127.0.0.1"); err != nil {
		t.Fatalf("slot-specific should not clash with subject-wide: %v", err)
	}
	if len(store.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(store.rows))
	}
}

// dua request bersamaan bisa lolos cek FindExact dan sama-sama sampai ke
// INSERT; yang kalah kena unique index dan harus tetap jadi duplicate, bukan 500
type racingExemptionStore struct {
	mockExemptionStore
}

func (m *racingExemptionStore) Create(e *model.ExemptionModel) error {
	return gorm.ErrDuplicatedKey
}

func TestCreateExemptionMapsUniqueIndexViolation(t *testing.T) {
	svc := NewExemptionService(&racingExemptionStore{}, newTestCatalog(), &mockAudit{})

	if _, err := svc.Create(1, nil, testDate, "Libur", 0, "127.0.0.1"); !errors.Is(err, ErrDuplicateExemption) {
		t.Fatalf("unique index violation must map to duplicate, got %v", err)
	}
}

func TestCreateExemptionValidatesReferences(t *testing.T) {
	svc := NewExemptionService(&mockExemptionStore{}, newTestCatalog(), &mockAudit{})

	if _, err := svc.Create(99, nil, testDate, "x", 0, ""); !errors.Is(err, subjectService.ErrSubjectNotFound) {
		t.Fatalf("unknown subject: got %v", err)
	}
	if _, err := svc.Create(1, intPtr(999), testDate, "x", 0, ""); !errors.Is(err, subjectService.ErrScheduleNotFound) {
		t.Fatalf("unknown schedule: got %v", err)
	}
	// schedule 20 milik subject 2, bukan subject 1
	if _, err := svc.Create(1, intPtr(20), testDate, "x", 0, ""); !errors.Is(err, subjectService.ErrScheduleNotFound) {
		t.Fatalf("foreign schedule: got %v", err)
	}
}

func TestCreateExemptionWritesAuditEntry(t *testing.T) {
	audit := &mockAudit{}
	svc := NewExemptionService(&mockExemptionStore{}, newTestCatalog(), audit)

	if _, err := svc.Create(1, intPtr(10), testDate, "Ujian dibatalkan", 7, "10.0.0.1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	e := audit.entries[0]
	if e.LogAction != constants.ActionExempt {
		t.Errorf("action = %q", e.LogAction)
	}
	if e.LogRemarks != "Exemption: Ujian dibatalkan" {
		t.Errorf("remarks = %q", e.LogRemarks)
	}
	if e.LogPerformedBy != 7 || e.LogIPAddress != "10.0.0.1" {
		t.Errorf("actor not recorded: %+v", e)
	}
}

func TestFindActiveSubjectWideWins(t *testing.T) {
	store := &mockExemptionStore{rows: []model.ExemptionModel{
		{ExemptionID: 1, ExemptionSubjectID: 1, ExemptionScheduleID: intPtr(10), ExemptionDate: testDate, ExemptionReason: "slot"},
		{ExemptionID: 2, ExemptionSubjectID: 1, ExemptionScheduleID: nil, ExemptionDate: testDate, ExemptionReason: "subject-wide"},
	}}
	svc := NewExemptionService(store, newTestCatalog(), &mockAudit{})

	got, err := svc.FindActive(1, testDate, intPtr(10))
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if got == nil || got.ExemptionReason != "subject-wide" {
		t.Fatalf("subject-wide should win, got %+v", got)
	}
}

func TestFindActiveSlotMatch(t *testing.T) {
	store := &mockExemptionStore{rows: []model.ExemptionModel{
		{ExemptionID: 1, ExemptionSubjectID: 1, ExemptionScheduleID: intPtr(10), ExemptionDate: testDate, ExemptionReason: "slot 10"},
		{ExemptionID: 2, ExemptionSubjectID: 1, ExemptionScheduleID: intPtr(11), ExemptionDate: testDate, ExemptionReason: "slot 11"},
	}}
	svc := NewExemptionService(store, newTestCatalog(), &mockAudit{})

	got, err := svc.FindActive(1, testDate, intPtr(11))
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if got == nil || got.ExemptionReason != "slot 11" {
		t.Fatalf("expected slot 11 match, got %+v", got)
	}

	// tanpa scheduleID, slot-specific tidak ikut
	got, err = svc.FindActive(1, testDate, nil)
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for subject-wide query, got %+v", got)
	}
}

func TestDeleteExemptionLogsBeforeRemoval(t *testing.T) {
	store := &mockExemptionStore{rows: []model.ExemptionModel{
		{ExemptionID: 5, ExemptionSubjectID: 1, ExemptionDate: testDate, ExemptionReason: "Libur"},
	}}
	store.nextID = 5
	audit := &mockAudit{}
	svc := NewExemptionService(store, newTestCatalog(), audit)

	if err := svc.Delete(5, 0, "127.0.0.1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(store.rows) != 0 {
		t.Fatal("row should be gone")
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	e := audit.entries[0]
	if e.LogAction != constants.ActionDelete {
		t.Errorf("action = %q", e.LogAction)
	}
	if e.LogRemarks != "Deleted exemption: Libur" {
		t.Errorf("remarks = %q", e.LogRemarks)
	}
}

func TestDeleteExemptionNotFound(t *testing.T) {
	svc := NewExemptionService(&mockExemptionStore{}, newTestCatalog(), &mockAudit{})

	if err := svc.Delete(404, 0, ""); !errors.Is(err, ErrExemptionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
