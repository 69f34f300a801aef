package service

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
	"presensiku_backend/internals/features/school/attendance/model"
	exemptionModel "presensiku_backend/internals/features/school/exemptions/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
	subjectService "presensiku_backend/internals/features/school/subjects/service"
)

/* ===================== mocks ===================== */

type mockStudents struct {
	byNumber map[string]*studentModel.StudentModel
}

func (m *mockStudents) ByNumber(number string) (*studentModel.StudentModel, error) {
	if st, ok := m.byNumber[number]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockLedger struct {
	rows   []*model.AttendanceModel
	nextID int
}

func (m *mockLedger) Find(studentNumber string, subjectID, scheduleID int, date time.Time) (*model.AttendanceModel, error) {
	for _, r := range m.rows {
		if r.AttendanceStudentNumber == studentNumber &&
			r.AttendanceSubjectID == subjectID &&
			r.AttendanceScheduleID == scheduleID &&
			r.AttendanceDate.Equal(date) {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLedger) Create(rec *model.AttendanceModel) error {
	m.nextID++
	rec.AttendanceID = m.nextID
	m.rows = append(m.rows, rec)
	return nil
}

func (m *mockLedger) Update(rec *model.AttendanceModel) error {
	for i, r := range m.rows {
		if r.AttendanceID == rec.AttendanceID {
			m.rows[i] = rec
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockCatalog struct{ err error }

func (m *mockCatalog) IsDateScheduled(subjectID int, date time.Time, scheduleID int) error {
	return m.err
}

type mockExemptions struct {
	ex  *exemptionModel.ExemptionModel
	err error
}

func (m *mockExemptions) FindActive(subjectID int, date time.Time, scheduleID *int) (*exemptionModel.ExemptionModel, error) {
	return m.ex, m.err
}

type mockAudit struct {
	entries []*logModel.AttendanceLogModel
}

func (m *mockAudit) Record(e *logModel.AttendanceLogModel) {
	m.entries = append(m.entries, e)
}

func newTestService(students *mockStudents, ledger LedgerStore, catalog *mockCatalog, exemptions *mockExemptions, audit *mockAudit) *AttendanceService {
	return NewAttendanceService(students, ledger, catalog, exemptions, audit)
}

var testDate = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // Monday

func activeStudent(number string) *studentModel.StudentModel {
	return &studentModel.StudentModel{
		StudentNumber:   number,
		StudentName:     "Test Student",
		StudentIsActive: true,
	}
}

/* ===================== tests ===================== */

func TestMarkBatchRejectsUnscheduledDate(t *testing.T) {
	ledger := &mockLedger{}
	audit := &mockAudit{}
	svc := newTestService(
		&mockStudents{byNumber: map[string]*studentModel.StudentModel{}},
		ledger,
		&mockCatalog{err: subjectService.ErrScheduleMismatch},
		&mockExemptions{},
		audit,
	)

	outcomes, err := svc.MarkBatch(testDate, 1, 10, []MarkRecord{
		{StudentNumber: "12223MN-000540", Status: constants.StatusPresent},
	}, 0, "127.0.0.1")

	if !errors.Is(err, subjectService.ErrScheduleMismatch) {
		t.Fatalf("expected schedule mismatch, got %v", err)
	}
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(outcomes))
	}
	if len(ledger.rows) != 0 || len(audit.entries) != 0 {
		t.Fatal("nothing should be written when the date is not scheduled")
	}
}

func TestMarkBatchRejectsExemptedSession(t *testing.T) {
	ledger := &mockLedger{}
	svc := newTestService(
		&mockStudents{byNumber: map[string]*studentModel.StudentModel{
			"12223MN-000540": activeStudent("12223MN-000540"),
		}},
		ledger,
		&mockCatalog{},
		&mockExemptions{ex: &exemptionModel.ExemptionModel{
			ExemptionSubjectID: 1,
			ExemptionReason:    "Libur nasional",
		}},
		&mockAudit{},
	)

	_, err := svc.MarkBatch(testDate, 1, 10, []MarkRecord{
		{StudentNumber: "12223MN-000540", Status: constants.StatusPresent},
	}, 0, "127.0.0.1")

	var exempted *ExemptedError
	if !errors.As(err, &exempted) {
		t.Fatalf("expected ExemptedError, got %v", err)
	}
	if exempted.Reason != "Libur nasional" {
		t.Fatalf("unexpected reason %q", exempted.Reason)
	}
	if len(ledger.rows) != 0 {
		t.Fatal("exempted batch must not write to the ledger")
	}
}

func TestMarkBatchPartialFailure(t *testing.T) {
	ledger := &mockLedger{}
	audit := &mockAudit{}
	svc := newTestService(
		&mockStudents{byNumber: map[string]*studentModel.StudentModel{
			"12223MN-000540": activeStudent("12223MN-000540"),
			"12223MN-000541": activeStudent("12223MN-000541"),
		}},
		ledger,
		&mockCatalog{},
		&mockExemptions{},
		audit,
	)

	outcomes, err := svc.MarkBatch(testDate, 1, 10, []MarkRecord{
		{StudentNumber: "12223MN-000540", Status: constants.StatusPresent},
		{StudentNumber: "99999ZZ-999999", Status: constants.StatusAbsent},
		{StudentNumber: "12223MN-000541", Status: constants.StatusLate},
	}, 0, "127.0.0.1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	if outcomes[0].Status != "created" || outcomes[0].Message != "Attendance recorded" {
		t.Errorf("outcome[0] = %+v", outcomes[0])
	}
	if outcomes[1].Status != "error" || outcomes[1].Message != "Student not found" {
		t.Errorf("outcome[1] = %+v", outcomes[1])
	}
	if outcomes[2].Status != "created" {
		t.Errorf("outcome[2] = %+v", outcomes[2])
	}

	if len(ledger.rows) != 2 {
		t.Fatalf("expected 2 ledger rows, got %d", len(ledger.rows))
	}
	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audit.entries))
	}
	for _, e := range audit.entries {
		if e.LogAction != constants.ActionCreate {
			t.Errorf("expected create action, got %q", e.LogAction)
		}
	}
}

func TestMarkBatchIdempotentRemark(t *testing.T) {
	ledger := &mockLedger{}
	audit := &mockAudit{}
	svc := newTestService(
		&mockStudents{byNumber: map[string]*studentModel.StudentModel{
			"12223MN-000540": activeStudent("12223MN-000540"),
		}},
		ledger,
		&mockCatalog{},
		&mockExemptions{},
		audit,
	)

	first, err := svc.MarkBatch(testDate, 1, 10, []MarkRecord{
		{StudentNumber: "12223MN-000540", Status: constants.StatusAbsent},
	}, 0, "127.0.0.1")
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if first[0].Status != "created" {
		t.Fatalf("first mark should create, got %+v", first[0])
	}

	second, err := svc.MarkBatch(testDate, 1, 10, []MarkRecord{
		{StudentNumber: "12223MN-000540", Status: constants.StatusPresent, Remarks: "koreksi"},
	}, 2, "127.0.0.1")
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if second[0].Status != "updated" || second[0].Message != "Attendance updated" {
		t.Fatalf("second mark should update, got %+v", second[0])
	}

	if len(ledger.rows) != 1 {
		t.Fatalf("re-marking must overwrite, got %d rows", len(ledger.rows))
	}
	row := ledger.rows[0]
	if row.AttendanceStatus != constants.StatusPresent || row.AttendanceRemarks != "koreksi" || row.AttendanceMarkedBy != 2 {
		t.Fatalf("row not overwritten: %+v", row)
	}

	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audit.entries))
	}
	upd := audit.entries[1]
	if upd.LogAction != constants.ActionUpdate {
		t.Fatalf("expected update action, got %q", upd.LogAction)
	}
	if upd.LogOldStatus == nil || *upd.LogOldStatus != constants.StatusAbsent {
		t.Errorf("old status not captured: %v", upd.LogOldStatus)
	}
	if upd.LogNewStatus == nil || *upd.LogNewStatus != constants.StatusPresent {
		t.Errorf("new status not captured: %v", upd.LogNewStatus)
	}
	if len(upd.LogChanges) == 0 {
		t.Error("update entry should carry a changes payload")
	}
}

func TestMarkBatchStopsOnStoreError(t *testing.T) {
	boom := errors.New("connection lost")
	svc := newTestService(
		&mockStudents{byNumber: map[string]*studentModel.StudentModel{
			"12223MN-000540": activeStudent("12223MN-000540"),
		}},
		&failingLedger{err: boom},
		&mockCatalog{},
		&mockExemptions{},
		&mockAudit{},
	)

	_, err := svc.MarkBatch(testDate, 1, 10, []MarkRecord{
		{StudentNumber: "12223MN-000540", Status: constants.StatusPresent},
	}, 0, "127.0.0.1")
	if !errors.Is(err, boom) {
		t.Fatalf("store errors must abort the batch, got %v", err)
	}
}

type failingLedger struct{ err error }

func (f *failingLedger) Find(string, int, int, time.Time) (*model.AttendanceModel, error) {
	return nil, f.err
}
func (f *failingLedger) Create(*model.AttendanceModel) error { return f.err }
func (f *failingLedger) Update(*model.AttendanceModel) error { return f.err }
