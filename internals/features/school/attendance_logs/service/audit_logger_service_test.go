package service

import (
	"errors"
	"strings"
	"testing"

	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
)

type memLogStore struct {
	entries []*logModel.AttendanceLogModel
	err     error
}

func (s *memLogStore) Append(e *logModel.AttendanceLogModel) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func TestRecordAppends(t *testing.T) {
	store := &memLogStore{}
	l := NewAuditLoggerWithStore(store)

	l.Record(&logModel.AttendanceLogModel{LogAction: "create"})

	if len(store.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(store.entries))
	}
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	l := NewAuditLoggerWithStore(&memLogStore{err: errors.New("disk full")})

	// tidak boleh panic atau mengembalikan error ke pemanggil
	l.Record(&logModel.AttendanceLogModel{LogAction: "update"})
}

func TestStatusChanges(t *testing.T) {
	payload := StatusChanges("absent", "present")
	if len(payload) == 0 {
		t.Fatal("payload should not be empty")
	}

	s := string(payload)
	if !strings.Contains(s, `"old_status":"absent"`) || !strings.Contains(s, `"new_status":"present"`) {
		t.Errorf("payload = %s", s)
	}
}
