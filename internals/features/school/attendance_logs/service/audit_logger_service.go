package service

import (
	"log"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
)

type LogStore interface {
	Append(e *logModel.AttendanceLogModel) error
}

type gormLogStore struct{ db *gorm.DB }

func (s *gormLogStore) Append(e *logModel.AttendanceLogModel) error {
	return s.db.Create(e).Error
}

// AuditLogger menulis jejak audit untuk setiap mutasi ledger/exemption.
// Penulisan best-effort: kegagalan dicatat ke log server dan TIDAK PERNAH
// membatalkan mutasi utamanya.
type AuditLogger struct {
	Store LogStore
}

func NewAuditLogger(db *gorm.DB) *AuditLogger {
	return &AuditLogger{Store: &gormLogStore{db: db}}
}

func NewAuditLoggerWithStore(store LogStore) *AuditLogger {
	return &AuditLogger{Store: store}
}

func (l *AuditLogger) Record(e *logModel.AttendanceLogModel) {
	if err := l.Store.Append(e); err != nil {
		log.Printf("[WARN] gagal menulis attendance log (action=%s): %v", e.LogAction, err)
	}
}

// StatusChanges membungkus perubahan status jadi payload JSON kolom log_changes.
func StatusChanges(oldStatus, newStatus string) datatypes.JSON {
	b, err := sonic.Marshal(map[string]string{
		"old_status": oldStatus,
		"new_status": newStatus,
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
