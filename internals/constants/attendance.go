package constants

// Status kehadiran (enum kolom attendance_status).
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

var AttendanceStatuses = []string{StatusPresent, StatusAbsent, StatusLate}

func IsValidStatus(s string) bool {
	for _, v := range AttendanceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Aksi audit log (enum kolom log_action).
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExempt = "exempt"
)

var LogActions = []string{ActionCreate, ActionUpdate, ActionDelete, ActionExempt}

// Nama hari mengikuti time.Weekday().String() — jadwal disimpan
// dengan nama hari Gregorian, tanpa penyesuaian timezone.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func IsValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
