package service

import (
	"math"
	"sort"
	"time"

	"presensiku_backend/internals/constants"
	attendanceModel "presensiku_backend/internals/features/school/attendance/model"
	"presensiku_backend/internals/features/school/dashboard/dto"
	studentModel "presensiku_backend/internals/features/school/students/model"
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
)

type LedgerScanner interface {
	ScanRange(start, end time.Time) ([]attendanceModel.AttendanceModel, error)
	ScanDate(date time.Time) ([]attendanceModel.AttendanceModel, error)
}

type ReferenceStore interface {
	StudentsByNumbers(numbers []string) (map[string]studentModel.StudentModel, error)
	SubjectsByIDs(ids []int) (map[int]subjectModel.SubjectModel, error)
}

// AggregationService — statistik read-only di atas ledger. Tiap rollup adalah
// scan terpisah: baris yang masuk di antara dua scan bisa muncul di satu
// rollup dan tidak di rollup lain. Itu kontrak konsistensi dashboard (eventual),
// bukan bug — jangan "diperbaiki" dengan lock global.
type AggregationService struct {
	Ledger LedgerScanner
	Refs   ReferenceStore

	// Now dipakai Trend; bisa dioverride di test.
	Now func() time.Time
}

func NewAggregationService(ledger LedgerScanner, refs ReferenceStore) *AggregationService {
	return &AggregationService{Ledger: ledger, Refs: refs, Now: time.Now}
}

// Round2 membulatkan ke 2 desimal.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rate = part/total*100, 2 desimal; 0 saat total 0 (tidak pernah bagi nol).
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}

func accumulate(block *dto.RateBlock, status string) {
	block.Total++
	switch status {
	case constants.StatusPresent:
		block.Present++
	case constants.StatusAbsent:
		block.Absent++
	case constants.StatusLate:
		block.Late++
	}
}

func finishRates(block *dto.RateBlock) {
	block.PresentRate = Rate(block.Present, block.Total)
	block.AbsentRate = Rate(block.Absent, block.Total)
	block.LateRate = Rate(block.Late, block.Total)
}

// Summarize menghitung overall + rollup per murid + rollup per subject untuk
// rentang tanggal inklusif [start, end].
func (s *AggregationService) Summarize(start, end time.Time) (*dto.Summary, error) {
	summary := &dto.Summary{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	// --- overall ---
	rows, err := s.Ledger.ScanRange(start, end)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		accumulate(&summary.Overall, rows[i].AttendanceStatus)
	}
	finishRates(&summary.Overall)

	// --- rollup per murid (scan tersendiri) ---
	rows, err = s.Ledger.ScanRange(start, end)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[string]*dto.StudentRollup)
	var studentOrder []string
	for i := range rows {
		num := rows[i].AttendanceStudentNumber
		r, ok := byStudent[num]
		if !ok {
			r = &dto.StudentRollup{StudentNumber: num}
			byStudent[num] = r
			studentOrder = append(studentOrder, num)
		}
		accumulate(&r.RateBlock, rows[i].AttendanceStatus)
	}

	students, err := s.Refs.StudentsByNumbers(studentOrder)
	if err != nil {
		return nil, err
	}
	summary.Students = make([]dto.StudentRollup, 0, len(studentOrder))
	for _, num := range studentOrder {
		r := byStudent[num]
		finishRates(&r.RateBlock)
		if st, ok := students[num]; ok {
			r.StudentName = st.StudentName
			r.StudentSection = st.StudentSection
		}
		summary.Students = append(summary.Students, *r)
	}

	summary.ByPresentRate = extremes(summary.Students, func(r dto.StudentRollup) float64 { return r.PresentRate })
	summary.ByAbsentRate = extremes(summary.Students, func(r dto.StudentRollup) float64 { return r.AbsentRate })
	summary.ByLateRate = extremes(summary.Students, func(r dto.StudentRollup) float64 { return r.LateRate })

	// --- rollup per subject (scan tersendiri) ---
	rows, err = s.Ledger.ScanRange(start, end)
	if err != nil {
		return nil, err
	}
	bySubject := make(map[int]*dto.SubjectRollup)
	var subjectOrder []int
	for i := range rows {
		id := rows[i].AttendanceSubjectID
		r, ok := bySubject[id]
		if !ok {
			r = &dto.SubjectRollup{SubjectID: id}
			bySubject[id] = r
			subjectOrder = append(subjectOrder, id)
		}
		accumulate(&r.RateBlock, rows[i].AttendanceStatus)
	}

	subjects, err := s.Refs.SubjectsByIDs(subjectOrder)
	if err != nil {
		return nil, err
	}
	summary.Subjects = make([]dto.SubjectRollup, 0, len(subjectOrder))
	for _, id := range subjectOrder {
		r := bySubject[id]
		finishRates(&r.RateBlock)
		if sub, ok := subjects[id]; ok {
			r.SubjectCode = sub.SubjectCode
			r.SubjectName = sub.SubjectName
			r.SubjectRoom = sub.SubjectRoom
			r.Schedules = sub.SubjectSchedules
		}
		summary.Subjects = append(summary.Subjects, *r)
	}

	return summary, nil
}

// extremes: top-3/bottom-3 dengan sort stabil — seri mengikuti urutan scan,
// tanpa secondary key.
func extremes(students []dto.StudentRollup, rate func(dto.StudentRollup) float64) dto.RateExtremes {
	top := make([]dto.StudentRollup, len(students))
	copy(top, students)
	sort.SliceStable(top, func(i, j int) bool { return rate(top[i]) > rate(top[j]) })

	bottom := make([]dto.StudentRollup, len(students))
	copy(bottom, students)
	sort.SliceStable(bottom, func(i, j int) bool { return rate(bottom[i]) < rate(bottom[j]) })

	return dto.RateExtremes{Top: firstN(top, 3), Bottom: firstN(bottom, 3)}
}

func firstN(rs []dto.StudentRollup, n int) []dto.StudentRollup {
	if len(rs) < n {
		n = len(rs)
	}
	out := make([]dto.StudentRollup, n)
	copy(out, rs[:n])
	return out
}

// Trend menghitung total & present per hari untuk N hari kalender terakhir,
// urut dari yang paling lama.
func (s *AggregationService) Trend(lastNDays int) ([]dto.TrendPoint, error) {
	if lastNDays <= 0 {
		lastNDays = 7
	}

	now := s.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]dto.TrendPoint, 0, lastNDays)
	for i := lastNDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		rows, err := s.Ledger.ScanDate(day)
		if err != nil {
			return nil, err
		}

		p := dto.TrendPoint{Date: day.Format("2006-01-02")}
		for j := range rows {
			p.Total++
			if rows[j].AttendanceStatus == constants.StatusPresent {
				p.Present++
			}
		}
		p.Rate = Rate(p.Present, p.Total)
		points = append(points, p)
	}

	return points, nil
}
