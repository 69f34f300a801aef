package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"

	"presensiku_backend/internals/features/school/attendance/dto"
	attendanceRepo "presensiku_backend/internals/features/school/attendance/repository"
	"presensiku_backend/internals/features/school/attendance/service"
	logService "presensiku_backend/internals/features/school/attendance_logs/service"
	exemptionRepo "presensiku_backend/internals/features/school/exemptions/repository"
	exemptionService "presensiku_backend/internals/features/school/exemptions/service"
	subjectRepo "presensiku_backend/internals/features/school/subjects/repository"
	subjectService "presensiku_backend/internals/features/school/subjects/service"
)

type AttendanceController struct {
	DB       *gorm.DB
	Service  *service.AttendanceService
	validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	catalogStore := subjectRepo.NewScheduleGormStore(db)
	audit := logService.NewAuditLogger(db)

	svc := service.NewAttendanceService(
		attendanceRepo.NewStudentGormStore(db),
		attendanceRepo.NewLedgerGormStore(db),
		subjectService.NewScheduleCatalogService(catalogStore),
		exemptionService.NewExemptionService(exemptionRepo.NewExemptionGormStore(db), catalogStore, audit),
		audit,
	)

	return &AttendanceController{DB: db, Service: svc, validate: helper.NewValidator()}
}

/* ===================== MARK (BATCH) ===================== */
// POST /api/attendance/mark
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return err
	}

	records := make([]service.MarkRecord, 0, len(req.AttendanceRecords))
	for _, r := range req.AttendanceRecords {
		records = append(records, service.MarkRecord{
			StudentNumber: r.StudentNumber,
			Status:        r.Status,
			Remarks:       r.Remarks,
		})
	}

	outcomes, err := ctrl.Service.MarkBatch(date, req.SubjectID, req.ScheduleID, records, adminID, helperAuth.GetClientIP(c))
	if err != nil {
		var exempted *service.ExemptedError
		switch {
		case errors.As(err, &exempted):
			return helper.Error(c, fiber.StatusConflict, exempted.Error())
		case errors.Is(err, subjectService.ErrScheduleMismatch):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, subjectService.ErrSubjectNotFound),
			errors.Is(err, subjectService.ErrScheduleNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses absensi")
	}

	return helper.JsonOK(c, "Attendance processed successfully", fiber.Map{
		"results": outcomes,
	})
}

/* ===================== CLASS VIEW ===================== */
// GET /api/attendance/class?date=YYYY-MM-DD&subjectId=N
func (ctrl *AttendanceController) GetClassAttendance(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	subjectID := c.QueryInt("subjectId")
	if dateStr == "" || subjectID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "date dan subjectId wajib diisi")
	}

	date, err := helper.ParseDate(dateStr)
	if err != nil {
		return err
	}

	type row struct {
		AttendanceID            int       `gorm:"column:attendance_id"`
		AttendanceStudentNumber string    `gorm:"column:attendance_student_number"`
		StudentName             string    `gorm:"column:student_name"`
		StudentSection          string    `gorm:"column:student_section"`
		AttendanceSubjectID     int       `gorm:"column:attendance_subject_id"`
		AttendanceScheduleID    int       `gorm:"column:attendance_schedule_id"`
		AttendanceDate          time.Time `gorm:"column:attendance_date"`
		AttendanceStatus        string    `gorm:"column:attendance_status"`
		AttendanceRemarks       string    `gorm:"column:attendance_remarks"`
		AttendanceMarkedBy      int       `gorm:"column:attendance_marked_by"`
	}

	var rows []row
	if err := ctrl.DB.Table("attendance").
		Select("attendance.*, students.student_name, students.student_section").
		Joins("JOIN students ON students.student_number = attendance.attendance_student_number").
		Where("attendance_date = ? AND attendance_subject_id = ?", date, subjectID).
		Order("students.student_name ASC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi kelas")
	}

	out := make([]dto.ClassAttendanceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ClassAttendanceRow{
			AttendanceID:   r.AttendanceID,
			StudentNumber:  r.AttendanceStudentNumber,
			StudentName:    r.StudentName,
			StudentSection: r.StudentSection,
			SubjectID:      r.AttendanceSubjectID,
			ScheduleID:     r.AttendanceScheduleID,
			Date:           helper.FormatDate(r.AttendanceDate),
			Status:         r.AttendanceStatus,
			Remarks:        r.AttendanceRemarks,
			MarkedBy:       r.AttendanceMarkedBy,
		})
	}

	return helper.JsonOK(c, "OK", out)
}
