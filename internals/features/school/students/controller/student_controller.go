package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	aggService "presensiku_backend/internals/features/school/dashboard/service"
	"presensiku_backend/internals/features/school/students/dto"
	"presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, validate: helper.NewValidator()}
}

/* ===================== LIST ===================== */
// GET /api/students?section=&includeInactive=true
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.StudentModel{}).Order("student_name ASC")

	if !c.QueryBool("includeInactive") {
		q = q.Where("student_is_active = ?", true)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("student_section = ?", section)
	}

	var students []model.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data murid")
	}

	return helper.JsonOK(c, "OK", students)
}

/* ===================== DETAIL ===================== */
// GET /api/students/:number
func (ctrl *StudentController) GetStudentByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if !helper.IsValidStudentNumber(number) {
		return helper.Error(c, fiber.StatusBadRequest, "Format nomor induk tidak valid")
	}

	var student model.StudentModel
	if err := ctrl.DB.Where("student_number = ?", number).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data murid")
	}

	return helper.JsonOK(c, "OK", student)
}

/* ===================== ATTENDANCE HISTORY + STATS ===================== */
// GET /api/students/:number/attendance?range=all|week|month
func (ctrl *StudentController) GetStudentAttendance(c *fiber.Ctx) error {
	number := c.Params("number")
	if !helper.IsValidStudentNumber(number) {
		return helper.Error(c, fiber.StatusBadRequest, "Format nomor induk tidak valid")
	}

	var student model.StudentModel
	if err := ctrl.DB.Where("student_number = ?", number).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data murid")
	}

	q := ctrl.DB.Table("attendance").
		Select("attendance.*, subjects.subject_code, subjects.subject_name").
		Joins("JOIN subjects ON subjects.subject_id = attendance.attendance_subject_id").
		Where("attendance_student_number = ?", number).
		Order("attendance_date DESC, attendance_id DESC")

	switch c.Query("range", "all") {
	case "all":
		// tanpa batas tanggal
	case "week":
		q = q.Where("attendance_date >= ?", startOfRange(7))
	case "month":
		q = q.Where("attendance_date >= ?", startOfRange(30))
	default:
		return helper.Error(c, fiber.StatusBadRequest, "range harus all, week, atau month")
	}

	type row struct {
		AttendanceID            int       `gorm:"column:attendance_id"`
		AttendanceSubjectID     int       `gorm:"column:attendance_subject_id"`
		SubjectCode             string    `gorm:"column:subject_code"`
		SubjectName             string    `gorm:"column:subject_name"`
		AttendanceScheduleID    int       `gorm:"column:attendance_schedule_id"`
		AttendanceDate          time.Time `gorm:"column:attendance_date"`
		AttendanceStatus        string    `gorm:"column:attendance_status"`
		AttendanceRemarks       string    `gorm:"column:attendance_remarks"`
		AttendanceStudentNumber string    `gorm:"column:attendance_student_number"`
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat absensi")
	}

	history := make([]dto.StudentAttendanceHistoryRow, 0, len(rows))
	stats := dto.StudentAttendanceStats{}
	for _, r := range rows {
		history = append(history, dto.StudentAttendanceHistoryRow{
			AttendanceID: r.AttendanceID,
			SubjectID:    r.AttendanceSubjectID,
			SubjectCode:  r.SubjectCode,
			SubjectName:  r.SubjectName,
			ScheduleID:   r.AttendanceScheduleID,
			Date:         helper.FormatDate(r.AttendanceDate),
			Status:       r.AttendanceStatus,
			Remarks:      r.AttendanceRemarks,
		})

		stats.Total++
		switch r.AttendanceStatus {
		case constants.StatusPresent:
			stats.Present++
		case constants.StatusAbsent:
			stats.Absent++
		case constants.StatusLate:
			stats.Late++
		}
	}
	stats.PresentRate = aggService.Rate(stats.Present, stats.Total)
	stats.AbsentRate = aggService.Rate(stats.Absent, stats.Total)
	stats.LateRate = aggService.Rate(stats.Late, stats.Total)

	return helper.JsonOK(c, "OK", fiber.Map{
		"student": student,
		"history": history,
		"stats":   stats,
	})
}

// startOfRange: tanggal mulai inklusif untuk N hari kalender terakhir (UTC).
func startOfRange(days int) time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(days - 1))
}

/* ===================== CREATE ===================== */
// POST /api/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := model.StudentModel{
		StudentNumber:    req.StudentNumber,
		StudentName:      req.Name,
		StudentSection:   req.Section,
		StudentYearLevel: req.YearLevel,
		StudentIsActive:  true,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Nomor induk sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data murid")
	}

	return helper.JsonCreated(c, "Student created successfully", student)
}

/* ===================== UPDATE ===================== */
// PUT /api/students/:number
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	number := c.Params("number")
	if !helper.IsValidStudentNumber(number) {
		return helper.Error(c, fiber.StatusBadRequest, "Format nomor induk tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.Where("student_number = ?", number).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data murid")
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["student_name"] = *req.Name
	}
	if req.Section != nil {
		updates["student_section"] = *req.Section
	}
	if req.YearLevel != nil {
		updates["student_year_level"] = *req.YearLevel
	}
	if req.IsActive != nil {
		updates["student_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&student).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data murid")
	}

	return helper.JsonOK(c, "Student updated successfully", student)
}

/* ===================== DEACTIVATE ===================== */
// DELETE /api/students/:number — soft: set student_is_active = false.
func (ctrl *StudentController) DeactivateStudent(c *fiber.Ctx) error {
	number := c.Params("number")
	if !helper.IsValidStudentNumber(number) {
		return helper.Error(c, fiber.StatusBadRequest, "Format nomor induk tidak valid")
	}

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_number = ?", number).
		Update("student_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan murid")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonOK(c, "Student deactivated successfully", nil)
}
