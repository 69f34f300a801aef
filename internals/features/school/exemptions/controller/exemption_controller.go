package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"

	logService "presensiku_backend/internals/features/school/attendance_logs/service"
	"presensiku_backend/internals/features/school/exemptions/dto"
	exemptionRepo "presensiku_backend/internals/features/school/exemptions/repository"
	"presensiku_backend/internals/features/school/exemptions/service"
	subjectRepo "presensiku_backend/internals/features/school/subjects/repository"
	subjectService "presensiku_backend/internals/features/school/subjects/service"
)

type ExemptionController struct {
	DB       *gorm.DB
	Service  *service.ExemptionService
	validate *validator.Validate
}

func NewExemptionController(db *gorm.DB) *ExemptionController {
	svc := service.NewExemptionService(
		exemptionRepo.NewExemptionGormStore(db),
		subjectRepo.NewScheduleGormStore(db),
		logService.NewAuditLogger(db),
	)
	return &ExemptionController{DB: db, Service: svc, validate: helper.NewValidator()}
}

/* ===================== CREATE ===================== */
// POST /api/exemptions
func (ctrl *ExemptionController) CreateExemption(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateExemptionRequest
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

	e, err := ctrl.Service.Create(req.SubjectID, req.ScheduleID, date, req.Reason, adminID, helperAuth.GetClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateExemption):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, subjectService.ErrSubjectNotFound),
			errors.Is(err, subjectService.ErrScheduleNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat exemption")
	}

	return helper.JsonCreated(c, "Exemption created successfully", dto.FromExemptionModel(*e))
}

/* ===================== LIST ===================== */
// GET /api/exemptions?subjectId=&startDate=&endDate=
func (ctrl *ExemptionController) GetExemptions(c *fiber.Ctx) error {
	type row struct {
		ExemptionID         int        `gorm:"column:exemption_id" json:"exemption_id"`
		ExemptionSubjectID  int        `gorm:"column:exemption_subject_id" json:"subject_id"`
		ExemptionScheduleID *int       `gorm:"column:exemption_schedule_id" json:"schedule_id,omitempty"`
		ExemptionDate       time.Time  `gorm:"column:exemption_date" json:"date"`
		ExemptionReason     string     `gorm:"column:exemption_reason" json:"reason"`
		ExemptionExemptedBy int        `gorm:"column:exemption_exempted_by" json:"exempted_by"`
		ExemptionCreatedAt  time.Time  `gorm:"column:exemption_created_at" json:"created_at"`
		SubjectCode         string     `gorm:"column:subject_code" json:"subject_code"`
		SubjectName         string     `gorm:"column:subject_name" json:"subject_name"`
		ScheduleDayOfWeek   *string    `gorm:"column:subject_schedule_day_of_week" json:"schedule_day_of_week,omitempty"`
		ScheduleStartTime   *string    `gorm:"column:subject_schedule_start_time" json:"schedule_start_time,omitempty"`
		ScheduleEndTime     *string    `gorm:"column:subject_schedule_end_time" json:"schedule_end_time,omitempty"`
		AdminUsername       *string    `gorm:"column:admin_username" json:"admin_username,omitempty"`
		AdminFullName       *string    `gorm:"column:admin_full_name" json:"admin_full_name,omitempty"`
	}

	q := ctrl.DB.Table("exemptions").
		Select("exemptions.*, subjects.subject_code, subjects.subject_name, subject_schedules.subject_schedule_day_of_week, subject_schedules.subject_schedule_start_time, subject_schedules.subject_schedule_end_time, admins.admin_username, admins.admin_full_name").
		Joins("JOIN subjects ON subjects.subject_id = exemptions.exemption_subject_id").
		Joins("LEFT JOIN subject_schedules ON subject_schedules.subject_schedule_id = exemptions.exemption_schedule_id").
		Joins("LEFT JOIN admins ON admins.admin_id = exemptions.exemption_exempted_by").
		Order("exemption_date DESC, exemption_created_at DESC")

	if subjectID := c.QueryInt("subjectId"); subjectID > 0 {
		q = q.Where("exemption_subject_id = ?", subjectID)
	}
	if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		startDate, err := helper.ParseDate(start)
		if err != nil {
			return err
		}
		endDate, err := helper.ParseDate(end)
		if err != nil {
			return err
		}
		q = q.Where("exemption_date BETWEEN ? AND ?", startDate, endDate)
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil exemptions")
	}

	return helper.JsonOK(c, "OK", rows)
}

/* ===================== CHECK ===================== */
// GET /api/exemptions/check?subjectId=&scheduleId=&date=
func (ctrl *ExemptionController) CheckExemption(c *fiber.Ctx) error {
	subjectID := c.QueryInt("subjectId")
	dateStr := c.Query("date")
	if subjectID <= 0 || dateStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "subjectId dan date wajib diisi")
	}

	date, err := helper.ParseDate(dateStr)
	if err != nil {
		return err
	}

	var scheduleID *int
	if v := c.QueryInt("scheduleId"); v > 0 {
		scheduleID = &v
	}

	e, err := ctrl.Service.FindActive(subjectID, date, scheduleID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek exemption")
	}

	if e == nil {
		return helper.JsonOK(c, "OK", fiber.Map{"isExempted": false, "exemption": nil})
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"isExempted": true,
		"exemption":  dto.FromExemptionModel(*e),
	})
}

/* ===================== DELETE ===================== */
// DELETE /api/exemptions/:id
func (ctrl *ExemptionController) DeleteExemption(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.Delete(id, adminID, helperAuth.GetClientIP(c)); err != nil {
		if errors.Is(err, service.ErrExemptionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus exemption")
	}

	return helper.JsonOK(c, "Exemption deleted successfully", nil)
}
