package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/school/subjects/dto"
	"presensiku_backend/internals/features/school/subjects/model"
	helper "presensiku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, validate: helper.NewValidator()}
}

/* ===================== LIST ===================== */
// GET /api/subjects
func (ctrl *SubjectController) GetSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctrl.DB.
		Preload("SubjectSchedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("subject_schedule_start_time ASC")
		}).
		Order("subject_code ASC").
		Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}

	return helper.JsonOK(c, "OK", subjects)
}

/* ===================== DETAIL ===================== */
// GET /api/subjects/:id
func (ctrl *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.
		Preload("SubjectSchedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("subject_schedule_start_time ASC")
		}).
		First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}

	return helper.JsonOK(c, "OK", subject)
}

/* ===================== CREATE ===================== */
// POST /api/subjects — slot opsional ikut dibuat dalam satu transaksi.
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	for _, s := range req.Schedules {
		if s.StartTime >= s.EndTime {
			return helper.Error(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
		}
	}

	subject := model.SubjectModel{
		SubjectCode: req.Code,
		SubjectName: req.Name,
		SubjectRoom: req.Room,
	}
	for _, s := range req.Schedules {
		subject.SubjectSchedules = append(subject.SubjectSchedules, model.SubjectScheduleModel{
			SubjectScheduleDayOfWeek: s.DayOfWeek,
			SubjectScheduleStartTime: s.StartTime,
			SubjectScheduleEndTime:   s.EndTime,
		})
	}

	if err := ctrl.DB.Create(&subject).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat subject")
	}

	return helper.JsonCreated(c, "Subject created successfully", subject)
}

/* ===================== ADD SCHEDULE ===================== */
// POST /api/subjects/:id/schedules
func (ctrl *SubjectController) AddSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AddScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.StartTime >= req.EndTime {
		return helper.Error(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}

	slot := model.SubjectScheduleModel{
		SubjectScheduleSubjectID: id,
		SubjectScheduleDayOfWeek: req.DayOfWeek,
		SubjectScheduleStartTime: req.StartTime,
		SubjectScheduleEndTime:   req.EndTime,
	}
	if err := ctrl.DB.Create(&slot).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah jadwal")
	}

	return helper.JsonCreated(c, "Schedule created successfully", dto.FromSchedule(subject, slot))
}

/* ===================== SCHEDULES: CURRENT ===================== */
// GET /api/schedules/current — kelas yang sedang berlangsung, yang mulai dalam
// 2 jam ke depan, dan seluruh jadwal hari ini.
func (ctrl *SubjectController) GetCurrentSchedule(c *fiber.Ctx) error {
	now := time.Now().UTC()
	day := helper.DayName(now)
	currentTime := now.Format("15:04:05")
	upcomingLimit := now.Add(2 * time.Hour).Format("15:04:05")

	rows, err := ctrl.schedulesForDay(day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	// jam disimpan "HH:MM:SS", perbandingan string = perbandingan waktu
	var active *dto.ScheduleWithSubject
	upcoming := make([]dto.ScheduleWithSubject, 0)
	for i := range rows {
		if active == nil && currentTime >= rows[i].StartTime && currentTime <= rows[i].EndTime {
			active = &rows[i]
		}
		if currentTime < rows[i].StartTime && rows[i].StartTime <= upcomingLimit {
			upcoming = append(upcoming, rows[i])
		}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"currentDay":        day,
		"currentTime":       currentTime,
		"activeSchedule":    active,
		"upcomingSchedules": upcoming,
		"allSchedulesToday": rows,
	})
}

/* ===================== SCHEDULES: PER DAY ===================== */
// GET /api/schedules/day/:day
func (ctrl *SubjectController) GetSchedulesByDay(c *fiber.Ctx) error {
	day := c.Params("day")
	if !constants.IsValidDay(day) {
		return helper.Error(c, fiber.StatusBadRequest, "Nama hari tidak valid (Monday..Sunday)")
	}

	rows, err := ctrl.schedulesForDay(day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"day":       day,
		"schedules": rows,
	})
}

/* ===================== SCHEDULES: WEEKLY ===================== */
// GET /api/schedules/weekly — dikelompokkan per hari, Monday..Sunday.
func (ctrl *SubjectController) GetWeeklySchedules(c *fiber.Ctx) error {
	weekly := make(map[string][]dto.ScheduleWithSubject, len(constants.DaysOfWeek))
	for _, day := range constants.DaysOfWeek {
		rows, err := ctrl.schedulesForDay(day)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
		}
		weekly[day] = rows
	}

	return helper.JsonOK(c, "OK", weekly)
}

func (ctrl *SubjectController) schedulesForDay(day string) ([]dto.ScheduleWithSubject, error) {
	type row struct {
		SubjectScheduleID        int    `gorm:"column:subject_schedule_id"`
		SubjectScheduleSubjectID int    `gorm:"column:subject_schedule_subject_id"`
		SubjectScheduleDayOfWeek string `gorm:"column:subject_schedule_day_of_week"`
		SubjectScheduleStartTime string `gorm:"column:subject_schedule_start_time"`
		SubjectScheduleEndTime   string `gorm:"column:subject_schedule_end_time"`
		SubjectCode              string `gorm:"column:subject_code"`
		SubjectName              string `gorm:"column:subject_name"`
		SubjectRoom              string `gorm:"column:subject_room"`
	}

	var rows []row
	if err := ctrl.DB.Table("subject_schedules").
		Select("subject_schedules.*, subjects.subject_code, subjects.subject_name, subjects.subject_room").
		Joins("JOIN subjects ON subjects.subject_id = subject_schedules.subject_schedule_subject_id").
		Where("subject_schedule_day_of_week = ?", day).
		Order("subject_schedule_start_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleWithSubject, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ScheduleWithSubject{
			ScheduleID:  r.SubjectScheduleID,
			SubjectID:   r.SubjectScheduleSubjectID,
			SubjectCode: r.SubjectCode,
			SubjectName: r.SubjectName,
			SubjectRoom: r.SubjectRoom,
			DayOfWeek:   r.SubjectScheduleDayOfWeek,
			StartTime:   r.SubjectScheduleStartTime,
			EndTime:     r.SubjectScheduleEndTime,
		})
	}
	return out, nil
}
