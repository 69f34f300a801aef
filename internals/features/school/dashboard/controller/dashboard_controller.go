package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRepo "presensiku_backend/internals/features/school/dashboard/repository"
	"presensiku_backend/internals/features/school/dashboard/service"
	studentModel "presensiku_backend/internals/features/school/students/model"
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
	helper "presensiku_backend/internals/helpers"
)

type DashboardController struct {
	DB      *gorm.DB
	Service *service.AggregationService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	svc := service.NewAggregationService(
		dashboardRepo.NewLedgerGormScanner(db),
		dashboardRepo.NewReferenceGormStore(db),
	)
	return &DashboardController{DB: db, Service: svc}
}

/* ===================== STATS ===================== */
// GET /api/dashboard/stats — angka cepat untuk header dashboard.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	var activeStudents int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_is_active = ?", true).
		Count(&activeStudents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung murid aktif")
	}

	var totalSubjects int64
	if err := ctrl.DB.Model(&subjectModel.SubjectModel{}).
		Count(&totalSubjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung subject")
	}

	today := todayUTC()
	summary, err := ctrl.Service.Summarize(today, today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik hari ini")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"active_students": activeStudents,
		"total_subjects":  totalSubjects,
		"today":           summary.Overall,
	})
}

/* ===================== SUMMARY ===================== */
// GET /api/dashboard/summary?range=today|week|month|custom&startDate=&endDate=
func (ctrl *DashboardController) GetSummary(c *fiber.Ctx) error {
	var start, end time.Time

	switch c.Query("range", "week") {
	case "today":
		start = todayUTC()
		end = start
	case "week":
		end = todayUTC()
		start = end.AddDate(0, 0, -6)
	case "month":
		end = todayUTC()
		start = end.AddDate(0, 0, -29)
	case "custom":
		startStr, endStr := c.Query("startDate"), c.Query("endDate")
		if startStr == "" || endStr == "" {
			return helper.Error(c, fiber.StatusBadRequest, "startDate dan endDate wajib diisi untuk range custom")
		}
		var err error
		if start, err = helper.ParseDate(startStr); err != nil {
			return err
		}
		if end, err = helper.ParseDate(endStr); err != nil {
			return err
		}
		if end.Before(start) {
			return helper.Error(c, fiber.StatusBadRequest, "endDate harus >= startDate")
		}
	default:
		return helper.Error(c, fiber.StatusBadRequest, "range harus today, week, month, atau custom")
	}

	summary, err := ctrl.Service.Summarize(start, end)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	return helper.JsonOK(c, "OK", summary)
}

/* ===================== TREND ===================== */
// GET /api/dashboard/trend?days=7
func (ctrl *DashboardController) GetTrend(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days > 90 {
		days = 90
	}

	points, err := ctrl.Service.Trend(days)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung tren")
	}

	return helper.JsonOK(c, "OK", points)
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
