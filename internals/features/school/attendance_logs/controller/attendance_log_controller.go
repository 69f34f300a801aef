package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
	helper "presensiku_backend/internals/helpers"
)

type AttendanceLogController struct {
	DB *gorm.DB
}

func NewAttendanceLogController(db *gorm.DB) *AttendanceLogController {
	return &AttendanceLogController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/attendance-logs?action=&studentNumber=&subjectId=&startDate=&endDate=&page=&per_page=
func (ctrl *AttendanceLogController) GetLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&logModel.AttendanceLogModel{})

	if action := c.Query("action"); action != "" {
		q = q.Where("log_action = ?", action)
	}
	if sn := c.Query("studentNumber"); sn != "" {
		q = q.Where("log_student_number = ?", sn)
	}
	if subjectID := c.QueryInt("subjectId"); subjectID > 0 {
		q = q.Where("log_subject_id = ?", subjectID)
	}
	// performedBy=0 valid: admin statis dari ENV
	if c.Query("performedBy") != "" {
		q = q.Where("log_performed_by = ?", c.QueryInt("performedBy"))
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
		q = q.Where("log_logged_at >= ? AND log_logged_at < ?", startDate, endDate.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung log")
	}

	var logs []logModel.AttendanceLogModel
	if err := q.Order("log_logged_at DESC, log_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil log")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"logs":       logs,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(logs)),
	})
}

/* ===================== STATS ===================== */
// GET /api/attendance-logs/stats
func (ctrl *AttendanceLogController) GetLogStats(c *fiber.Ctx) error {
	byAction := make(map[string]int64, len(constants.LogActions))
	for _, action := range constants.LogActions {
		var n int64
		if err := ctrl.DB.Model(&logModel.AttendanceLogModel{}).
			Where("log_action = ?", action).
			Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik log")
		}
		byAction[action] = n
	}

	var total int64
	for _, n := range byAction {
		total += n
	}

	var recent []logModel.AttendanceLogModel
	if err := ctrl.DB.Order("log_logged_at DESC, log_id DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil log terbaru")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total":     total,
		"by_action": byAction,
		"recent":    recent,
	})
}
