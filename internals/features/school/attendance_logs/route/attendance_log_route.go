package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/attendance_logs/controller"
)

func AttendanceLogRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceLogController(db)

	logs := api.Group("/attendance-logs")
	logs.Get("/", ctrl.GetLogs)
	logs.Get("/stats", ctrl.GetLogStats)
}
