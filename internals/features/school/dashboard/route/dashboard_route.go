package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", ctrl.GetStats)
	dashboard.Get("/summary", ctrl.GetSummary)
	dashboard.Get("/trend", ctrl.GetTrend)

	// path lama yang masih dipakai klien
	api.Get("/attendance/summary", ctrl.GetSummary)
	api.Get("/attendance/trend", ctrl.GetTrend)
}
