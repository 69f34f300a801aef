package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	attendanceRoute "presensiku_backend/internals/features/school/attendance/route"
	logRoute "presensiku_backend/internals/features/school/attendance_logs/route"
	dashboardRoute "presensiku_backend/internals/features/school/dashboard/route"
	exemptionRoute "presensiku_backend/internals/features/school/exemptions/route"
	studentRoute "presensiku_backend/internals/features/school/students/route"
	subjectRoute "presensiku_backend/internals/features/school/subjects/route"
	authRoute "presensiku_backend/internals/features/users/auth/route"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthPublicRoutes(app, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up protected /api group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	authRoute.AuthProtectedRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	exemptionRoute.ExemptionRoutes(api, db)
	logRoute.AttendanceLogRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
