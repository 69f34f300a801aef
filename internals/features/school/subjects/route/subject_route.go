package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/subjects/controller"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	subjects := api.Group("/subjects")
	subjects.Get("/", ctrl.GetSubjects)
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Get("/:id", ctrl.GetSubjectByID)
	subjects.Post("/:id/schedules", ctrl.AddSchedule)

	schedules := api.Group("/schedules")
	schedules.Get("/current", ctrl.GetCurrentSchedule)
	schedules.Get("/weekly", ctrl.GetWeeklySchedules)
	schedules.Get("/day/:day", ctrl.GetSchedulesByDay)
}
