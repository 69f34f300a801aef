package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.GetStudents)
	students.Post("/", ctrl.CreateStudent)
	students.Get("/:number", ctrl.GetStudentByNumber)
	students.Put("/:number", ctrl.UpdateStudent)
	students.Delete("/:number", ctrl.DeactivateStudent)
	students.Get("/:number/attendance", ctrl.GetStudentAttendance)
}
