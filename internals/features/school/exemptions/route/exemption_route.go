package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/exemptions/controller"
)

func ExemptionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExemptionController(db)

	exemptions := api.Group("/exemptions")
	exemptions.Post("/", ctrl.CreateExemption)
	exemptions.Get("/", ctrl.GetExemptions)
	exemptions.Get("/check", ctrl.CheckExemption)
	exemptions.Delete("/:id", ctrl.DeleteExemption)
}
