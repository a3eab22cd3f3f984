package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crudonatural/reportes-api/internal/application/reportes"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportesUC *reportes.ReportesUseCase
}

// Router registra las rutas de la API. La autenticación corre en el gateway
// que publica este servicio; acá no hay middleware de auth.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	rep := api.Group("/reportes")
	handler := NewReportesHandler(deps.ReportesUC)
	rep.Get("/matriz", handler.Matriz)
	rep.Get("/estadisticas", handler.Estadisticas)
	rep.Get("/mensual", handler.Mensual)
	rep.Get("/puntos-venta/:id/serie", handler.Serie)
}
