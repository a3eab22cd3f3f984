package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crudonatural/reportes-api/internal/application/dto"
	"github.com/crudonatural/reportes-api/internal/application/reportes"
	"github.com/crudonatural/reportes-api/internal/domain"
)

// ReportesHandler expone los reportes mayoristas por HTTP. Es una capa fina:
// parsea parámetros, delega en el caso de uso y serializa el envelope.
type ReportesHandler struct {
	uc *reportes.ReportesUseCase
}

// NewReportesHandler construye el handler.
func NewReportesHandler(uc *reportes.ReportesUseCase) *ReportesHandler {
	return &ReportesHandler{uc: uc}
}

// Matriz GET /api/reportes/matriz?anio=YYYY&mes=MM
// Matriz punto de venta × producto del período, con columnas en orden
// canónico y diagnósticos de items sin coincidencia.
func (h *ReportesHandler) Matriz(c *fiber.Ctx) error {
	var req dto.PeriodoRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	aplicarPeriodoPorDefecto(&req)

	resultado := h.uc.MatrizProductos(c.Context(), req.Anio, req.Mes)
	return c.Status(statusEnvelope(resultado.Success, resultado.Error)).JSON(resultado)
}

// Estadisticas GET /api/reportes/estadisticas?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *ReportesHandler) Estadisticas(c *fiber.Ctx) error {
	desde, hasta, err := parsearRango(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: err.Error(),
		})
	}

	resultado := h.uc.Estadisticas(c.Context(), desde, hasta)
	return c.Status(statusEnvelope(resultado.Success, resultado.Error)).JSON(resultado)
}

// Mensual GET /api/reportes/mensual?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
// Resumen por mes y tipo de cliente (mismo día / mayorista / minorista).
func (h *ReportesHandler) Mensual(c *fiber.Ctx) error {
	desde, hasta, err := parsearRango(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: err.Error(),
		})
	}

	resultado := h.uc.ResumenMensual(c.Context(), desde, hasta)
	return c.Status(statusEnvelope(resultado.Success, resultado.Error)).JSON(resultado)
}

// Serie GET /api/reportes/puntos-venta/:id/serie?desde=...&hasta=...
// Kilos por mes de un punto de venta, en orden cronológico.
func (h *ReportesHandler) Serie(c *fiber.Ctx) error {
	desde, hasta, err := parsearRango(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: err.Error(),
		})
	}

	resultado := h.uc.SerieMensual(c.Context(), c.Params("id"), desde, hasta)
	if !resultado.Success && resultado.Error == domain.ErrPuntoVentaNoEncontrado.Error() {
		return c.Status(fiber.StatusNotFound).JSON(resultado)
	}
	return c.Status(statusEnvelope(resultado.Success, resultado.Error)).JSON(resultado)
}

// aplicarPeriodoPorDefecto completa (año, mes) con el mes en curso.
func aplicarPeriodoPorDefecto(req *dto.PeriodoRequest) {
	ahora := time.Now().UTC()
	if req.Anio <= 0 {
		req.Anio = ahora.Year()
	}
	if req.Mes < 1 || req.Mes > 12 {
		req.Mes = int(ahora.Month())
	}
}

// parsearRango lee desde/hasta (YYYY-MM-DD); por defecto los últimos 6 meses.
func parsearRango(c *fiber.Ctx) (time.Time, time.Time, error) {
	ahora := time.Now().UTC()
	desde := ahora.AddDate(0, -6, 0)
	hasta := ahora

	var req dto.RangoRequest
	if err := c.QueryParser(&req); err != nil {
		return time.Time{}, time.Time{}, errors.New("parámetros de consulta inválidos")
	}

	var err error
	if req.Desde != "" {
		if desde, err = time.Parse("2006-01-02", req.Desde); err != nil {
			return time.Time{}, time.Time{}, errors.New("desde: se espera YYYY-MM-DD")
		}
	}
	if req.Hasta != "" {
		if hasta, err = time.Parse("2006-01-02", req.Hasta); err != nil {
			return time.Time{}, time.Time{}, errors.New("hasta: se espera YYYY-MM-DD")
		}
		// incluir el día completo
		hasta = hasta.Add(24*time.Hour - time.Nanosecond)
	}
	if hasta.Before(desde) {
		return time.Time{}, time.Time{}, errors.New("la ventana de fechas está invertida")
	}
	return desde, hasta, nil
}

// statusEnvelope mapea el envelope a un status HTTP: el catálogo ausente es
// indisponibilidad, el resto de los errores son fallas internas.
func statusEnvelope(success bool, mensaje string) int {
	if success {
		return fiber.StatusOK
	}
	if mensaje == domain.ErrCatalogoNoDisponible.Error() {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
