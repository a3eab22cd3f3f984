package repository

import (
	"context"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

// PrecioRepository define las consultas de lectura sobre la lista de precios.
// Solo interesan los registros MAYORISTA activos; el cargador de catálogo
// aplica la cadena de fallback de períodos sobre estos tres métodos.
type PrecioRepository interface {
	// ListarMayoristasActivos devuelve los precios mayoristas activos del
	// período exacto (año, mes). Vacío si el período no tiene precios.
	ListarMayoristasActivos(ctx context.Context, anio, mes int) ([]entity.Precio, error)

	// UltimoPeriodoDelAnio devuelve los precios del período más reciente con
	// datos dentro del año dado. Vacío si el año no tiene ningún período.
	UltimoPeriodoDelAnio(ctx context.Context, anio int) ([]entity.Precio, error)

	// UltimoPeriodo devuelve los precios del período más reciente con datos
	// en toda la historia.
	UltimoPeriodo(ctx context.Context) ([]entity.Precio, error)
}
