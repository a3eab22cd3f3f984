package repository

import (
	"context"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

// PuntoVentaRepository define las consultas de lectura sobre puntos de venta.
type PuntoVentaRepository interface {
	// ListarActivos devuelve los puntos de venta activos en orden estable
	// (por nombre).
	ListarActivos(ctx context.Context) ([]entity.PuntoVenta, error)

	// ObtenerPorID devuelve un punto de venta o domain.ErrPuntoVentaNoEncontrado.
	ObtenerPorID(ctx context.Context, id string) (*entity.PuntoVenta, error)
}
