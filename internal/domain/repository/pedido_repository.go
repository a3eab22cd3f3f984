package repository

import (
	"context"
	"time"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

// PedidoRepository define las consultas de lectura sobre la tienda de pedidos.
// Las implementaciones son read-only y devuelven los pedidos ordenados por
// fecha de creación ascendente: el orden de fold debe ser estable para que
// dos corridas sobre el mismo snapshot produzcan resultados idénticos.
type PedidoRepository interface {
	// ListarPorPuntoVenta devuelve los pedidos de un punto de venta en la
	// ventana [desde, hasta].
	ListarPorPuntoVenta(ctx context.Context, puntoVentaID string, desde, hasta time.Time) ([]entity.Pedido, error)

	// ListarPorRango devuelve todos los pedidos de la ventana, de cualquier
	// tipo. Alimenta el resumen mensual por tipo de cliente.
	ListarPorRango(ctx context.Context, desde, hasta time.Time) ([]entity.Pedido, error)
}
