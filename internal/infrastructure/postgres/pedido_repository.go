package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo consultas de solo lectura sobre la tienda de pedidos.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository construye el adaptador de pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

// itemRecord es el registro crudo de un item tal como lo guarda la tienda en
// el JSON del pedido. Sin garantías de esquema: se convierte una sola vez acá
// y el resto del sistema trabaja con entity.ItemPedido tipado.
type itemRecord struct {
	Name    string `json:"name"`
	Options []struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
	} `json:"options"`
	Quantity        float64 `json:"quantity"`
	SameDayDelivery bool    `json:"sameDayDelivery"`
}

const pedidoColumnas = `
	id, items, tipo, entrega_mismo_dia, medio_pago,
	creado_en, dia_entrega, punto_venta_id, total, costo_envio`

// ListarPorPuntoVenta devuelve los pedidos de un punto de venta en la ventana,
// en orden cronológico ascendente (el orden de fold debe ser reproducible).
func (r *PedidoRepo) ListarPorPuntoVenta(ctx context.Context, puntoVentaID string, desde, hasta time.Time) ([]entity.Pedido, error) {
	const query = `
	SELECT ` + pedidoColumnas + `
	FROM pedidos
	WHERE punto_venta_id = $1
	  AND creado_en BETWEEN $2 AND $3
	ORDER BY creado_en ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, puntoVentaID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("pedidos.ListarPorPuntoVenta: %w", err)
	}
	defer rows.Close()
	return escanearPedidos(rows)
}

// ListarPorRango devuelve todos los pedidos de la ventana en orden cronológico.
func (r *PedidoRepo) ListarPorRango(ctx context.Context, desde, hasta time.Time) ([]entity.Pedido, error) {
	const query = `
	SELECT ` + pedidoColumnas + `
	FROM pedidos
	WHERE creado_en BETWEEN $1 AND $2
	ORDER BY creado_en ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("pedidos.ListarPorRango: %w", err)
	}
	defer rows.Close()
	return escanearPedidos(rows)
}

func escanearPedidos(rows pgx.Rows) ([]entity.Pedido, error) {
	var pedidos []entity.Pedido
	for rows.Next() {
		var (
			p        entity.Pedido
			itemsRaw []byte
			tipo     string
		)
		if err := rows.Scan(
			&p.ID, &itemsRaw, &tipo, &p.EntregaMismoDia, &p.MedioPago,
			&p.CreadoEn, &p.DiaEntrega, &p.PuntoVentaID, &p.Total, &p.CostoEnvio,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		p.Tipo = entity.TipoPedido(tipo)
		p.Items = convertirItems(itemsRaw)
		pedidos = append(pedidos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar pedidos: %w", err)
	}
	return pedidos, nil
}

// convertirItems decodifica el JSON crudo de items. Un JSON inválido o sin
// items deja el pedido con items vacíos: pedido malformado, se procesa el
// resto de la corrida igual.
func convertirItems(raw []byte) []entity.ItemPedido {
	if len(raw) == 0 {
		return nil
	}
	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}

	items := make([]entity.ItemPedido, 0, len(records))
	for _, rec := range records {
		item := entity.ItemPedido{
			Nombre:          rec.Name,
			Cantidad:        rec.Quantity,
			EntregaMismoDia: rec.SameDayDelivery,
		}
		for _, op := range rec.Options {
			item.Opciones = append(item.Opciones, entity.OpcionItem{
				Nombre:   op.Name,
				Cantidad: op.Quantity,
			})
		}
		items = append(items, item)
	}
	return items
}
