package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crudonatural/reportes-api/internal/domain"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/repository"
)

var _ repository.PuntoVentaRepository = (*PuntoVentaRepo)(nil)

// PuntoVentaRepo consultas de solo lectura sobre puntos de venta.
type PuntoVentaRepo struct {
	pool *pgxpool.Pool
}

// NewPuntoVentaRepository construye el adaptador de puntos de venta.
func NewPuntoVentaRepository(pool *pgxpool.Pool) *PuntoVentaRepo {
	return &PuntoVentaRepo{pool: pool}
}

// ListarActivos devuelve los puntos de venta activos ordenados por nombre.
func (r *PuntoVentaRepo) ListarActivos(ctx context.Context) ([]entity.PuntoVenta, error) {
	const query = `
	SELECT id, nombre, zona, contacto_telefono, activo
	FROM puntos_venta
	WHERE activo
	ORDER BY nombre ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("puntosVenta.ListarActivos: %w", err)
	}
	defer rows.Close()

	var puntos []entity.PuntoVenta
	for rows.Next() {
		var p entity.PuntoVenta
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Zona, &p.Telefono, &p.Activo); err != nil {
			return nil, fmt.Errorf("scan punto de venta: %w", err)
		}
		puntos = append(puntos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar puntos de venta: %w", err)
	}
	return puntos, nil
}

// ObtenerPorID devuelve un punto de venta por id.
func (r *PuntoVentaRepo) ObtenerPorID(ctx context.Context, id string) (*entity.PuntoVenta, error) {
	const query = `
	SELECT id, nombre, zona, contacto_telefono, activo
	FROM puntos_venta
	WHERE id = $1`

	var p entity.PuntoVenta
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Zona, &p.Telefono, &p.Activo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPuntoVentaNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("puntosVenta.ObtenerPorID %s: %w", id, err)
	}
	return &p, nil
}
