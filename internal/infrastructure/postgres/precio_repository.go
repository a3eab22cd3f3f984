package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/repository"
)

var _ repository.PrecioRepository = (*PrecioRepo)(nil)

// PrecioRepo consultas de solo lectura sobre la lista de precios.
type PrecioRepo struct {
	pool *pgxpool.Pool
}

// NewPrecioRepository construye el adaptador de precios.
func NewPrecioRepository(pool *pgxpool.Pool) *PrecioRepo {
	return &PrecioRepo{pool: pool}
}

const precioColumnas = `
	seccion, producto, peso, tipo_precio, monto, activo, mes, anio, vigente_desde`

// ListarMayoristasActivos devuelve los precios MAYORISTA activos del período
// exacto, en orden estable por sección y producto.
func (r *PrecioRepo) ListarMayoristasActivos(ctx context.Context, anio, mes int) ([]entity.Precio, error) {
	const query = `
	SELECT ` + precioColumnas + `
	FROM precios
	WHERE tipo_precio = $1 AND activo AND anio = $2 AND mes = $3
	ORDER BY seccion, producto, peso`

	rows, err := r.pool.Query(ctx, query, entity.TipoPrecioMayorista, anio, mes)
	if err != nil {
		return nil, fmt.Errorf("precios.ListarMayoristasActivos %d-%02d: %w", anio, mes, err)
	}
	defer rows.Close()
	return escanearPrecios(rows)
}

// UltimoPeriodoDelAnio devuelve los precios del período más reciente con datos
// dentro de un año.
func (r *PrecioRepo) UltimoPeriodoDelAnio(ctx context.Context, anio int) ([]entity.Precio, error) {
	const query = `
	SELECT ` + precioColumnas + `
	FROM precios
	WHERE tipo_precio = $1 AND activo AND anio = $2
	  AND mes = (
	      SELECT MAX(mes) FROM precios
	      WHERE tipo_precio = $1 AND activo AND anio = $2
	  )
	ORDER BY seccion, producto, peso`

	rows, err := r.pool.Query(ctx, query, entity.TipoPrecioMayorista, anio)
	if err != nil {
		return nil, fmt.Errorf("precios.UltimoPeriodoDelAnio %d: %w", anio, err)
	}
	defer rows.Close()
	return escanearPrecios(rows)
}

// UltimoPeriodo devuelve los precios del período más reciente en toda la
// historia.
func (r *PrecioRepo) UltimoPeriodo(ctx context.Context) ([]entity.Precio, error) {
	const query = `
	SELECT ` + precioColumnas + `
	FROM precios p
	WHERE tipo_precio = $1 AND activo
	  AND (anio, mes) = (
	      SELECT anio, mes FROM precios
	      WHERE tipo_precio = $1 AND activo
	      ORDER BY anio DESC, mes DESC
	      LIMIT 1
	  )
	ORDER BY seccion, producto, peso`

	rows, err := r.pool.Query(ctx, query, entity.TipoPrecioMayorista)
	if err != nil {
		return nil, fmt.Errorf("precios.UltimoPeriodo: %w", err)
	}
	defer rows.Close()
	return escanearPrecios(rows)
}

func escanearPrecios(rows pgx.Rows) ([]entity.Precio, error) {
	var precios []entity.Precio
	for rows.Next() {
		var (
			p       entity.Precio
			seccion string
		)
		if err := rows.Scan(
			&seccion, &p.Producto, &p.Peso, &p.TipoPrecio,
			&p.Monto, &p.Activo, &p.Mes, &p.Anio, &p.VigenteDesde,
		); err != nil {
			return nil, fmt.Errorf("scan precio: %w", err)
		}
		p.Seccion = entity.Seccion(seccion)
		precios = append(precios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar precios: %w", err)
	}
	return precios, nil
}
