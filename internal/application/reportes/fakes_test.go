package reportes_test

import (
	"context"
	"fmt"
	"time"

	"github.com/crudonatural/reportes-api/internal/domain"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

// preciosFake implementa repository.PrecioRepository en memoria, con un nivel
// de datos por cada escalón del fallback.
type preciosFake struct {
	exactos   map[string][]entity.Precio // clave "anio-mes"
	porAnio   map[int][]entity.Precio
	historico []entity.Precio
	err       error
}

func clavePeriodo(anio, mes int) string { return fmt.Sprintf("%d-%02d", anio, mes) }

func (f *preciosFake) ListarMayoristasActivos(_ context.Context, anio, mes int) ([]entity.Precio, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exactos[clavePeriodo(anio, mes)], nil
}

func (f *preciosFake) UltimoPeriodoDelAnio(_ context.Context, anio int) ([]entity.Precio, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.porAnio[anio], nil
}

func (f *preciosFake) UltimoPeriodo(_ context.Context) ([]entity.Precio, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.historico, nil
}

// pedidosFake implementa repository.PedidoRepository en memoria. Devuelve los
// pedidos en el orden en que fueron cargados (los tests los cargan en orden
// cronológico, como haría la DB).
type pedidosFake struct {
	pedidos []entity.Pedido
	err     error
}

func (f *pedidosFake) ListarPorPuntoVenta(_ context.Context, puntoVentaID string, desde, hasta time.Time) ([]entity.Pedido, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Pedido
	for _, p := range f.pedidos {
		if p.PuntoVentaID == puntoVentaID && !p.CreadoEn.Before(desde) && !p.CreadoEn.After(hasta) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *pedidosFake) ListarPorRango(_ context.Context, desde, hasta time.Time) ([]entity.Pedido, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Pedido
	for _, p := range f.pedidos {
		if !p.CreadoEn.Before(desde) && !p.CreadoEn.After(hasta) {
			out = append(out, p)
		}
	}
	return out, nil
}

// puntosFake implementa repository.PuntoVentaRepository en memoria.
type puntosFake struct {
	puntos []entity.PuntoVenta
	err    error
}

func (f *puntosFake) ListarActivos(_ context.Context) ([]entity.PuntoVenta, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.PuntoVenta
	for _, p := range f.puntos {
		if p.Activo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *puntosFake) ObtenerPorID(_ context.Context, id string) (*entity.PuntoVenta, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.puntos {
		if p.ID == id {
			q := p
			return &q, nil
		}
	}
	return nil, domain.ErrPuntoVentaNoEncontrado
}
