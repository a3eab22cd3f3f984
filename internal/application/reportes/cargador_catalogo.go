// Package reportes contiene los casos de uso de reportes mayoristas: carga de
// catálogo, matriz de productos por punto de venta, estadísticas de compra y
// resúmenes mensuales por tipo de cliente.
//
// Cada cálculo es one-shot y request-scoped: carga un snapshot del catálogo,
// foldea los pedidos de la ventana y devuelve estructuras en memoria. Nada se
// persiste; la serialización es del caller.
package reportes

import (
	"context"
	"fmt"

	"github.com/crudonatural/reportes-api/internal/domain"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
	"github.com/crudonatural/reportes-api/internal/domain/repository"
	"github.com/crudonatural/reportes-api/pkg/logger"
)

// CargadorCatalogo carga el catálogo mayorista de un período con fallback:
// período exacto → último período del mismo año → último período histórico.
type CargadorCatalogo struct {
	precios repository.PrecioRepository
	log     *logger.Logger
}

// NuevoCargadorCatalogo construye el cargador.
func NuevoCargadorCatalogo(precios repository.PrecioRepository, log *logger.Logger) *CargadorCatalogo {
	return &CargadorCatalogo{precios: precios, log: log}
}

// Cargar devuelve el índice de catálogo para (año, mes). Falla únicamente con
// domain.ErrCatalogoNoDisponible cuando ningún nivel de fallback tiene datos;
// es la única condición fatal de una corrida de reportes.
func (c *CargadorCatalogo) Cargar(ctx context.Context, anio, mes int) (*matching.Catalogo, error) {
	if anio <= 0 || mes < 1 || mes > 12 {
		return nil, fmt.Errorf("cargar catálogo %d-%02d: %w", anio, mes, domain.ErrPeriodoInvalido)
	}

	precios, err := c.precios.ListarMayoristasActivos(ctx, anio, mes)
	if err != nil {
		return nil, fmt.Errorf("precios del período %d-%02d: %w", anio, mes, err)
	}

	if len(precios) == 0 {
		c.log.Debug().Int("anio", anio).Int("mes", mes).
			Msg("sin precios en el período; fallback al último período del año")
		precios, err = c.precios.UltimoPeriodoDelAnio(ctx, anio)
		if err != nil {
			return nil, fmt.Errorf("último período del año %d: %w", anio, err)
		}
	}

	if len(precios) == 0 {
		c.log.Debug().Int("anio", anio).
			Msg("sin precios en el año; fallback al último período histórico")
		precios, err = c.precios.UltimoPeriodo(ctx)
		if err != nil {
			return nil, fmt.Errorf("último período histórico: %w", err)
		}
	}

	if len(precios) == 0 {
		return nil, domain.ErrCatalogoNoDisponible
	}

	catalogo := matching.NuevoCatalogo(precios)
	c.log.Info().
		Int("anio", anio).Int("mes", mes).
		Int("productos", catalogo.Cantidad()).
		Msg("catálogo mayorista cargado")
	return catalogo, nil
}
