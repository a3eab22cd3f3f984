package reportes

import (
	"context"
	"fmt"
	"time"

	"github.com/crudonatural/reportes-api/internal/application/dto"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
)

// Estadisticas calcula las estadísticas de compra de cada punto de venta
// activo en la ventana [desde, hasta]: kilos totales, frecuencia de compra,
// promedio por pedido y datos de la última compra.
//
// El catálogo se carga para el mes de cierre de la ventana; si ese período no
// tiene precios aplica la cadena de fallback normal.
func (uc *ReportesUseCase) Estadisticas(ctx context.Context, desde, hasta time.Time) dto.ResultadoStats {
	catalogo, err := uc.cargador.Cargar(ctx, hasta.Year(), int(hasta.Month()))
	if err != nil {
		uc.log.Error().Err(err).Msg("estadísticas: catálogo")
		return dto.ResultadoStats{Error: err.Error()}
	}

	puntos, err := uc.puntos.ListarActivos(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("estadísticas: puntos de venta")
		return dto.ResultadoStats{Error: fmt.Sprintf("listar puntos de venta: %v", err)}
	}

	matcher := matching.NuevoMatcher(catalogo)
	resultado := dto.ResultadoStats{Success: true}

	for _, punto := range puntos {
		stats, diagnosticos, err := uc.estadisticasPuntoVenta(ctx, matcher, punto, desde, hasta)
		if err != nil {
			uc.log.Error().Err(err).Str("punto_venta", punto.Nombre).Msg("estadísticas: fold")
			return dto.ResultadoStats{Error: err.Error()}
		}
		resultado.PuntosVenta = append(resultado.PuntosVenta, stats)
		resultado.Diagnosticos = append(resultado.Diagnosticos, diagnosticos...)
	}

	return resultado
}

func (uc *ReportesUseCase) estadisticasPuntoVenta(
	ctx context.Context,
	matcher *matching.Matcher,
	punto entity.PuntoVenta,
	desde, hasta time.Time,
) (dto.PuntoVentaStats, []dto.DiagnosticoItem, error) {
	pedidos, err := uc.pedidos.ListarPorPuntoVenta(ctx, punto.ID, desde, hasta)
	if err != nil {
		return dto.PuntoVentaStats{}, nil, fmt.Errorf("pedidos de %s: %w", punto.Nombre, err)
	}

	stats := dto.PuntoVentaStats{
		ID:       punto.ID,
		Nombre:   punto.Nombre,
		Zona:     punto.Zona,
		Telefono: punto.Telefono,
	}

	fold := nuevoFold()
	for _, pedido := range pedidos {
		fold.acumular(matcher, pedido, punto.Nombre)
	}

	stats.KgTotales = fold.TotalKilos
	stats.TotalPedidos = len(pedidos)
	if len(pedidos) == 0 {
		return stats, fold.Diagnosticos, nil
	}

	primero := pedidos[0].CreadoEn
	ultimo := pedidos[len(pedidos)-1].CreadoEn
	stats.FechaPrimerPedido = &primero
	stats.FechaUltimoPedido = &ultimo
	stats.PromedioKgPorPedido = fold.TotalKilos / float64(len(pedidos))

	// kilos de la última compra: fold aparte solo del pedido más reciente
	// (los pedidos vienen en orden cronológico ascendente)
	ultimoFold := nuevoFold()
	ultimoFold.acumular(matcher, pedidos[len(pedidos)-1], punto.Nombre)
	stats.KgUltimaCompra = ultimoFold.TotalKilos

	// frecuencia: días promedio entre pedidos consecutivos
	if len(pedidos) > 1 {
		dias := ultimo.Sub(primero).Hours() / 24
		stats.FrecuenciaCompra = dias / float64(len(pedidos)-1)
	}

	return stats, fold.Diagnosticos, nil
}
