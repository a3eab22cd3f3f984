package reportes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/crudonatural/reportes-api/internal/application/dto"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
	"github.com/crudonatural/reportes-api/internal/domain/repository"
	"github.com/crudonatural/reportes-api/pkg/logger"
)

// maxFoldsConcurrentes acota el fan-out por punto de venta. El catálogo es
// inmutable durante la corrida, así que los folds no comparten estado mutable.
const maxFoldsConcurrentes = 4

// ReportesUseCase calcula la matriz de productos, las estadísticas por punto
// de venta y los resúmenes mensuales. Todos los métodos devuelven envelopes
// {success, ...}: los errores nunca cruzan este borde sin convertir.
type ReportesUseCase struct {
	pedidos  repository.PedidoRepository
	puntos   repository.PuntoVentaRepository
	cargador *CargadorCatalogo
	log      *logger.Logger
}

// NuevoReportesUseCase construye el caso de uso.
func NuevoReportesUseCase(
	pedidos repository.PedidoRepository,
	puntos repository.PuntoVentaRepository,
	cargador *CargadorCatalogo,
	log *logger.Logger,
) *ReportesUseCase {
	return &ReportesUseCase{pedidos: pedidos, puntos: puntos, cargador: cargador, log: log}
}

// filaMatriz resultado parcial de un punto de venta, indexado para reimponer
// el orden de salida después del fan-out.
type filaMatriz struct {
	data          dto.ProductoMatrixData
	diagnosticos  []dto.DiagnosticoItem
	porEstrategia map[matching.Estrategia]int
	err           error
}

// MatrizProductos arma la matriz punto de venta × producto para un período.
// Carga el catálogo (con fallback), foldea los pedidos del mes de cada punto
// de venta y ordena las columnas con el orden canónico de negocio.
func (uc *ReportesUseCase) MatrizProductos(ctx context.Context, anio, mes int) dto.ResultadoMatriz {
	catalogo, err := uc.cargador.Cargar(ctx, anio, mes)
	if err != nil {
		uc.log.Error().Err(err).Int("anio", anio).Int("mes", mes).Msg("matriz: catálogo")
		return dto.ResultadoMatriz{Error: err.Error()}
	}

	puntos, err := uc.puntos.ListarActivos(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("matriz: puntos de venta")
		return dto.ResultadoMatriz{Error: fmt.Sprintf("listar puntos de venta: %v", err)}
	}

	desde, hasta := rangoDelMes(anio, mes)
	matcher := matching.NuevoMatcher(catalogo)

	filas := uc.foldearPuntosVenta(ctx, matcher, puntos, desde, hasta)

	resultado := dto.ResultadoMatriz{Success: true}
	columnas := make(map[string]struct{})
	estrategias := make(map[matching.Estrategia]int)
	for _, fila := range filas {
		if fila.err != nil {
			uc.log.Error().Err(fila.err).Msg("matriz: fold de punto de venta")
			return dto.ResultadoMatriz{Error: fila.err.Error()}
		}
		resultado.PuntosVenta = append(resultado.PuntosVenta, fila.data)
		resultado.Diagnosticos = append(resultado.Diagnosticos, fila.diagnosticos...)
		for producto := range fila.data.Productos {
			columnas[producto] = struct{}{}
		}
		for estrategia, n := range fila.porEstrategia {
			estrategias[estrategia] += n
		}
	}

	for producto := range columnas {
		resultado.NombresProductos = append(resultado.NombresProductos, producto)
	}
	matching.Ordenar(resultado.NombresProductos)

	for estrategia, n := range estrategias {
		uc.log.Debug().Str("estrategia", string(estrategia)).Int("items", n).
			Msg("matriz: items resueltos por estrategia")
	}
	uc.log.Info().
		Int("puntos_venta", len(resultado.PuntosVenta)).
		Int("productos", len(resultado.NombresProductos)).
		Int("sin_coincidencia", len(resultado.Diagnosticos)).
		Msg("matriz de productos calculada")

	return resultado
}

// foldearPuntosVenta corre el fold de cada punto de venta con fan-out acotado
// y devuelve las filas en el orden de entrada: la concurrencia no altera el
// orden de salida.
func (uc *ReportesUseCase) foldearPuntosVenta(
	ctx context.Context,
	matcher *matching.Matcher,
	puntos []entity.PuntoVenta,
	desde, hasta time.Time,
) []filaMatriz {
	filas := make([]filaMatriz, len(puntos))
	sem := make(chan struct{}, maxFoldsConcurrentes)
	var wg sync.WaitGroup

	for i, punto := range puntos {
		wg.Add(1)
		go func(i int, punto entity.PuntoVenta) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			filas[i] = uc.foldearPuntoVenta(ctx, matcher, punto, desde, hasta)
		}(i, punto)
	}
	wg.Wait()
	return filas
}

func (uc *ReportesUseCase) foldearPuntoVenta(
	ctx context.Context,
	matcher *matching.Matcher,
	punto entity.PuntoVenta,
	desde, hasta time.Time,
) filaMatriz {
	pedidos, err := uc.pedidos.ListarPorPuntoVenta(ctx, punto.ID, desde, hasta)
	if err != nil {
		return filaMatriz{err: fmt.Errorf("pedidos de %s: %w", punto.Nombre, err)}
	}

	fold := nuevoFold()
	for _, pedido := range pedidos {
		fold.acumular(matcher, pedido, punto.Nombre)
	}

	return filaMatriz{
		data: dto.ProductoMatrixData{
			PuntoVentaID:     punto.ID,
			PuntoVentaNombre: punto.Nombre,
			Zona:             punto.Zona,
			Productos:        fold.Totales,
			TotalKilos:       fold.TotalKilos,
		},
		diagnosticos:  fold.Diagnosticos,
		porEstrategia: fold.PorEstrategia,
	}
}

// rangoDelMes devuelve [primer instante, último instante] del mes en UTC.
func rangoDelMes(anio, mes int) (time.Time, time.Time) {
	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return desde, hasta
}
