package reportes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crudonatural/reportes-api/internal/application/dto"
	"github.com/crudonatural/reportes-api/internal/domain"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
)

// ResumenMensual arma el resumen por mes y tipo de cliente de la ventana
// [desde, hasta], en orden cronológico.
//
// Clasificación por pedido, excluyente y en este orden de prioridad:
// entrega en el día > mayorista > minorista. Un pedido mayorista con entrega
// en el día cuenta una sola vez, en el canal de mismo día.
//
// El desglose de sabores se calcula solo desde el texto de los items, sin
// pasar por el catálogo: es el camino independiente del clasificador.
func (uc *ReportesUseCase) ResumenMensual(ctx context.Context, desde, hasta time.Time) dto.ResultadoMensual {
	if hasta.Before(desde) {
		return dto.ResultadoMensual{Error: domain.ErrPeriodoInvalido.Error()}
	}

	pedidos, err := uc.pedidos.ListarPorRango(ctx, desde, hasta)
	if err != nil {
		uc.log.Error().Err(err).Msg("resumen mensual: pedidos")
		return dto.ResultadoMensual{Error: fmt.Sprintf("listar pedidos: %v", err)}
	}

	// buckets por mes, indexados para mantener el orden cronológico
	tipo := make(map[string]*dto.ResumenMes)
	var orden []string
	for cursor := time.Date(desde.Year(), desde.Month(), 1, 0, 0, 0, 0, time.UTC); !cursor.After(hasta); cursor = cursor.AddDate(0, 1, 0) {
		clave := cursor.Format("2006-01")
		tipo[clave] = &dto.ResumenMes{
			Anio:    cursor.Year(),
			Mes:     int(cursor.Month()),
			Sabores: make(map[string]float64),
		}
		orden = append(orden, clave)
	}

	for _, pedido := range pedidos {
		mes, ok := tipo[pedido.CreadoEn.UTC().Format("2006-01")]
		if !ok {
			continue // fuera de la ventana; el repositorio no debería devolverlos
		}
		acumularPedidoEnMes(mes, pedido)
	}

	resultado := dto.ResultadoMensual{Success: true}
	for _, clave := range orden {
		resultado.Meses = append(resultado.Meses, *tipo[clave])
	}
	return resultado
}

// acumularPedidoEnMes suma un pedido al canal que le toca y a los buckets de
// sabor del mes.
func acumularPedidoEnMes(mes *dto.ResumenMes, pedido entity.Pedido) {
	canal := &mes.Minorista
	switch {
	case pedido.EsMismoDia():
		canal = &mes.MismoDia
	case pedido.EsMayorista():
		canal = &mes.Mayorista
	}
	canal.Pedidos++
	canal.Ingresos = canal.Ingresos.Add(pedido.Total)
	canal.Envios = canal.Envios.Add(pedido.CostoEnvio)

	for _, item := range pedido.Items {
		for _, op := range item.Opciones {
			categoria := matching.Clasificar(item.Nombre, op.Nombre)
			if categoria == matching.CategoriaOtros {
				continue
			}
			kilos := matching.Kilos(item.Nombre, op.Nombre) * op.Cantidad
			if kilos > 0 {
				mes.Sabores[string(categoria)] += kilos
			}
		}
		if len(item.Opciones) == 0 {
			categoria := matching.Clasificar(item.Nombre, "")
			if categoria == matching.CategoriaOtros {
				continue
			}
			kilos := matching.Kilos(item.Nombre, "") * item.Cantidad
			if kilos > 0 {
				mes.Sabores[string(categoria)] += kilos
			}
		}
	}
}

// SerieMensual devuelve los kilos por mes de un punto de venta en la ventana,
// en orden cronológico. Usa el catálogo del mes de cierre de la ventana.
func (uc *ReportesUseCase) SerieMensual(ctx context.Context, puntoVentaID string, desde, hasta time.Time) dto.ResultadoSerie {
	punto, err := uc.puntos.ObtenerPorID(ctx, puntoVentaID)
	if err != nil {
		if errors.Is(err, domain.ErrPuntoVentaNoEncontrado) {
			return dto.ResultadoSerie{Error: err.Error()}
		}
		uc.log.Error().Err(err).Str("punto_venta_id", puntoVentaID).Msg("serie mensual: punto de venta")
		return dto.ResultadoSerie{Error: fmt.Sprintf("punto de venta %s: %v", puntoVentaID, err)}
	}

	catalogo, err := uc.cargador.Cargar(ctx, hasta.Year(), int(hasta.Month()))
	if err != nil {
		uc.log.Error().Err(err).Msg("serie mensual: catálogo")
		return dto.ResultadoSerie{Error: err.Error()}
	}

	pedidos, err := uc.pedidos.ListarPorPuntoVenta(ctx, puntoVentaID, desde, hasta)
	if err != nil {
		uc.log.Error().Err(err).Msg("serie mensual: pedidos")
		return dto.ResultadoSerie{Error: fmt.Sprintf("pedidos de %s: %v", punto.Nombre, err)}
	}

	matcher := matching.NuevoMatcher(catalogo)
	kilosPorMes := make(map[string]float64)
	var diagnosticos []dto.DiagnosticoItem
	for _, pedido := range pedidos {
		fold := nuevoFold()
		fold.acumular(matcher, pedido, punto.Nombre)
		kilosPorMes[pedido.CreadoEn.UTC().Format("2006-01")] += fold.TotalKilos
		diagnosticos = append(diagnosticos, fold.Diagnosticos...)
	}

	serie := &dto.SerieMensualPuntoVenta{PuntoVentaID: punto.ID, Nombre: punto.Nombre}
	for cursor := time.Date(desde.Year(), desde.Month(), 1, 0, 0, 0, 0, time.UTC); !cursor.After(hasta); cursor = cursor.AddDate(0, 1, 0) {
		serie.Meses = append(serie.Meses, dto.KilosDeMes{
			Anio:  cursor.Year(),
			Mes:   int(cursor.Month()),
			Kilos: kilosPorMes[cursor.Format("2006-01")],
		})
	}

	return dto.ResultadoSerie{Success: true, Serie: serie, Diagnosticos: diagnosticos}
}
