package reportes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

func TestEstadisticas_PuntoVenta(t *testing.T) {
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Veterinaria Norte", Zona: "Norte", Telefono: "111", Activo: true},
		{ID: "pv-2", Nombre: "Cerrada", Activo: false},
	}}
	// dos pedidos de 10 kg y un último de 5 kg, con 10 días entre el primero
	// y el último
	pedidos := &pedidosFake{pedidos: []entity.Pedido{
		pedidoMarzo(5, "pv-1", entity.ItemPedido{Nombre: "PERRO POLLO", Opciones: []entity.OpcionItem{{Nombre: "10KG", Cantidad: 1}}}),
		pedidoMarzo(10, "pv-1", entity.ItemPedido{Nombre: "PERRO POLLO", Opciones: []entity.OpcionItem{{Nombre: "10KG", Cantidad: 1}}}),
		pedidoMarzo(15, "pv-1", entity.ItemPedido{Nombre: "GATO VACA", Opciones: []entity.OpcionItem{{Nombre: "5KG", Cantidad: 1}}}),
	}}

	uc := armarUseCase(preciosMarzo(), pedidos, puntos)
	resultado := uc.Estadisticas(
		context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
	)

	require.True(t, resultado.Success, "error: %s", resultado.Error)
	require.Len(t, resultado.PuntosVenta, 1, "solo los puntos activos")

	stats := resultado.PuntosVenta[0]
	assert.Equal(t, "pv-1", stats.ID)
	assert.Equal(t, "Veterinaria Norte", stats.Nombre)
	assert.Equal(t, 25.0, stats.KgTotales)
	assert.Equal(t, 3, stats.TotalPedidos)
	assert.InDelta(t, 25.0/3, stats.PromedioKgPorPedido, 0.001)
	assert.Equal(t, 5.0, stats.KgUltimaCompra)
	assert.InDelta(t, 5.0, stats.FrecuenciaCompra, 0.001)
	require.NotNil(t, stats.FechaPrimerPedido)
	require.NotNil(t, stats.FechaUltimoPedido)
	assert.Equal(t, 5, stats.FechaPrimerPedido.Day())
	assert.Equal(t, 15, stats.FechaUltimoPedido.Day())
}

func TestEstadisticas_SinPedidos(t *testing.T) {
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Sin Movimiento", Activo: true},
	}}

	uc := armarUseCase(preciosMarzo(), &pedidosFake{}, puntos)
	resultado := uc.Estadisticas(
		context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	)

	require.True(t, resultado.Success)
	require.Len(t, resultado.PuntosVenta, 1)

	stats := resultado.PuntosVenta[0]
	assert.Zero(t, stats.KgTotales)
	assert.Zero(t, stats.TotalPedidos)
	assert.Zero(t, stats.FrecuenciaCompra)
	assert.Nil(t, stats.FechaPrimerPedido)
	assert.Nil(t, stats.FechaUltimoPedido)
}

func TestEstadisticas_UnSoloPedido(t *testing.T) {
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Nueva", Activo: true},
	}}
	pedidos := &pedidosFake{pedidos: []entity.Pedido{
		pedidoMarzo(8, "pv-1", entity.ItemPedido{Nombre: "GATO VACA", Opciones: []entity.OpcionItem{{Nombre: "5KG", Cantidad: 2}}}),
	}}

	uc := armarUseCase(preciosMarzo(), pedidos, puntos)
	resultado := uc.Estadisticas(
		context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	)

	require.True(t, resultado.Success)
	stats := resultado.PuntosVenta[0]
	assert.Equal(t, 10.0, stats.KgTotales)
	assert.Equal(t, 10.0, stats.KgUltimaCompra)
	assert.Zero(t, stats.FrecuenciaCompra, "un solo pedido no tiene frecuencia")
}
