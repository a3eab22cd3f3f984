package reportes_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crudonatural/reportes-api/internal/application/reportes"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/pkg/logger"
)

// armarUseCase cablea un caso de uso completo sobre fakes.
func armarUseCase(precios *preciosFake, pedidos *pedidosFake, puntos *puntosFake) *reportes.ReportesUseCase {
	log := logger.Nop()
	cargador := reportes.NuevoCargadorCatalogo(precios, log)
	return reportes.NuevoReportesUseCase(pedidos, puntos, cargador, log)
}

func preciosMarzo() *preciosFake {
	return &preciosFake{exactos: map[string][]entity.Precio{
		"2026-03": {
			{Seccion: entity.SeccionPerro, Producto: "PERRO POLLO", Peso: "10KG"},
			{Seccion: entity.SeccionPerro, Producto: "BIG DOG POLLO", Peso: ""},
			{Seccion: entity.SeccionGato, Producto: "GATO VACA", Peso: "5KG"},
		},
	}}
}

func pedidoMarzo(dia int, puntoVentaID string, items ...entity.ItemPedido) entity.Pedido {
	return entity.Pedido{
		ID:           uuid.NewString(),
		Items:        items,
		Tipo:         entity.TipoMayorista,
		CreadoEn:     time.Date(2026, 3, dia, 10, 0, 0, 0, time.UTC),
		PuntoVentaID: puntoVentaID,
	}
}

// TestMatrizProductos_EjemploDelNegocio: un box de 5KG x2 y un BIG DOG POLLO
// suman 10 + 15 = 25 kilos para el punto de venta.
func TestMatrizProductos_EjemploDelNegocio(t *testing.T) {
	pedidos := &pedidosFake{pedidos: []entity.Pedido{
		pedidoMarzo(3, "pv-1", entity.ItemPedido{
			Nombre:   "BOX PERRO POLLO",
			Opciones: []entity.OpcionItem{{Nombre: "5KG", Cantidad: 2}},
		}),
		pedidoMarzo(5, "pv-1", entity.ItemPedido{
			Nombre:   "BIG DOG",
			Opciones: []entity.OpcionItem{{Nombre: "POLLO", Cantidad: 1}},
		}),
	}}
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Pet Shop Centro", Zona: "Centro", Activo: true},
	}}

	uc := armarUseCase(preciosMarzo(), pedidos, puntos)
	resultado := uc.MatrizProductos(context.Background(), 2026, 3)

	require.True(t, resultado.Success, "error: %s", resultado.Error)
	require.Len(t, resultado.PuntosVenta, 1)

	fila := resultado.PuntosVenta[0]
	assert.Equal(t, "pv-1", fila.PuntoVentaID)
	assert.Equal(t, "Pet Shop Centro", fila.PuntoVentaNombre)
	assert.Equal(t, "Centro", fila.Zona)
	assert.Equal(t, 10.0, fila.Productos["PERRO POLLO"])
	assert.Equal(t, 15.0, fila.Productos["BIG DOG POLLO"])
	assert.Equal(t, 25.0, fila.TotalKilos)

	assert.Equal(t, []string{"BIG DOG POLLO", "PERRO POLLO"}, resultado.NombresProductos)
	assert.Empty(t, resultado.Diagnosticos)
}

// TestMatrizProductos_Idempotente: dos corridas sobre el mismo snapshot
// producen bytes idénticos.
func TestMatrizProductos_Idempotente(t *testing.T) {
	pedidos := &pedidosFake{pedidos: []entity.Pedido{
		pedidoMarzo(3, "pv-1",
			entity.ItemPedido{Nombre: "BOX PERRO POLLO", Opciones: []entity.OpcionItem{{Nombre: "5KG", Cantidad: 2}}},
			entity.ItemPedido{Nombre: "GATO VACA"},
		),
		pedidoMarzo(9, "pv-2", entity.ItemPedido{
			Nombre: "BIG DOG", Opciones: []entity.OpcionItem{{Nombre: "POLLO", Cantidad: 2}},
		}),
	}}
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Pet Shop Centro", Zona: "Centro", Activo: true},
		{ID: "pv-2", Nombre: "Veterinaria Norte", Zona: "Norte", Activo: true},
	}}

	uc := armarUseCase(preciosMarzo(), pedidos, puntos)

	primera, err := json.Marshal(uc.MatrizProductos(context.Background(), 2026, 3))
	require.NoError(t, err)
	segunda, err := json.Marshal(uc.MatrizProductos(context.Background(), 2026, 3))
	require.NoError(t, err)
	assert.Equal(t, primera, segunda)
}

// TestMatrizProductos_Diagnosticos: los items sin coincidencia no suman kilos
// pero quedan registrados con su razón.
func TestMatrizProductos_Diagnosticos(t *testing.T) {
	pedidos := &pedidosFake{pedidos: []entity.Pedido{
		pedidoMarzo(3, "pv-1",
			entity.ItemPedido{Nombre: "PRODUCTO DESCONTINUADO"},
			entity.ItemPedido{Nombre: "PERRO POLLO"},
		),
	}}
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Pet Shop Centro", Zona: "Centro", Activo: true},
	}}

	uc := armarUseCase(preciosMarzo(), pedidos, puntos)
	resultado := uc.MatrizProductos(context.Background(), 2026, 3)

	require.True(t, resultado.Success)
	require.Len(t, resultado.Diagnosticos, 1)
	assert.Equal(t, "PRODUCTO DESCONTINUADO", resultado.Diagnosticos[0].Item)
	assert.NotEmpty(t, resultado.Diagnosticos[0].Razon)
	assert.Equal(t, 10.0, resultado.PuntosVenta[0].TotalKilos)
}

// TestMatrizProductos_RawNoSumaAlTotal: los productos RAW aparecen en la
// matriz pero nunca en el total de kilos.
func TestMatrizProductos_RawNoSumaAlTotal(t *testing.T) {
	precios := &preciosFake{exactos: map[string][]entity.Precio{
		"2026-03": {
			{Seccion: entity.SeccionPerro, Producto: "PERRO POLLO", Peso: "10KG"},
			{Seccion: entity.SeccionRaw, Producto: "OREJA DE VACA", Peso: "X50"},
		},
	}}
	pedidos := &pedidosFake{pedidos: []entity.Pedido{
		pedidoMarzo(3, "pv-1",
			entity.ItemPedido{Nombre: "PERRO POLLO"},
			entity.ItemPedido{Nombre: "OREJA DE VACA", Opciones: []entity.OpcionItem{{Nombre: "X50", Cantidad: 1}}},
		),
	}}
	puntos := &puntosFake{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Nombre: "Pet Shop Centro", Zona: "Centro", Activo: true},
	}}

	uc := armarUseCase(precios, pedidos, puntos)
	resultado := uc.MatrizProductos(context.Background(), 2026, 3)

	require.True(t, resultado.Success, "error: %s", resultado.Error)
	fila := resultado.PuntosVenta[0]
	assert.Equal(t, 50.0, fila.Productos["OREJAS"]) // unidades, no kilos
	assert.Equal(t, 10.0, fila.TotalKilos)          // solo PERRO POLLO
}

func TestMatrizProductos_CatalogoNoDisponible(t *testing.T) {
	uc := armarUseCase(&preciosFake{}, &pedidosFake{}, &puntosFake{})

	resultado := uc.MatrizProductos(context.Background(), 2026, 3)
	assert.False(t, resultado.Success)
	assert.NotEmpty(t, resultado.Error)
	assert.Empty(t, resultado.PuntosVenta)
}
