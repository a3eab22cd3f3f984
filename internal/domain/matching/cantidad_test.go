package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
)

func TestCantidad(t *testing.T) {
	perroPollo := entity.ProductoCatalogo{
		NombreCompleto: "PERRO POLLO 10KG", Producto: "PERRO POLLO",
		Peso: "10KG", KilosPorUnidad: 10, Seccion: entity.SeccionPerro,
	}
	bigDog := entity.ProductoCatalogo{
		NombreCompleto: "BIG DOG POLLO 15KG", Producto: "BIG DOG POLLO",
		Peso: "15KG", KilosPorUnidad: 15, Seccion: entity.SeccionPerro,
	}
	orejas := entity.ProductoCatalogo{
		NombreCompleto: "OREJA DE VACA X50", Producto: "OREJA DE VACA",
		Peso: "X50", KilosPorUnidad: 1, Seccion: entity.SeccionRaw,
	}
	higado := entity.ProductoCatalogo{
		NombreCompleto: "HIGADO 100GRS", Producto: "HIGADO 100GRS",
		KilosPorUnidad: 1, Seccion: entity.SeccionRaw,
	}

	casos := []struct {
		nombre   string
		item     entity.ItemPedido
		producto entity.ProductoCatalogo
		esperado float64
	}{
		{
			"kilos de la opción por cantidad",
			entity.ItemPedido{Nombre: "BOX PERRO POLLO", Opciones: []entity.OpcionItem{{Nombre: "5KG", Cantidad: 2}}},
			perroPollo,
			10,
		},
		{
			"big dog multiplica el peso fijo",
			entity.ItemPedido{Nombre: "BIG DOG", Opciones: []entity.OpcionItem{{Nombre: "POLLO", Cantidad: 2}}},
			bigDog,
			30,
		},
		{
			"pack por unidad multiplica por N",
			entity.ItemPedido{Nombre: "OREJA DE VACA", Opciones: []entity.OpcionItem{{Nombre: "X50", Cantidad: 3}}},
			orejas,
			150,
		},
		{
			"gramos acumulan unidades crudas",
			entity.ItemPedido{Nombre: "HIGADO 100GRS", Opciones: []entity.OpcionItem{{Nombre: "100GRS", Cantidad: 4}}},
			higado,
			4,
		},
		{
			"opción en gramos no escala a kilos",
			entity.ItemPedido{Nombre: "HIGADO FRESCO", Opciones: []entity.OpcionItem{{Nombre: "750GRS", Cantidad: 1}}},
			entity.ProductoCatalogo{
				NombreCompleto: "HIGADO", Producto: "HIGADO",
				KilosPorUnidad: 1, Seccion: entity.SeccionRaw,
			},
			1,
		},
		{
			"opción sin kilos cae al peso de catálogo",
			entity.ItemPedido{Nombre: "PERRO POLLO", Opciones: []entity.OpcionItem{{Nombre: "BOLSA", Cantidad: 2}}},
			perroPollo,
			20,
		},
		{
			"sin opciones usa el catálogo directo",
			entity.ItemPedido{Nombre: "PERRO POLLO", Cantidad: 3},
			perroPollo,
			30,
		},
		{
			"sin opciones ni cantidad asume una unidad",
			entity.ItemPedido{Nombre: "PERRO POLLO"},
			perroPollo,
			10,
		},
		{
			"varias opciones suman",
			entity.ItemPedido{Nombre: "PROMO PERRO POLLO", Opciones: []entity.OpcionItem{
				{Nombre: "5KG", Cantidad: 1},
				{Nombre: "10KG", Cantidad: 1},
			}},
			perroPollo,
			15,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, matching.Cantidad(c.item, c.producto))
		})
	}
}
