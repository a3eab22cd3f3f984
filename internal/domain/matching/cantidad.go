package matching

import "github.com/crudonatural/reportes-api/internal/domain/entity"

// Cantidad calcula la cantidad que un item matcheado aporta a su producto de
// catálogo: kilos para los productos pesables, unidades para los productos en
// gramos o en packs por unidad ("X50").
//
// Sin opciones el item aporta peso de catálogo × multiplicador × cantidad
// directa. Con opciones se suma el aporte de cada una.
func Cantidad(item entity.ItemPedido, producto entity.ProductoCatalogo) float64 {
	if len(item.Opciones) == 0 {
		cantidad := item.Cantidad
		if cantidad <= 0 {
			cantidad = 1
		}
		return producto.KilosPorUnidad * Multiplicador(producto.Peso) * cantidad
	}

	var total float64
	for _, op := range item.Opciones {
		total += cantidadOpcion(item, op, producto)
	}
	return total
}

// cantidadOpcion calcula el aporte de una opción, en este orden:
//
//  1. producto en gramos → la cantidad cruda, sin escalar (son unidades);
//  2. BIG DOG → 15 kg fijos × cantidad;
//  3. pack por unidad con "X<N>" en el peso → cantidad × N (unidades);
//  4. peso extraído de la opción × cantidad, con las exclusiones del
//     extractor (una opción "750GRS" no son 750 kg);
//  5. fallback: kilos por unidad del catálogo × multiplicador × cantidad.
func cantidadOpcion(item entity.ItemPedido, op entity.OpcionItem, producto entity.ProductoCatalogo) float64 {
	cantidad := op.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}

	if EsGramos(item.Nombre) || EsGramos(producto.NombreCompleto) {
		return cantidad
	}

	if EsBigDog(item.Nombre) || EsBigDog(producto.NombreCompleto) {
		return PesoBigDog * cantidad
	}

	if mult := Multiplicador(producto.Peso); mult > 1 {
		return cantidad * mult
	}

	if kg := Kilos(item.Nombre, op.Nombre); kg > 0 {
		return kg * cantidad
	}

	return producto.KilosPorUnidad * Multiplicador(producto.Peso) * cantidad
}
