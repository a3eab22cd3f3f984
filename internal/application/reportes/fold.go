package reportes

import (
	"strings"

	"github.com/crudonatural/reportes-api/internal/application/dto"
	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
)

// foldPedidos acumula el resultado de resolver todos los items de un conjunto
// de pedidos contra el catálogo. Es el corazón de la agregación: matriz,
// estadísticas y series mensuales lo comparten.
type foldPedidos struct {
	// Totales contiene la cantidad acumulada por GroupKey del producto.
	Totales map[string]float64
	// TotalKilos suma solo los productos que cuentan en el total
	// (PERRO/GATO siempre; OTROS solo HUESOS CARNOSOS; RAW nunca).
	TotalKilos float64
	// Diagnosticos acumula los items sin coincidencia, en orden de pedido.
	Diagnosticos []dto.DiagnosticoItem
	// PorEstrategia cuenta cuántos items resolvió cada estrategia.
	PorEstrategia map[matching.Estrategia]int
}

func nuevoFold() *foldPedidos {
	return &foldPedidos{
		Totales:       make(map[string]float64),
		PorEstrategia: make(map[matching.Estrategia]int),
	}
}

// acumular foldea los items de un pedido. Los pedidos sin items se saltean
// (pedido malformado, no fatal); los items sin coincidencia se excluyen del
// total y quedan registrados como diagnóstico.
func (f *foldPedidos) acumular(m *matching.Matcher, pedido entity.Pedido, puntoVenta string) {
	for _, item := range pedido.Items {
		if strings.TrimSpace(item.Nombre) == "" {
			continue
		}
		resultado := m.Resolver(item)
		if !resultado.Encontrado() {
			f.Diagnosticos = append(f.Diagnosticos, dto.DiagnosticoItem{
				PedidoID:   pedido.ID,
				PuntoVenta: puntoVenta,
				Item:       item.Nombre,
				Opciones:   nombresOpciones(item),
				Razon:      resultado.Razon,
			})
			continue
		}

		f.PorEstrategia[resultado.Estrategia]++
		producto := *resultado.Producto
		cantidad := matching.Cantidad(item, producto)
		f.Totales[producto.GroupKey] += cantidad
		if producto.CuentaEnTotal() {
			f.TotalKilos += cantidad
		}
	}
}

func nombresOpciones(item entity.ItemPedido) string {
	if len(item.Opciones) == 0 {
		return ""
	}
	nombres := make([]string, len(item.Opciones))
	for i, op := range item.Opciones {
		nombres[i] = op.Nombre
	}
	return strings.Join(nombres, ", ")
}
