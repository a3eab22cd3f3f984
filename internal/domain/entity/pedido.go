package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoPedido distingue pedidos mayoristas (puntos de venta) de minoristas.
type TipoPedido string

const (
	TipoMayorista TipoPedido = "mayorista"
	TipoMinorista TipoPedido = "minorista"
)

// MedioPagoTransferencia es el medio de pago legado que marcaba los pedidos
// de entrega en el día antes de que existiera el flag explícito.
const MedioPagoTransferencia = "transferencia"

// OpcionItem es una opción elegida dentro de un item de pedido (ej. "5KG" x2).
// Los nombres vienen de texto libre: sin garantías de mayúsculas ni espacios.
type OpcionItem struct {
	Nombre   string
	Cantidad float64
}

// ItemPedido es una línea de pedido tal como la guardó la tienda.
// No hay foreign key al catálogo: el nombre es la única referencia al producto.
type ItemPedido struct {
	Nombre          string
	Opciones        []OpcionItem
	Cantidad        float64 // cantidad directa cuando el item no tiene opciones
	EntregaMismoDia bool
}

// Pedido es un pedido ya ingresado desde la tienda, de solo lectura.
type Pedido struct {
	ID              string
	Items           []ItemPedido
	Tipo            TipoPedido
	EntregaMismoDia bool // flag de la zona de entrega
	MedioPago       string
	CreadoEn        time.Time
	DiaEntrega      *time.Time
	PuntoVentaID    string
	Total           decimal.Decimal
	CostoEnvio      decimal.Decimal
}

// EsMismoDia clasifica el pedido como entrega en el día. El flag explícito,
// el medio de pago legado por transferencia o cualquier item marcado alcanzan.
// Esta clasificación tiene prioridad sobre la de mayorista en los resúmenes
// mensuales: un pedido mayorista con entrega en el día cuenta como mismo día.
func (p Pedido) EsMismoDia() bool {
	if p.EntregaMismoDia {
		return true
	}
	if p.MedioPago == MedioPagoTransferencia {
		return true
	}
	for _, it := range p.Items {
		if it.EntregaMismoDia {
			return true
		}
	}
	return false
}

// EsMayorista indica si el pedido pertenece a un punto de venta.
func (p Pedido) EsMayorista() bool {
	return p.Tipo == TipoMayorista
}
