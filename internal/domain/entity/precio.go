package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoPrecioMayorista identifica los registros de la lista de precios mayorista,
// la única que alimenta el catálogo de reportes.
const TipoPrecioMayorista = "MAYORISTA"

// Precio es un registro crudo de la lista de precios para un período (mes, año).
// De acá se deriva el catálogo de matching; el monto no participa del matching
// pero se conserva porque el período vigente se define por estos registros.
type Precio struct {
	Seccion      Seccion
	Producto     string
	Peso         string
	TipoPrecio   string
	Monto        decimal.Decimal
	Activo       bool
	Mes          int
	Anio         int
	VigenteDesde time.Time
}
