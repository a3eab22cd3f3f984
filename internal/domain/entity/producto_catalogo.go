package entity

import "strings"

// Seccion agrupa los productos del catálogo mayorista por línea.
type Seccion string

const (
	SeccionPerro Seccion = "PERRO"
	SeccionGato  Seccion = "GATO"
	SeccionOtros Seccion = "OTROS"
	SeccionRaw   Seccion = "RAW"
)

// ProductoCatalogo es un producto del catálogo mayorista ya indexado para matching.
// NombreCompleto y Producto están normalizados (mayúsculas, sin tildes).
// La clave de unicidad es (Seccion, NombreCompleto): dos sabores con el mismo
// nombre en PERRO y GATO son productos distintos y nunca deben colisionar.
type ProductoCatalogo struct {
	NombreCompleto string  // nombre completo de catálogo, ej. "PERRO POLLO 10KG"
	Producto       string  // nombre del producto sin peso, ej. "PERRO POLLO"
	Peso           string  // campo de peso tal como viene del precio, ej. "10KG", "X50"
	KilosPorUnidad float64 // kilos por unidad vendida (1 si no se pudo derivar)
	Seccion        Seccion
	GroupKey       string // clave de agrupación para columnas del reporte
}

// CuentaEnTotal indica si el producto suma al total de kilos del punto de venta.
// PERRO y GATO siempre; OTROS solo HUESOS CARNOSOS; RAW nunca (se vende por
// unidad o en gramos, no en kilos comparables).
func (p ProductoCatalogo) CuentaEnTotal() bool {
	switch p.Seccion {
	case SeccionPerro, SeccionGato:
		return true
	case SeccionOtros:
		return strings.Contains(p.Producto, "HUESOS CARNOSOS")
	default:
		return false
	}
}
