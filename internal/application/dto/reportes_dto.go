package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodoRequest parámetros de período para los reportes.
type PeriodoRequest struct {
	Anio int `query:"anio"`
	Mes  int `query:"mes"`
}

// RangoRequest ventana de fechas para estadísticas y resúmenes.
type RangoRequest struct {
	Desde string `query:"desde"` // YYYY-MM-DD
	Hasta string `query:"hasta"` // YYYY-MM-DD
}

// ProductoMatrixData fila de la matriz de productos por punto de venta.
type ProductoMatrixData struct {
	PuntoVentaID     string             `json:"puntoVentaId"`
	PuntoVentaNombre string             `json:"puntoVentaNombre"`
	Zona             string             `json:"zona"`
	Productos        map[string]float64 `json:"productos"`
	TotalKilos       float64            `json:"totalKilos"`
}

// DiagnosticoItem un item que no matcheó contra el catálogo, con contexto
// para revisarlo a mano. Reemplaza los descartes silenciosos.
type DiagnosticoItem struct {
	PedidoID   string `json:"pedidoId"`
	PuntoVenta string `json:"puntoVenta,omitempty"`
	Item       string `json:"item"`
	Opciones   string `json:"opciones,omitempty"`
	Razon      string `json:"razon"`
}

// ResultadoMatriz envelope de la matriz de productos.
type ResultadoMatriz struct {
	Success          bool                 `json:"success"`
	PuntosVenta      []ProductoMatrixData `json:"puntosVenta,omitempty"`
	NombresProductos []string             `json:"productNames,omitempty"`
	Diagnosticos     []DiagnosticoItem    `json:"diagnosticos,omitempty"`
	Error            string               `json:"error,omitempty"`
}

// PuntoVentaStats estadísticas de compra de un punto de venta en la ventana.
type PuntoVentaStats struct {
	ID                  string     `json:"_id"`
	Nombre              string     `json:"nombre"`
	Zona                string     `json:"zona"`
	Telefono            string     `json:"telefono"`
	KgTotales           float64    `json:"kgTotales"`
	FrecuenciaCompra    float64    `json:"frecuenciaCompra"` // días promedio entre pedidos
	PromedioKgPorPedido float64    `json:"promedioKgPorPedido"`
	KgUltimaCompra      float64    `json:"kgUltimaCompra"`
	TotalPedidos        int        `json:"totalPedidos"`
	FechaPrimerPedido   *time.Time `json:"fechaPrimerPedido,omitempty"`
	FechaUltimoPedido   *time.Time `json:"fechaUltimoPedido,omitempty"`
}

// ResultadoStats envelope de estadísticas por punto de venta.
type ResultadoStats struct {
	Success      bool              `json:"success"`
	PuntosVenta  []PuntoVentaStats `json:"puntosVenta,omitempty"`
	Diagnosticos []DiagnosticoItem `json:"diagnosticos,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// TotalesCanal acumulado de un canal de venta dentro de un mes.
type TotalesCanal struct {
	Pedidos  int             `json:"pedidos"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Envios   decimal.Decimal `json:"envios"`
}

// ResumenMes resumen de un mes por tipo de cliente. Un pedido mayorista con
// entrega en el día cuenta como mismo día, nunca en los dos canales.
type ResumenMes struct {
	Anio      int                `json:"anio"`
	Mes       int                `json:"mes"`
	MismoDia  TotalesCanal       `json:"mismoDia"`
	Mayorista TotalesCanal       `json:"mayorista"`
	Minorista TotalesCanal       `json:"minorista"`
	Sabores   map[string]float64 `json:"sabores"` // kilos por bucket de sabor
}

// ResultadoMensual envelope del resumen mensual; los meses vienen en orden
// cronológico.
type ResultadoMensual struct {
	Success bool         `json:"success"`
	Meses   []ResumenMes `json:"meses,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// SerieMensualPuntoVenta kilos por mes de un punto de venta, cronológica.
type SerieMensualPuntoVenta struct {
	PuntoVentaID string       `json:"puntoVentaId"`
	Nombre       string       `json:"nombre"`
	Meses        []KilosDeMes `json:"meses"`
}

// KilosDeMes un punto de la serie mensual.
type KilosDeMes struct {
	Anio  int     `json:"anio"`
	Mes   int     `json:"mes"`
	Kilos float64 `json:"kilos"`
}

// ResultadoSerie envelope de la serie mensual de un punto de venta.
type ResultadoSerie struct {
	Success      bool                    `json:"success"`
	Serie        *SerieMensualPuntoVenta `json:"serie,omitempty"`
	Diagnosticos []DiagnosticoItem       `json:"diagnosticos,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
