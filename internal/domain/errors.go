package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrCatalogoNoDisponible: no hay precios mayoristas en el período pedido
	// ni en ningún período de fallback. Es la única condición fatal de un
	// cálculo de reportes.
	ErrCatalogoNoDisponible = errors.New("catálogo mayorista no disponible en ningún período")

	// ErrSinCoincidencia: un item de pedido no matcheó contra el catálogo.
	// No es fatal: el item se excluye del total y queda en diagnósticos.
	ErrSinCoincidencia = errors.New("item sin coincidencia en el catálogo")

	// ErrPedidoMalformado: el pedido no trae items válidos; se saltea.
	ErrPedidoMalformado = errors.New("pedido sin items válidos")

	ErrPuntoVentaNoEncontrado = errors.New("punto de venta no encontrado")
	ErrPeriodoInvalido        = errors.New("período inválido")
)
