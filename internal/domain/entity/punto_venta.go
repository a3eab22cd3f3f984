package entity

// PuntoVenta es una cuenta mayorista (local o comercio) que recibe pedidos.
type PuntoVenta struct {
	ID       string
	Nombre   string
	Zona     string
	Telefono string
	Activo   bool
}
