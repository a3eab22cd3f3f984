package matching

import (
	"strings"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

// Catalogo es el índice en memoria del catálogo mayorista de un período.
// Es inmutable después de construido: un cálculo de reportes lo comparte entre
// goroutines sin locks.
type Catalogo struct {
	porClave  map[string]entity.ProductoCatalogo // clave: seccion + "||" + nombre completo
	productos []entity.ProductoCatalogo          // orden de carga, estable entre corridas
}

// claveIndice califica el nombre por sección para que un mismo sabor en PERRO
// y GATO nunca colisione.
func claveIndice(seccion entity.Seccion, nombreCompleto string) string {
	return string(seccion) + "||" + nombreCompleto
}

// NuevoCatalogo construye el índice desde los registros de precios de un
// período. Por cada registro deriva:
//   - NombreCompleto = "<producto> <peso>" normalizado;
//   - KilosPorUnidad vía extracción de peso (1 si no es positivo);
//   - GroupKey para agrupar columnas: las variantes RAW "OREJA*" colapsan en
//     un solo grupo y BIG DOG conserva el nombre completo.
func NuevoCatalogo(precios []entity.Precio) *Catalogo {
	c := &Catalogo{porClave: make(map[string]entity.ProductoCatalogo, len(precios))}
	for _, pr := range precios {
		producto := Normalizar(pr.Producto)
		nombreCompleto := Normalizar(strings.TrimSpace(pr.Producto + " " + pr.Peso))

		kilos := Kilos(pr.Producto, pr.Peso)
		if kilos <= 0 {
			kilos = 1
		}

		p := entity.ProductoCatalogo{
			NombreCompleto: nombreCompleto,
			Producto:       producto,
			Peso:           Normalizar(pr.Peso),
			KilosPorUnidad: kilos,
			Seccion:        pr.Seccion,
			GroupKey:       groupKey(pr.Seccion, producto, nombreCompleto),
		}

		clave := claveIndice(p.Seccion, p.NombreCompleto)
		if _, existe := c.porClave[clave]; existe {
			continue // duplicado exacto en la lista de precios: gana el primero
		}
		c.porClave[clave] = p
		c.productos = append(c.productos, p)
	}
	return c
}

func groupKey(seccion entity.Seccion, producto, nombreCompleto string) string {
	if seccion == entity.SeccionRaw && strings.Contains(producto, "OREJA") {
		return "OREJAS"
	}
	if strings.Contains(producto, "BIG DOG") {
		return nombreCompleto
	}
	return producto
}

// Vacio indica si el catálogo no tiene productos.
func (c *Catalogo) Vacio() bool { return len(c.productos) == 0 }

// Cantidad devuelve cuántos productos indexa el catálogo.
func (c *Catalogo) Cantidad() int { return len(c.productos) }

// PorNombreCompleto busca el match exacto de nombre completo dentro de una
// sección. Con sección vacía busca en todas, en orden de carga.
func (c *Catalogo) PorNombreCompleto(seccion entity.Seccion, nombre string) (entity.ProductoCatalogo, bool) {
	if seccion != "" {
		p, ok := c.porClave[claveIndice(seccion, nombre)]
		return p, ok
	}
	for _, p := range c.productos {
		if p.NombreCompleto == nombre {
			return p, true
		}
	}
	return entity.ProductoCatalogo{}, false
}

// Candidatos devuelve los productos de una sección en orden estable. Con
// sección vacía devuelve todos.
func (c *Catalogo) Candidatos(seccion entity.Seccion) []entity.ProductoCatalogo {
	if seccion == "" {
		return c.productos
	}
	var out []entity.ProductoCatalogo
	for _, p := range c.productos {
		if p.Seccion == seccion {
			out = append(out, p)
		}
	}
	return out
}

// Todos devuelve todos los productos en orden de carga.
func (c *Catalogo) Todos() []entity.ProductoCatalogo { return c.productos }
