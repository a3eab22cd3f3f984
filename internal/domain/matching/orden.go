package matching

import (
	"sort"
	"strings"
)

// ordenCanonico es el orden de negocio de las columnas del reporte: primero
// BIG DOG, después los sabores de PERRO y GATO, HUESOS CARNOSOS, complementos
// y al final la línea RAW. Los empates dentro de un nivel se resuelven
// alfabéticamente.
var ordenCanonico = []string{
	"BIG DOG POLLO",
	"BIG DOG VACA",
	"PERRO POLLO",
	"PERRO CERDO",
	"PERRO VACA",
	"PERRO CORDERO",
	"GATO POLLO",
	"GATO VACA",
	"GATO CORDERO",
	"HUESOS CARNOSOS",
	"GARRAS",
	"CORNALITOS",
	"CALDO",
	"HUESOS RECREATIVOS",
}

// rango asigna el nivel de orden de un nombre de producto. Los nombres que no
// figuran en el orden canónico van después de los complementos; RAW siempre
// al final.
func rango(nombre string) int {
	n := Normalizar(nombre)
	for i, canonico := range ordenCanonico {
		if n == canonico || strings.HasPrefix(n, canonico+" ") {
			return i
		}
	}
	if strings.Contains(n, "RAW") {
		return len(ordenCanonico) + 1
	}
	return len(ordenCanonico)
}

// Comparar es el comparador determinístico de nombres de producto; devuelve
// un valor negativo, cero o positivo como strings.Compare.
func Comparar(a, b string) int {
	ra, rb := rango(a), rango(b)
	if ra != rb {
		return ra - rb
	}
	return strings.Compare(a, b)
}

// Ordenar ordena nombres de producto in place con el orden canónico.
// Es estable y puro: el mismo input produce siempre el mismo output.
func Ordenar(nombres []string) {
	sort.SliceStable(nombres, func(i, j int) bool {
		return Comparar(nombres[i], nombres[j]) < 0
	})
}
