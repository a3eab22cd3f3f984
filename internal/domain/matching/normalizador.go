// Package matching resuelve items de pedido en texto libre contra el catálogo
// mayorista: normalización, extracción de peso, clasificación por categoría y
// la cadena de estrategias de matching.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarTildes descompone en NFD, elimina las marcas diacríticas y recompone.
// "JAMÓN" queda "JAMON"; la eñe se descompone en N + virgulilla, que también
// es una marca, así que "Ñ" queda "N".
var quitarTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar lleva un nombre de texto libre a la forma canónica usada en todo
// el matching: mayúsculas, sin tildes, espacios colapsados y sin bordes.
func Normalizar(s string) string {
	limpio, _, err := transform.String(quitarTildes, s)
	if err != nil {
		limpio = s
	}
	limpio = strings.ToUpper(limpio)
	return strings.Join(strings.Fields(limpio), " ")
}

// palabras devuelve las palabras de un nombre ya normalizado.
func palabras(s string) []string {
	return strings.Fields(s)
}

// contieneTodasLasPalabras verifica que cada palabra de producto aparezca como
// substring del nombre del item. Es el criterio del fallback parcial y de la
// confirmación en el match por opción.
func contieneTodasLasPalabras(nombreItem, producto string) bool {
	ps := palabras(producto)
	if len(ps) == 0 {
		return false
	}
	for _, p := range ps {
		if !strings.Contains(nombreItem, p) {
			return false
		}
	}
	return true
}
