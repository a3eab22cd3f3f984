package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// PesoBigDog es el peso fijo de la línea BIG DOG: siempre 15 kg, el nombre
// nunca trae el peso explícito.
const PesoBigDog = 15.0

var (
	reKilos         = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*K?G`)
	reGramos        = regexp.MustCompile(`(?i)(\d+)\s*GRS`)
	reMultiplicador = regexp.MustCompile(`(?i)X\s*(\d+)`)
)

// exclusionesPeso: productos que nunca aportan kilos aunque el nombre traiga
// un número (se venden por unidad o son complementos).
var exclusionesPeso = []string{"CORNALITO", "GARRA", "CALDO", "COMPLEMENTO"}

// Kilos extrae el peso en kilos de un producto a partir de su nombre y de la
// opción elegida. El orden de evaluación es determinante y no debe cambiarse:
//
//  1. Exclusiones → 0: OREJA*, "<N>GRS" con N < 1000, complementos.
//  2. BIG DOG → 15 fijo.
//  3. Regex de kilos sobre la opción primero, después sobre el nombre.
//  4. BOX sin peso explícito → 5 (GATO) o 10 (resto).
//  5. Nada → 0.
func Kilos(nombreProducto, nombreOpcion string) float64 {
	nombre := Normalizar(nombreProducto)
	opcion := Normalizar(nombreOpcion)
	combinado := strings.TrimSpace(nombre + " " + opcion)

	if strings.Contains(nombre, "OREJA") {
		return 0
	}
	if m := reGramos.FindStringSubmatch(combinado); m != nil {
		if grs, err := strconv.Atoi(m[1]); err == nil && grs < 1000 {
			return 0
		}
	}
	for _, excl := range exclusionesPeso {
		if strings.Contains(nombre, excl) {
			return 0
		}
	}

	if strings.Contains(nombre, "BIG DOG") {
		return PesoBigDog
	}

	if kg, ok := extraerKilos(opcion); ok {
		return kg
	}
	if kg, ok := extraerKilos(nombre); ok {
		return kg
	}

	if strings.Contains(nombre, "BOX") {
		if strings.Contains(nombre, "GATO") {
			return 5
		}
		return 10
	}

	return 0
}

// extraerKilos aplica la regex de kilos sobre un texto ya normalizado.
func extraerKilos(s string) (float64, bool) {
	m := reKilos.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	kg, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return kg, true
}

// Multiplicador extrae el multiplicador de pack "X<N>" de un campo de peso
// ("X50" → 50). Si no hay multiplicador devuelve 1.
func Multiplicador(peso string) float64 {
	m := reMultiplicador.FindStringSubmatch(Normalizar(peso))
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return float64(n)
}

// EsGramos indica si el nombre denota un producto en gramos ("HIGADO 100GRS").
// Estos productos se acumulan por unidad, sin escalar a kilos.
func EsGramos(nombre string) bool {
	return reGramos.MatchString(Normalizar(nombre))
}

// EsBigDog indica si el nombre pertenece a la línea BIG DOG.
func EsBigDog(nombre string) bool {
	return strings.Contains(Normalizar(nombre), "BIG DOG")
}
