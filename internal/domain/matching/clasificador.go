package matching

import "strings"

// Categoria es un bucket fijo del desglose por sabor. Se calcula solo a partir
// del texto del item, sin consultar el catálogo: dos caminos independientes
// que no deben mezclarse.
type Categoria string

const (
	CategoriaPollo          Categoria = "pollo"
	CategoriaVaca           Categoria = "vaca"
	CategoriaCerdo          Categoria = "cerdo"
	CategoriaCordero        Categoria = "cordero"
	CategoriaBigDogPollo    Categoria = "bigDogPollo"
	CategoriaBigDogVaca     Categoria = "bigDogVaca"
	CategoriaGatoPollo      Categoria = "gatoPollo"
	CategoriaGatoVaca       Categoria = "gatoVaca"
	CategoriaGatoCordero    Categoria = "gatoCordero"
	CategoriaHuesosCarnosos Categoria = "huesosCarnosos"
	CategoriaOtros          Categoria = "otros"
)

// Categorias devuelve los buckets en orden estable de presentación.
func Categorias() []Categoria {
	return []Categoria{
		CategoriaPollo, CategoriaVaca, CategoriaCerdo, CategoriaCordero,
		CategoriaBigDogPollo, CategoriaBigDogVaca,
		CategoriaGatoPollo, CategoriaGatoVaca, CategoriaGatoCordero,
		CategoriaHuesosCarnosos,
	}
}

// Clasificar asigna el bucket de sabor a un item por prioridad:
// BIG DOG > GATO > sabor PERRO > HUESOS CARNOSOS estricto > otros.
// HUESOS CARNOSOS excluye RECREATIVO y CALDO: los huesos recreativos y el
// caldo de huesos son complementos, no producto principal.
func Clasificar(nombreProducto, nombreOpcion string) Categoria {
	n := Normalizar(strings.TrimSpace(nombreProducto + " " + nombreOpcion))

	if strings.Contains(n, "BIG DOG") {
		switch {
		case strings.Contains(n, "VACA"):
			return CategoriaBigDogVaca
		case strings.Contains(n, "POLLO"):
			return CategoriaBigDogPollo
		default:
			return CategoriaOtros
		}
	}

	if strings.Contains(n, "GATO") {
		switch {
		case strings.Contains(n, "POLLO"):
			return CategoriaGatoPollo
		case strings.Contains(n, "VACA"):
			return CategoriaGatoVaca
		case strings.Contains(n, "CORDERO"):
			return CategoriaGatoCordero
		default:
			return CategoriaOtros
		}
	}

	switch {
	case strings.Contains(n, "POLLO"):
		return CategoriaPollo
	case strings.Contains(n, "VACA"):
		return CategoriaVaca
	case strings.Contains(n, "CERDO"):
		return CategoriaCerdo
	case strings.Contains(n, "CORDERO"):
		return CategoriaCordero
	}

	if strings.Contains(n, "HUESOS CARNOSOS") &&
		!strings.Contains(n, "RECREATIVO") &&
		!strings.Contains(n, "CALDO") {
		return CategoriaHuesosCarnosos
	}

	return CategoriaOtros
}
