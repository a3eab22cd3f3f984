package matching

import (
	"strings"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
)

// Estrategia identifica qué paso de la cadena resolvió un item. Queda en el
// resultado para diagnóstico y telemetría.
type Estrategia string

const (
	EstrategiaNombreCompleto Estrategia = "nombre_completo"
	EstrategiaProducto       Estrategia = "producto"
	EstrategiaPorOpcion      Estrategia = "por_opcion"
	EstrategiaBigDog         Estrategia = "big_dog"
	EstrategiaBoxPrefijo     Estrategia = "box_prefijo"
	EstrategiaCombinada      Estrategia = "item_mas_opcion"
	EstrategiaParcial        Estrategia = "parcial"
)

// Resultado es el resultado de resolver un item: o bien un producto del
// catálogo con la estrategia que lo encontró, o bien la razón del no-match.
type Resultado struct {
	Producto   *entity.ProductoCatalogo
	Estrategia Estrategia
	Razon      string
}

// Encontrado indica si el item matcheó contra el catálogo.
func (r Resultado) Encontrado() bool { return r.Producto != nil }

// contexto agrupa lo que las estrategias necesitan de un item ya normalizado.
type contexto struct {
	nombre     string
	opciones   []string
	seccion    entity.Seccion // sección detectada; vacía si no se pudo
	candidatos []entity.ProductoCatalogo
	catalogo   *Catalogo
}

// estrategiaMatch es un paso de la cadena: un resolver que devuelve el
// producto o nil. La cadena es un fold que corta en el primer éxito.
type estrategiaMatch struct {
	nombre   Estrategia
	resolver func(ctx *contexto) *entity.ProductoCatalogo
}

// Matcher resuelve items de pedido contra un catálogo inmutable.
// El orden de la cadena es determinante: las estrategias exactas corren antes
// que el fallback parcial para evitar falsos positivos.
type Matcher struct {
	catalogo *Catalogo
	cadena   []estrategiaMatch
}

// NuevoMatcher arma la cadena de estrategias sobre un catálogo ya cargado.
func NuevoMatcher(catalogo *Catalogo) *Matcher {
	return &Matcher{
		catalogo: catalogo,
		cadena: []estrategiaMatch{
			{EstrategiaNombreCompleto, resolverNombreCompleto},
			{EstrategiaProducto, resolverProducto},
			{EstrategiaPorOpcion, resolverPorOpcion},
			{EstrategiaBigDog, resolverBigDog},
			{EstrategiaBoxPrefijo, resolverBoxPrefijo},
			{EstrategiaCombinada, resolverCombinada},
			{EstrategiaParcial, resolverParcial},
		},
	}
}

// Resolver corre la cadena para un item y devuelve el primer éxito.
func (m *Matcher) Resolver(item entity.ItemPedido) Resultado {
	nombre := Normalizar(item.Nombre)
	if nombre == "" {
		return Resultado{Razon: "item sin nombre"}
	}

	opciones := make([]string, 0, len(item.Opciones))
	for _, op := range item.Opciones {
		if n := Normalizar(op.Nombre); n != "" {
			opciones = append(opciones, n)
		}
	}

	seccion := DetectarSeccion(nombre, opciones)
	ctx := &contexto{
		nombre:     nombre,
		opciones:   opciones,
		seccion:    seccion,
		candidatos: m.catalogo.Candidatos(seccion),
		catalogo:   m.catalogo,
	}

	for _, e := range m.cadena {
		if p := e.resolver(ctx); p != nil {
			return Resultado{Producto: p, Estrategia: e.nombre}
		}
	}
	return Resultado{Razon: "ninguna estrategia coincidió"}
}

// DetectarSeccion infiere la sección del catálogo desde el texto del item.
// GATO y PERRO por substring (BIG DOG cuenta como PERRO); opciones en gramos
// o con multiplicador de pack ("X50") implican RAW. Vacío si no hay señal.
func DetectarSeccion(nombre string, opciones []string) entity.Seccion {
	switch {
	case strings.Contains(nombre, "GATO"):
		return entity.SeccionGato
	case strings.Contains(nombre, "BIG DOG"), strings.Contains(nombre, "PERRO"):
		return entity.SeccionPerro
	}
	for _, op := range opciones {
		if reGramos.MatchString(op) || reMultiplicador.MatchString(op) {
			return entity.SeccionRaw
		}
	}
	return ""
}

// resolverNombreCompleto: match exacto del nombre del item contra el nombre
// completo de catálogo dentro de la sección detectada.
func resolverNombreCompleto(ctx *contexto) *entity.ProductoCatalogo {
	if p, ok := ctx.catalogo.PorNombreCompleto(ctx.seccion, ctx.nombre); ok {
		return &p
	}
	return nil
}

// resolverProducto: match exacto contra el nombre de producto solo (sin peso).
func resolverProducto(ctx *contexto) *entity.ProductoCatalogo {
	for i := range ctx.candidatos {
		if ctx.candidatos[i].Producto == ctx.nombre {
			return &ctx.candidatos[i]
		}
	}
	return nil
}

// resolverPorOpcion: para RAW arma "<item> <opción>" y busca el nombre
// completo; para el resto la opción debe coincidir con el campo de peso del
// candidato y todas las palabras del producto deben aparecer en el item.
func resolverPorOpcion(ctx *contexto) *entity.ProductoCatalogo {
	for _, op := range ctx.opciones {
		if ctx.seccion == entity.SeccionRaw {
			objetivo := ctx.nombre + " " + op
			if p, ok := ctx.catalogo.PorNombreCompleto(entity.SeccionRaw, objetivo); ok {
				return &p
			}
			continue
		}
		for i := range ctx.candidatos {
			c := &ctx.candidatos[i]
			if c.Peso != "" && c.Peso == op && contieneTodasLasPalabras(ctx.nombre, c.Producto) {
				return c
			}
		}
	}
	return nil
}

// resolverBigDog: los items BIG DOG llevan el sabor en la primera opción.
// Se arma "BIG DOG <SABOR>" y se busca en todo el catálogo.
func resolverBigDog(ctx *contexto) *entity.ProductoCatalogo {
	if !strings.Contains(ctx.nombre, "BIG DOG") || len(ctx.opciones) == 0 {
		return nil
	}
	objetivo := "BIG DOG " + ctx.opciones[0]
	for _, p := range ctx.catalogo.Todos() {
		if p.NombreCompleto == objetivo || p.Producto == objetivo {
			q := p
			return &q
		}
	}
	return nil
}

// resolverBoxPrefijo: "BOX PERRO POLLO" es el box del producto "PERRO POLLO".
// Se quita el marcador "BOX " y se intenta el resto como nombre de producto;
// si no, se intenta también sin la palabra de sección.
func resolverBoxPrefijo(ctx *contexto) *entity.ProductoCatalogo {
	var resto string
	switch {
	case strings.HasPrefix(ctx.nombre, "BOX PERRO "):
		resto = strings.TrimPrefix(ctx.nombre, "BOX ")
	case strings.HasPrefix(ctx.nombre, "BOX GATO "):
		resto = strings.TrimPrefix(ctx.nombre, "BOX ")
	default:
		return nil
	}

	objetivos := []string{resto, strings.TrimPrefix(strings.TrimPrefix(resto, "PERRO "), "GATO ")}
	for _, objetivo := range objetivos {
		for i := range ctx.candidatos {
			if ctx.candidatos[i].Producto == objetivo {
				return &ctx.candidatos[i]
			}
		}
	}
	return nil
}

// resolverCombinada: "<item> <opción>" como nombre de producto. Cubre items
// tipo "HUESOS CARNOSOS" con opción "5KG" contra el producto
// "HUESOS CARNOSOS 5KG".
func resolverCombinada(ctx *contexto) *entity.ProductoCatalogo {
	for _, op := range ctx.opciones {
		objetivo := ctx.nombre + " " + op
		for i := range ctx.candidatos {
			if ctx.candidatos[i].Producto == objetivo {
				return &ctx.candidatos[i]
			}
		}
	}
	return nil
}

// resolverParcial: último recurso, todas las palabras del producto del
// candidato aparecen como substring del nombre del item. Corre después de
// todas las estrategias exactas para no robarles matches.
func resolverParcial(ctx *contexto) *entity.ProductoCatalogo {
	for i := range ctx.candidatos {
		if contieneTodasLasPalabras(ctx.nombre, ctx.candidatos[i].Producto) {
			return &ctx.candidatos[i]
		}
	}
	return nil
}
