package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crudonatural/reportes-api/internal/domain/entity"
	"github.com/crudonatural/reportes-api/internal/domain/matching"
)

// catalogoDePrueba es el catálogo compartido por los tests de matching: una
// muestra chica pero representativa de cada sección.
func catalogoDePrueba() *matching.Catalogo {
	return matching.NuevoCatalogo([]entity.Precio{
		{Seccion: entity.SeccionPerro, Producto: "PERRO POLLO", Peso: "10KG"},
		{Seccion: entity.SeccionPerro, Producto: "PERRO VACA", Peso: "10KG"},
		{Seccion: entity.SeccionPerro, Producto: "BIG DOG POLLO", Peso: "15KG"},
		{Seccion: entity.SeccionPerro, Producto: "BIG DOG VACA", Peso: "15KG"},
		{Seccion: entity.SeccionGato, Producto: "GATO POLLO", Peso: "5KG"},
		{Seccion: entity.SeccionGato, Producto: "GATO VACA", Peso: "5KG"},
		{Seccion: entity.SeccionOtros, Producto: "HUESOS CARNOSOS 5KG", Peso: ""},
		{Seccion: entity.SeccionRaw, Producto: "OREJA DE VACA", Peso: "X50"},
		{Seccion: entity.SeccionRaw, Producto: "OREJA DE CERDO", Peso: "X50"},
		{Seccion: entity.SeccionRaw, Producto: "HIGADO 100GRS", Peso: ""},
		{Seccion: entity.SeccionRaw, Producto: "CORAZON X30", Peso: ""},
	})
}

func TestNuevoCatalogo_Derivaciones(t *testing.T) {
	cat := catalogoDePrueba()
	require.Equal(t, 11, cat.Cantidad())

	perroPollo, ok := cat.PorNombreCompleto(entity.SeccionPerro, "PERRO POLLO 10KG")
	require.True(t, ok)
	assert.Equal(t, "PERRO POLLO", perroPollo.Producto)
	assert.Equal(t, 10.0, perroPollo.KilosPorUnidad)
	assert.Equal(t, "PERRO POLLO", perroPollo.GroupKey)

	// BIG DOG conserva el nombre completo como clave de grupo
	bigDog, ok := cat.PorNombreCompleto(entity.SeccionPerro, "BIG DOG POLLO 15KG")
	require.True(t, ok)
	assert.Equal(t, "BIG DOG POLLO 15KG", bigDog.GroupKey)
	assert.Equal(t, 15.0, bigDog.KilosPorUnidad)

	// las variantes de oreja colapsan en un solo grupo
	orejaVaca, ok := cat.PorNombreCompleto(entity.SeccionRaw, "OREJA DE VACA X50")
	require.True(t, ok)
	orejaCerdo, ok := cat.PorNombreCompleto(entity.SeccionRaw, "OREJA DE CERDO X50")
	require.True(t, ok)
	assert.Equal(t, "OREJAS", orejaVaca.GroupKey)
	assert.Equal(t, orejaVaca.GroupKey, orejaCerdo.GroupKey)

	// sin peso derivable: kilos por unidad cae a 1
	higado, ok := cat.PorNombreCompleto(entity.SeccionRaw, "HIGADO 100GRS")
	require.True(t, ok)
	assert.Equal(t, 1.0, higado.KilosPorUnidad)
}

// TestNuevoCatalogo_SeccionesNoColisionan: el mismo nombre completo en dos
// secciones produce dos productos distintos.
func TestNuevoCatalogo_SeccionesNoColisionan(t *testing.T) {
	cat := matching.NuevoCatalogo([]entity.Precio{
		{Seccion: entity.SeccionPerro, Producto: "CORDERO", Peso: "10KG"},
		{Seccion: entity.SeccionGato, Producto: "CORDERO", Peso: "10KG"},
	})
	require.Equal(t, 2, cat.Cantidad())

	perro, ok := cat.PorNombreCompleto(entity.SeccionPerro, "CORDERO 10KG")
	require.True(t, ok)
	gato, ok := cat.PorNombreCompleto(entity.SeccionGato, "CORDERO 10KG")
	require.True(t, ok)
	assert.Equal(t, entity.SeccionPerro, perro.Seccion)
	assert.Equal(t, entity.SeccionGato, gato.Seccion)
}

func TestCuentaEnTotal(t *testing.T) {
	assert.True(t, entity.ProductoCatalogo{Seccion: entity.SeccionPerro}.CuentaEnTotal())
	assert.True(t, entity.ProductoCatalogo{Seccion: entity.SeccionGato}.CuentaEnTotal())
	assert.True(t, entity.ProductoCatalogo{Seccion: entity.SeccionOtros, Producto: "HUESOS CARNOSOS 5KG"}.CuentaEnTotal())
	assert.False(t, entity.ProductoCatalogo{Seccion: entity.SeccionOtros, Producto: "CORNALITOS"}.CuentaEnTotal())
	assert.False(t, entity.ProductoCatalogo{Seccion: entity.SeccionRaw, Producto: "OREJA DE VACA"}.CuentaEnTotal())
}
