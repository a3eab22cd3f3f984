package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crudonatural/reportes-api/internal/domain/matching"
)

func TestNormalizar(t *testing.T) {
	casos := []struct{ entrada, esperado string }{
		{"perro pollo", "PERRO POLLO"},
		{"  Perro   Pollo  ", "PERRO POLLO"},
		{"HÍGADO", "HIGADO"},
		{"corazón de pollo", "CORAZON DE POLLO"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, matching.Normalizar(c.entrada), "entrada %q", c.entrada)
	}
}
