package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorsur/bodega-api/pkg/rut"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de referencia del algoritmo módulo 11 del SII.
// 12345678 → 5 y 87654321 → 4 se pueden verificar a mano con los pesos 2..7.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeVerifier_Vectores(t *testing.T) {
	cases := map[string]byte{
		"12345678": '5',
		"87654321": '4',
		"7654321":  '6',
		"11111111": '1',
	}
	for body, expected := range cases {
		assert.Equal(t, string(expected), string(rut.ComputeVerifier(body)),
			"dígito verificador de %s", body)
	}
}

func TestValidate_RutsValidos(t *testing.T) {
	valid := []string{
		"12345678-5",
		"12.345.678-5",
		"123456785",
		"87654321-4",
	}
	for _, r := range valid {
		assert.NoError(t, rut.Validate(r), "el RUT %s debe ser válido", r)
	}
}

func TestValidate_DigitoIncorrecto(t *testing.T) {
	err := rut.Validate("12345678-9")
	require.Error(t, err, "dígito verificador incorrecto debe fallar")
	assert.Contains(t, err.Error(), "dígito verificador")
}

func TestValidate_FormatoInvalido(t *testing.T) {
	invalid := []string{
		"",
		"1234-5",      // cuerpo muy corto
		"123456789-1", // cuerpo muy largo
		"12345678-X",  // carácter no permitido
		"abcdefgh-5",  // letras en el cuerpo
		"1234K678-5",  // K en el cuerpo
	}
	for _, r := range invalid {
		assert.Error(t, rut.Validate(r), "el RUT %q debe ser rechazado", r)
	}
}

// El dígito K es válido solo como verificador (resto 10).
func TestValidate_DigitoK(t *testing.T) {
	// 20.347.878: suma ponderada 155, resto 1 → 11-1=10 → 'K'
	assert.Equal(t, "K", string(rut.ComputeVerifier("20347878")))
	assert.NoError(t, rut.Validate("20.347.878-K"))
	assert.NoError(t, rut.Validate("20347878-k"), "k minúscula debe normalizarse")
}

func TestNormalize(t *testing.T) {
	got, err := rut.Normalize("12.345.678-5")
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", got)

	got, err = rut.Normalize("123456785")
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", got)
}
