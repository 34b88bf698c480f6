// Package rut valida el RUT chileno (Rol Único Tributario) con su dígito
// verificador módulo 11 (SII). Acepta formatos "12.345.678-5", "12345678-5"
// o "123456785".
package rut

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize devuelve el RUT en forma canónica "NNNNNNNN-D" (sin puntos,
// dígito verificador en mayúscula). No valida el dígito; usar Validate.
func Normalize(rut string) (string, error) {
	body, dv, err := split(rut)
	if err != nil {
		return "", err
	}
	return body + "-" + string(dv), nil
}

// Validate verifica que el RUT tenga cuerpo de 7 u 8 dígitos y dígito
// verificador correcto según el algoritmo módulo 11 con pesos cíclicos 2..7.
func Validate(rut string) error {
	body, dv, err := split(rut)
	if err != nil {
		return err
	}
	expected := ComputeVerifier(body)
	if dv != expected {
		return fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %c", expected, dv)
	}
	return nil
}

// ComputeVerifier calcula el dígito verificador para un cuerpo de RUT
// (solo dígitos). Los pesos 2,3,4,5,6,7 se aplican de derecha a izquierda;
// resto 11 → '0', resto 10 → 'K'.
func ComputeVerifier(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	switch dv := 11 - sum%11; dv {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + dv)
	}
}

// split separa cuerpo y dígito verificador, descartando puntos y guiones.
func split(rut string) (body string, dv byte, err error) {
	var chars []byte
	for _, r := range strings.ToUpper(rut) {
		switch {
		case unicode.IsDigit(r):
			chars = append(chars, byte(r))
		case r == 'K':
			chars = append(chars, 'K')
		case r == '.' || r == '-' || r == ' ':
			// separadores permitidos
		default:
			return "", 0, fmt.Errorf("rut: carácter inválido %q", r)
		}
	}
	if len(chars) < 8 || len(chars) > 9 {
		return "", 0, fmt.Errorf("rut: se esperan 7 u 8 dígitos más dígito verificador, se recibieron %d caracteres", len(chars))
	}
	body = string(chars[:len(chars)-1])
	dv = chars[len(chars)-1]
	if strings.ContainsRune(body, 'K') {
		return "", 0, fmt.Errorf("rut: el cuerpo solo admite dígitos")
	}
	return body, dv, nil
}
