package anthro

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports the required fields a MeasurementSet lacks
// for its resolved category. It is detected before any formula runs so
// the caller gets a field-level list instead of a half-computed result.
type MissingFieldsError struct {
	Categoria CategoriaPoblacional
	Campos    []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("faltan campos requeridos para la categoría %s: %s",
		e.Categoria, strings.Join(e.Campos, ", "))
}

// ErrInsumoInvalido marks a structurally unusable input (zero or
// negative where a positive measurement is mandatory). Out-of-range but
// structurally present values never produce this; they clamp and warn.
type ErrInsumoInvalido struct {
	Campo  string
	Motivo string
}

func (e *ErrInsumoInvalido) Error() string {
	return fmt.Sprintf("insumo inválido %q: %s", e.Campo, e.Motivo)
}
