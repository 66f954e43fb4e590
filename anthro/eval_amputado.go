package anthro

import (
	"fmt"
	"strings"
)

// Amputee evaluator: body weight is corrected by the mass percentage of
// the missing segments before computing the IMC, so the classification
// reflects the weight the patient would have with an intact body.

func evaluarAmputado(r *EvaluationResult, m *MeasurementSet, _ FallbackConfig) error {
	var porcentaje float64
	var nombres []string
	for _, seg := range m.Amputaciones {
		p, ok := TablaSegmentos[seg]
		if !ok {
			return &ErrInsumoInvalido{Campo: CampoAmputaciones, Motivo: fmt.Sprintf("segmento desconocido %q", seg)}
		}
		porcentaje += p
		nombres = append(nombres, string(seg))
	}
	if porcentaje >= 100 {
		return &ErrInsumoInvalido{Campo: CampoAmputaciones, Motivo: "la suma de segmentos alcanza el 100% del peso corporal"}
	}

	pesoCorregido := m.Peso / (1 - porcentaje/100)
	r.addValor("peso_corregido", pesoCorregido, "kg", "")
	r.warn(fmt.Sprintf(
		"Peso corregido por amputación de %s (%.1f%% de la masa corporal): %.1f kg medidos -> %.1f kg corregidos.",
		strings.Join(nombres, ", "), porcentaje, m.Peso, pesoCorregido))

	talla, warnTalla, ok := tallaDirectaOEstimada(m)
	if !ok {
		return &MissingFieldsError{
			Categoria: CategoriaAmputado,
			Campos:    []string{CampoTalla, CampoAlturaRodilla, CampoLongitudTibia, CampoMediaEnvergadura, CampoLongitudCubito},
		}
	}
	if warnTalla != "" {
		r.warn(warnTalla)
		r.addValor("talla_estimada", talla, "cm", "")
		m.Talla = talla
	}

	imc, warns, err := CalcularIMC(pesoCorregido, talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)
	r.Clasificacion = ClasificarIMCAdulto(imc)
	r.addValor("imc_corregido", imc, "kg/m2", r.Clasificacion)

	evaluarRatios(r, m)
	return nil
}
