package anthro

import "math"

// Deterministic mappings from computed values to categorical labels.

// ClasificarIMCAdulto applies the OMS adult ranges.
func ClasificarIMCAdulto(imc float64) string {
	return clasificarPorBandas(imc, bandasIMCAdulto, etiquetaIMCAdultoFinal)
}

// ClasificarIMCGeriatrico applies the MINSA ranges for adults 65+.
func ClasificarIMCGeriatrico(imc float64) string {
	return clasificarPorBandas(imc, bandasIMCGeriatrico, etiquetaIMCGeriatricoFinal)
}

// ClasificarAtalah classifies a gestational IMC against the Atalah
// curve row for the given week. Lookup is by exact week with clamping
// to the nearest tabulated week outside [6, 42]; classification is a
// strict ascending threshold walk.
func ClasificarAtalah(imc float64, semana int) string {
	fila := filaAtalahPorSemana(semana)
	switch {
	case imc < fila.BajoPeso:
		return "Bajo peso"
	case imc < fila.Normal:
		return "Normal"
	case imc < fila.Sobrepeso:
		return "Sobrepeso"
	default:
		return "Obesidad"
	}
}

// Somatotype category names. The thirteen labels follow the
// Heath-Carter somatochart nomenclature.
const (
	somCentral = "Central"

	somEndoBalanceado = "Endomorfo balanceado"
	somMesoEndomorfo  = "Meso-endomorfo"
	somEctoEndomorfo  = "Ecto-endomorfo"

	somMesoBalanceado = "Mesomorfo balanceado"
	somEndoMesomorfo  = "Endo-mesomorfo"
	somEctoMesomorfo  = "Ecto-mesomorfo"

	somEctoBalanceado = "Ectomorfo balanceado"
	somMesoEctomorfo  = "Meso-ectomorfo"
	somEndoEctomorfo  = "Endo-ectomorfo"

	somEndomorfoMesomorfo = "Endomorfo-mesomorfo"
	somMesomorfoEctomorfo = "Mesomorfo-ectomorfo"
	somEndomorfoEctomorfo = "Endomorfo-ectomorfo"
)

const (
	toleranciaCentral    = 1.0 // all pairwise differences within this -> Central
	toleranciaBalanceado = 0.5 // tie-break between balanced and mixed categories
)

// ClasificarSomatotipo maps a somatotype triple onto the 13-category
// somatochart. The priority order of the checks is part of the
// contract: central first, then single-dominant (balanced vs qualified
// at +-0.5), then the mixed-pair categories, with a max-component
// fallback. Reordering the checks silently shifts classification
// boundaries.
func ClasificarSomatotipo(endo, meso, ecto float64) string {
	dEM := math.Abs(endo - meso)
	dME := math.Abs(meso - ecto)
	dEE := math.Abs(endo - ecto)

	if dEM <= toleranciaCentral && dME <= toleranciaCentral && dEE <= toleranciaCentral {
		return somCentral
	}

	// Single-dominant: the largest component exceeds the runner-up by
	// more than the balanced tolerance.
	switch {
	case endo > meso && endo > ecto && endo-math.Max(meso, ecto) > toleranciaBalanceado:
		if math.Abs(meso-ecto) <= toleranciaBalanceado {
			return somEndoBalanceado
		}
		if meso > ecto {
			return somMesoEndomorfo
		}
		return somEctoEndomorfo
	case meso > endo && meso > ecto && meso-math.Max(endo, ecto) > toleranciaBalanceado:
		if math.Abs(endo-ecto) <= toleranciaBalanceado {
			return somMesoBalanceado
		}
		if endo > ecto {
			return somEndoMesomorfo
		}
		return somEctoMesomorfo
	case ecto > endo && ecto > meso && ecto-math.Max(endo, meso) > toleranciaBalanceado:
		if math.Abs(endo-meso) <= toleranciaBalanceado {
			return somEctoBalanceado
		}
		if meso > endo {
			return somMesoEctomorfo
		}
		return somEndoEctomorfo
	}

	// Mixed pairs: the two leading components are within the balanced
	// tolerance of each other and both clear the third.
	switch {
	case dEM <= toleranciaBalanceado && endo > ecto && meso > ecto:
		return somEndomorfoMesomorfo
	case dME <= toleranciaBalanceado && meso > endo && ecto > endo:
		return somMesomorfoEctomorfo
	case dEE <= toleranciaBalanceado && endo > meso && ecto > meso:
		return somEndomorfoEctomorfo
	}

	// Fallback: dominant component alone.
	switch {
	case endo >= meso && endo >= ecto:
		return somEndoBalanceado
	case meso >= endo && meso >= ecto:
		return somMesoBalanceado
	default:
		return somEctoBalanceado
	}
}
