package anthro

import "fmt"

// Height estimators for patients whose stature cannot be measured
// standing (bedridden, amputee, neurological). Each is a closed-form
// function of one proxy measurement plus age/sex. EstimarTalla runs
// them as an ordered cascade and returns the first applicable result.

// TallaChumlea estimates stature from knee height (cm).
func TallaChumlea(alturaRodilla, edad float64, sexo Sexo) (float64, error) {
	if alturaRodilla <= 0 {
		return 0, &ErrInsumoInvalido{Campo: "altura_rodilla", Motivo: "debe ser positiva"}
	}
	if sexo == Femenino {
		return 84.88 - 0.24*edad + 1.83*alturaRodilla, nil
	}
	return 64.19 - 0.04*edad + 2.02*alturaRodilla, nil
}

// TallaStevenson estimates stature from tibia length (cm); the equation
// of choice for GMFCS IV-V patients, where standing measurement is not
// feasible.
func TallaStevenson(longitudTibia float64) (float64, error) {
	if longitudTibia <= 0 {
		return 0, &ErrInsumoInvalido{Campo: "longitud_tibia", Motivo: "debe ser positiva"}
	}
	return 3.26*longitudTibia + 30.8, nil
}

// TallaMediaEnvergadura doubles the half-armspan.
func TallaMediaEnvergadura(mediaEnvergadura float64) (float64, error) {
	if mediaEnvergadura <= 0 {
		return 0, &ErrInsumoInvalido{Campo: "media_envergadura", Motivo: "debe ser positiva"}
	}
	return mediaEnvergadura * 2.0, nil
}

// TallaCubito estimates stature from ulna length via the BAPEN/MUST
// coefficient table (sex x age band).
func TallaCubito(longitudCubito, edad float64, sexo Sexo) (float64, error) {
	if longitudCubito <= 0 {
		return 0, &ErrInsumoInvalido{Campo: "longitud_cubito", Motivo: "debe ser positiva"}
	}
	c := coeficientesCubito[sexo][edad >= 65]
	return c.A + c.B*longitudCubito, nil
}

// estimadorTalla is one (precondition, estimator) pair of the cascade.
type estimadorTalla struct {
	Metodo     string
	Disponible func(*MeasurementSet) bool
	Estimar    func(*MeasurementSet) (float64, error)
}

// The preference order is fixed clinical policy: knee height first,
// then tibia length, half-armspan, and finally the ulna lookup.
var cascadaTalla = []estimadorTalla{
	{
		Metodo:     "altura_rodilla",
		Disponible: func(m *MeasurementSet) bool { return m.AlturaRodilla > 0 },
		Estimar: func(m *MeasurementSet) (float64, error) {
			return TallaChumlea(m.AlturaRodilla, m.Edad, m.Sexo)
		},
	},
	{
		Metodo:     "longitud_tibia",
		Disponible: func(m *MeasurementSet) bool { return m.LongitudTibia > 0 },
		Estimar: func(m *MeasurementSet) (float64, error) {
			return TallaStevenson(m.LongitudTibia)
		},
	},
	{
		Metodo:     "media_envergadura",
		Disponible: func(m *MeasurementSet) bool { return m.MediaEnvergadura > 0 },
		Estimar: func(m *MeasurementSet) (float64, error) {
			return TallaMediaEnvergadura(m.MediaEnvergadura)
		},
	},
	{
		Metodo:     "longitud_cubito",
		Disponible: func(m *MeasurementSet) bool { return m.LongitudCubito > 0 },
		Estimar: func(m *MeasurementSet) (float64, error) {
			return TallaCubito(m.LongitudCubito, m.Edad, m.Sexo)
		},
	},
}

// EstimarTalla walks the estimation cascade and returns the estimated
// stature, the method used and a display warning. ok is false when no
// proxy measurement is available.
func EstimarTalla(m *MeasurementSet) (talla float64, metodo string, warn string, ok bool) {
	for _, e := range cascadaTalla {
		if !e.Disponible(m) {
			continue
		}
		t, err := e.Estimar(m)
		if err != nil {
			continue
		}
		return round2(t), e.Metodo, fmt.Sprintf(
			"Talla estimada (%.1f cm) a partir de %s; no se midió talla directa.", t, e.Metodo), true
	}
	return 0, "", "", false
}
