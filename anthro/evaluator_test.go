package anthro

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func tieneAdvertencia(r *EvaluationResult, fragmento string) bool {
	for _, a := range r.Advertencias {
		if strings.Contains(a, fragmento) {
			return true
		}
	}
	return false
}

func TestEvaluarAdultoCompleto(t *testing.T) {
	ctx := ClinicalContext{Edad: 25, Sexo: Masculino}
	r, err := Evaluar(ctx, medicionISAKCompleta())
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaAdulto {
		t.Errorf("categoría %s, esperado adulto", r.Categoria)
	}

	imc, ok := r.Buscar("imc")
	if !ok {
		t.Fatal("falta el valor imc")
	}
	if imc.Clasificacion != "Normal" {
		t.Errorf("clasificación IMC %q, esperado Normal", imc.Clasificacion)
	}
	if r.Clasificacion != "Normal" {
		t.Errorf("clasificación principal %q", r.Clasificacion)
	}

	// Full ISAK set: fractionation, somatotype and body fat all present.
	var suma float64
	for _, nombre := range []string{"masa_piel", "masa_adiposa", "masa_muscular", "masa_osea", "masa_residual"} {
		v, ok := r.Buscar(nombre)
		if !ok {
			t.Fatalf("falta el valor %s", nombre)
		}
		suma += v.Valor
	}
	if desvio := math.Abs(suma - 75); desvio > ToleranciaSumaKerr {
		t.Errorf("fracciones suman %.2f, desvío %.2f", suma, desvio)
	}
	if _, ok := r.Buscar("grasa_corporal"); !ok {
		t.Error("falta grasa_corporal (Durnin + Siri)")
	}
	ecto, ok := r.Buscar("ectomorfia")
	if !ok {
		t.Fatal("falta la ectomorfia")
	}
	if ecto.Clasificacion == "" {
		t.Error("el somatotipo debe venir clasificado")
	}
}

func TestEvaluarIdempotente(t *testing.T) {
	ctx := ClinicalContext{Edad: 25, Sexo: Masculino}
	m := medicionISAKCompleta()
	r1, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("primera evaluación: %v", err)
	}
	r2, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("segunda evaluación: %v", err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Error("la misma entrada debe producir el mismo resultado")
	}
}

func TestEvaluarCamposFaltantes(t *testing.T) {
	ctx := ClinicalContext{Edad: 28, Sexo: Femenino, Gestante: true}
	m := MeasurementSet{Peso: 70, Talla: 158}
	_, err := Evaluar(ctx, m)

	var mfe *MissingFieldsError
	if !errors.As(err, &mfe) {
		t.Fatalf("esperado *MissingFieldsError, fue %T (%v)", err, err)
	}
	if mfe.Categoria != CategoriaGestante {
		t.Errorf("categoría del error %s", mfe.Categoria)
	}
	if !contiene(mfe.Campos, CampoSemanaGestacional) {
		t.Errorf("campos faltantes %v, esperado semana_gestacional", mfe.Campos)
	}
}

func TestEvaluarGestanteAtalahEIOM(t *testing.T) {
	ctx := ClinicalContext{Edad: 30, Sexo: Femenino, Gestante: true, SemanaGestacional: 28}
	m := MeasurementSet{Peso: 70, Talla: 153, PesoPregestacional: 62}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaGestante {
		t.Fatalf("categoría %s", r.Categoria)
	}
	// 70 kg / 1.53 m -> IMC 29.9, semana 28 -> Sobrepeso por Atalah.
	if r.Clasificacion != "Sobrepeso" {
		t.Errorf("clasificación %q, esperado Sobrepeso", r.Clasificacion)
	}

	ganancia, ok := r.Buscar("ganancia_peso")
	if !ok {
		t.Fatal("falta ganancia_peso")
	}
	// IMC pregestacional 26.5 -> fila Sobrepeso; a la semana 28 el rango
	// acumulado es 3.95-6.95 kg y la ganancia real es 8 kg.
	if math.Abs(ganancia.Valor-8.0) > 0.01 {
		t.Errorf("ganancia %.2f, esperado 8.00", ganancia.Valor)
	}
	if ganancia.Clasificacion != "Ganancia excesiva" {
		t.Errorf("adecuación %q, esperado Ganancia excesiva", ganancia.Clasificacion)
	}
}

func TestEvaluarGestantePesoPregestacionalDelContexto(t *testing.T) {
	// The pre-pregnancy weight usually lives in the patient profile, not
	// in the visit measurements; the context value must reach the IOM
	// adequacy check.
	ctx := ClinicalContext{Edad: 30, Sexo: Femenino, Gestante: true, SemanaGestacional: 28, PesoPregestacional: 62}
	m := MeasurementSet{Peso: 70, Talla: 153}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	ganancia, ok := r.Buscar("ganancia_peso")
	if !ok {
		t.Fatal("falta ganancia_peso con peso pregestacional en el contexto")
	}
	if ganancia.Clasificacion != "Ganancia excesiva" {
		t.Errorf("adecuación %q, esperado Ganancia excesiva", ganancia.Clasificacion)
	}
	if tieneAdvertencia(r, "no registrado") {
		t.Errorf("no debe avisar peso pregestacional faltante: %v", r.Advertencias)
	}
}

func TestEvaluarGestanteGemelarBajoPeso(t *testing.T) {
	ctx := ClinicalContext{Edad: 26, Sexo: Femenino, Gestante: true, SemanaGestacional: 20, EmbarazoGemelar: true}
	m := MeasurementSet{Peso: 55, Talla: 165, PesoPregestacional: 49}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	// IMC pregestacional 18.0 -> bajo peso; la guía no publica fila
	// gemelar, así que cae a la fila de embarazo único con aviso.
	if !tieneAdvertencia(r, "gemelar") {
		t.Errorf("falta el aviso de fila gemelar no publicada: %v", r.Advertencias)
	}
	ganancia, ok := r.Buscar("ganancia_peso")
	if !ok {
		t.Fatal("falta ganancia_peso")
	}
	if ganancia.Clasificacion != "Ganancia adecuada" {
		t.Errorf("adecuación %q, esperado Ganancia adecuada", ganancia.Clasificacion)
	}
}

func TestEvaluarAdultoMayorTamizaje(t *testing.T) {
	ctx := ClinicalContext{Edad: 70, Sexo: Masculino}
	m := MeasurementSet{
		Peso:           58,
		AlturaRodilla:  48,
		FuerzaPrension: 20,
		TiempoMarcha:   14,
		Perimetros:     Perimetros{Pantorrilla: 29},
	}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaAdultoMayor {
		t.Fatalf("categoría %s", r.Categoria)
	}
	// Sin talla directa: Chumlea con altura de rodilla.
	if _, ok := r.Buscar("talla_estimada"); !ok {
		t.Error("falta talla_estimada")
	}
	imc, ok := r.Buscar("imc")
	if !ok {
		t.Fatal("falta imc")
	}
	// Talla estimada ~158.3 cm -> IMC ~23.1, Normal con la tabla MINSA.
	if imc.Clasificacion != "Normal" {
		t.Errorf("clasificación %q, esperado Normal", imc.Clasificacion)
	}

	// Prensión 20 < 27 y pantorrilla 29 < 31: ambos cortes cruzados.
	if !tieneAdvertencia(r, "SARCOPENIA SEVERA") {
		t.Errorf("falta la alerta de sarcopenia severa: %v", r.Advertencias)
	}
	if !tieneAdvertencia(r, "riesgo de caídas") {
		t.Errorf("falta el aviso de riesgo de caídas: %v", r.Advertencias)
	}
	if !tieneAdvertencia(r, "ALERTA") {
		t.Errorf("falta la alerta combinada: %v", r.Advertencias)
	}
}

func TestEvaluarAdultoMayorSinAlertaCombinada(t *testing.T) {
	// Marcha normal: aunque haya dinapenia, no hay alerta combinada.
	ctx := ClinicalContext{Edad: 70, Sexo: Masculino}
	m := MeasurementSet{
		Peso:           70,
		Talla:          168,
		FuerzaPrension: 20,
		TiempoMarcha:   9,
		Perimetros:     Perimetros{Pantorrilla: 35},
	}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if !tieneAdvertencia(r, "Dinapenia") {
		t.Errorf("falta el aviso de dinapenia: %v", r.Advertencias)
	}
	if tieneAdvertencia(r, "ALERTA") {
		t.Errorf("no debe haber alerta combinada: %v", r.Advertencias)
	}
}

func TestEvaluarAmputado(t *testing.T) {
	ctx := ClinicalContext{Edad: 45, Sexo: Masculino, TieneAmputaciones: true, Amputaciones: []Segmento{SegPiernaPie}}
	m := MeasurementSet{Peso: 60, Talla: 170}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaAmputado {
		t.Fatalf("categoría %s", r.Categoria)
	}

	pc, ok := r.Buscar("peso_corregido")
	if !ok {
		t.Fatal("falta peso_corregido")
	}
	esperado := 60 / (1 - 0.059)
	if math.Abs(pc.Valor-esperado) > 0.01 {
		t.Errorf("peso corregido %.2f, esperado %.2f", pc.Valor, esperado)
	}
	imc, ok := r.Buscar("imc_corregido")
	if !ok {
		t.Fatal("falta imc_corregido")
	}
	if imc.Clasificacion != "Normal" {
		t.Errorf("clasificación %q, esperado Normal", imc.Clasificacion)
	}
}

func TestEvaluarNeuroSevero(t *testing.T) {
	ctx := ClinicalContext{Edad: 12, Sexo: Masculino, GMFCS: 5}
	m := MeasurementSet{Peso: 30, LongitudTibia: 32}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaNeuro {
		t.Fatalf("categoría %s", r.Categoria)
	}
	talla, ok := r.Buscar("talla_estimada")
	if !ok {
		t.Fatal("falta talla_estimada")
	}
	esperado := 3.26*32 + 30.8
	if math.Abs(talla.Valor-esperado) > 0.01 {
		t.Errorf("talla estimada %.2f, esperado %.2f", talla.Valor, esperado)
	}
	if !tieneAdvertencia(r, "Stevenson") {
		t.Errorf("falta el aviso de estimación por tibia: %v", r.Advertencias)
	}
}

func TestEvaluarPediatricoSlaughterTannerPorDefecto(t *testing.T) {
	ctx := ClinicalContext{Edad: 12, Sexo: Femenino}
	m := MeasurementSet{
		Peso:     40,
		Talla:    150,
		Pliegues: Pliegues{Triceps: 12, Subescapular: 9},
	}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaPediatrico {
		t.Fatalf("categoría %s", r.Categoria)
	}
	if _, ok := r.Buscar("grasa_corporal"); !ok {
		t.Error("falta grasa_corporal por Slaughter")
	}
	if !tieneAdvertencia(r, "Tanner") {
		t.Errorf("falta el aviso de Tanner asumido: %v", r.Advertencias)
	}
}

func TestEvaluarLactante(t *testing.T) {
	ctx := ClinicalContext{Edad: 1, Sexo: Masculino}
	m := MeasurementSet{Peso: 10, Talla: 76}
	r, err := Evaluar(ctx, m)
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if r.Categoria != CategoriaLactante {
		t.Fatalf("categoría %s", r.Categoria)
	}
	if !tieneAdvertencia(r, "OMS") {
		t.Errorf("falta el aviso de curvas OMS: %v", r.Advertencias)
	}
}

func TestEvaluarConFallbacksEstrictos(t *testing.T) {
	// With approximations disabled, an incomplete Durnin set is skipped
	// instead of approximated.
	fb := FallbackConfig{TannerPorDefecto: Puber}
	ctx := ClinicalContext{Edad: 30, Sexo: Masculino}
	m := MeasurementSet{
		Peso:     75,
		Talla:    175,
		Pliegues: Pliegues{Triceps: 10, Subescapular: 12},
	}
	r, err := EvaluarCon(ctx, m, fb)
	if err != nil {
		t.Fatalf("EvaluarCon: %v", err)
	}
	if _, ok := r.Buscar("grasa_corporal"); ok {
		t.Error("sin aproximaciones no debe calcularse Durnin incompleto")
	}
	if _, ok := r.Buscar("imc"); !ok {
		t.Error("el IMC debe calcularse igual")
	}
}
