package services

import (
	"testing"
	"time"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/models"
)

func birthYearsAgo(years int) time.Time {
	return time.Now().AddDate(-years, 0, -1)
}

func TestBuildClinicalContextPregnancyWins(t *testing.T) {
	p := &models.Patient{
		BirthDate:       birthYearsAgo(66),
		Sex:             "femenino",
		Pregnant:        true,
		GestationalWeek: 20,
	}
	ctx := BuildClinicalContext(p)
	if !ctx.Gestante || ctx.SemanaGestacional != 20 {
		t.Fatalf("contexto gestante mal construido: %+v", ctx)
	}
	if got := anthro.ResolverCategoria(ctx); got != anthro.CategoriaGestante {
		t.Errorf("categoría %s, esperado gestante aunque tenga 66 años", got)
	}
}

func TestBuildClinicalContextPregestationalWeight(t *testing.T) {
	p := &models.Patient{
		BirthDate:            birthYearsAgo(30),
		Sex:                  "femenino",
		Pregnant:             true,
		GestationalWeek:      28,
		PregestationalWeight: 62,
	}
	ctx := BuildClinicalContext(p)
	if ctx.PesoPregestacional != 62 {
		t.Fatalf("peso pregestacional %.1f, esperado 62", ctx.PesoPregestacional)
	}
	// A visit record without the pre-pregnancy weight still gets the IOM
	// gain adequacy from the profile value.
	r, err := anthro.Evaluar(ctx, anthro.MeasurementSet{Peso: 70, Talla: 153})
	if err != nil {
		t.Fatalf("Evaluar: %v", err)
	}
	if _, ok := r.Buscar("ganancia_peso"); !ok {
		t.Error("falta ganancia_peso evaluando con el peso pregestacional del perfil")
	}
}

func TestBuildClinicalContextAmputations(t *testing.T) {
	p := &models.Patient{
		BirthDate:   birthYearsAgo(45),
		Sex:         "masculino",
		Amputations: "pierna_con_pie, mano",
	}
	ctx := BuildClinicalContext(p)
	if !ctx.TieneAmputaciones || len(ctx.Amputaciones) != 2 {
		t.Fatalf("amputaciones mal parseadas: %+v", ctx.Amputaciones)
	}
	if ctx.Amputaciones[0] != anthro.SegPiernaPie || ctx.Amputaciones[1] != anthro.SegMano {
		t.Errorf("segmentos %v", ctx.Amputaciones)
	}
	if got := anthro.ResolverCategoria(ctx); got != anthro.CategoriaAmputado {
		t.Errorf("categoría %s, esperado amputado", got)
	}
}

func TestResolvePatientSchemaNeuro(t *testing.T) {
	p := &models.Patient{
		BirthDate:    birthYearsAgo(12),
		Sex:          "masculino",
		Neurological: true,
		GMFCS:        5,
	}
	esquema := ResolvePatientSchema(p)
	if esquema.Categoria != anthro.CategoriaNeuro {
		t.Fatalf("categoría %s", esquema.Categoria)
	}
	requiere := false
	for _, c := range esquema.CamposRequeridos {
		if c == anthro.CampoLongitudTibia {
			requiere = true
		}
	}
	if !requiere {
		t.Errorf("GMFCS 5 debe requerir longitud de tibia: %v", esquema.CamposRequeridos)
	}
	for _, c := range esquema.CamposOcultos {
		if c == anthro.CampoLongitudTibia {
			t.Error("la tibia no puede estar oculta y requerida")
		}
	}
}
