package services

import (
	"brigada-service/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	assert.Equal(t, 30, parseLeadingInt("30%"))
	assert.Equal(t, 30, parseLeadingInt(" 30 "))
	assert.Equal(t, 100, parseLeadingInt("100"))
	assert.Equal(t, 0, parseLeadingInt("alto"))
	assert.Equal(t, 0, parseLeadingInt(""))
	assert.Equal(t, 5, parseLeadingInt("5 aprox"))
}

func TestSubparcela_InsertarCoberturas_AllocatesSequentialIDs(t *testing.T) {
	repo := &fakeSubparcelaRepo{lastCobertura: "C003"}
	service := NewSubparcelaService(repo, &fakeIndividuoRepo{})

	insertadas, err := service.InsertarCoberturas([]models.CoberturaInput{
		{Tipo: "Bosque", Porcentaje: "60%"},
		{Tipo: "Pasto", Porcentaje: "40%"},
	}, "SP01")

	assert.NoError(t, err)
	assert.Len(t, insertadas, 2)
	assert.Equal(t, "C004", insertadas[0].ID)
	assert.Equal(t, "C005", insertadas[1].ID)
	assert.Equal(t, 60, insertadas[0].Porcentaje)
	assert.Equal(t, "SP01", insertadas[0].IDSubparcela)
}

func TestSubparcela_Sincronizar_AccumulatesAllInserts(t *testing.T) {
	repo := &fakeSubparcelaRepo{}
	service := NewSubparcelaService(repo, &fakeIndividuoRepo{})

	result, err := service.Sincronizar(models.SincronizarRequest{
		"SP01": {
			Coberturas:   []models.CoberturaInput{{Tipo: "Bosque", Porcentaje: "70%"}},
			Afectaciones: []models.AfectacionInput{{Tipo: "Tala", Severidad: "Alta"}},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, result.Coberturas, 1)
	assert.Len(t, result.Alteraciones, 1)
	assert.Equal(t, "C001", result.Coberturas[0].ID)
	assert.Equal(t, "A001", result.Alteraciones[0].ID)
	assert.Equal(t, "Alta", result.Alteraciones[0].Severidad)
}

// Syncing the same payload twice stores it twice: inserts are additive and
// nothing deduplicates on re-sync.
func TestSubparcela_Sincronizar_ResyncDuplicates(t *testing.T) {
	repo := &fakeSubparcelaRepo{}
	service := NewSubparcelaService(repo, &fakeIndividuoRepo{})

	payload := models.SincronizarRequest{
		"SP01": {Coberturas: []models.CoberturaInput{{Tipo: "Bosque", Porcentaje: "70%"}}},
	}

	first, err := service.Sincronizar(payload)
	assert.NoError(t, err)
	second, err := service.Sincronizar(payload)
	assert.NoError(t, err)

	assert.Len(t, repo.coberturas, 2)
	assert.Equal(t, "C001", first.Coberturas[0].ID)
	assert.Equal(t, "C002", second.Coberturas[0].ID)
	assert.Equal(t, repo.coberturas[0].Nombre, repo.coberturas[1].Nombre)
}

func TestSubparcela_Sincronizar_SkipsEmptyLists(t *testing.T) {
	repo := &fakeSubparcelaRepo{}
	service := NewSubparcelaService(repo, &fakeIndividuoRepo{})

	result, err := service.Sincronizar(models.SincronizarRequest{"SP01": {}})

	assert.NoError(t, err)
	assert.Empty(t, result.Coberturas)
	assert.Empty(t, result.Alteraciones)
	assert.Empty(t, repo.coberturas)
	assert.Empty(t, repo.alteraciones)
}

// ============================================================================
// LOOKUPS
// ============================================================================

func TestSubparcela_GetSubparcelaID(t *testing.T) {
	repo := &fakeSubparcelaRepo{subparcelas: []models.Subparcela{
		{ID: "SP01", Nombre: "SPF1", IDConglomerado: "CG01"},
	}}
	service := NewSubparcelaService(repo, &fakeIndividuoRepo{})

	id, err := service.GetSubparcelaID("SPF1", "CG01")
	assert.NoError(t, err)
	assert.Equal(t, "SP01", id)

	_, err = service.GetSubparcelaID("SPF1", "CG99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubparcela_GetArboles(t *testing.T) {
	subparcelas := &fakeSubparcelaRepo{subparcelas: []models.Subparcela{
		{ID: "SP01", Nombre: "SPF1", IDConglomerado: "CG01"},
	}}
	individuos := &fakeIndividuoRepo{arboles: []models.Arbol{
		{ID: "AR001", IDSubparcela: "SP01"},
		{ID: "AR002", IDSubparcela: "SP02"},
	}}
	service := NewSubparcelaService(subparcelas, individuos)

	arboles, err := service.GetArboles("SPF1", "CG01")

	assert.NoError(t, err)
	assert.Equal(t, "SP01", arboles.IDSubparcela)
	assert.Len(t, arboles.Arboles, 1)
	assert.Equal(t, "AR001", arboles.Arboles[0].ID)
}

func TestSubparcela_GetCaracteristicas(t *testing.T) {
	repo := &fakeSubparcelaRepo{
		subparcelas: []models.Subparcela{
			{ID: "SP01", Nombre: "SPF1", IDConglomerado: "CG01"},
		},
		coberturas:   []models.Cobertura{{ID: "C001", Nombre: "Bosque", IDSubparcela: "SP01"}},
		alteraciones: []models.Alteracion{{ID: "A001", Nombre: "Tala", IDSubparcela: "SP01"}},
	}
	service := NewSubparcelaService(repo, &fakeIndividuoRepo{})

	caracteristicas, err := service.GetCaracteristicas("SPF1", "CG01")

	assert.NoError(t, err)
	assert.Equal(t, "SP01", caracteristicas.Subparcela.ID)
	assert.Len(t, caracteristicas.Coberturas, 1)
	assert.Len(t, caracteristicas.Alteraciones, 1)
}
