package services

import (
	"brigada-service/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMuestra_Almacenar_AllocatesID(t *testing.T) {
	repo := &fakeMuestraRepo{lastID: "M012"}
	service := NewMuestraService(repo)

	id, err := service.Almacenar(&models.MuestraRequest{
		NombreComun:        "Cedro",
		DeterminacionCampo: "Cedrela odorata",
		NumeroColeccion:    "NC-17",
		Arbol:              "AR001",
	})

	assert.NoError(t, err)
	assert.Equal(t, "M013", id)
	assert.Len(t, repo.muestras, 1)
	assert.Equal(t, "Cedrela odorata", repo.muestras[0].Determinacion)
	assert.Equal(t, "AR001", repo.muestras[0].IDArbol)
}

func TestMuestra_Almacenar_KeepsClientProvidedID(t *testing.T) {
	repo := &fakeMuestraRepo{}
	service := NewMuestraService(repo)

	id, err := service.Almacenar(&models.MuestraRequest{IDMuestra: "M500", Arbol: "AR001"})

	assert.NoError(t, err)
	assert.Equal(t, "M500", id)
}

func TestMuestra_SiguienteID_Empty(t *testing.T) {
	service := NewMuestraService(&fakeMuestraRepo{})

	id, err := service.SiguienteID()

	assert.NoError(t, err)
	assert.Equal(t, "M001", id)
}
