package handlers

import (
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"net/http"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeBrigadistaService struct {
	info       *models.BrigadistaInfo
	lastUpdate struct {
		uid        string
		completado bool
	}
}

func (f *fakeBrigadistaService) GetInfo(uid string) (*models.BrigadistaInfo, error) {
	return f.info, nil
}

func (f *fakeBrigadistaService) UpdateTutorial(uid string, completado bool) (*models.TutorialUpdateResult, error) {
	if f.info == nil {
		return nil, services.ErrNotFound
	}
	f.lastUpdate.uid = uid
	f.lastUpdate.completado = completado
	return &models.TutorialUpdateResult{Updated: "single"}, nil
}

func brigadistaRouter(service *fakeBrigadistaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewMiddleware(&fakeVerifier{token: &auth.Token{UID: "uid-1"}})
	NewBrigadistaHandler(service, middleware).RegisterRoutes(router)
	return router
}

func TestBrigadistaHandler_GetInfo(t *testing.T) {
	service := &fakeBrigadistaService{info: &models.BrigadistaInfo{
		Nombre:         "Ana",
		Brigada:        "B01",
		IDConglomerado: "CG01",
		Cedula:         "123",
	}}
	router := brigadistaRouter(service)

	w := doJSON(router, http.MethodGet, "/api/brigadista/info", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CG01")
}

func TestBrigadistaHandler_GetInfo_NotFound(t *testing.T) {
	router := brigadistaRouter(&fakeBrigadistaService{})

	w := doJSON(router, http.MethodGet, "/api/brigadista/info", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBrigadistaHandler_UpdateTutorial(t *testing.T) {
	service := &fakeBrigadistaService{info: &models.BrigadistaInfo{Nombre: "Ana"}}
	router := brigadistaRouter(service)

	w := doJSON(router, http.MethodPost, "/api/brigadista/tutorial", models.TutorialRequest{Completado: true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "single")
	assert.Equal(t, "uid-1", service.lastUpdate.uid)
	assert.True(t, service.lastUpdate.completado)
}

func TestBrigadistaHandler_UpdateTutorial_UnknownUser(t *testing.T) {
	router := brigadistaRouter(&fakeBrigadistaService{})

	w := doJSON(router, http.MethodPost, "/api/brigadista/tutorial", models.TutorialRequest{Completado: true})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
