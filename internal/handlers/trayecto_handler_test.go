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

type fakeTrayectoService struct {
	trayectos map[string]*models.Trayecto
	inserted  []models.Trayecto
	updated   []string
}

func newFakeTrayectoService() *fakeTrayectoService {
	return &fakeTrayectoService{trayectos: map[string]*models.Trayecto{}}
}

func (f *fakeTrayectoService) SiguienteID() (string, error) {
	return "TR001", nil
}

func (f *fakeTrayectoService) Insertar(datos *models.DatosTrayecto, idReferencia string) (*models.Trayecto, error) {
	t := &models.Trayecto{
		ID:                "TR001",
		MedioTransporte:   datos.MedioTransporte,
		IDPuntoReferencia: idReferencia,
	}
	f.inserted = append(f.inserted, *t)
	return t, nil
}

func (f *fakeTrayectoService) Actualizar(datos *models.DatosTrayecto, idReferencia string) (*models.Trayecto, error) {
	f.updated = append(f.updated, idReferencia)
	return &models.Trayecto{ID: datos.IDTrayecto, IDPuntoReferencia: idReferencia}, nil
}

func (f *fakeTrayectoService) PorID(id string) (*models.Trayecto, error) {
	return f.trayectos[id], nil
}

func trayectoRouter(trayectos services.ITrayectoService, referencias services.IReferenciaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewMiddleware(&fakeVerifier{token: &auth.Token{UID: "uid-1"}})
	NewTrayectoHandler(trayectos, referencias, nil, middleware).RegisterRoutes(router)
	return router
}

func trayectoBody(cedula string) models.TrayectoRequest {
	return models.TrayectoRequest{
		DatosTrayecto: models.DatosTrayecto{
			MedioTransporte:  "A pie",
			CedulaBrigadista: cedula,
		},
		PuntoID: "PR001",
	}
}

func TestTrayectoHandler_Crear(t *testing.T) {
	referencias := newFakeReferenciaService()
	referencias.puntos["PR001"] = &models.PuntoReferencia{ID: "PR001", CedulaBrigadista: "123"}
	trayectos := newFakeTrayectoService()
	router := trayectoRouter(trayectos, referencias)

	w := doJSON(router, http.MethodPost, "/api/trayectos", trayectoBody("123"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, trayectos.inserted, 1)
	assert.Equal(t, "PR001", trayectos.inserted[0].IDPuntoReferencia)
}

func TestTrayectoHandler_Crear_PuntoAjeno(t *testing.T) {
	referencias := newFakeReferenciaService()
	referencias.puntos["PR001"] = &models.PuntoReferencia{ID: "PR001", CedulaBrigadista: "123"}
	trayectos := newFakeTrayectoService()
	router := trayectoRouter(trayectos, referencias)

	w := doJSON(router, http.MethodPost, "/api/trayectos", trayectoBody("456"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, trayectos.inserted)
}

func TestTrayectoHandler_Crear_PuntoInexistente(t *testing.T) {
	router := trayectoRouter(newFakeTrayectoService(), newFakeReferenciaService())

	w := doJSON(router, http.MethodPost, "/api/trayectos", trayectoBody("123"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrayectoHandler_Actualizar(t *testing.T) {
	referencias := newFakeReferenciaService()
	referencias.puntos["PR001"] = &models.PuntoReferencia{ID: "PR001", CedulaBrigadista: "123"}
	trayectos := newFakeTrayectoService()
	trayectos.trayectos["TR001"] = &models.Trayecto{ID: "TR001", IDPuntoReferencia: "PR001"}
	router := trayectoRouter(trayectos, referencias)

	w := doJSON(router, http.MethodPut, "/api/trayectos/PR001", models.DatosTrayecto{
		IDTrayecto:       "TR001",
		MedioTransporte:  "Lancha",
		CedulaBrigadista: "123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"PR001"}, trayectos.updated)
}

func TestTrayectoHandler_Actualizar_TrayectoInexistente(t *testing.T) {
	referencias := newFakeReferenciaService()
	referencias.puntos["PR001"] = &models.PuntoReferencia{ID: "PR001", CedulaBrigadista: "123"}
	trayectos := newFakeTrayectoService()
	router := trayectoRouter(trayectos, referencias)

	w := doJSON(router, http.MethodPut, "/api/trayectos/PR001", models.DatosTrayecto{
		IDTrayecto:       "TR999",
		MedioTransporte:  "Lancha",
		CedulaBrigadista: "123",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, trayectos.updated)
}
