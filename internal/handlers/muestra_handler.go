package handlers

import (
	"brigada-service/internal/event"
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"brigada-service/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MuestraHandler struct {
	muestraService services.IMuestraService
	publisher      *event.CampoPublisher
	middleware     *Middleware
}

func NewMuestraHandler(
	muestraService services.IMuestraService,
	publisher *event.CampoPublisher,
	middleware *Middleware,
) *MuestraHandler {
	return &MuestraHandler{
		muestraService: muestraService,
		publisher:      publisher,
		middleware:     middleware,
	}
}

func (h *MuestraHandler) RegisterRoutes(router *gin.Engine) {
	muGr := router.Group("/api/muestras", h.middleware.VerifyToken)
	muGr.GET("/siguienteId", h.GetSiguienteID)
	muGr.POST("", h.CrearMuestra)
}

func (h *MuestraHandler) GetSiguienteID(c *gin.Context) {
	id, err := h.muestraService.SiguienteID()
	if err != nil {
		log.Printf("error generating muestra id: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al generar el siguiente id"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"siguiente_id": id}))
}

func (h *MuestraHandler) CrearMuestra(c *gin.Context) {
	var req models.MuestraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "datos de la muestra inválidos"))
		return
	}

	id, err := h.muestraService.Almacenar(&req)
	if err != nil {
		log.Printf("error saving muestra: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al guardar la muestra"))
		return
	}

	h.publisher.Publish(c.Request.Context(), event.MuestraCreada, "muestra", id, "")
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(gin.H{"id": id}))
}
