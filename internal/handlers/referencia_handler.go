package handlers

import (
	"brigada-service/internal/event"
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"brigada-service/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReferenciaHandler struct {
	referenciaService services.IReferenciaService
	publisher         *event.CampoPublisher
	middleware        *Middleware
}

func NewReferenciaHandler(
	referenciaService services.IReferenciaService,
	publisher *event.CampoPublisher,
	middleware *Middleware,
) *ReferenciaHandler {
	return &ReferenciaHandler{
		referenciaService: referenciaService,
		publisher:         publisher,
		middleware:        middleware,
	}
}

func (h *ReferenciaHandler) RegisterRoutes(router *gin.Engine) {
	refGr := router.Group("/api/referencias", h.middleware.VerifyToken)
	refGr.GET("/siguiente-id", h.GetSiguienteID)
	refGr.POST("", h.CrearPunto)
	refGr.PUT("/:id", h.ActualizarPunto)
	refGr.DELETE("/:id", h.EliminarPunto)
	refGr.GET("/punto/:id", h.GetPunto)
	refGr.GET("/verificar/:cedulaBrigadista", h.VerificarPuntos)
	refGr.GET("/campamento/:idConglomerado", h.VerificarCampamento)

	// Consumed by the web dashboard, which authenticates out of band.
	router.GET("/api/referencias/conglomerado/:idConglomerado", h.GetPuntosConglomerado)
}

func (h *ReferenciaHandler) GetSiguienteID(c *gin.Context) {
	id, err := h.referenciaService.SiguienteID()
	if err != nil {
		log.Printf("error generating punto id: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al generar el siguiente id"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"siguiente_id": id}))
}

func (h *ReferenciaHandler) CrearPunto(c *gin.Context) {
	var punto models.PuntoReferencia
	if err := c.ShouldBindJSON(&punto); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "datos del punto inválidos"))
		return
	}

	id, err := h.referenciaService.Insertar(&punto)
	if err != nil {
		log.Printf("error inserting punto: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al guardar el punto de referencia"))
		return
	}

	h.publisher.Publish(c.Request.Context(), event.PuntoCreado, "punto_referencia", id, punto.CedulaBrigadista)
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(gin.H{"id": id}))
}

func (h *ReferenciaHandler) ActualizarPunto(c *gin.Context) {
	var punto models.PuntoReferencia
	if err := c.ShouldBindJSON(&punto); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "datos del punto inválidos"))
		return
	}

	id := c.Param("id")
	if punto.ID != "" && punto.ID != id {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("ID_MISMATCH", "el id del punto no coincide con la ruta"))
		return
	}
	punto.ID = id

	if err := h.referenciaService.Actualizar(&punto); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "punto de referencia no encontrado"))
		case errors.Is(err, services.ErrNoPermission):
			c.JSON(http.StatusForbidden, utils.CreateErrorResponse("FORBIDDEN", err.Error()))
		default:
			log.Printf("error updating punto %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al actualizar el punto de referencia"))
		}
		return
	}

	h.publisher.Publish(c.Request.Context(), event.PuntoActualizado, "punto_referencia", id, punto.CedulaBrigadista)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"id": id}))
}

func (h *ReferenciaHandler) EliminarPunto(c *gin.Context) {
	var req models.EliminarReferenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CedulaBrigadista == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "se requiere la cédula del brigadista"))
		return
	}

	id := c.Param("id")
	eliminado, err := h.referenciaService.Eliminar(id, req.CedulaBrigadista)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "punto de referencia no encontrado"))
		case errors.Is(err, services.ErrNoPermission):
			c.JSON(http.StatusForbidden, utils.CreateErrorResponse("FORBIDDEN", err.Error()))
		default:
			log.Printf("error deleting punto %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al eliminar el punto de referencia"))
		}
		return
	}

	h.publisher.Publish(c.Request.Context(), event.PuntoEliminado, "punto_referencia", id, req.CedulaBrigadista)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(eliminado))
}

func (h *ReferenciaHandler) GetPunto(c *gin.Context) {
	id := c.Param("id")
	punto, err := h.referenciaService.PorID(id)
	if err != nil {
		log.Printf("error fetching punto %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener el punto de referencia"))
		return
	}
	if punto == nil {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "punto de referencia no encontrado"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(punto))
}

// GetPuntosConglomerado lists every punto of a conglomerado together with
// its trayectos.
func (h *ReferenciaHandler) GetPuntosConglomerado(c *gin.Context) {
	idConglomerado := c.Param("idConglomerado")
	puntos, err := h.referenciaService.PorConglomerado(idConglomerado)
	if err != nil {
		log.Printf("error fetching puntos for conglomerado %s: %v", idConglomerado, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener los puntos del conglomerado"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(puntos))
}

// VerificarPuntos reports how many reference points a brigadista has
// registered. Errors are reported as zero so the mobile client can keep
// working offline-first.
func (h *ReferenciaHandler) VerificarPuntos(c *gin.Context) {
	cedula := c.Param("cedulaBrigadista")
	total := h.referenciaService.ContarPuntos(cedula)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"tiene_puntos": total > 0,
		"total":        total,
	}))
}

func (h *ReferenciaHandler) VerificarCampamento(c *gin.Context) {
	idConglomerado := c.Param("idConglomerado")
	check, err := h.referenciaService.CampamentoExistente(idConglomerado)
	if err != nil {
		log.Printf("error checking campamento for conglomerado %s: %v", idConglomerado, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al verificar el campamento"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(check))
}
