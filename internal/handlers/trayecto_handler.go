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

type TrayectoHandler struct {
	trayectoService   services.ITrayectoService
	referenciaService services.IReferenciaService
	publisher         *event.CampoPublisher
	middleware        *Middleware
}

func NewTrayectoHandler(
	trayectoService services.ITrayectoService,
	referenciaService services.IReferenciaService,
	publisher *event.CampoPublisher,
	middleware *Middleware,
) *TrayectoHandler {
	return &TrayectoHandler{
		trayectoService:   trayectoService,
		referenciaService: referenciaService,
		publisher:         publisher,
		middleware:        middleware,
	}
}

func (h *TrayectoHandler) RegisterRoutes(router *gin.Engine) {
	trGr := router.Group("/api/trayectos", h.middleware.VerifyToken)
	trGr.GET("/siguienteId", h.GetSiguienteID)
	trGr.POST("", h.CrearTrayecto)
	trGr.PUT("/:puntoId", h.ActualizarTrayecto)
}

func (h *TrayectoHandler) GetSiguienteID(c *gin.Context) {
	id, err := h.trayectoService.SiguienteID()
	if err != nil {
		log.Printf("error generating trayecto id: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al generar el siguiente id"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"siguiente_id": id}))
}

func (h *TrayectoHandler) CrearTrayecto(c *gin.Context) {
	var req models.TrayectoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PuntoID == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "datos del trayecto inválidos"))
		return
	}

	if !h.checkPuntoOwnership(c, req.PuntoID, req.DatosTrayecto.CedulaBrigadista) {
		return
	}

	trayecto, err := h.trayectoService.Insertar(&req.DatosTrayecto, req.PuntoID)
	if err != nil {
		log.Printf("error inserting trayecto for punto %s: %v", req.PuntoID, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al guardar el trayecto"))
		return
	}

	h.publisher.Publish(c.Request.Context(), event.TrayectoCreado, "trayecto", trayecto.ID, req.DatosTrayecto.CedulaBrigadista)
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(trayecto))
}

func (h *TrayectoHandler) ActualizarTrayecto(c *gin.Context) {
	var datos models.DatosTrayecto
	if err := c.ShouldBindJSON(&datos); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "datos del trayecto inválidos"))
		return
	}

	puntoID := c.Param("puntoId")
	if !h.checkPuntoOwnership(c, puntoID, datos.CedulaBrigadista) {
		return
	}

	if datos.IDTrayecto != "" {
		existente, err := h.trayectoService.PorID(datos.IDTrayecto)
		if err != nil {
			log.Printf("error fetching trayecto %s: %v", datos.IDTrayecto, err)
			c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al actualizar el trayecto"))
			return
		}
		if existente == nil {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "trayecto no encontrado"))
			return
		}
	}

	trayecto, err := h.trayectoService.Actualizar(&datos, puntoID)
	if err != nil {
		log.Printf("error updating trayecto for punto %s: %v", puntoID, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al actualizar el trayecto"))
		return
	}

	h.publisher.Publish(c.Request.Context(), event.TrayectoModificado, "trayecto", trayecto.ID, datos.CedulaBrigadista)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(trayecto))
}

// checkPuntoOwnership verifies that the punto exists and that the caller's
// cedula matches the cedula stored on it. Writes the error response itself
// and reports whether the request may proceed.
func (h *TrayectoHandler) checkPuntoOwnership(c *gin.Context, puntoID, cedula string) bool {
	punto, err := h.referenciaService.PorID(puntoID)
	if err != nil {
		log.Printf("error fetching punto %s: %v", puntoID, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al verificar el punto de referencia"))
		return false
	}
	if punto == nil {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "punto de referencia no encontrado"))
		return false
	}
	if !services.SameOwner(punto.CedulaBrigadista, cedula) {
		c.JSON(http.StatusForbidden, utils.CreateErrorResponse("FORBIDDEN", services.ErrNoPermission.Error()))
		return false
	}
	return true
}
