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

type SubparcelaHandler struct {
	subparcelaService services.ISubparcelaService
	publisher         *event.CampoPublisher
	middleware        *Middleware
}

func NewSubparcelaHandler(
	subparcelaService services.ISubparcelaService,
	publisher *event.CampoPublisher,
	middleware *Middleware,
) *SubparcelaHandler {
	return &SubparcelaHandler{
		subparcelaService: subparcelaService,
		publisher:         publisher,
		middleware:        middleware,
	}
}

func (h *SubparcelaHandler) RegisterRoutes(router *gin.Engine) {
	subGr := router.Group("/api/subparcelas", h.middleware.VerifyToken)
	subGr.POST("/sincronizar", h.Sincronizar)
	subGr.GET("/arboles/:conglomeradoId/:nombreSubparcela", h.GetArboles)
	subGr.GET("/caracteristicas/:conglomeradoId/:nombreSubparcela", h.GetCaracteristicas)
	subGr.GET("/idsSubparcelas/:conglomeradoId", h.GetIDs)
	subGr.GET("/id", h.GetSubparcelaID)
}

// Sincronizar persists the coverage and disturbance characteristics the
// mobile client collected per subparcela. Inserts are additive: syncing the
// same payload twice stores it twice, under fresh IDs.
func (h *SubparcelaHandler) Sincronizar(c *gin.Context) {
	var req models.SincronizarRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req) == 0 {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "no se recibieron características para sincronizar"))
		return
	}

	result, err := h.subparcelaService.Sincronizar(req)
	if err != nil {
		log.Printf("error syncing subparcela characteristics: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al sincronizar las características"))
		return
	}

	for idSubparcela := range req {
		h.publisher.Publish(c.Request.Context(), event.SubparcelasSync, "subparcela", idSubparcela, "")
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(result))
}

func (h *SubparcelaHandler) GetArboles(c *gin.Context) {
	nombre := c.Param("nombreSubparcela")
	idConglomerado := c.Param("conglomeradoId")

	arboles, err := h.subparcelaService.GetArboles(nombre, idConglomerado)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "subparcela no encontrada"))
			return
		}
		log.Printf("error fetching arboles for subparcela %s/%s: %v", idConglomerado, nombre, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener los árboles de la subparcela"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(arboles))
}

func (h *SubparcelaHandler) GetCaracteristicas(c *gin.Context) {
	nombre := c.Param("nombreSubparcela")
	idConglomerado := c.Param("conglomeradoId")

	caracteristicas, err := h.subparcelaService.GetCaracteristicas(nombre, idConglomerado)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "subparcela no encontrada"))
			return
		}
		log.Printf("error fetching caracteristicas for subparcela %s/%s: %v", idConglomerado, nombre, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener las características de la subparcela"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(caracteristicas))
}

func (h *SubparcelaHandler) GetIDs(c *gin.Context) {
	idConglomerado := c.Param("conglomeradoId")
	ids, err := h.subparcelaService.GetIDsByConglomerado(idConglomerado)
	if err != nil {
		log.Printf("error fetching subparcela ids for conglomerado %s: %v", idConglomerado, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener las subparcelas"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"ids": ids}))
}

func (h *SubparcelaHandler) GetSubparcelaID(c *gin.Context) {
	nombre := c.Query("nombreSubparcela")
	idConglomerado := c.Query("conglomeradoId")
	if nombre == "" || idConglomerado == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "se requieren nombreSubparcela y conglomeradoId"))
		return
	}

	id, err := h.subparcelaService.GetSubparcelaID(nombre, idConglomerado)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "subparcela no encontrada"))
			return
		}
		log.Printf("error resolving subparcela %s/%s: %v", idConglomerado, nombre, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener la subparcela"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"id": id}))
}
