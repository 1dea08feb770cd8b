package handlers

import (
	"brigada-service/internal/event"
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"brigada-service/utils"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type IndividuoHandler struct {
	individuoService services.IIndividuoService
	publisher        *event.CampoPublisher
	middleware       *Middleware
}

func NewIndividuoHandler(
	individuoService services.IIndividuoService,
	publisher *event.CampoPublisher,
	middleware *Middleware,
) *IndividuoHandler {
	return &IndividuoHandler{
		individuoService: individuoService,
		publisher:        publisher,
		middleware:       middleware,
	}
}

func (h *IndividuoHandler) RegisterRoutes(router *gin.Engine) {
	indGr := router.Group("/api/individuos", h.middleware.VerifyToken)
	indGr.GET("/siguienteId", h.GetSiguienteID)
	indGr.GET("/conglomerado", h.GetPorSubparcelas)
	indGr.POST("/guardar", h.GuardarIndividuo)
}

func (h *IndividuoHandler) GetSiguienteID(c *gin.Context) {
	id, err := h.individuoService.SiguienteID()
	if err != nil {
		log.Printf("error generating arbol id: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al generar el siguiente id"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"siguiente_id": id}))
}

// GetPorSubparcelas lists the tree individuals of the subparcela IDs given
// in the comma-separated "ids" query parameter.
func (h *IndividuoHandler) GetPorSubparcelas(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "se requiere el parámetro 'ids'"))
		return
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "se requiere el parámetro 'ids'"))
		return
	}

	arboles, err := h.individuoService.PorSubparcelas(ids)
	if err != nil {
		log.Printf("error fetching arboles for subparcelas %v: %v", ids, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener los individuos"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(arboles))
}

func (h *IndividuoHandler) GuardarIndividuo(c *gin.Context) {
	var req models.GuardarIndividuoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "datos del individuo inválidos"))
		return
	}
	if req.SubparcelaID == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "se requiere el id de la subparcela"))
		return
	}

	result, err := h.individuoService.Guardar(&req)
	if err != nil {
		log.Printf("error saving individuo: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al guardar el individuo"))
		return
	}

	h.publisher.Publish(c.Request.Context(), event.IndividuoCreado, "arbol", result.IDArbol, req.CedulaBrigadista)
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(result))
}
