package handlers

import (
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"brigada-service/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CoordenadasHandler struct {
	coordenadasService services.ICoordenadasService
	brigadistaService  services.IBrigadistaService
	middleware         *Middleware
}

func NewCoordenadasHandler(
	coordenadasService services.ICoordenadasService,
	brigadistaService services.IBrigadistaService,
	middleware *Middleware,
) *CoordenadasHandler {
	return &CoordenadasHandler{
		coordenadasService: coordenadasService,
		brigadistaService:  brigadistaService,
		middleware:         middleware,
	}
}

func (h *CoordenadasHandler) RegisterRoutes(router *gin.Engine) {
	coordGr := router.Group("/api/coordenadas", h.middleware.VerifyToken)
	coordGr.GET("/subparcelas", h.GetCoordenadasSubparcelas)
	coordGr.GET("/centro-poblado", h.GetCentroPoblado)
}

// GetCoordenadasSubparcelas resolves the caller's conglomerado and lists
// the coordinates of its subparcelas.
func (h *CoordenadasHandler) GetCoordenadasSubparcelas(c *gin.Context) {
	info, ok := h.callerInfo(c)
	if !ok {
		return
	}
	coordenadas := h.coordenadasService.CoordenadasSubparcelas(info.IDConglomerado)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(coordenadas))
}

func (h *CoordenadasHandler) GetCentroPoblado(c *gin.Context) {
	info, ok := h.callerInfo(c)
	if !ok {
		return
	}
	centros := h.coordenadasService.CentroPoblado(info.Brigada)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(centros))
}

func (h *CoordenadasHandler) callerInfo(c *gin.Context) (*models.BrigadistaInfo, bool) {
	uid := c.GetString(ContextUID)
	info, err := h.brigadistaService.GetInfo(uid)
	if err != nil {
		log.Printf("error resolving brigadista %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "error al obtener coordenadas"))
		return nil, false
	}
	if info == nil {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "no se encontró información del brigadista"))
		return nil, false
	}
	return info, true
}
