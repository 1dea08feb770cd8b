package handlers

import (
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"brigada-service/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BrigadistaHandler struct {
	brigadistaService services.IBrigadistaService
	middleware        *Middleware
}

func NewBrigadistaHandler(brigadistaService services.IBrigadistaService, middleware *Middleware) *BrigadistaHandler {
	return &BrigadistaHandler{
		brigadistaService: brigadistaService,
		middleware:        middleware,
	}
}

func (h *BrigadistaHandler) RegisterRoutes(router *gin.Engine) {
	brigadistaGr := router.Group("/api/brigadista", h.middleware.VerifyToken)
	brigadistaGr.GET("/info", h.GetInfo)
	brigadistaGr.POST("/tutorial", h.UpdateTutorial)
}

func (h *BrigadistaHandler) GetInfo(c *gin.Context) {
	uid := c.GetString(ContextUID)

	info, err := h.brigadistaService.GetInfo(uid)
	if err != nil {
		log.Printf("error fetching brigadista info for %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "no se encontró información del brigadista"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(info))
}

func (h *BrigadistaHandler) UpdateTutorial(c *gin.Context) {
	uid := c.GetString(ContextUID)

	var req models.TutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "formato de solicitud inválido"))
		return
	}

	result, err := h.brigadistaService.UpdateTutorial(uid, req.Completado)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "no se encontró información del brigadista"))
			return
		}
		log.Printf("error updating tutorial flag for %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(result))
}
