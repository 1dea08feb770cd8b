package handlers

import (
	"brigada-service/internal/models"
	"brigada-service/internal/services"
	"brigada-service/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler(authService services.IAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Auth routes stay public: verify-token is the login exchange itself.
func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	authGr := router.Group("/api/auth")
	authGr.POST("/verify-token", h.VerifyToken)
	authGr.POST("/logout", h.Logout)
	authGr.GET("/username/:uid", h.GetUserName)
}

func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req models.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "formato de solicitud inválido"))
		return
	}
	if req.IDToken == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("MISSING_TOKEN", "token de Firebase requerido"))
		return
	}

	userData, err := h.authService.VerifyAndGetUserData(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusUnauthorized, utils.CreateErrorResponse("AUTH_FAILED", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(userData))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req models.LogoutRequest
	_ = c.ShouldBindJSON(&req)
	h.authService.Logout(req.UID)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(nil))
}

func (h *AuthHandler) GetUserName(c *gin.Context) {
	uid := c.Param("uid")
	nombre, err := h.authService.GetUserNameByUID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("USER_NOT_FOUND", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"nombre": nombre}))
}
