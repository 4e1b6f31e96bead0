package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/services"
	"contratando_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// Login godoc
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout is stateless: the client discards the token. The endpoint exists
// so the frontend has a uniform call.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado"})
}

// Me returns the authenticated user with a fresh permission map.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	usuario, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// CheckPermission resolves a single module/action grant for the
// authenticated user.
func (h *AuthHandler) CheckPermission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PermissionCheckRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	permitido, err := h.authService.CheckPermission(userID, req.Modulo, req.Acao)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PermissionCheckResponse{Permitido: permitido})
}
