package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/services"
	"contratando_backend/internal/services/dto"
)

type UsuarioAdminHandler struct {
	*BaseHandler
	usuarioService services.UsuarioAdminService
}

func NewUsuarioAdminHandler(base *BaseHandler, usuarioService services.UsuarioAdminService) *UsuarioAdminHandler {
	return &UsuarioAdminHandler{
		BaseHandler:    base,
		usuarioService: usuarioService,
	}
}

// POST /api/v1/admin/usuarios
func (h *UsuarioAdminHandler) Create(c *gin.Context) {
	var req dto.CreateUsuarioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	usuario, err := h.usuarioService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, usuario)
}

// PUT /api/v1/admin/usuarios/:id
func (h *UsuarioAdminHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateUsuarioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	usuario, err := h.usuarioService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// DELETE /api/v1/admin/usuarios/:id
func (h *UsuarioAdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usuarioService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário removido"})
}

// PATCH /api/v1/admin/usuarios/:id/status
func (h *UsuarioAdminHandler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.usuarioService.ToggleStatus(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/admin/usuarios/:id
func (h *UsuarioAdminHandler) GetByID(c *gin.Context) {
	usuario, err := h.usuarioService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// GET /api/v1/admin/usuarios
func (h *UsuarioAdminHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuarios": usuarios})
}
