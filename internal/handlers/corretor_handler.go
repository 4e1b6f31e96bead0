package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/services"
	"contratando_backend/internal/services/dto"
)

type CorretorHandler struct {
	*BaseHandler
	corretorService services.CorretorService
}

func NewCorretorHandler(base *BaseHandler, corretorService services.CorretorService) *CorretorHandler {
	return &CorretorHandler{
		BaseHandler:     base,
		corretorService: corretorService,
	}
}

// POST /api/v1/admin/corretores
func (h *CorretorHandler) Create(c *gin.Context) {
	var req dto.CreateCorretorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	corretor, err := h.corretorService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, corretor)
}

// PUT /api/v1/admin/corretores/:id
func (h *CorretorHandler) Update(c *gin.Context) {
	var req dto.UpdateCorretorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	corretor, err := h.corretorService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, corretor)
}

// DELETE /api/v1/admin/corretores/:id
func (h *CorretorHandler) Delete(c *gin.Context) {
	if err := h.corretorService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Corretor removido"})
}

// GET /api/v1/admin/corretores/:id
func (h *CorretorHandler) GetByID(c *gin.Context) {
	corretor, err := h.corretorService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, corretor)
}

// GET /api/v1/admin/corretores
func (h *CorretorHandler) List(c *gin.Context) {
	onlyAtivos := ParseQueryBool(c, "ativos", false)

	corretores, err := h.corretorService.List(onlyAtivos)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"corretores": corretores})
}
