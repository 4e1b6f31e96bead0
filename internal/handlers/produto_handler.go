package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/services"
	"contratando_backend/internal/services/dto"
	"contratando_backend/pkg/apperrors"
)

type ProdutoHandler struct {
	*BaseHandler
	produtoService services.ProdutoService
	tabelaService  services.TabelaService
}

func NewProdutoHandler(base *BaseHandler, produtoService services.ProdutoService, tabelaService services.TabelaService) *ProdutoHandler {
	return &ProdutoHandler{
		BaseHandler:    base,
		produtoService: produtoService,
		tabelaService:  tabelaService,
	}
}

// GET /api/v1/produtos
func (h *ProdutoHandler) List(c *gin.Context) {
	onlyAtivos := ParseQueryBool(c, "ativos", true)

	produtos, err := h.produtoService.List(onlyAtivos)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"produtos": produtos})
}

// GET /api/v1/produtos/:id
func (h *ProdutoHandler) GetByID(c *gin.Context) {
	produto, err := h.produtoService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, produto)
}

// GET /api/v1/produtos/:id/valor?idade=30
//
// Resolves the monthly price of a product for a given age, the same
// lookup the intake flow runs server-side.
func (h *ProdutoHandler) ResolverValor(c *gin.Context) {
	idade := ParseQueryInt(c, "idade", -1)
	if idade < 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Parâmetro 'idade' é obrigatório"))
		return
	}

	valor, ok, err := h.tabelaService.ResolverValorPorProduto(c.Param("id"), idade)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResolverValorResponse{Valor: valor, Encontrado: ok})
}

// POST /api/v1/admin/produtos
func (h *ProdutoHandler) Create(c *gin.Context) {
	var req dto.CreateProdutoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	produto, err := h.produtoService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, produto)
}

// PUT /api/v1/admin/produtos/:id
func (h *ProdutoHandler) Update(c *gin.Context) {
	var req dto.UpdateProdutoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	produto, err := h.produtoService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, produto)
}

// DELETE /api/v1/admin/produtos/:id
func (h *ProdutoHandler) Delete(c *gin.Context) {
	if err := h.produtoService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produto removido"})
}

// --- price tables ---

// GET /api/v1/tabelas
func (h *ProdutoHandler) ListTabelas(c *gin.Context) {
	onlyAtivas := ParseQueryBool(c, "ativas", true)

	tabelas, err := h.tabelaService.ListTabelas(onlyAtivas)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tabelas": tabelas})
}

// GET /api/v1/tabelas/:id
func (h *ProdutoHandler) GetTabela(c *gin.Context) {
	tabela, err := h.tabelaService.GetTabela(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	faixas, err := h.tabelaService.GetFaixas(tabela.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	tabela.Faixas = faixas

	c.JSON(http.StatusOK, tabela)
}

// POST /api/v1/admin/tabelas
func (h *ProdutoHandler) CreateTabela(c *gin.Context) {
	var req dto.CreateTabelaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tabela, err := h.produtoService.CreateTabela(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tabela)
}

// PUT /api/v1/admin/tabelas/:id
func (h *ProdutoHandler) UpdateTabela(c *gin.Context) {
	var req dto.UpdateTabelaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tabela, err := h.produtoService.UpdateTabela(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tabela)
}

// DELETE /api/v1/admin/tabelas/:id
func (h *ProdutoHandler) DeleteTabela(c *gin.Context) {
	if err := h.produtoService.DeleteTabela(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tabela removida"})
}
