package routes

import (
	"github.com/gin-gonic/gin"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/handlers"
	"contratando_backend/internal/middleware"
	"contratando_backend/internal/services"
)

// RegisterRoutes wires the full HTTP surface. Admin routes sit behind
// AuthMiddleware plus a per-request permission re-check.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
) {
	api := ginRouter.Group("/api/v1")

	// Auth
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", appHandlers.AuthHandler.Login)
		authGroup.POST("/logout", appHandlers.AuthHandler.Logout)

		authed := authGroup.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/me", appHandlers.AuthHandler.Me)
			authed.POST("/permissao", appHandlers.AuthHandler.CheckPermission)
		}
	}

	// Broker intake: proposal submission and the client completion flow
	// run without an admin session.
	propostas := api.Group("/propostas")
	{
		propostas.POST("", appHandlers.PropostaHandler.Create)
		propostas.GET("/:id", appHandlers.PropostaHandler.GetByID)
		propostas.POST("/:id/documentos", appHandlers.PropostaHandler.UploadDocumentos)
	}

	// Reads used by the intake form.
	api.GET("/produtos", appHandlers.ProdutoHandler.List)
	api.GET("/produtos/:id", appHandlers.ProdutoHandler.GetByID)
	api.GET("/produtos/:id/valor", appHandlers.ProdutoHandler.ResolverValor)
	api.GET("/tabelas", appHandlers.ProdutoHandler.ListTabelas)
	api.GET("/tabelas/:id", appHandlers.ProdutoHandler.GetTabela)
	api.GET("/cep/:cep", appHandlers.CEPHandler.Buscar)
	api.GET("/files/*path", appHandlers.FileHandler.Serve)

	// Back office.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		usuarios := admin.Group("/usuarios")
		{
			usuarios.GET("", gate(authService, "usuarios", auth.AcaoVisualizar), appHandlers.UsuarioHandler.List)
			usuarios.GET("/:id", gate(authService, "usuarios", auth.AcaoVisualizar), appHandlers.UsuarioHandler.GetByID)
			usuarios.POST("", gate(authService, "usuarios", auth.AcaoCriar), appHandlers.UsuarioHandler.Create)
			usuarios.PUT("/:id", gate(authService, "usuarios", auth.AcaoEditar), appHandlers.UsuarioHandler.Update)
			usuarios.PATCH("/:id/status", gate(authService, "usuarios", auth.AcaoEditar), appHandlers.UsuarioHandler.ToggleStatus)
			usuarios.DELETE("/:id", gate(authService, "usuarios", auth.AcaoExcluir), appHandlers.UsuarioHandler.Delete)
		}

		adminPropostas := admin.Group("/propostas")
		{
			adminPropostas.GET("", gate(authService, "propostas", auth.AcaoVisualizar), appHandlers.PropostaHandler.List)
			adminPropostas.GET("/estatisticas", gate(authService, "propostas", auth.AcaoVisualizar), appHandlers.PropostaHandler.CountByStatus)
			adminPropostas.GET("/:id", gate(authService, "propostas", auth.AcaoVisualizar), appHandlers.PropostaHandler.GetByID)
			adminPropostas.POST("", gate(authService, "propostas", auth.AcaoCriar), appHandlers.PropostaHandler.CreateManual)
			adminPropostas.PATCH("/:id/cadastro", gate(authService, "propostas", auth.AcaoEditar), appHandlers.PropostaHandler.CompletarCadastro)
			adminPropostas.PATCH("/:id/status", gate(authService, "propostas", auth.AcaoEditar), appHandlers.PropostaHandler.UpdateStatus)
			adminPropostas.POST("/:id/documentos", gate(authService, "propostas", auth.AcaoEditar), appHandlers.PropostaHandler.UploadDocumentos)
		}

		corretores := admin.Group("/corretores")
		{
			corretores.GET("", gate(authService, "corretores", auth.AcaoVisualizar), appHandlers.CorretorHandler.List)
			corretores.GET("/:id", gate(authService, "corretores", auth.AcaoVisualizar), appHandlers.CorretorHandler.GetByID)
			corretores.POST("", gate(authService, "corretores", auth.AcaoCriar), appHandlers.CorretorHandler.Create)
			corretores.PUT("/:id", gate(authService, "corretores", auth.AcaoEditar), appHandlers.CorretorHandler.Update)
			corretores.DELETE("/:id", gate(authService, "corretores", auth.AcaoExcluir), appHandlers.CorretorHandler.Delete)
		}

		produtos := admin.Group("/produtos")
		{
			produtos.POST("", gate(authService, "produtos", auth.AcaoCriar), appHandlers.ProdutoHandler.Create)
			produtos.PUT("/:id", gate(authService, "produtos", auth.AcaoEditar), appHandlers.ProdutoHandler.Update)
			produtos.DELETE("/:id", gate(authService, "produtos", auth.AcaoExcluir), appHandlers.ProdutoHandler.Delete)
		}

		tabelas := admin.Group("/tabelas")
		{
			tabelas.POST("", gate(authService, "tabelas", auth.AcaoCriar), appHandlers.ProdutoHandler.CreateTabela)
			tabelas.PUT("/:id", gate(authService, "tabelas", auth.AcaoEditar), appHandlers.ProdutoHandler.UpdateTabela)
			tabelas.DELETE("/:id", gate(authService, "tabelas", auth.AcaoExcluir), appHandlers.ProdutoHandler.DeleteTabela)
		}
	}
}

func gate(authService services.AuthService, modulo, acao string) gin.HandlerFunc {
	return middleware.RequirePermission(authService, modulo, acao)
}
