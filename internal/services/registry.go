package services

import (
	"contratando_backend/internal/email"
)

// ServiceContainer groups every service for dependency wiring.
type ServiceContainer struct {
	AuthService     AuthService
	UsuarioService  UsuarioAdminService
	PropostaService PropostaService
	ProdutoService  ProdutoService
	TabelaService   TabelaService
	CorretorService CorretorService
	EmailProvider   email.Provider
}
