package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UsuarioHandler  *UsuarioAdminHandler
	PropostaHandler *PropostaHandler
	ProdutoHandler  *ProdutoHandler
	CorretorHandler *CorretorHandler
	CEPHandler      *CEPHandler
	FileHandler     *FileHandler
}
