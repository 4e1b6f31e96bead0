package dto

import (
	"contratando_backend/internal/auth"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario *UsuarioInfo `json:"usuario"`
}

// UsuarioInfo is the safe projection of an admin user, without the
// password hash.
type UsuarioInfo struct {
	ID          string            `json:"id"`
	Nome        string            `json:"nome"`
	Email       string            `json:"email"`
	Perfil      string            `json:"perfil"`
	Permissoes  auth.PermissaoMap `json:"permissoes"`
	Ativo       bool              `json:"ativo"`
	UltimoLogin *string           `json:"ultimo_login,omitempty"`
}

type PermissionCheckRequest struct {
	Modulo string `json:"modulo" binding:"required"`
	Acao   string `json:"acao" binding:"required,is-acao"`
}

type PermissionCheckResponse struct {
	Permitido bool `json:"permitido"`
}
