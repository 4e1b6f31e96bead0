package dto

import (
	"contratando_backend/internal/auth"
)

type CreateUsuarioRequest struct {
	Nome       string            `json:"nome" binding:"required"`
	Email      string            `json:"email" binding:"required,email"`
	Senha      string            `json:"senha" binding:"required,min=6"`
	Perfil     string            `json:"perfil" binding:"omitempty,is-perfil"`
	Permissoes auth.PermissaoMap `json:"permissoes"`
}

// UpdateUsuarioRequest updates only the fields present. A nil Senha keeps
// the stored hash.
type UpdateUsuarioRequest struct {
	Nome       *string            `json:"nome"`
	Email      *string            `json:"email" binding:"omitempty,email"`
	Senha      *string            `json:"senha" binding:"omitempty,min=6"`
	Perfil     *string            `json:"perfil" binding:"omitempty,is-perfil"`
	Permissoes *auth.PermissaoMap `json:"permissoes"`
	Ativo      *bool              `json:"ativo"`
}

type ToggleStatusResponse struct {
	ID    string `json:"id"`
	Ativo bool   `json:"ativo"`
}
