package models

import (
	"time"

	"gorm.io/datatypes"

	"contratando_backend/internal/auth"
)

// UsuarioAdmin is a back-office user. Access is resolved from Perfil plus
// the per-module permission map on every gated request.
type UsuarioAdmin struct {
	BaseModel
	Nome        string                                `gorm:"not null" json:"nome"`
	Email       string                                `gorm:"uniqueIndex;not null" json:"email"`
	SenhaHash   string                                `gorm:"not null" json:"-"`
	Perfil      string                                `gorm:"type:varchar(20);not null;default:'assistente'" json:"perfil"`
	Permissoes  datatypes.JSONType[auth.PermissaoMap] `json:"permissoes"`
	Ativo       bool                                  `gorm:"default:true" json:"ativo"`
	UltimoLogin *time.Time                            `json:"ultimo_login"`
}

func (UsuarioAdmin) TableName() string {
	return "usuarios_admin"
}
