package models

// Corretor is a broker who submits proposals through the portal.
type Corretor struct {
	BaseModel
	Nome     string `gorm:"not null" json:"nome"`
	CPF      string `gorm:"column:cpf;uniqueIndex" json:"cpf"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Telefone string `json:"telefone"`
	Susep    string `json:"susep"`
	Cidade   string `json:"cidade"`
	Estado   string `gorm:"type:varchar(2)" json:"estado"`
	Ativo    bool   `gorm:"default:true" json:"ativo"`
}

func (Corretor) TableName() string {
	return "corretores"
}
