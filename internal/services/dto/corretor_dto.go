package dto

type CreateCorretorRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CPF      string `json:"cpf" binding:"required,is-cpf"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone"`
	Susep    string `json:"susep"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado"`
}

type UpdateCorretorRequest struct {
	Nome     *string `json:"nome"`
	CPF      *string `json:"cpf" binding:"omitempty,is-cpf"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Susep    *string `json:"susep"`
	Cidade   *string `json:"cidade"`
	Estado   *string `json:"estado"`
	Ativo    *bool   `json:"ativo"`
}
