package dto

import (
	"contratando_backend/internal/models"
)

type DependenteRequest struct {
	Nome           string `json:"nome" binding:"required"`
	CPF            string `json:"cpf" binding:"required,is-cpf"`
	RG             string `json:"rg"`
	DataNascimento string `json:"data_nascimento" binding:"required"`
	Parentesco     string `json:"parentesco" binding:"required"`
}

// CreatePropostaRequest is the broker intake payload. ValorMensal comes as
// the masked string the form produces ("R$ 1.234,56"); it is normalized
// server-side.
type CreatePropostaRequest struct {
	Nome           string `json:"nome" binding:"required"`
	CPF            string `json:"cpf" binding:"required,is-cpf"`
	RG             string `json:"rg"`
	DataNascimento string `json:"data_nascimento" binding:"required"`
	NomeMae        string `json:"nome_mae"`
	Sexo           string `json:"sexo"`
	EstadoCivil    string `json:"estado_civil"`
	Email          string `json:"email" binding:"required,email"`
	Telefone       string `json:"telefone" binding:"required"`

	CEP         string `json:"cep"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`

	ProdutoID   string `json:"produto_id"`
	TabelaID    string `json:"tabela_id"`
	ValorMensal string `json:"valor_mensal"`

	CorretorID   string `json:"corretor_id"`
	CorretorNome string `json:"corretor_nome"`

	Dependentes []DependenteRequest `json:"dependentes" binding:"omitempty,dive"`

	// Status is only honored on the admin manual-entry path.
	Status string `json:"status"`
}

type CreatePropostaResponse struct {
	Proposta     *models.Proposta `json:"proposta"`
	EmailEnviado bool             `json:"email_validacao_enviado"`
}

// CompletarCadastroRequest fills the administrative fields and moves the
// proposal to "cadastrado".
type CompletarCadastroRequest struct {
	Administradora string `json:"administradora" binding:"required"`
	DataVencimento string `json:"data_vencimento" binding:"required"`
	DataVigencia   string `json:"data_vigencia" binding:"required"`
	Observacoes    string `json:"observacoes"`
}

type ListPropostasRequest struct {
	Status     string `form:"status"`
	CorretorID string `form:"corretor_id"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"page_size,default=20"`
}

type ListPropostasResponse struct {
	Propostas []models.Proposta `json:"propostas"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}
