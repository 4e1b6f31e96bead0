package models

import (
	"gorm.io/datatypes"
)

// Dependente is stored inside the proposal row as part of a JSON array.
type Dependente struct {
	Nome            string  `json:"nome"`
	CPF             string  `json:"cpf"`
	RG              string  `json:"rg"`
	DataNascimento  string  `json:"data_nascimento"` // YYYY-MM-DD
	Parentesco      string  `json:"parentesco"`
	Idade           int     `json:"idade"`
	ValorIndividual float64 `json:"valor_individual"`
}

// DocumentoURLMap maps document type (rg, cpf, comprovante_residencia...)
// to the stored object URL.
type DocumentoURLMap map[string]string

// DocumentoDependenteMap maps dependent index (as a string key) to that
// dependent's document URL map.
type DocumentoDependenteMap map[string]DocumentoURLMap

// Proposta is a health-plan proposal. It is written once at broker intake
// with status "parcial" and only ever updated afterwards, never deleted.
type Proposta struct {
	BaseModel

	// Titular
	Nome           string `gorm:"not null" json:"nome"`
	CPF            string `gorm:"column:cpf;not null;index" json:"cpf"`
	RG             string `gorm:"column:rg" json:"rg"`
	DataNascimento string `gorm:"not null" json:"data_nascimento"` // YYYY-MM-DD
	Idade          int    `json:"idade"`
	NomeMae        string `json:"nome_mae"`
	Sexo           string `json:"sexo"`
	EstadoCivil    string `json:"estado_civil"`
	Email          string `gorm:"not null" json:"email"`
	Telefone       string `gorm:"not null" json:"telefone"`

	// Address
	CEP         string `gorm:"column:cep" json:"cep"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `gorm:"type:varchar(2)" json:"estado"`

	// Plan
	ProdutoID   *string `gorm:"type:uuid;index" json:"produto_id"`
	TabelaID    *string `gorm:"type:uuid" json:"tabela_id"`
	ValorMensal float64 `json:"valor_mensal"`

	// Broker
	CorretorID   *string `gorm:"type:uuid;index" json:"corretor_id"`
	CorretorNome string  `json:"corretor_nome"`

	Dependentes              datatypes.JSONType[[]Dependente]           `json:"dependentes"`
	DocumentosURLs           datatypes.JSONType[DocumentoURLMap]        `json:"documentos_urls"`
	DocumentosDependentesURL datatypes.JSONType[DocumentoDependenteMap] `gorm:"column:documentos_dependentes_urls" json:"documentos_dependentes_urls"`

	Status string `gorm:"type:varchar(30);default:'parcial';index" json:"status"`

	// Administrative fields set when the back office completes the record.
	Administradora string `json:"administradora"`
	DataVencimento string `json:"data_vencimento"`
	DataVigencia   string `json:"data_vigencia"`
	Observacoes    string `json:"observacoes"`

	EmailValidacaoEnviado bool `gorm:"default:false" json:"email_validacao_enviado"`
}

func (Proposta) TableName() string {
	return "propostas"
}

// CadastroCompleto reports whether the three administrative fields are all
// filled, which is what "registration complete" means here.
func (p *Proposta) CadastroCompleto() bool {
	return p.Administradora != "" && p.DataVencimento != "" && p.DataVigencia != ""
}
