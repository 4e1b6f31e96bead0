package models

// Produto is a health-plan product offered by an operator.
type Produto struct {
	BaseModel
	Nome      string `gorm:"not null" json:"nome"`
	Operadora string `gorm:"not null" json:"operadora"`
	Tipo      string `json:"tipo"` // individual, adesao, empresarial
	Descricao string `json:"descricao"`
	Ativo     bool   `gorm:"default:true" json:"ativo"`
}

func (Produto) TableName() string {
	return "produtos"
}

// TabelaPreco groups age-banded prices under a named table.
type TabelaPreco struct {
	BaseModel
	Nome      string `gorm:"not null" json:"nome"`
	Descricao string `json:"descricao"`
	Ativo     bool   `gorm:"default:true" json:"ativo"`

	Faixas []TabelaPrecoFaixa `gorm:"foreignKey:TabelaID" json:"faixas,omitempty"`
}

func (TabelaPreco) TableName() string {
	return "tabelas_precos"
}

// TabelaPrecoFaixa is one price bracket. FaixaEtaria holds the range
// expression: an exact age ("30"), a closed range ("18-59") or an open
// one ("60+"). Ordem fixes the resolution order.
type TabelaPrecoFaixa struct {
	BaseModel
	TabelaID    string  `gorm:"type:uuid;not null;index" json:"tabela_id"`
	FaixaEtaria string  `gorm:"not null" json:"faixa_etaria"`
	Valor       float64 `gorm:"not null" json:"valor"`
	Ordem       int     `gorm:"default:0" json:"ordem"`
}

func (TabelaPrecoFaixa) TableName() string {
	return "tabelas_precos_faixas"
}

// ProdutoTabela links a product to the price table used for it.
type ProdutoTabela struct {
	BaseModel
	ProdutoID string `gorm:"type:uuid;not null;index" json:"produto_id"`
	TabelaID  string `gorm:"type:uuid;not null;index" json:"tabela_id"`
}

func (ProdutoTabela) TableName() string {
	return "produtos_tabelas"
}
