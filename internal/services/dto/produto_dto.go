package dto

type CreateProdutoRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Operadora string `json:"operadora" binding:"required"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
	TabelaID  string `json:"tabela_id"`
}

type UpdateProdutoRequest struct {
	Nome      *string `json:"nome"`
	Operadora *string `json:"operadora"`
	Tipo      *string `json:"tipo"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
	TabelaID  *string `json:"tabela_id"`
}

type FaixaRequest struct {
	FaixaEtaria string  `json:"faixa_etaria" binding:"required"`
	Valor       float64 `json:"valor" binding:"required,gt=0"`
}

type CreateTabelaRequest struct {
	Nome      string         `json:"nome" binding:"required"`
	Descricao string         `json:"descricao"`
	Faixas    []FaixaRequest `json:"faixas" binding:"omitempty,dive"`
}

type UpdateTabelaRequest struct {
	Nome      *string        `json:"nome"`
	Descricao *string        `json:"descricao"`
	Ativo     *bool          `json:"ativo"`
	Faixas    []FaixaRequest `json:"faixas" binding:"omitempty,dive"`
}

type ResolverValorResponse struct {
	Valor      float64 `json:"valor"`
	Encontrado bool    `json:"encontrado"`
}
