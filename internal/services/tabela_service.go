package services

import (
	"strconv"
	"strings"

	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/pkg/apperrors"
)

type TabelaService interface {
	// ResolverValorPorIdade walks the brackets in list order and returns
	// the first matching price. The bool is false when nothing matches.
	ResolverValorPorIdade(faixas []models.TabelaPrecoFaixa, idade int) (float64, bool)
	ResolverValorPorTabela(tabelaID string, idade int) (float64, bool, error)
	ResolverValorPorProduto(produtoID string, idade int) (float64, bool, error)

	GetTabela(id string) (*models.TabelaPreco, error)
	ListTabelas(onlyAtivas bool) ([]models.TabelaPreco, error)
	GetFaixas(tabelaID string) ([]models.TabelaPrecoFaixa, error)
}

type TabelaServiceImpl struct {
	produtoRepo repositories.ProdutoRepository
}

func NewTabelaService(produtoRepo repositories.ProdutoRepository) TabelaService {
	return &TabelaServiceImpl{produtoRepo: produtoRepo}
}

func (s *TabelaServiceImpl) ResolverValorPorIdade(faixas []models.TabelaPrecoFaixa, idade int) (float64, bool) {
	for _, faixa := range faixas {
		if faixaContemIdade(faixa.FaixaEtaria, idade) {
			return faixa.Valor, true
		}
	}
	return 0, false
}

// faixaContemIdade evaluates one range expression: "30" (exact age),
// "18-59" (inclusive bounds) or "60+" (open). Malformed expressions never
// match.
func faixaContemIdade(expressao string, idade int) bool {
	expr := strings.TrimSpace(expressao)
	if expr == "" {
		return false
	}

	// The range form goes first so something like "-5+" never parses as
	// an open bracket with a negative minimum.
	if strings.Contains(expr, "-") {
		parts := strings.SplitN(expr, "-", 2)
		min, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
		max, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errMin != nil || errMax != nil {
			return false
		}
		return idade >= min && idade <= max
	}

	if strings.HasSuffix(expr, "+") {
		min, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(expr, "+")))
		if err != nil {
			return false
		}
		return idade >= min
	}

	exact, err := strconv.Atoi(expr)
	if err != nil {
		return false
	}
	return idade == exact
}

func (s *TabelaServiceImpl) ResolverValorPorTabela(tabelaID string, idade int) (float64, bool, error) {
	faixas, err := s.produtoRepo.FindFaixasByTabela(tabelaID)
	if err != nil {
		return 0, false, apperrors.InternalError(err)
	}

	valor, ok := s.ResolverValorPorIdade(faixas, idade)
	return valor, ok, nil
}

func (s *TabelaServiceImpl) ResolverValorPorProduto(produtoID string, idade int) (float64, bool, error) {
	tabela, err := s.produtoRepo.FindTabelaByProduto(produtoID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTabelaNotFound) {
			// Product without a linked table resolves to no price, not an error.
			return 0, false, nil
		}
		return 0, false, apperrors.InternalError(err)
	}

	return s.ResolverValorPorTabela(tabela.ID, idade)
}

func (s *TabelaServiceImpl) GetTabela(id string) (*models.TabelaPreco, error) {
	tabela, err := s.produtoRepo.FindTabelaByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTabelaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return tabela, nil
}

func (s *TabelaServiceImpl) ListTabelas(onlyAtivas bool) ([]models.TabelaPreco, error) {
	tabelas, err := s.produtoRepo.FindAllTabelas(onlyAtivas)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tabelas, nil
}

func (s *TabelaServiceImpl) GetFaixas(tabelaID string) ([]models.TabelaPrecoFaixa, error) {
	faixas, err := s.produtoRepo.FindFaixasByTabela(tabelaID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return faixas, nil
}
