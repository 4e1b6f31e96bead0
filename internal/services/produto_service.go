package services

import (
	"strings"

	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/internal/services/dto"
	"contratando_backend/pkg/apperrors"
)

type ProdutoService interface {
	Create(req *dto.CreateProdutoRequest) (*models.Produto, error)
	Update(id string, req *dto.UpdateProdutoRequest) (*models.Produto, error)
	Delete(id string) error
	GetByID(id string) (*models.Produto, error)
	List(onlyAtivos bool) ([]models.Produto, error)

	CreateTabela(req *dto.CreateTabelaRequest) (*models.TabelaPreco, error)
	UpdateTabela(id string, req *dto.UpdateTabelaRequest) (*models.TabelaPreco, error)
	DeleteTabela(id string) error
}

type ProdutoServiceImpl struct {
	produtoRepo repositories.ProdutoRepository
}

func NewProdutoService(produtoRepo repositories.ProdutoRepository) ProdutoService {
	return &ProdutoServiceImpl{produtoRepo: produtoRepo}
}

func (s *ProdutoServiceImpl) Create(req *dto.CreateProdutoRequest) (*models.Produto, error) {
	produto := &models.Produto{
		Nome:      strings.TrimSpace(req.Nome),
		Operadora: strings.TrimSpace(req.Operadora),
		Tipo:      req.Tipo,
		Descricao: req.Descricao,
		Ativo:     true,
	}

	if err := s.produtoRepo.Create(produto); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.TabelaID != "" {
		if _, err := s.produtoRepo.FindTabelaByID(req.TabelaID); err != nil {
			if apperrors.Is(err, repositories.ErrTabelaNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if err := s.produtoRepo.LinkProdutoTabela(produto.ID, req.TabelaID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return produto, nil
}

func (s *ProdutoServiceImpl) Update(id string, req *dto.UpdateProdutoRequest) (*models.Produto, error) {
	produto, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		produto.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Operadora != nil {
		produto.Operadora = strings.TrimSpace(*req.Operadora)
	}
	if req.Tipo != nil {
		produto.Tipo = *req.Tipo
	}
	if req.Descricao != nil {
		produto.Descricao = *req.Descricao
	}
	if req.Ativo != nil {
		produto.Ativo = *req.Ativo
	}

	if err := s.produtoRepo.Update(produto); err != nil {
		if apperrors.Is(err, repositories.ErrProdutoNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.TabelaID != nil && *req.TabelaID != "" {
		if err := s.produtoRepo.LinkProdutoTabela(id, *req.TabelaID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(id)
}

func (s *ProdutoServiceImpl) Delete(id string) error {
	if err := s.produtoRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrProdutoNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProdutoServiceImpl) GetByID(id string) (*models.Produto, error) {
	produto, err := s.produtoRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProdutoNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return produto, nil
}

func (s *ProdutoServiceImpl) List(onlyAtivos bool) ([]models.Produto, error) {
	produtos, err := s.produtoRepo.FindAll(onlyAtivos)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return produtos, nil
}

func (s *ProdutoServiceImpl) CreateTabela(req *dto.CreateTabelaRequest) (*models.TabelaPreco, error) {
	tabela := &models.TabelaPreco{
		Nome:      strings.TrimSpace(req.Nome),
		Descricao: req.Descricao,
		Ativo:     true,
	}

	if err := s.produtoRepo.CreateTabela(tabela); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(req.Faixas) > 0 {
		if err := s.produtoRepo.ReplaceFaixas(tabela.ID, faixasFromRequest(req.Faixas)); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return tabela, nil
}

func (s *ProdutoServiceImpl) UpdateTabela(id string, req *dto.UpdateTabelaRequest) (*models.TabelaPreco, error) {
	tabela, err := s.produtoRepo.FindTabelaByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTabelaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Nome != nil {
		tabela.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Descricao != nil {
		tabela.Descricao = *req.Descricao
	}
	if req.Ativo != nil {
		tabela.Ativo = *req.Ativo
	}

	if err := s.produtoRepo.UpdateTabela(tabela); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// A faixas payload replaces the whole bracket list, keeping its order.
	if req.Faixas != nil {
		if err := s.produtoRepo.ReplaceFaixas(id, faixasFromRequest(req.Faixas)); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return tabela, nil
}

func (s *ProdutoServiceImpl) DeleteTabela(id string) error {
	if err := s.produtoRepo.DeleteTabela(id); err != nil {
		if apperrors.Is(err, repositories.ErrTabelaNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func faixasFromRequest(reqs []dto.FaixaRequest) []models.TabelaPrecoFaixa {
	faixas := make([]models.TabelaPrecoFaixa, 0, len(reqs))
	for _, f := range reqs {
		faixas = append(faixas, models.TabelaPrecoFaixa{
			FaixaEtaria: strings.TrimSpace(f.FaixaEtaria),
			Valor:       f.Valor,
		})
	}
	return faixas
}
