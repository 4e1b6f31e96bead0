package services

import (
	"strings"

	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/internal/services/dto"
	"contratando_backend/internal/utils"
	"contratando_backend/pkg/apperrors"
)

type CorretorService interface {
	Create(req *dto.CreateCorretorRequest) (*models.Corretor, error)
	Update(id string, req *dto.UpdateCorretorRequest) (*models.Corretor, error)
	Delete(id string) error
	GetByID(id string) (*models.Corretor, error)
	List(onlyAtivos bool) ([]models.Corretor, error)
}

type CorretorServiceImpl struct {
	corretorRepo repositories.CorretorRepository
}

func NewCorretorService(corretorRepo repositories.CorretorRepository) CorretorService {
	return &CorretorServiceImpl{corretorRepo: corretorRepo}
}

func (s *CorretorServiceImpl) Create(req *dto.CreateCorretorRequest) (*models.Corretor, error) {
	if !utils.ValidarCPF(req.CPF) {
		return nil, apperrors.ErrInvalidCPF
	}

	corretor := &models.Corretor{
		Nome:     strings.TrimSpace(req.Nome),
		CPF:      utils.SomenteDigitos(req.CPF),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone: utils.SomenteDigitos(req.Telefone),
		Susep:    req.Susep,
		Cidade:   req.Cidade,
		Estado:   strings.ToUpper(req.Estado),
		Ativo:    true,
	}

	if err := s.corretorRepo.Create(corretor); err != nil {
		if apperrors.Is(err, repositories.ErrCorretorAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return corretor, nil
}

func (s *CorretorServiceImpl) Update(id string, req *dto.UpdateCorretorRequest) (*models.Corretor, error) {
	corretor, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		corretor.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.CPF != nil {
		if !utils.ValidarCPF(*req.CPF) {
			return nil, apperrors.ErrInvalidCPF
		}
		corretor.CPF = utils.SomenteDigitos(*req.CPF)
	}
	if req.Email != nil {
		corretor.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Telefone != nil {
		corretor.Telefone = utils.SomenteDigitos(*req.Telefone)
	}
	if req.Susep != nil {
		corretor.Susep = *req.Susep
	}
	if req.Cidade != nil {
		corretor.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		corretor.Estado = strings.ToUpper(*req.Estado)
	}
	if req.Ativo != nil {
		corretor.Ativo = *req.Ativo
	}

	if err := s.corretorRepo.Update(corretor); err != nil {
		if apperrors.Is(err, repositories.ErrCorretorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return corretor, nil
}

func (s *CorretorServiceImpl) Delete(id string) error {
	if err := s.corretorRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCorretorNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CorretorServiceImpl) GetByID(id string) (*models.Corretor, error) {
	corretor, err := s.corretorRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCorretorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return corretor, nil
}

func (s *CorretorServiceImpl) List(onlyAtivos bool) ([]models.Corretor, error) {
	corretores, err := s.corretorRepo.FindAll(onlyAtivos)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return corretores, nil
}
