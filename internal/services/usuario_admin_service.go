package services

import (
	"strings"

	"gorm.io/datatypes"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/internal/services/dto"
	"contratando_backend/pkg/apperrors"
)

type UsuarioAdminService interface {
	Create(req *dto.CreateUsuarioRequest) (*dto.UsuarioInfo, error)
	Update(id string, req *dto.UpdateUsuarioRequest) (*dto.UsuarioInfo, error)
	Delete(id string) error
	ToggleStatus(id string) (*dto.ToggleStatusResponse, error)
	GetByID(id string) (*dto.UsuarioInfo, error)
	List() ([]dto.UsuarioInfo, error)
}

type UsuarioAdminServiceImpl struct {
	usuarioRepo repositories.UsuarioAdminRepository
}

func NewUsuarioAdminService(usuarioRepo repositories.UsuarioAdminRepository) UsuarioAdminService {
	return &UsuarioAdminServiceImpl{usuarioRepo: usuarioRepo}
}

func (s *UsuarioAdminServiceImpl) Create(req *dto.CreateUsuarioRequest) (*dto.UsuarioInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.usuarioRepo.FindByEmail(email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUsuarioNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.Senha); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	perfil := req.Perfil
	if perfil == "" {
		perfil = auth.PerfilAssistente
	}
	if err := auth.ValidatePerfil(perfil); err != nil {
		return nil, apperrors.ErrInvalidPerfil
	}

	hash, err := auth.HashPassword(req.Senha)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	permissoes := req.Permissoes
	if permissoes == nil {
		permissoes = auth.DefaultPermissions(perfil)
	}

	usuario := &models.UsuarioAdmin{
		Nome:       strings.TrimSpace(req.Nome),
		Email:      email,
		SenhaHash:  hash,
		Perfil:     perfil,
		Permissoes: datatypes.NewJSONType(permissoes),
		Ativo:      true,
	}

	if err := s.usuarioRepo.Create(usuario); err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return ToUsuarioInfo(usuario), nil
}

// Update applies only the fields present in the request. A blank or
// missing senha keeps the stored hash.
func (s *UsuarioAdminServiceImpl) Update(id string, req *dto.UpdateUsuarioRequest) (*dto.UsuarioInfo, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	fields := map[string]interface{}{}

	if req.Nome != nil {
		fields["nome"] = strings.TrimSpace(*req.Nome)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != usuario.Email {
			if _, err := s.usuarioRepo.FindByEmail(email); err == nil {
				return nil, apperrors.ErrEmailAlreadyExists
			} else if !apperrors.Is(err, repositories.ErrUsuarioNotFound) {
				return nil, apperrors.InternalError(err)
			}
		}
		fields["email"] = email
	}

	if req.Senha != nil && *req.Senha != "" {
		if err := auth.ValidatePassword(*req.Senha); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hash, err := auth.HashPassword(*req.Senha)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["senha_hash"] = hash
	}

	if req.Perfil != nil {
		if err := auth.ValidatePerfil(*req.Perfil); err != nil {
			return nil, apperrors.ErrInvalidPerfil
		}
		fields["perfil"] = *req.Perfil
	}

	if req.Permissoes != nil {
		fields["permissoes"] = datatypes.NewJSONType(*req.Permissoes)
	}

	if req.Ativo != nil {
		fields["ativo"] = *req.Ativo
	}

	if len(fields) > 0 {
		if err := s.usuarioRepo.UpdateFields(id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(id)
}

// Delete removes the user unconditionally. Keeping at least one master
// around is the caller's responsibility.
func (s *UsuarioAdminServiceImpl) Delete(id string) error {
	if err := s.usuarioRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UsuarioAdminServiceImpl) ToggleStatus(id string) (*dto.ToggleStatusResponse, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	novoStatus := !usuario.Ativo
	if err := s.usuarioRepo.UpdateFields(id, map[string]interface{}{"ativo": novoStatus}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ToggleStatusResponse{ID: id, Ativo: novoStatus}, nil
}

func (s *UsuarioAdminServiceImpl) GetByID(id string) (*dto.UsuarioInfo, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return ToUsuarioInfo(usuario), nil
}

func (s *UsuarioAdminServiceImpl) List() ([]dto.UsuarioInfo, error) {
	usuarios, err := s.usuarioRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	infos := make([]dto.UsuarioInfo, 0, len(usuarios))
	for i := range usuarios {
		infos = append(infos, *ToUsuarioInfo(&usuarios[i]))
	}
	return infos, nil
}
