package services

import (
	"strings"
	"time"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/logger"
	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/internal/services/dto"
	"contratando_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(userID string) (*dto.UsuarioInfo, error)
	CheckPermission(userID, modulo, acao string) (bool, error)
}

type AuthServiceImpl struct {
	usuarioRepo repositories.UsuarioAdminRepository
}

func NewAuthService(usuarioRepo repositories.UsuarioAdminRepository) AuthService {
	return &AuthServiceImpl{usuarioRepo: usuarioRepo}
}

// Login authenticates an admin user. Unknown email, wrong password and
// inactive account all produce the same error so the endpoint cannot be
// used to probe which emails exist.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	usuario, err := s.usuarioRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !usuario.Ativo {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Senha, usuario.SenhaHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(usuario.ID, usuario.Email, usuario.Perfil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if err := s.usuarioRepo.UpdateUltimoLogin(usuario.ID, now); err != nil {
		// A failed timestamp update must not block the login.
		logger.Warn("failed to update ultimo_login", "user_id", usuario.ID, "error", err)
	}
	usuario.UltimoLogin = &now

	return &dto.LoginResponse{
		Token:   token,
		Usuario: ToUsuarioInfo(usuario),
	}, nil
}

func (s *AuthServiceImpl) GetCurrentUser(userID string) (*dto.UsuarioInfo, error) {
	usuario, err := s.usuarioRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	return ToUsuarioInfo(usuario), nil
}

// CheckPermission resolves a grant against the current database row, not
// the token snapshot.
func (s *AuthServiceImpl) CheckPermission(userID, modulo, acao string) (bool, error) {
	usuario, err := s.usuarioRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUsuarioNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	if !usuario.Ativo {
		return false, nil
	}

	return auth.HasPermission(usuario.Perfil, usuario.Permissoes.Data(), modulo, acao), nil
}

// ToUsuarioInfo projects a user row into its public shape.
func ToUsuarioInfo(usuario *models.UsuarioAdmin) *dto.UsuarioInfo {
	info := &dto.UsuarioInfo{
		ID:         usuario.ID,
		Nome:       usuario.Nome,
		Email:      usuario.Email,
		Perfil:     usuario.Perfil,
		Permissoes: usuario.Permissoes.Data(),
		Ativo:      usuario.Ativo,
	}
	if info.Permissoes == nil {
		info.Permissoes = auth.PermissaoMap{}
	}
	if usuario.UltimoLogin != nil {
		formatted := usuario.UltimoLogin.Format(time.RFC3339)
		info.UltimoLogin = &formatted
	}
	return info
}
