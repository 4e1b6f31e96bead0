package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"contratando_backend/internal/models"
)

var (
	ErrUsuarioNotFound      = errors.New("usuario not found")
	ErrUsuarioAlreadyExists = errors.New("usuario already exists")
)

type UsuarioAdminRepository interface {
	FindByID(id string) (*models.UsuarioAdmin, error)
	FindByEmail(email string) (*models.UsuarioAdmin, error)
	FindAll() ([]models.UsuarioAdmin, error)
	Create(usuario *models.UsuarioAdmin) error
	Update(usuario *models.UsuarioAdmin) error
	UpdateFields(id string, fields map[string]interface{}) error
	UpdateUltimoLogin(id string, at time.Time) error
	Delete(id string) error
	Count() (int64, error)
}

type UsuarioAdminRepositoryImpl struct {
	db *gorm.DB
}

func NewUsuarioAdminRepository(db *gorm.DB) UsuarioAdminRepository {
	return &UsuarioAdminRepositoryImpl{db: db}
}

func (r *UsuarioAdminRepositoryImpl) FindByID(id string) (*models.UsuarioAdmin, error) {
	var usuario models.UsuarioAdmin
	err := r.db.First(&usuario, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *UsuarioAdminRepositoryImpl) FindByEmail(email string) (*models.UsuarioAdmin, error) {
	var usuario models.UsuarioAdmin
	err := r.db.First(&usuario, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *UsuarioAdminRepositoryImpl) FindAll() ([]models.UsuarioAdmin, error) {
	var usuarios []models.UsuarioAdmin
	err := r.db.Order("created_at DESC").Find(&usuarios).Error
	return usuarios, err
}

func (r *UsuarioAdminRepositoryImpl) Create(usuario *models.UsuarioAdmin) error {
	var existing models.UsuarioAdmin
	if err := r.db.Where("email = ?", usuario.Email).First(&existing).Error; err == nil {
		return ErrUsuarioAlreadyExists
	}

	return r.db.Create(usuario).Error
}

func (r *UsuarioAdminRepositoryImpl) Update(usuario *models.UsuarioAdmin) error {
	result := r.db.Model(usuario).Updates(map[string]interface{}{
		"nome":       usuario.Nome,
		"email":      usuario.Email,
		"senha_hash": usuario.SenhaHash,
		"perfil":     usuario.Perfil,
		"permissoes": usuario.Permissoes,
		"ativo":      usuario.Ativo,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUsuarioNotFound
	}
	return nil
}

func (r *UsuarioAdminRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.UsuarioAdmin{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUsuarioNotFound
	}
	return nil
}

func (r *UsuarioAdminRepositoryImpl) UpdateUltimoLogin(id string, at time.Time) error {
	return r.db.Model(&models.UsuarioAdmin{}).Where("id = ?", id).
		Update("ultimo_login", at).Error
}

func (r *UsuarioAdminRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.UsuarioAdmin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUsuarioNotFound
	}
	return nil
}

func (r *UsuarioAdminRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.UsuarioAdmin{}).Count(&count).Error
	return count, err
}
