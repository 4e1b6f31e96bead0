package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"contratando_backend/internal/models"
)

var (
	ErrCorretorNotFound      = errors.New("corretor not found")
	ErrCorretorAlreadyExists = errors.New("corretor already exists")
)

type CorretorRepository interface {
	FindByID(id string) (*models.Corretor, error)
	FindByEmail(email string) (*models.Corretor, error)
	FindAll(onlyAtivos bool) ([]models.Corretor, error)
	Create(corretor *models.Corretor) error
	Update(corretor *models.Corretor) error
	Delete(id string) error
}

type CorretorRepositoryImpl struct {
	db *gorm.DB
}

func NewCorretorRepository(db *gorm.DB) CorretorRepository {
	return &CorretorRepositoryImpl{db: db}
}

func (r *CorretorRepositoryImpl) FindByID(id string) (*models.Corretor, error) {
	var corretor models.Corretor
	err := r.db.First(&corretor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCorretorNotFound
		}
		return nil, err
	}
	return &corretor, nil
}

func (r *CorretorRepositoryImpl) FindByEmail(email string) (*models.Corretor, error) {
	var corretor models.Corretor
	err := r.db.First(&corretor, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCorretorNotFound
		}
		return nil, err
	}
	return &corretor, nil
}

func (r *CorretorRepositoryImpl) FindAll(onlyAtivos bool) ([]models.Corretor, error) {
	var corretores []models.Corretor
	query := r.db.Order("nome ASC")
	if onlyAtivos {
		query = query.Where("ativo = ?", true)
	}
	err := query.Find(&corretores).Error
	return corretores, err
}

func (r *CorretorRepositoryImpl) Create(corretor *models.Corretor) error {
	var existing models.Corretor
	if err := r.db.Where("email = ?", corretor.Email).First(&existing).Error; err == nil {
		return ErrCorretorAlreadyExists
	}

	return r.db.Create(corretor).Error
}

func (r *CorretorRepositoryImpl) Update(corretor *models.Corretor) error {
	result := r.db.Model(corretor).Updates(map[string]interface{}{
		"nome":       corretor.Nome,
		"cpf":        corretor.CPF,
		"email":      corretor.Email,
		"telefone":   corretor.Telefone,
		"susep":      corretor.Susep,
		"cidade":     corretor.Cidade,
		"estado":     corretor.Estado,
		"ativo":      corretor.Ativo,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCorretorNotFound
	}
	return nil
}

func (r *CorretorRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Corretor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCorretorNotFound
	}
	return nil
}
