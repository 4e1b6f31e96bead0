package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"contratando_backend/internal/models"
)

var ErrPropostaNotFound = errors.New("proposta not found")

// PropostaFilter narrows the admin listing.
type PropostaFilter struct {
	Status     string
	CorretorID string
	Search     string // matches nome, cpf or email
	Page       int
	PageSize   int
}

type PropostaRepository interface {
	FindByID(id string) (*models.Proposta, error)
	FindWithFilter(criteria PropostaFilter) ([]models.Proposta, int64, error)
	Create(proposta *models.Proposta) error
	UpdateFields(id string, fields map[string]interface{}) error
	CountByStatus() (map[string]int64, error)
}

type PropostaRepositoryImpl struct {
	db *gorm.DB
}

func NewPropostaRepository(db *gorm.DB) PropostaRepository {
	return &PropostaRepositoryImpl{db: db}
}

func (r *PropostaRepositoryImpl) FindByID(id string) (*models.Proposta, error) {
	var proposta models.Proposta
	err := r.db.First(&proposta, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropostaNotFound
		}
		return nil, err
	}
	return &proposta, nil
}

func (r *PropostaRepositoryImpl) FindWithFilter(criteria PropostaFilter) ([]models.Proposta, int64, error) {
	var propostas []models.Proposta
	query := r.db.Model(&models.Proposta{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CorretorID != "" {
		query = query.Where("corretor_id = ?", criteria.CorretorID)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("nome ILIKE ? OR cpf ILIKE ? OR email ILIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = 20
	}
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(criteria.PageSize).Offset(offset).Find(&propostas).Error
	return propostas, total, err
}

func (r *PropostaRepositoryImpl) Create(proposta *models.Proposta) error {
	return r.db.Create(proposta).Error
}

func (r *PropostaRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Proposta{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropostaNotFound
	}
	return nil
}

func (r *PropostaRepositoryImpl) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.Model(&models.Proposta{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}
