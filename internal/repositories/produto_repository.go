package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"contratando_backend/internal/models"
)

var (
	ErrProdutoNotFound = errors.New("produto not found")
	ErrTabelaNotFound  = errors.New("tabela de precos not found")
)

type ProdutoRepository interface {
	FindByID(id string) (*models.Produto, error)
	FindAll(onlyAtivos bool) ([]models.Produto, error)
	Create(produto *models.Produto) error
	Update(produto *models.Produto) error
	Delete(id string) error

	FindTabelaByID(id string) (*models.TabelaPreco, error)
	FindTabelaByProduto(produtoID string) (*models.TabelaPreco, error)
	FindAllTabelas(onlyAtivas bool) ([]models.TabelaPreco, error)
	CreateTabela(tabela *models.TabelaPreco) error
	UpdateTabela(tabela *models.TabelaPreco) error
	DeleteTabela(id string) error

	FindFaixasByTabela(tabelaID string) ([]models.TabelaPrecoFaixa, error)
	ReplaceFaixas(tabelaID string, faixas []models.TabelaPrecoFaixa) error

	LinkProdutoTabela(produtoID, tabelaID string) error
}

type ProdutoRepositoryImpl struct {
	db *gorm.DB
}

func NewProdutoRepository(db *gorm.DB) ProdutoRepository {
	return &ProdutoRepositoryImpl{db: db}
}

func (r *ProdutoRepositoryImpl) FindByID(id string) (*models.Produto, error) {
	var produto models.Produto
	err := r.db.First(&produto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNotFound
		}
		return nil, err
	}
	return &produto, nil
}

func (r *ProdutoRepositoryImpl) FindAll(onlyAtivos bool) ([]models.Produto, error) {
	var produtos []models.Produto
	query := r.db.Order("nome ASC")
	if onlyAtivos {
		query = query.Where("ativo = ?", true)
	}
	err := query.Find(&produtos).Error
	return produtos, err
}

func (r *ProdutoRepositoryImpl) Create(produto *models.Produto) error {
	return r.db.Create(produto).Error
}

func (r *ProdutoRepositoryImpl) Update(produto *models.Produto) error {
	result := r.db.Model(produto).Updates(map[string]interface{}{
		"nome":       produto.Nome,
		"operadora":  produto.Operadora,
		"tipo":       produto.Tipo,
		"descricao":  produto.Descricao,
		"ativo":      produto.Ativo,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProdutoNotFound
	}
	return nil
}

func (r *ProdutoRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", id).Delete(&models.ProdutoTabela{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Produto{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProdutoNotFound
		}
		return nil
	})
}

// Tabela operations

func (r *ProdutoRepositoryImpl) FindTabelaByID(id string) (*models.TabelaPreco, error) {
	var tabela models.TabelaPreco
	err := r.db.First(&tabela, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabelaNotFound
		}
		return nil, err
	}
	return &tabela, nil
}

// FindTabelaByProduto resolves the price table linked to a product. When a
// product carries more than one link the oldest wins.
func (r *ProdutoRepositoryImpl) FindTabelaByProduto(produtoID string) (*models.TabelaPreco, error) {
	var link models.ProdutoTabela
	err := r.db.Where("produto_id = ?", produtoID).Order("created_at ASC").First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabelaNotFound
		}
		return nil, err
	}
	return r.FindTabelaByID(link.TabelaID)
}

func (r *ProdutoRepositoryImpl) FindAllTabelas(onlyAtivas bool) ([]models.TabelaPreco, error) {
	var tabelas []models.TabelaPreco
	query := r.db.Order("nome ASC")
	if onlyAtivas {
		query = query.Where("ativo = ?", true)
	}
	err := query.Find(&tabelas).Error
	return tabelas, err
}

func (r *ProdutoRepositoryImpl) CreateTabela(tabela *models.TabelaPreco) error {
	return r.db.Create(tabela).Error
}

func (r *ProdutoRepositoryImpl) UpdateTabela(tabela *models.TabelaPreco) error {
	result := r.db.Model(tabela).Updates(map[string]interface{}{
		"nome":       tabela.Nome,
		"descricao":  tabela.Descricao,
		"ativo":      tabela.Ativo,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTabelaNotFound
	}
	return nil
}

func (r *ProdutoRepositoryImpl) DeleteTabela(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tabela_id = ?", id).Delete(&models.TabelaPrecoFaixa{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tabela_id = ?", id).Delete(&models.ProdutoTabela{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.TabelaPreco{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTabelaNotFound
		}
		return nil
	})
}

// Faixa operations

func (r *ProdutoRepositoryImpl) FindFaixasByTabela(tabelaID string) ([]models.TabelaPrecoFaixa, error) {
	var faixas []models.TabelaPrecoFaixa
	err := r.db.Where("tabela_id = ?", tabelaID).Order("ordem ASC, created_at ASC").Find(&faixas).Error
	return faixas, err
}

// ReplaceFaixas swaps the whole bracket list of a table in one transaction.
func (r *ProdutoRepositoryImpl) ReplaceFaixas(tabelaID string, faixas []models.TabelaPrecoFaixa) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tabela_id = ?", tabelaID).Delete(&models.TabelaPrecoFaixa{}).Error; err != nil {
			return err
		}
		for i := range faixas {
			faixas[i].TabelaID = tabelaID
			faixas[i].Ordem = i
		}
		if len(faixas) == 0 {
			return nil
		}
		return tx.Create(&faixas).Error
	})
}

func (r *ProdutoRepositoryImpl) LinkProdutoTabela(produtoID, tabelaID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", produtoID).Delete(&models.ProdutoTabela{}).Error; err != nil {
			return err
		}
		link := &models.ProdutoTabela{ProdutoID: produtoID, TabelaID: tabelaID}
		return tx.Create(link).Error
	})
}
