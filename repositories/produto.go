package repositories

import (
	"apicatalogo/models"

	"gorm.io/gorm"
)

type ProdutoRepository interface {
	FindAll() ([]models.Produto, error)
	FindByID(id uint) (*models.Produto, error)
	Create(p *models.Produto) error
	Update(p *models.Produto) error
	Delete(id uint) (*models.Produto, error)
}

type produtoRepository struct {
	db *gorm.DB
}

func NewProdutoRepository(db *gorm.DB) ProdutoRepository {
	return &produtoRepository{db: db}
}

func (r *produtoRepository) FindAll() ([]models.Produto, error) {
	var produtos []models.Produto
	if err := r.db.Find(&produtos).Error; err != nil {
		return nil, err
	}
	return produtos, nil
}

func (r *produtoRepository) FindByID(id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.db.First(&produto, id).Error; err != nil {
		return nil, err
	}
	return &produto, nil
}

func (r *produtoRepository) Create(p *models.Produto) error {
	return r.db.Create(p).Error
}

// Update replaces every mutable field of an existing product.
func (r *produtoRepository) Update(p *models.Produto) error {
	return r.db.Save(p).Error
}

func (r *produtoRepository) Delete(id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.db.First(&produto, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Produto{}, id).Error; err != nil {
		return nil, err
	}
	return &produto, nil
}
