package repositories

import (
	"apicatalogo/models"

	"gorm.io/gorm"
)

// CategoriaRepository mediates every read/write crossing the
// Categoria↔Produto boundary, including the referential checks Produto
// writes depend on.
type CategoriaRepository interface {
	FindAll() ([]models.Categoria, error)
	FindAllComProdutos() ([]models.Categoria, error)
	FindByID(id uint) (*models.Categoria, error)
	Create(c *models.Categoria) error
	UpdateNome(id uint, nome string) (*models.Categoria, error)
	DeleteEmCascata(id uint) (*models.Categoria, error)
}

type categoriaRepository struct {
	db *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) FindAll() ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := r.db.Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

// FindAllComProdutos eager-loads each category's products.
func (r *categoriaRepository) FindAllComProdutos() ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := r.db.Preload("Produtos").Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *categoriaRepository) FindByID(id uint) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.First(&categoria, id).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *categoriaRepository) Create(c *models.Categoria) error {
	// Products are never attached through a category write
	c.Produtos = nil
	return r.db.Create(c).Error
}

// UpdateNome replaces the name, the only mutable attribute of a category.
func (r *categoriaRepository) UpdateNome(id uint, nome string) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.First(&categoria, id).Error; err != nil {
		return nil, err
	}
	categoria.Nome = nome
	if err := r.db.Save(&categoria).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}

// DeleteEmCascata removes the category and all products referencing it as a
// single transaction, so no reader can observe one gone without the other.
func (r *categoriaRepository) DeleteEmCascata(id uint) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.First(&categoria, id).Error; err != nil {
		return nil, err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("categoria_id = ?", id).Delete(&models.Produto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Categoria{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}
