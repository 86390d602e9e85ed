package models

type Categoria struct {
	CategoriaID uint      `gorm:"primaryKey" json:"categoria_id"`
	Nome        string    `gorm:"type:varchar(80);not null" json:"nome" validate:"required,max=80"`
	ImagemUrl   string    `gorm:"type:varchar(300);not null" json:"imagem_url" validate:"required,max=300"`
	Produtos    []Produto `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE" json:"produtos,omitempty"` // One-to-many relationship
}
