package models

import "time"

type Produto struct {
	ProdutoID    uint       `gorm:"primaryKey" json:"produto_id"`
	Nome         string     `gorm:"type:varchar(80)" json:"nome"`
	Descricao    string     `gorm:"type:varchar(300)" json:"descricao"`
	Preco        float64    `gorm:"type:decimal(10,2)" json:"preco"`
	ImagemUrl    string     `gorm:"type:varchar(300)" json:"imagem_url"`
	Estoque      float64    `json:"estoque"`
	DataCadastro time.Time  `json:"data_cadastro"`
	CategoriaID  uint       `json:"categoria_id"`       // Foreign key to Categoria
	Categoria    *Categoria `gorm:"foreignKey:CategoriaID" json:"-"` // Belongs to one Categoria, hidden from responses
}
