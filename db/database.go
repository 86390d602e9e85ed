package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"apicatalogo/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDatabase(dbPath string) {
	var err error

	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	// Open the database (sqlite creates the file when missing)
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	if err := DB.AutoMigrate(&models.Categoria{}, &models.Produto{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	SeedData(DB)
}

// SeedData inserts the initial catalog rows. It only runs against empty
// tables so restarts don't duplicate data.
func SeedData(database *gorm.DB) {
	var total int64
	if err := database.Model(&models.Categoria{}).Count(&total).Error; err != nil || total > 0 {
		return
	}

	categorias := []models.Categoria{
		{Nome: "Bebidas", ImagemUrl: "bebidas.jpg"},
		{Nome: "Lanches", ImagemUrl: "lanches.jpg"},
		{Nome: "Sobremesas", ImagemUrl: "sobremesas.jpg"},
	}
	if err := database.Create(&categorias).Error; err != nil {
		log.Println("Failed to seed categories:", err)
		return
	}

	produto := models.Produto{
		Nome:         "Coca-cola Diet",
		Descricao:    "Refrigerante de cola 350 ml",
		Preco:        5.45,
		ImagemUrl:    "cocacola.jpg",
		Estoque:      50,
		DataCadastro: time.Now(),
		CategoriaID:  categorias[0].CategoriaID,
	}
	if err := database.Create(&produto).Error; err != nil {
		log.Println("Failed to seed products:", err)
	}
}
