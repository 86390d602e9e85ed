package routes

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"apicatalogo/db"
	"apicatalogo/models"
	"apicatalogo/repositories"
	"apicatalogo/validations"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

var (
	categoriaRepo repositories.CategoriaRepository
	produtoRepo   repositories.ProdutoRepository
	uploadsDir    string
)

func SetupRoutes(app *fiber.App, uploads string) {
	categoriaRepo = repositories.NewCategoriaRepository(db.DB)
	produtoRepo = repositories.NewProdutoRepository(db.DB)
	uploadsDir = uploads

	// Image upload route
	app.Post("/upload", uploadImage)

	// Categoria routes
	categorias := app.Group("/categorias")
	categorias.Get("/", getAllCategorias)
	categorias.Get("/produtos", getCategoriasProdutos)
	categorias.Get("/:id", getCategoria)
	categorias.Post("/", createCategoria)
	categorias.Put("/:id", updateCategoria)
	categorias.Delete("/:id", deleteCategoria)

	// Produto routes
	produtos := app.Group("/produtos")
	produtos.Get("/", getAllProdutos)
	produtos.Get("/:id", getProduto)
	produtos.Post("/", createProduto)
	produtos.Put("/:id", updateProduto)
	produtos.Delete("/:id", deleteProduto)
}

// Image upload handler
func uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get uploaded file",
		})
	}

	// Generate unique filename
	ext := filepath.Ext(file.Filename)
	uniqueID := uuid.New().String()
	filename := uniqueID + ext
	destino := filepath.Join(uploadsDir, filename)

	// Save the file into the configured uploads directory
	if err := c.SaveFile(file, destino); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	// Return the file path that can be stored in the database
	return c.JSON(fiber.Map{
		"filename": filename,
		"path":     "/uploads/" + filename,
	})
}

// GetAllCategorias - GET /categorias
func getAllCategorias(c *fiber.Ctx) error {
	categorias, err := categoriaRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter categorias: %v", err),
		})
	}

	// An empty catalog is reported as not found, not as an empty list
	if len(categorias) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Nenhuma categoria encontrada.",
		})
	}

	return c.JSON(categorias)
}

// GetCategoriasProdutos - GET /categorias/produtos, eager-loads products
func getCategoriasProdutos(c *fiber.Ctx) error {
	categorias, err := categoriaRepo.FindAllComProdutos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter categorias: %v", err),
		})
	}

	if len(categorias) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Nenhuma categoria encontrada.",
		})
	}

	return c.JSON(categorias)
}

// GetCategoria - GET /categorias/:id
func getCategoria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido.",
		})
	}

	categoria, err := categoriaRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Categoria com ID %d não encontrada.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter categoria: %v", err),
		})
	}

	return c.JSON(categoria)
}

// CreateCategoria - POST /categorias
func createCategoria(c *fiber.Ctx) error {
	categoria := new(models.Categoria)
	if err := c.BodyParser(categoria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dados da categoria não fornecidos.",
		})
	}

	if err := validate.Struct(categoria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erros": errosCategoria(err),
		})
	}

	if err := categoriaRepo.Create(categoria); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao criar categoria: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// UpdateCategoria - PUT /categorias/:id, replaces the name only
func updateCategoria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido.",
		})
	}

	categoria := new(models.Categoria)
	if err := c.BodyParser(categoria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dados da categoria não fornecidos.",
		})
	}

	// Identity pre-check, before any store access
	if uint(id) != categoria.CategoriaID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "O ID da categoria não corresponde ao ID fornecido.",
		})
	}

	// Only the name is replaced, so only the name is validated
	if err := validate.StructPartial(categoria, "Nome"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erros": errosCategoria(err),
		})
	}

	atualizada, err := categoriaRepo.UpdateNome(uint(id), categoria.Nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Categoria com ID %d não encontrada.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao atualizar categoria: %v", err),
		})
	}

	return c.JSON(atualizada)
}

// DeleteCategoria - DELETE /categorias/:id, cascades to its products
func deleteCategoria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido.",
		})
	}

	categoria, err := categoriaRepo.DeleteEmCascata(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Categoria com ID %d não encontrada.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao remover categoria: %v", err),
		})
	}

	return c.JSON(categoria)
}

// GetAllProdutos - GET /produtos
func getAllProdutos(c *fiber.Ctx) error {
	produtos, err := produtoRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter produtos: %v", err),
		})
	}

	if len(produtos) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Nenhum produto encontrado.",
		})
	}

	return c.JSON(produtos)
}

// GetProduto - GET /produtos/:id
func getProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido.",
		})
	}

	produto, err := produtoRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Produto com ID %d não encontrado.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter produto: %v", err),
		})
	}

	return c.JSON(produto)
}

// CreateProduto - POST /produtos
func createProduto(c *fiber.Ctx) error {
	produto := new(models.Produto)
	if err := c.BodyParser(produto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Produto não inserido!",
		})
	}

	if erros := validarProduto(produto); len(erros) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erros": erros,
		})
	}

	// The referenced category must exist before anything is written
	if _, err := categoriaRepo.FindByID(produto.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Categoria com ID %d não encontrada.", produto.CategoriaID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter categoria: %v", err),
		})
	}

	if produto.DataCadastro.IsZero() {
		produto.DataCadastro = time.Now()
	}

	if err := produtoRepo.Create(produto); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao criar produto: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(produto)
}

// UpdateProduto - PUT /produtos/:id, full replacement of mutable fields
func updateProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido.",
		})
	}

	produto := new(models.Produto)
	if err := c.BodyParser(produto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dados do produto não fornecidos.",
		})
	}

	// Identity pre-check, before any store access
	if uint(id) != produto.ProdutoID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "O ID do produto não corresponde ao ID fornecido.",
		})
	}

	if erros := validarProduto(produto); len(erros) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erros": erros,
		})
	}

	existente, err := produtoRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Produto com ID %d não encontrado.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter produto: %v", err),
		})
	}

	// Updates resolve the category reference the same way creates do
	if _, err := categoriaRepo.FindByID(produto.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Categoria com ID %d não encontrada.", produto.CategoriaID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao obter categoria: %v", err),
		})
	}

	// The registration timestamp is not user-supplied after creation
	produto.DataCadastro = existente.DataCadastro

	if err := produtoRepo.Update(produto); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao atualizar produto: %v", err),
		})
	}

	return c.JSON(produto)
}

// DeleteProduto - DELETE /produtos/:id
func deleteProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido.",
		})
	}

	produto, err := produtoRepo.Delete(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Produto com ID %d não encontrado.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Erro ao remover produto: %v", err),
		})
	}

	return c.JSON(produto)
}

// validarProduto runs the field rules and the stock rule, concatenating all
// violations into a single list.
func validarProduto(produto *models.Produto) []validations.ErroValidacao {
	erros := validations.ValidarProduto(produto)
	if erro := validations.ValidarEstoque(produto); erro != nil {
		erros = append(erros, *erro)
	}
	return erros
}

// errosCategoria translates validator tag failures into the same
// (campo, mensagem) shape the product rules produce.
func errosCategoria(err error) []validations.ErroValidacao {
	var erros []validations.ErroValidacao
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []validations.ErroValidacao{{Campo: "", Mensagem: err.Error()}}
	}

	for _, fe := range validationErrors {
		var mensagem string
		switch fe.Tag() {
		case "required":
			mensagem = fmt.Sprintf("O campo %s é obrigatório", fe.Field())
		case "max":
			mensagem = fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
		default:
			mensagem = fmt.Sprintf("O campo %s é inválido", fe.Field())
		}
		erros = append(erros, validations.ErroValidacao{Campo: fe.Field(), Mensagem: mensagem})
	}
	return erros
}
