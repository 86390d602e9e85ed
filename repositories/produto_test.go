package repositories

import (
	"errors"
	"testing"

	"apicatalogo/models"

	"gorm.io/gorm"
)

func TestProdutoRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewProdutoRepository(db)

	bebidas := criarCategoria(t, db, "Bebidas")
	criado := criarProduto(t, db, bebidas.CategoriaID, "Coca-cola Diet")
	if criado.ProdutoID == 0 {
		t.Fatal("expected an assigned id")
	}

	lido, err := repo.FindByID(criado.ProdutoID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if lido.Nome != criado.Nome || lido.Descricao != criado.Descricao ||
		lido.Preco != criado.Preco || lido.ImagemUrl != criado.ImagemUrl ||
		lido.Estoque != criado.Estoque || lido.CategoriaID != criado.CategoriaID {
		t.Fatalf("round trip mismatch: created %+v, read %+v", criado, lido)
	}
}

func TestProdutoUpdateIdempotente(t *testing.T) {
	db := setupDB(t)
	repo := NewProdutoRepository(db)

	bebidas := criarCategoria(t, db, "Bebidas")
	produto := criarProduto(t, db, bebidas.CategoriaID, "Coca-cola Diet")

	produto.Preco = 6.99
	produto.Estoque = 30

	// Replaying the same replace must leave the row unchanged
	for i := 0; i < 2; i++ {
		if err := repo.Update(produto); err != nil {
			t.Fatalf("Update failed on attempt %d: %v", i+1, err)
		}
	}

	lido, err := repo.FindByID(produto.ProdutoID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if lido.Preco != 6.99 || lido.Estoque != 30 {
		t.Fatalf("unexpected state after replay: %+v", lido)
	}

	var total int64
	db.Model(&models.Produto{}).Count(&total)
	if total != 1 {
		t.Fatalf("expected a single row, got %d", total)
	}
}

func TestProdutoDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewProdutoRepository(db)

	bebidas := criarCategoria(t, db, "Bebidas")
	produto := criarProduto(t, db, bebidas.CategoriaID, "Coca-cola Diet")

	removido, err := repo.Delete(produto.ProdutoID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removido.ProdutoID != produto.ProdutoID {
		t.Fatalf("unexpected removed product: %+v", removido)
	}

	if _, err := repo.FindByID(produto.ProdutoID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("product should be gone, got %v", err)
	}
}

func TestProdutoDeleteInexistente(t *testing.T) {
	db := setupDB(t)
	repo := NewProdutoRepository(db)

	if _, err := repo.Delete(9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
