package validations

import (
	"strings"
	"testing"

	"apicatalogo/models"
)

func produtoValido() *models.Produto {
	return &models.Produto{
		Nome:        "Coca-Cola",
		Descricao:   "Refrigerante de cola 350 ml",
		Preco:       5.45,
		ImagemUrl:   "cocacola.jpg",
		Estoque:     50,
		CategoriaID: 1,
	}
}

func violacoesDoCampo(erros []ErroValidacao, campo string) []ErroValidacao {
	var filtradas []ErroValidacao
	for _, e := range erros {
		if e.Campo == campo {
			filtradas = append(filtradas, e)
		}
	}
	return filtradas
}

func TestProdutoValidoSemViolacoes(t *testing.T) {
	if erros := ValidarProduto(produtoValido()); len(erros) != 0 {
		t.Fatalf("expected no violations, got %v", erros)
	}
}

func TestNomeTamanho(t *testing.T) {
	testes := []struct {
		nome    string
		violado bool
	}{
		{"Coca", true},
		{"Cocas", false},
		{"Coca-Cola", false},
		{"Refrigerante15c", false},
		{"Refrigerante16ch", true},
		{strings.Repeat("A", 30), true},
	}

	for _, tt := range testes {
		p := produtoValido()
		p.Nome = tt.nome
		erros := ValidarProduto(p)
		violado := false
		for _, e := range violacoesDoCampo(erros, "Nome") {
			if e.Mensagem == "O nome deve ter entre 5 e 15 caracteres" {
				violado = true
			}
		}
		if violado != tt.violado {
			t.Errorf("nome %q: length violation = %v, want %v", tt.nome, violado, tt.violado)
		}
	}
}

func TestPrimeiraLetraMaiuscula(t *testing.T) {
	p := produtoValido()
	p.Nome = "coca-cola"
	erros := violacoesDoCampo(ValidarProduto(p), "Nome")
	if len(erros) != 1 || erros[0].Mensagem != "A primeira letra do nome deve ser maiúscula" {
		t.Fatalf("expected exactly one casing violation, got %v", erros)
	}

	p.Nome = "Coca-cola"
	if erros := violacoesDoCampo(ValidarProduto(p), "Nome"); len(erros) != 0 {
		t.Fatalf("uppercase first letter should pass, got %v", erros)
	}
}

func TestNomeVazioNaoDisparaRegraDeMaiuscula(t *testing.T) {
	p := produtoValido()
	p.Nome = ""
	erros := violacoesDoCampo(ValidarProduto(p), "Nome")
	if len(erros) != 1 || erros[0].Mensagem != "O nome é obrigatório" {
		t.Fatalf("empty name should only violate presence, got %v", erros)
	}
}

func TestDescricao(t *testing.T) {
	p := produtoValido()
	p.Descricao = ""
	if erros := violacoesDoCampo(ValidarProduto(p), "Descricao"); len(erros) != 1 {
		t.Fatalf("expected presence violation, got %v", erros)
	}

	anterior := DescricaoMax
	DescricaoMax = 10
	defer func() { DescricaoMax = anterior }()

	p.Descricao = "mais de dez caracteres"
	if erros := violacoesDoCampo(ValidarProduto(p), "Descricao"); len(erros) != 1 {
		t.Fatalf("expected length violation with lowered bound, got %v", erros)
	}

	p.Descricao = "dez chars."
	if erros := violacoesDoCampo(ValidarProduto(p), "Descricao"); len(erros) != 0 {
		t.Fatalf("description at the bound should pass, got %v", erros)
	}
}

func TestPrecoFaixa(t *testing.T) {
	testes := []struct {
		preco   float64
		violado bool
	}{
		{0, true},
		{0.99, true},
		{1, false},
		{5.45, false},
		{10000, false},
		{10000.01, true},
	}

	for _, tt := range testes {
		p := produtoValido()
		p.Preco = tt.preco
		violado := len(violacoesDoCampo(ValidarProduto(p), "Preco")) > 0
		if violado != tt.violado {
			t.Errorf("preco %v: violation = %v, want %v", tt.preco, violado, tt.violado)
		}
	}
}

func TestImagemUrl(t *testing.T) {
	p := produtoValido()
	p.ImagemUrl = ""
	if erros := violacoesDoCampo(ValidarProduto(p), "ImagemUrl"); len(erros) != 1 {
		t.Fatalf("expected presence violation, got %v", erros)
	}

	p.ImagemUrl = strings.Repeat("a", 301)
	if erros := violacoesDoCampo(ValidarProduto(p), "ImagemUrl"); len(erros) != 1 {
		t.Fatalf("expected length violation, got %v", erros)
	}

	p.ImagemUrl = strings.Repeat("a", 300)
	if erros := violacoesDoCampo(ValidarProduto(p), "ImagemUrl"); len(erros) != 0 {
		t.Fatalf("image url at the bound should pass, got %v", erros)
	}
}

func TestValidarEstoque(t *testing.T) {
	testes := []struct {
		estoque float64
		violado bool
	}{
		{-1, true},
		{0, true},
		{0.5, false},
		{50, false},
	}

	for _, tt := range testes {
		p := produtoValido()
		p.Estoque = tt.estoque
		violado := ValidarEstoque(p) != nil
		if violado != tt.violado {
			t.Errorf("estoque %v: violation = %v, want %v", tt.estoque, violado, tt.violado)
		}
	}
}

func TestViolacoesSaoConcatenadas(t *testing.T) {
	erros := ValidarProduto(&models.Produto{})
	campos := map[string]bool{}
	for _, e := range erros {
		campos[e.Campo] = true
	}
	for _, campo := range []string{"Nome", "Descricao", "Preco", "ImagemUrl"} {
		if !campos[campo] {
			t.Errorf("expected a violation for %s, got %v", campo, erros)
		}
	}
}
