package validations

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"apicatalogo/models"
)

// ErroValidacao carries the offending field and a human-readable message.
type ErroValidacao struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// DescricaoMax bounds the Descricao field. The two source variants disagreed
// (10 vs 300); it is configurable until the product owner confirms one.
var DescricaoMax = 300

// RegraProduto checks a single rule against a candidate Produto and returns
// nil when the rule holds.
type RegraProduto func(p *models.Produto) *ErroValidacao

var regrasProduto = []RegraProduto{
	nomeObrigatorio,
	nomeTamanho,
	primeiraLetraMaiuscula,
	descricaoObrigatoria,
	descricaoTamanho,
	precoFaixa,
	imagemObrigatoria,
	imagemTamanho,
}

// ValidarProduto runs every field rule against the candidate and concatenates
// the violations. Rules never short-circuit each other.
func ValidarProduto(p *models.Produto) []ErroValidacao {
	var erros []ErroValidacao
	for _, regra := range regrasProduto {
		if erro := regra(p); erro != nil {
			erros = append(erros, *erro)
		}
	}
	return erros
}

// ValidarEstoque is the cross-field check: stock must be strictly positive.
func ValidarEstoque(p *models.Produto) *ErroValidacao {
	if p.Estoque <= 0 {
		return &ErroValidacao{Campo: "Estoque", Mensagem: "O estoque deve ser maior que zero"}
	}
	return nil
}

func nomeObrigatorio(p *models.Produto) *ErroValidacao {
	if p.Nome == "" {
		return &ErroValidacao{Campo: "Nome", Mensagem: "O nome é obrigatório"}
	}
	return nil
}

func nomeTamanho(p *models.Produto) *ErroValidacao {
	if p.Nome == "" {
		return nil
	}
	if n := utf8.RuneCountInString(p.Nome); n < 5 || n > 15 {
		return &ErroValidacao{Campo: "Nome", Mensagem: "O nome deve ter entre 5 e 15 caracteres"}
	}
	return nil
}

// An empty name is vacuously valid here; presence is nomeObrigatorio's job.
func primeiraLetraMaiuscula(p *models.Produto) *ErroValidacao {
	if p.Nome == "" {
		return nil
	}
	primeira, _ := utf8.DecodeRuneInString(p.Nome)
	if primeira != unicode.ToUpper(primeira) {
		return &ErroValidacao{Campo: "Nome", Mensagem: "A primeira letra do nome deve ser maiúscula"}
	}
	return nil
}

func descricaoObrigatoria(p *models.Produto) *ErroValidacao {
	if p.Descricao == "" {
		return &ErroValidacao{Campo: "Descricao", Mensagem: "A descrição é obrigatória"}
	}
	return nil
}

func descricaoTamanho(p *models.Produto) *ErroValidacao {
	if p.Descricao != "" && utf8.RuneCountInString(p.Descricao) > DescricaoMax {
		return &ErroValidacao{
			Campo:    "Descricao",
			Mensagem: fmt.Sprintf("A descrição deve ter no máximo %d caracteres", DescricaoMax),
		}
	}
	return nil
}

func precoFaixa(p *models.Produto) *ErroValidacao {
	if p.Preco < 1 || p.Preco > 10000 {
		return &ErroValidacao{Campo: "Preco", Mensagem: "O preço deve estar entre 1 e 10000"}
	}
	return nil
}

func imagemObrigatoria(p *models.Produto) *ErroValidacao {
	if p.ImagemUrl == "" {
		return &ErroValidacao{Campo: "ImagemUrl", Mensagem: "A imagem é obrigatória"}
	}
	return nil
}

func imagemTamanho(p *models.Produto) *ErroValidacao {
	if utf8.RuneCountInString(p.ImagemUrl) > 300 {
		return &ErroValidacao{Campo: "ImagemUrl", Mensagem: "A imagem deve ter no máximo 300 caracteres"}
	}
	return nil
}
