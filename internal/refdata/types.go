// Package refdata define as visões tipadas e somente leitura sobre os
// três conjuntos de dados de referência da análise: o catálogo de
// produtos, o registro ANVISA/CMED e a tabela TIPI. As coleções são
// carregadas uma vez por sessão e nunca mutadas depois disso.
package refdata

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Produto é uma entrada do catálogo, indexada pelo código interno.
// As tags JSON seguem os nomes de campo do arquivo exportado.
type Produto struct {
	Codigo       string `json:"Codigo"`
	Descricao    string `json:"Descrição"`
	CodigoBarras string `json:"Cód. Barras"`
}

// ChavePrecoFabrica é o nome da coluna do preço fábrica monitorado
// nos assets (JSON e planilha).
const ChavePrecoFabrica = "PF 20,5 %"

// EntradaAnvisa é uma linha do registro ANVISA/CMED: até três EANs,
// o tipo do produto, a lista de concessão de crédito de PIS/COFINS e
// o preço fábrica monitorado (PF 20,5%), mantido como string por ser
// dado de exibição.
type EntradaAnvisa struct {
	EAN1         string `json:"EAN 1"`
	EAN2         string `json:"EAN 2"`
	EAN3         string `json:"EAN 3"`
	TipoProduto  string `json:"TIPO DE PRODUTO (STATUS DO PRODUTO)"`
	ListaCredito string `json:"LISTA DE CONCESSÃO DE CRÉDITO TRIBUTÁRIO (PIS/COFINS)"`
	PrecoFabrica string `json:"-"`
}

// UnmarshalJSON lê a entrada do asset. A chave do preço fábrica contém
// vírgula, que em uma tag json seria o separador de opções; por isso o
// campo é lido explicitamente pelo nome completo da chave.
func (e *EntradaAnvisa) UnmarshalJSON(dados []byte) error {
	type semMetodos EntradaAnvisa
	var entrada semMetodos
	if err := json.Unmarshal(dados, &entrada); err != nil {
		return err
	}

	var campos map[string]json.RawMessage
	if err := json.Unmarshal(dados, &campos); err != nil {
		return err
	}
	if bruto, ok := campos[ChavePrecoFabrica]; ok {
		if err := json.Unmarshal(bruto, &entrada.PrecoFabrica); err != nil {
			return err
		}
	}

	*e = EntradaAnvisa(entrada)
	return nil
}

// EntradaIpi é uma linha da tabela TIPI: um NCM de 4, 6 ou 8 dígitos
// e a alíquota percentual correspondente.
type EntradaIpi struct {
	NCM      string          `json:"NCM"`
	Aliquota decimal.Decimal `json:"ALÍQUOTA (%)"`
}

// Catalogo é a coleção de produtos.
type Catalogo []Produto

// PorCodigo localiza o produto pelo código interno. Retorna nil
// quando não cadastrado.
func (c Catalogo) PorCodigo(codigo string) *Produto {
	for i := range c {
		if c[i].Codigo == codigo {
			return &c[i]
		}
	}
	return nil
}

// RegistroAnvisa é a coleção de entradas do registro ANVISA/CMED.
type RegistroAnvisa []EntradaAnvisa

// PorCodigoBarras localiza a entrada cujo EAN 1, 2 ou 3 é igual ao
// código de barras informado. Retorna nil quando não cadastrado.
func (r RegistroAnvisa) PorCodigoBarras(ean string) *EntradaAnvisa {
	if strings.TrimSpace(ean) == "" {
		return nil
	}
	for i := range r {
		if r[i].EAN1 == ean || r[i].EAN2 == ean || r[i].EAN3 == ean {
			return &r[i]
		}
	}
	return nil
}

// TabelaIpi é a tabela TIPI carregada.
type TabelaIpi []EntradaIpi

// PorNCM localiza a linha cujo NCM é exatamente igual ao informado
// (a busca por prefixo decrescente fica no motor de regras). Retorna
// nil quando não há linha.
func (t TabelaIpi) PorNCM(ncm string) *EntradaIpi {
	for i := range t {
		if t[i].NCM == ncm {
			return &t[i]
		}
	}
	return nil
}

// Base agrupa os três conjuntos de referência de uma sessão.
type Base struct {
	Produtos Catalogo
	Anvisa   RegistroAnvisa
	Ipi      TabelaIpi
}
