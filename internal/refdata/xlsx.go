package refdata

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ======================================================================
// CARREGADORES XLSX
// ======================================================================
//
// A CMED publica a tabela de preços/registro como planilha, e a TIPI
// também circula em XLSX. Os carregadores leem a primeira aba e mapeiam
// as colunas pelo cabeçalho, na mesma convenção de nomes dos assets
// JSON.

// CarregarAnvisaXLSX carrega o registro ANVISA/CMED de uma planilha.
// Colunas esperadas: EAN 1, EAN 2, EAN 3, TIPO DE PRODUTO (STATUS DO
// PRODUTO), LISTA DE CONCESSÃO DE CRÉDITO TRIBUTÁRIO (PIS/COFINS) e
// PF 20,5 %.
func CarregarAnvisaXLSX(caminho string) (RegistroAnvisa, error) {
	linhas, err := lerPrimeiraAba(caminho)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar registro ANVISA: %w", err)
	}
	if len(linhas) == 0 {
		return nil, fmt.Errorf("planilha ANVISA '%s' vazia", caminho)
	}

	colunas := indiceColunas(linhas[0])
	var registro RegistroAnvisa
	for _, linha := range linhas[1:] {
		entrada := EntradaAnvisa{
			EAN1:         celula(linha, colunas, "EAN 1"),
			EAN2:         celula(linha, colunas, "EAN 2"),
			EAN3:         celula(linha, colunas, "EAN 3"),
			TipoProduto:  celula(linha, colunas, "TIPO DE PRODUTO (STATUS DO PRODUTO)"),
			ListaCredito: celula(linha, colunas, "LISTA DE CONCESSÃO DE CRÉDITO TRIBUTÁRIO (PIS/COFINS)"),
			PrecoFabrica: celula(linha, colunas, ChavePrecoFabrica),
		}
		if entrada.EAN1 == "" && entrada.EAN2 == "" && entrada.EAN3 == "" {
			continue
		}
		registro = append(registro, entrada)
	}

	return registro, nil
}

// CarregarIpiXLSX carrega a tabela TIPI de uma planilha com as
// colunas NCM e ALÍQUOTA (%). Alíquotas usam vírgula decimal; "NT"
// (não tributado) vira zero.
func CarregarIpiXLSX(caminho string) (TabelaIpi, error) {
	linhas, err := lerPrimeiraAba(caminho)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar tabela TIPI: %w", err)
	}
	if len(linhas) == 0 {
		return nil, fmt.Errorf("planilha TIPI '%s' vazia", caminho)
	}

	colunas := indiceColunas(linhas[0])
	var tabela TabelaIpi
	for i, linha := range linhas[1:] {
		ncm := celula(linha, colunas, "NCM")
		if ncm == "" {
			continue
		}
		aliquota, err := interpretarAliquota(celula(linha, colunas, "ALÍQUOTA (%)"))
		if err != nil {
			return nil, fmt.Errorf("linha %d da TIPI '%s': %w", i+2, caminho, err)
		}
		tabela = append(tabela, EntradaIpi{NCM: ncm, Aliquota: aliquota})
	}

	return tabela, nil
}

func lerPrimeiraAba(caminho string) ([][]string, error) {
	arquivo, err := excelize.OpenFile(caminho)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha '%s': %w", caminho, err)
	}
	defer arquivo.Close()

	aba := arquivo.GetSheetName(0)
	linhas, err := arquivo.GetRows(aba)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba '%s' de '%s': %w", aba, caminho, err)
	}
	return linhas, nil
}

func celula(linha []string, colunas map[string]int, nome string) string {
	i, ok := colunas[nome]
	if !ok || i >= len(linha) {
		return ""
	}
	return strings.TrimSpace(linha[i])
}

func interpretarAliquota(texto string) (decimal.Decimal, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" || strings.EqualFold(texto, "NT") {
		return decimal.Zero, nil
	}
	texto = strings.ReplaceAll(texto, ",", ".")
	aliquota, err := decimal.NewFromString(texto)
	if err != nil {
		return decimal.Zero, fmt.Errorf("alíquota inválida %q: %w", texto, err)
	}
	return aliquota, nil
}
