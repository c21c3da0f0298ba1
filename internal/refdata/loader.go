package refdata

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ======================================================================
// CARREGADORES LOCAIS (JSON / CSV)
// ======================================================================
//
// Os três conjuntos de referência existem como assets JSON
// (exportardados.json, anvisa.json, tabelatipi.json). O catálogo de
// produtos também circula como CSV exportado do ERP, em Windows-1252.
// Qualquer falha de leitura ou decodificação é falha dura: a análise
// não roda com base parcial.

// CarregarProdutosJSON carrega o catálogo de produtos de um arquivo
// JSON com os campos Codigo, Descrição e Cód. Barras.
func CarregarProdutosJSON(caminho string) (Catalogo, error) {
	var catalogo Catalogo
	if err := carregarJSON(caminho, &catalogo); err != nil {
		return nil, fmt.Errorf("falha ao carregar catálogo de produtos: %w", err)
	}
	return catalogo, nil
}

// CarregarAnvisaJSON carrega o registro ANVISA/CMED de um arquivo JSON.
func CarregarAnvisaJSON(caminho string) (RegistroAnvisa, error) {
	var registro RegistroAnvisa
	if err := carregarJSON(caminho, &registro); err != nil {
		return nil, fmt.Errorf("falha ao carregar registro ANVISA: %w", err)
	}
	return registro, nil
}

// CarregarIpiJSON carrega a tabela TIPI de um arquivo JSON com os
// campos NCM e ALÍQUOTA (%).
func CarregarIpiJSON(caminho string) (TabelaIpi, error) {
	var tabela TabelaIpi
	if err := carregarJSON(caminho, &tabela); err != nil {
		return nil, fmt.Errorf("falha ao carregar tabela TIPI: %w", err)
	}
	return tabela, nil
}

func carregarJSON(caminho string, destino any) error {
	dados, err := os.ReadFile(caminho)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo '%s': %w", caminho, err)
	}
	if err := json.Unmarshal(dados, destino); err != nil {
		return fmt.Errorf("erro ao interpretar '%s': %w", caminho, err)
	}
	return nil
}

// CarregarProdutosCSV carrega o catálogo de um CSV exportado do ERP:
// separador ponto e vírgula, codificação Windows-1252, primeira linha
// de cabeçalho com as colunas Codigo, Descrição e Cód. Barras.
func CarregarProdutosCSV(caminho string) (Catalogo, error) {
	arquivo, err := os.Open(caminho)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir CSV '%s': %w", caminho, err)
	}
	defer arquivo.Close()

	// Decodifica Windows-1252 para UTF-8 antes do parse.
	leitor := csv.NewReader(transform.NewReader(arquivo, charmap.Windows1252.NewDecoder()))
	leitor.Comma = ';'
	leitor.FieldsPerRecord = -1

	cabecalho, err := leitor.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho do CSV '%s': %w", caminho, err)
	}

	colunas := indiceColunas(cabecalho)
	idxCodigo, okCodigo := colunas["Codigo"]
	idxDescricao, okDescricao := colunas["Descrição"]
	idxBarras, okBarras := colunas["Cód. Barras"]
	if !okCodigo || !okDescricao || !okBarras {
		return nil, fmt.Errorf("CSV '%s' sem as colunas esperadas (Codigo, Descrição, Cód. Barras)", caminho)
	}

	var catalogo Catalogo
	for {
		registro, err := leitor.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do CSV '%s': %w", caminho, err)
		}
		catalogo = append(catalogo, Produto{
			Codigo:       campo(registro, idxCodigo),
			Descricao:    campo(registro, idxDescricao),
			CodigoBarras: campo(registro, idxBarras),
		})
	}

	return catalogo, nil
}

func indiceColunas(cabecalho []string) map[string]int {
	colunas := make(map[string]int, len(cabecalho))
	for i, nome := range cabecalho {
		colunas[strings.TrimSpace(nome)] = i
	}
	return colunas
}

func campo(registro []string, i int) string {
	if i < len(registro) {
		return strings.TrimSpace(registro[i])
	}
	return ""
}
