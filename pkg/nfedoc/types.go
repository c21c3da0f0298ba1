// Package nfedoc carrega documentos fiscais (NF-e) e extrai deles os
// códigos fiscais por item: código de barras, NCM, CEST, número de FCI
// e origem da mercadoria.
//
// O modelo é o de sequências paralelas: o i-ésimo cEAN do documento
// corresponde ao i-ésimo NCM/CEST/nFCI/orig. Esse alinhamento
// posicional é pré-condição do modelo e é validado no parse — um
// documento desalinhado é rejeitado, nunca lido parcialmente.
package nfedoc

import "fmt"

// Documento é um XML de NF-e já parseado: o nome do arquivo e as
// cinco sequências de tags, na ordem em que aparecem no documento.
type Documento struct {
	Nome    string
	EANs    []string
	NCMs    []string
	CESTs   []string
	FCIs    []string
	Origens []string
}

// Itens retorna a quantidade de itens (entradas de cEAN) do documento.
func (d *Documento) Itens() int {
	return len(d.EANs)
}

// CamposFiscais é o resultado da extração para um código de barras:
// os valores brutos (sem formatação) encontrados no primeiro
// documento que contém o código.
type CamposFiscais struct {
	// Encontrado indica se algum documento continha o código de barras.
	Encontrado bool

	// NCM, CEST e NFCI são os textos brutos das tags, no índice do
	// cEAN casado. Vazios quando a sequência não existe no documento.
	NCM  string
	CEST string
	NFCI string

	// Origem é o dígito de origem já remapeado (1→2, 6→7).
	Origem string

	// FCIExibicao é o número de FCI a exibir — preenchido apenas
	// quando a origem remapeada é "5" (Conteúdo de Importação).
	FCIExibicao string

	// Documento é o nome do documento onde o código foi encontrado,
	// ou DocumentoNaoEncontrado.
	Documento string
}

// ParseError descreve um documento malformado ou desalinhado,
// identificando o arquivo e sugerindo uma correção. Documentos com
// esse erro são excluídos da coleção da sessão.
type ParseError struct {
	Nome   string
	Motivo string
	Dica   string
}

func (e *ParseError) Error() string {
	if e.Dica != "" {
		return fmt.Sprintf("documento %q: %s (sugestão: %s)", e.Nome, e.Motivo, e.Dica)
	}
	return fmt.Sprintf("documento %q: %s", e.Nome, e.Motivo)
}
