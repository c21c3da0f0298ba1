package nfedoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parser transforma bytes de XML em Documentos prontos para extração.
//
// O parse percorre os tokens do XML na ordem do documento e coleta o
// texto das tags cEAN, NCM, CEST, nFCI e orig — o equivalente a um
// getElementsByTagName por sequência. NF-e costuma vir em UTF-8, mas
// arquivos em ISO-8859-1/Windows-1252 também são aceitos.
//
// Com SchemaPath configurado, o XML é validado contra o XSD antes do
// parse (ver ValidarComXSD).
type Parser struct {
	// SchemaPath é o caminho opcional do XSD da NF-e.
	SchemaPath string
}

// Parse interpreta um documento e valida o alinhamento posicional das
// sequências. Erros retornados são sempre *ParseError.
func (p *Parser) Parse(nome string, dados []byte) (*Documento, error) {
	if p.SchemaPath != "" {
		if err := ValidarComXSD(dados, p.SchemaPath); err != nil {
			return nil, &ParseError{
				Nome:   nome,
				Motivo: fmt.Sprintf("XML inválido contra XSD: %v", err),
				Dica:   "verifique se o arquivo é uma NF-e no layout 4.00",
			}
		}
	}

	doc := &Documento{Nome: nome}

	dec := xml.NewDecoder(bytes.NewReader(dados))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{
				Nome:   nome,
				Motivo: fmt.Sprintf("XML malformado: %v", err),
				Dica:   "o arquivo pode estar corrompido ou não ser um XML válido",
			}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var destino *[]string
		switch se.Name.Local {
		case "cEAN":
			destino = &doc.EANs
		case "NCM":
			destino = &doc.NCMs
		case "CEST":
			destino = &doc.CESTs
		case "nFCI":
			destino = &doc.FCIs
		case "orig":
			destino = &doc.Origens
		default:
			continue
		}

		var texto string
		if err := dec.DecodeElement(&texto, &se); err != nil {
			return nil, &ParseError{
				Nome:   nome,
				Motivo: fmt.Sprintf("falha ao ler a tag <%s>: %v", se.Name.Local, err),
			}
		}
		*destino = append(*destino, strings.TrimSpace(texto))
	}

	if err := validarAlinhamento(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// ParseFile lê e interpreta um arquivo XML do disco.
func (p *Parser) ParseFile(caminho string) (*Documento, error) {
	dados, err := os.ReadFile(caminho)
	if err != nil {
		return nil, &ParseError{
			Nome:   filepath.Base(caminho),
			Motivo: fmt.Sprintf("erro ao ler arquivo: %v", err),
			Dica:   "verifique o caminho e as permissões do arquivo",
		}
	}
	return p.Parse(filepath.Base(caminho), dados)
}

// validarAlinhamento confere a pré-condição posicional do modelo:
// NCM e orig devem ter exatamente uma entrada por cEAN. CEST e nFCI
// são opcionais no layout da NF-e e podem estar ausentes por inteiro,
// mas quando presentes também precisam acompanhar a contagem.
func validarAlinhamento(doc *Documento) error {
	n := len(doc.EANs)

	if len(doc.NCMs) != n || len(doc.Origens) != n {
		return &ParseError{
			Nome: doc.Nome,
			Motivo: fmt.Sprintf("sequências desalinhadas: %d cEAN, %d NCM, %d orig",
				n, len(doc.NCMs), len(doc.Origens)),
			Dica: "cada item da nota deve trazer NCM e origem",
		}
	}
	if len(doc.CESTs) != 0 && len(doc.CESTs) != n {
		return &ParseError{
			Nome:   doc.Nome,
			Motivo: fmt.Sprintf("sequências desalinhadas: %d cEAN, %d CEST", n, len(doc.CESTs)),
			Dica:   "informe o CEST em todos os itens ou em nenhum",
		}
	}
	if len(doc.FCIs) != 0 && len(doc.FCIs) != n {
		return &ParseError{
			Nome:   doc.Nome,
			Motivo: fmt.Sprintf("sequências desalinhadas: %d cEAN, %d nFCI", n, len(doc.FCIs)),
			Dica:   "informe o nFCI em todos os itens ou em nenhum",
		}
	}
	return nil
}
