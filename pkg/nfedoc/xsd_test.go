package nfedoc_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SrGrandi/analise-item/pkg/nfedoc"
)

const schemaNota = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="nfe">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="cEAN" type="xs:string"/>
        <xs:element name="NCM" type="xs:string"/>
        <xs:element name="orig" type="xs:string"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func escreverSchema(t *testing.T) string {
	t.Helper()
	caminho := filepath.Join(t.TempDir(), "nota.xsd")
	if err := os.WriteFile(caminho, []byte(schemaNota), 0o644); err != nil {
		t.Fatal(err)
	}
	return caminho
}

func TestParseComSchema(t *testing.T) {
	parser := &nfedoc.Parser{SchemaPath: escreverSchema(t)}

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<nfe><cEAN>7891000100103</cEAN><NCM>30041000</NCM><orig>0</orig></nfe>`

	doc, err := parser.Parse("nota.xml", []byte(xml))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Itens() != 1 || doc.NCMs[0] != "30041000" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestParseComSchemaRejeitaInvalido(t *testing.T) {
	parser := &nfedoc.Parser{SchemaPath: escreverSchema(t)}

	// Bem formado, mas fora do schema: falta NCM e orig.
	_, err := parser.Parse("ruim.xml", []byte(`<nfe><cEAN>111</cEAN></nfe>`))

	var parseErr *nfedoc.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("esperava *ParseError, veio %v", err)
	}
	if !strings.Contains(parseErr.Motivo, "XSD") {
		t.Errorf("Motivo = %q, esperava rejeição pelo XSD", parseErr.Motivo)
	}
}

func TestValidarComXSDSchemaAusente(t *testing.T) {
	caminho := filepath.Join(t.TempDir(), "nao-existe.xsd")
	if err := nfedoc.ValidarComXSD([]byte("<nfe/>"), caminho); err == nil {
		t.Error("esperava erro com schema ausente")
	}
}
