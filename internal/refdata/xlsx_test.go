package refdata_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/SrGrandi/analise-item/internal/refdata"
)

func escreverPlanilha(t *testing.T, nome string, linhas [][]any) string {
	t.Helper()

	arquivo := excelize.NewFile()
	defer arquivo.Close()

	aba := arquivo.GetSheetName(0)
	for i, linha := range linhas {
		celula, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := arquivo.SetSheetRow(aba, celula, &linha); err != nil {
			t.Fatal(err)
		}
	}

	caminho := filepath.Join(t.TempDir(), nome)
	if err := arquivo.SaveAs(caminho); err != nil {
		t.Fatal(err)
	}
	return caminho
}

func TestCarregarAnvisaXLSX(t *testing.T) {
	caminho := escreverPlanilha(t, "cmed.xlsx", [][]any{
		{"EAN 1", "EAN 2", "EAN 3", "TIPO DE PRODUTO (STATUS DO PRODUTO)",
			"LISTA DE CONCESSÃO DE CRÉDITO TRIBUTÁRIO (PIS/COFINS)", "PF 20,5 %"},
		{"7891000100103", "", "", "Genérico", "Positiva", "10,50"},
		{"", "", "", "", "", ""}, // linha sem EAN é descartada
		{"7891000200209", "", "", "Similar", "Negativa", "22,00"},
	})

	registro, err := refdata.CarregarAnvisaXLSX(caminho)
	if err != nil {
		t.Fatal(err)
	}
	if len(registro) != 2 {
		t.Fatalf("len = %d, esperado 2", len(registro))
	}

	entrada := registro.PorCodigoBarras("7891000200209")
	if entrada == nil || entrada.TipoProduto != "Similar" || entrada.ListaCredito != "Negativa" {
		t.Errorf("entrada = %+v", entrada)
	}
}

func TestCarregarIpiXLSX(t *testing.T) {
	caminho := escreverPlanilha(t, "tipi.xlsx", [][]any{
		{"NCM", "ALÍQUOTA (%)"},
		{"33069000", "9,75"},
		{"3004", "NT"},
		{"", "5"}, // linha sem NCM é descartada
	})

	tabela, err := refdata.CarregarIpiXLSX(caminho)
	if err != nil {
		t.Fatal(err)
	}
	if len(tabela) != 2 {
		t.Fatalf("len = %d, esperado 2", len(tabela))
	}

	if entrada := tabela.PorNCM("33069000"); entrada == nil || entrada.Aliquota.String() != "9.75" {
		t.Errorf("33069000 = %+v", entrada)
	}
	// "NT" (não tributado) vira alíquota zero.
	if entrada := tabela.PorNCM("3004"); entrada == nil || !entrada.Aliquota.IsZero() {
		t.Errorf("3004 = %+v", entrada)
	}
}

func TestCarregarIpiXLSXAliquotaInvalida(t *testing.T) {
	caminho := escreverPlanilha(t, "tipi.xlsx", [][]any{
		{"NCM", "ALÍQUOTA (%)"},
		{"33069000", "abc"},
	})

	if _, err := refdata.CarregarIpiXLSX(caminho); err == nil {
		t.Error("esperava erro de alíquota inválida")
	}
}
