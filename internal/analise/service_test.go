package analise_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/SrGrandi/analise-item/internal/analise"
	"github.com/SrGrandi/analise-item/internal/fiscal"
	"github.com/SrGrandi/analise-item/internal/refdata"
	"github.com/SrGrandi/analise-item/pkg/nfedoc"
)

func servicoTeste(t *testing.T) *analise.Service {
	t.Helper()

	base := &refdata.Base{
		Produtos: refdata.Catalogo{
			{Codigo: "1", Descricao: "DIPIRONA 500MG", CodigoBarras: "7891000100103"},
			{Codigo: "2", Descricao: "FRALDA G", CodigoBarras: "7891000200209"},
			{Codigo: "3", Descricao: "PRODUTO SEM XML", CodigoBarras: "7891000999999"},
		},
		Anvisa: refdata.RegistroAnvisa{
			{EAN1: "7891000100103", TipoProduto: "Genérico", ListaCredito: "Positiva", PrecoFabrica: "10,50"},
		},
		Ipi: refdata.TabelaIpi{
			{NCM: "9619", Aliquota: decimal.NewFromFloat(5)},
		},
	}

	docs := nfedoc.NewStore()
	docs.Substituir([]*nfedoc.Documento{
		{
			Nome:    "nota.xml",
			EANs:    []string{"7891000100103", "7891000200209"},
			NCMs:    []string{"30041000", "96190000"},
			CESTs:   []string{"1300200", "2004800"},
			Origens: []string{"0", "1"},
		},
	})

	return analise.NewService(zerolog.New(io.Discard), base, docs)
}

func TestAnalisarMedicamento(t *testing.T) {
	servico := servicoTeste(t)

	perfil, err := servico.Analisar(analise.Item{Codigo: "1"})
	if err != nil {
		t.Fatal(err)
	}

	if perfil.Descricao != "DIPIRONA 500MG" {
		t.Errorf("Descricao = %q", perfil.Descricao)
	}
	if perfil.NCM != "3004.10.00" || perfil.CEST != "13.002.00" {
		t.Errorf("NCM = %q, CEST = %q", perfil.NCM, perfil.CEST)
	}
	if !perfil.SubstituicaoTributaria || perfil.DebitoCredito != "NÃO" {
		t.Errorf("ST = %v, D&C = %q", perfil.SubstituicaoTributaria, perfil.DebitoCredito)
	}
	if perfil.PisCofins != "NÃO" {
		t.Errorf("PisCofins = %q", perfil.PisCofins)
	}
	if perfil.IPI != "NÃO" {
		t.Errorf("IPI = %q", perfil.IPI)
	}
	if perfil.CST != "060" {
		t.Errorf("CST = %q", perfil.CST)
	}
	if perfil.Lista != fiscal.ListaPositiva {
		t.Errorf("Lista = %q", perfil.Lista)
	}
	if perfil.Classificacao != "F7 - Genérico Pos/Nac" {
		t.Errorf("Classificacao = %q", perfil.Classificacao)
	}
	if perfil.PrecoMonitorado != "R$: 10,50" {
		t.Errorf("PrecoMonitorado = %q", perfil.PrecoMonitorado)
	}
	if perfil.XMLEncontrado != "nota.xml" {
		t.Errorf("XMLEncontrado = %q", perfil.XMLEncontrado)
	}
	if perfil.AlertaCest != "" {
		t.Errorf("AlertaCest = %q, CEST de genérico positiva é compatível", perfil.AlertaCest)
	}
}

func TestAnalisarFraldaImportada(t *testing.T) {
	servico := servicoTeste(t)

	perfil, err := servico.Analisar(analise.Item{Codigo: "2"})
	if err != nil {
		t.Fatal(err)
	}

	// Origem 1 (importação direta) é tratada como 2 em todo o laudo.
	if !strings.HasPrefix(perfil.Origem, "2 - Estrangeira") {
		t.Errorf("Origem = %q", perfil.Origem)
	}
	if perfil.CST != "200" {
		t.Errorf("CST = %q", perfil.CST)
	}
	if perfil.SubstituicaoTributaria || perfil.DebitoCredito != "SIM" {
		t.Errorf("ST = %v, D&C = %q", perfil.SubstituicaoTributaria, perfil.DebitoCredito)
	}
	if perfil.IPI != "SIM (5%)" {
		t.Errorf("IPI = %q", perfil.IPI)
	}
	if perfil.Classificacao != "D4 - Fraldas Imp" {
		t.Errorf("Classificacao = %q", perfil.Classificacao)
	}
	if perfil.PrecoMonitorado != analise.PrecoNaoCadastrado {
		t.Errorf("PrecoMonitorado = %q", perfil.PrecoMonitorado)
	}
}

func TestAnalisarProdutoForaDosXMLs(t *testing.T) {
	servico := servicoTeste(t)

	perfil, err := servico.Analisar(analise.Item{Codigo: "3"})
	if err != nil {
		t.Fatal(err)
	}

	if perfil.NCM != fiscal.NCMNaoEncontrado || perfil.CEST != fiscal.CESTNaoEncontrado {
		t.Errorf("NCM = %q, CEST = %q", perfil.NCM, perfil.CEST)
	}
	if perfil.XMLEncontrado != nfedoc.DocumentoNaoEncontrado {
		t.Errorf("XMLEncontrado = %q", perfil.XMLEncontrado)
	}
	if perfil.PisCofins != analise.PisCofinsNaoCadastrado || !perfil.PisCofinsDestaque {
		t.Errorf("PisCofins = %q (destaque %v)", perfil.PisCofins, perfil.PisCofinsDestaque)
	}
	// Sem XML a origem padrão é 0 e nada tem ST: tributação normal.
	if perfil.CST != "000" || perfil.DebitoCredito != "SIM" {
		t.Errorf("CST = %q, D&C = %q", perfil.CST, perfil.DebitoCredito)
	}
	if perfil.Classificacao != "D1 - Deb/Cred Nac" {
		t.Errorf("Classificacao = %q", perfil.Classificacao)
	}
}

func TestAnalisarCodigoDesconhecido(t *testing.T) {
	servico := servicoTeste(t)

	perfil, err := servico.Analisar(analise.Item{Codigo: "777"})
	if err != nil {
		t.Fatal(err)
	}
	if perfil.Descricao != analise.DescricaoNaoEncontrada {
		t.Errorf("Descricao = %q", perfil.Descricao)
	}
}

func TestAnalisarComConvenio(t *testing.T) {
	servico := servicoTeste(t)

	perfil, err := servico.Analisar(analise.Item{Codigo: "1", Convenio: fiscal.Convenio8702})
	if err != nil {
		t.Fatal(err)
	}
	if perfil.CST != "040" {
		t.Errorf("CST = %q, convênio leva a isenção", perfil.CST)
	}
	if perfil.Convenio != "SIM - "+fiscal.Convenio8702 {
		t.Errorf("Convenio = %q", perfil.Convenio)
	}
	if perfil.Classificacao != "A5 - Convênio 87 - Gen/Nac/Pos" {
		t.Errorf("Classificacao = %q", perfil.Classificacao)
	}
}

func TestNormalizacaoDoCodigo(t *testing.T) {
	servico := servicoTeste(t)

	// "007" localiza o produto 7... que não existe; mas "01" deve
	// localizar o produto 1 normalmente.
	perfil, err := servico.Analisar(analise.Item{Codigo: " 01 "})
	if err != nil {
		t.Fatal(err)
	}
	if perfil.Codigo != "1" || perfil.Descricao != "DIPIRONA 500MG" {
		t.Errorf("Codigo = %q, Descricao = %q", perfil.Codigo, perfil.Descricao)
	}
}

func TestAnalisarLoteIsolaFalhas(t *testing.T) {
	servico := servicoTeste(t)

	resultados := servico.AnalisarLote([]analise.Item{
		{Codigo: "1"},
		{Codigo: "abc"},
		{Codigo: "2"},
	})

	if len(resultados) != 3 {
		t.Fatalf("len = %d", len(resultados))
	}
	if resultados[0].Err != nil || resultados[0].Perfil == nil {
		t.Errorf("item 1 deveria ter sucesso: %v", resultados[0].Err)
	}

	var invalido *analise.CodigoInvalidoError
	if !errors.As(resultados[1].Err, &invalido) {
		t.Errorf("item 2 deveria falhar com CodigoInvalidoError, veio %v", resultados[1].Err)
	}
	if resultados[1].Perfil != nil {
		t.Error("item com erro não deveria ter perfil")
	}

	if resultados[2].Err != nil || resultados[2].Perfil == nil {
		t.Errorf("item 3 deveria ter sucesso: %v", resultados[2].Err)
	}
	if resultados[2].Indice != 2 {
		t.Errorf("Indice = %d, esperado 2", resultados[2].Indice)
	}
}

func TestFormatarTexto(t *testing.T) {
	servico := servicoTeste(t)

	perfil, err := servico.Analisar(analise.Item{Codigo: "1"})
	if err != nil {
		t.Fatal(err)
	}

	texto := perfil.FormatarTexto()
	esperados := []string{
		"Código: 1",
		"Desc. Item: DIPIRONA 500MG",
		"NCM: 3004.10.00",
		"CEST: 13.002.00",
		"Substituição Tributária: SIM",
		"Débito e Crédito: NÃO",
		"CST: 060",
		"Preço (Monitorado - PF 20,5%): R$: 10,50",
		"Lista: POSITIVA",
		"XML Encontrado: nota.xml",
	}
	for _, linha := range esperados {
		if !strings.Contains(texto, linha+"\n") {
			t.Errorf("texto sem a linha %q:\n%s", linha, texto)
		}
	}
}

func TestFormatarLote(t *testing.T) {
	servico := servicoTeste(t)

	resultados := servico.AnalisarLote([]analise.Item{{Codigo: "1"}, {Codigo: "x"}})
	texto := analise.FormatarLote(resultados)

	if !strings.Contains(texto, "Código: 1") {
		t.Errorf("lote sem o item 1:\n%s", texto)
	}
	// Item com erro não produz bloco.
	if strings.Count(texto, "Código: ") != 1 {
		t.Errorf("esperava um único bloco:\n%s", texto)
	}
}
