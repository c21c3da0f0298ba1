package nfedoc_test

import (
	"testing"

	"github.com/SrGrandi/analise-item/pkg/nfedoc"
)

func docTeste(nome string, itens ...[5]string) *nfedoc.Documento {
	doc := &nfedoc.Documento{Nome: nome}
	for _, item := range itens {
		doc.EANs = append(doc.EANs, item[0])
		doc.NCMs = append(doc.NCMs, item[1])
		doc.CESTs = append(doc.CESTs, item[2])
		doc.FCIs = append(doc.FCIs, item[3])
		doc.Origens = append(doc.Origens, item[4])
	}
	return doc
}

func TestResolver(t *testing.T) {
	docs := []*nfedoc.Documento{
		docTeste("nota-a.xml",
			[5]string{"111", "30041000", "1300100", "", "0"},
			[5]string{"222", "96190000", "2004800", "", "1"},
		),
		docTeste("nota-b.xml",
			[5]string{"222", "99999999", "9999999", "", "0"},
			[5]string{"333", "30059090", "1301100", "fci-333", "5"},
		),
	}

	t.Run("extrai os campos do índice casado", func(t *testing.T) {
		campos := nfedoc.Resolver("111", docs)
		if !campos.Encontrado {
			t.Fatal("esperava Encontrado")
		}
		if campos.NCM != "30041000" || campos.CEST != "1300100" || campos.Origem != "0" {
			t.Errorf("campos = %+v", campos)
		}
		if campos.Documento != "nota-a.xml" {
			t.Errorf("Documento = %q", campos.Documento)
		}
	})

	t.Run("o primeiro documento vence", func(t *testing.T) {
		campos := nfedoc.Resolver("222", docs)
		if campos.Documento != "nota-a.xml" {
			t.Errorf("Documento = %q, esperado nota-a.xml", campos.Documento)
		}
		if campos.NCM != "96190000" {
			t.Errorf("NCM = %q, esperado o da nota-a", campos.NCM)
		}
	})

	t.Run("origem importação direta vira mercado interno", func(t *testing.T) {
		campos := nfedoc.Resolver("222", docs)
		if campos.Origem != "2" {
			t.Errorf("Origem = %q, esperado 2 (remapeada de 1)", campos.Origem)
		}
	})

	t.Run("FCI só aparece para origem 5", func(t *testing.T) {
		campos := nfedoc.Resolver("333", docs)
		if campos.Origem != "5" {
			t.Fatalf("Origem = %q", campos.Origem)
		}
		if campos.FCIExibicao != "fci-333" {
			t.Errorf("FCIExibicao = %q", campos.FCIExibicao)
		}

		outros := nfedoc.Resolver("111", docs)
		if outros.FCIExibicao != "" {
			t.Errorf("FCIExibicao = %q, esperado vazio fora da origem 5", outros.FCIExibicao)
		}
	})

	t.Run("código ausente em todos os documentos", func(t *testing.T) {
		campos := nfedoc.Resolver("999", docs)
		if campos.Encontrado {
			t.Error("não deveria encontrar")
		}
		if campos.Documento != nfedoc.DocumentoNaoEncontrado {
			t.Errorf("Documento = %q", campos.Documento)
		}
		if campos.Origem != "0" {
			t.Errorf("Origem padrão = %q, esperado 0", campos.Origem)
		}
	})

	t.Run("código de barras vazio nunca casa", func(t *testing.T) {
		if campos := nfedoc.Resolver("", docs); campos.Encontrado {
			t.Error("vazio não deveria casar")
		}
	})
}

func TestAjustarOrigem(t *testing.T) {
	casos := map[string]string{"0": "0", "1": "2", "2": "2", "5": "5", "6": "7", "7": "7", "8": "8"}
	for entrada, saida := range casos {
		if got := nfedoc.AjustarOrigem(entrada); got != saida {
			t.Errorf("AjustarOrigem(%q) = %q, esperado %q", entrada, got, saida)
		}
	}
}

func TestStoreSubstituir(t *testing.T) {
	store := nfedoc.NewStore()
	if store.Tamanho() != 0 {
		t.Fatalf("Tamanho inicial = %d", store.Tamanho())
	}

	primeiro := []*nfedoc.Documento{docTeste("a.xml"), docTeste("b.xml")}
	store.Substituir(primeiro)
	if store.Tamanho() != 2 {
		t.Fatalf("Tamanho = %d, esperado 2", store.Tamanho())
	}

	// O snapshot antigo sobrevive à substituição.
	snapshot := store.Documentos()
	store.Substituir([]*nfedoc.Documento{docTeste("c.xml")})

	if len(snapshot) != 2 || snapshot[0].Nome != "a.xml" {
		t.Errorf("snapshot alterado: %v", snapshot)
	}
	if store.Tamanho() != 1 || store.Documentos()[0].Nome != "c.xml" {
		t.Errorf("coleção atual inesperada")
	}
}
