package nfedoc

import "strings"

// DocumentoNaoEncontrado é o valor do campo Documento quando nenhum
// XML da sessão contém o código de barras procurado.
const DocumentoNaoEncontrado = "Não encontrado em nenhum XML"

// AjustarOrigem aplica o remapeamento de origem da análise:
// importação direta (1) é tratada como estrangeira adquirida no
// mercado interno (2), e o par sem similar nacional segue a mesma
// lógica (6 → 7). Todo o cálculo a jusante — descrição, CST,
// classificação — enxerga apenas o código remapeado.
func AjustarOrigem(origem string) string {
	switch origem {
	case "1":
		return "2"
	case "6":
		return "7"
	}
	return origem
}

// Resolver localiza o código de barras nos documentos, na ordem de
// carregamento, e extrai os campos fiscais do primeiro item que casa.
//
// Dentro de um documento os cEAN são percorridos em ordem; no
// primeiro igual ao código procurado, NCM, CEST, nFCI e origem são
// lidos no mesmo índice das respectivas sequências (índice ausente em
// sequência opcional rende vazio). Documentos posteriores são
// ignorados mesmo que também contenham o código.
//
// Sem código de barras ou sem casamento, retorna os valores sentinela
// com Encontrado = false.
func Resolver(codigoBarras string, docs []*Documento) CamposFiscais {
	campos := CamposFiscais{
		Origem:    "0",
		Documento: DocumentoNaoEncontrado,
	}

	if strings.TrimSpace(codigoBarras) == "" {
		return campos
	}

	for _, doc := range docs {
		for i, ean := range doc.EANs {
			if ean != codigoBarras {
				continue
			}

			campos.Encontrado = true
			campos.Documento = doc.Nome
			campos.NCM = noIndice(doc.NCMs, i)
			campos.CEST = noIndice(doc.CESTs, i)
			campos.NFCI = noIndice(doc.FCIs, i)

			if origem := noIndice(doc.Origens, i); origem != "" {
				campos.Origem = AjustarOrigem(origem)
			}

			// FCI só é exibido para mercadoria com Conteúdo de
			// Importação (origem 5).
			if campos.Origem == "5" {
				campos.FCIExibicao = campos.NFCI
			}

			return campos
		}
	}

	return campos
}

func noIndice(seq []string, i int) string {
	if i < len(seq) {
		return seq[i]
	}
	return ""
}
