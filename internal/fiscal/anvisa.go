package fiscal

import "strings"

// ======================================================================
// COMPATIBILIDADE CEST × REGISTRO ANVISA
// ======================================================================

// AlertaCestIncompativel é a mensagem emitida quando o CEST do item
// não é compatível com o tipo de produto e a lista de crédito do
// registro ANVISA.
const AlertaCestIncompativel = "⚠️ CEST incompatível com tipo/lista"

// RegraCest é a variante etiquetada de uma regra de compatibilidade:
// ou um conjunto explícito de CESTs formatados permitidos, ou um
// padrão de sufixo (os dois últimos dígitos do CEST).
type RegraCest struct {
	Conjunto []string
	Sufixos  []string
}

// Permite avalia a regra contra o CEST formatado.
func (r RegraCest) Permite(cestFormatado string) bool {
	if len(r.Conjunto) > 0 {
		return contem(r.Conjunto, cestFormatado)
	}
	for _, sufixo := range r.Sufixos {
		if strings.HasSuffix(cestFormatado, sufixo) {
			return true
		}
	}
	return false
}

// Sufixos recorrentes: lista positiva (…00), negativa (…01), neutra
// (…02) e o caso "qualquer lista".
var (
	sufixoPositiva = RegraCest{Sufixos: []string{"00"}}
	sufixoNegativa = RegraCest{Sufixos: []string{"01"}}
	sufixoNeutra   = RegraCest{Sufixos: []string{"02"}}
	sufixoQualquer = RegraCest{Sufixos: []string{"00", "01", "02"}}
)

// CompatibilidadeAnvisa mapeia a combinação "tipo de produto, lista de
// crédito" (campos vazios viram "Vazio") para a regra de CEST
// permitida. Ausência de chave não é erro: significa apenas que não há
// regra cadastrada para a combinação.
var CompatibilidadeAnvisa = map[string]RegraCest{
	"Biológico, Positiva":  {Conjunto: []string{"13.001.00", "13.004.00"}},
	"Biológico, Negativa":  {Conjunto: []string{"13.001.01", "13.004.01"}},
	"Biológico, Neutra":    {Conjunto: []string{"13.001.02", "13.004.02"}},
	"Biológico, Vazio":     {Conjunto: []string{"13.001.00", "13.001.01", "13.001.02", "13.004.00", "13.004.01", "13.004.02"}},
	"Específico, Positiva": {Conjunto: []string{"13.001.00", "13.004.00"}},
	"Específico, Negativa": {Conjunto: []string{"13.001.01", "13.004.01"}},
	"Específico, Neutra":   {Conjunto: []string{"13.001.02", "13.004.02"}},
	"Específico, Vazio":    {Conjunto: []string{"13.001.00", "13.001.01", "13.001.02", "13.004.00", "13.004.01", "13.004.02"}},
	"Fitoterápico, Positiva": sufixoPositiva,
	"Fitoterápico, Negativa": sufixoNegativa,
	"Fitoterápico, Neutra":   sufixoNeutra,
	"Fitoterápico, Vazio":    sufixoQualquer,
	"Genérico, Positiva":     {Conjunto: []string{"13.002.00"}},
	"Genérico, Negativa":     {Conjunto: []string{"13.002.01"}},
	"Genérico, Neutra":       {Conjunto: []string{"13.002.02"}},
	"Genérico, Vazio":        {Conjunto: []string{"13.002.00", "13.002.01", "13.002.02"}},
	"Novo, Positiva":         {Conjunto: []string{"13.001.00", "13.004.00"}},
	"Novo, Negativa":         {Conjunto: []string{"13.001.01", "13.004.01"}},
	"Novo, Neutra":           {Conjunto: []string{"13.001.02", "13.004.02"}},
	"Novo, Vazio":            {Conjunto: []string{"13.001.00", "13.001.01", "13.001.02", "13.004.00", "13.004.01", "13.004.02"}},
	"Produtos de Terapia Avançada, Positiva": sufixoPositiva,
	"Produtos de Terapia Avançada, Negativa": sufixoNegativa,
	"Produtos de Terapia Avançada, Neutra":   sufixoNeutra,
	"Produtos de Terapia Avançada, Vazio":    sufixoQualquer,
	"Radiofármaco, Positiva":                 sufixoPositiva,
	"Radiofármaco, Negativa":                 sufixoNegativa,
	"Radiofármaco, Neutra":                   sufixoNeutra,
	"Radiofármaco, Vazio":                    sufixoQualquer,
	"Similar, Positiva":                      {Conjunto: []string{"13.003.00"}},
	"Similar, Negativa":                      {Conjunto: []string{"13.003.01"}},
	"Similar, Neutra":                        {Conjunto: []string{"13.003.02"}},
	"Similar, Vazio":                         {Conjunto: []string{"13.003.00", "13.003.01", "13.003.02"}},
	"-, Positiva":                            sufixoPositiva,
	"-, Negativa":                            sufixoNegativa,
	"-, Neutra":                              sufixoNeutra,
	"-, Vazio":                               sufixoQualquer,
	"Vazio, Positiva":                        sufixoPositiva,
	"Vazio, Negativa":                        sufixoNegativa,
	"Vazio, Neutra":                          sufixoNeutra,
	"Vazio, Vazio":                           sufixoQualquer,
}

// ValidarCestAnvisa confronta o CEST formatado com a regra da
// combinação tipo de produto × lista de crédito do registro ANVISA.
//
// Retorna a mensagem de alerta e true quando existe regra e o CEST a
// viola. Sem regra cadastrada, ou com CEST compatível, retorna vazio.
// Deve ser chamada apenas com CEST validável (ver CESTValidavel).
func ValidarCestAnvisa(cestFormatado, tipoProduto, listaCredito string) (string, bool) {
	chave := ouVazio(tipoProduto) + ", " + ouVazio(listaCredito)

	regra, ok := CompatibilidadeAnvisa[chave]
	if !ok {
		return "", false
	}
	if !regra.Permite(cestFormatado) {
		return AlertaCestIncompativel, true
	}
	return "", false
}

func ouVazio(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Vazio"
	}
	return s
}
