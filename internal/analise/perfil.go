package analise

import (
	"strings"

	"github.com/SrGrandi/analise-item/internal/fiscal"
)

// PerfilTributario é o registro final de um item analisado: uma linha
// por campo do laudo tributário. É montado uma única vez por análise
// e nunca mutado depois; não é persistido.
type PerfilTributario struct {
	Indice    int    `json:"indice"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`

	NCM          string `json:"ncm"`
	CEST         string `json:"cest"`
	AlertaCest   string `json:"alerta_cest,omitempty"`
	CestDestaque bool   `json:"cest_destaque,omitempty"`

	SubstituicaoTributaria bool   `json:"substituicao_tributaria"`
	DebitoCredito          string `json:"debito_credito"`

	PisCofins         string `json:"pis_cofins"`
	PisCofinsDestaque bool   `json:"pis_cofins_destaque,omitempty"`
	IPI               string `json:"ipi"`
	CST               string `json:"cst"`

	NumeroFCI       string `json:"numero_fci,omitempty"`
	Convenio        string `json:"convenio"`
	Origem          string `json:"origem"`
	PrecoMonitorado string `json:"preco_monitorado"`
	Lista           string `json:"lista"`
	Classificacao   string `json:"classificacao_tributaria"`
	XMLEncontrado   string `json:"xml_encontrado"`
}

// TemProblema indica se o laudo merece destaque de atenção: CEST
// incompatível ou obrigatório ausente, ou NCM não resolvido.
func (p *PerfilTributario) TemProblema() bool {
	return p.AlertaCest != "" ||
		strings.Contains(p.CEST, "🔴") ||
		p.NCM == fiscal.NCMNaoEncontrado
}

func simNao(v bool) string {
	if v {
		return "SIM"
	}
	return "NÃO"
}

// FormatarTexto monta o bloco de exportação do laudo: uma linha
// "rótulo: valor" por campo, na ordem fixa do relatório. É o formato
// usado para copiar o resultado para e-mail.
func (p *PerfilTributario) FormatarTexto() string {
	cest := p.CEST
	if p.AlertaCest != "" {
		cest += " " + p.AlertaCest
	}

	var b strings.Builder
	linha := func(rotulo, valor string) {
		b.WriteString(rotulo)
		b.WriteString(": ")
		b.WriteString(valor)
		b.WriteString("\n")
	}

	linha("Código", p.Codigo)
	linha("Desc. Item", p.Descricao)
	linha("NCM", p.NCM)
	linha("CEST", cest)
	linha("Substituição Tributária", simNao(p.SubstituicaoTributaria))
	linha("Débito e Crédito", p.DebitoCredito)
	linha("PIS/COFINS", p.PisCofins)
	linha("IPI", p.IPI)
	linha("CST", p.CST)
	linha("Número do FCI", p.NumeroFCI)
	linha("Convênio", p.Convenio)
	linha("Origem", p.Origem)
	linha("Preço (Monitorado - PF 20,5%)", p.PrecoMonitorado)
	linha("Lista", p.Lista)
	linha("Classificação Tributária", p.Classificacao)
	linha("XML Encontrado", p.XMLEncontrado)

	return b.String()
}

// FormatarLote concatena os blocos de texto dos resultados bem
// sucedidos de um lote, separados por linha em branco (o "copiar
// todos" do relatório). Itens com erro não produzem bloco.
func FormatarLote(resultados []Resultado) string {
	var b strings.Builder
	for _, r := range resultados {
		if r.Err != nil || r.Perfil == nil {
			continue
		}
		b.WriteString(r.Perfil.FormatarTexto())
		b.WriteString("\n")
	}
	return b.String()
}
