package fiscal

// ======================================================================
// CST (CÓDIGO DE SITUAÇÃO TRIBUTÁRIA)
// ======================================================================

// Convênios reconhecidos pela análise. ConvenioNenhum é o valor
// padrão ("Não") quando o item não está amparado por convênio.
const (
	ConvenioNenhum = "Não"
	Convenio8702   = "Convênio 87/02"
	Convenio16294  = "Convênio 162/94"
	Convenio14001  = "Convênio 140/01"
	Convenio0199   = "Convênio 01/99"
	Convenio12610  = "Convênio 126/10"
	Convenio1002   = "Convênio 10/02"
)

// CodigoCST compõe o CST completo: dígito de origem + sufixo de
// tratamento. O sufixo base é "00"; convênio presente leva a "40"
// (isenção); sem convênio, débito/crédito "NÃO" (ou seja, produto em
// substituição tributária) leva a "60".
func CodigoCST(origem, convenio, debitoCredito string) string {
	sufixo := "00"
	if convenio != ConvenioNenhum {
		sufixo = "40"
	} else if debitoCredito == "NÃO" {
		sufixo = "60"
	}
	return origem + sufixo
}
