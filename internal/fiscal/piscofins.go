package fiscal

// ======================================================================
// PIS/COFINS
// ======================================================================

// RegimePisCofins descreve o tratamento de PIS/COFINS de um NCM:
// incidência na saída e na entrada, mais uma anotação opcional de
// alíquota quando o NCM tem regime de alíquota partida.
type RegimePisCofins struct {
	Saida    string
	Entrada  string
	Aliquota string // vazio quando não há anotação
}

// TabelaPisCofins é indexada por NCM exato (8 dígitos) ou por prefixo
// de 4 ou 6 dígitos. A consulta tenta exato → 4 → 6.
var TabelaPisCofins = map[string]RegimePisCofins{
	"30051090": {Saida: "SIM", Entrada: "SIM"},
	"3004":     {Saida: "NÃO", Entrada: "NÃO"},
	"3003":     {Saida: "NÃO", Entrada: "NÃO"},
	"21069030": {Saida: "SIM", Entrada: "SIM"},
	"96190000": {Saida: "SIM", Entrada: "SIM"},
	"30059090": {Saida: "SIM", Entrada: "SIM"},
	"90183929": {Saida: "SIM", Entrada: "SIM"},
	"87131000": {Saida: "NÃO", Entrada: "NÃO"},
	"90189099": {Saida: "SIM", Entrada: "SIM"},
	"90211099": {Saida: "SIM", Entrada: "SIM"},
	"30021520": {Saida: "NÃO", Entrada: "NÃO"},
	"48195000": {Saida: "SIM", Entrada: "SIM"},
	"38089429": {Saida: "SIM", Entrada: "SIM"},
	"63079010": {Saida: "SIM", Entrada: "SIM"},
	"90189010": {Saida: "SIM", Entrada: "SIM"},
	"33069000": {Saida: "NÃO", Entrada: "NÃO"},
	"34029019": {Saida: "SIM", Entrada: "SIM"},
	"40151200": {Saida: "SIM", Entrada: "SIM"},
	"90183921": {Saida: "SIM", Entrada: "SIM"},
	"48191000": {Saida: "SIM", Entrada: "SIM"},
	"90183119": {Saida: "SIM", Entrada: "SIM"},
	"90183219": {Saida: "SIM", Entrada: "SIM"},
	"90211020": {Saida: "NÃO", Entrada: "NÃO"},
	"39269030": {Saida: "SIM", Entrada: "SIM"},
	"30051030": {Saida: "SIM", Entrada: "SIM"},
	"90211010": {Saida: "NÃO", Entrada: "NÃO"},
	"38089919": {Saida: "SIM", Entrada: "SIM"},
	"30066000": {Saida: "SIM", Entrada: "SIM", Aliquota: "2,10% e 9,90%"},
	"52030000": {Saida: "SIM", Entrada: "SIM"},
	"35079049": {Saida: "SIM", Entrada: "SIM"},
}

// ConsultarPisCofins busca o regime de PIS/COFINS do NCM informado
// (pontuado ou não). Tenta o código exato, depois o prefixo de 4
// dígitos e por fim o de 6. Retorna nil quando não há entrada em
// nenhuma granularidade — ausência não é erro (o chamador exibe o
// aviso de NCM não cadastrado).
func ConsultarPisCofins(ncm string) *RegimePisCofins {
	ncmNumerico := semPontos(ncm)

	if regime, ok := TabelaPisCofins[ncmNumerico]; ok {
		return &regime
	}
	if len(ncmNumerico) >= 4 {
		if regime, ok := TabelaPisCofins[ncmNumerico[:4]]; ok {
			return &regime
		}
	}
	if len(ncmNumerico) >= 6 {
		if regime, ok := TabelaPisCofins[ncmNumerico[:6]]; ok {
			return &regime
		}
	}
	return nil
}
