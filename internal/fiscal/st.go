package fiscal

// ======================================================================
// SUBSTITUIÇÃO TRIBUTÁRIA (ICMS-ST)
// ======================================================================

// CombinacoesST mapeia NCM (exato ou prefixo de 4 dígitos) para o
// conjunto de CESTs que colocam o produto no regime de substituição
// tributária. Tabela derivada dos Convênios ICMS para o segmento de
// medicamentos e correlatos (segmento 13 do CEST).
var CombinacoesST = map[string][]string{
	"3003": {"1300100", "1300101", "1300102", "1300200", "1300201", "1300202",
		"1300300", "1300301", "1300302", "1300400", "1300401", "1300402"},
	"3004": {"1300100", "1300101", "1300102", "1300200", "1300201", "1300202",
		"1300300", "1300301", "1300302", "1300400", "1300401", "1300402"},
	"30066000": {"1300500", "1300501"},
	"2936":     {"1300600"},
	"300630":   {"1300700", "1300701"},
	"3002":     {"1300800", "1300801", "1300901"},
	"30051010": {"1301000", "1301001"},
	"3005":     {"1301100"},
	"40151100": {"1301200"},
	"40151900": {"1301200"},
	"40141000": {"1301300"},
	"901831":   {"1301400"},
	"901832":   {"1301500"},
	"39269090": {"1301600"},
	"90189099": {"1301600"},
}

// TemSubstituicaoTributaria informa se a combinação NCM × CEST está
// sujeita ao regime de substituição tributária.
//
// A busca é feita primeiro pelo NCM exato (como consta na tabela) e,
// em seguida, pelo prefixo de 4 dígitos. NCM com menos de 4 dígitos
// nunca tem ST. Ambos os códigos podem vir pontuados.
func TemSubstituicaoTributaria(ncm, cest string) bool {
	ncmNumerico := semPontos(ncm)
	cestNumerico := semPontos(cest)

	if len(ncmNumerico) < 4 {
		return false
	}

	if cests, ok := CombinacoesST[ncmNumerico]; ok {
		return contem(cests, cestNumerico)
	}

	if cests, ok := CombinacoesST[ncmNumerico[:4]]; ok {
		return contem(cests, cestNumerico)
	}

	return false
}

func contem(valores []string, v string) bool {
	for _, s := range valores {
		if s == v {
			return true
		}
	}
	return false
}
