package fiscal

import (
	"github.com/shopspring/decimal"

	"github.com/SrGrandi/analise-item/internal/refdata"
)

// ======================================================================
// IPI (TABELA TIPI)
// ======================================================================

// ResultadoIpi indica se o IPI incide sobre o NCM e com qual alíquota.
type ResultadoIpi struct {
	Aplica   bool
	Aliquota decimal.Decimal
}

// ConsultarIpi busca a alíquota de IPI do NCM (pontuado ou não) na
// tabela TIPI carregada. A busca é do prefixo mais longo para o mais
// curto: 8, depois 6, depois 4 dígitos. O IPI só incide quando a
// alíquota encontrada é maior que zero; sem linha em nenhuma
// granularidade, o resultado é zero sem incidência.
func ConsultarIpi(ncm string, tabela refdata.TabelaIpi) ResultadoIpi {
	if ncm == "" || len(tabela) == 0 {
		return ResultadoIpi{}
	}

	ncmNumerico := semPontos(ncm)

	for _, tamanho := range []int{8, 6, 4} {
		if len(ncmNumerico) < tamanho {
			continue
		}
		if entrada := tabela.PorNCM(ncmNumerico[:tamanho]); entrada != nil {
			return ResultadoIpi{
				Aplica:   entrada.Aliquota.IsPositive(),
				Aliquota: entrada.Aliquota,
			}
		}
	}

	return ResultadoIpi{}
}
