package fiscal

import (
	"strconv"
	"strings"
)

// ======================================================================
// LISTA DE CONCESSÃO DE CRÉDITO (POSITIVA / NEGATIVA / NEUTRA)
// ======================================================================

// Valores possíveis da lista de concessão de crédito.
const (
	ListaPositiva = "POSITIVA"
	ListaNegativa = "NEGATIVA"
	ListaNeutra   = "NEUTRA"
)

// DeterminarLista deriva a lista de concessão de crédito a partir do
// CEST formatado.
//
// Só os CESTs do segmento de medicamentos entre 13.001.xx e 13.010.xx
// carregam a informação: o sufixo "00" indica lista positiva, "01"
// negativa e "02" neutra. Qualquer outro caso — "Sem CEST", vazio,
// segmento fora da faixa ou sufixo desconhecido — é NEUTRA.
func DeterminarLista(cestFormatado string) string {
	if cestFormatado == "" || cestFormatado == SemCEST {
		return ListaNeutra
	}

	cestNumerico := semPontos(cestFormatado)

	if strings.HasPrefix(cestNumerico, "13") && len(cestNumerico) >= 5 {
		segmento, err := strconv.Atoi(cestNumerico[2:5])
		if err == nil && segmento >= 1 && segmento <= 10 {
			switch cestNumerico[5:] {
			case "00":
				return ListaPositiva
			case "01":
				return ListaNegativa
			case "02":
				return ListaNeutra
			}
		}
	}

	return ListaNeutra
}
