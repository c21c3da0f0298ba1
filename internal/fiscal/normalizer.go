package fiscal

import "strings"

// ======================================================================
// NORMALIZAÇÃO DE CÓDIGOS FISCAIS (NCM / CEST)
// ======================================================================

// Valores sentinela usados quando o dado não pôde ser resolvido.
// Eles atravessam o motor de regras sem tratamento especial: um texto
// que não é dígito simplesmente nunca casa com as tabelas.
const (
	NCMNaoEncontrado  = "NCM não encontrado"
	CESTNaoEncontrado = "CEST não encontrado"

	// SemCEST indica CEST "0000000" ou ausente em NCM que não o exige.
	SemCEST = "Sem CEST"

	// CESTObrigatorio marca CEST ausente em NCM do capítulo 30
	// (medicamentos), onde o código é obrigatório.
	CESTObrigatorio = "🔴 Obrigatório - Não informado"
)

// SomenteDigitos remove tudo que não for dígito.
//
// Útil para comparar códigos formatados ("3004.10.00") contra as
// tabelas, que são indexadas pela forma numérica.
func SomenteDigitos(s string) string {
	var out []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}

// semPontos retira apenas os pontos, preservando qualquer outro texto.
// É a comparação usada pelas tabelas legais: um sentinela como
// "CEST não encontrado" permanece intacto e nunca casa.
func semPontos(s string) string {
	return strings.ReplaceAll(s, ".", "")
}

// FormatarNCM insere a pontuação canônica NNNN.NN.NN em um NCM de
// exatamente 8 dígitos. Qualquer outro tamanho retorna inalterado:
// quem chamou trata como "não encontrado".
func FormatarNCM(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	return raw[:4] + "." + raw[4:6] + "." + raw[6:8]
}

// FormatarCEST formata um CEST bruto na forma NN.NNN.NN.
//
// Regras (na ordem):
//   - 7 dígitos e "0000000" → "Sem CEST"
//   - 7 dígitos → pontuado
//   - fora de 7 dígitos com NCM iniciando em "30" → marcador de
//     obrigatório ausente, com destaque visual
//   - fora de 7 dígitos nos demais casos → "Sem CEST"
//
// O segundo retorno indica se o valor exige destaque (alerta).
func FormatarCEST(raw, ncmRaw string) (string, bool) {
	if len(raw) == 7 {
		if raw == "0000000" {
			return SemCEST, false
		}
		return raw[:2] + "." + raw[2:5] + "." + raw[5:7], false
	}
	if strings.HasPrefix(ncmRaw, "30") {
		return CESTObrigatorio, true
	}
	return SemCEST, false
}

// CESTValidavel informa se o CEST formatado pode ser submetido à
// matriz de compatibilidade da ANVISA (não é marcador de obrigatório
// ausente nem "Sem CEST").
func CESTValidavel(cestFormatado string) bool {
	return !strings.Contains(cestFormatado, "🔴") && cestFormatado != SemCEST
}
