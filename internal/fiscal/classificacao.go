package fiscal

import "strings"

// ======================================================================
// CLASSIFICAÇÃO TRIBUTÁRIA (CASCATA DE REGRAS)
// ======================================================================
//
// A classificação fina ("A1" … "K5") vem de uma cascata priorizada:
//
//  1. Convênio 87/02 — tabelas por classe de origem e CEST exato, com
//     repescagem C1/C3 para débito/crédito dentro do convênio
//  2. Demais convênios — código fixo por convênio
//  3. Débito/crédito — casos especiais de fraldas e absorventes, senão
//     o genérico D1/D2
//  4. Luvas cirúrgicas por prefixo de NCM
//  5. CEST sem convênio — tabelas por classe de origem
//
// A primeira regra que casa vence. Cada tabela é um dado exportado
// para poder ser testada isolada da lógica que a consome.

// ClassificacaoNaoEncontrada é o resultado quando nenhuma regra casa.
const ClassificacaoNaoEncontrada = "Classificação não encontrada"

// Convênio 87/02 — nacional (exceto nacionalizado).
var Conv87Nacional = map[string]string{
	"1300100": "A1 - Convênio 87 - Etic/Nac/Pos",
	"1300101": "A2 - Convênio 87 - Etic/Nac/Neg",
	"1300300": "A3 - Convênio 87 - Sim/Nac/Pos",
	"1300301": "A4 - Convênio 87 - Sim/Nac/Neg",
	"1300200": "A5 - Convênio 87 - Gen/Nac/Pos",
	"1300201": "A6 - Convênio 87 - Gen/Nac/Neg",
	"1300400": "A7 - Convênio 87 - Out/Nac/Pos",
	"1300401": "A8 - Convênio 87 - Out/Nac/Neg",
	"1300402": "A9 - Convênio 87 - Out/Nac/Neu",
}

// Convênio 87/02 — importado.
var Conv87Importado = map[string]string{
	"1300100": "B1 - Convênio 87 - Etic/Imp/Pos",
	"1300101": "B2 - Convênio 87 - Etic/Imp/Neg",
	"1300300": "B3 - Convênio 87 - Sim/Imp/Pos",
	"1300301": "B4 - Convênio 87 - Sim/Imp/Neg",
	"1300200": "B5 - Convênio 87 - Gen/Imp/Pos",
	"1300201": "B6 - Convênio 87 - Gen/Imp/Neg",
	"1300400": "B7 - Convênio 87 - Out/Imp/Pos",
	"1300401": "B8 - Convênio 87 - Out/Imp/Neg",
	"1300402": "B9 - Convênio 87 - Out/Imp/Neu",
}

// Convênio 87/02 — nacionalizado.
var Conv87Nacionalizado = map[string]string{
	"1300200": "I7 - NACIONALIZADO - CONV. 87 GEN/POS",
	"1300201": "I8 - NACIONALIZADO - CONV. 87 GEN/NEG",
	"1300300": "I9 - NACIONALIZADO - CONV. 87 SIM/POS",
	"1300301": "J1 - NACIONALIZADO - CONV. 87 SIM/NEG",
	"1300100": "J2 - NACIONALIZADO - CONV. 87 ETIC/POS",
	"1300101": "J3 - NACIONALIZADO - CONV. 87 ETIC/NEG",
	"1300400": "J4 - NACIONALIZADO - CONV. 87 OUT/POS",
	"1300401": "J5 - NACIONALIZADO - CONV. 87 OUT/NEG",
}

// Demais convênios: código fixo por acordo.
var ConveniosFixos = map[string]string{
	Convenio16294: "C5 - Convênio 162/94",
	Convenio14001: "C6 - Convênio 140/01",
	Convenio0199:  "C7 - Convênio 01/99",
	Convenio12610: "C8 - Convênio 126/10",
	Convenio1002:  "C9 - Convênio 10/02",
}

// Sem convênio — nacional (exceto nacionalizado). Os CESTs 1300500 a
// 1301600 reaproveitam os códigos do grupo "Outros" conforme o sufixo
// (…00 positiva, …01 negativa, demais neutra).
var SemConvenioNacional = map[string]string{
	"1300100": "F5 - Ético Pos/Nac",
	"1300101": "F6 - Ético Neg/Nac",
	"1300200": "F7 - Genérico Pos/Nac",
	"1300201": "F8 - Genérico Neg/Nac",
	"1300300": "F9 - Similar Pos/Nac",
	"1300301": "G1 - Similar Neg/Nac",
	"1300400": "G2 - Outros Pos/Nac",
	"1300401": "G3 - Outros Neg/Nac",
	"1300402": "G4 - Outros Neu/Nac",
	"1300500": "G2 - Outros Pos/Nac",
	"1300501": "G3 - Outros Neg/Nac",
	"1300600": "G4 - Outros Neu/Nac",
	"1300700": "G2 - Outros Pos/Nac",
	"1300701": "G3 - Outros Neg/Nac",
	"1300800": "G2 - Outros Pos/Nac",
	"1300801": "G3 - Outros Neg/Nac",
	"1300900": "G2 - Outros Pos/Nac",
	"1300901": "G3 - Outros Neg/Nac",
	"1301000": "G2 - Outros Pos/Nac",
	"1301001": "G3 - Outros Neg/Nac",
	"1301100": "G4 - Outros Neu/Nac",
	"1301200": "G4 - Outros Neu/Nac",
	"1301300": "G4 - Outros Neu/Nac",
	"1301400": "G4 - Outros Neu/Nac",
	"1301500": "G4 - Outros Neu/Nac",
	"1301600": "G4 - Outros Neu/Nac",
}

// Sem convênio — importado.
var SemConvenioImportado = map[string]string{
	"1300100": "G5 - Ético Pos/Imp",
	"1300101": "G6 - Ético Neg/Imp",
	"1300200": "G7 - Genérico Pos/Imp",
	"1300201": "G8 - Genérico Neg/Imp",
	"1300300": "G9 - Similar Pos/Imp",
	"1300301": "H1 - Similar Neg/Imp",
	"1300400": "H2 - Outros Pos/Imp",
	"1300401": "H3 - Outros Neg/Imp",
	"1300402": "H4 - Outros Neu/Imp",
	"1300500": "H2 - Outros Pos/Imp",
	"1300501": "H3 - Outros Neg/Imp",
	"1300600": "H4 - Outros Neu/Imp",
	"1300700": "H2 - Outros Pos/Imp",
	"1300701": "H3 - Outros Neg/Imp",
	"1300800": "H2 - Outros Pos/Imp",
	"1300801": "H3 - Outros Neg/Imp",
	"1300900": "H2 - Outros Pos/Imp",
	"1300901": "H3 - Outros Neg/Imp",
	"1301000": "H2 - Outros Pos/Imp",
	"1301001": "H3 - Outros Neg/Imp",
	"1301100": "H4 - Outros Neu/Imp",
	"1301200": "H4 - Outros Neu/Imp",
	"1301300": "H4 - Outros Neu/Imp",
	"1301400": "H4 - Outros Neu/Imp",
	"1301500": "H4 - Outros Neu/Imp",
	"1301600": "H4 - Outros Neu/Imp",
}

// Sem convênio — nacionalizado.
var SemConvenioNacionalizado = map[string]string{
	"1300200": "J6 - NACIONALIZADO - GEN/POS",
	"1300201": "J7 - NACIONALIZADO - GEN/NEG",
	"1300300": "J8 - NACIONALIZADO - SIM/POS",
	"1300301": "J9 - NACIONALIZADO - SIM/NEG",
	"1300100": "K1 - NACIONALIZADO - ETIC/POS",
	"1300101": "K2 - NACIONALIZADO - ETIC/NEG",
	"1300400": "K3 - NACIONALIZADO - OUT/POS",
	"1300401": "K4 - NACIONALIZADO - OUT/NEG",
	"1300402": "K5 - NACIONALIZADO - OUT/NEU",
	"1300500": "K3 - NACIONALIZADO - OUT/POS",
	"1300501": "K4 - NACIONALIZADO - OUT/NEG",
	"1300600": "K5 - NACIONALIZADO - OUT/NEU",
	"1300700": "K3 - NACIONALIZADO - OUT/POS",
	"1300701": "K4 - NACIONALIZADO - OUT/NEG",
	"1300800": "K3 - NACIONALIZADO - OUT/POS",
	"1300801": "K4 - NACIONALIZADO - OUT/NEG",
	"1300900": "K3 - NACIONALIZADO - OUT/POS",
	"1300901": "K4 - NACIONALIZADO - OUT/NEG",
	"1301000": "K3 - NACIONALIZADO - OUT/POS",
	"1301001": "K4 - NACIONALIZADO - OUT/NEG",
	"1301100": "K5 - NACIONALIZADO - OUT/NEU",
	"1301200": "K5 - NACIONALIZADO - OUT/NEU",
	"1301300": "K5 - NACIONALIZADO - OUT/NEU",
	"1301400": "K5 - NACIONALIZADO - OUT/NEU",
	"1301500": "K5 - NACIONALIZADO - OUT/NEU",
	"1301600": "K5 - NACIONALIZADO - OUT/NEU",
}

// DeterminarClassificacao percorre a cascata e devolve o código de
// classificação tributária do item. NCM e CEST podem vir pontuados.
// A origem deve já estar remapeada (ver AjustarOrigem).
func DeterminarClassificacao(convenio, cestFormatado, origem, debitoCredito, ncmFormatado string) string {
	cest := semPontos(cestFormatado)

	var digito byte
	if origem != "" {
		digito = origem[0]
	}
	nacional := origemNacional(digito)
	importado := origemImportada(digito)
	nacionalizado := origemNacionalizada(digito)

	// 1. Convênio 87/02
	if convenio == Convenio8702 {
		switch {
		case nacional && !nacionalizado:
			if codigo, ok := Conv87Nacional[cest]; ok {
				return codigo
			}
		case importado:
			if codigo, ok := Conv87Importado[cest]; ok {
				return codigo
			}
		case nacionalizado:
			if codigo, ok := Conv87Nacionalizado[cest]; ok {
				return codigo
			}
		}

		// Repescagem dentro do convênio para débito/crédito.
		if debitoCredito == "SIM" {
			if nacional {
				return "C1 - Convênio 87 - DC/Nac/Pos"
			}
			if importado {
				return "C3 - Convênio 87 - DC/Imp/Pos"
			}
		}
	}

	// 2. Demais convênios
	if codigo, ok := ConveniosFixos[convenio]; ok {
		return codigo
	}

	// 3. Débito/crédito sem convênio
	if debitoCredito == "SIM" {
		if cest == "2004800" { // fraldas
			if nacional {
				return "D3 - Fraldas Nac"
			}
			return "D4 - Fraldas Imp"
		}
		if cest == "2004900" { // tampões e absorventes
			if nacional {
				return "I1 - Tampões e Absorv. Hig. Nac"
			}
			return "I2 - Tampões e Absorv. Hig. Imp"
		}
		if nacional {
			return "D1 - Deb/Cred Nac"
		}
		return "D2 - Deb/Cred Imp"
	}

	// 4. Luvas cirúrgicas e de procedimento, por prefixo de NCM
	ncm := semPontos(ncmFormatado)
	if strings.HasPrefix(ncm, "401511") || strings.HasPrefix(ncm, "401512") || strings.HasPrefix(ncm, "401519") {
		if nacional {
			return "F3 - Luva proced. Nac"
		}
		return "F4 - Luva proced. Imp"
	}

	// 5. CEST sem convênio, por classe de origem
	switch {
	case nacional && !nacionalizado:
		if codigo, ok := SemConvenioNacional[cest]; ok {
			return codigo
		}
	case importado:
		if codigo, ok := SemConvenioImportado[cest]; ok {
			return codigo
		}
	case nacionalizado:
		if codigo, ok := SemConvenioNacionalizado[cest]; ok {
			return codigo
		}
	}

	return ClassificacaoNaoEncontrada
}
