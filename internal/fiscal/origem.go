package fiscal

// ======================================================================
// ORIGEM DA MERCADORIA
// ======================================================================

// Classes de origem para o cascateamento de classificação.
// Nacionalizado é subconjunto de nacional e tem precedência.
func origemNacional(d byte) bool {
	switch d {
	case '0', '3', '4', '5', '7', '8':
		return true
	}
	return false
}

func origemImportada(d byte) bool {
	return d == '1' || d == '2'
}

func origemNacionalizada(d byte) bool {
	return d == '3' || d == '8'
}

// DescricoesOrigem é o texto legal da tabela de origem (tabela A do
// CST do ICMS), indexado pelo dígito.
var DescricoesOrigem = map[string]string{
	"0": "0 - Nacional, exceto as indicadas nos códigos 3,4,5 e 8",
	"1": "1 - Estrangeira- importação direta, exceto a indicada no codigo 6",
	"2": "2 - Estrangeira- Adquirida no mercado interno, Exceto a indicada no codigo 7",
	"3": "3 - Nacional, mercadoria ou bem com Conteúdo de Importação superior a 40% e inferior ou igual a 70%",
	"4": "4 - Nacional, cuja produção tenha sido feita em conformidade com os processos produtivos básicos de que tratam o Decreto-Lei no 288/67, e as Leis nos 8.248/91, 8.387/91, 10.176/01 e 11.484/07.",
	"5": "5 - Nacional, mercadoria ou bem com Conteúdo de Importação inferior ou igual a 40%(quarenta por cento)",
	"6": "6 - Estrangeira - Adquirida no mercado interno, sem similar nacional, constante em lista de Resolução CAMEX e gás natural.",
	"7": "7 - Estrangeira- Adquirida no mercado interno, sem similar nacional, constante em lista de Resolução CAMEX e gás natural.",
	"8": "Nacional, mercadoira ou bem com Conteúdo de Importação superior a 70%(setenta por cento).",
}

// DescricaoOrigem retorna o texto legal do dígito de origem. Dígito
// desconhecido passa adiante inalterado.
func DescricaoOrigem(origem string) string {
	if descricao, ok := DescricoesOrigem[origem]; ok {
		return descricao
	}
	return origem
}
