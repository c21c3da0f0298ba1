package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SrGrandi/analise-item/internal/analise"
	"github.com/SrGrandi/analise-item/internal/config"
	"github.com/SrGrandi/analise-item/internal/fiscal"
	"github.com/SrGrandi/analise-item/internal/refdata"
	"github.com/SrGrandi/analise-item/pkg/nfedoc"
)

var (
	flagProdutos  string
	flagAnvisa    string
	flagTipi      string
	flagAssetsURL string
	flagXSD       string
	flagXMLs      []string
	flagItens     []string
	flagJSON      bool
)

var analisarCmd = &cobra.Command{
	Use:   "analisar",
	Short: "Monta o perfil tributário de um ou mais itens",
	Long: `Carrega a base de referência (catálogo, ANVISA/CMED e TIPI), lê os
XMLs de NF-e informados e monta o perfil tributário de cada item.

Cada item é "codigo" ou "codigo:convenio". O convênio pode vir por
extenso ou só pela sigla, por exemplo:

  analise-item analisar --xml notas/*.xml --item 1234 --item 5678:87/02
  analise-item analisar --xml nota.xml --item "1234:Convênio 87/02"

A falha de um item não interrompe os demais: o erro sai no lugar do
laudo daquele item. XMLs que não puderam ser lidos são ignorados com
um aviso.`,
	RunE: executarAnalise,
}

func init() {
	analisarCmd.Flags().StringVar(&flagProdutos, "produtos", "",
		"catálogo de produtos (.json ou .csv)")
	analisarCmd.Flags().StringVar(&flagAnvisa, "anvisa", "",
		"registro ANVISA/CMED (.json ou .xlsx)")
	analisarCmd.Flags().StringVar(&flagTipi, "tipi", "",
		"tabela TIPI (.json ou .xlsx)")
	analisarCmd.Flags().StringVar(&flagAssetsURL, "assets-url", "",
		"URL base dos assets remotos (substitui --produtos/--anvisa/--tipi)")
	analisarCmd.Flags().StringVar(&flagXSD, "xsd", "",
		"schema XSD opcional para validar as NF-e")
	analisarCmd.Flags().StringArrayVar(&flagXMLs, "xml", nil,
		"arquivo XML de NF-e (repetível)")
	analisarCmd.Flags().StringArrayVar(&flagItens, "item", nil,
		"item a analisar, no formato codigo[:convenio] (repetível)")
	analisarCmd.Flags().BoolVar(&flagJSON, "json", false,
		"emite os laudos em JSON em vez de texto")

	rootCmd.AddCommand(analisarCmd)
}

func executarAnalise(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Load()

	if flagProdutos == "" {
		flagProdutos = cfg.Produtos
	}
	if flagAnvisa == "" {
		flagAnvisa = cfg.Anvisa
	}
	if flagTipi == "" {
		flagTipi = cfg.Ipi
	}
	if flagAssetsURL == "" {
		flagAssetsURL = cfg.AssetsURL
	}
	if flagXSD == "" {
		flagXSD = cfg.XSD
	}

	if len(flagItens) == 0 {
		return fmt.Errorf("nenhum item informado (use --item codigo[:convenio])")
	}

	base, err := carregarBase(log)
	if err != nil {
		return err
	}
	log.Debug().Int("produtos", len(base.Produtos)).Int("anvisa", len(base.Anvisa)).
		Int("tipi", len(base.Ipi)).Msg("Base de referência carregada")

	docs := nfedoc.NewStore()
	parser := &nfedoc.Parser{SchemaPath: flagXSD}
	var carregados []*nfedoc.Documento
	for _, caminho := range flagXMLs {
		doc, err := parser.ParseFile(caminho)
		if err != nil {
			// Documento ruim não derruba a sessão: segue sem ele.
			log.Warn().Err(err).Str("arquivo", caminho).Msg("XML ignorado")
			continue
		}
		carregados = append(carregados, doc)
	}
	docs.Substituir(carregados)
	log.Debug().Int("documentos", docs.Tamanho()).Msg("XMLs carregados")

	servico := analise.NewService(log, base, docs)
	resultados := servico.AnalisarLote(interpretarItens(flagItens))

	if flagJSON {
		return emitirJSON(resultados)
	}
	emitirTexto(resultados)
	return nil
}

// carregarBase monta a base de referência da URL remota ou dos três
// arquivos locais, escolhendo o carregador pela extensão.
func carregarBase(log zerolog.Logger) (*refdata.Base, error) {
	if flagAssetsURL != "" {
		log.Debug().Str("url", flagAssetsURL).Msg("Carregando assets remotos")
		return refdata.NovoClienteRemoto(flagAssetsURL).CarregarBase()
	}

	if flagProdutos == "" || flagAnvisa == "" || flagTipi == "" {
		return nil, fmt.Errorf("informe --produtos, --anvisa e --tipi, ou --assets-url")
	}

	var base refdata.Base
	var err error

	switch extensao(flagProdutos) {
	case ".csv":
		base.Produtos, err = refdata.CarregarProdutosCSV(flagProdutos)
	default:
		base.Produtos, err = refdata.CarregarProdutosJSON(flagProdutos)
	}
	if err != nil {
		return nil, err
	}

	switch extensao(flagAnvisa) {
	case ".xlsx":
		base.Anvisa, err = refdata.CarregarAnvisaXLSX(flagAnvisa)
	default:
		base.Anvisa, err = refdata.CarregarAnvisaJSON(flagAnvisa)
	}
	if err != nil {
		return nil, err
	}

	switch extensao(flagTipi) {
	case ".xlsx":
		base.Ipi, err = refdata.CarregarIpiXLSX(flagTipi)
	default:
		base.Ipi, err = refdata.CarregarIpiJSON(flagTipi)
	}
	if err != nil {
		return nil, err
	}

	return &base, nil
}

func extensao(caminho string) string {
	return strings.ToLower(filepath.Ext(caminho))
}

// conveniosPorSigla expande a sigla digitada ("87/02") para o nome
// completo que o motor de regras reconhece.
var conveniosPorSigla = map[string]string{
	"87/02":  fiscal.Convenio8702,
	"162/94": fiscal.Convenio16294,
	"140/01": fiscal.Convenio14001,
	"01/99":  fiscal.Convenio0199,
	"126/10": fiscal.Convenio12610,
	"10/02":  fiscal.Convenio1002,
}

// interpretarItens converte "codigo" ou "codigo:convenio" em pedidos
// de análise. O convênio pode vir por extenso ou pela sigla.
func interpretarItens(entradas []string) []analise.Item {
	itens := make([]analise.Item, len(entradas))
	for i, entrada := range entradas {
		partes := strings.SplitN(entrada, ":", 2)
		item := analise.Item{Codigo: strings.TrimSpace(partes[0])}
		if len(partes) == 2 {
			item.Convenio = normalizarConvenio(partes[1])
		}
		itens[i] = item
	}
	return itens
}

func normalizarConvenio(convenio string) string {
	convenio = strings.TrimSpace(convenio)
	if completo, ok := conveniosPorSigla[convenio]; ok {
		return completo
	}
	return convenio
}

func emitirTexto(resultados []analise.Resultado) {
	for i, r := range resultados {
		if i > 0 {
			fmt.Println()
		}
		if r.Err != nil {
			fmt.Printf("❌ Item %d: %v\n", r.Indice+1, r.Err)
			continue
		}
		marcador := "✅"
		if r.Perfil.TemProblema() {
			marcador = "⚠️"
		}
		fmt.Printf("%s Item %d\n", marcador, r.Indice+1)
		fmt.Print(r.Perfil.FormatarTexto())
	}
}

func emitirJSON(resultados []analise.Resultado) error {
	type saida struct {
		Indice int                       `json:"indice"`
		Perfil *analise.PerfilTributario `json:"perfil,omitempty"`
		Erro   string                    `json:"erro,omitempty"`
	}

	saidas := make([]saida, len(resultados))
	for i, r := range resultados {
		saidas[i] = saida{Indice: r.Indice, Perfil: r.Perfil}
		if r.Err != nil {
			saidas[i].Erro = r.Err.Error()
		}
	}

	codificador := json.NewEncoder(os.Stdout)
	codificador.SetIndent("", "  ")
	return codificador.Encode(saidas)
}
