// Package cmd define a interface de linha de comando da análise de
// itens.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "analise-item",
	Short: "Análise tributária de itens de NF-e (ICMS-ST, PIS/COFINS, IPI, CST)",
	Long: `analise-item monta o perfil tributário de produtos a partir do
catálogo do ERP, do registro ANVISA/CMED, da tabela TIPI e dos XMLs de
NF-e da sessão: substituição tributária, regime de PIS/COFINS, IPI,
CST, lista de concessão de crédito e classificação tributária.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute roda o comando raiz e encerra o processo em caso de erro.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"habilita logs de depuração")
}
