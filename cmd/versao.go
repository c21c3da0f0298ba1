package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Versao é sobrescrita no build via -ldflags.
var Versao = "dev"

var versaoCmd = &cobra.Command{
	Use:   "versao",
	Short: "Mostra a versão do analise-item",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("analise-item %s\n", Versao)
	},
}

func init() {
	rootCmd.AddCommand(versaoCmd)
}
