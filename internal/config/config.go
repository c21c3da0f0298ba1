package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne os caminhos dos dados de referência e os ajustes de
// execução, vindos de variáveis de ambiente ou de um arquivo
// .env.<ambiente>.
type Config struct {
	Env       string
	Produtos  string // catálogo de produtos (.json ou .csv)
	Anvisa    string // registro ANVISA/CMED (.json ou .xlsx)
	Ipi       string // tabela TIPI (.json ou .xlsx)
	AssetsURL string // URL base para carregar os assets remotamente
	XSD       string // schema XSD opcional para validar as NF-e
	LogLevel  string
}

// Load carrega a configuração com base na variável ANALISE_ENV ou
// padroniza para 'production'.
func Load() *Config {
	env := os.Getenv("ANALISE_ENV")
	if env == "" {
		env = "production"
	}

	// Carrega o arquivo .env apropriado (ex: .env.production)
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// Arquivo ausente não é erro: seguimos com as variáveis de
		// ambiente do sistema.
		if !strings.Contains(err.Error(), "no such file or directory") {
			log.Fatalf("Erro ao carregar arquivo de ambiente %s: %v", envFile, err)
		}
	}

	return &Config{
		Env:       env,
		Produtos:  os.Getenv("ANALISE_PRODUTOS"),
		Anvisa:    os.Getenv("ANALISE_ANVISA"),
		Ipi:       os.Getenv("ANALISE_TIPI"),
		AssetsURL: os.Getenv("ANALISE_ASSETS_URL"),
		XSD:       os.Getenv("ANALISE_XSD"),
		LogLevel:  os.Getenv("ANALISE_LOG_LEVEL"),
	}
}
