package refdata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ======================================================================
// CARREGADOR REMOTO
// ======================================================================

// Nomes dos assets publicados junto com a aplicação.
const (
	AssetProdutos = "exportardados.json"
	AssetAnvisa   = "anvisa.json"
	AssetIpi      = "tabelatipi.json"
)

// ClienteRemoto busca os três assets de referência de uma URL base
// (ex.: o diretório assets/ publicado junto com a aplicação).
//
// É uma única tentativa por asset, sem retry: qualquer falha derruba
// o carregamento inteiro e é reportada ao chamador como falha dura.
type ClienteRemoto struct {
	http    *http.Client
	baseURL string
}

// NovoClienteRemoto cria o cliente para a URL base informada.
func NovoClienteRemoto(baseURL string) *ClienteRemoto {
	return &ClienteRemoto{
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// CarregarBase busca os três assets em paralelo e monta a base de
// referência da sessão.
func (c *ClienteRemoto) CarregarBase() (*Base, error) {
	var base Base
	erros := make([]error, 3)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		erros[0] = c.buscarJSON(AssetProdutos, &base.Produtos)
	}()
	go func() {
		defer wg.Done()
		erros[1] = c.buscarJSON(AssetAnvisa, &base.Anvisa)
	}()
	go func() {
		defer wg.Done()
		erros[2] = c.buscarJSON(AssetIpi, &base.Ipi)
	}()
	wg.Wait()

	for _, err := range erros {
		if err != nil {
			return nil, fmt.Errorf("falha ao carregar dados de referência: %w", err)
		}
	}

	return &base, nil
}

func (c *ClienteRemoto) buscarJSON(asset string, destino any) error {
	url := c.baseURL + "/" + asset

	resp, err := c.http.Get(url)
	if err != nil {
		return fmt.Errorf("erro na conexão com '%s': %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro %d ao carregar '%s'", resp.StatusCode, url)
	}

	corpo, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta de '%s': %w", url, err)
	}

	if err := json.Unmarshal(corpo, destino); err != nil {
		return fmt.Errorf("erro ao interpretar '%s': %w", url, err)
	}
	return nil
}
