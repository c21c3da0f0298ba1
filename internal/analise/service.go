// Package analise orquestra a montagem do perfil tributário: resolve
// os códigos fiscais do item nos documentos da sessão, formata,
// valida contra o registro ANVISA e roda o motor de regras.
package analise

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SrGrandi/analise-item/internal/fiscal"
	"github.com/SrGrandi/analise-item/internal/refdata"
	"github.com/SrGrandi/analise-item/pkg/nfedoc"
)

// Mensagens de valor padrão do laudo.
const (
	DescricaoNaoEncontrada = "Descrição não encontrada"
	PrecoNaoCadastrado     = "Produto não cadastrado na CMED"
	PisCofinsNaoCadastrado = "🔴 NCM não cadastrado no PIS/COFINS"
)

// CodigoInvalidoError indica código de produto não numérico ou zero.
// É um erro por item: não interrompe os demais itens do lote.
type CodigoInvalidoError struct {
	Codigo string
}

func (e *CodigoInvalidoError) Error() string {
	return fmt.Sprintf("código de produto inválido: %q (informe um código numérico diferente de zero)", e.Codigo)
}

// Item é um pedido de análise: o código do produto no catálogo e o
// convênio aplicável ("Não" quando nenhum).
type Item struct {
	Codigo   string
	Convenio string
}

// Resultado é a saída de um item do lote: ou um perfil completo, ou o
// erro isolado daquele item.
type Resultado struct {
	Indice int
	Perfil *PerfilTributario
	Err    error
}

// Service monta perfis tributários a partir da base de referência
// imutável e da coleção de documentos da sessão.
type Service struct {
	log  zerolog.Logger
	base *refdata.Base
	docs *nfedoc.Store
}

// NewService cria o serviço de análise.
func NewService(log zerolog.Logger, base *refdata.Base, docs *nfedoc.Store) *Service {
	if log.GetLevel() == zerolog.Disabled {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return &Service{log: log, base: base, docs: docs}
}

// AnalisarLote processa cada item de forma independente. A falha de
// um item vira o Err do seu Resultado e não afeta os vizinhos; a
// ordem dos resultados segue a ordem dos pedidos.
func (s *Service) AnalisarLote(itens []Item) []Resultado {
	resultados := make([]Resultado, len(itens))
	for i, item := range itens {
		perfil, err := s.Analisar(item)
		if err != nil {
			s.log.Warn().Err(err).Int("posicao", i+1).Str("codigo", item.Codigo).
				Msg("Falha ao analisar item")
			resultados[i] = Resultado{Indice: i, Err: err}
			continue
		}
		perfil.Indice = i
		resultados[i] = Resultado{Indice: i, Perfil: perfil}
	}
	return resultados
}

// Analisar monta o perfil tributário de um item.
func (s *Service) Analisar(item Item) (*PerfilTributario, error) {
	codigo, err := normalizarCodigo(item.Codigo)
	if err != nil {
		return nil, err
	}

	convenio := item.Convenio
	if convenio == "" {
		convenio = fiscal.ConvenioNenhum
	}

	s.log.Debug().Str("codigo", codigo).Str("convenio", convenio).Msg("Analisando item")

	// Snapshot da coleção: um recarregamento de documentos no meio da
	// análise não afeta este item.
	docs := s.docs.Documentos()

	produto := s.base.Produtos.PorCodigo(codigo)
	descricao := DescricaoNaoEncontrada
	codigoBarras := ""
	if produto != nil {
		descricao = produto.Descricao
		codigoBarras = produto.CodigoBarras
	}

	campos := nfedoc.Resolver(codigoBarras, docs)

	ncmFormatado := fiscal.NCMNaoEncontrado
	cestFormatado := fiscal.CESTNaoEncontrado
	cestDestaque := false
	alertaCest := ""

	if campos.Encontrado {
		ncmFormatado = fiscal.FormatarNCM(campos.NCM)
		cestFormatado, cestDestaque = fiscal.FormatarCEST(campos.CEST, campos.NCM)

		if fiscal.CESTValidavel(cestFormatado) {
			if entrada := s.base.Anvisa.PorCodigoBarras(codigoBarras); entrada != nil {
				alerta, destaque := fiscal.ValidarCestAnvisa(cestFormatado, entrada.TipoProduto, entrada.ListaCredito)
				if destaque {
					alertaCest = alerta
					cestDestaque = true
				}
			}
		}
	}

	precoMonitorado := PrecoNaoCadastrado
	if entrada := s.base.Anvisa.PorCodigoBarras(codigoBarras); entrada != nil && entrada.PrecoFabrica != "" {
		precoMonitorado = "R$: " + entrada.PrecoFabrica
	}

	temST := fiscal.TemSubstituicaoTributaria(ncmFormatado, cestFormatado)
	debitoCredito := "SIM"
	if temST {
		debitoCredito = "NÃO"
	}

	statusPisCofins := PisCofinsNaoCadastrado
	pisCofinsDestaque := true
	if regime := fiscal.ConsultarPisCofins(ncmFormatado); regime != nil {
		statusPisCofins = regime.Saida
		if regime.Aliquota != "" {
			statusPisCofins += " (" + regime.Aliquota + ")"
		}
		pisCofinsDestaque = false
	}

	ipi := fiscal.ConsultarIpi(ncmFormatado, s.base.Ipi)
	statusIpi := "NÃO"
	if ipi.Aplica {
		statusIpi = fmt.Sprintf("SIM (%s%%)", ipi.Aliquota)
	}

	convenioExibicao := "NÃO"
	if convenio != fiscal.ConvenioNenhum {
		convenioExibicao = "SIM - " + convenio
	}

	return &PerfilTributario{
		Codigo:                 codigo,
		Descricao:              descricao,
		NCM:                    ncmFormatado,
		CEST:                   cestFormatado,
		AlertaCest:             alertaCest,
		CestDestaque:           cestDestaque,
		SubstituicaoTributaria: temST,
		DebitoCredito:          debitoCredito,
		PisCofins:              statusPisCofins,
		PisCofinsDestaque:      pisCofinsDestaque,
		IPI:                    statusIpi,
		CST:                    fiscal.CodigoCST(campos.Origem, convenio, debitoCredito),
		NumeroFCI:              campos.FCIExibicao,
		Convenio:               convenioExibicao,
		Origem:                 fiscal.DescricaoOrigem(campos.Origem),
		PrecoMonitorado:        precoMonitorado,
		Lista:                  fiscal.DeterminarLista(cestFormatado),
		Classificacao: fiscal.DeterminarClassificacao(
			convenio, cestFormatado, campos.Origem, debitoCredito, ncmFormatado),
		XMLEncontrado: campos.Documento,
	}, nil
}

// normalizarCodigo valida e normaliza o código digitado: precisa ser
// numérico e diferente de zero. "007" vira "7", como no catálogo.
func normalizarCodigo(codigo string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(codigo))
	if err != nil || n == 0 {
		return "", &CodigoInvalidoError{Codigo: codigo}
	}
	return strconv.Itoa(n), nil
}
