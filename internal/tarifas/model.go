package tarifas

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErroConfiguracao indica parâmetros de tarifa inválidos.
// É condição fatal na subida do processo, nunca erro por requisição.
type ErroConfiguracao struct {
	Campo  string
	Motivo string
}

func (e *ErroConfiguracao) Error() string {
	return fmt.Sprintf("configuração de tarifas inválida (%s): %s", e.Campo, e.Motivo)
}

// Tolerância aceita na soma das proporções da distribuição.
var toleranciaDistribuicao = decimal.NewFromFloat(0.0001)

// DistribuicaoComissao descreve em que proporção a comissão bruta de um
// pedido se reparte entre imposto, tarifa de pagamento, repasse de
// indicação e receita líquida da plataforma. As quatro proporções
// precisam somar 1.
type DistribuicaoComissao struct {
	Imposto         decimal.Decimal `json:"imposto"`
	TarifaPagamento decimal.Decimal `json:"tarifaPagamento"`
	Indicacao       decimal.Decimal `json:"indicacao"`
	ReceitaLiquida  decimal.Decimal `json:"receitaLiquida"`
}

// Soma devolve o total das quatro proporções.
func (d DistribuicaoComissao) Soma() decimal.Decimal {
	return d.Imposto.Add(d.TarifaPagamento).Add(d.Indicacao).Add(d.ReceitaLiquida)
}

// ConfiguracaoTarifas concentra todos os parâmetros de cálculo financeiro.
// Carregada uma única vez na subida e nunca alterada durante um cálculo.
type ConfiguracaoTarifas struct {
	// Alíquota de imposto embutida na comissão (ex.: 0.20).
	TaxaImposto decimal.Decimal `json:"taxaImposto"`
	// Percentual do meio de pagamento sobre o valor total do pedido (ex.: 0.04).
	TaxaPagamento decimal.Decimal `json:"taxaPagamento"`
	// Taxa base de repasse de indicação (ex.: 0.25).
	TaxaIndicacaoBase decimal.Decimal `json:"taxaIndicacaoBase"`
	// Acréscimo fixo por ponto de rank do parceiro.
	BonusPorRank decimal.Decimal `json:"bonusPorRank"`

	Distribuicao DistribuicaoComissao `json:"distribuicao"`
}

// Validar confere todos os parâmetros da configuração. Qualquer taxa fora
// de [0,1] ou distribuição que não some 1 (± 1e-4) devolve ErroConfiguracao.
func (c ConfiguracaoTarifas) Validar() error {
	taxas := []struct {
		campo string
		valor decimal.Decimal
	}{
		{"taxaImposto", c.TaxaImposto},
		{"taxaPagamento", c.TaxaPagamento},
		{"taxaIndicacaoBase", c.TaxaIndicacaoBase},
		{"bonusPorRank", c.BonusPorRank},
		{"distribuicao.imposto", c.Distribuicao.Imposto},
		{"distribuicao.tarifaPagamento", c.Distribuicao.TarifaPagamento},
		{"distribuicao.indicacao", c.Distribuicao.Indicacao},
		{"distribuicao.receitaLiquida", c.Distribuicao.ReceitaLiquida},
	}
	um := decimal.NewFromInt(1)
	for _, t := range taxas {
		if t.valor.IsNegative() || t.valor.GreaterThan(um) {
			return &ErroConfiguracao{Campo: t.campo, Motivo: "taxa fora do intervalo [0,1]"}
		}
	}

	desvio := c.Distribuicao.Soma().Sub(um).Abs()
	if desvio.GreaterThan(toleranciaDistribuicao) {
		return &ErroConfiguracao{
			Campo:  "distribuicao",
			Motivo: fmt.Sprintf("proporções somam %s, esperado 1", c.Distribuicao.Soma()),
		}
	}
	return nil
}

// Padrao devolve a configuração vigente do marketplace, já validada.
func Padrao() ConfiguracaoTarifas {
	return ConfiguracaoTarifas{
		TaxaImposto:       decimal.NewFromFloat(0.20),
		TaxaPagamento:     decimal.NewFromFloat(0.04),
		TaxaIndicacaoBase: decimal.NewFromFloat(0.25),
		BonusPorRank:      decimal.NewFromFloat(0.02),
		Distribuicao: DistribuicaoComissao{
			Imposto:         decimal.NewFromFloat(0.17),
			TarifaPagamento: decimal.NewFromFloat(0.40),
			Indicacao:       decimal.NewFromFloat(0.21),
			ReceitaLiquida:  decimal.NewFromFloat(0.22),
		},
	}
}
