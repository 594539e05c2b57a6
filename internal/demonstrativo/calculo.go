package demonstrativo

import (
	"github.com/shopspring/decimal"

	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
)

var um = decimal.NewFromInt(1)

// Calcular deriva o demonstrativo completo a partir do valor do pedido, da
// comissão bruta cobrada e da taxa de indicação efetiva do parceiro.
// Função pura: sem I/O, sem efeito colateral, determinística para as mesmas
// entradas decimais.
//
// A ordem das etapas importa: o imposto embutido sai primeiro porque todos
// os descontos seguintes incidem sobre a comissão líquida — descontar sobre
// a bruta contaria o imposto duas vezes.
func Calcular(valorPedido, comissaoBruta, taxaIndicacao decimal.Decimal, cfg tarifas.ConfiguracaoTarifas) Demonstrativo {
	// 1) extrai o imposto embutido na comissão bruta
	comissaoLiquida := comissaoBruta.Div(um.Add(cfg.TaxaImposto))
	impostoComissao := comissaoBruta.Sub(comissaoLiquida)

	// 2) repasse de indicação, proporcional à comissão líquida
	valorIndicacao := comissaoLiquida.Mul(taxaIndicacao)

	// 3) tarifa do meio de pagamento, sobre o valor TOTAL do pedido
	// (o adquirente cobra sobre a transação inteira, não sobre a comissão)
	tarifaPagamento := valorPedido.Mul(cfg.TaxaPagamento)

	// 4) receita da plataforma é o que sobra. Pode ser negativa em pedido
	// de ticket alto e comissão baixa; isso é sinal de negócio, não erro,
	// e segue adiante sem corte.
	receitaPlataforma := comissaoLiquida.Sub(valorIndicacao).Sub(tarifaPagamento)

	// 5) imposto sobre a receita própria da plataforma. Cálculo novo e
	// independente do imposto da etapa 1: a fatura da plataforma tributa
	// o serviço dela, não redistribui o imposto da comissão.
	impostoReceita := receitaPlataforma.Mul(cfg.TaxaImposto)

	// 6) total efetivamente faturado ao parceiro
	totalFatura := receitaPlataforma.Add(impostoReceita)

	return Demonstrativo{
		ComissaoBruta:     comissaoBruta,
		ComissaoLiquida:   comissaoLiquida,
		ImpostoComissao:   impostoComissao,
		ValorIndicacao:    valorIndicacao,
		TarifaPagamento:   tarifaPagamento,
		ReceitaPlataforma: receitaPlataforma,
		ImpostoReceita:    impostoReceita,
		TotalFatura:       totalFatura,
	}
}
