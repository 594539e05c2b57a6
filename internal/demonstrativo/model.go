package demonstrativo

import (
	"github.com/shopspring/decimal"
)

// Demonstrativo é o objeto de valor com a decomposição financeira completa
// da comissão de um pedido concluído. Produzido uma vez por pedido, nunca
// alterado depois de construído; não é persistido diretamente — serve de
// fonte para a emissão da fatura.
//
// Todos os campos são decimais exatos. Arredondamento para duas casas só
// acontece na borda de serialização (ver Arredondado), nunca entre etapas
// do cálculo.
type Demonstrativo struct {
	// Entrada: comissão cobrada do parceiro, com imposto embutido.
	ComissaoBruta decimal.Decimal `json:"comissaoBruta"`

	// Derivados, na ordem do cálculo.
	ComissaoLiquida   decimal.Decimal `json:"comissaoLiquida"`
	ImpostoComissao   decimal.Decimal `json:"impostoComissao"`
	ValorIndicacao    decimal.Decimal `json:"valorIndicacao"`
	TarifaPagamento   decimal.Decimal `json:"tarifaPagamento"`
	ReceitaPlataforma decimal.Decimal `json:"receitaPlataforma"`
	ImpostoReceita    decimal.Decimal `json:"impostoReceita"`
	TotalFatura       decimal.Decimal `json:"totalFatura"`
}

// DemonstrativoDTO carrega os valores já arredondados a duas casas, como
// string, para exibição e integração. Uso exclusivo de borda.
type DemonstrativoDTO struct {
	ComissaoBruta     string `json:"comissaoBruta"`
	ComissaoLiquida   string `json:"comissaoLiquida"`
	ImpostoComissao   string `json:"impostoComissao"`
	ValorIndicacao    string `json:"valorIndicacao"`
	TarifaPagamento   string `json:"tarifaPagamento"`
	ReceitaPlataforma string `json:"receitaPlataforma"`
	ImpostoReceita    string `json:"impostoReceita"`
	TotalFatura       string `json:"totalFatura"`
}

// Arredondado devolve o DTO de exibição com duas casas decimais.
func (d Demonstrativo) Arredondado() DemonstrativoDTO {
	return DemonstrativoDTO{
		ComissaoBruta:     d.ComissaoBruta.StringFixed(2),
		ComissaoLiquida:   d.ComissaoLiquida.StringFixed(2),
		ImpostoComissao:   d.ImpostoComissao.StringFixed(2),
		ValorIndicacao:    d.ValorIndicacao.StringFixed(2),
		TarifaPagamento:   d.TarifaPagamento.StringFixed(2),
		ReceitaPlataforma: d.ReceitaPlataforma.StringFixed(2),
		ImpostoReceita:    d.ImpostoReceita.StringFixed(2),
		TotalFatura:       d.TotalFatura.StringFixed(2),
	}
}
