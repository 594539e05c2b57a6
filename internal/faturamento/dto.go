package faturamento

import (
	"github.com/shopspring/decimal"

	"github.com/VitrineServicos/api-financeiro/internal/demonstrativo"
	"github.com/VitrineServicos/api-financeiro/internal/fatura"
)

// ConcluirPedidoDTO é o corpo do gatilho de conclusão vindo do subsistema
// de pedidos. Os valores chegam como decimais (número ou string JSON) e
// nunca passam por float binário.
type ConcluirPedidoDTO struct {
	ParceiroID    uint            `json:"parceiroId" validate:"required"`
	ValorPedido   decimal.Decimal `json:"valorPedido"`
	ComissaoBruta decimal.Decimal `json:"comissaoBruta"`
}

// FaturaEmitidaDTO é a resposta do gatilho: a fatura persistida e o
// demonstrativo arredondado para exibição.
type FaturaEmitidaDTO struct {
	Fatura        *fatura.Fatura                 `json:"fatura"`
	Demonstrativo demonstrativo.DemonstrativoDTO `json:"demonstrativo"`
	Reentrega     bool                           `json:"reentrega"`
}
