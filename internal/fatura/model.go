package fatura

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/VitrineServicos/api-financeiro/internal/demonstrativo"
)

// Fatura é o registro imutável de cobrança de um pedido concluído.
// No máximo uma fatura por pedido (índice único em PedidoID). Depois de
// criada só recebe o patch idempotente do IDContabilExterno; nunca é
// apagada — é peça de auditoria.
type Fatura struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ParceiroID uint   `gorm:"not null;index" json:"parceiroId"`
	PedidoID   uint   `gorm:"not null;uniqueIndex" json:"pedidoId"`
	Moeda      string `gorm:"size:3;not null;default:'BRL'" json:"moeda"`

	// Valor total do pedido que originou a cobrança; necessário para a
	// conferência posterior da tarifa de pagamento.
	ValorPedido decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"valorPedido"`

	// Decomposição financeira, em precisão decimal plena.
	ComissaoBruta     decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"comissaoBruta"`
	ComissaoLiquida   decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"comissaoLiquida"`
	ImpostoComissao   decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"impostoComissao"`
	ValorIndicacao    decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"valorIndicacao"`
	TarifaPagamento   decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"tarifaPagamento"`
	ReceitaPlataforma decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"receitaPlataforma"`
	ImpostoReceita    decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"impostoReceita"`
	TotalFatura       decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"totalFatura"`

	EmitidaEm time.Time `gorm:"not null" json:"emitidaEm"`

	// Preenchido depois pelo processador de envios contábeis.
	IDContabilExterno *string `gorm:"size:64" json:"idContabilExterno,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Demonstrativo reconstrói o objeto de valor a partir dos campos
// persistidos, para conferência de auditoria.
func (f *Fatura) Demonstrativo() demonstrativo.Demonstrativo {
	return demonstrativo.Demonstrativo{
		ComissaoBruta:     f.ComissaoBruta,
		ComissaoLiquida:   f.ComissaoLiquida,
		ImpostoComissao:   f.ImpostoComissao,
		ValorIndicacao:    f.ValorIndicacao,
		TarifaPagamento:   f.TarifaPagamento,
		ReceitaPlataforma: f.ReceitaPlataforma,
		ImpostoReceita:    f.ImpostoReceita,
		TotalFatura:       f.TotalFatura,
	}
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Fatura{})
}
