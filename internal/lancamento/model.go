package lancamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de lançamento: cada perna monetária da conclusão de um pedido
// vira uma linha própria no razonete.
const (
	TipoReceitaPlataforma = "RECEITA_PLATAFORMA"
	TipoRepasseIndicacao  = "REPASSE_INDICACAO"
	TipoTarifaPagamento   = "TARIFA_PAGAMENTO"
	TipoImpostoComissao   = "IMPOSTO_COMISSAO"
	TipoImpostoReceita    = "IMPOSTO_RECEITA"
)

// Lancamento é uma linha do razonete financeiro: um movimento monetário
// tipado, amarrado ao pedido e à fatura de origem. Apenas inserção —
// correção se faz com lançamento novo de sinal oposto, nunca editando.
type Lancamento struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PedidoID uint   `gorm:"not null;index" json:"pedidoId"`
	FaturaID uint   `gorm:"not null;index" json:"faturaId"`
	Tipo     string `gorm:"size:40;not null;index" json:"tipo"`

	Valor decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"valor"`

	CreatedAt time.Time `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lancamento{})
}
