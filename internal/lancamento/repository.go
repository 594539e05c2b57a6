package lancamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados do razonete. De propósito não há
// Update nem Delete: o razonete é apenas-inserção.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// CriarEmLote insere os lançamentos de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(lancamentos []*Lancamento) error {
	if len(lancamentos) == 0 {
		return nil
	}
	return r.DB.Create(lancamentos).Error
}

// ListarPorPedido devolve os lançamentos de um pedido na ordem de criação.
func (r *Repository) ListarPorPedido(pedidoID uint) ([]Lancamento, error) {
	var lancamentos []Lancamento
	err := r.DB.
		Where("pedido_id = ?", pedidoID).
		Order("id ASC").
		Find(&lancamentos).Error
	return lancamentos, err
}

// ListarPorPeriodo devolve os lançamentos criados no intervalo [de, ate].
func (r *Repository) ListarPorPeriodo(de, ate time.Time) ([]Lancamento, error) {
	var lancamentos []Lancamento
	err := r.DB.
		Where("created_at BETWEEN ? AND ?", de, ate).
		Order("created_at ASC").
		Find(&lancamentos).Error
	return lancamentos, err
}

// SomarPorTipo soma os valores de um tipo de lançamento no período.
func (r *Repository) SomarPorTipo(tipo string, de, ate time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&Lancamento{}).
		Where("tipo = ? AND created_at BETWEEN ? AND ?", tipo, de, ate).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
