package fatura

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de faturas. Não há Delete: fatura
// é registro de auditoria.
type Repository struct {
	DB *gorm.DB
}

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

// Criar insere a fatura. O índice único em pedido_id derruba inserções
// concorrentes para o mesmo pedido com gorm.ErrDuplicatedKey.
func (r *Repository) Criar(f *Fatura) error {
	return r.DB.Create(f).Error
}

// BuscarPorID busca uma fatura pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Fatura, error) {
	var f Fatura
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// BuscarPorPedido devolve a fatura do pedido, ou nil se ainda não existe.
func (r *Repository) BuscarPorPedido(pedidoID uint) (*Fatura, error) {
	var f Fatura
	err := r.DB.Where("pedido_id = ?", pedidoID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListarPorParceiro devolve as faturas de um parceiro, mais recentes
// primeiro.
func (r *Repository) ListarPorParceiro(parceiroID uint) ([]Fatura, error) {
	var faturas []Fatura
	err := r.DB.
		Where("parceiro_id = ?", parceiroID).
		Order("emitida_em DESC").
		Find(&faturas).Error
	return faturas, err
}

// AtualizarIDContabil grava o identificador devolvido pela contabilidade
// externa. Atualização idempotente: repetir com o mesmo valor é inócuo.
func (r *Repository) AtualizarIDContabil(id uint, externo string) error {
	return r.DB.Model(&Fatura{}).
		Where("id = ?", id).
		Update("id_contabil_externo", externo).Error
}
