package perfilcobranca

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de perfis de cobrança.
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

// BuscarPorParceiro devolve o perfil de cobrança, ou nil quando não há
// registro — parceiro sem perfil é tratado como SOMENTE_PDF pelos fluxos
// de entrega.
func (r *Repository) BuscarPorParceiro(parceiroID uint) (*PerfilCobranca, error) {
	var perfil PerfilCobranca
	err := r.DB.Where("parceiro_id = ?", parceiroID).First(&perfil).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &perfil, nil
}

// Salvar grava o perfil do parceiro, criando ou atualizando o registro.
func (r *Repository) Salvar(perfil *PerfilCobranca) error {
	existente, err := r.BuscarPorParceiro(perfil.ParceiroID)
	if err != nil {
		return err
	}
	if existente != nil {
		perfil.ID = existente.ID
		perfil.CreatedAt = existente.CreatedAt
	}
	return r.DB.Save(perfil).Error
}
