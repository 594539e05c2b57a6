package indicacao

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de perfis de indicação.
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

// BuscarPorParceiro devolve o perfil do parceiro, ou nil quando não há
// registro. Leitura pura: a ausência não dispara criação nenhuma — quem
// precisa do registro chama GarantirPerfil explicitamente.
func (r *Repository) BuscarPorParceiro(parceiroID uint) (*PerfilIndicacao, error) {
	var perfil PerfilIndicacao
	err := r.DB.Where("parceiro_id = ?", parceiroID).First(&perfil).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &perfil, nil
}

// GarantirPerfil devolve o perfil do parceiro, criando o registro com os
// valores padrão (nível 0, rank 0) se ainda não existir.
func (r *Repository) GarantirPerfil(parceiroID uint) (*PerfilIndicacao, error) {
	var perfil PerfilIndicacao
	err := r.DB.
		Where(PerfilIndicacao{ParceiroID: parceiroID}).
		FirstOrCreate(&perfil).Error
	if err != nil {
		return nil, err
	}
	return &perfil, nil
}

// Atualizar salva as alterações de um perfil existente.
func (r *Repository) Atualizar(perfil *PerfilIndicacao) error {
	return r.DB.Save(perfil).Error
}
