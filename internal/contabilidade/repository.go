package contabilidade

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados da outbox de envios contábeis.
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

// Criar insere o envio pendente (chamar dentro da transação da fatura).
func (r *Repository) Criar(envio *EnvioContabil) error {
	return r.DB.Create(envio).Error
}

// BuscarVencidos devolve os envios pendentes cuja hora chegou, mais
// antigos primeiro.
func (r *Repository) BuscarVencidos(limite int) ([]EnvioContabil, error) {
	var envios []EnvioContabil
	err := r.DB.
		Where("status = ? AND proxima_tentativa <= ?", StatusPendente, time.Now().UTC()).
		Order("proxima_tentativa ASC").
		Limit(limite).
		Find(&envios).Error
	return envios, err
}

// BuscarPorFatura devolve o envio associado à fatura, ou nil se não há.
func (r *Repository) BuscarPorFatura(faturaID uint) (*EnvioContabil, error) {
	var envio EnvioContabil
	err := r.DB.Where("fatura_id = ?", faturaID).First(&envio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &envio, nil
}

// MarcarConcluido encerra o envio com sucesso.
func (r *Repository) MarcarConcluido(id uint) error {
	return r.DB.Model(&EnvioContabil{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      StatusConcluido,
			"ultimo_erro": "",
		}).Error
}

// RegistrarFalha contabiliza a tentativa fracassada. Agenda a próxima com
// recuo exponencial (1min, 2min, 4min... teto de 1h) e, esgotado o
// limite, descarta o envio para tratamento do operador.
func (r *Repository) RegistrarFalha(envio *EnvioContabil, motivo string) error {
	envio.Tentativas++
	envio.UltimoErro = motivo

	if envio.Tentativas >= MaxTentativas {
		envio.Status = StatusDescartado
	} else {
		espera := time.Minute << (envio.Tentativas - 1)
		if espera > time.Hour {
			espera = time.Hour
		}
		envio.ProximaTentativa = time.Now().UTC().Add(espera)
	}
	return r.DB.Save(envio).Error
}
