package contabilidade

import (
	"time"

	"gorm.io/gorm"
)

// Status de um envio contábil.
const (
	StatusPendente   = "PENDENTE"
	StatusConcluido  = "CONCLUIDO"
	StatusDescartado = "DESCARTADO"
)

// MaxTentativas é o limite antes do envio ser descartado para o operador.
const MaxTentativas = 5

// EnvioContabil é a linha de outbox do envio à contabilidade externa.
// Gravada na MESMA transação da fatura: se o processo cair entre o commit
// e o despacho, o trabalho devido continua registrado e o processador o
// retoma. Substitui o disparo fire-and-forget que perdia envios em
// silêncio.
type EnvioContabil struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FaturaID uint `gorm:"not null;uniqueIndex" json:"faturaId"`

	Status     string `gorm:"size:20;not null;default:'PENDENTE';index" json:"status"`
	Tentativas int    `gorm:"not null;default:0" json:"tentativas"`

	ProximaTentativa time.Time `gorm:"not null;index" json:"proximaTentativa"`
	UltimoErro       string    `gorm:"size:500" json:"ultimoErro,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EnvioContabil{})
}
