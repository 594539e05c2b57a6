package perfilcobranca

import (
	"time"

	"gorm.io/gorm"
)

// Tipo de cobrança do parceiro.
const (
	TipoPessoal = "PESSOAL"
	TipoEmpresa = "EMPRESA"
)

// Método de entrega da fatura. Só NOTA_ELETRONICA dispara a integração
// contábil; os demais são tratados por outros fluxos (PDF e envio manual).
const (
	EntregaSomentePDF     = "SOMENTE_PDF"
	EntregaNotaEletronica = "NOTA_ELETRONICA"
	EntregaEnvioManual    = "ENVIO_MANUAL"
)

// PerfilCobranca guarda a identidade fiscal do parceiro e a preferência de
// entrega de fatura. O núcleo financeiro só lê este registro.
type PerfilCobranca struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ParceiroID uint `gorm:"not null;uniqueIndex" json:"parceiroId"`

	TipoCobranca string `gorm:"size:20;not null;default:'PESSOAL'" json:"tipoCobranca"`

	RazaoSocial       string `gorm:"size:255" json:"razaoSocial"`
	Documento         string `gorm:"size:18" json:"documento"` // CNPJ ou CPF
	InscricaoEstadual string `gorm:"size:20" json:"inscricaoEstadual"`
	Endereco          string `gorm:"size:500" json:"endereco"`

	MetodoEntregaFatura string `gorm:"size:30;not null;default:'SOMENTE_PDF'" json:"metodoEntregaFatura"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PerfilCobranca{})
}
