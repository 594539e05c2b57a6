package indicacao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PerfilIndicacao guarda os parâmetros de repasse de indicação de um
// parceiro. Relação 1-1 opcional: parceiro sem registro resolve na taxa
// base. Criado por ação explícita (GarantirPerfil), alterado por ação
// administrativa, nunca apagado enquanto o parceiro existir.
type PerfilIndicacao struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ParceiroID uint `gorm:"not null;uniqueIndex" json:"parceiroId"`

	// Nível de senioridade na rede de indicação (0 a 5). Níveis mais
	// antigos recebem bônus maior.
	Nivel int `gorm:"not null;default:0" json:"nivel"`
	// Rank de desempenho (0 a 4), cada ponto soma o bônus fixo da
	// configuração.
	Rank int `gorm:"not null;default:0" json:"rank"`

	// Taxa negociada caso a caso. Quando preenchida vale sozinha e
	// ignora nível e rank.
	TaxaPersonalizada *decimal.Decimal `gorm:"type:numeric(8,6)" json:"taxaPersonalizada,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PerfilIndicacao{})
}
