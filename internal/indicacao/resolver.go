package indicacao

import (
	"github.com/shopspring/decimal"

	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
)

// Bônus por nível de indicação. Nível 1 (recrutas mais antigos) recebe o
// maior acréscimo e o bônus decresce até o nível 5; nível 0 não soma nada.
var bonusPorNivel = map[int]decimal.Decimal{
	1: decimal.NewFromFloat(0.10),
	2: decimal.NewFromFloat(0.08),
	3: decimal.NewFromFloat(0.06),
	4: decimal.NewFromFloat(0.04),
	5: decimal.NewFromFloat(0.02),
}

// Perfis é o que o resolvedor precisa do repositório: só leitura.
type Perfis interface {
	BuscarPorParceiro(parceiroID uint) (*PerfilIndicacao, error)
}

// Resolver calcula a taxa efetiva de repasse de indicação de um parceiro.
// Sem estado mutável: seguro para uso concorrente.
type Resolver struct {
	Perfis Perfis
	Config tarifas.ConfiguracaoTarifas
}

func NewResolver(perfis Perfis, cfg tarifas.ConfiguracaoTarifas) *Resolver {
	return &Resolver{Perfis: perfis, Config: cfg}
}

// TaxaEfetiva resolve a taxa do parceiro, sempre em [0,1]:
//  1. taxa personalizada, quando existir, vale sozinha e pula os bônus;
//  2. senão, taxa base + bônus do nível + rank * bônus por rank;
//  3. o resultado é limitado a [0,1].
//
// Parceiro sem perfil resolve como nível 0, rank 0: exatamente a base.
func (r *Resolver) TaxaEfetiva(parceiroID uint) (decimal.Decimal, error) {
	perfil, err := r.Perfis.BuscarPorParceiro(parceiroID)
	if err != nil {
		return decimal.Zero, err
	}

	if perfil == nil {
		return limitar(r.Config.TaxaIndicacaoBase), nil
	}
	if perfil.TaxaPersonalizada != nil {
		// acordo explícito vence tudo, inclusive quando é zero
		return *perfil.TaxaPersonalizada, nil
	}

	taxa := r.Config.TaxaIndicacaoBase.
		Add(bonusPorNivel[perfil.Nivel]).
		Add(decimal.NewFromInt(int64(perfil.Rank)).Mul(r.Config.BonusPorRank))
	return limitar(taxa), nil
}

func limitar(taxa decimal.Decimal) decimal.Decimal {
	if taxa.IsNegative() {
		return decimal.Zero
	}
	if taxa.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return taxa
}
