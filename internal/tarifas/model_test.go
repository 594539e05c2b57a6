package tarifas

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadraoEhValida(t *testing.T) {
	require.NoError(t, Padrao().Validar())
}

func TestValidarDistribuicaoForaDaTolerancia(t *testing.T) {
	cfg := Padrao()
	// desloca a soma em 2e-4, acima da tolerância de 1e-4
	cfg.Distribuicao.Imposto = cfg.Distribuicao.Imposto.Add(decimal.NewFromFloat(0.0002))

	err := cfg.Validar()
	require.Error(t, err)

	var ec *ErroConfiguracao
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, "distribuicao", ec.Campo)
}

func TestValidarDistribuicaoDentroDaTolerancia(t *testing.T) {
	cfg := Padrao()
	// desvio de 5e-5 ainda é aceito
	cfg.Distribuicao.Imposto = cfg.Distribuicao.Imposto.Add(decimal.NewFromFloat(0.00005))
	assert.NoError(t, cfg.Validar())
}

func TestValidarTaxasForaDoIntervalo(t *testing.T) {
	casos := []struct {
		nome    string
		ajustar func(*ConfiguracaoTarifas)
		campo   string
	}{
		{"imposto negativo", func(c *ConfiguracaoTarifas) { c.TaxaImposto = decimal.NewFromFloat(-0.01) }, "taxaImposto"},
		{"pagamento acima de 1", func(c *ConfiguracaoTarifas) { c.TaxaPagamento = decimal.NewFromFloat(1.5) }, "taxaPagamento"},
		{"indicacao acima de 1", func(c *ConfiguracaoTarifas) { c.TaxaIndicacaoBase = decimal.NewFromInt(2) }, "taxaIndicacaoBase"},
		{"bonus negativo", func(c *ConfiguracaoTarifas) { c.BonusPorRank = decimal.NewFromFloat(-1) }, "bonusPorRank"},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			cfg := Padrao()
			caso.ajustar(&cfg)

			var ec *ErroConfiguracao
			require.ErrorAs(t, cfg.Validar(), &ec)
			assert.Equal(t, caso.campo, ec.Campo)
		})
	}
}

func TestCarregarDoAmbiente(t *testing.T) {
	t.Run("usa padrões quando ambiente vazio", func(t *testing.T) {
		cfg, err := CarregarDoAmbiente()
		require.NoError(t, err)
		assert.True(t, cfg.TaxaImposto.Equal(decimal.NewFromFloat(0.20)))
	})

	t.Run("sobrescreve pelo ambiente", func(t *testing.T) {
		t.Setenv("TAXA_PAGAMENTO", "0.05")
		cfg, err := CarregarDoAmbiente()
		require.NoError(t, err)
		assert.True(t, cfg.TaxaPagamento.Equal(decimal.NewFromFloat(0.05)))
	})

	t.Run("valor ilegível é erro", func(t *testing.T) {
		t.Setenv("TAXA_IMPOSTO", "vinte")
		_, err := CarregarDoAmbiente()
		require.Error(t, err)
	})

	t.Run("taxa fora do intervalo é fatal", func(t *testing.T) {
		t.Setenv("TAXA_IMPOSTO", "1.2")
		_, err := CarregarDoAmbiente()
		var ec *ErroConfiguracao
		require.ErrorAs(t, err, &ec)
	})
}
