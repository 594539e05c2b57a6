package demonstrativo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
)

func TestValidarDemonstrativoIntegro(t *testing.T) {
	cfg := tarifas.Padrao()
	dem := Calcular(d("1000"), d("100"), d("0.25"), cfg)
	assert.Empty(t, Validar(dem, d("1000"), cfg))
}

func TestValidarApontaCampoAdulterado(t *testing.T) {
	cfg := tarifas.Padrao()

	casos := []struct {
		nome  string
		mexer func(*Demonstrativo)
		campo string
	}{
		{"receita inflada", func(dm *Demonstrativo) { dm.ReceitaPlataforma = dm.ReceitaPlataforma.Add(d("5")) }, "receitaPlataforma"},
		{"tarifa trocada", func(dm *Demonstrativo) { dm.TarifaPagamento = d("0.50") }, "tarifaPagamento"},
		{"imposto da comissão sumiu", func(dm *Demonstrativo) { dm.ImpostoComissao = decimal.Zero }, "comissaoBruta"},
		{"total não fecha", func(dm *Demonstrativo) { dm.TotalFatura = dm.TotalFatura.Sub(d("1")) }, "totalFatura"},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			dem := Calcular(d("1000"), d("100"), d("0.25"), cfg)
			caso.mexer(&dem)

			erros := Validar(dem, d("1000"), cfg)
			require.NotEmpty(t, erros)

			campos := make([]string, 0, len(erros))
			for _, e := range erros {
				campos = append(campos, e.Campo)
			}
			assert.Contains(t, campos, caso.campo)
		})
	}
}

func TestValidarReportaTodasAsDivergencias(t *testing.T) {
	// campos adulterados em cascata: cada conferência reporta a sua,
	// nada é corrigido em silêncio
	cfg := tarifas.Padrao()
	dem := Calcular(d("1000"), d("100"), d("0.25"), cfg)
	dem.ReceitaPlataforma = dem.ReceitaPlataforma.Add(d("10"))

	erros := Validar(dem, d("1000"), cfg)
	// receita errada derruba a própria conferência, a do imposto sobre a
	// receita e a do total
	assert.Len(t, erros, 3)
}

func TestValidarToleraDesvioDeCentavo(t *testing.T) {
	cfg := tarifas.Padrao()
	dem := Calcular(d("1000"), d("100"), d("0.25"), cfg)
	// desvio de meio centavo fica dentro da tolerância
	dem.TotalFatura = dem.TotalFatura.Add(d("0.005"))
	assert.Empty(t, Validar(dem, d("1000"), cfg))

	// dois centavos, não
	dem.TotalFatura = dem.TotalFatura.Add(d("0.02"))
	assert.NotEmpty(t, Validar(dem, d("1000"), cfg))
}

func TestErroValidacaoMensagem(t *testing.T) {
	e := ErroValidacao{Campo: "totalFatura", Esperado: d("27"), Obtido: d("26")}
	assert.Contains(t, e.Error(), "totalFatura")
}
