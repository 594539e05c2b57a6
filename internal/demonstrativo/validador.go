package demonstrativo

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
)

// Tolerância absoluta de um centavo para as conferências.
var toleranciaCentavo = decimal.NewFromFloat(0.01)

// ErroValidacao aponta um campo do demonstrativo que não fecha com a
// recomputação independente.
type ErroValidacao struct {
	Campo    string          `json:"campo"`
	Esperado decimal.Decimal `json:"esperado"`
	Obtido   decimal.Decimal `json:"obtido"`
}

func (e ErroValidacao) Error() string {
	return fmt.Sprintf("demonstrativo não confere em %s: esperado %s, obtido %s",
		e.Campo, e.Esperado.StringFixed(4), e.Obtido.StringFixed(4))
}

// Validar reconfere cada relação derivada do demonstrativo contra o valor
// do pedido e a configuração, com tolerância de um centavo. Não corrige
// nada: toda divergência é reportada e a decisão fica com o chamador.
//
// Este é o caminho de auditoria, não o de cálculo — serve para verificar
// demonstrativos reconstruídos de uma fatura persistida com as mesmas
// garantias que Calcular dá na construção.
func Validar(d Demonstrativo, valorPedido decimal.Decimal, cfg tarifas.ConfiguracaoTarifas) []ErroValidacao {
	var erros []ErroValidacao
	conferir := func(campo string, esperado, obtido decimal.Decimal) {
		if esperado.Sub(obtido).Abs().GreaterThan(toleranciaCentavo) {
			erros = append(erros, ErroValidacao{Campo: campo, Esperado: esperado, Obtido: obtido})
		}
	}

	// bruta = líquida + imposto embutido
	conferir("comissaoBruta", d.ComissaoLiquida.Add(d.ImpostoComissao), d.ComissaoBruta)

	// tarifa incide sobre o valor do pedido
	conferir("tarifaPagamento", valorPedido.Mul(cfg.TaxaPagamento), d.TarifaPagamento)

	// receita é o resíduo após os dois descontos
	conferir("receitaPlataforma",
		d.ComissaoLiquida.Sub(d.ValorIndicacao).Sub(d.TarifaPagamento),
		d.ReceitaPlataforma)

	// imposto sobre a receita própria
	conferir("impostoReceita", d.ReceitaPlataforma.Mul(cfg.TaxaImposto), d.ImpostoReceita)

	// total faturado
	conferir("totalFatura", d.ReceitaPlataforma.Add(d.ImpostoReceita), d.TotalFatura)

	return erros
}
