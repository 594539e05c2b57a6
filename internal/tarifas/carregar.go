package tarifas

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// CarregarDoAmbiente monta a configuração a partir das variáveis de
// ambiente, caindo nos valores padrão quando ausentes, e devolve a
// configuração já validada. Consumidores nunca leem campos crus: toda
// configuração que circula pelo sistema passou por aqui (ou por Validar).
func CarregarDoAmbiente() (ConfiguracaoTarifas, error) {
	cfg := Padrao()

	var err error
	if cfg.TaxaImposto, err = lerTaxa("TAXA_IMPOSTO", cfg.TaxaImposto); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.TaxaPagamento, err = lerTaxa("TAXA_PAGAMENTO", cfg.TaxaPagamento); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.TaxaIndicacaoBase, err = lerTaxa("TAXA_INDICACAO_BASE", cfg.TaxaIndicacaoBase); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.BonusPorRank, err = lerTaxa("BONUS_POR_RANK", cfg.BonusPorRank); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.Distribuicao.Imposto, err = lerTaxa("DISTRIBUICAO_IMPOSTO", cfg.Distribuicao.Imposto); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.Distribuicao.TarifaPagamento, err = lerTaxa("DISTRIBUICAO_TARIFA_PAGAMENTO", cfg.Distribuicao.TarifaPagamento); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.Distribuicao.Indicacao, err = lerTaxa("DISTRIBUICAO_INDICACAO", cfg.Distribuicao.Indicacao); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	if cfg.Distribuicao.ReceitaLiquida, err = lerTaxa("DISTRIBUICAO_RECEITA_LIQUIDA", cfg.Distribuicao.ReceitaLiquida); err != nil {
		return ConfiguracaoTarifas{}, err
	}

	if err := cfg.Validar(); err != nil {
		return ConfiguracaoTarifas{}, err
	}
	return cfg, nil
}

func lerTaxa(chave string, padrao decimal.Decimal) (decimal.Decimal, error) {
	bruto := os.Getenv(chave)
	if bruto == "" {
		return padrao, nil
	}
	valor, err := decimal.NewFromString(bruto)
	if err != nil {
		return decimal.Zero, fmt.Errorf("variável %s com valor inválido %q: %w", chave, bruto, err)
	}
	return valor, nil
}
