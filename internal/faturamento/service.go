package faturamento

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VitrineServicos/api-financeiro/internal/contabilidade"
	"github.com/VitrineServicos/api-financeiro/internal/demonstrativo"
	"github.com/VitrineServicos/api-financeiro/internal/fatura"
	"github.com/VitrineServicos/api-financeiro/internal/indicacao"
	"github.com/VitrineServicos/api-financeiro/internal/lancamento"
	"github.com/VitrineServicos/api-financeiro/internal/perfilcobranca"
	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
)

// ConclusaoPedido é o evento de entrada: um pedido acabou de ser
// concluído e a cobrança precisa ser gerada.
type ConclusaoPedido struct {
	PedidoID      uint
	ParceiroID    uint
	ValorPedido   decimal.Decimal
	ComissaoBruta decimal.Decimal
}

// Servico orquestra a conclusão de um pedido: resolve a taxa de
// indicação, calcula o demonstrativo e persiste fatura, lançamentos e
// envio contábil pendente numa única transação.
type Servico struct {
	DB          *gorm.DB
	Config      tarifas.ConfiguracaoTarifas
	Resolver    *indicacao.Resolver
	Faturas     *fatura.Repository
	Lancamentos *lancamento.Repository
	Perfis      *perfilcobranca.Repository
	Envios      *contabilidade.Repository
	Logger      *zap.Logger
}

func NewServico(
	db *gorm.DB,
	cfg tarifas.ConfiguracaoTarifas,
	resolver *indicacao.Resolver,
	faturas *fatura.Repository,
	lancamentos *lancamento.Repository,
	perfis *perfilcobranca.Repository,
	envios *contabilidade.Repository,
	logger *zap.Logger,
) *Servico {
	return &Servico{
		DB:          db,
		Config:      cfg,
		Resolver:    resolver,
		Faturas:     faturas,
		Lancamentos: lancamentos,
		Perfis:      perfis,
		Envios:      envios,
		Logger:      logger,
	}
}

// ProcessarConclusao emite a fatura e os lançamentos do pedido.
//
// Reentrante por construção: o gatilho pode chegar mais de uma vez e a
// segunda chamada devolve a fatura já existente (criada=false) sem tocar
// no banco. A corrida entre duas conclusões simultâneas do mesmo pedido é
// decidida pelo índice único em pedido_id — quem perde lê o registro do
// vencedor e também devolve reentrega, nunca erro.
func (s *Servico) ProcessarConclusao(ctx context.Context, pedido ConclusaoPedido) (*fatura.Fatura, bool, error) {
	if pedido.ValorPedido.IsNegative() || pedido.ComissaoBruta.IsNegative() {
		return nil, false, fmt.Errorf("pedido %d com valores negativos na entrada", pedido.PedidoID)
	}

	// caminho rápido de reentrega
	if existente, err := s.Faturas.BuscarPorPedido(pedido.PedidoID); err != nil {
		return nil, false, err
	} else if existente != nil {
		s.Logger.Info("conclusão reentregue, fatura já emitida",
			zap.Uint("pedidoId", pedido.PedidoID),
			zap.Uint("faturaId", existente.ID))
		return existente, false, nil
	}

	taxaIndicacao, err := s.Resolver.TaxaEfetiva(pedido.ParceiroID)
	if err != nil {
		return nil, false, fmt.Errorf("resolver taxa de indicação: %w", err)
	}

	dem := demonstrativo.Calcular(pedido.ValorPedido, pedido.ComissaoBruta, taxaIndicacao, s.Config)
	if divergencias := demonstrativo.Validar(dem, pedido.ValorPedido, s.Config); len(divergencias) > 0 {
		// o cálculo e a conferência são passos separados; divergência
		// aqui é tratada como fatal para ESTE pedido
		return nil, false, fmt.Errorf("demonstrativo do pedido %d não confere: %v", pedido.PedidoID, divergencias)
	}

	perfilCob, err := s.Perfis.BuscarPorParceiro(pedido.ParceiroID)
	if err != nil {
		return nil, false, fmt.Errorf("carregar perfil de cobrança: %w", err)
	}

	nova := fatura.Fatura{
		ParceiroID:        pedido.ParceiroID,
		PedidoID:          pedido.PedidoID,
		Moeda:             "BRL",
		ValorPedido:       pedido.ValorPedido,
		ComissaoBruta:     dem.ComissaoBruta,
		ComissaoLiquida:   dem.ComissaoLiquida,
		ImpostoComissao:   dem.ImpostoComissao,
		ValorIndicacao:    dem.ValorIndicacao,
		TarifaPagamento:   dem.TarifaPagamento,
		ReceitaPlataforma: dem.ReceitaPlataforma,
		ImpostoReceita:    dem.ImpostoReceita,
		TotalFatura:       dem.TotalFatura,
		EmitidaEm:         time.Now().UTC(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Faturas.WithDB(tx).Criar(&nova); err != nil {
			return err
		}

		lancs := []*lancamento.Lancamento{
			{PedidoID: pedido.PedidoID, FaturaID: nova.ID, Tipo: lancamento.TipoReceitaPlataforma, Valor: dem.ReceitaPlataforma},
			{PedidoID: pedido.PedidoID, FaturaID: nova.ID, Tipo: lancamento.TipoRepasseIndicacao, Valor: dem.ValorIndicacao},
			{PedidoID: pedido.PedidoID, FaturaID: nova.ID, Tipo: lancamento.TipoTarifaPagamento, Valor: dem.TarifaPagamento},
			{PedidoID: pedido.PedidoID, FaturaID: nova.ID, Tipo: lancamento.TipoImpostoComissao, Valor: dem.ImpostoComissao},
			{PedidoID: pedido.PedidoID, FaturaID: nova.ID, Tipo: lancamento.TipoImpostoReceita, Valor: dem.ImpostoReceita},
		}
		if err := s.Lancamentos.WithDB(tx).CriarEmLote(lancs); err != nil {
			return err
		}

		// o envio contábil devido fica registrado na mesma transação;
		// o processador o despacha depois, fora daqui
		if perfilCob != nil && perfilCob.MetodoEntregaFatura == perfilcobranca.EntregaNotaEletronica {
			envio := &contabilidade.EnvioContabil{
				FaturaID:         nova.ID,
				Status:           contabilidade.StatusPendente,
				ProximaTentativa: time.Now().UTC(),
			}
			if err := s.Envios.WithDB(tx).Criar(envio); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existente, berr := s.Faturas.BuscarPorPedido(pedido.PedidoID)
			if berr != nil || existente == nil {
				return nil, false, fmt.Errorf("conflito de fatura do pedido %d sem registro legível: %w", pedido.PedidoID, err)
			}
			s.Logger.Info("corrida de conclusão decidida pela restrição única",
				zap.Uint("pedidoId", pedido.PedidoID),
				zap.Uint("faturaId", existente.ID))
			return existente, false, nil
		}
		return nil, false, err
	}

	s.Logger.Info("fatura emitida",
		zap.Uint("pedidoId", pedido.PedidoID),
		zap.Uint("faturaId", nova.ID),
		zap.String("taxaIndicacao", taxaIndicacao.String()),
		zap.String("totalFatura", dem.TotalFatura.StringFixed(2)),
		zap.Bool("receitaNegativa", dem.ReceitaPlataforma.IsNegative()))
	return &nova, true, nil
}
