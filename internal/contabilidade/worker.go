package contabilidade

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/VitrineServicos/api-financeiro/internal/fatura"
	"github.com/VitrineServicos/api-financeiro/internal/perfilcobranca"
)

// Processador drena a outbox de envios contábeis. Roda num laço próprio,
// desacoplado da transação que emitiu a fatura: falha aqui nunca desfaz
// nem bloqueia o registro financeiro já commitado.
type Processador struct {
	Envios     *Repository
	Faturas    *fatura.Repository
	Perfis     *perfilcobranca.Repository
	Integracao Integracao
	Logger     *zap.Logger

	Intervalo   time.Duration
	TamanhoLote int
}

func NewProcessador(envios *Repository, faturas *fatura.Repository, perfis *perfilcobranca.Repository, integracao Integracao, logger *zap.Logger) *Processador {
	return &Processador{
		Envios:      envios,
		Faturas:     faturas,
		Perfis:      perfis,
		Integracao:  integracao,
		Logger:      logger,
		Intervalo:   15 * time.Second,
		TamanhoLote: 20,
	}
}

// Executar processa a outbox até o contexto ser cancelado.
func (p *Processador) Executar(ctx context.Context) {
	ticker := time.NewTicker(p.Intervalo)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Logger.Info("processador de envios contábeis encerrado")
			return
		case <-ticker.C:
			p.ProcessarLote(ctx)
		}
	}
}

// ProcessarLote despacha os envios vencidos da vez.
func (p *Processador) ProcessarLote(ctx context.Context) {
	envios, err := p.Envios.BuscarVencidos(p.TamanhoLote)
	if err != nil {
		p.Logger.Error("erro ao buscar envios pendentes", zap.Error(err))
		return
	}
	for i := range envios {
		p.processarEnvio(ctx, &envios[i])
	}
}

func (p *Processador) processarEnvio(ctx context.Context, envio *EnvioContabil) {
	log := p.Logger.With(zap.Uint("envioId", envio.ID), zap.Uint("faturaId", envio.FaturaID))

	f, err := p.Faturas.BuscarPorID(envio.FaturaID)
	if err != nil {
		p.registrarFalha(envio, "fatura não encontrada: "+err.Error(), log)
		return
	}

	// reexecução segura: a fatura já tem o id externo, só falta fechar
	// a linha da outbox
	if f.IDContabilExterno != nil {
		if err := p.Envios.MarcarConcluido(envio.ID); err != nil {
			log.Error("erro ao concluir envio já sincronizado", zap.Error(err))
		}
		return
	}

	perfil, err := p.Perfis.BuscarPorParceiro(f.ParceiroID)
	if err != nil {
		p.registrarFalha(envio, "erro ao carregar perfil de cobrança: "+err.Error(), log)
		return
	}
	// o método de entrega pode ter mudado desde a emissão; só a nota
	// eletrônica passa por aqui
	if perfil == nil || perfil.MetodoEntregaFatura != perfilcobranca.EntregaNotaEletronica {
		if err := p.Envios.MarcarConcluido(envio.ID); err != nil {
			log.Error("erro ao concluir envio sem destino", zap.Error(err))
		}
		log.Info("envio dispensado: método de entrega não exige contabilidade externa")
		return
	}

	idExterno, err := p.Integracao.CriarNotaFiscal(ctx, montarNota(f, perfil))
	if err != nil {
		p.registrarFalha(envio, err.Error(), log)
		return
	}

	// patch idempotente: repetir com o mesmo id é inócuo
	if err := p.Faturas.AtualizarIDContabil(f.ID, idExterno); err != nil {
		p.registrarFalha(envio, "nota emitida mas patch falhou: "+err.Error(), log)
		return
	}
	if err := p.Envios.MarcarConcluido(envio.ID); err != nil {
		log.Error("erro ao concluir envio", zap.Error(err))
		return
	}
	log.Info("nota fiscal sincronizada", zap.String("idContabilExterno", idExterno))
}

func (p *Processador) registrarFalha(envio *EnvioContabil, motivo string, log *zap.Logger) {
	if err := p.Envios.RegistrarFalha(envio, motivo); err != nil {
		log.Error("erro ao registrar falha de envio", zap.Error(err))
		return
	}
	if envio.Status == StatusDescartado {
		// terminal: visível ao operador, nada de perda silenciosa
		log.Error("envio contábil descartado após esgotar tentativas",
			zap.Int("tentativas", envio.Tentativas),
			zap.String("ultimoErro", motivo))
		return
	}
	log.Warn("falha no envio contábil, nova tentativa agendada",
		zap.Int("tentativas", envio.Tentativas),
		zap.Time("proximaTentativa", envio.ProximaTentativa),
		zap.String("motivo", motivo))
}

func montarNota(f *fatura.Fatura, perfil *perfilcobranca.PerfilCobranca) NotaFiscal {
	dem := f.Demonstrativo().Arredondado()
	return NotaFiscal{
		NomeParceiro:      perfil.RazaoSocial,
		Documento:         perfil.Documento,
		TipoCobranca:      perfil.TipoCobranca,
		InscricaoEstadual: perfil.InscricaoEstadual,
		Endereco:          perfil.Endereco,
		ComissaoBruta:     dem.ComissaoBruta,
		ValorIndicacao:    dem.ValorIndicacao,
		TarifaPagamento:   dem.TarifaPagamento,
		ReceitaPlataforma: dem.ReceitaPlataforma,
		ValorImposto:      dem.ImpostoReceita,
		ValorTotal:        dem.TotalFatura,
		EmitidaEm:         f.EmitidaEm,
	}
}
