package contabilidade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VitrineServicos/api-financeiro/internal/fatura"
	"github.com/VitrineServicos/api-financeiro/internal/perfilcobranca"
)

type integracaoFalsa struct {
	id       string
	err      error
	chamadas int
	ultima   NotaFiscal
}

func (i *integracaoFalsa) CriarNotaFiscal(ctx context.Context, nota NotaFiscal) (string, error) {
	i.chamadas++
	i.ultima = nota
	if i.err != nil {
		return "", i.err
	}
	return i.id, nil
}

func (i *integracaoFalsa) ExportarLivro(ctx context.Context, de, ate time.Time) ([]byte, error) {
	return nil, errors.New("não usado no teste")
}

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	banco, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, banco.AutoMigrate(
		&perfilcobranca.PerfilCobranca{},
		&fatura.Fatura{},
		&EnvioContabil{},
	))
	return banco
}

func faturaDeTeste(t *testing.T, banco *gorm.DB, parceiroID uint) *fatura.Fatura {
	t.Helper()
	f := &fatura.Fatura{
		ParceiroID:        parceiroID,
		PedidoID:          parceiroID * 1000,
		Moeda:             "BRL",
		ValorPedido:       decimal.NewFromInt(1000),
		ComissaoBruta:     decimal.NewFromInt(100),
		ComissaoLiquida:   decimal.RequireFromString("83.33"),
		ImpostoComissao:   decimal.RequireFromString("16.67"),
		ValorIndicacao:    decimal.RequireFromString("20.83"),
		TarifaPagamento:   decimal.NewFromInt(40),
		ReceitaPlataforma: decimal.RequireFromString("22.50"),
		ImpostoReceita:    decimal.RequireFromString("4.50"),
		TotalFatura:       decimal.RequireFromString("27.00"),
		EmitidaEm:         time.Now().UTC(),
	}
	require.NoError(t, banco.Create(f).Error)
	return f
}

func perfilNotaEletronica(t *testing.T, banco *gorm.DB, parceiroID uint) {
	t.Helper()
	require.NoError(t, banco.Create(&perfilcobranca.PerfilCobranca{
		ParceiroID:          parceiroID,
		TipoCobranca:        perfilcobranca.TipoEmpresa,
		RazaoSocial:         "Oficina Boa Vista LTDA",
		Documento:           "12.345.678/0001-90",
		MetodoEntregaFatura: perfilcobranca.EntregaNotaEletronica,
	}).Error)
}

func processadorDeTeste(banco *gorm.DB, integracao Integracao) *Processador {
	return NewProcessador(
		NewRepository(banco),
		fatura.NewRepository(banco),
		perfilcobranca.NewRepository(banco),
		integracao,
		zap.NewNop(),
	)
}

func TestProcessadorDespachaEnvioPendente(t *testing.T) {
	banco := bancoDeTeste(t)
	perfilNotaEletronica(t, banco, 7)
	f := faturaDeTeste(t, banco, 7)
	require.NoError(t, banco.Create(&EnvioContabil{FaturaID: f.ID}).Error)

	integracao := &integracaoFalsa{id: "NF-001"}
	p := processadorDeTeste(banco, integracao)
	p.ProcessarLote(context.Background())

	assert.Equal(t, 1, integracao.chamadas)
	assert.Equal(t, "27.00", integracao.ultima.ValorTotal)

	recarregada, err := fatura.NewRepository(banco).BuscarPorID(f.ID)
	require.NoError(t, err)
	require.NotNil(t, recarregada.IDContabilExterno)
	assert.Equal(t, "NF-001", *recarregada.IDContabilExterno)

	envio, err := NewRepository(banco).BuscarPorFatura(f.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConcluido, envio.Status)
}

func TestProcessadorReagendaFalhaEDescartaNoLimite(t *testing.T) {
	banco := bancoDeTeste(t)
	perfilNotaEletronica(t, banco, 8)
	f := faturaDeTeste(t, banco, 8)
	require.NoError(t, banco.Create(&EnvioContabil{FaturaID: f.ID}).Error)

	integracao := &integracaoFalsa{err: errors.New("provedor fora do ar")}
	p := processadorDeTeste(banco, integracao)
	repo := NewRepository(banco)

	p.ProcessarLote(context.Background())

	envio, err := repo.BuscarPorFatura(f.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPendente, envio.Status)
	assert.Equal(t, 1, envio.Tentativas)
	assert.True(t, envio.ProximaTentativa.After(time.Now().UTC()))
	assert.Contains(t, envio.UltimoErro, "provedor fora do ar")

	// força as demais tentativas sem esperar o recuo
	for i := 1; i < MaxTentativas; i++ {
		require.NoError(t, banco.Model(envio).Update("proxima_tentativa", time.Now().UTC().Add(-time.Second)).Error)
		p.ProcessarLote(context.Background())
	}

	envio, err = repo.BuscarPorFatura(f.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDescartado, envio.Status)
	assert.Equal(t, MaxTentativas, envio.Tentativas)

	// descartado sai da fila: nenhuma chamada além das já feitas
	feitas := integracao.chamadas
	p.ProcessarLote(context.Background())
	assert.Equal(t, feitas, integracao.chamadas)
}

func TestProcessadorDispensaEnvioSemNotaEletronica(t *testing.T) {
	banco := bancoDeTeste(t)
	require.NoError(t, banco.Create(&perfilcobranca.PerfilCobranca{
		ParceiroID:          9,
		TipoCobranca:        perfilcobranca.TipoPessoal,
		RazaoSocial:         "Marina Souza",
		MetodoEntregaFatura: perfilcobranca.EntregaSomentePDF,
	}).Error)
	f := faturaDeTeste(t, banco, 9)
	require.NoError(t, banco.Create(&EnvioContabil{FaturaID: f.ID}).Error)

	integracao := &integracaoFalsa{id: "NF-002"}
	p := processadorDeTeste(banco, integracao)
	p.ProcessarLote(context.Background())

	// método de entrega mudou desde a emissão: fecha sem despachar
	assert.Equal(t, 0, integracao.chamadas)
	envio, err := NewRepository(banco).BuscarPorFatura(f.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConcluido, envio.Status)
}

func TestProcessadorNaoReemiteFaturaJaSincronizada(t *testing.T) {
	banco := bancoDeTeste(t)
	perfilNotaEletronica(t, banco, 10)
	f := faturaDeTeste(t, banco, 10)
	idExistente := "NF-ANTIGA"
	require.NoError(t, banco.Model(f).Update("id_contabil_externo", idExistente).Error)
	require.NoError(t, banco.Create(&EnvioContabil{FaturaID: f.ID}).Error)

	integracao := &integracaoFalsa{id: "NF-NOVA"}
	p := processadorDeTeste(banco, integracao)
	p.ProcessarLote(context.Background())

	assert.Equal(t, 0, integracao.chamadas)

	recarregada, err := fatura.NewRepository(banco).BuscarPorID(f.ID)
	require.NoError(t, err)
	require.NotNil(t, recarregada.IDContabilExterno)
	assert.Equal(t, idExistente, *recarregada.IDContabilExterno)

	envio, err := NewRepository(banco).BuscarPorFatura(f.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConcluido, envio.Status)
}
