package contabilidade

import (
	"context"
	"time"
)

// NotaFiscal é o payload enviado ao provedor contábil na emissão da nota
// de venda. Valores monetários já arredondados a duas casas, como string
// (borda de serialização).
type NotaFiscal struct {
	NomeParceiro      string `json:"nomeParceiro"`
	Documento         string `json:"documento,omitempty"`
	TipoCobranca      string `json:"tipoCobranca"`
	InscricaoEstadual string `json:"inscricaoEstadual,omitempty"`
	Endereco          string `json:"endereco,omitempty"`

	ComissaoBruta     string `json:"comissaoBruta"`
	ValorIndicacao    string `json:"valorIndicacao"`
	TarifaPagamento   string `json:"tarifaPagamento"`
	ReceitaPlataforma string `json:"receitaPlataforma"`
	ValorImposto      string `json:"valorImposto"`
	ValorTotal        string `json:"valorTotal"`

	EmitidaEm time.Time `json:"emitidaEm"`
}

// Integracao abstrai o provedor contábil externo. O formato do livro
// exportado é do fornecedor; este núcleo o trata como bytes opacos.
type Integracao interface {
	CriarNotaFiscal(ctx context.Context, nota NotaFiscal) (string, error)
	ExportarLivro(ctx context.Context, de, ate time.Time) ([]byte, error)
}
