package contabilidade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notaDeTeste() NotaFiscal {
	return NotaFiscal{
		NomeParceiro:      "Oficina Boa Vista LTDA",
		Documento:         "12.345.678/0001-90",
		TipoCobranca:      "EMPRESA",
		ComissaoBruta:     "100.00",
		ValorIndicacao:    "20.83",
		TarifaPagamento:   "40.00",
		ReceitaPlataforma: "22.50",
		ValorImposto:      "4.50",
		ValorTotal:        "27.00",
		EmitidaEm:         time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestClienteHTTPCriarNotaFiscal(t *testing.T) {
	var recebida NotaFiscal
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notas-fiscais", r.URL.Path)
		assert.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recebida))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "NF-2025-0042"})
	}))
	defer srv.Close()

	c := NewClienteHTTP(srv.URL, "token-de-teste")
	id, err := c.CriarNotaFiscal(context.Background(), notaDeTeste())
	require.NoError(t, err)
	assert.Equal(t, "NF-2025-0042", id)
	assert.Equal(t, "Oficina Boa Vista LTDA", recebida.NomeParceiro)
	assert.Equal(t, "27.00", recebida.ValorTotal)
}

func TestClienteHTTPCriarNotaFiscalErroDoProvedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "indisponível", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClienteHTTP(srv.URL, "token")
	_, err := c.CriarNotaFiscal(context.Background(), notaDeTeste())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClienteHTTPCriarNotaFiscalSemID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewClienteHTTP(srv.URL, "token")
	_, err := c.CriarNotaFiscal(context.Background(), notaDeTeste())
	require.Error(t, err)
}

func TestClienteHTTPExportarLivro(t *testing.T) {
	de := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/livro", r.URL.Path)
		assert.Equal(t, de.Format(time.RFC3339), r.URL.Query().Get("de"))
		assert.Equal(t, ate.Format(time.RFC3339), r.URL.Query().Get("ate"))
		_, _ = w.Write([]byte("conteudo-do-livro"))
	}))
	defer srv.Close()

	c := NewClienteHTTP(srv.URL, "token")
	corpo, err := c.ExportarLivro(context.Background(), de, ate)
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo-do-livro"), corpo)
}
