package contabilidade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ClienteHTTP fala com o provedor contábil por JSON sobre HTTP, com
// timeout próprio — o envio roda fora da transação da fatura e nunca
// pode segurá-la.
type ClienteHTTP struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClienteHTTP(baseURL, token string) *ClienteHTTP {
	return &ClienteHTTP{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CriarNotaFiscal envia a nota e devolve o identificador do provedor.
func (c *ClienteHTTP) CriarNotaFiscal(ctx context.Context, nota NotaFiscal) (string, error) {
	corpo, err := json.Marshal(nota)
	if err != nil {
		return "", fmt.Errorf("serializar nota fiscal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/notas-fiscais", bytes.NewReader(corpo))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("enviar nota fiscal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("provedor contábil respondeu %d", resp.StatusCode)
	}

	var retorno struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&retorno); err != nil {
		return "", fmt.Errorf("decodificar resposta do provedor: %w", err)
	}
	if retorno.ID == "" {
		return "", fmt.Errorf("provedor contábil não devolveu id")
	}
	return retorno.ID, nil
}

// ExportarLivro baixa o livro contábil do período no formato do provedor.
func (c *ClienteHTTP) ExportarLivro(ctx context.Context, de, ate time.Time) ([]byte, error) {
	params := url.Values{}
	params.Set("de", de.Format(time.RFC3339))
	params.Set("ate", ate.Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/livro?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exportar livro: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("provedor contábil respondeu %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
