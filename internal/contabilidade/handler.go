package contabilidade

import (
	"net/http"
	"time"
)

// Handler expõe a exportação do livro contábil do provedor externo.
type Handler struct {
	Integracao Integracao
}

func NewHandler(integracao Integracao) *Handler {
	return &Handler{Integracao: integracao}
}

// ExportarLivro trata GET /contabilidade/livro?inicio=RFC3339&fim=RFC3339
// Repassa os bytes do provedor sem interpretar: o formato é dele.
func (h *Handler) ExportarLivro(w http.ResponseWriter, r *http.Request) {
	de, err := time.Parse(time.RFC3339, r.URL.Query().Get("inicio"))
	if err != nil {
		http.Error(w, "Parâmetro 'inicio' inválido (use RFC3339)", http.StatusBadRequest)
		return
	}
	ate, err := time.Parse(time.RFC3339, r.URL.Query().Get("fim"))
	if err != nil {
		http.Error(w, "Parâmetro 'fim' inválido (use RFC3339)", http.StatusBadRequest)
		return
	}

	livro, err := h.Integracao.ExportarLivro(r.Context(), de, ate)
	if err != nil {
		http.Error(w, "Erro ao exportar livro contábil", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(livro)
}
