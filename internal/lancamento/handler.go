package lancamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de consulta do razonete.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// ListarPorPedido trata GET /pedidos/{id}/lancamentos
func (h *Handler) ListarPorPedido(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pedido inválido", http.StatusBadRequest)
		return
	}

	lancamentos, err := h.Repo.ListarPorPedido(uint(pedidoID))
	if err != nil {
		http.Error(w, "Erro ao listar lançamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lancamentos)
}

// ListarPorPeriodo trata GET /lancamentos?inicio=RFC3339&fim=RFC3339
func (h *Handler) ListarPorPeriodo(w http.ResponseWriter, r *http.Request) {
	de, ate, ok := lerPeriodo(w, r)
	if !ok {
		return
	}

	lancamentos, err := h.Repo.ListarPorPeriodo(de, ate)
	if err != nil {
		http.Error(w, "Erro ao listar lançamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lancamentos)
}

// Saldo trata GET /lancamentos/saldo?tipo=&inicio=&fim=
func (h *Handler) Saldo(w http.ResponseWriter, r *http.Request) {
	tipo := r.URL.Query().Get("tipo")
	if tipo == "" {
		http.Error(w, "O parâmetro 'tipo' é obrigatório", http.StatusBadRequest)
		return
	}
	de, ate, ok := lerPeriodo(w, r)
	if !ok {
		return
	}

	total, err := h.Repo.SomarPorTipo(tipo, de, ate)
	if err != nil {
		http.Error(w, "Erro ao somar lançamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"tipo":  tipo,
		"saldo": total.StringFixed(2),
	})
}

func lerPeriodo(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	de, err := time.Parse(time.RFC3339, r.URL.Query().Get("inicio"))
	if err != nil {
		http.Error(w, "Parâmetro 'inicio' inválido (use RFC3339)", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	ate, err := time.Parse(time.RFC3339, r.URL.Query().Get("fim"))
	if err != nil {
		http.Error(w, "Parâmetro 'fim' inválido (use RFC3339)", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return de, ate, true
}
