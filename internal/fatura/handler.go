package fatura

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/VitrineServicos/api-financeiro/internal/demonstrativo"
	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
)

// Handler gerencia as rotas de consulta de faturas.
type Handler struct {
	Repo   *Repository
	Config tarifas.ConfiguracaoTarifas
}

func NewHandler(repo *Repository, cfg tarifas.ConfiguracaoTarifas) *Handler {
	return &Handler{Repo: repo, Config: cfg}
}

// Buscar trata GET /faturas/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de fatura inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Fatura não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f)
}

// BuscarPorPedido trata GET /pedidos/{id}/fatura
func (h *Handler) BuscarPorPedido(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pedido inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repo.BuscarPorPedido(uint(pedidoID))
	if err != nil {
		http.Error(w, "Erro ao buscar fatura", http.StatusInternalServerError)
		return
	}
	if f == nil {
		http.Error(w, "Pedido ainda sem fatura", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f)
}

// ListarPorParceiro trata GET /parceiros/{id}/faturas
func (h *Handler) ListarPorParceiro(w http.ResponseWriter, r *http.Request) {
	parceiroID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de parceiro inválido", http.StatusBadRequest)
		return
	}

	faturas, err := h.Repo.ListarPorParceiro(uint(parceiroID))
	if err != nil {
		http.Error(w, "Erro ao listar faturas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(faturas)
}

// resultadoConferencia é a resposta da auditoria de uma fatura.
type resultadoConferencia struct {
	FaturaID      uint                           `json:"faturaId"`
	Valida        bool                           `json:"valida"`
	Divergencias  []demonstrativo.ErroValidacao  `json:"divergencias,omitempty"`
	Demonstrativo demonstrativo.DemonstrativoDTO `json:"demonstrativo"`
}

// Conferir trata GET /faturas/{id}/conferencia
// Reconstrói o demonstrativo a partir dos campos persistidos e o submete
// às mesmas conferências feitas na emissão. Divergência é reportada,
// nunca corrigida.
func (h *Handler) Conferir(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de fatura inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Fatura não encontrada", http.StatusNotFound)
		return
	}

	dem := f.Demonstrativo()
	divergencias := demonstrativo.Validar(dem, f.ValorPedido, h.Config)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultadoConferencia{
		FaturaID:      f.ID,
		Valida:        len(divergencias) == 0,
		Divergencias:  divergencias,
		Demonstrativo: dem.Arredondado(),
	})
}
