package indicacao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Handler gerencia as rotas administrativas do perfil de indicação.
type Handler struct {
	Repo     *Repository
	Resolver *Resolver
}

func NewHandler(repo *Repository, resolver *Resolver) *Handler {
	return &Handler{Repo: repo, Resolver: resolver}
}

// Consultar trata GET /parceiros/{id}/perfil-indicacao
// Devolve o perfil (se houver) e a taxa efetiva resolvida.
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	parceiroID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de parceiro inválido", http.StatusBadRequest)
		return
	}

	perfil, err := h.Repo.BuscarPorParceiro(uint(parceiroID))
	if err != nil {
		http.Error(w, "Erro ao buscar perfil", http.StatusInternalServerError)
		return
	}
	taxa, err := h.Resolver.TaxaEfetiva(uint(parceiroID))
	if err != nil {
		http.Error(w, "Erro ao resolver taxa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PerfilComTaxaDTO{
		Perfil:      perfil,
		TaxaEfetiva: taxa.String(),
	})
}

// Atualizar trata PUT /parceiros/{id}/perfil-indicacao
// Garante o registro (criação explícita, nunca escondida numa leitura) e
// aplica nível, rank e taxa personalizada.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	parceiroID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de parceiro inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto AtualizarPerfilDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "Campos fora do intervalo permitido", http.StatusBadRequest)
		return
	}

	perfil, err := h.Repo.GarantirPerfil(uint(parceiroID))
	if err != nil {
		http.Error(w, "Erro ao garantir perfil", http.StatusInternalServerError)
		return
	}

	perfil.Nivel = dto.Nivel
	perfil.Rank = dto.Rank
	if dto.TaxaPersonalizada != nil {
		taxa := decimal.NewFromFloat(*dto.TaxaPersonalizada)
		perfil.TaxaPersonalizada = &taxa
	} else {
		perfil.TaxaPersonalizada = nil
	}

	if err := h.Repo.Atualizar(perfil); err != nil {
		http.Error(w, "Erro ao atualizar perfil", http.StatusInternalServerError)
		return
	}

	taxa, err := h.Resolver.TaxaEfetiva(uint(parceiroID))
	if err != nil {
		http.Error(w, "Erro ao resolver taxa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PerfilComTaxaDTO{
		Perfil:      perfil,
		TaxaEfetiva: taxa.String(),
	})
}
