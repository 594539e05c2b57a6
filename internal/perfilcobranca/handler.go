package perfilcobranca

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// Handler gerencia as rotas do perfil de cobrança.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Consultar trata GET /parceiros/{id}/perfil-cobranca
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	parceiroID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de parceiro inválido", http.StatusBadRequest)
		return
	}

	perfil, err := h.Repo.BuscarPorParceiro(uint(parceiroID))
	if err != nil {
		http.Error(w, "Erro ao buscar perfil de cobrança", http.StatusInternalServerError)
		return
	}
	if perfil == nil {
		http.Error(w, "Perfil de cobrança não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(perfil)
}

// Salvar trata PUT /parceiros/{id}/perfil-cobranca
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	parceiroID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de parceiro inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto SalvarPerfilDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "Campos obrigatórios ausentes ou inválidos", http.StatusBadRequest)
		return
	}

	perfil := PerfilCobranca{
		ParceiroID:          uint(parceiroID),
		TipoCobranca:        dto.TipoCobranca,
		RazaoSocial:         dto.RazaoSocial,
		Documento:           dto.Documento,
		InscricaoEstadual:   dto.InscricaoEstadual,
		Endereco:            dto.Endereco,
		MetodoEntregaFatura: dto.MetodoEntregaFatura,
	}
	if err := h.Repo.Salvar(&perfil); err != nil {
		http.Error(w, "Erro ao salvar perfil de cobrança", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(perfil)
}
