package tarifas

import (
	"encoding/json"
	"net/http"
)

// Handler expõe a configuração vigente para consulta administrativa.
// Somente leitura: a configuração muda por deploy, nunca por requisição.
type Handler struct {
	Config ConfiguracaoTarifas
}

func NewHandler(cfg ConfiguracaoTarifas) *Handler {
	return &Handler{Config: cfg}
}

// Consultar trata GET /tarifas
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Config)
}
