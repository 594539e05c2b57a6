package auth

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/VitrineServicos/api-financeiro/internal/utils"
)

// Handler gerencia o login administrativo. As credenciais vêm do
// ambiente (ADMIN_EMAIL e ADMIN_SENHA_HASH, hash bcrypt).
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type loginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login trata POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto loginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	senhaHash := os.Getenv("ADMIN_SENHA_HASH")
	if email == "" || senhaHash == "" {
		http.Error(w, "Login administrativo não configurado", http.StatusServiceUnavailable)
		return
	}
	if dto.Email != email || !utils.VerificarSenha(senhaHash, dto.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(1, true)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}
