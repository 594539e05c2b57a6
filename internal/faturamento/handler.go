package faturamento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// Handler recebe o gatilho de conclusão de pedido.
type Handler struct {
	Servico *Servico
}

func NewHandler(servico *Servico) *Handler {
	return &Handler{Servico: servico}
}

// ConcluirPedido trata POST /pedidos/{id}/concluir
// Chamado pelo subsistema de pedidos quando o pedido entra em estado
// concluído. A entrega pode se repetir; a resposta distingue emissão nova
// (201) de reentrega (200), nunca devolve erro por duplicata.
func (h *Handler) ConcluirPedido(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pedido inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto ConcluirPedidoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "Campos obrigatórios ausentes", http.StatusBadRequest)
		return
	}
	if dto.ValorPedido.IsNegative() || dto.ComissaoBruta.IsNegative() {
		http.Error(w, "Valores monetários não podem ser negativos", http.StatusBadRequest)
		return
	}

	f, criada, err := h.Servico.ProcessarConclusao(r.Context(), ConclusaoPedido{
		PedidoID:      uint(pedidoID),
		ParceiroID:    dto.ParceiroID,
		ValorPedido:   dto.ValorPedido,
		ComissaoBruta: dto.ComissaoBruta,
	})
	if err != nil {
		http.Error(w, "Erro ao processar conclusão do pedido", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if criada {
		status = http.StatusCreated
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(FaturaEmitidaDTO{
		Fatura:        f,
		Demonstrativo: f.Demonstrativo().Arredondado(),
		Reentrega:     !criada,
	})
}
