package indicacao

// AtualizarPerfilDTO é o corpo aceito no PUT administrativo do perfil.
// TaxaPersonalizada nula remove o acordo e volta para a tabela de bônus.
type AtualizarPerfilDTO struct {
	Nivel             int      `json:"nivel" validate:"gte=0,lte=5"`
	Rank              int      `json:"rank" validate:"gte=0,lte=4"`
	TaxaPersonalizada *float64 `json:"taxaPersonalizada" validate:"omitempty,gte=0,lte=1"`
}

// PerfilComTaxaDTO devolve o perfil junto da taxa efetiva já resolvida.
type PerfilComTaxaDTO struct {
	Perfil      *PerfilIndicacao `json:"perfil,omitempty"`
	TaxaEfetiva string           `json:"taxaEfetiva"`
}
