package perfilcobranca

// SalvarPerfilDTO é o corpo aceito no PUT administrativo do perfil de
// cobrança.
type SalvarPerfilDTO struct {
	TipoCobranca        string `json:"tipoCobranca" validate:"required,oneof=PESSOAL EMPRESA"`
	RazaoSocial         string `json:"razaoSocial" validate:"required,max=255"`
	Documento           string `json:"documento" validate:"omitempty,max=18"`
	InscricaoEstadual   string `json:"inscricaoEstadual" validate:"omitempty,max=20"`
	Endereco            string `json:"endereco" validate:"omitempty,max=500"`
	MetodoEntregaFatura string `json:"metodoEntregaFatura" validate:"required,oneof=SOMENTE_PDF NOTA_ELETRONICA ENVIO_MANUAL"`
}
