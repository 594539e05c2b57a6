package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/VitrineServicos/api-financeiro/internal/auth"
	"github.com/VitrineServicos/api-financeiro/internal/contabilidade"
	"github.com/VitrineServicos/api-financeiro/internal/fatura"
	"github.com/VitrineServicos/api-financeiro/internal/faturamento"
	"github.com/VitrineServicos/api-financeiro/internal/indicacao"
	"github.com/VitrineServicos/api-financeiro/internal/lancamento"
	"github.com/VitrineServicos/api-financeiro/internal/perfilcobranca"
	"github.com/VitrineServicos/api-financeiro/internal/tarifas"
	"github.com/VitrineServicos/api-financeiro/internal/utils/db"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Erro ao criar logger:", err)
	}
	defer logger.Sync()

	// Configuração de tarifas: inválida derruba o processo antes de
	// servir qualquer cálculo.
	cfg, err := tarifas.CarregarDoAmbiente()
	if err != nil {
		log.Fatal("Configuração de tarifas inválida:", err)
	}

	if err := auth.Configurar(os.Getenv("JWT_SECRET")); err != nil {
		log.Fatal("JWT_SECRET não definida:", err)
	}

	banco, err := db.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := banco.AutoMigrate(
		&indicacao.PerfilIndicacao{},
		&perfilcobranca.PerfilCobranca{},
		&fatura.Fatura{},
		&lancamento.Lancamento{},
		&contabilidade.EnvioContabil{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Repositórios
	perfisIndicacao := indicacao.NewRepository(banco)
	perfisCobranca := perfilcobranca.NewRepository(banco)
	faturas := fatura.NewRepository(banco)
	lancamentos := lancamento.NewRepository(banco)
	envios := contabilidade.NewRepository(banco)

	resolver := indicacao.NewResolver(perfisIndicacao, cfg)

	servico := faturamento.NewServico(
		banco, cfg, resolver, faturas, lancamentos, perfisCobranca, envios,
		logger.Named("faturamento"),
	)

	integracao := contabilidade.NewClienteHTTP(
		os.Getenv("CONTABILIDADE_URL"),
		os.Getenv("CONTABILIDADE_TOKEN"),
	)

	// Processador da outbox de envios contábeis, fora do ciclo das
	// requisições.
	processador := contabilidade.NewProcessador(
		envios, faturas, perfisCobranca, integracao,
		logger.Named("contabilidade"),
	)
	ctx, parar := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer parar()
	go processador.Executar(ctx)

	// Handlers
	authHandler := auth.NewHandler()
	tarifasHandler := tarifas.NewHandler(cfg)
	indicacaoHandler := indicacao.NewHandler(perfisIndicacao, resolver)
	cobrancaHandler := perfilcobranca.NewHandler(perfisCobranca)
	faturaHandler := fatura.NewHandler(faturas, cfg)
	lancamentoHandler := lancamento.NewHandler(lancamentos)
	faturamentoHandler := faturamento.NewHandler(servico)
	contabilidadeHandler := contabilidade.NewHandler(integracao)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Gatilho do subsistema de pedidos (segredo compartilhado)
	interno := r.PathPrefix("/pedidos").Subrouter()
	interno.Use(auth.MiddlewareSegredoInterno(os.Getenv("SEGREDO_PEDIDOS")))
	interno.HandleFunc("/{id}/concluir", faturamentoHandler.ConcluirPedido).Methods("POST")

	// Rotas autenticadas de consulta e administração
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/faturas/{id}", faturaHandler.Buscar).Methods("GET")
	api.HandleFunc("/faturas/{id}/conferencia", faturaHandler.Conferir).Methods("GET")
	api.HandleFunc("/pedidos-consulta/{id}/fatura", faturaHandler.BuscarPorPedido).Methods("GET")
	api.HandleFunc("/pedidos-consulta/{id}/lancamentos", lancamentoHandler.ListarPorPedido).Methods("GET")
	api.HandleFunc("/parceiros/{id}/faturas", faturaHandler.ListarPorParceiro).Methods("GET")
	api.HandleFunc("/parceiros/{id}/perfil-indicacao", indicacaoHandler.Consultar).Methods("GET")
	api.HandleFunc("/parceiros/{id}/perfil-cobranca", cobrancaHandler.Consultar).Methods("GET")
	api.HandleFunc("/lancamentos", lancamentoHandler.ListarPorPeriodo).Methods("GET")
	api.HandleFunc("/lancamentos/saldo", lancamentoHandler.Saldo).Methods("GET")

	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/tarifas", tarifasHandler.Consultar).Methods("GET")
	admin.HandleFunc("/parceiros/{id}/perfil-indicacao", indicacaoHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/parceiros/{id}/perfil-cobranca", cobrancaHandler.Salvar).Methods("PUT")
	admin.HandleFunc("/contabilidade/livro", contabilidadeHandler.ExportarLivro).Methods("GET")

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Segredo-Interno"},
	}).Handler(r)

	logger.Info("Servidor rodando", zap.String("porta", porta))
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
