package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/odontosys/api-clinica/internal/agendamento"
	"github.com/odontosys/api-clinica/internal/auth"
	"github.com/odontosys/api-clinica/internal/configuracao"
	"github.com/odontosys/api-clinica/internal/dashboard"
	"github.com/odontosys/api-clinica/internal/documento"
	"github.com/odontosys/api-clinica/internal/financeiro"
	"github.com/odontosys/api-clinica/internal/odontograma"
	"github.com/odontosys/api-clinica/internal/paciente"
	"github.com/odontosys/api-clinica/internal/profissional"
	"github.com/odontosys/api-clinica/internal/prontuario"
	"github.com/odontosys/api-clinica/internal/uploads"
	"github.com/odontosys/api-clinica/internal/usuario"
)

func env(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

func conectarBanco() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_NAME", "clinica"),
		env("DB_PORT", "5432"),
		env("DB_SSL_MODE", "disable"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	db, err := conectarBanco()
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}

	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&paciente.Paciente{},
		&profissional.Profissional{},
		&agendamento.Agendamento{},
		&prontuario.Prontuario{},
		&odontograma.Odontograma{},
		&odontograma.ProcedimentoOdontograma{},
		&financeiro.LancamentoFinanceiro{},
		&documento.Documento{},
		&configuracao.Configuracao{},
	); err != nil {
		log.Fatal().Err(err).Msg("erro no AutoMigrate")
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(db)
	pacienteHandler := paciente.NewHandler(db)
	profissionalHandler := profissional.NewHandler(db)
	agendamentoHandler := agendamento.NewHandler(db)
	prontuarioHandler := prontuario.NewHandler(db)
	odontogramaHandler := odontograma.NewHandler(db)
	financeiroHandler := financeiro.NewHandler(db)
	documentoHandler := documento.NewHandler(db)
	configuracaoHandler := configuracao.NewHandler(db)
	dashboardHandler := dashboard.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios/criar-admin", usuarioHandler.CriarAdmin).Methods("POST")

	// Arquivos enviados (avatares e documentos)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de usuários
	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	api.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")

	// Rotas de pacientes
	api.HandleFunc("/pacientes", pacienteHandler.Listar).Methods("GET")
	api.HandleFunc("/pacientes", pacienteHandler.Criar).Methods("POST")
	api.HandleFunc("/pacientes/{id}", pacienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pacientes/{id}", pacienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/pacientes/{id}", pacienteHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/pacientes/{id}/avatar", pacienteHandler.AtualizarAvatar).Methods("PATCH")
	api.HandleFunc("/pacientes/{id}/status", pacienteHandler.AtualizarStatus).Methods("PATCH")

	// Odontograma do prontuário do paciente
	api.HandleFunc("/pacientes/{pacienteId}/prontuario/{prontuarioId}/odontograma",
		odontogramaHandler.Buscar).Methods("GET")
	api.HandleFunc("/pacientes/{pacienteId}/prontuario/{prontuarioId}/odontograma",
		odontogramaHandler.AdicionarProcedimento).Methods("POST")

	// Rotas de profissionais
	api.HandleFunc("/profissionais", profissionalHandler.Listar).Methods("GET")
	api.HandleFunc("/profissionais", profissionalHandler.Criar).Methods("POST")
	api.HandleFunc("/profissionais/lista", profissionalHandler.ListarResumo).Methods("GET")
	api.HandleFunc("/profissionais/{id}", profissionalHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/profissionais/{id}", profissionalHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/profissionais/{id}", profissionalHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/profissionais/{id}/avatar", profissionalHandler.AtualizarAvatar).Methods("PATCH")
	api.HandleFunc("/profissionais/{id}/avatar", profissionalHandler.RemoverAvatar).Methods("DELETE")
	api.HandleFunc("/profissionais/{id}/status", profissionalHandler.AtualizarStatus).Methods("PATCH")

	// Rotas de agendamentos
	api.HandleFunc("/agendamentos", agendamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/agendamentos", agendamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/agendamentos/hoje", agendamentoHandler.ListarHoje).Methods("GET")
	api.HandleFunc("/agendamentos/proximos", agendamentoHandler.ListarProximos).Methods("GET")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/agendamentos/{id}/status", agendamentoHandler.AtualizarStatus).Methods("PATCH")

	// Rotas de prontuários
	api.HandleFunc("/prontuarios", prontuarioHandler.Criar).Methods("POST")
	api.HandleFunc("/prontuarios/paciente/{pacienteId}", prontuarioHandler.ListarPorPaciente).Methods("GET")
	api.HandleFunc("/prontuarios/{id}", prontuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/prontuarios/{id}", prontuarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/prontuarios/{id}", prontuarioHandler.Deletar).Methods("DELETE")

	// Rotas do financeiro
	api.HandleFunc("/financeiro", financeiroHandler.Listar).Methods("GET")
	api.HandleFunc("/financeiro", financeiroHandler.Criar).Methods("POST")
	api.HandleFunc("/financeiro/{id}", financeiroHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/financeiro/{id}", financeiroHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/financeiro/{id}", financeiroHandler.Deletar).Methods("DELETE")

	// Rotas de documentos
	api.HandleFunc("/documentos", documentoHandler.Criar).Methods("POST")
	api.HandleFunc("/documentos/paciente/{pacienteId}", documentoHandler.ListarPorPaciente).Methods("GET")
	api.HandleFunc("/documentos/{id}", documentoHandler.Deletar).Methods("DELETE")

	// Configurações da clínica
	api.HandleFunc("/configuracoes", configuracaoHandler.Buscar).Methods("GET")
	api.HandleFunc("/configuracoes", configuracaoHandler.Atualizar).Methods("PUT")

	// Dashboard
	api.HandleFunc("/dashboard", dashboardHandler.Buscar).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{env("CORS_ORIGIN", "*")},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	porta := env("PORT", "8080")
	log.Info().Str("porta", porta).Msg("servidor iniciado")
	if err := http.ListenAndServe(":"+porta, c.Handler(r)); err != nil {
		log.Fatal().Err(err).Msg("erro no servidor")
	}
}
