package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	httpadapter "trilhaquiz/internal/adapters/http"
	"trilhaquiz/internal/adapters/http/handlers"
	"trilhaquiz/internal/adapters/persistence"
	"trilhaquiz/internal/adapters/security"
	"trilhaquiz/internal/adapters/websocket"
	"trilhaquiz/internal/application/usecases"
	"trilhaquiz/internal/infra/config"
	infraDB "trilhaquiz/internal/infra/db"
	"trilhaquiz/internal/infra/logger"
	"trilhaquiz/internal/infra/random"
	"trilhaquiz/internal/infra/scheduler"

	_ "trilhaquiz/docs"
)

// @title TrilhaQuiz API
// @version 1.0
// @description Backend do TrilhaQuiz (trilha de cobras e escadas com perguntas).
// @contact.name Suporte TrilhaQuiz
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @externalDocs.description  Documentação WebSocket (Não interativo via Swagger)
// @externalDocs.url          /walkthrough.md
func main() {
	// 1. Configuração e Logger
	logger.Init()
	cfg := config.Load()

	// 2. Banco de Dados
	db, err := infraDB.NewSQLiteConnection(cfg.Database.DSN)
	if err != nil {
		logger.Error("Não foi possível conectar ao banco", "erro", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		logger.Error("Falha na migração", "erro", err)
		os.Exit(1)
	}

	// 3a. Adapters (Driving - Persistence)
	hostRepo := persistence.NewSQLiteHostRepository(db)
	questionRepo := persistence.NewSQLiteQuestionRepository(db)
	settingsRepo := persistence.NewSQLiteSettingsRepository(db)
	historyRepo := persistence.NewSQLiteHistoryRepository(db)

	// Repositório In-Memory (partidas ao vivo)
	matchRepo := persistence.NewInMemoryMatchRepository()

	hasher := security.NewBcryptHasher()
	tokenService := security.NewJWTService(cfg.JWTSecret)

	// 3b. Adapters (Driving - WebSocket Hub)
	wsHub := websocket.NewHub()
	// Inicia o Hub em background
	go wsHub.Run()

	// 4. Application (Use Cases)
	registerUC := usecases.NewRegisterHostUseCase(hostRepo, settingsRepo, hasher)
	loginUC := usecases.NewLoginHostUseCase(hostRepo, hasher, tokenService)
	getMeUC := usecases.NewGetMeUseCase(hostRepo)

	questionUC := usecases.NewQuestionUseCases(questionRepo)
	settingsUC := usecases.NewSettingsUseCases(settingsRepo)
	historyUC := usecases.NewHistoryUseCases(historyRepo)

	seed, err := random.NewSeed()
	if err != nil {
		logger.Error("Falha ao gerar semente aleatória", "erro", err)
		os.Exit(1)
	}

	matchUC := usecases.NewMatchUseCases(
		matchRepo,
		questionRepo,
		settingsRepo,
		wsHub,
		scheduler.NewTimerScheduler(),
		historyUC,
		seed,
	)

	// 5. Adapters (Driven - Handlers)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getMeUC)
	questionHandler := handlers.NewQuestionHandler(questionUC)
	matchHandler := handlers.NewMatchHandler(matchUC)
	settingsHandler := handlers.NewSettingsHandler(settingsUC)
	reportHandler := handlers.NewReportHandler(historyUC)

	wsHandler := websocket.NewWebSocketHandler(wsHub, matchUC)

	// 6. Router
	router := httpadapter.NewRouter(
		authHandler,
		questionHandler,
		matchHandler,
		settingsHandler,
		reportHandler,
		wsHandler,
		tokenService,
	)

	// 7. Servidor
	logger.Info("Iniciando servidor", "porta", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), router); err != nil {
		logger.Error("Falha no servidor HTTP", "erro", err)
	}
}

func runMigrations(db *sql.DB) error {
	files, err := os.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("erro ao ler diretório migrations: %w", err)
	}

	var filenames []string
	for _, f := range files {
		if filepath.Ext(f.Name()) == ".sql" {
			filenames = append(filenames, f.Name())
		}
	}
	sort.Strings(filenames)

	for _, filename := range filenames {
		path := filepath.Join("migrations", filename)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("erro ao ler %s: %w", filename, err)
		}

		logger.Info("Executando migração", "arquivo", filename)
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("erro ao executar %s: %w", filename, err)
		}
	}
	return nil
}
