package httpadapter

import (
	"fmt"
	"net/http"
	"trilhaquiz/internal/adapters/http/handlers"
	"trilhaquiz/internal/adapters/http/middlewares"
	"trilhaquiz/internal/adapters/websocket"
	"trilhaquiz/internal/ports"

	_ "trilhaquiz/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter configura as rotas e middlewares.
func NewRouter(
	authHandler *handlers.AuthHandler,
	questionHandler *handlers.QuestionHandler,
	matchHandler *handlers.MatchHandler,
	settingsHandler *handlers.SettingsHandler,
	reportHandler *handlers.ReportHandler,
	wsHandler *websocket.WebSocketHandler,
	tokenService ports.TokenService,
) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Configuração CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Rota de Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:8080/swagger/doc.json")),
	))

	// WebSocket Endpoint
	r.Get("/ws", wsHandler.HandleWS)

	// Grupo de rotas de Auth
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Rotas protegidas (Auth)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokenService))
			r.Get("/me", authHandler.GetMe)
		})
	})

	// Grupo de rotas do Banco de Perguntas (Protegidas)
	r.Route("/questions", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService))

		r.Post("/", questionHandler.CreateQuestion)
		r.Get("/", questionHandler.ListQuestions)
		r.Get("/subjects", questionHandler.ListSubjects)
		r.Put("/{id}", questionHandler.UpdateQuestion)
		r.Delete("/{id}", questionHandler.DeleteQuestion)
	})

	// Grupo de rotas de Partidas
	r.Route("/matches", func(r chi.Router) {
		// Criar partida exige autenticação (Anfitrião)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokenService))
			r.Post("/", matchHandler.CreateMatch)
		})

		// O snapshot da partida é público: os jogadores usam o código
		// para confirmar a sala antes de entrar pelo WebSocket.
		r.Get("/{id}", matchHandler.GetMatch)
	})

	// Grupo de rotas de Preferências (Protegidas)
	r.Route("/settings", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService))

		r.Get("/", settingsHandler.GetSettings)
		r.Put("/", settingsHandler.SaveSettings)
	})

	// Grupo de rotas de Relatórios (Protegidas)
	r.Route("/reports", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService))

		r.Get("/matches", reportHandler.ListMatches)
		r.Get("/matches/{id}", reportHandler.GetMatchDetail)
		r.Get("/subjects/{subject}", reportHandler.GetSubjectStats)
	})

	return r
}
