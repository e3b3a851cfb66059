package ports

import (
	"context"
	"time"

	"trilhaquiz/internal/domain/game"
	"trilhaquiz/internal/domain/history"
	"trilhaquiz/internal/domain/host"
	"trilhaquiz/internal/domain/question"
	"trilhaquiz/internal/domain/settings"
)

// HostRepository define as operações de persistência para a entidade Host.
type HostRepository interface {
	// Create salva um novo host no banco de dados.
	Create(ctx context.Context, h *host.Host) error

	// FindByEmail busca um host pelo email. Retorna nil se não encontrar.
	FindByEmail(ctx context.Context, email string) (*host.Host, error)

	// FindByID busca um host pelo ID.
	FindByID(ctx context.Context, id string) (*host.Host, error)
}

// PasswordHasher define o contrato para hash e verificação de senhas.
type PasswordHasher interface {
	// HashPassword gera um hash seguro da senha.
	HashPassword(password string) (string, error)

	// ComparePassword compara uma senha em texto plano com um hash.
	// Retorna nil se forem iguais, ou erro se forem diferentes.
	ComparePassword(hash, password string) error
}

// TokenService define o contrato para geração e validação de tokens JWT.
type TokenService interface {
	// GenerateToken gera um token de acesso para o ID do usuário fornecido.
	GenerateToken(userID string) (string, int64, error)

	// ValidateToken valida o token e retorna o ID do usuário se válido.
	ValidateToken(tokenString string) (string, error)
}

// QuestionRepository define persistência para o banco de perguntas.
type QuestionRepository interface {
	Save(ctx context.Context, q *question.Question) error
	FindByID(ctx context.Context, id string) (*question.Question, error)
	FindByHostID(ctx context.Context, hostID string) ([]*question.Question, error)

	// FindBySubject retorna as perguntas de um assunto. Falhas de
	// carga devem degradar para conjunto vazio, nunca abortar.
	FindBySubject(ctx context.Context, subject string) ([]*question.Question, error)

	ListSubjects(ctx context.Context) ([]string, error)
	Update(ctx context.Context, q *question.Question) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository define persistência das preferências de um host.
type SettingsRepository interface {
	// Get retorna as preferências do host (ou os padrões, se nunca salvas).
	Get(ctx context.Context, hostID string) (*settings.Settings, error)
	Save(ctx context.Context, hostID string, s *settings.Settings) error
}

// MatchRepository define persistência em memória para Partidas ao vivo.
type MatchRepository interface {
	SaveMatch(match *game.Session) error
	FindMatchByID(id string) (*game.Session, error)
	DeleteMatch(id string) error
}

// RealTimeHub define contrato para envio de mensagens via WebSocket.
type RealTimeHub interface {
	BroadcastToMatch(matchID string, message interface{})
	SendToPlayer(sessionID string, message interface{})
}

// Scheduler agenda tarefas com atraso (tempo de pensamento de bots,
// rolagem automática). As tarefas não são canceláveis: o efeito deve
// verificar a geração da partida antes de ser aplicado.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// HistoryRepository define persistência de histórico e relatórios.
type HistoryRepository interface {
	SaveHistory(ctx context.Context, h *history.MatchHistory) error
	ListByHostID(ctx context.Context, hostID string, limit, offset int) ([]*history.MatchHistory, error)
	GetByID(ctx context.Context, id string) (*history.MatchHistory, error)
	GetSubjectStats(ctx context.Context, subject string) (map[string]interface{}, error)
}
