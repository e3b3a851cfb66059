package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"trilhaquiz/internal/domain/bot"
	"trilhaquiz/internal/domain/game"
	"trilhaquiz/internal/domain/question"
	"trilhaquiz/internal/infra/logger"
	"trilhaquiz/internal/infra/random"
	"trilhaquiz/internal/ports"

	"github.com/google/uuid"
)

var ErrNaoEhSuaVez = errors.New("não é a sua vez de jogar")

// Atrasos simulados do ciclo de turno. São deferrals de agendamento
// (animação do dado, vez automática de bot), não esperas bloqueantes.
const (
	rollSettleDelay = 600 * time.Millisecond
	botTurnDelay    = 1 * time.Second
)

// MatchUseCases orquestra o ciclo de turno das partidas: rolagem,
// movimento, pergunta e resolução, notificando os clientes via hub.
type MatchUseCases struct {
	matchRepo    ports.MatchRepository
	questionRepo ports.QuestionRepository
	settingsRepo ports.SettingsRepository
	hub          ports.RealTimeHub
	sched        ports.Scheduler
	historyUC    *HistoryUseCases

	// Gerador usado pela política de bot. Protegido por mutex pois as
	// continuações agendadas rodam em goroutines de timer.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewMatchUseCases(
	matchRepo ports.MatchRepository,
	questionRepo ports.QuestionRepository,
	settingsRepo ports.SettingsRepository,
	hub ports.RealTimeHub,
	sched ports.Scheduler,
	historyUC *HistoryUseCases,
	seed int64,
) *MatchUseCases {
	return &MatchUseCases{
		matchRepo:    matchRepo,
		questionRepo: questionRepo,
		settingsRepo: settingsRepo,
		hub:          hub,
		sched:        sched,
		historyUC:    historyUC,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// CreateMatch cria uma partida com os assuntos selecionados nas
// preferências do host.
func (uc *MatchUseCases) CreateMatch(ctx context.Context, hostID string) (*game.Session, error) {
	prefs, err := uc.settingsRepo.Get(ctx, hostID)
	if err != nil {
		return nil, err
	}

	subjects := prefs.SelectedSubjects
	if len(subjects) == 0 {
		// Nenhum assunto selecionado: joga com todos os disponíveis.
		subjects, err = uc.questionRepo.ListSubjects(ctx)
		if err != nil {
			return nil, err
		}
	}

	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}

	// Gera código curto para a partida
	matchID := uuid.NewString()[:6]

	match := game.NewSession(matchID, hostID, subjects, seed)
	if err := uc.matchRepo.SaveMatch(match); err != nil {
		return nil, err
	}

	return match, nil
}

// GetMatch retorna info da partida (para HTTP).
func (uc *MatchUseCases) GetMatch(ctx context.Context, matchID string) (*game.Session, error) {
	return uc.matchRepo.FindMatchByID(matchID)
}

// JoinMatch registra um jogador humano e associa a conexão dele.
func (uc *MatchUseCases) JoinMatch(matchID, nickname, connID string) (*game.Player, error) {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return nil, err
	}

	player, err := match.AddPlayer(nickname, game.KindHuman, "")
	if err != nil {
		return nil, err
	}
	match.BindSeat(connID, player.ID)

	uc.hub.BroadcastToMatch(matchID, event("player_joined", player))
	uc.hub.SendToPlayer(connID, event("match_state", match.GetStateSnapshot()))

	return player, nil
}

// AddBot adiciona um jogador bot à partida. Sem dificuldade explícita,
// usa a dificuldade padrão das preferências do host.
func (uc *MatchUseCases) AddBot(ctx context.Context, matchID, hostID, name, difficulty string) (*game.Player, error) {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return nil, err
	}
	if match.HostID != hostID {
		return nil, ErrNaoAutorizado
	}

	if difficulty == "" {
		prefs, err := uc.settingsRepo.Get(ctx, hostID)
		if err != nil {
			return nil, err
		}
		difficulty = prefs.BotDifficultyDefault
	}
	if name == "" {
		name = fmt.Sprintf("Bot %d", len(match.Players)+1)
	}

	player, err := match.AddPlayer(name, game.KindBot, difficulty)
	if err != nil {
		return nil, err
	}

	uc.hub.BroadcastToMatch(matchID, event("player_joined", player))
	return player, nil
}

// RemovePlayer remove um jogador da partida (ação do host).
func (uc *MatchUseCases) RemovePlayer(matchID, hostID string, playerID int) error {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return err
	}
	if match.HostID != hostID {
		return ErrNaoAutorizado
	}

	if err := match.RemovePlayer(playerID); err != nil {
		return err
	}

	uc.hub.BroadcastToMatch(matchID, event("player_left", map[string]int{"playerId": playerID}))
	uc.hub.BroadcastToMatch(matchID, event("match_state", match.GetStateSnapshot()))
	return nil
}

// StartMatch inicia a partida (ação do host).
func (uc *MatchUseCases) StartMatch(matchID, hostID string) error {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return err
	}
	if match.HostID != hostID {
		return ErrNaoAutorizado
	}

	if err := match.Start(); err != nil {
		return err
	}

	uc.hub.BroadcastToMatch(matchID, event("game_started", match.GetStateSnapshot()))

	// Se o primeiro jogador for bot, a partida anda sozinha.
	uc.maybeScheduleBotTurn(match)
	return nil
}

// ResetMatch volta a partida ao menu, zerando o progresso. As
// continuações já agendadas expiram pela troca de geração.
func (uc *MatchUseCases) ResetMatch(matchID, hostID string) error {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return err
	}
	if match.HostID != hostID {
		return ErrNaoAutorizado
	}

	match.Reset()
	uc.hub.BroadcastToMatch(matchID, event("match_state", match.GetStateSnapshot()))
	return nil
}

// RollDice rola o dado para o jogador humano da conexão. O movimento é
// aplicado após o atraso de assentamento da animação.
func (uc *MatchUseCases) RollDice(matchID, connID string) error {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return err
	}

	player, ok := match.PlayerBySeat(connID)
	if !ok {
		return game.ErrJogadorNaoEncontrado
	}
	current := match.CurrentPlayer()
	if current == nil || current.ID != player.ID {
		return ErrNaoEhSuaVez
	}

	return uc.rollAndMove(match)
}

// SubmitAnswer recebe a resposta do jogador humano da conexão.
func (uc *MatchUseCases) SubmitAnswer(matchID, connID, text string) error {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return err
	}

	player, ok := match.PlayerBySeat(connID)
	if !ok {
		return game.ErrJogadorNaoEncontrado
	}
	current := match.CurrentPlayer()
	if current == nil || current.ID != player.ID {
		return ErrNaoEhSuaVez
	}

	result, err := match.SubmitAnswer(text)
	if err != nil {
		return err
	}

	uc.broadcastAnswerResult(match, result)
	uc.finishTurn(match)
	return nil
}

// ReleaseSeat desassocia uma conexão encerrada do jogador dela.
func (uc *MatchUseCases) ReleaseSeat(matchID, connID string) {
	match, err := uc.findMatch(matchID)
	if err != nil {
		return
	}
	match.ReleaseSeat(connID)
}

// --- Ciclo interno do turno ---

// rollAndMove rola o dado e agenda o movimento. Compartilhado entre
// humanos (via WS) e bots (via scheduler).
func (uc *MatchUseCases) rollAndMove(match *game.Session) error {
	roll, err := match.RollDice()
	if err != nil {
		return err
	}
	if roll.AlreadyPending {
		// Não é erro: a chamada duplicada é ignorada.
		logger.Info("rolagem já pendente, chamada ignorada", "partida", match.ID)
		return nil
	}

	uc.hub.BroadcastToMatch(match.ID, event("dice_rolled", map[string]interface{}{
		"playerId": roll.Player.ID,
		"value":    roll.Value,
	}))

	uc.afterDelay(match, rollSettleDelay, func() {
		uc.applyMove(match)
	})
	return nil
}

// applyMove consome a rolagem pendente, resolve salto e vitória, e
// abre a pergunta do turno.
func (uc *MatchUseCases) applyMove(match *game.Session) {
	mv, err := match.MoveCurrentPlayer()
	if err != nil {
		// Continuação obsoleta (reset entre a rolagem e o movimento)
		logger.Info("movimento descartado", "partida", match.ID, "erro", err)
		return
	}

	payload := map[string]interface{}{
		"playerId": mv.Player.ID,
		"from":     mv.From,
		"rolled":   mv.Rolled,
		"landed":   mv.Landed,
		"final":    mv.Final,
	}
	if mv.Jump != nil {
		payload["jump"] = mv.Jump
	}
	uc.hub.BroadcastToMatch(match.ID, event("player_moved", payload))

	if mv.Won {
		uc.hub.BroadcastToMatch(match.ID, event("game_over", match.GetStateSnapshot()))

		// Arquiva automaticamente
		go func() {
			ctx := context.Background()
			if err := uc.historyUC.ArchiveMatch(ctx, match); err != nil {
				logger.Error("falha ao arquivar partida", "partida", match.ID, "erro", err)
			}
		}()
		return
	}

	uc.askQuestion(match)
}

// askQuestion sorteia uma pergunta do pool filtrado e, se o jogador da
// vez for bot, resolve a resposta após o tempo de pensamento.
func (uc *MatchUseCases) askQuestion(match *game.Session) {
	pool := uc.loadPool(context.Background(), match.Subjects)

	q, err := match.DrawQuestion(pool)
	if err != nil {
		// Pool vazio: a operação é rejeitada e a mensagem vai para o
		// cliente; a sessão permanece intacta.
		uc.hub.BroadcastToMatch(match.ID, event("error", err.Error()))
		return
	}

	current := match.CurrentPlayer()
	uc.hub.BroadcastToMatch(match.ID, event("question_asked", map[string]interface{}{
		"playerId": current.ID,
		"prompt":   q.Prompt,
		"subject":  q.Subject,
	}))

	if !current.IsBot() {
		return // aguarda submit_answer do humano
	}

	uc.rngMu.Lock()
	decision, err := bot.Decide(uc.rng, current.Difficulty)
	uc.rngMu.Unlock()
	if err != nil {
		logger.Error("política de bot falhou", "partida", match.ID, "erro", err)
		return
	}

	uc.afterDelay(match, decision.ThinkTime, func() {
		result, err := match.ApplyBotDecision(decision.Correct)
		if err != nil {
			logger.Info("resposta de bot descartada", "partida", match.ID, "erro", err)
			return
		}
		uc.broadcastAnswerResult(match, result)
		uc.finishTurn(match)
	})
}

// finishTurn avança a vez e agenda a rolagem automática se o novo
// jogador da vez for bot.
func (uc *MatchUseCases) finishTurn(match *game.Session) {
	change, err := match.NextTurn()
	if err != nil {
		logger.Error("falha ao avançar turno", "partida", match.ID, "erro", err)
		return
	}
	if change.Forced {
		logger.Warn("todos os jogadores com obrigação de pular, avanço forçado", "partida", match.ID)
	}

	uc.hub.BroadcastToMatch(match.ID, event("turn_changed", map[string]interface{}{
		"playerId":     change.Player.ID,
		"skipConsumed": change.SkipConsumed,
	}))
	uc.hub.BroadcastToMatch(match.ID, event("match_state", match.GetStateSnapshot()))

	uc.maybeScheduleBotTurn(match)
}

// maybeScheduleBotTurn agenda a rolagem automática de um bot da vez.
func (uc *MatchUseCases) maybeScheduleBotTurn(match *game.Session) {
	current := match.CurrentPlayer()
	if current == nil || !current.IsBot() {
		return
	}

	uc.afterDelay(match, botTurnDelay, func() {
		if err := uc.rollAndMove(match); err != nil {
			logger.Info("rolagem de bot descartada", "partida", match.ID, "erro", err)
		}
	})
}

// afterDelay agenda fn verificando a geração da partida antes de
// aplicar o efeito: um reset invalida continuações antigas sem
// cancelá-las.
func (uc *MatchUseCases) afterDelay(match *game.Session, d time.Duration, fn func()) {
	gen := match.CurrentGeneration()
	uc.sched.Schedule(d, func() {
		if match.CurrentGeneration() != gen {
			return
		}
		fn()
	})
}

// loadPool carrega o pool de perguntas dos assuntos selecionados.
// Falhas de carga degradam para conjunto vazio do assunto, nunca
// abortam o turno.
func (uc *MatchUseCases) loadPool(ctx context.Context, subjects []string) []*question.Question {
	var pool []*question.Question
	for _, subject := range subjects {
		qs, err := uc.questionRepo.FindBySubject(ctx, subject)
		if err != nil {
			logger.Error("falha ao carregar perguntas do assunto", "assunto", subject, "erro", err)
			continue
		}
		pool = append(pool, qs...)
	}
	return pool
}

func (uc *MatchUseCases) broadcastAnswerResult(match *game.Session, result game.AnswerResult) {
	payload := map[string]interface{}{
		"playerId":    result.Player.ID,
		"correct":     result.Correct,
		"skipApplied": result.SkipApplied,
	}
	if !result.Correct {
		payload["correctAnswer"] = result.CorrectAnswer
	}
	uc.hub.BroadcastToMatch(match.ID, event("answer_result", payload))
}

func (uc *MatchUseCases) findMatch(matchID string) (*game.Session, error) {
	match, err := uc.matchRepo.FindMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrPartidaNaoEncontrada
	}
	return match, nil
}

// event monta o envelope padrão das mensagens do hub.
func event(eventType string, payload interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
}
