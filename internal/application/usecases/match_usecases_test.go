package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"trilhaquiz/internal/domain/game"
	"trilhaquiz/internal/domain/history"
	"trilhaquiz/internal/domain/question"
	"trilhaquiz/internal/domain/settings"
	"trilhaquiz/internal/infra/scheduler"
)

// --- Fakes ---

type fakeHub struct {
	mu     sync.Mutex
	events []string
}

func (h *fakeHub) BroadcastToMatch(matchID string, message interface{}) {
	h.record(message)
}

func (h *fakeHub) SendToPlayer(sessionID string, message interface{}) {
	h.record(message)
}

func (h *fakeHub) record(message interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if env, ok := message.(map[string]interface{}); ok {
		if t, ok := env["type"].(string); ok {
			h.events = append(h.events, t)
		}
	}
}

func (h *fakeHub) has(eventType string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.events {
		if e == eventType {
			return true
		}
	}
	return false
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[string]*game.Session
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[string]*game.Session)}
}

func (r *fakeMatchRepo) SaveMatch(m *game.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[m.ID] = m
	return nil
}

func (r *fakeMatchRepo) FindMatchByID(id string) (*game.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matches[id], nil
}

func (r *fakeMatchRepo) DeleteMatch(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
	return nil
}

type fakeQuestionRepo struct {
	bySubject map[string][]*question.Question
	failing   map[string]bool
}

func (r *fakeQuestionRepo) Save(ctx context.Context, q *question.Question) error    { return nil }
func (r *fakeQuestionRepo) Update(ctx context.Context, q *question.Question) error  { return nil }
func (r *fakeQuestionRepo) Delete(ctx context.Context, id string) error             { return nil }
func (r *fakeQuestionRepo) FindByID(ctx context.Context, id string) (*question.Question, error) {
	return nil, nil
}
func (r *fakeQuestionRepo) FindByHostID(ctx context.Context, hostID string) ([]*question.Question, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) FindBySubject(ctx context.Context, subject string) ([]*question.Question, error) {
	if r.failing[subject] {
		return nil, errors.New("falha simulada de carga")
	}
	return r.bySubject[subject], nil
}

func (r *fakeQuestionRepo) ListSubjects(ctx context.Context) ([]string, error) {
	var subjects []string
	for s := range r.bySubject {
		subjects = append(subjects, s)
	}
	return subjects, nil
}

type fakeSettingsRepo struct {
	prefs *settings.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context, hostID string) (*settings.Settings, error) {
	if r.prefs == nil {
		return settings.Default(), nil
	}
	return r.prefs, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, hostID string, s *settings.Settings) error {
	r.prefs = s
	return nil
}

type fakeHistoryRepo struct {
	mu    sync.Mutex
	saved []*history.MatchHistory
}

func (r *fakeHistoryRepo) SaveHistory(ctx context.Context, h *history.MatchHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, h)
	return nil
}

func (r *fakeHistoryRepo) ListByHostID(ctx context.Context, hostID string, limit, offset int) ([]*history.MatchHistory, error) {
	return r.saved, nil
}

func (r *fakeHistoryRepo) GetByID(ctx context.Context, id string) (*history.MatchHistory, error) {
	for _, h := range r.saved {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, errors.New("não encontrado")
}

func (r *fakeHistoryRepo) GetSubjectStats(ctx context.Context, subject string) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// --- Montagem ---

func newTestMatchUC(t *testing.T) (*MatchUseCases, *fakeHub, *fakeQuestionRepo) {
	t.Helper()

	hub := &fakeHub{}
	qRepo := &fakeQuestionRepo{
		bySubject: map[string][]*question.Question{
			"História": {
				{ID: "q1", Prompt: "Capital do Brasil?", Answer: "Brasília", Subject: "História"},
			},
		},
		failing: map[string]bool{},
	}

	uc := NewMatchUseCases(
		newFakeMatchRepo(),
		qRepo,
		&fakeSettingsRepo{prefs: &settings.Settings{
			SelectedSubjects:     []string{"História"},
			BotDifficultyDefault: "MEDIUM",
			SoundEnabled:         true,
		}},
		hub,
		scheduler.NewImmediateScheduler(),
		NewHistoryUseCases(&fakeHistoryRepo{}),
		11,
	)
	return uc, hub, qRepo
}

// --- Testes ---

// TestCicloDeTurnoHumano percorre o fluxo completo de um turno humano:
// rolar, mover, receber pergunta, responder e trocar a vez.
func TestCicloDeTurnoHumano(t *testing.T) {
	uc, hub, _ := newTestMatchUC(t)
	ctx := context.Background()

	match, err := uc.CreateMatch(ctx, "host-1")
	if err != nil {
		t.Fatalf("CreateMatch retornou erro: %v", err)
	}

	if _, err := uc.JoinMatch(match.ID, "Ana", "conn-ana"); err != nil {
		t.Fatalf("JoinMatch(Ana) retornou erro: %v", err)
	}
	if _, err := uc.JoinMatch(match.ID, "Bia", "conn-bia"); err != nil {
		t.Fatalf("JoinMatch(Bia) retornou erro: %v", err)
	}
	if err := uc.StartMatch(match.ID, "host-1"); err != nil {
		t.Fatalf("StartMatch retornou erro: %v", err)
	}

	// Com scheduler imediato, rolar já aplica o movimento e abre a
	// pergunta.
	if err := uc.RollDice(match.ID, "conn-ana"); err != nil {
		t.Fatalf("RollDice retornou erro: %v", err)
	}

	for _, e := range []string{"dice_rolled", "player_moved", "question_asked"} {
		if !hub.has(e) {
			t.Errorf("evento %q não foi transmitido", e)
		}
	}
	if match.State != game.StateAwaitingAnswer {
		t.Fatalf("estado = %s, esperava %s", match.State, game.StateAwaitingAnswer)
	}

	if err := uc.SubmitAnswer(match.ID, "conn-ana", "Brasília"); err != nil {
		t.Fatalf("SubmitAnswer retornou erro: %v", err)
	}
	if !hub.has("answer_result") || !hub.has("turn_changed") {
		t.Error("eventos de resolução não foram transmitidos")
	}
	if got := match.CurrentPlayer().Name; got != "Bia" {
		t.Fatalf("a vez deveria ser de Bia, é de %s", got)
	}
}

// TestRolarForaDaVezEhRejeitado garante que apenas o jogador da vez
// pode rolar o dado.
func TestRolarForaDaVezEhRejeitado(t *testing.T) {
	uc, _, _ := newTestMatchUC(t)
	ctx := context.Background()

	match, _ := uc.CreateMatch(ctx, "host-1")
	uc.JoinMatch(match.ID, "Ana", "conn-ana")
	uc.JoinMatch(match.ID, "Bia", "conn-bia")
	uc.StartMatch(match.ID, "host-1")

	if err := uc.RollDice(match.ID, "conn-bia"); !errors.Is(err, ErrNaoEhSuaVez) {
		t.Fatalf("erro = %v, esperava %v", err, ErrNaoEhSuaVez)
	}
}

// TestFalhaDeCargaDegradaParaPoolMenor: um assunto com erro de carga é
// tratado como conjunto vazio; a pergunta vem dos assuntos restantes.
func TestFalhaDeCargaDegradaParaPoolMenor(t *testing.T) {
	uc, hub, qRepo := newTestMatchUC(t)
	ctx := context.Background()

	qRepo.bySubject["Ciências"] = []*question.Question{
		{ID: "q2", Prompt: "?", Answer: "x", Subject: "Ciências"},
	}
	qRepo.failing["Ciências"] = true

	match, _ := uc.CreateMatch(ctx, "host-1")
	match.Subjects = []string{"História", "Ciências"}

	uc.JoinMatch(match.ID, "Ana", "conn-ana")
	uc.JoinMatch(match.ID, "Bia", "conn-bia")
	uc.StartMatch(match.ID, "host-1")

	if err := uc.RollDice(match.ID, "conn-ana"); err != nil {
		t.Fatalf("RollDice retornou erro: %v", err)
	}
	if !hub.has("question_asked") {
		t.Fatal("a pergunta deveria vir do assunto restante")
	}
}

// TestPoolTotalmenteVazioEmiteErro cobre NoQuestionsAvailable no nível
// do caso de uso: evento de erro transmitido e sessão intacta.
func TestPoolTotalmenteVazioEmiteErro(t *testing.T) {
	uc, hub, qRepo := newTestMatchUC(t)
	ctx := context.Background()

	qRepo.failing["História"] = true

	match, _ := uc.CreateMatch(ctx, "host-1")
	uc.JoinMatch(match.ID, "Ana", "conn-ana")
	uc.JoinMatch(match.ID, "Bia", "conn-bia")
	uc.StartMatch(match.ID, "host-1")

	if err := uc.RollDice(match.ID, "conn-ana"); err != nil {
		t.Fatalf("RollDice retornou erro: %v", err)
	}
	if !hub.has("error") {
		t.Fatal("o evento de erro deveria ter sido transmitido")
	}
	if match.State != game.StateAwaitingAnswer || match.CurrentQuestion != nil {
		t.Fatal("a sessão não deveria ter sido corrompida")
	}
}

// TestAcoesDeHostExigemDono verifica a autorização das ações de
// controle da partida.
func TestAcoesDeHostExigemDono(t *testing.T) {
	uc, _, _ := newTestMatchUC(t)
	ctx := context.Background()

	match, _ := uc.CreateMatch(ctx, "host-1")
	uc.JoinMatch(match.ID, "Ana", "conn-ana")
	uc.JoinMatch(match.ID, "Bia", "conn-bia")

	if err := uc.StartMatch(match.ID, "intruso"); !errors.Is(err, ErrNaoAutorizado) {
		t.Errorf("StartMatch: erro = %v, esperava %v", err, ErrNaoAutorizado)
	}
	if _, err := uc.AddBot(ctx, match.ID, "intruso", "", ""); !errors.Is(err, ErrNaoAutorizado) {
		t.Errorf("AddBot: erro = %v, esperava %v", err, ErrNaoAutorizado)
	}
	if err := uc.ResetMatch(match.ID, "intruso"); !errors.Is(err, ErrNaoAutorizado) {
		t.Errorf("ResetMatch: erro = %v, esperava %v", err, ErrNaoAutorizado)
	}
}

// TestAddBotUsaDificuldadePadrao confirma que o bot herda a dificuldade
// das preferências quando nenhuma é informada.
func TestAddBotUsaDificuldadePadrao(t *testing.T) {
	uc, _, _ := newTestMatchUC(t)
	ctx := context.Background()

	match, _ := uc.CreateMatch(ctx, "host-1")
	p, err := uc.AddBot(ctx, match.ID, "host-1", "", "")
	if err != nil {
		t.Fatalf("AddBot retornou erro: %v", err)
	}
	if !p.IsBot() || p.Difficulty != "MEDIUM" {
		t.Fatalf("bot inesperado: %+v", p)
	}
	if p.Name == "" {
		t.Fatal("o bot deveria receber um nome padrão")
	}
}

// TestContinuacaoObsoletaNaoAplicaEfeito: um reset entre o agendamento
// e a execução invalida a continuação pela geração.
func TestContinuacaoObsoletaNaoAplicaEfeito(t *testing.T) {
	uc, _, _ := newTestMatchUC(t)
	ctx := context.Background()

	match, _ := uc.CreateMatch(ctx, "host-1")
	uc.JoinMatch(match.ID, "Ana", "conn-ana")
	uc.JoinMatch(match.ID, "Bia", "conn-bia")
	uc.StartMatch(match.ID, "host-1")

	executed := false
	uc.afterDelay(match, time.Millisecond, func() { executed = true })

	// O scheduler imediato já executou: efeito válido.
	if !executed {
		t.Fatal("a continuação com geração válida deveria executar")
	}

	executed = false
	// Agenda manualmente capturando a geração antiga e reseta antes.
	oldGen := match.CurrentGeneration()
	match.Reset()
	uc.sched.Schedule(time.Millisecond, func() {
		if match.CurrentGeneration() != oldGen {
			return
		}
		executed = true
	})
	if executed {
		t.Fatal("a continuação obsoleta não deveria executar")
	}
}
