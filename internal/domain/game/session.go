package game

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"trilhaquiz/internal/domain/answer"
	"trilhaquiz/internal/domain/board"
	"trilhaquiz/internal/domain/bot"
	"trilhaquiz/internal/domain/question"
)

// Estados da Partida (State Machine)
const (
	StateIdle           = "IDLE"
	StateAwaitingRoll   = "AWAITING_ROLL"
	StateAwaitingMove   = "AWAITING_MOVE"
	StateAwaitingAnswer = "AWAITING_ANSWER"
	StateResolving      = "RESOLVING"
	StateGameOver       = "GAME_OVER"
)

// DiceSides é o número de faces do dado.
const DiceSides = 6

var (
	ErrNomeVazio            = errors.New("o nome do jogador é obrigatório")
	ErrNomeDuplicado        = errors.New("já existe um jogador com este nome")
	ErrLimiteJogadores      = errors.New("a partida já atingiu o limite de 4 jogadores")
	ErrJogadorNaoEncontrado = errors.New("jogador não encontrado")
	ErrPoucosJogadores      = errors.New("a partida precisa de pelo menos 2 jogadores")
	ErrEstadoInvalido       = errors.New("operação inválida para o estado atual da partida")
	ErrSemPerguntas         = errors.New("não há perguntas disponíveis para os assuntos selecionados")
	ErrPartidaEncerrada     = errors.New("a partida já foi encerrada")
	ErrDificuldadeInvalida  = errors.New("dificuldade de bot inválida")
)

// Session representa uma partida em andamento. Mantém o estado do jogo
// em memória: jogadores, de quem é a vez, rolagem pendente e pergunta
// em aberto. Todas as transições passam por aqui.
type Session struct {
	ID       string
	HostID   string
	Subjects []string // assuntos selecionados no início da partida

	State              string
	Players            []*Player
	CurrentPlayerIndex int
	TurnCounter        int
	PendingRoll        int // 0 = nenhuma rolagem pendente
	CurrentQuestion    *question.Question
	Winner             *Player

	// SkipTurns espelha o campo SkipTurns de cada jogador, indexado
	// pelo ID. Os dois devem permanecer consistentes.
	SkipTurns map[int]int

	// Generation cresce a cada reset. Continuações agendadas (vez de
	// bot, rolagem automática) verificam a geração antes de aplicar
	// efeitos, pois nunca são canceladas.
	Generation int

	StartedAt  time.Time
	FinishedAt time.Time
	CreatedAt  time.Time

	// Seats mapeia conexões WebSocket para IDs de jogadores humanos.
	Seats map[string]int

	nextPlayerID  int
	registrations int
	rng           *rand.Rand

	mu sync.RWMutex
}

// NewSession cria uma nova partida no estado IDLE.
// A semente alimenta o dado e o sorteio de perguntas.
func NewSession(id, hostID string, subjects []string, seed int64) *Session {
	return &Session{
		ID:        id,
		HostID:    hostID,
		Subjects:  subjects,
		State:     StateIdle,
		Players:   []*Player{},
		SkipTurns: make(map[int]int),
		Seats:     make(map[string]int),
		CreatedAt: time.Now(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// --- Registro de Jogadores ---

// AddPlayer registra um jogador (humano ou bot) antes do início da
// partida. Nomes são únicos sem diferenciar maiúsculas; a cor vem da
// paleta fixa em rodízio pela ordem de registro.
func (s *Session) AddPlayer(name, kind, difficulty string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateIdle {
		return nil, ErrEstadoInvalido
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNomeVazio
	}

	for _, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return nil, ErrNomeDuplicado
		}
	}

	if len(s.Players) >= MaxPlayers {
		return nil, ErrLimiteJogadores
	}

	if kind == KindBot {
		if !bot.ValidDifficulty(difficulty) {
			return nil, ErrDificuldadeInvalida
		}
	} else {
		kind = KindHuman
		difficulty = ""
	}

	p := &Player{
		ID:         s.nextPlayerID,
		Name:       name,
		Kind:       kind,
		Difficulty: difficulty,
		Color:      colorPalette[s.registrations%MaxPlayers],
	}
	s.nextPlayerID++
	s.registrations++

	s.Players = append(s.Players, p)
	s.SkipTurns[p.ID] = 0
	return p, nil
}

// RemovePlayer remove um jogador pelo ID e reajusta o índice da vez se
// ele tiver saído do intervalo válido.
func (s *Session) RemovePlayer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrJogadorNaoEncontrado
	}

	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)
	delete(s.SkipTurns, id)

	for conn, pid := range s.Seats {
		if pid == id {
			delete(s.Seats, conn)
		}
	}

	if s.CurrentPlayerIndex >= len(s.Players) {
		s.CurrentPlayerIndex = 0
	}
	return nil
}

// BindSeat associa uma conexão a um jogador humano.
func (s *Session) BindSeat(connID string, playerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Seats[connID] = playerID
}

// PlayerBySeat retorna o jogador associado à conexão, se houver.
func (s *Session) PlayerBySeat(connID string) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.Seats[connID]
	if !ok {
		return nil, false
	}
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ReleaseSeat desassocia a conexão (desconexão do cliente).
func (s *Session) ReleaseSeat(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Seats, connID)
}

// CurrentPlayer retorna o jogador da vez (nil se não há jogadores).
func (s *Session) CurrentPlayer() *Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPlayerLocked()
}

func (s *Session) currentPlayerLocked() *Player {
	if len(s.Players) == 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentPlayerIndex]
}

// --- Ciclo de Turno ---

// Start inicia a partida: IDLE -> AWAITING_ROLL.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateIdle {
		return ErrEstadoInvalido
	}
	if len(s.Players) < 2 {
		return ErrPoucosJogadores
	}

	s.State = StateAwaitingRoll
	s.CurrentPlayerIndex = 0
	s.TurnCounter = 1
	s.StartedAt = time.Now()
	return nil
}

// RollResult é o resultado de uma rolagem de dado.
type RollResult struct {
	Player *Player
	Value  int
	// AlreadyPending indica que já havia uma rolagem pendente e a
	// chamada foi ignorada (registrada em log, não é erro).
	AlreadyPending bool
}

// RollDice rola o dado para o jogador da vez: AWAITING_ROLL ->
// AWAITING_MOVE. Uma segunda chamada com rolagem pendente é ignorada.
func (s *Session) RollDice() (RollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PendingRoll != 0 {
		return RollResult{Player: s.currentPlayerLocked(), Value: s.PendingRoll, AlreadyPending: true}, nil
	}

	if s.State != StateAwaitingRoll {
		return RollResult{}, ErrEstadoInvalido
	}

	p := s.currentPlayerLocked()
	if p == nil {
		return RollResult{}, ErrJogadorNaoEncontrado
	}
	if s.SkipTurns[p.ID] > 0 {
		return RollResult{}, ErrEstadoInvalido
	}

	value := s.rng.Intn(DiceSides) + 1
	s.PendingRoll = value
	s.State = StateAwaitingMove

	return RollResult{Player: p, Value: value}, nil
}

// MoveResult descreve o deslocamento do jogador da vez.
type MoveResult struct {
	Player *Player
	From   int
	Rolled int
	Landed int         // casa após o deslocamento (com clamp), antes do salto
	Jump   *board.Jump // salto aplicado, se houver
	Final  int         // posição final
	Won    bool
}

// MoveCurrentPlayer aplica a rolagem pendente: avança a posição (nunca
// além da casa final), resolve um único salto do tabuleiro e verifica
// vitória. AWAITING_MOVE -> (AWAITING_ANSWER | GAME_OVER).
func (s *Session) MoveCurrentPlayer() (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateAwaitingMove || s.PendingRoll == 0 {
		return MoveResult{}, ErrEstadoInvalido
	}

	p := s.currentPlayerLocked()
	if p == nil {
		return MoveResult{}, ErrJogadorNaoEncontrado
	}

	result := MoveResult{Player: p, From: p.Position, Rolled: s.PendingRoll}

	target := p.Position + s.PendingRoll
	if target > board.WinningCell {
		target = board.WinningCell
	}
	s.PendingRoll = 0
	p.Position = target
	result.Landed = target

	// Chegou na casa final pelo deslocamento: vence antes de qualquer
	// consulta de salto.
	if target == board.WinningCell {
		result.Final = target
		result.Won = true
		s.finishLocked(p)
		return result, nil
	}

	// Um único salto, aplicado incondicionalmente; o destino não é
	// sujeito a novos saltos.
	if dest, ok := board.JumpDestination(target); ok {
		p.Position = dest
		result.Jump = &board.Jump{
			Origin:      target,
			Destination: dest,
			Type:        board.ClassifyJump(target, dest),
		}
	}
	result.Final = p.Position

	if p.Position == board.WinningCell {
		result.Won = true
		s.finishLocked(p)
		return result, nil
	}

	s.State = StateAwaitingAnswer
	return result, nil
}

// DrawQuestion sorteia uma pergunta do pool filtrado por assunto.
// Garantia de ordenação: só há uma pergunta em aberto por vez.
func (s *Session) DrawQuestion(pool []*question.Question) (*question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateAwaitingAnswer || s.CurrentQuestion != nil {
		return nil, ErrEstadoInvalido
	}
	if len(pool) == 0 {
		return nil, ErrSemPerguntas
	}

	q := pool[s.rng.Intn(len(pool))]
	s.CurrentQuestion = q
	return q, nil
}

// AnswerResult é o desfecho de uma pergunta respondida.
type AnswerResult struct {
	Player        *Player
	Correct       bool
	CorrectAnswer string
	SkipApplied   bool // jogador errou e recebeu a obrigação de pular vez
}

// SubmitAnswer verifica a resposta do jogador da vez contra a pergunta
// em aberto. AWAITING_ANSWER -> RESOLVING.
func (s *Session) SubmitAnswer(text string) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateAwaitingAnswer || s.CurrentQuestion == nil {
		return AnswerResult{}, ErrEstadoInvalido
	}

	correct := answer.CheckAnswer(text, s.CurrentQuestion.Answer)
	return s.applyAnswerLocked(correct), nil
}

// ApplyBotDecision aplica o desfecho simulado pela política de bot,
// sem passar pelo verificador. Contadores e obrigação de pular vez
// seguem as mesmas regras de um humano.
func (s *Session) ApplyBotDecision(correct bool) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateAwaitingAnswer || s.CurrentQuestion == nil {
		return AnswerResult{}, ErrEstadoInvalido
	}

	return s.applyAnswerLocked(correct), nil
}

func (s *Session) applyAnswerLocked(correct bool) AnswerResult {
	p := s.currentPlayerLocked()
	result := AnswerResult{
		Player:        p,
		Correct:       correct,
		CorrectAnswer: s.CurrentQuestion.Answer,
	}

	p.QuestionsAnswered++
	if correct {
		p.CorrectAnswers++
	} else {
		// Sobrescreve (não acumula): a obrigação é de exatamente 1.
		p.SkipTurns = 1
		s.SkipTurns[p.ID] = 1
		result.SkipApplied = true
	}

	s.CurrentQuestion = nil
	s.State = StateResolving
	return result
}

// TurnChange descreve o resultado de um avanço de turno.
type TurnChange struct {
	Player *Player
	// SkipConsumed: havia obrigação de pular vez sobre o jogador
	// atual; ela foi decrementada e o índice não avançou.
	SkipConsumed bool
	// Wrapped: o índice voltou ao jogador 0 e o contador de turnos
	// foi incrementado.
	Wrapped bool
	// Forced: o limite de tentativas foi esgotado (todos pulando) e o
	// avanço foi incondicional. O chamador deve registrar um aviso.
	Forced bool
}

// NextTurn avança a vez. O algoritmo preserva o comportamento de
// decremento no lugar: uma obrigação de pular vez pendente sobre o
// jogador atual consome esta chamada sem trocar o jogador; a troca
// real só acontece na chamada seguinte. RESOLVING -> AWAITING_ROLL.
func (s *Session) NextTurn() (TurnChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State == StateGameOver {
		return TurnChange{}, ErrPartidaEncerrada
	}
	if s.State != StateResolving {
		return TurnChange{}, ErrEstadoInvalido
	}

	p := s.currentPlayerLocked()
	if p == nil {
		return TurnChange{}, ErrJogadorNaoEncontrado
	}

	s.PendingRoll = 0
	s.CurrentQuestion = nil

	// 1. Obrigação pendente sobre o jogador atual: decrementa e
	// mantém o índice onde está.
	if s.SkipTurns[p.ID] > 0 {
		s.SkipTurns[p.ID]--
		p.SkipTurns--
		s.State = StateAwaitingRoll
		return TurnChange{Player: p, SkipConsumed: true}, nil
	}

	// 2. Avança, pulando candidatos com obrigação pendente (cada um
	// é decrementado ao ser pulado). Limite de 2 × jogadores para não
	// travar se todos estiverem pulando indefinidamente.
	n := len(s.Players)
	idx := (s.CurrentPlayerIndex + 1) % n
	change := TurnChange{}

	attempts := 0
	for attempts < 2*n {
		cand := s.Players[idx]
		if s.SkipTurns[cand.ID] == 0 {
			break
		}
		s.SkipTurns[cand.ID]--
		cand.SkipTurns--
		idx = (idx + 1) % n
		attempts++
	}
	if attempts >= 2*n {
		// Avanço incondicional para o próximo índice.
		idx = (s.CurrentPlayerIndex + 1) % n
		change.Forced = true
	}

	s.CurrentPlayerIndex = idx

	// 3. Incrementa o contador de turnos ao voltar para o jogador 0.
	if idx == 0 {
		s.TurnCounter++
		change.Wrapped = true
	}

	s.State = StateAwaitingRoll
	change.Player = s.Players[idx]
	return change, nil
}

// --- Encerramento ---

func (s *Session) finishLocked(winner *Player) {
	s.Winner = winner
	s.State = StateGameOver
	s.FinishedAt = time.Now()
}

// Reset devolve a partida ao menu: zera o progresso de todos os
// jogadores e invalida continuações agendadas via geração.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.Players {
		p.resetProgress()
		s.SkipTurns[p.ID] = 0
	}

	s.State = StateIdle
	s.CurrentPlayerIndex = 0
	s.TurnCounter = 0
	s.PendingRoll = 0
	s.CurrentQuestion = nil
	s.Winner = nil
	s.StartedAt = time.Time{}
	s.FinishedAt = time.Time{}
	s.Generation++
}

// CurrentGeneration retorna a geração atual da partida. Continuações
// agendadas comparam a geração capturada com a atual antes de aplicar
// qualquer efeito.
func (s *Session) CurrentGeneration() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Generation
}

// --- Snapshot ---

// QuestionDTO expõe a pergunta em aberto sem a resposta canônica.
type QuestionDTO struct {
	Prompt  string `json:"prompt"`
	Subject string `json:"subject"`
}

// SessionStateDTO é o snapshot enviado aos clientes.
type SessionStateDTO struct {
	ID              string       `json:"id"`
	State           string       `json:"state"`
	Players         []*Player    `json:"players"`
	CurrentPlayerID int          `json:"currentPlayerId"`
	TurnCounter     int          `json:"turnCounter"`
	PendingRoll     int          `json:"pendingRoll,omitempty"`
	CurrentQuestion *QuestionDTO `json:"currentQuestion,omitempty"`
	Winner          *Player      `json:"winner,omitempty"`
	Board           []board.Jump `json:"board"`
}

// GetStateSnapshot retorna o estado atual para enviar ao cliente.
func (s *Session) GetStateSnapshot() SessionStateDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto := SessionStateDTO{
		ID:              s.ID,
		State:           s.State,
		Players:         s.Players,
		CurrentPlayerID: -1,
		TurnCounter:     s.TurnCounter,
		PendingRoll:     s.PendingRoll,
		Board:           board.AllJumps(),
	}

	if p := s.currentPlayerLocked(); p != nil {
		dto.CurrentPlayerID = p.ID
	}
	if s.CurrentQuestion != nil {
		dto.CurrentQuestion = &QuestionDTO{
			Prompt:  s.CurrentQuestion.Prompt,
			Subject: s.CurrentQuestion.Subject,
		}
	}
	if s.Winner != nil {
		dto.Winner = s.Winner
	}
	return dto
}
