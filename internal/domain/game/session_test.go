package game

import (
	"errors"
	"testing"

	"trilhaquiz/internal/domain/board"
	"trilhaquiz/internal/domain/bot"
	"trilhaquiz/internal/domain/question"
)

func newTestSession(t *testing.T, names ...string) *Session {
	t.Helper()
	s := NewSession("abc123", "host-1", []string{"História"}, 7)
	for _, n := range names {
		if _, err := s.AddPlayer(n, KindHuman, ""); err != nil {
			t.Fatalf("AddPlayer(%s) retornou erro: %v", n, err)
		}
	}
	return s
}

func startTestSession(t *testing.T, names ...string) *Session {
	t.Helper()
	s := newTestSession(t, names...)
	if err := s.Start(); err != nil {
		t.Fatalf("Start retornou erro: %v", err)
	}
	return s
}

func testQuestion(answer string) *question.Question {
	return &question.Question{ID: "q1", Prompt: "?", Answer: answer, Subject: "História"}
}

// answerCurrent leva o jogador da vez até a fase de resposta e
// responde com o texto informado.
func answerCurrent(t *testing.T, s *Session, text string) AnswerResult {
	t.Helper()
	if _, err := s.RollDice(); err != nil {
		t.Fatalf("RollDice retornou erro: %v", err)
	}
	mv, err := s.MoveCurrentPlayer()
	if err != nil {
		t.Fatalf("MoveCurrentPlayer retornou erro: %v", err)
	}
	if mv.Won {
		t.Fatal("o jogador não deveria vencer neste cenário")
	}
	if _, err := s.DrawQuestion([]*question.Question{testQuestion("brasil")}); err != nil {
		t.Fatalf("DrawQuestion retornou erro: %v", err)
	}
	res, err := s.SubmitAnswer(text)
	if err != nil {
		t.Fatalf("SubmitAnswer retornou erro: %v", err)
	}
	return res
}

// --- Registro de jogadores ---

// TestAddPlayerValidaNome cobre nome vazio e duplicado (sem
// diferenciar maiúsculas).
func TestAddPlayerValidaNome(t *testing.T) {
	s := newTestSession(t, "Ana")

	if _, err := s.AddPlayer("   ", KindHuman, ""); !errors.Is(err, ErrNomeVazio) {
		t.Errorf("nome vazio: erro = %v, esperava %v", err, ErrNomeVazio)
	}
	if _, err := s.AddPlayer("ANA", KindHuman, ""); !errors.Is(err, ErrNomeDuplicado) {
		t.Errorf("nome duplicado: erro = %v, esperava %v", err, ErrNomeDuplicado)
	}
}

// TestQuintoJogadorRejeitado garante o limite de 4 jogadores sem
// alterar os já registrados.
func TestQuintoJogadorRejeitado(t *testing.T) {
	s := newTestSession(t, "Ana", "Bia", "Caio", "Davi")

	if _, err := s.AddPlayer("Eva", KindHuman, ""); !errors.Is(err, ErrLimiteJogadores) {
		t.Fatalf("erro = %v, esperava %v", err, ErrLimiteJogadores)
	}
	if len(s.Players) != 4 {
		t.Fatalf("os 4 jogadores existentes deveriam permanecer, obteve %d", len(s.Players))
	}
}

// TestCoresEmRodizio verifica a atribuição de cores pela ordem de
// registro.
func TestCoresEmRodizio(t *testing.T) {
	s := newTestSession(t, "Ana", "Bia", "Caio", "Davi")
	for i, p := range s.Players {
		if p.Color != colorPalette[i] {
			t.Errorf("cor do jogador %d = %s, esperava %s", i, p.Color, colorPalette[i])
		}
	}
}

// TestBotExigeDificuldadeValida garante o enum fechado de dificuldade.
func TestBotExigeDificuldadeValida(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddPlayer("Robo", KindBot, "NIGHTMARE"); !errors.Is(err, ErrDificuldadeInvalida) {
		t.Fatalf("erro = %v, esperava %v", err, ErrDificuldadeInvalida)
	}
	p, err := s.AddPlayer("Robo", KindBot, bot.DifficultyHard)
	if err != nil {
		t.Fatalf("AddPlayer(bot) retornou erro: %v", err)
	}
	if !p.IsBot() || p.Difficulty != bot.DifficultyHard {
		t.Fatalf("bot mal construído: %+v", p)
	}
}

// TestRemovePlayerReajustaIndice confirma que o índice da vez volta ao
// intervalo válido após remoção.
func TestRemovePlayerReajustaIndice(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")

	// Avança a vez para Bia (índice 1)
	answerCurrent(t, s, "brasil")
	if _, err := s.NextTurn(); err != nil {
		t.Fatalf("NextTurn retornou erro: %v", err)
	}
	if s.CurrentPlayerIndex != 1 {
		t.Fatalf("índice = %d, esperava 1", s.CurrentPlayerIndex)
	}

	if err := s.RemovePlayer(s.Players[1].ID); err != nil {
		t.Fatalf("RemovePlayer retornou erro: %v", err)
	}
	if s.CurrentPlayerIndex != 0 {
		t.Fatalf("índice após remoção = %d, esperava 0", s.CurrentPlayerIndex)
	}
}

// TestIDsNaoSaoReutilizados garante que remover um jogador não recicla
// o ID dele para o próximo registro.
func TestIDsNaoSaoReutilizados(t *testing.T) {
	s := newTestSession(t, "Ana", "Bia")
	removed := s.Players[1].ID
	if err := s.RemovePlayer(removed); err != nil {
		t.Fatalf("RemovePlayer retornou erro: %v", err)
	}
	p, err := s.AddPlayer("Caio", KindHuman, "")
	if err != nil {
		t.Fatalf("AddPlayer retornou erro: %v", err)
	}
	if p.ID == removed {
		t.Fatalf("ID %d foi reutilizado", removed)
	}
}

// --- Ciclo de turno ---

// TestStartExigeDoisJogadores cobre o início da partida.
func TestStartExigeDoisJogadores(t *testing.T) {
	s := newTestSession(t, "Ana")
	if err := s.Start(); !errors.Is(err, ErrPoucosJogadores) {
		t.Fatalf("erro = %v, esperava %v", err, ErrPoucosJogadores)
	}

	if _, err := s.AddPlayer("Bia", KindHuman, ""); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start retornou erro: %v", err)
	}
	if s.State != StateAwaitingRoll || s.TurnCounter != 1 {
		t.Fatalf("estado = %s, turno = %d", s.State, s.TurnCounter)
	}
}

// TestRollDiceForaDeHoraEhErroDeEstado garante que chamadas fora do
// estado válido são rejeitadas sem corromper a sessão.
func TestRollDiceForaDeHoraEhErroDeEstado(t *testing.T) {
	s := newTestSession(t, "Ana", "Bia")
	if _, err := s.RollDice(); !errors.Is(err, ErrEstadoInvalido) {
		t.Fatalf("erro = %v, esperava %v", err, ErrEstadoInvalido)
	}
	if s.State != StateIdle {
		t.Fatalf("estado foi corrompido: %s", s.State)
	}
}

// TestRollDiceProduzValorEntre1e6 verifica o intervalo do dado.
func TestRollDiceProduzValorEntre1e6(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := NewSession("abc123", "host-1", nil, seed)
		s.AddPlayer("Ana", KindHuman, "")
		s.AddPlayer("Bia", KindHuman, "")
		s.Start()

		roll, err := s.RollDice()
		if err != nil {
			t.Fatalf("RollDice retornou erro: %v", err)
		}
		if roll.Value < 1 || roll.Value > DiceSides {
			t.Fatalf("valor do dado fora do intervalo: %d", roll.Value)
		}
	}
}

// TestMoveSemRolagemEhErroDeEstado garante que mover sem rolagem
// pendente é rejeitado.
func TestMoveSemRolagemEhErroDeEstado(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	if _, err := s.MoveCurrentPlayer(); !errors.Is(err, ErrEstadoInvalido) {
		t.Fatalf("erro = %v, esperava %v", err, ErrEstadoInvalido)
	}
}

// TestPosicaoNuncaPassaDaCasaFinal: rolar 6 na casa 117 leva à casa
// 119 (e vence imediatamente, antes de qualquer consulta de salto).
func TestPosicaoNuncaPassaDaCasaFinal(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	s.Players[0].Position = 117

	// Rola até sair um valor que ultrapasse a casa final
	roll, err := s.RollDice()
	if err != nil {
		t.Fatalf("RollDice retornou erro: %v", err)
	}
	for roll.Value < 3 {
		s.PendingRoll = 0
		s.State = StateAwaitingRoll
		roll, err = s.RollDice()
		if err != nil {
			t.Fatalf("RollDice retornou erro: %v", err)
		}
	}

	mv, err := s.MoveCurrentPlayer()
	if err != nil {
		t.Fatalf("MoveCurrentPlayer retornou erro: %v", err)
	}
	if mv.Final != board.WinningCell {
		t.Fatalf("posição final = %d, esperava %d", mv.Final, board.WinningCell)
	}
	if !mv.Won || s.State != StateGameOver || s.Winner != s.Players[0] {
		t.Fatal("o jogador deveria ter vencido")
	}
	if mv.Jump != nil {
		t.Fatal("a vitória por clamp não deveria consultar saltos")
	}
}

// TestSaltoEhAplicadoUmaUnicaVez: um salto é resolvido de imediato e o
// destino não dispara novos saltos.
func TestSaltoEhAplicadoUmaUnicaVez(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	// Casa 4 é uma escada para 18 na tabela de referência.
	s.Players[0].Position = 3

	roll, err := s.RollDice()
	if err != nil {
		t.Fatalf("RollDice retornou erro: %v", err)
	}
	for roll.Value != 1 {
		s.PendingRoll = 0
		s.State = StateAwaitingRoll
		roll, err = s.RollDice()
		if err != nil {
			t.Fatalf("RollDice retornou erro: %v", err)
		}
	}

	mv, err := s.MoveCurrentPlayer()
	if err != nil {
		t.Fatalf("MoveCurrentPlayer retornou erro: %v", err)
	}
	if mv.Jump == nil || mv.Jump.Origin != 4 || mv.Jump.Type != board.JumpLadder {
		t.Fatalf("salto esperado em 4, obteve %+v", mv.Jump)
	}
	dest, _ := board.JumpDestination(4)
	if mv.Final != dest || s.Players[0].Position != dest {
		t.Fatalf("posição final = %d, esperava %d", mv.Final, dest)
	}
	if s.State != StateAwaitingAnswer {
		t.Fatalf("estado = %s, esperava %s", s.State, StateAwaitingAnswer)
	}
}

// TestDrawQuestionComPoolVazio cobre NoQuestionsAvailable.
func TestDrawQuestionComPoolVazio(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	if _, err := s.RollDice(); err != nil {
		t.Fatal(err)
	}
	mv, err := s.MoveCurrentPlayer()
	if err != nil || mv.Won {
		t.Fatalf("movimento inesperado: %+v, %v", mv, err)
	}
	if _, err := s.DrawQuestion(nil); !errors.Is(err, ErrSemPerguntas) {
		t.Fatalf("erro = %v, esperava %v", err, ErrSemPerguntas)
	}
}

// TestApenasUmaPerguntaEmAberto garante a ordenação: DrawQuestion não
// pode ser chamado de novo antes da resposta anterior ser resolvida.
func TestApenasUmaPerguntaEmAberto(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	if _, err := s.RollDice(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.MoveCurrentPlayer(); err != nil {
		t.Fatal(err)
	}
	pool := []*question.Question{testQuestion("brasil")}
	if _, err := s.DrawQuestion(pool); err != nil {
		t.Fatalf("DrawQuestion retornou erro: %v", err)
	}
	if _, err := s.DrawQuestion(pool); !errors.Is(err, ErrEstadoInvalido) {
		t.Fatalf("segunda pergunta em aberto: erro = %v, esperava %v", err, ErrEstadoInvalido)
	}
}

// TestRespostaCorretaIncrementaContadores cobre o caminho feliz da
// resposta.
func TestRespostaCorretaIncrementaContadores(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	res := answerCurrent(t, s, "Brasil")

	if !res.Correct || res.SkipApplied {
		t.Fatalf("resultado inesperado: %+v", res)
	}
	p := s.Players[0]
	if p.QuestionsAnswered != 1 || p.CorrectAnswers != 1 || p.SkipTurns != 0 {
		t.Fatalf("contadores inesperados: %+v", p)
	}
	if p.Accuracy() != 100 {
		t.Fatalf("accuracy = %d, esperava 100", p.Accuracy())
	}
	if s.State != StateResolving {
		t.Fatalf("estado = %s, esperava %s", s.State, StateResolving)
	}
}

// TestRespostaErradaAplicaPularVez: errar define a obrigação em
// exatamente 1 (sobrescreve, não acumula).
func TestRespostaErradaAplicaPularVez(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	p := s.Players[0]

	res := answerCurrent(t, s, "resposta totalmente errada xyz")
	if res.Correct || !res.SkipApplied {
		t.Fatalf("resultado inesperado: %+v", res)
	}
	if p.SkipTurns != 1 || s.SkipTurns[p.ID] != 1 {
		t.Fatalf("obrigação deveria ser exatamente 1: player=%d map=%d", p.SkipTurns, s.SkipTurns[p.ID])
	}
	if p.Accuracy() != 0 {
		t.Fatalf("accuracy = %d, esperava 0", p.Accuracy())
	}
}

// TestPularVezConsomeUmaChamada reproduz o traçado exato do avanço de
// turno: com 2 jogadores A (índice 0) e B (índice 1), A erra ->
// skipTurns[A] = 1. A 1ª chamada de NextTurn decrementa e mantém A
// como jogador da vez; a 2ª chamada avança para B.
func TestPularVezConsomeUmaChamada(t *testing.T) {
	s := startTestSession(t, "A", "B")

	res := answerCurrent(t, s, "errada xyz")
	if !res.SkipApplied {
		t.Fatal("A deveria ter recebido a obrigação de pular vez")
	}

	// Chamada #1: consome a obrigação, índice permanece em 0.
	change, err := s.NextTurn()
	if err != nil {
		t.Fatalf("NextTurn #1 retornou erro: %v", err)
	}
	if !change.SkipConsumed {
		t.Fatal("a 1ª chamada deveria consumir a obrigação")
	}
	if s.CurrentPlayerIndex != 0 || s.SkipTurns[s.Players[0].ID] != 0 {
		t.Fatalf("após #1: índice = %d, skip = %d", s.CurrentPlayerIndex, s.SkipTurns[s.Players[0].ID])
	}

	// Chamada #2: avanço real para B.
	answerCurrent(t, s, "brasil") // A joga de novo e acerta
	change, err = s.NextTurn()
	if err != nil {
		t.Fatalf("NextTurn #2 retornou erro: %v", err)
	}
	if change.SkipConsumed {
		t.Fatal("a 2ª chamada não deveria consumir obrigação")
	}
	if s.CurrentPlayerIndex != 1 || change.Player.Name != "B" {
		t.Fatalf("após #2: índice = %d, jogador = %s", s.CurrentPlayerIndex, change.Player.Name)
	}
}

// TestNextTurnPulaCandidatoComObrigacao: um candidato intermediário
// com obrigação pendente é pulado (e decrementado) no avanço.
func TestNextTurnPulaCandidatoComObrigacao(t *testing.T) {
	s := startTestSession(t, "A", "B", "C")

	// B recebe obrigação diretamente
	b := s.Players[1]
	b.SkipTurns = 1
	s.SkipTurns[b.ID] = 1

	answerCurrent(t, s, "brasil") // A acerta
	change, err := s.NextTurn()
	if err != nil {
		t.Fatalf("NextTurn retornou erro: %v", err)
	}
	if change.Player.Name != "C" || s.CurrentPlayerIndex != 2 {
		t.Fatalf("a vez deveria ser de C, obteve %s (índice %d)", change.Player.Name, s.CurrentPlayerIndex)
	}
	if b.SkipTurns != 0 || s.SkipTurns[b.ID] != 0 {
		t.Fatal("a obrigação de B deveria ter sido consumida ao ser pulado")
	}
}

// TestNextTurnNaoTravaComObrigacoesEnormes: mesmo com obrigações
// absurdas sobre os demais jogadores, o avanço termina (limite de
// 2 × jogadores) e cada candidato pulado perde exatamente uma unidade
// por passagem.
func TestNextTurnNaoTravaComObrigacoesEnormes(t *testing.T) {
	s := startTestSession(t, "A", "B")

	b := s.Players[1]
	b.SkipTurns = 100
	s.SkipTurns[b.ID] = 100

	s.State = StateResolving
	change, err := s.NextTurn()
	if err != nil {
		t.Fatalf("NextTurn retornou erro: %v", err)
	}
	// B é pulado (decrementado) e a vez volta para A.
	if change.Player.Name != "A" || s.CurrentPlayerIndex != 0 {
		t.Fatalf("a vez deveria voltar para A, obteve %s", change.Player.Name)
	}
	if !change.Wrapped {
		t.Fatal("a volta ao jogador 0 deveria marcar Wrapped")
	}
	if b.SkipTurns != 99 || s.SkipTurns[b.ID] != 99 {
		t.Fatalf("B deveria perder exatamente 1 unidade, tem %d", b.SkipTurns)
	}
}

// TestContadorDeTurnosIncrementaNaVolta: o contador cresce quando o
// índice volta ao jogador 0.
func TestContadorDeTurnosIncrementaNaVolta(t *testing.T) {
	s := startTestSession(t, "A", "B")
	before := s.TurnCounter

	answerCurrent(t, s, "brasil") // A acerta
	if _, err := s.NextTurn(); err != nil {
		t.Fatal(err)
	}
	if s.TurnCounter != before {
		t.Fatal("o contador não deveria crescer ao avançar para B")
	}

	answerCurrent(t, s, "brasil") // B acerta
	change, err := s.NextTurn()
	if err != nil {
		t.Fatal(err)
	}
	if !change.Wrapped || s.TurnCounter != before+1 {
		t.Fatalf("o contador deveria crescer na volta ao jogador 0: %d", s.TurnCounter)
	}
}

// TestResetZeraProgressoEInvalidaGeracao confirma o reset da partida.
func TestResetZeraProgressoEInvalidaGeracao(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	answerCurrent(t, s, "errada xyz")
	gen := s.CurrentGeneration()

	s.Reset()

	if s.CurrentGeneration() != gen+1 {
		t.Fatal("o reset deveria incrementar a geração")
	}
	if s.State != StateIdle || s.Winner != nil || s.CurrentQuestion != nil {
		t.Fatalf("estado após reset: %s", s.State)
	}
	for _, p := range s.Players {
		if p.Position != 0 || p.QuestionsAnswered != 0 || p.CorrectAnswers != 0 || p.SkipTurns != 0 {
			t.Fatalf("progresso não zerado: %+v", p)
		}
		if s.SkipTurns[p.ID] != 0 {
			t.Fatal("mapa de obrigações não zerado")
		}
	}
}

// TestSnapshotNaoExpoeResposta garante que a resposta canônica nunca
// vai para o cliente.
func TestSnapshotNaoExpoeResposta(t *testing.T) {
	s := startTestSession(t, "Ana", "Bia")
	if _, err := s.RollDice(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.MoveCurrentPlayer(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.DrawQuestion([]*question.Question{testQuestion("segredo")}); err != nil {
		t.Fatal(err)
	}

	snap := s.GetStateSnapshot()
	if snap.CurrentQuestion == nil {
		t.Fatal("o snapshot deveria conter a pergunta em aberto")
	}
	if snap.CurrentQuestion.Prompt != "?" || snap.CurrentQuestion.Subject != "História" {
		t.Fatalf("pergunta inesperada: %+v", snap.CurrentQuestion)
	}
}
