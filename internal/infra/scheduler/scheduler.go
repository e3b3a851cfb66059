package scheduler

import (
	"time"
)

// TimerScheduler implementa ports.Scheduler usando time.AfterFunc.
// As tarefas agendadas nunca são canceladas: quem agenda é responsável
// por verificar se o efeito ainda é válido (geração da partida) antes
// de aplicá-lo.
type TimerScheduler struct{}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule executa fn após o atraso informado.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) {
	if delay <= 0 {
		go fn()
		return
	}
	time.AfterFunc(delay, fn)
}

// ImmediateScheduler executa as tarefas de forma síncrona, sem atraso.
// Útil em testes para não depender de relógio real.
type ImmediateScheduler struct{}

func NewImmediateScheduler() *ImmediateScheduler {
	return &ImmediateScheduler{}
}

func (s *ImmediateScheduler) Schedule(delay time.Duration, fn func()) {
	fn()
}
