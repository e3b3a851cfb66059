package persistence

import (
	"errors"
	"sync"

	"trilhaquiz/internal/domain/game"
	"trilhaquiz/internal/ports"
)

// InMemoryMatchRepository implementa MatchRepository usando memória RAM.
// Partidas em andamento não são persistidas.
type InMemoryMatchRepository struct {
	matches sync.Map // Map[string]*game.Session
}

func NewInMemoryMatchRepository() ports.MatchRepository {
	return &InMemoryMatchRepository{}
}

func (r *InMemoryMatchRepository) SaveMatch(match *game.Session) error {
	r.matches.Store(match.ID, match)
	return nil
}

func (r *InMemoryMatchRepository) FindMatchByID(id string) (*game.Session, error) {
	val, ok := r.matches.Load(id)
	if !ok {
		return nil, nil // Não encontrado (sem erro)
	}

	match, ok := val.(*game.Session)
	if !ok {
		return nil, errors.New("erro de tipo no repositório de partidas")
	}
	return match, nil
}

func (r *InMemoryMatchRepository) DeleteMatch(id string) error {
	r.matches.Delete(id)
	return nil
}
