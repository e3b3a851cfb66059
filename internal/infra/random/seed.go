package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed gera uma semente aleatória usando crypto/rand.
// Usada para inicializar o gerador de números da partida (dados e
// sorteio de perguntas).
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("erro ao ler semente aleatória: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
