package bot

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

// TestDecideRejeitaDificuldadeDesconhecida garante erro para valores
// fora do conjunto fechado de dificuldades.
func TestDecideRejeitaDificuldadeDesconhecida(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Decide(rng, "IMPOSSIBLE")
	if !errors.Is(err, ErrDificuldadeInvalida) {
		t.Fatalf("erro = %v, esperava %v", err, ErrDificuldadeInvalida)
	}
}

// TestTempoDePensamentoPorDificuldade confere a tabela fixa de atrasos.
func TestTempoDePensamentoPorDificuldade(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		difficulty string
		want       time.Duration
	}{
		{DifficultyEasy, 2000 * time.Millisecond},
		{DifficultyMedium, 1500 * time.Millisecond},
		{DifficultyHard, 1000 * time.Millisecond},
	}
	for _, c := range cases {
		d, err := Decide(rng, c.difficulty)
		if err != nil {
			t.Fatalf("Decide(%s) retornou erro: %v", c.difficulty, err)
		}
		if d.ThinkTime != c.want {
			t.Errorf("ThinkTime(%s) = %v, esperava %v", c.difficulty, d.ThinkTime, c.want)
		}
	}
}

// TestTaxaDeAcertoAproximaProbabilidadeConfigurada é uma propriedade
// estatística: com semente fixa e muitas amostras, a taxa de acerto
// deve ficar próxima da probabilidade da tabela.
func TestTaxaDeAcertoAproximaProbabilidadeConfigurada(t *testing.T) {
	cases := []struct {
		difficulty string
		want       float64
	}{
		{DifficultyEasy, 0.3},
		{DifficultyMedium, 0.6},
		{DifficultyHard, 0.8},
	}

	const trials = 10000
	const tolerance = 0.03

	for _, c := range cases {
		rng := rand.New(rand.NewSource(42))
		correct := 0
		for i := 0; i < trials; i++ {
			d, err := Decide(rng, c.difficulty)
			if err != nil {
				t.Fatalf("Decide(%s) retornou erro: %v", c.difficulty, err)
			}
			if d.Correct {
				correct++
			}
		}

		rate := float64(correct) / float64(trials)
		if rate < c.want-tolerance || rate > c.want+tolerance {
			t.Errorf("taxa de acerto(%s) = %v, esperava ~%v", c.difficulty, rate, c.want)
		}
	}
}

// TestValidDifficulty confere o conjunto fechado de dificuldades.
func TestValidDifficulty(t *testing.T) {
	for _, d := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if !ValidDifficulty(d) {
			t.Errorf("%s deveria ser válida", d)
		}
	}
	if ValidDifficulty("easy") {
		t.Error("dificuldade em minúsculas não deveria ser aceita")
	}
}
