package answer

import (
	"strconv"
	"strings"
	"unicode"
)

// Limiar de similaridade para o casamento aproximado (Levenshtein).
const similarityThreshold = 0.8

// Tolerância para comparação numérica.
const numericTolerance = 0.01

// Comprimento mínimo para o atalho de substring.
const substringMinLen = 3

// Normalize prepara uma resposta para comparação: minúsculas, remoção
// de espaços nas bordas, colapso de espaços internos e remoção de
// caracteres que não sejam letras ou dígitos. Letras acentuadas e de
// outros alfabetos são preservadas (o banco de perguntas usa português).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case r == '.' || r == ',' || r == '-':
			// Mantém separadores que fazem parte de números (3.14, -5)
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// CheckAnswer compara a resposta do jogador com a resposta canônica.
// A verificação é determinística, sem efeitos colaterais, e aplica as
// regras nesta ordem (a primeira que casar vence):
//  1. igualdade exata após normalização;
//  2. igualdade numérica com tolerância de 0.01;
//  3. atalho de substring (mínimo de 3 caracteres);
//  4. similaridade de Levenshtein >= 0.8.
func CheckAnswer(userAnswer, canonicalAnswer string) bool {
	a := Normalize(userAnswer)
	b := Normalize(canonicalAnswer)

	// Vazio contra vazio casa; vazio contra não-vazio, não.
	if a == "" || b == "" {
		return a == b
	}

	if a == b {
		return true
	}

	if numericMatch(a, b) {
		return true
	}

	if substringMatch(a, b) {
		return true
	}

	return Similarity(a, b) >= similarityThreshold
}

// numericMatch compara as duas respostas como números, se ambas forem
// numéricas. Vírgula decimal é aceita (formato brasileiro).
func numericMatch(a, b string) bool {
	na, errA := parseNumber(a)
	nb, errB := parseNumber(b)
	if errA != nil || errB != nil {
		return false
	}

	diff := na - nb
	if diff < 0 {
		diff = -diff
	}
	return diff < numericTolerance
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// substringMatch aceita respostas parciais: se uma string normalizada
// (com ao menos 3 caracteres) estiver contida na outra, considera certo.
func substringMatch(a, b string) bool {
	if len([]rune(a)) >= substringMinLen && strings.Contains(b, a) {
		return true
	}
	if len([]rune(b)) >= substringMinLen && strings.Contains(a, b) {
		return true
	}
	return false
}

// Similarity calcula a similaridade normalizada de Levenshtein:
// 1 - distancia(a,b) / max(len(a), len(b)). Strings vazias entre si
// têm similaridade 1.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	dist := levenshtein(ra, rb)
	return 1 - float64(dist)/float64(maxLen)
}

// levenshtein calcula a distância de edição clássica (inserção,
// remoção e substituição, todas com custo 1).
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j]+1,      // remoção
				curr[j-1]+1,    // inserção
				prev[j-1]+cost, // substituição
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
