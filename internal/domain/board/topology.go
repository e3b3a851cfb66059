package board

// O tabuleiro possui 120 casas (0..119). A casa 119 é a casa final.
const (
	FirstCell   = 0
	WinningCell = 119
)

// Tipos de salto.
const (
	JumpLadder = "LADDER" // destino acima da origem (escada)
	JumpSnake  = "SNAKE"  // destino abaixo da origem (cobra)
)

// Jump representa uma casa especial do tabuleiro.
type Jump struct {
	Origin      int    `json:"origin"`
	Destination int    `json:"destination"`
	Type        string `json:"type"` // LADDER | SNAKE
}

// Tabela fixa de saltos do tabuleiro (7 escadas e 7 cobras).
// A tabela é imutável: mesma origem sempre leva ao mesmo destino.
var jumps = map[int]int{
	// Escadas (sobem)
	4:   18,
	12:  33,
	22:  45,
	41:  62,
	53:  74,
	67:  90,
	88:  109,
	// Cobras (descem)
	28:  9,
	38:  15,
	51:  30,
	64:  42,
	79:  55,
	95:  71,
	116: 87,
}

// JumpDestination retorna o destino do salto se a posição for uma
// origem configurada. Consulta pura, sem mutação de estado.
func JumpDestination(position int) (int, bool) {
	dest, ok := jumps[position]
	return dest, ok
}

// IsLadder indica se a origem é uma escada (destino > origem).
func IsLadder(origin int) bool {
	dest, ok := jumps[origin]
	return ok && dest > origin
}

// IsSnake indica se a origem é uma cobra (destino < origem).
func IsSnake(origin int) bool {
	dest, ok := jumps[origin]
	return ok && dest < origin
}

// ClassifyJump retorna o tipo do salto a partir da origem e destino.
func ClassifyJump(origin, destination int) string {
	if destination > origin {
		return JumpLadder
	}
	return JumpSnake
}

// AllJumps enumera todas as casas especiais com sua classificação.
// Usado por colaboradores de renderização e depuração.
func AllJumps() []Jump {
	all := make([]Jump, 0, len(jumps))
	for origin, dest := range jumps {
		all = append(all, Jump{
			Origin:      origin,
			Destination: dest,
			Type:        ClassifyJump(origin, dest),
		})
	}
	return all
}
