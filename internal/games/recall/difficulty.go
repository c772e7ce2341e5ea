package recall

// Difficulty selects the board layout and punishment tier.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyImpossible
	DifficultyTri
	DifficultyEndless
)

// GridSpec describes a board layout.
type GridSpec struct {
	Cols      int
	Rows      int
	MatchSize int
}

// Total returns the number of cells on the board.
func (g GridSpec) Total() int {
	return g.Cols * g.Rows
}

var classicGrids = map[Difficulty]GridSpec{
	DifficultyEasy:       {Cols: 3, Rows: 4, MatchSize: 2},
	DifficultyMedium:     {Cols: 4, Rows: 6, MatchSize: 2},
	DifficultyHard:       {Cols: 6, Rows: 7, MatchSize: 2},
	DifficultyImpossible: {Cols: 6, Rows: 8, MatchSize: 2},
}

var triGrids = [4]GridSpec{
	{Cols: 4, Rows: 6, MatchSize: 3},
	{Cols: 5, Rows: 6, MatchSize: 3},
	{Cols: 6, Rows: 7, MatchSize: 3},
	{Cols: 6, Rows: 8, MatchSize: 3},
}

var endlessGrids = [4]GridSpec{
	{Cols: 3, Rows: 4, MatchSize: 2},
	{Cols: 4, Rows: 6, MatchSize: 2},
	{Cols: 6, Rows: 7, MatchSize: 2},
	{Cols: 6, Rows: 8, MatchSize: 2},
}

// TriGrid returns the board layout for a tri level (1-4).
func TriGrid(level int) GridSpec {
	return triGrids[clampLevel(level)-1]
}

// EndlessGrid returns the board layout for an endless level (1-4).
func EndlessGrid(level int) GridSpec {
	return endlessGrids[clampLevel(level)-1]
}

// ClassicGrid returns the board layout for a classic difficulty.
func ClassicGrid(d Difficulty) GridSpec {
	if g, ok := classicGrids[d]; ok {
		return g
	}
	return classicGrids[DifficultyEasy]
}

// Name returns the display name for a difficulty.
func (d Difficulty) Name() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyImpossible:
		return "Expert"
	case DifficultyTri:
		return "Tri"
	case DifficultyEndless:
		return "Endless"
	default:
		return "Easy"
	}
}

// Code returns the stable identifier used in saves and config.
func (d Difficulty) Code() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyImpossible:
		return "impossible"
	case DifficultyTri:
		return "tri"
	case DifficultyEndless:
		return "endless"
	default:
		return "easy"
	}
}

// DifficultyFromCode resolves a stable identifier back to a difficulty.
func DifficultyFromCode(code string) (Difficulty, bool) {
	switch code {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	case "impossible":
		return DifficultyImpossible, true
	case "tri":
		return DifficultyTri, true
	case "endless":
		return DifficultyEndless, true
	default:
		return DifficultyEasy, false
	}
}

// ClassicDifficultyForLevel maps a classic menu level (1-4) to a difficulty.
func ClassicDifficultyForLevel(level int) Difficulty {
	switch clampLevel(level) {
	case 1:
		return DifficultyEasy
	case 2:
		return DifficultyMedium
	case 3:
		return DifficultyHard
	default:
		return DifficultyImpossible
	}
}

// ClassicLevel maps a classic difficulty back to its menu level (1-4).
func ClassicLevel(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyImpossible:
		return 4
	default:
		return 1
	}
}

// LevelName returns the display name for a level (1-4). Used for tri
// levels, endless levels, and classic menu levels alike.
func LevelName(level int) string {
	switch clampLevel(level) {
	case 1:
		return "Easy"
	case 2:
		return "Normal"
	case 3:
		return "Hard"
	default:
		return "Expert"
	}
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}
