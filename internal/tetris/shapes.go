package tetris

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindZ
	KindS
	KindL
	KindJ
	KindT
)

// KindCount is the number of distinct tetrominoes in the catalog.
const KindCount = 7

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// shape holds the four rotation states of a tetromino. Each state lists the
// offsets of its cells relative to the anchor; every state contains offset 0.
type shape struct {
	rotations [4][4]int
}

const w = Width

// Spawn orientations, with "()" marking the anchor:
//
//	I  []()[][]
//	O  ()[]      Z  []()        S    ()[]
//	   [][]           [][]         [][]
//	L  []()[]    J  []()[]      T  []()[]
//	   []               []           []
var catalog = [KindCount]shape{
	KindI: {rotations: [4][4]int{
		{-1, 0, 1, 2},
		{-w, 0, w, 2 * w},
		{-1, 0, 1, 2},
		{-w, 0, w, 2 * w},
	}},
	KindO: {rotations: [4][4]int{
		{0, 1, w, w + 1},
		{0, 1, w, w + 1},
		{0, 1, w, w + 1},
		{0, 1, w, w + 1},
	}},
	KindZ: {rotations: [4][4]int{
		{-1, 0, w, w + 1},
		{-w, -1, 0, w - 1},
		{-1, 0, w, w + 1},
		{-w, -1, 0, w - 1},
	}},
	KindS: {rotations: [4][4]int{
		{0, 1, w - 1, w},
		{-w, 0, 1, w + 1},
		{0, 1, w - 1, w},
		{-w, 0, 1, w + 1},
	}},
	KindL: {rotations: [4][4]int{
		{w - 1, -1, 0, 1},
		{-w - 1, -w, 0, w},
		{-1, 0, 1, -w + 1},
		{-w, 0, w, w + 1},
	}},
	KindJ: {rotations: [4][4]int{
		{-1, 0, 1, w + 1},
		{-w, 0, w, w - 1},
		{-w - 1, -1, 0, 1},
		{-w + 1, -w, 0, w},
	}},
	KindT: {rotations: [4][4]int{
		{-1, 0, 1, w},
		{-w, -1, 0, w},
		{-w, -1, 0, 1},
		{-w, 0, 1, w},
	}},
}

// Resolve returns the absolute board indices a piece of the given kind covers
// when anchored at anchor with the given rotation. Results may be negative or
// out of range; callers validate.
func Resolve(kind Kind, anchor, rotation int) [4]int {
	var cells [4]int
	offsets := catalog[kind].rotations[rotation%4]
	for i, off := range offsets {
		cells[i] = anchor + off
	}
	return cells
}

// contains reports whether idx is one of the given cells.
func contains(cells [4]int, idx int) bool {
	for _, c := range cells {
		if c == idx {
			return true
		}
	}
	return false
}
