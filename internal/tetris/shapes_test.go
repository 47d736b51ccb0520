package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		anchor   int
		rotation int
		expected [4]int
	}{
		{"I flat at spawn", KindI, 4, 0, [4]int{3, 4, 5, 6}},
		{"I upright reaches above top", KindI, 4, 1, [4]int{-6, 4, 14, 24}},
		{"O ignores rotation", KindO, 4, 3, [4]int{4, 5, 14, 15}},
		{"T pointing down", KindT, 54, 0, [4]int{53, 54, 55, 64}},
		{"rotation wraps modulo 4", KindI, 4, 5, [4]int{-6, 4, 14, 24}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.kind, tc.anchor, tc.rotation))
		})
	}
}

func TestCatalogShapes(t *testing.T) {
	assert.Len(t, catalog, KindCount)

	for k := Kind(0); k < KindCount; k++ {
		for r := range 4 {
			offsets := catalog[k].rotations[r]

			seen := make(map[int]bool)
			for _, off := range offsets {
				seen[off] = true
			}
			assert.Len(t, seen, 4, "kind %v rotation %d has overlapping cells", k, r)
			assert.True(t, seen[0], "kind %v rotation %d does not cover its anchor", k, r)

			// Placed in open space, every state is four connected cells.
			cells := Resolve(k, 10*Width+4, r)
			assert.LessOrEqual(t, colSpan(cells), 3)
			assert.True(t, connected(cells), "kind %v rotation %d is not connected", k, r)
		}
	}
}

func TestKindString(t *testing.T) {
	names := ""
	for k := Kind(0); k < KindCount; k++ {
		names += k.String()
	}
	assert.Equal(t, "IOZSLJT", names)
	assert.Equal(t, "?", Kind(42).String())
}

// connected reports whether the cells form one orthogonally connected group.
func connected(cells [4]int) bool {
	reached := map[int]bool{cells[0]: true}
	for changed := true; changed; {
		changed = false
		for _, c := range cells {
			if reached[c] {
				continue
			}
			for r := range reached {
				dx := c%Width - r%Width
				dy := c/Width - r/Width
				if dx*dx+dy*dy == 1 {
					reached[c] = true
					changed = true
					break
				}
			}
		}
	}
	return len(reached) == 4
}
