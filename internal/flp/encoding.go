package flp

import (
	"fmt"
	"math/rand"
)

// EncodingEntry binds one movable department to a preferred anchor
// index into the PLP set active at the time it is considered (spec
// §4.3's genotype: an ordered list of (department, PLP index) pairs).
type EncodingEntry struct {
	DeptID      string
	AnchorIndex int
}

// Encoding is the genotype Construct consumes: one entry per movable
// department, in the order the constructor should attempt placement.
type Encoding []EncodingEntry

// Clone returns an independent copy of the encoding.
func (e Encoding) Clone() Encoding {
	return append(Encoding(nil), e...)
}

// NewRandomEncoding builds an encoding in catalogue order with a random
// preferred-anchor index for every movable department in prob. plpLen
// is the size of the initial PLP set (facility, fixed departments,
// obstacles, special locations) the anchor indices are drawn against;
// Construct grows the PLP set as it goes and reduces each anchor index
// modulo the PLP count at the time the entry is consumed.
func NewRandomEncoding(prob *Problem, plpLen int, rng *rand.Rand) Encoding {
	enc := make(Encoding, len(prob.MovableOrder))
	for i, id := range prob.MovableOrder {
		anchor := 0
		if plpLen > 0 {
			anchor = rng.Intn(plpLen)
		}
		enc[i] = EncodingEntry{DeptID: id, AnchorIndex: anchor}
	}
	return enc
}

// ValidateEncoding checks the coverage property required by spec §7:
// every movable department in prob appears in e exactly once, and e
// names no department prob does not have.
func ValidateEncoding(prob *Problem, e Encoding) error {
	seen := make(map[string]int, len(e))
	for _, entry := range e {
		seen[entry.DeptID]++
		d, ok := prob.Departments[entry.DeptID]
		if !ok {
			return fmt.Errorf("encoding references unknown department %q", entry.DeptID)
		}
		if d.Fixed {
			return fmt.Errorf("encoding references fixed department %q", entry.DeptID)
		}
	}
	for _, id := range prob.MovableOrder {
		if seen[id] != 1 {
			return fmt.Errorf("encoding must cover movable department %q exactly once, got %d", id, seen[id])
		}
	}
	if len(seen) != len(prob.MovableOrder) {
		return fmt.Errorf("encoding covers %d departments, expected %d movable departments", len(seen), len(prob.MovableOrder))
	}
	return nil
}
