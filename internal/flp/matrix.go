package flp

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// IDMatrix is an N x N numeric matrix keyed by opaque department ids
// rather than integer indices. It backs the flow, REL, precedence, and
// hazard matrices of spec §3, per the representation note in spec §9:
// a compact ordered-id vector plus an N x N array, with an id->index map
// for ingestion. The array itself is a *mat.Dense (gonum), in place of a
// hand-rolled slice-of-slices.
type IDMatrix struct {
	ids   []string
	index map[string]int
	data  *mat.Dense
}

// NewIDMatrix creates a zero-filled N x N matrix over the given ids.
// The id order is preserved for iteration and diagnostics.
func NewIDMatrix(ids []string) *IDMatrix {
	n := len(ids)
	index := make(map[string]int, n)
	ordered := make([]string, n)
	copy(ordered, ids)
	for i, id := range ordered {
		index[id] = i
	}
	return &IDMatrix{
		ids:   ordered,
		index: index,
		data:  mat.NewDense(max(n, 1), max(n, 1), nil),
	}
}

// Set stores v at (from, to). Returns false (and does nothing) if either
// id is not part of the matrix's id set; callers should warn on false.
func (m *IDMatrix) Set(from, to string, v float64) bool {
	i, ok1 := m.index[from]
	j, ok2 := m.index[to]
	if !ok1 || !ok2 {
		return false
	}
	m.data.Set(i, j, v)
	return true
}

// Get returns the stored value at (from, to), or 0 if either id is
// unknown to this matrix (spec §7: scoring components silently skip
// their contribution when ids are unrecognized or the matrix is absent).
func (m *IDMatrix) Get(from, to string) float64 {
	i, ok1 := m.index[from]
	j, ok2 := m.index[to]
	if !ok1 || !ok2 {
		return 0
	}
	return m.data.At(i, j)
}

// SetSparse applies a sparse {(from,to): value} map to the matrix,
// returning the list of (from,to) pairs whose ids were not recognized.
func (m *IDMatrix) SetSparse(entries map[[2]string]float64) [][2]string {
	var unknown [][2]string
	for pair, v := range entries {
		if !m.Set(pair[0], pair[1], v) {
			unknown = append(unknown, pair)
		}
	}
	return unknown
}

// Dense returns the matrix as a plain [][]float64 in id order, for
// collaborators (reporting, serialization) that want a simple shape.
func (m *IDMatrix) Dense() [][]float64 {
	n := len(m.ids)
	out := make([][]float64, n)
	for i := range n {
		row := make([]float64, n)
		for j := range n {
			row[j] = m.data.At(i, j)
		}
		out[i] = row
	}
	return out
}

// IDs returns the ordered id list backing this matrix.
func (m *IDMatrix) IDs() []string {
	return m.ids
}

// relCodeValues maps REL chart letter codes to their numeric value
// (spec glossary: A=4, E=3, I=2, O=1, U=0, X=-1).
var relCodeValues = map[string]float64{
	"A": 4, "E": 3, "I": 2, "O": 1, "U": 0, "X": -1,
}

// ParseRelCode converts a REL chart letter code (case-insensitive) to
// its numeric value. Numeric strings are also accepted so that callers
// may pass either representation, per spec §6.
func ParseRelCode(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if v, ok := relCodeValues[strings.ToUpper(trimmed)]; ok {
		return v, true
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f, true
	}
	return 0, false
}
