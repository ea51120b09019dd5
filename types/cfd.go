package types

import "strings"

// Boundary marks which outer walls of the cavity a cell touches. A cell in a
// single row or column mesh may touch opposite walls at once.
type Boundary uint8

const (
	Left Boundary = 1 << iota
	Right
	Bottom
	Top
)

const Interior Boundary = 0

var boundaryNames = []struct {
	flag Boundary
	name string
}{
	{Left, "Left"},
	{Right, "Right"},
	{Bottom, "Bottom"},
	{Top, "Top"},
}

func NewBoundary(row, col, nx, ny int) (b Boundary) {
	if col == 0 {
		b |= Left
	}
	if col == nx-1 {
		b |= Right
	}
	if row == 0 {
		b |= Bottom
	}
	if row == ny-1 {
		b |= Top
	}
	return
}

func (b Boundary) Has(flag Boundary) bool {
	return b&flag != 0
}

func (b Boundary) String() string {
	if b == Interior {
		return "Interior"
	}
	var names []string
	for _, bn := range boundaryNames {
		if b.Has(bn.flag) {
			names = append(names, bn.name)
		}
	}
	return strings.Join(names, "|")
}
