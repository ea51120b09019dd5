package utils

import "fmt"

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

/*
NewStaggeredRowMap maps a row major cell index of an nx by ny mesh into a flat
layout that carries one extra slot at the end of every row, so flat rows are
nx+1 wide:

	flat[i] = i + i/nx

The velocity mesh sitting between pressure cells along a row has one fewer
column than the pressure mesh, this map lines its cells up with the pressure
cell to their west.
*/
func NewStaggeredRowMap(nx, ny int) (I Index) {
	I = NewIndex(nx * ny)
	for i := range I {
		I[i] = i + i/nx
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Scale(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val * ival
	}
	return r
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

// SubsetFloat gathers vals at the positions listed in I
func (I Index) SubsetFloat(vals []float64) (r []float64) {
	r = make([]float64, len(I))
	for i, ind := range I {
		r[i] = vals[ind]
	}
	return
}

// Complement returns the indices in [0, N) that are not present in I, ascending
func (I Index) Complement(N int) (r Index, err error) {
	var (
		present = make([]bool, N)
	)
	for _, ind := range I {
		if ind < 0 || ind > N-1 {
			err = fmt.Errorf("dimension bounds error, index %d outside of [0, %d)", ind, N)
			return
		}
		present[ind] = true
	}
	for i, p := range present {
		if !p {
			r = append(r, i)
		}
	}
	return
}
