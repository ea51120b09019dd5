package LidDrivenCavity

import (
	"fmt"

	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

type Equation uint8

const (
	Unassigned Equation = iota
	Continuity
	XMomentum
	YMomentum
	Placeholder // Unknown with no governing equation, its residual is the unknown itself
)

func (eq Equation) String() string {
	switch eq {
	case Continuity:
		return "Continuity"
	case XMomentum:
		return "X Momentum"
	case YMomentum:
		return "Y Momentum"
	case Placeholder:
		return "Placeholder"
	default:
		return "Unassigned"
	}
}

/*
Layout describes how the flat state vector

	X = [P0, U0, V0, P1, U1, V1, ... Pn-1, Un-1, Vn-1]

maps onto the three staggered meshes, and which equation owns each residual
slot. It depends only on the mesh shapes, so it is built once per graph.

The x momentum mesh is one column narrower than the pressure mesh: the last
U slot of every pressure row is a placeholder. The y momentum mesh is one row
shorter: the V slots of the last pressure row are placeholders.
*/
type Layout struct {
	N        int         // Number of pressure cells
	NxP, NyP int         // Pressure mesh shape the layout was built for
	UFlat    utils.Index // X momentum cell index -> flat triple index
	NumU     int
	NumV     int
	// Residual slot written for each cell, indexed by the cell on its own mesh
	ContinuitySlots  utils.Index
	XMomentumSlots   utils.Index
	YMomentumSlots   utils.Index
	PlaceholderSlots utils.Index
	Coverage         []Equation // Owner of each residual slot
}

func NewLayout(g *StaggeredGrid.Graph) (l *Layout, err error) {
	if err = g.Validate(); err != nil {
		return
	}
	var (
		pm, xm, ym = g.PressureMesh, g.NSXMesh, g.NSYMesh
	)
	l = &Layout{
		N:     pm.Len(),
		NxP:   pm.Nx,
		NyP:   pm.Ny,
		UFlat: utils.NewStaggeredRowMap(xm.Nx, xm.Ny),
		NumU:  xm.Len(),
		NumV:  ym.Len(),
	}
	l.ContinuitySlots = utils.NewRange(0, l.N-1).Scale(3)
	l.XMomentumSlots = l.UFlat.Scale(3).Add(1)
	l.YMomentumSlots = utils.NewRange(0, l.NumV-1).Scale(3).Add(2)
	var (
		assigned = make(utils.Index, 0, l.N+l.NumU+l.NumV)
	)
	assigned = append(assigned, l.ContinuitySlots...)
	assigned = append(assigned, l.XMomentumSlots...)
	assigned = append(assigned, l.YMomentumSlots...)
	if l.PlaceholderSlots, err = assigned.Complement(l.NumSlots()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateLength, err)
	}
	l.Coverage, err = newCoverage(l.NumSlots(), map[Equation]utils.Index{
		Continuity:  l.ContinuitySlots,
		XMomentum:   l.XMomentumSlots,
		YMomentum:   l.YMomentumSlots,
		Placeholder: l.PlaceholderSlots,
	})
	if err != nil {
		return nil, err
	}
	return
}

func (l *Layout) NumSlots() int { return 3 * l.N }

// newCoverage checks that the write sets partition [0, nSlots) exactly
func newCoverage(nSlots int, sets map[Equation]utils.Index) (cov []Equation, err error) {
	cov = make([]Equation, nSlots)
	for _, eq := range []Equation{Continuity, XMomentum, YMomentum, Placeholder} {
		for _, slot := range sets[eq] {
			switch {
			case slot < 0 || slot > nSlots-1:
				return nil, fmt.Errorf("%w: %s slot %d outside of [0, %d)", ErrStateLength, eq, slot, nSlots)
			case cov[slot] != Unassigned:
				return nil, fmt.Errorf("%w: slot %d claimed by %s and %s", ErrDuplicateEquation, slot, cov[slot], eq)
			}
			cov[slot] = eq
		}
	}
	var missing utils.Index
	for slot, eq := range cov {
		if eq == Unassigned {
			missing = append(missing, slot)
		}
	}
	if len(missing) != 0 {
		return nil, &MissingEquationsError{Slots: missing}
	}
	return
}

// sameShape reports whether g still has the mesh shapes the layout was built for
func (l *Layout) sameShape(g *StaggeredGrid.Graph) (err error) {
	if err = g.Validate(); err != nil {
		return
	}
	if g.PressureMesh.Nx != l.NxP || g.PressureMesh.Ny != l.NyP {
		err = fmt.Errorf("%w: pressure mesh is now %s, layout was built for %dx%d",
			StaggeredGrid.ErrShapeMismatch, g.PressureMesh, l.NxP, l.NyP)
	}
	return
}
