package StaggeredGrid

import (
	"errors"
	"fmt"
)

var ErrShapeMismatch = errors.New("staggered grid: inconsistent mesh shapes")

/*
Graph carries the three staggered meshes of a lid driven cavity together with
the scalar parameters of one residual evaluation.

	PressureMesh: Nx   x Ny     cell centers
	NSXMesh:      Nx-1 x Ny     interior vertical faces, x momentum
	NSYMesh:      Nx   x Ny-1   interior horizontal faces, y momentum
*/
type Graph struct {
	PressureMesh *Mesh
	NSXMesh      *Mesh
	NSYMesh      *Mesh
	Dt           float64 // Time step
	Dx, Dy       float64 // Grid spacing
	Rho          float64 // Density
	Mi           float64 // Dynamic viscosity
	BC           float64 // Lid velocity, the x velocity of the top wall
}

func (g *Graph) Validate() (err error) {
	var (
		pm, xm, ym = g.PressureMesh, g.NSXMesh, g.NSYMesh
	)
	if pm == nil || xm == nil || ym == nil {
		return fmt.Errorf("%w: graph requires pressure, x momentum and y momentum meshes", ErrShapeMismatch)
	}
	for _, nm := range []struct {
		name string
		m    *Mesh
	}{{"pressure", pm}, {"x momentum", xm}, {"y momentum", ym}} {
		if err = nm.m.checkTables(nm.name); err != nil {
			return
		}
	}
	switch {
	case pm.Nx < 2 || pm.Ny < 2:
		err = fmt.Errorf("%w: pressure mesh must be at least 2x2, have %s", ErrShapeMismatch, pm)
	case xm.Nx != pm.Nx-1 || xm.Ny != pm.Ny:
		err = fmt.Errorf("%w: x momentum mesh must be %dx%d for a %s pressure mesh, have %s",
			ErrShapeMismatch, pm.Nx-1, pm.Ny, pm, xm)
	case ym.Nx != pm.Nx || ym.Ny != pm.Ny-1:
		err = fmt.Errorf("%w: y momentum mesh must be %dx%d for a %s pressure mesh, have %s",
			ErrShapeMismatch, pm.Nx, pm.Ny-1, pm, ym)
	case len(xm.PhiOld) != xm.Len():
		err = fmt.Errorf("%w: x momentum previous step field has length %d, need %d",
			ErrShapeMismatch, len(xm.PhiOld), xm.Len())
	case len(ym.PhiOld) != ym.Len():
		err = fmt.Errorf("%w: y momentum previous step field has length %d, need %d",
			ErrShapeMismatch, len(ym.PhiOld), ym.Len())
	}
	return
}

// NumUnknowns is the length of the flat state vector, three per pressure cell
func (g *Graph) NumUnknowns() int {
	return 3 * g.PressureMesh.Len()
}

func (g *Graph) Print() {
	fmt.Printf("Pressure mesh   = %s\n", g.PressureMesh)
	fmt.Printf("X momentum mesh = %s\n", g.NSXMesh)
	fmt.Printf("Y momentum mesh = %s\n", g.NSYMesh)
	fmt.Printf("%8.5f\t\t= dt\n", g.Dt)
	fmt.Printf("%8.5f\t\t= dx\n", g.Dx)
	fmt.Printf("%8.5f\t\t= dy\n", g.Dy)
	fmt.Printf("%8.5f\t\t= rho\n", g.Rho)
	fmt.Printf("%8.5f\t\t= mi\n", g.Mi)
	fmt.Printf("%8.5f\t\t= Lid Velocity\n", g.BC)
}
