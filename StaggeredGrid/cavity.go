package StaggeredGrid

import "fmt"

// NewLidDrivenCavity builds the staggered meshes for a length x height box of
// nx by ny pressure cells, with zero previous step velocities.
func NewLidDrivenCavity(nx, ny int, length, height, rho, mi, dt, lidVelocity float64) (g *Graph, err error) {
	if length <= 0 || height <= 0 {
		err = fmt.Errorf("%w: domain size must be positive, have %g x %g", ErrShapeMismatch, length, height)
		return
	}
	g = &Graph{
		Dt:  dt,
		Dx:  length / float64(nx),
		Dy:  height / float64(ny),
		Rho: rho,
		Mi:  mi,
		BC:  lidVelocity,
	}
	if g.PressureMesh, err = NewMesh(nx, ny, nil); err != nil {
		return nil, err
	}
	if g.NSXMesh, err = NewMesh(nx-1, ny, make([]float64, (nx-1)*ny)); err != nil {
		return nil, err
	}
	if g.NSYMesh, err = NewMesh(nx, ny-1, make([]float64, nx*(ny-1))); err != nil {
		return nil, err
	}
	if err = g.Validate(); err != nil {
		return nil, err
	}
	return
}
