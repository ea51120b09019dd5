package StaggeredGrid

import (
	"fmt"

	"github.com/positroncascade/lid-driven-cavity-problem/types"
	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

/*
Mesh is one of the three logical grids of the staggered discretization. Cells
are addressed row major, idx = row*Nx + col, row 0 at the bottom wall.

Row, column and wall flags are tabulated once when the mesh is built, so the
residual loops never recompute them from the index.
*/
type Mesh struct {
	Nx, Ny int
	PhiOld []float64 // Previous time level of the field carried on this mesh, nil for pressure
	rows   utils.Index
	cols   utils.Index
	flags  []types.Boundary
}

func NewMesh(nx, ny int, phiOld []float64) (m *Mesh, err error) {
	if nx < 1 || ny < 1 {
		err = fmt.Errorf("%w: mesh dimensions must be positive, have nx, ny = %d, %d",
			ErrShapeMismatch, nx, ny)
		return
	}
	if phiOld != nil && len(phiOld) != nx*ny {
		err = fmt.Errorf("%w: previous step field has length %d, mesh has %d cells",
			ErrShapeMismatch, len(phiOld), nx*ny)
		return
	}
	var (
		N = nx * ny
	)
	m = &Mesh{
		Nx:     nx,
		Ny:     ny,
		PhiOld: phiOld,
		rows:   utils.NewIndex(N),
		cols:   utils.NewIndex(N),
		flags:  make([]types.Boundary, N),
	}
	for row := 0; row < ny; row++ {
		for col := 0; col < nx; col++ {
			ind := m.Index(row, col)
			m.rows[ind], m.cols[ind] = row, col
			m.flags[ind] = types.NewBoundary(row, col, nx, ny)
		}
	}
	return
}

func (m *Mesh) Len() int { return m.Nx * m.Ny }

func (m *Mesh) Index(row, col int) int { return row*m.Nx + col }

func (m *Mesh) Row(i int) int { return m.rows[i] }

func (m *Mesh) Col(i int) int { return m.cols[i] }

func (m *Mesh) Boundary(i int) types.Boundary { return m.flags[i] }

// checkTables catches meshes assembled by hand or resized after NewMesh
func (m *Mesh) checkTables(name string) (err error) {
	if m.Nx < 1 || m.Ny < 1 {
		return fmt.Errorf("%w: %s mesh dimensions must be positive, have nx, ny = %d, %d",
			ErrShapeMismatch, name, m.Nx, m.Ny)
	}
	if len(m.flags) != m.Len() || len(m.rows) != m.Len() || len(m.cols) != m.Len() {
		return fmt.Errorf("%w: %s mesh addressing tables do not match %dx%d, build meshes with NewMesh",
			ErrShapeMismatch, name, m.Nx, m.Ny)
	}
	return
}

func (m *Mesh) String() string {
	return fmt.Sprintf("%dx%d", m.Nx, m.Ny)
}
