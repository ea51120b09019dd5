package LidDrivenCavity

import (
	"fmt"

	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

// Report summarizes a residual vector per equation family
type Report struct {
	Continuity  utils.Norms
	XMomentum   utils.Norms
	YMomentum   utils.Norms
	Placeholder utils.Norms
	Total       utils.Norms
	NonFinite   utils.Index // Slots holding NaN or Inf
}

func (l *Layout) NewReport(R []float64) (rp *Report, err error) {
	if len(R) != l.NumSlots() {
		err = fmt.Errorf("%w: residual has %d values, need %d", ErrStateLength, len(R), l.NumSlots())
		return
	}
	rp = &Report{
		Continuity:  utils.NewNorms(l.ContinuitySlots.SubsetFloat(R)),
		XMomentum:   utils.NewNorms(l.XMomentumSlots.SubsetFloat(R)),
		YMomentum:   utils.NewNorms(l.YMomentumSlots.SubsetFloat(R)),
		Placeholder: utils.NewNorms(l.PlaceholderSlots.SubsetFloat(R)),
		Total:       utils.NewNorms(R),
		NonFinite:   utils.NanIndices(R),
	}
	return
}

func (rp *Report) Print() {
	fmt.Printf("%-12s %6s %14s %14s %14s %14s\n", "Equation", "Cells", "L1", "L2", "LInf", "Sum")
	for _, row := range []struct {
		name string
		n    utils.Norms
	}{
		{Continuity.String(), rp.Continuity},
		{XMomentum.String(), rp.XMomentum},
		{YMomentum.String(), rp.YMomentum},
		{Placeholder.String(), rp.Placeholder},
		{"Total", rp.Total},
	} {
		fmt.Printf("%-12s %6d %14.6e %14.6e %14.6e %14.6e\n",
			row.name, row.n.Len, row.n.L1, row.n.L2, row.n.LInf, row.n.Sum)
	}
	if len(rp.NonFinite) != 0 {
		fmt.Printf("Non finite residual in %d slots, first at %d\n", len(rp.NonFinite), rp.NonFinite[0])
	}
}
