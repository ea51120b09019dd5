package LidDrivenCavity

import (
	"sync"

	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

type assembler struct {
	Equation Equation
	Slots    utils.Index // Output slot of each cell
	Cell     func(st *State, i int) float64
}

// assemble runs the three equation families concurrently, each split into
// contiguous cell ranges. Every cell writes a distinct slot.
func (rf *ResidualFunction) assemble(st *State, R []float64, written []bool) {
	var (
		wg sync.WaitGroup
	)
	for _, a := range rf.assemblers {
		var (
			nCell = len(a.Slots)
			pm    = utils.NewPartitionMap(utils.ParallelDegree(rf.ParallelDegree, nCell), nCell)
		)
		pm.Launch(&wg, func(kMin, kMax int) {
			for i := kMin; i < kMax; i++ {
				slot := a.Slots[i]
				R[slot] = a.Cell(st, i)
				if written != nil {
					written[slot] = true
				}
			}
		})
	}
	wg.Wait()
}
