package LidDrivenCavity

import (
	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

// finalize sets R = X for the placeholder unknowns
func (rf *ResidualFunction) finalize(X, R []float64, written []bool) {
	for _, slot := range rf.layout.PlaceholderSlots {
		R[slot] = X[slot]
		if written != nil {
			written[slot] = true
		}
	}
}

func checkComplete(written []bool) (err error) {
	var (
		missing utils.Index
	)
	for slot, w := range written {
		if !w {
			missing = append(missing, slot)
		}
	}
	if len(missing) != 0 {
		err = &MissingEquationsError{Slots: missing}
	}
	return
}
