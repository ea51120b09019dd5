package LidDrivenCavity

import (
	"errors"
	"fmt"

	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

var (
	ErrStateLength       = errors.New("lid driven cavity: state vector length does not match the mesh")
	ErrMissingEquation   = errors.New("lid driven cavity: missing equation in residual")
	ErrDuplicateEquation = errors.New("lid driven cavity: residual slot assigned by more than one equation")
)

// MissingEquationsError lists residual slots that no equation assigned. It
// always points at an indexing defect, never at the numerical state.
type MissingEquationsError struct {
	Slots utils.Index
}

func (e *MissingEquationsError) Error() string {
	const maxListed = 10
	if len(e.Slots) > maxListed {
		return fmt.Sprintf("%s: %d slots unassigned, first %v", ErrMissingEquation, len(e.Slots), e.Slots[:maxListed])
	}
	return fmt.Sprintf("%s: slots %v unassigned", ErrMissingEquation, e.Slots)
}

func (e *MissingEquationsError) Unwrap() error { return ErrMissingEquation }
