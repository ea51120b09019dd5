package LidDrivenCavity

// MomentumTerms are the pieces of one momentum cell's discrete balance
type MomentumTerms struct {
	Transient float64 // Backward Euler time derivative over the control volume
	Advective float64 // Net upwind convective flux
	Diffusive float64 // Central difference viscous flux
	Source    float64 // Pressure force
}

func (mt MomentumTerms) Residual() float64 {
	return mt.Transient + mt.Advective - mt.Diffusive - mt.Source
}
