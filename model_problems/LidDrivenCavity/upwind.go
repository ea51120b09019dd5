package LidDrivenCavity

// upwindBeta weights the face value toward the node the flow comes from
func upwindBeta(faceVelocity float64) float64 {
	if faceVelocity > 0 {
		return 0.5
	}
	return -0.5
}

/*
upwindFlux is the momentum convected through a face with normal velocity
faceVelocity, where phiPlus is the node on the positive side of the face and
phiMinus the node on the negative side:

	rho * vel * [(0.5 - beta) * phiPlus + (0.5 + beta) * phiMinus]

Positive face velocity carries phiMinus, zero or negative carries phiPlus.
*/
func upwindFlux(rho, faceVelocity, phiPlus, phiMinus float64) float64 {
	var (
		beta = upwindBeta(faceVelocity)
	)
	return rho * faceVelocity * ((0.5-beta)*phiPlus + (0.5+beta)*phiMinus)
}
