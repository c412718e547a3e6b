package vocal

// Tuning constants of the attenuator.
const (
	// bandOrder is the prototype order of the mid band-pass. Applied
	// forward and backward the response is effectively 8th order.
	bandOrder = 4

	// protectOrder is the order of the high protection low-pass.
	protectOrder = 4

	// minBandHz floors the lower band edge.
	minBandHz = 1.0

	// nyquistMarginHz keeps the upper band edge and the protection cutoff
	// below Nyquist.
	nyquistMarginHz = 100.0

	// minBandRatio is the smallest allowed high/low edge ratio.
	minBandRatio = 1.01

	// maxProtectCut is the normalized cutoff at or above which the
	// protection low-pass is skipped.
	maxProtectCut = 0.99

	// fullRemovalDB and below treat the mid gain as exactly zero.
	fullRemovalDB = -80.0

	// deepCutDB and below use the strongest over-subtraction and center cut.
	deepCutDB = -75.0

	// gateEngageDB and below enable the boost, center cut and gate.
	gateEngageDB = -60.0

	boostDeep    = 1.25
	boostEngaged = 1.15

	centerKillDeep  = 0.06
	centerKillScale = 0.66

	gateThresholdDB = -35.0
	gateWindow      = 1024
	envelopeEpsilon = 1e-12

	smoothAttack  = 0.30
	smoothRelease = 0.05

	safetyPeak = 0.98
)
