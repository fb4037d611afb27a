package cs25

import "math"

// Empirical constants for CS-25 preliminary geometry

const (
	// Reference (aerodynamic) thickness ratio regression
	// t/c = 0.89 - (M + 0.02)·√cos(φ25)
	ThicknessIntercept  = 0.89
	ThicknessMachOffset = 0.02

	// Station thickness factors applied to the reference thickness ratio
	RootThicknessFactor         = 1.24
	KinkThicknessFactor         = 0.94
	TipThicknessFactor          = 0.86
	KinklessKinkThicknessFactor = RootThicknessFactor

	// Lift curve slope (DATCOM / Raymer 12.6)
	FuselageLiftFactor  = 1.07
	AirfoilEfficiencySq = 0.9025 // η² with η = 0.95
	EndPlateFactor      = 1.9
	LowSpeedMach        = 0.2

	// Vertical tail position as a fraction of fuselage length
	VerticalTailPositionRatio = 0.88

	// Rear-mounted engine position as a fraction of fuselage length
	RearEnginePositionRatio = 0.8

	// Nacelle regressions take thrust in lbf (N·0.225)
	ThrustScale            = 0.225
	NacelleDiameterSlope   = 0.00904
	NacelleDiameterOffset  = 0.7
	NacelleLengthSlope     = 0.032
	NacelleWetAreaSlope    = 0.0004
	NacelleWetAreaOffset   = 11.0
	PylonLengthRatio       = 1.1
	FanLengthRatio         = 0.6
	PylonWetAreaRatio      = 0.35
	LandingGearHeightRatio = 1.4
	RearEngineClearance    = 0.7 // m, between fuselage side and nacelle

	// Wing-mounted engine CG offsets (fraction of local chord / nacelle length)
	EngineChordOffset  = 0.05
	EngineLengthOffset = 0.2
)

// Fixed-point iteration defaults for the planform solver
const (
	DefaultMaxIterations = 50
	DefaultTolerance     = 1e-10
)

// Rad converts degrees to radians
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Deg converts radians to degrees
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ReferenceThicknessRatio returns the aerodynamic thickness ratio for a
// cruise Mach number and a 25% chord sweep angle (degrees).
func ReferenceThicknessRatio(mach, sweep25 float64) float64 {
	return ThicknessIntercept - (mach+ThicknessMachOffset)*math.Sqrt(math.Cos(Rad(sweep25)))
}

// StationThicknessRatios scales the reference thickness ratio to the root,
// kink and tip stations. Without a physical kink the kink station is the root.
func StationThicknessRatios(reference float64, hasKink bool) (root, kink, tip float64) {
	root = RootThicknessFactor * reference
	if hasKink {
		kink = KinkThicknessFactor * reference
	} else {
		kink = KinklessKinkThicknessFactor * reference
	}
	tip = TipThicknessFactor * reference
	return root, kink, tip
}

// CompressibilityFactor returns β = √(1 - M²)
func CompressibilityFactor(mach float64) float64 {
	return math.Sqrt(1 - mach*mach)
}

// FuselageSpillover returns F = 1.07·(1 + d/b)² where d is the equivalent
// fuselage diameter.
func FuselageSpillover(fuselageDiameter, span float64) float64 {
	r := 1 + fuselageDiameter/span
	return FuselageLiftFactor * r * r
}
