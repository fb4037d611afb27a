package variables

import "strings"

// Variable names of the aircraft data model.
// Names are case-insensitive; files store them in lower case.
const (
	TLARCruiseMach = "data:TLAR:cruise_mach"
	MTOThrust      = "data:propulsion:MTO_thrust"

	FuselageLength    = "data:geometry:fuselage:length"
	FuselageMaxWidth  = "data:geometry:fuselage:maximum_width"
	FuselageMaxHeight = "data:geometry:fuselage:maximum_height"

	WingArea              = "data:geometry:wing:area"
	WingAspectRatio       = "data:geometry:wing:aspect_ratio"
	WingSpan              = "data:geometry:wing:span"
	WingTaperRatio        = "data:geometry:wing:taper_ratio"
	WingVirtualTaperRatio = "data:geometry:wing:virtual_taper_ratio"
	WingSweep0            = "data:geometry:wing:sweep_0"
	WingSweep25           = "data:geometry:wing:sweep_25"
	WingSweep100Inner     = "data:geometry:wing:sweep_100_inner"
	WingSweep100Outer     = "data:geometry:wing:sweep_100_outer"
	WingSweep100Ratio     = "data:geometry:wing:sweep_100_ratio"
	WingThicknessRatio    = "data:geometry:wing:thickness_ratio"
	WingB50               = "data:geometry:wing:b_50"
	WingOuterArea         = "data:geometry:wing:outer_area"
	WingWettedArea        = "data:geometry:wing:wetted_area"

	WingRootY              = "data:geometry:wing:root:y"
	WingRootChord          = "data:geometry:wing:root:chord"
	WingRootVirtualChord   = "data:geometry:wing:root:virtual_chord"
	WingRootThicknessRatio = "data:geometry:wing:root:thickness_ratio"
	WingRootLEX            = "data:geometry:wing:root:leading_edge:x"

	WingKinkSpanRatio      = "data:geometry:wing:kink:span_ratio"
	WingKinkY              = "data:geometry:wing:kink:y"
	WingKinkChord          = "data:geometry:wing:kink:chord"
	WingKinkThicknessRatio = "data:geometry:wing:kink:thickness_ratio"
	WingKinkLEXLocal       = "data:geometry:wing:kink:leading_edge:x:local"
	WingKinkLEX            = "data:geometry:wing:kink:leading_edge:x"

	WingTipY              = "data:geometry:wing:tip:y"
	WingTipChord          = "data:geometry:wing:tip:chord"
	WingTipThicknessRatio = "data:geometry:wing:tip:thickness_ratio"
	WingTipLEXLocal       = "data:geometry:wing:tip:leading_edge:x:local"
	WingTipLEX            = "data:geometry:wing:tip:leading_edge:x"

	WingCenterChord     = "data:geometry:wing:center:chord"
	WingCenterLEXLocal  = "data:geometry:wing:center:leading_edge:x:local"
	WingMACLength       = "data:geometry:wing:MAC:length"
	WingMACY            = "data:geometry:wing:MAC:y"
	WingMACLEXLocal     = "data:geometry:wing:MAC:leading_edge:x:local"
	WingMACLEX          = "data:geometry:wing:MAC:leading_edge:x"
	WingMAC25X          = "data:geometry:wing:MAC:at25percent:x"
	WingCruiseCLAlpha   = "data:aerodynamics:wing:cruise:CL_alpha"
	WingLowSpeedCLAlpha = "data:aerodynamics:wing:low_speed:CL_alpha"

	HTSpan           = "data:geometry:horizontal_tail:span"
	HTTaperRatio     = "data:geometry:horizontal_tail:taper_ratio"
	HTSweep0         = "data:geometry:horizontal_tail:sweep_0"
	HTSweep25        = "data:geometry:horizontal_tail:sweep_25"
	HTSweep100       = "data:geometry:horizontal_tail:sweep_100"
	HTCenterChord    = "data:geometry:horizontal_tail:center:chord"
	HTTipChord       = "data:geometry:horizontal_tail:tip:chord"
	HTMACLength      = "data:geometry:horizontal_tail:MAC:length"
	HTMAC25XLocal    = "data:geometry:horizontal_tail:MAC:at25percent:x:local"
	HTMAC25XFromWing = "data:geometry:horizontal_tail:MAC:at25percent:x:from_wingMAC25"
	HTMAC25X         = "data:geometry:horizontal_tail:MAC:at25percent:x"
	HTMACLEXLocal    = "data:geometry:horizontal_tail:MAC:leading_edge:x:local"
	HTMACLEX         = "data:geometry:horizontal_tail:MAC:leading_edge:x"
	HTRootLEXLocal   = "data:geometry:horizontal_tail:root:leading_edge:x:local"
	HTTipLEXLocal    = "data:geometry:horizontal_tail:tip:leading_edge:x:local"
	HTCenterLEX      = "data:geometry:horizontal_tail:center:leading_edge:x"
	HTTipLEX         = "data:geometry:horizontal_tail:tip:leading_edge:x"

	VTSpan           = "data:geometry:vertical_tail:span"
	VTSweep0         = "data:geometry:vertical_tail:sweep_0"
	VTMACLength      = "data:geometry:vertical_tail:MAC:length"
	VTMACZ           = "data:geometry:vertical_tail:MAC:z"
	VTMAC25XLocal    = "data:geometry:vertical_tail:MAC:at25percent:x:local"
	VTMAC25XFromWing = "data:geometry:vertical_tail:MAC:at25percent:x:from_wingMAC25"
	VTMAC25X         = "data:geometry:vertical_tail:MAC:at25percent:x"
	VTMACLEXLocal    = "data:geometry:vertical_tail:MAC:leading_edge:x:local"
	VTMACLEX         = "data:geometry:vertical_tail:MAC:leading_edge:x"
	VTRootLEXLocal   = "data:geometry:vertical_tail:root:leading_edge:x:local"
	VTRootLEX        = "data:geometry:vertical_tail:root:leading_edge:x"
	VTTipLEXLocal    = "data:geometry:vertical_tail:tip:leading_edge:x:local"
	VTTipLEX         = "data:geometry:vertical_tail:tip:leading_edge:x"

	PropulsionLayout  = "data:geometry:propulsion:layout"
	EngineYRatio      = "data:geometry:propulsion:engine:y_ratio"
	NacelleY          = "data:geometry:propulsion:nacelle:y"
	NacelleLength     = "data:geometry:propulsion:nacelle:length"
	NacelleDiameter   = "data:geometry:propulsion:nacelle:diameter"
	NacelleWettedArea = "data:geometry:propulsion:nacelle:wetted_area"
	PylonLength       = "data:geometry:propulsion:pylon:length"
	PylonWettedArea   = "data:geometry:propulsion:pylon:wetted_area"
	FanLength         = "data:geometry:propulsion:fan:length"
	LandingGearHeight = "data:geometry:landing_gear:height"
	EngineCGX         = "data:weight:propulsion:engine:CG:x"
)

// Settings
const (
	SolverMaxIterations = "settings:geometry:wing:solver:max_iterations"
	SolverTolerance     = "settings:geometry:wing:solver:tolerance"
	VTPositionRatio     = "settings:geometry:vertical_tail:position_ratio_on_fuselage"
)

// Units
const (
	Meter         = "m"
	SquareMeter   = "m**2"
	Degree        = "deg"
	Newton        = "N"
	Dimensionless = ""
)

// canonical maps lower case names to the names of the catalogue above.
// Variable files lose the case of names (viper keys are case-insensitive).
var canonical = func() map[string]string {
	m := make(map[string]string)
	for _, name := range []string{
		TLARCruiseMach, MTOThrust, FuselageLength, FuselageMaxWidth,
		FuselageMaxHeight, WingArea, WingAspectRatio, WingSpan,
		WingTaperRatio, WingVirtualTaperRatio, WingSweep0, WingSweep25,
		WingSweep100Inner, WingSweep100Outer, WingSweep100Ratio, WingThicknessRatio,
		WingB50, WingOuterArea, WingWettedArea, WingRootY,
		WingRootChord, WingRootVirtualChord, WingRootThicknessRatio, WingRootLEX,
		WingKinkSpanRatio, WingKinkY, WingKinkChord, WingKinkThicknessRatio,
		WingKinkLEXLocal, WingKinkLEX, WingTipY, WingTipChord,
		WingTipThicknessRatio, WingTipLEXLocal, WingTipLEX, WingCenterChord,
		WingCenterLEXLocal, WingMACLength, WingMACY, WingMACLEXLocal,
		WingMACLEX, WingMAC25X, WingCruiseCLAlpha, WingLowSpeedCLAlpha,
		HTSpan, HTTaperRatio, HTSweep0, HTSweep25,
		HTSweep100, HTCenterChord, HTTipChord, HTMACLength,
		HTMAC25XLocal, HTMAC25XFromWing, HTMAC25X, HTMACLEXLocal,
		HTMACLEX, HTRootLEXLocal, HTTipLEXLocal, HTCenterLEX,
		HTTipLEX, VTSpan, VTSweep0, VTMACLength,
		VTMACZ, VTMAC25XLocal, VTMAC25XFromWing, VTMAC25X,
		VTMACLEXLocal, VTMACLEX, VTRootLEXLocal, VTRootLEX,
		VTTipLEXLocal, VTTipLEX, PropulsionLayout, EngineYRatio,
		NacelleY, NacelleLength, NacelleDiameter, NacelleWettedArea,
		PylonLength, PylonWettedArea, FanLength, LandingGearHeight,
		EngineCGX, SolverMaxIterations, SolverTolerance, VTPositionRatio,
	} {
		m[normalize(name)] = name
	}
	return m
}()

// Canonical returns the catalogue spelling of a name, or the trimmed name
// itself when it is not in the catalogue.
func Canonical(name string) string {
	if c, ok := canonical[normalize(name)]; ok {
		return c
	}
	return strings.TrimSpace(name)
}
