package nacelle

import (
	"math"

	"github.com/alexiusacademia/gocs25/internal/cs25"
	"github.com/alexiusacademia/gocs25/internal/geom"
	"github.com/alexiusacademia/gocs25/internal/position"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// Nacelle sizes one engine nacelle from the maximum takeoff thrust
type Nacelle struct {
	MaxThrust float64 // N
}

func (n Nacelle) scaledThrust() float64 {
	return n.MaxThrust * cs25.ThrustScale
}

// Diameter returns the nacelle diameter (m)
func (n Nacelle) Diameter() float64 {
	return cs25.NacelleDiameterSlope*math.Sqrt(n.scaledThrust()) + cs25.NacelleDiameterOffset
}

// Length returns the nacelle length (m)
func (n Nacelle) Length() float64 {
	return cs25.NacelleLengthSlope * math.Sqrt(n.scaledThrust())
}

// WettedArea returns the wetted area of one nacelle (m²)
func (n Nacelle) WettedArea() float64 {
	return cs25.NacelleWetAreaSlope*n.scaledThrust() + cs25.NacelleWetAreaOffset
}

// Chord is a wing chord in local coordinates
type Chord struct {
	Y            float64 // m
	Length       float64 // m
	LeadingEdgeX float64 // m, from root leading edge
}

// Options select how the engine is placed
type Options struct {
	// ImposeAbsoluteEngineY takes the nacelle spanwise position as input
	// instead of its ratio of the half span.
	ImposeAbsoluteEngineY bool

	// InterpolateLeadingEdge takes the wing leading edge at the engine
	// station on the line between the two bracketing chords. By default
	// the leading edge is scaled from the outer chord only, which ignores
	// the inner leading edge x (exact for the root-kink segment, whose root
	// leading edge is at 0).
	InterpolateLeadingEdge bool
}

// Input holds the data needed to size and place the nacelles
type Input struct {
	Layout           Layout
	MaxThrust        float64 // N
	EngineYRatio     float64
	EngineY          float64 // m
	WingSpan         float64 // m
	FuselageLength   float64 // m
	FuselageMaxWidth float64 // m

	Root, Kink, Tip Chord

	MAC25X      float64 // m
	MACLength   float64 // m
	MACLEXLocal float64 // m

	Options Options
}

// NewInput reads nacelle inputs from a variable set. Wing data is required
// only for wing-mounted engines.
func NewInput(set *variables.Set, opts Options) (Input, error) {
	r := variables.NewReader(set)
	m := variables.Meter

	code := r.Required(variables.PropulsionLayout, variables.Dimensionless)
	in := Input{Options: opts}
	in.MaxThrust = r.Required(variables.MTOThrust, variables.Newton)
	in.FuselageMaxWidth = r.Required(variables.FuselageMaxWidth, m)
	in.FuselageLength = r.Required(variables.FuselageLength, m)
	if err := r.Err(); err != nil {
		return Input{}, err
	}

	layout, err := ParseLayout(code)
	if err != nil {
		return Input{}, err
	}
	in.Layout = layout
	if layout != WingMounted {
		return in, nil
	}

	in.WingSpan = r.Required(variables.WingSpan, m)
	if opts.ImposeAbsoluteEngineY {
		in.EngineY = r.Required(variables.NacelleY, m)
	} else {
		in.EngineYRatio = r.Required(variables.EngineYRatio, variables.Dimensionless)
	}
	in.Root = Chord{
		Y:      r.Required(variables.WingRootY, m),
		Length: r.Required(variables.WingRootChord, m),
	}
	in.Kink = Chord{
		Y:            r.Required(variables.WingKinkY, m),
		Length:       r.Required(variables.WingKinkChord, m),
		LeadingEdgeX: r.Required(variables.WingKinkLEXLocal, m),
	}
	in.Tip = Chord{
		Y:            r.Required(variables.WingTipY, m),
		Length:       r.Required(variables.WingTipChord, m),
		LeadingEdgeX: r.Required(variables.WingTipLEXLocal, m),
	}
	in.MAC25X = r.Required(variables.WingMAC25X, m)
	in.MACLength = r.Required(variables.WingMACLength, m)
	in.MACLEXLocal = r.Required(variables.WingMACLEXLocal, m)

	if err := r.Err(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Geometry is the nacelle and pylon geometry with the engine position
type Geometry struct {
	Layout Layout

	Diameter          float64 // m
	Length            float64 // m
	WettedArea        float64 // m², one nacelle
	PylonLength       float64 // m
	PylonWettedArea   float64 // m²
	FanLength         float64 // m
	LandingGearHeight float64 // m

	Y      float64 // m, nacelle spanwise position
	YRatio float64 // Y / half span, wing-mounted engines
	CGX    float64 // m, engine CG from nose
}

// Compute sizes the nacelle and places the engine
func Compute(in Input) (*Geometry, error) {
	n := Nacelle{MaxThrust: in.MaxThrust}

	g := &Geometry{
		Layout:     in.Layout,
		Diameter:   n.Diameter(),
		Length:     n.Length(),
		WettedArea: n.WettedArea(),
	}
	g.PylonLength = cs25.PylonLengthRatio * g.Length
	g.FanLength = cs25.FanLengthRatio * g.Length
	g.PylonWettedArea = cs25.PylonWetAreaRatio * g.WettedArea
	g.LandingGearHeight = cs25.LandingGearHeightRatio * g.Diameter

	switch in.Layout {
	case WingMounted:
		halfSpan := in.WingSpan / 2
		if in.Options.ImposeAbsoluteEngineY {
			g.Y = in.EngineY
			g.YRatio = g.Y / halfSpan
		} else {
			g.YRatio = in.EngineYRatio
			g.Y = g.YRatio * halfSpan
		}

		localX, err := wingMountedCGX(in, g.Y, g.Length)
		if err != nil {
			return nil, err
		}
		g.CGX = position.Absolute(in.MAC25X, in.MACLength, in.MACLEXLocal, localX)

	case RearMounted:
		g.Y = in.FuselageMaxWidth/2 + g.Diameter/2 + cs25.RearEngineClearance
		g.CGX = cs25.RearEnginePositionRatio * in.FuselageLength

	default:
		return nil, &LayoutError{Value: float64(in.Layout)}
	}

	return g, nil
}

// wingMountedCGX returns the local x of the engine CG: ahead of the wing
// leading edge by a fraction of the local chord and of the nacelle length.
// The chord is taken in the root-kink or kink-tip segment holding the engine.
func wingMountedCGX(in Input, y, nacelleLength float64) (float64, error) {
	inner, outer := in.Kink, in.Tip
	if y <= in.Kink.Y {
		inner, outer = in.Root, in.Kink
	}

	segment := &geom.LiftingSurface{Sections: []*geom.Profile{
		geom.NewProfile(inner.Length, inner.LeadingEdgeX, inner.Y),
		geom.NewProfile(outer.Length, outer.LeadingEdgeX, outer.Y),
	}}
	chord, err := segment.ChordAt(y)
	if err != nil {
		return 0, err
	}

	var leadingEdgeX float64
	switch {
	case in.Options.InterpolateLeadingEdge:
		leadingEdgeX, err = segment.LeadingEdgeAt(y)
		if err != nil {
			return 0, err
		}
	case outer.Y == inner.Y:
		leadingEdgeX = outer.LeadingEdgeX
	default:
		leadingEdgeX = outer.LeadingEdgeX * (y - inner.Y) / (outer.Y - inner.Y)
	}

	return leadingEdgeX - cs25.EngineChordOffset*chord - cs25.EngineLengthOffset*nacelleLength, nil
}

// Variables returns the nacelle geometry and engine position as named outputs
func (g *Geometry) Variables() *variables.Set {
	s := variables.NewSet()
	m, m2 := variables.Meter, variables.SquareMeter

	s.Add(variables.NacelleDiameter, g.Diameter, m)
	s.Add(variables.NacelleLength, g.Length, m)
	s.Add(variables.NacelleWettedArea, g.WettedArea, m2)
	s.Add(variables.PylonLength, g.PylonLength, m)
	s.Add(variables.PylonWettedArea, g.PylonWettedArea, m2)
	s.Add(variables.FanLength, g.FanLength, m)
	s.Add(variables.LandingGearHeight, g.LandingGearHeight, m)
	s.Add(variables.NacelleY, g.Y, m)
	if g.Layout == WingMounted {
		s.Add(variables.EngineYRatio, g.YRatio, variables.Dimensionless)
	}
	s.Add(variables.EngineCGX, g.CGX, m)
	return s
}
