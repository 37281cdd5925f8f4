package orbit

import (
	"math"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
)

const (
	// DefaultPanSpeed is the number of radians the camera turns per pixel
	// of pan input.
	DefaultPanSpeed = 0.01

	// DefaultLineZoomSpeed is the zoom contribution of a single mouse wheel
	// notch. Positive notches (scrolling up) move the camera closer.
	DefaultLineZoomSpeed = 0.1

	// DefaultMoveSpeed is the keyboard movement step per tick. With
	// MoveScalingRadius it is a fraction of the current radius.
	DefaultMoveSpeed = 0.05

	// DefaultMinRadius is the smallest distance the camera can get to its
	// target.
	DefaultMinRadius = 0.01

	// DefaultMaxRadius is the largest distance the camera can get from its
	// target. It keeps the pose finite under unbounded zoom out.
	DefaultMaxRadius = math.MaxFloat32
)

// DefaultPitchLimit is the largest absolute pitch the camera can reach.
var DefaultPitchLimit = dprec.Degrees(45)

// MoveScaling specifies how keyboard movement speed relates to the zoom
// level.
type MoveScaling int

const (
	// MoveScalingRadius makes each step proportional to the radius, so the
	// target moves at the same apparent screen speed at every zoom level.
	MoveScalingRadius MoveScaling = iota

	// MoveScalingFixed makes each step a fixed world distance.
	MoveScalingFixed
)

// Config holds the tunable coefficients of the controller. Unspecified
// fields use the Default values declared in this package.
type Config struct {
	// PanSpeed is the radians per pixel of pan input.
	PanSpeed opt.T[float64]

	// LineZoomSpeed is the zoom contribution of a line-unit wheel event.
	LineZoomSpeed opt.T[float64]

	// MoveSpeed is the keyboard movement coefficient.
	MoveSpeed opt.T[float64]

	// MoveScaling selects between radius-relative and fixed movement.
	MoveScaling opt.T[MoveScaling]

	// PitchLimit bounds pitch symmetrically to [-PitchLimit, PitchLimit].
	PitchLimit opt.T[dprec.Angle]

	// MinRadius is the positive floor for the radius.
	MinRadius opt.T[float64]

	// MaxRadius caps the radius. Values above DefaultMaxRadius are ignored.
	MaxRadius opt.T[float64]

	// DragButton is the mouse button that turns pointer motion into pan
	// input while held.
	DragButton opt.T[Button]
}

func (c Config) panSpeed() float64 {
	if c.PanSpeed.Specified {
		return c.PanSpeed.Value
	}
	return DefaultPanSpeed
}

func (c Config) lineZoomSpeed() float64 {
	if c.LineZoomSpeed.Specified {
		return c.LineZoomSpeed.Value
	}
	return DefaultLineZoomSpeed
}

func (c Config) moveSpeed() float64 {
	if c.MoveSpeed.Specified {
		return c.MoveSpeed.Value
	}
	return DefaultMoveSpeed
}

func (c Config) moveScaling() MoveScaling {
	if c.MoveScaling.Specified {
		return c.MoveScaling.Value
	}
	return MoveScalingRadius
}

func (c Config) pitchLimit() dprec.Angle {
	if c.PitchLimit.Specified {
		return dprec.Radians(dprec.Abs(c.PitchLimit.Value.Radians()))
	}
	return DefaultPitchLimit
}

func (c Config) minRadius() float64 {
	if c.MinRadius.Specified && c.MinRadius.Value > 0 {
		return c.MinRadius.Value
	}
	return DefaultMinRadius
}

func (c Config) maxRadius() float64 {
	if c.MaxRadius.Specified && c.MaxRadius.Value < DefaultMaxRadius {
		return c.MaxRadius.Value
	}
	return DefaultMaxRadius
}

func (c Config) dragButton() Button {
	if c.DragButton.Specified {
		return c.DragButton.Value
	}
	return ButtonLeft
}

// Constrain returns the state with pitch and radius moved inside the
// configured ranges. States passed through Constrain are left unchanged by
// an update with zero input.
func (c Config) Constrain(state State) State {
	limit := c.pitchLimit().Radians()
	state.Pitch = dprec.Radians(dprec.Clamp(state.Pitch.Radians(), -limit, limit))
	state.Radius = c.constrainRadius(state.Radius)
	return state
}

func (c Config) constrainRadius(radius float64) float64 {
	if maxRadius := c.maxRadius(); radius > maxRadius {
		radius = maxRadius
	}
	// Also catches NaN, which fails every ordered comparison.
	if minRadius := c.minRadius(); !(radius >= minRadius) {
		radius = minRadius
	}
	return radius
}
