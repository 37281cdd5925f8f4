package orbit

import "github.com/mokiat/gomath/dprec"

// ScrollUnit classifies wheel events.
type ScrollUnit int

const (
	// ScrollUnitLine is reported by mouse wheels in coarse notches. Line
	// events drive zoom.
	ScrollUnitLine ScrollUnit = iota

	// ScrollUnitPixel is reported by trackpads in fine-grained pixels.
	// Pixel events drive pan.
	ScrollUnitPixel
)

// WheelEvent is a single scroll event.
type WheelEvent struct {
	Unit ScrollUnit
	X    float64
	Y    float64
}

// PinchEvent is a single magnify gesture event. Positive values zoom in.
type PinchEvent struct {
	Delta float64
}

// Key is a logical movement key.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
)

// KeySet is the set of currently pressed movement keys.
type KeySet uint8

// NewKeySet returns a set containing the specified keys.
func NewKeySet(keys ...Key) KeySet {
	var set KeySet
	for _, key := range keys {
		set = set.With(key)
	}
	return set
}

// With returns a copy of the set that includes key.
func (s KeySet) With(key Key) KeySet {
	return s | (1 << key)
}

// Without returns a copy of the set that excludes key.
func (s KeySet) Without(key Key) KeySet {
	return s &^ (1 << key)
}

// Contains reports whether key is pressed.
func (s KeySet) Contains(key Key) bool {
	return s&(1<<key) != 0
}

// Button is a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// ButtonSet is the set of currently pressed mouse buttons.
type ButtonSet uint8

// NewButtonSet returns a set containing the specified buttons.
func NewButtonSet(buttons ...Button) ButtonSet {
	var set ButtonSet
	for _, button := range buttons {
		set = set.With(button)
	}
	return set
}

// With returns a copy of the set that includes button.
func (s ButtonSet) With(button Button) ButtonSet {
	return s | (1 << button)
}

// Without returns a copy of the set that excludes button.
func (s ButtonSet) Without(button Button) ButtonSet {
	return s &^ (1 << button)
}

// Contains reports whether button is pressed.
func (s ButtonSet) Contains(button Button) bool {
	return s&(1<<button) != 0
}

// Events is the batch of device events collected by the host for a single
// frame. The zero value is an empty batch.
type Events struct {
	Wheel   []WheelEvent
	Pinch   []PinchEvent
	Keys    KeySet
	Buttons ButtonSet

	// Motion is the pointer movement accumulated during the frame, in
	// pixels.
	Motion dprec.Vec2
}

// Merge returns a batch containing the events of both e and other. Pressed
// keys and buttons are combined and pointer motion is summed.
func (e Events) Merge(other Events) Events {
	result := Events{
		Keys:    e.Keys | other.Keys,
		Buttons: e.Buttons | other.Buttons,
		Motion:  dprec.Vec2Sum(e.Motion, other.Motion),
	}
	if len(e.Wheel)+len(other.Wheel) > 0 {
		result.Wheel = make([]WheelEvent, 0, len(e.Wheel)+len(other.Wheel))
		result.Wheel = append(result.Wheel, e.Wheel...)
		result.Wheel = append(result.Wheel, other.Wheel...)
	}
	if len(e.Pinch)+len(other.Pinch) > 0 {
		result.Pinch = make([]PinchEvent, 0, len(e.Pinch)+len(other.Pinch))
		result.Pinch = append(result.Pinch, e.Pinch...)
		result.Pinch = append(result.Pinch, other.Pinch...)
	}
	return result
}

// FrameInput is the per-frame aggregate of all device events.
type FrameInput struct {
	// Zoom is the multiplicative zoom contribution. The radius is scaled
	// by (1 - Zoom).
	Zoom float64

	// Pan is the angular drive in pixels.
	Pan dprec.Vec2

	// Move is the planar movement direction. It is either zero or of unit
	// length.
	Move dprec.Vec2
}

// Aggregate reduces a batch of events to a FrameInput.
func Aggregate(cfg Config, events Events) FrameInput {
	var input FrameInput

	for _, event := range events.Pinch {
		input.Zoom += event.Delta
	}

	lineZoomSpeed := cfg.lineZoomSpeed()
	for _, event := range events.Wheel {
		switch event.Unit {
		case ScrollUnitLine:
			input.Zoom += lineZoomSpeed * event.Y
		case ScrollUnitPixel:
			input.Pan = dprec.Vec2Sum(input.Pan, dprec.NewVec2(event.X, event.Y))
		}
	}

	if events.Buttons.Contains(cfg.dragButton()) {
		input.Pan = dprec.Vec2Sum(input.Pan, events.Motion)
	}

	input.Move = MoveAxes(events.Keys)
	return input
}

// MoveAxes returns the movement direction for the pressed keys as
// (right - left, back - forward). The result is normalized, so that
// diagonal movement is no faster than straight movement, or zero when the
// keys cancel out.
func MoveAxes(keys KeySet) dprec.Vec2 {
	axes := dprec.NewVec2(
		keyAxis(keys, KeyLeft, KeyRight),
		keyAxis(keys, KeyForward, KeyBack),
	)
	return normalizeOrZero(axes)
}

func keyAxis(keys KeySet, negative, positive Key) float64 {
	var value float64
	if keys.Contains(positive) {
		value++
	}
	if keys.Contains(negative) {
		value--
	}
	return value
}

func normalizeOrZero(v dprec.Vec2) dprec.Vec2 {
	length := v.Length()
	if length < dprec.Epsilon {
		return dprec.ZeroVec2()
	}
	return dprec.Vec2Quot(v, length)
}
