package ui

import (
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/lacking/ui"

	"github.com/jim-ec/hello-orbit/orbit"
)

// inputCollector records window events between frames and hands them to
// the orbit system as one batch.
type inputCollector struct {
	trackpadScroll      bool
	trackpadScrollScale float64
	trackpadPinchScale  float64

	keys    orbit.KeySet
	buttons orbit.ButtonSet
	wheel   []orbit.WheelEvent
	pinch   []orbit.PinchEvent
	motion  dprec.Vec2

	lastPointer    dprec.Vec2
	hasLastPointer bool
}

func newInputCollector(config SceneConfig) *inputCollector {
	return &inputCollector{
		trackpadScroll:      config.TrackpadScroll,
		trackpadScrollScale: config.TrackpadScrollScale,
		trackpadPinchScale:  config.TrackpadPinchScale,
	}
}

var keyMapping = map[ui.KeyCode]orbit.Key{
	ui.KeyCodeW:          orbit.KeyForward,
	ui.KeyCodeArrowUp:    orbit.KeyForward,
	ui.KeyCodeS:          orbit.KeyBack,
	ui.KeyCodeArrowDown:  orbit.KeyBack,
	ui.KeyCodeA:          orbit.KeyLeft,
	ui.KeyCodeArrowLeft:  orbit.KeyLeft,
	ui.KeyCodeD:          orbit.KeyRight,
	ui.KeyCodeArrowRight: orbit.KeyRight,
}

// OnKeyboardEvent reports whether the event was a movement key.
func (c *inputCollector) OnKeyboardEvent(event ui.KeyboardEvent) bool {
	key, ok := keyMapping[event.Code]
	if !ok {
		return false
	}
	switch event.Action {
	case ui.KeyboardActionDown, ui.KeyboardActionRepeat:
		c.keys = c.keys.With(key)
	case ui.KeyboardActionUp:
		c.keys = c.keys.Without(key)
	}
	return true
}

var buttonMapping = map[ui.MouseButton]orbit.Button{
	ui.MouseButtonLeft:   orbit.ButtonLeft,
	ui.MouseButtonMiddle: orbit.ButtonMiddle,
	ui.MouseButtonRight:  orbit.ButtonRight,
}

func (c *inputCollector) OnMouseEvent(event ui.MouseEvent) bool {
	pointer := dprec.NewVec2(float64(event.X), float64(event.Y))

	switch event.Action {
	case ui.MouseActionDown:
		if button, ok := buttonMapping[event.Button]; ok {
			c.buttons = c.buttons.With(button)
		}
	case ui.MouseActionUp:
		if button, ok := buttonMapping[event.Button]; ok {
			c.buttons = c.buttons.Without(button)
		}
	case ui.MouseActionMove:
		if c.hasLastPointer {
			c.motion = dprec.Vec2Sum(c.motion, dprec.Vec2Diff(pointer, c.lastPointer))
		}
	case ui.MouseActionScroll:
		c.scroll(float64(event.ScrollX), float64(event.ScrollY), event.Modifiers.Contains(ui.KeyModifierControl))
	default:
		return false
	}

	c.lastPointer = pointer
	c.hasLastPointer = true
	return true
}

// scroll records a scroll amount. On a trackpad, Ctrl marks a pinch.
func (c *inputCollector) scroll(x, y float64, control bool) {
	if c.trackpadScroll && control {
		c.pinch = append(c.pinch, orbit.PinchEvent{
			Delta: y * c.trackpadPinchScale,
		})
		return
	}
	c.wheel = append(c.wheel, c.scrollEvent(x, y))
}

func (c *inputCollector) scrollEvent(x, y float64) orbit.WheelEvent {
	if c.trackpadScroll {
		return orbit.WheelEvent{
			Unit: orbit.ScrollUnitPixel,
			X:    x * c.trackpadScrollScale,
			Y:    y * c.trackpadScrollScale,
		}
	}
	return orbit.WheelEvent{
		Unit: orbit.ScrollUnitLine,
		X:    x,
		Y:    y,
	}
}

// ReleaseAll forgets held keys and buttons, for example when the window
// loses focus and release events would be missed.
func (c *inputCollector) ReleaseAll() {
	c.keys = 0
	c.buttons = 0
	c.hasLastPointer = false
}

// Drain returns the events collected since the previous call. Held keys
// and buttons carry over to the next frame.
func (c *inputCollector) Drain() orbit.Events {
	events := orbit.Events{
		Wheel:   c.wheel,
		Pinch:   c.pinch,
		Keys:    c.keys,
		Buttons: c.buttons,
		Motion:  c.motion,
	}
	c.wheel = nil
	c.pinch = nil
	c.motion = dprec.ZeroVec2()
	return events
}
