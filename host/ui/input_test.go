package ui

import (
	"testing"

	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/lacking/ui"

	"github.com/jim-ec/hello-orbit/orbit"
)

func TestInputCollectorKeys(t *testing.T) {
	collector := newInputCollector(DefaultSceneConfig())

	press := func(code ui.KeyCode, action ui.KeyboardAction) bool {
		return collector.OnKeyboardEvent(ui.KeyboardEvent{
			Code:   code,
			Action: action,
		})
	}

	if !press(ui.KeyCodeW, ui.KeyboardActionDown) || !press(ui.KeyCodeArrowRight, ui.KeyboardActionDown) {
		t.Fatalf("movement keys were not handled")
	}
	if press(ui.KeyCodeEscape, ui.KeyboardActionDown) {
		t.Errorf("escape was handled as a movement key")
	}

	events := collector.Drain()
	if events.Keys != orbit.NewKeySet(orbit.KeyForward, orbit.KeyRight) {
		t.Errorf("Keys = %08b, want forward and right", events.Keys)
	}

	// Held keys persist until released.
	if collector.Drain().Keys != events.Keys {
		t.Errorf("held keys were dropped between frames")
	}

	press(ui.KeyCodeW, ui.KeyboardActionUp)
	if keys := collector.Drain().Keys; keys != orbit.NewKeySet(orbit.KeyRight) {
		t.Errorf("Keys = %08b, want right after releasing W", keys)
	}

	collector.ReleaseAll()
	if keys := collector.Drain().Keys; keys != 0 {
		t.Errorf("Keys = %08b, want none after ReleaseAll", keys)
	}
}

func TestInputCollectorScrollClassification(t *testing.T) {
	config := DefaultSceneConfig()
	wheel := newInputCollector(config).scrollEvent(0, 2)
	if wheel != (orbit.WheelEvent{Unit: orbit.ScrollUnitLine, Y: 2}) {
		t.Errorf("wheel scroll = %+v, want a line event", wheel)
	}

	config.TrackpadScroll = true
	config.TrackpadScrollScale = 5
	trackpad := newInputCollector(config).scrollEvent(1, -2)
	if trackpad != (orbit.WheelEvent{Unit: orbit.ScrollUnitPixel, X: 5, Y: -10}) {
		t.Errorf("trackpad scroll = %+v, want a scaled pixel event", trackpad)
	}
}

func TestInputCollectorTrackpadPinch(t *testing.T) {
	tests := []struct {
		name      string
		trackpad  bool
		control   bool
		wantWheel []orbit.WheelEvent
		wantPinch []orbit.PinchEvent
	}{
		{
			name:      "wheel",
			wantWheel: []orbit.WheelEvent{{Unit: orbit.ScrollUnitLine, Y: 3}},
		},
		{
			name:      "wheel with control",
			control:   true,
			wantWheel: []orbit.WheelEvent{{Unit: orbit.ScrollUnitLine, Y: 3}},
		},
		{
			name:      "trackpad scroll",
			trackpad:  true,
			wantWheel: []orbit.WheelEvent{{Unit: orbit.ScrollUnitPixel, Y: 30}},
		},
		{
			name:      "trackpad pinch",
			trackpad:  true,
			control:   true,
			wantPinch: []orbit.PinchEvent{{Delta: 0.03}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSceneConfig()
			config.TrackpadScroll = tt.trackpad
			config.TrackpadScrollScale = 10
			config.TrackpadPinchScale = 0.01
			collector := newInputCollector(config)

			collector.scroll(0, 3, tt.control)
			events := collector.Drain()

			if len(events.Wheel) != len(tt.wantWheel) {
				t.Fatalf("Wheel = %+v, want %+v", events.Wheel, tt.wantWheel)
			}
			for i := range tt.wantWheel {
				if events.Wheel[i] != tt.wantWheel[i] {
					t.Errorf("Wheel[%d] = %+v, want %+v", i, events.Wheel[i], tt.wantWheel[i])
				}
			}
			if len(events.Pinch) != len(tt.wantPinch) {
				t.Fatalf("Pinch = %+v, want %+v", events.Pinch, tt.wantPinch)
			}
			for i := range tt.wantPinch {
				if !nearlyFloat(events.Pinch[i].Delta, tt.wantPinch[i].Delta) {
					t.Errorf("Pinch[%d] = %+v, want %+v", i, events.Pinch[i], tt.wantPinch[i])
				}
			}

			if next := collector.Drain(); len(next.Wheel) != 0 || len(next.Pinch) != 0 {
				t.Errorf("scroll events carried over to the next frame: %+v", next)
			}
		})
	}
}

func TestInputCollectorTrackpadPinchZooms(t *testing.T) {
	config := DefaultSceneConfig()
	config.TrackpadScroll = true
	collector := newInputCollector(config)

	collector.scroll(0, 5, true)
	input := orbit.Aggregate(config.Orbit, collector.Drain())
	if !(input.Zoom > 0) {
		t.Errorf("Zoom = %v, want a positive zoom from a trackpad pinch", input.Zoom)
	}
}

func TestInputCollectorMouse(t *testing.T) {
	type frame struct {
		events      []ui.MouseEvent
		wantButtons orbit.ButtonSet
		wantMotion  dprec.Vec2
	}

	move := func(x, y int) ui.MouseEvent {
		return ui.MouseEvent{Action: ui.MouseActionMove, X: x, Y: y}
	}
	down := func(button ui.MouseButton, x, y int) ui.MouseEvent {
		return ui.MouseEvent{Action: ui.MouseActionDown, Button: button, X: x, Y: y}
	}
	up := func(button ui.MouseButton, x, y int) ui.MouseEvent {
		return ui.MouseEvent{Action: ui.MouseActionUp, Button: button, X: x, Y: y}
	}

	tests := []struct {
		name   string
		frames []frame
	}{
		{
			name: "first move does not jump",
			frames: []frame{
				{events: []ui.MouseEvent{move(300, 200)}},
				{events: []ui.MouseEvent{move(310, 195)}, wantMotion: dprec.NewVec2(10, -5)},
			},
		},
		{
			name: "motion accumulates within a frame",
			frames: []frame{
				{
					events:     []ui.MouseEvent{move(0, 0), move(4, 1), move(10, 3)},
					wantMotion: dprec.NewVec2(10, 3),
				},
			},
		},
		{
			name: "drag holds button across frames",
			frames: []frame{
				{
					events:      []ui.MouseEvent{down(ui.MouseButtonLeft, 50, 50), move(60, 50)},
					wantButtons: orbit.NewButtonSet(orbit.ButtonLeft),
					wantMotion:  dprec.NewVec2(10, 0),
				},
				{
					wantButtons: orbit.NewButtonSet(orbit.ButtonLeft),
				},
				{
					events:      []ui.MouseEvent{move(60, 40), up(ui.MouseButtonLeft, 60, 40)},
					wantButtons: orbit.NewButtonSet(),
					wantMotion:  dprec.NewVec2(0, -10),
				},
			},
		},
		{
			name: "several buttons",
			frames: []frame{
				{
					events: []ui.MouseEvent{
						down(ui.MouseButtonRight, 0, 0),
						down(ui.MouseButtonMiddle, 0, 0),
						up(ui.MouseButtonRight, 0, 0),
					},
					wantButtons: orbit.NewButtonSet(orbit.ButtonMiddle),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := newInputCollector(DefaultSceneConfig())
			for i, f := range tt.frames {
				for _, event := range f.events {
					if !collector.OnMouseEvent(event) {
						t.Fatalf("frame %d: event %+v was not handled", i, event)
					}
				}
				events := collector.Drain()
				if events.Buttons != f.wantButtons {
					t.Errorf("frame %d: Buttons = %08b, want %08b", i, events.Buttons, f.wantButtons)
				}
				if events.Motion != f.wantMotion {
					t.Errorf("frame %d: Motion = %v, want %v", i, events.Motion, f.wantMotion)
				}
			}
		})
	}
}

func TestInputCollectorReleaseAllForgetsPointer(t *testing.T) {
	collector := newInputCollector(DefaultSceneConfig())
	collector.OnMouseEvent(ui.MouseEvent{Action: ui.MouseActionDown, Button: ui.MouseButtonLeft, X: 0, Y: 0})
	collector.ReleaseAll()
	collector.OnMouseEvent(ui.MouseEvent{Action: ui.MouseActionMove, X: 500, Y: 500})

	events := collector.Drain()
	if events.Buttons != 0 {
		t.Errorf("Buttons = %08b, want none after ReleaseAll", events.Buttons)
	}
	if events.Motion != dprec.ZeroVec2() {
		t.Errorf("Motion = %v, want no jump after ReleaseAll", events.Motion)
	}
}

func nearlyFloat(a, b float64) bool {
	return dprec.Abs(a-b) < 1e-9
}
