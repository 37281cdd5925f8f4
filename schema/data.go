package schema

import "math"

// Input kinds sent by the touch pad.
const (
	KindDrag  = "drag"
	KindPinch = "pinch"
	KindKeys  = "keys"
	KindHello = "hello"
)

// Key names carried by KindKeys messages.
const (
	KeyForward = "forward"
	KeyBack    = "back"
	KeyLeft    = "left"
	KeyRight   = "right"
)

// Input is a single remote input message.
type Input struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`

	// X and Y hold the drag distance in pixels for KindDrag.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// Delta holds the relative scale change for KindPinch.
	Delta float64 `json:"delta,omitempty"`

	// Keys lists every key that is held for KindKeys. An empty list
	// releases all keys.
	Keys []string `json:"keys,omitempty"`
}

// Point is a screen-space position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}
