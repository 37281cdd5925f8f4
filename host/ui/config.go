package ui

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"

	"github.com/jim-ec/hello-orbit/orbit"
)

// SceneConfig holds everything the orbit scene needs at construction time.
type SceneConfig struct {
	// Orbit tunes the camera controller.
	Orbit orbit.Config

	// Initial is the camera pose when the scene opens.
	Initial orbit.State

	// FoV is the horizontal field of view of the camera.
	FoV sprec.Angle

	// Exposure is the fixed camera exposure.
	Exposure float32

	// CascadeDistances are the far bounds of the shadow cascades.
	CascadeDistances []float32

	// TrackpadScroll classifies scroll events as pixel deltas, which pan
	// the camera, instead of wheel notches, which zoom it.
	TrackpadScroll bool

	// TrackpadScrollScale converts scroll amounts to pixels when
	// TrackpadScroll is set.
	TrackpadScrollScale float64

	// TrackpadPinchScale converts scroll amounts to pinch deltas for
	// scrolls with Ctrl held, which is how browsers report trackpad pinch
	// gestures.
	TrackpadPinchScale float64

	// LightOffset is the rotation of the sun relative to the camera.
	LightOffset dprec.Quat

	// RemoteEnabled starts a pairing host for touch pads.
	RemoteEnabled bool
}

// DefaultSceneConfig returns the configuration of the demo scene.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Orbit: orbit.Config{
			LineZoomSpeed: opt.V(orbit.DefaultLineZoomSpeed),
			MoveScaling:   opt.V(orbit.MoveScalingRadius),
			MinRadius:     opt.V(0.5),
			MaxRadius:     opt.V(100.0),
		},
		Initial: orbit.State{
			Target: dprec.ZeroVec3(),
			Yaw:    dprec.Degrees(135),
			Pitch:  dprec.Degrees(-45),
			Radius: 5.0,
		},
		FoV:                 sprec.Degrees(60),
		Exposure:            1.0,
		CascadeDistances:    []float32{10.0, 100.0},
		TrackpadScroll:      false,
		TrackpadScrollScale: 10.0,
		TrackpadPinchScale:  0.01,
		LightOffset:         dprec.RotationQuat(dprec.Degrees(-45), dprec.BasisYVec3()),
		RemoteEnabled:       false,
	}
}
