package orbit

import "github.com/mokiat/gomath/dprec"

// State is the orbit pose of a single camera. It is the source of truth
// for the camera; the camera transform is derived from it every frame.
type State struct {
	// Target is the world-space point the camera orbits and looks at.
	Target dprec.Vec3

	// Yaw is the rotation around the world Y axis. It is not normalized.
	Yaw dprec.Angle

	// Pitch is the rotation around the camera's local X axis. It is kept
	// within the configured pitch limit.
	Pitch dprec.Angle

	// Radius is the distance between the camera and Target. It is always
	// positive.
	Radius float64
}

// Update returns the state that follows s after applying a frame of input.
//
// Angles are updated before the movement step, so keyboard movement
// follows the camera heading of the current frame.
func (s State) Update(cfg Config, input FrameInput) State {
	panSpeed := cfg.panSpeed()
	limit := cfg.pitchLimit().Radians()

	s.Yaw = dprec.Radians(s.Yaw.Radians() - panSpeed*input.Pan.X)
	s.Pitch = dprec.Radians(dprec.Clamp(s.Pitch.Radians()-panSpeed*input.Pan.Y, -limit, limit))

	radius := s.Radius * (1.0 - input.Zoom)
	s.Radius = cfg.constrainRadius(radius)
	if s.Radius != radius {
		Logger().Debug("Radius constrained",
			"requested", radius,
			"radius", s.Radius,
		)
	}

	if input.Move.X != 0 || input.Move.Y != 0 {
		step := cfg.moveSpeed()
		if cfg.moveScaling() == MoveScalingRadius {
			step *= s.Radius
		}
		offset := dprec.QuatVec3Rotation(yawRotation(s.Yaw), dprec.NewVec3(
			step*input.Move.X,
			0.0,
			step*input.Move.Y,
		))
		s.Target = dprec.Vec3Sum(s.Target, offset)
	}
	return s
}

func yawRotation(yaw dprec.Angle) dprec.Quat {
	return dprec.RotationQuat(yaw, dprec.BasisYVec3())
}

func pitchRotation(pitch dprec.Angle) dprec.Quat {
	return dprec.RotationQuat(pitch, dprec.BasisXVec3())
}
