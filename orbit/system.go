package orbit

import (
	"slices"

	"github.com/google/uuid"
)

// Camera is a camera entity driven by a System.
type Camera struct {
	id        uuid.UUID
	state     State
	transform Transform
}

// ID returns the unique identifier assigned to the camera on spawn.
func (c *Camera) ID() uuid.UUID {
	return c.id
}

// State returns the current orbit state of the camera.
func (c *Camera) State() State {
	return c.state
}

// Pose returns the pose derived from the current state. It matches what
// the last Spawn or Tick wrote to the camera's transform, if it has one.
func (c *Camera) Pose() Pose {
	return c.state.Pose()
}

// System updates a set of orbit cameras from shared per-frame input.
type System struct {
	config  Config
	cameras []*Camera
}

// NewSystem creates a System that uses the specified configuration for all
// of its cameras.
func NewSystem(config Config) *System {
	return &System{
		config: config,
	}
}

// Config returns the configuration of the system.
func (s *System) Config() Config {
	return s.config
}

// Spawn adds a camera with the specified initial state. The state is
// constrained to the configured ranges and its pose is written to the
// transform right away. A nil transform is allowed, in which case only the
// state is tracked.
func (s *System) Spawn(state State, transform Transform) *Camera {
	camera := &Camera{
		id:        uuid.Must(uuid.NewV6()),
		state:     s.config.Constrain(state),
		transform: transform,
	}
	s.cameras = append(s.cameras, camera)
	camera.apply()

	Logger().Debug("Camera spawned",
		"id", camera.id.String(),
		"yaw", camera.state.Yaw.Degrees(),
		"pitch", camera.state.Pitch.Degrees(),
		"radius", camera.state.Radius,
	)
	return camera
}

// Despawn removes the camera with the specified id. It reports whether
// such a camera existed.
func (s *System) Despawn(id uuid.UUID) bool {
	index := slices.IndexFunc(s.cameras, func(camera *Camera) bool {
		return camera.id == id
	})
	if index < 0 {
		return false
	}
	s.cameras = slices.Delete(s.cameras, index, index+1)
	Logger().Debug("Camera despawned", "id", id.String())
	return true
}

// Camera returns the camera with the specified id, if present.
func (s *System) Camera(id uuid.UUID) (*Camera, bool) {
	for _, camera := range s.cameras {
		if camera.id == id {
			return camera, true
		}
	}
	return nil, false
}

// Cameras returns all cameras in spawn order.
func (s *System) Cameras() []*Camera {
	return slices.Clone(s.cameras)
}

// Tick aggregates the events of a frame and advances every camera by one
// step. Device events are global, so all cameras receive the same input.
func (s *System) Tick(events Events) FrameInput {
	input := Aggregate(s.config, events)
	for _, camera := range s.cameras {
		camera.state = camera.state.Update(s.config, input)
		camera.apply()
	}
	return input
}

func (c *Camera) apply() {
	if c.transform != nil {
		c.state.Pose().Apply(c.transform)
	}
}
