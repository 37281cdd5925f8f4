package orbit

import "github.com/mokiat/gomath/dprec"

// Transform receives the synthesized camera pose. Scene graph nodes of the
// host engine satisfy it.
type Transform interface {
	SetPosition(position dprec.Vec3)
	SetRotation(rotation dprec.Quat)
}

// Pose is a world-space camera transform.
type Pose struct {
	Position dprec.Vec3
	Rotation dprec.Quat
}

// Pose synthesizes the camera transform for the state. The camera is
// placed Radius units behind Target along its rotated +Z axis and looks
// down its -Z axis, which always passes through Target.
func (s State) Pose() Pose {
	rotation := dprec.QuatProd(yawRotation(s.Yaw), pitchRotation(s.Pitch))
	back := dprec.QuatVec3Rotation(rotation, dprec.NewVec3(0.0, 0.0, s.Radius))
	return Pose{
		Position: dprec.Vec3Sum(back, s.Target),
		Rotation: rotation,
	}
}

// Forward returns the unit direction the camera looks at.
func (p Pose) Forward() dprec.Vec3 {
	return dprec.QuatVec3Rotation(p.Rotation, dprec.NewVec3(0.0, 0.0, -1.0))
}

// Apply writes the pose to the transform.
func (p Pose) Apply(transform Transform) {
	transform.SetPosition(p.Position)
	transform.SetRotation(p.Rotation)
}

// Attach returns a Transform that moves child along with parent, the way a
// child node follows its parent in a scene graph. The child is rotated by
// offset relative to the parent. Either side may be nil.
func Attach(parent, child Transform, offset dprec.Quat) Transform {
	return attachedTransform{
		parent: parent,
		child:  child,
		offset: offset,
	}
}

type attachedTransform struct {
	parent Transform
	child  Transform
	offset dprec.Quat
}

func (t attachedTransform) SetPosition(position dprec.Vec3) {
	if t.parent != nil {
		t.parent.SetPosition(position)
	}
	if t.child != nil {
		t.child.SetPosition(position)
	}
}

func (t attachedTransform) SetRotation(rotation dprec.Quat) {
	if t.parent != nil {
		t.parent.SetRotation(rotation)
	}
	if t.child != nil {
		t.child.SetRotation(dprec.QuatProd(rotation, t.offset))
	}
}
