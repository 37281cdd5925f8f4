// Package orbit implements an orbit camera controller.
//
// A camera is described by a pivot point (target), two angles (yaw and
// pitch) and a distance (radius). Each frame the device events collected by
// the host are reduced to a [FrameInput] by [Aggregate], the [State] of every
// camera is advanced with [State.Update] and the resulting [Pose] is written
// to the camera's [Transform].
//
// The [System] type ties these steps together for any number of cameras:
//
//	system := orbit.NewSystem(orbit.Config{})
//	system.Spawn(orbit.State{
//		Yaw:    dprec.Degrees(135),
//		Pitch:  dprec.Degrees(-45),
//		Radius: 5.0,
//	}, cameraNode)
//
//	// once per frame
//	system.Tick(events)
//
// The package is not safe for concurrent use. It is meant to be driven from
// the single goroutine that runs the frame loop.
package orbit
