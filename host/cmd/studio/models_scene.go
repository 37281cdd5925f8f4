package main

import (
	"github.com/mokiat/lacking/game/asset/dsl"
)

// The orbit scene: two cubes on a gray plane, lit by a soft sky and a
// shadow casting sun. The Camera node is driven by the orbit controller and
// the DirectionalLight node follows it at runtime.
var _ = func() any {
	sky := dsl.CreateSky(dsl.CreateColorSkyMaterial(
		dsl.RGB(0.6, 0.7, 0.9),
	))

	ambientLight := dsl.CreateAmbientLight()

	directionalLight := dsl.CreateDirectionalLight(
		dsl.SetEmitColor(dsl.RGB(1.0, 1.0, 1.0)),
		dsl.SetCastShadow(dsl.Const(true)),
	)

	return dsl.Save("scene.dat", dsl.CreateModel(
		dsl.AppendModel(dsl.OpenGLTFModel("resources/raw/models/scene.glb")),
		dsl.AddNode(dsl.CreateNode("Sky",
			dsl.AddAttachment(sky),
		)),
		dsl.AddNode(dsl.CreateNode("AmbientLight",
			dsl.AddAttachment(ambientLight),
		)),
		dsl.AddNode(dsl.CreateNode("DirectionalLight",
			dsl.AddAttachment(directionalLight),
		)),
		dsl.AddNode(dsl.CreateNode("Camera")),
	))
}()
