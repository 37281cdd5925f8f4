package ui

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/jim-ec/hello-orbit/host/ui/widget"
	"github.com/jim-ec/hello-orbit/orbit"
	"github.com/jim-ec/hello-orbit/remote"
)

func LoadSceneData(engine *game.Engine, resourceSet *game.ResourceSet) async.Promise[*SceneData] {
	var data SceneData
	return async.InjectionPromise(async.JoinOperations(
		resourceSet.FetchResource("scene.dat", &data.Scene),
	), &data)
}

type SceneData struct {
	Scene *game.ModelTemplate
}

var SceneScreen = co.Define[*sceneScreenComponent]()

type SceneScreenData struct {
	App *applicationComponent
}

type sceneScreenComponent struct {
	co.BaseComponent

	app *applicationComponent

	engine *game.Engine
	config SceneConfig
	remote *remote.Host

	scene  *game.Scene
	orbit  *orbit.System
	camera *orbit.Camera
	input  *inputCollector

	textFont       *ui.Font
	pairingVisible bool
	peers          []string
	frame          int
}

var _ ui.ElementKeyboardHandler = (*sceneScreenComponent)(nil)
var _ ui.ElementMouseHandler = (*sceneScreenComponent)(nil)
var _ ui.ElementRenderHandler = (*sceneScreenComponent)(nil)

func (c *sceneScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.engine = globalState.Engine
	c.config = globalState.Config
	c.remote = globalState.Remote

	componentData := co.GetData[SceneScreenData](c.Properties())
	c.app = componentData.App

	c.textFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")
	c.input = newInputCollector(c.config)
	c.orbit = orbit.NewSystem(c.config.Orbit)

	c.createScene()
	c.engine.SetActiveScene(c.scene)
	c.engine.ResetDeltaTime()
}

func (c *sceneScreenComponent) OnDelete() {
	c.app.SaveOrbitState(c.camera.State())
	c.engine.SetActiveScene(nil)
	c.orbit.Despawn(c.camera.ID())
}

func (c *sceneScreenComponent) createScene() {
	c.scene = c.engine.CreateScene(game.SceneInfo{
		IncludePhysics: opt.V(false),
		IncludeECS:     opt.V(false),
	})

	sceneModel := c.scene.InstantiateModel(game.ModelInfo{
		Template:  sceneData.Scene,
		Name:      opt.V("Scene"),
		IsDynamic: true,
	})

	camera := c.createCamera(c.scene.Graphics())
	c.scene.Graphics().SetActiveCamera(camera)

	var cameraTransform, lightTransform orbit.Transform
	if cameraNode := sceneModel.FindNode("Camera"); !cameraNode.IsNil() {
		c.scene.CameraBindingSet().Bind(cameraNode, camera)
		cameraTransform = c.scene.Hierarchy().Wrap(cameraNode)
	} else {
		log.Println("ERROR: scene has no Camera node, camera will not move")
	}
	if lightNode := sceneModel.FindNode("DirectionalLight"); !lightNode.IsNil() {
		lightTransform = c.scene.Hierarchy().Wrap(lightNode)
	}
	transform := orbit.Attach(cameraTransform, lightTransform, c.config.LightOffset)
	c.camera = c.orbit.Spawn(c.app.OrbitState(c.config.Initial), transform)
}

func (c *sceneScreenComponent) createCamera(scene *graphics.Scene) *graphics.Camera {
	result := scene.CreateCamera()
	result.SetFoVMode(graphics.FoVModeHorizontalPlus)
	result.SetFoV(c.config.FoV)
	result.SetAutoExposure(false)
	result.SetExposure(c.config.Exposure)
	result.SetAutoFocus(false)
	result.SetCascadeDistances(c.config.CascadeDistances)
	return result
}

func (c *sceneScreenComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	events := c.input.Drain()
	if c.remote != nil {
		events = events.Merge(c.remote.Drain())
	}
	c.orbit.Tick(events)

	c.frame++
	if c.remote != nil && c.frame%30 == 0 {
		if peers := c.remote.Peers(); !slices.Equal(peers, c.peers) {
			c.peers = peers
			log.Println("pads:", strings.Join(peers, ", "))
		}
	}

	c.Invalidate()
}

func (c *sceneScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	switch event.Code {

	case ui.KeyCodeEscape:
		if event.Action == ui.KeyboardActionUp {
			co.Window(c.Scope()).Close()
		}
		return true

	case ui.KeyCodeTab:
		if event.Action == ui.KeyboardActionDown && c.remote != nil {
			c.pairingVisible = !c.pairingVisible
			c.input.ReleaseAll()
		}
		return true

	case ui.KeyCodeL:
		if event.Action == ui.KeyboardActionUp {
			c.input.ReleaseAll()
			c.app.SetActiveView(ViewNameLicenses)
		}
		return true

	default:
		return c.input.OnKeyboardEvent(event)
	}
}

func (c *sceneScreenComponent) OnMouseEvent(element *ui.Element, event ui.MouseEvent) bool {
	return c.input.OnMouseEvent(event)
}

func (c *sceneScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		co.WithChild("hint", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(10),
				Bottom: opt.V(10),
			})
			hint := "Drag to orbit, scroll to zoom, WASD to move, L for licenses"
			if c.remote != nil {
				hint += ", TAB to pair a touch pad"
			}
			co.WithData(std.LabelData{
				Font:      c.textFont,
				FontSize:  opt.V(float32(16)),
				FontColor: opt.V(ui.White()),
				Text:      hint,
			})
		}))

		if c.pairingVisible && c.remote != nil {
			co.WithChild("pairing", co.New(std.Container, func() {
				co.WithLayoutData(layout.Data{
					Top:   opt.V(20),
					Right: opt.V(20),
				})
				co.WithData(std.ContainerData{
					BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 180)),
					Padding:         ui.Spacing{Left: 20, Right: 20, Top: 20, Bottom: 20},
					Layout: layout.Vertical(layout.VerticalSettings{
						ContentAlignment: layout.HorizontalAlignmentCenter,
						ContentSpacing:   10,
					}),
				})

				link := BaseURL() + "pad/?dest=" + c.remote.ID()
				co.WithChild("qr-code", co.New(widget.QRCode, func() {
					co.WithData(widget.QRCodeData{
						Text: link,
						Size: 240,
					})
					co.WithCallbackData(widget.QRCodeCallbackData{
						OnClick: func() {
							URLOpen(link)
						},
					})
				}))

				co.WithChild("peers", co.New(std.Label, func() {
					co.WithData(std.LabelData{
						Font:      c.textFont,
						FontSize:  opt.V(float32(16)),
						FontColor: opt.V(ui.White()),
						Text:      fmt.Sprintf("Connected pads: %d", len(c.peers)),
					})
				}))

				for _, name := range c.peers {
					co.WithChild("peer-"+name, co.New(std.Label, func() {
						co.WithData(std.LabelData{
							Font:      c.textFont,
							FontSize:  opt.V(float32(14)),
							FontColor: opt.V(ui.RGB(0xAA, 0xAA, 0xAA)),
							Text:      name,
						})
					}))
				}
			}))
		}
	})
}

// Temporary global storage for data across views
var sceneData *SceneData
