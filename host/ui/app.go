package ui

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/mvc"
	"github.com/mokiat/lacking/ui/std"

	"github.com/jim-ec/hello-orbit/orbit"
	"github.com/jim-ec/hello-orbit/remote"
)

func BootstrapApplication(window *ui.Window, gameController *game.Controller, config SceneConfig) {
	engine := gameController.Engine()
	eventBus := mvc.NewEventBus()

	var remoteHost *remote.Host
	if config.RemoteEnabled {
		id := GetParam("id")
		if id == "" {
			uid, _ := uuid.NewV6()
			id = uid.String()
		}
		remoteHost = remote.NewHost(id)
	}

	scope := co.RootScope(window)
	scope = co.TypedValueScope(scope, eventBus)
	scope = co.TypedValueScope(scope, GlobalState{
		Engine:      engine,
		ResourceSet: engine.CreateResourceSet(),
		Config:      config,
		Remote:      remoteHost,
	})
	co.Initialize(scope, co.New(Application, nil))
}

var Application = mvc.EventListener(co.Define[*applicationComponent]())

type applicationComponent struct {
	co.BaseComponent

	eventBus   *mvc.EventBus
	activeView ViewName
	orbitState opt.T[orbit.State]

	cancelRemote func()
}

func (c *applicationComponent) OnCreate() {
	c.eventBus = co.TypedValue[*mvc.EventBus](c.Scope())
	c.activeView = ViewNameIntro

	globalState := co.TypedValue[GlobalState](c.Scope())
	if host := globalState.Remote; host != nil {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancelRemote = cancel
		go func() {
			if err := host.Listen(ctx); err != nil {
				log.Println("failed to listen", err)
			}
		}()
	}
}

func (c *applicationComponent) OnDelete() {
	if c.cancelRemote != nil {
		c.cancelRemote()
	}
}

func (c *applicationComponent) Render() co.Instance {
	return co.New(std.Switch, func() {
		co.WithData(std.SwitchData{
			ChildKey: c.activeView,
		})

		co.WithChild(ViewNameIntro, co.New(IntroScreen, func() {
			co.WithData(IntroScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameError, co.New(ErrorScreen, func() {
			co.WithData(ErrorScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameLoading, co.New(LoadingScreen, func() {
			co.WithData(LoadingScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameScene, co.New(SceneScreen, func() {
			co.WithData(SceneScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameLicenses, co.New(LicensesScreen, func() {
			co.WithData(LicensesScreenData{
				App: c,
			})
		}))
	})
}

func (c *applicationComponent) OnEvent(event mvc.Event) {
	switch event.(type) {
	case ApplicationActiveViewChangedEvent:
		c.Invalidate()
	}
}

func (c *applicationComponent) ActiveView() ViewName {
	return c.activeView
}

func (c *applicationComponent) SetActiveView(view ViewName) {
	c.activeView = view
	c.eventBus.Notify(ApplicationActiveViewChangedEvent{
		ActiveView: view,
	})
}

// SaveOrbitState remembers the camera state of a scene view that is going
// away.
func (c *applicationComponent) SaveOrbitState(state orbit.State) {
	c.orbitState = opt.V(state)
}

// OrbitState returns the last saved camera state, or initial if the scene
// was never shown.
func (c *applicationComponent) OrbitState(initial orbit.State) orbit.State {
	if c.orbitState.Specified {
		return c.orbitState.Value
	}
	return initial
}

const (
	ViewNameIntro    ViewName = "intro"
	ViewNameError    ViewName = "error"
	ViewNameLoading  ViewName = "loading"
	ViewNameScene    ViewName = "scene"
	ViewNameLicenses ViewName = "licenses"
)

type ViewName = string

type ApplicationActiveViewChangedEvent struct {
	ActiveView ViewName
}
