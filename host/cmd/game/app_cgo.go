//go:build !js

package main

import (
	"fmt"

	nativeapp "github.com/mokiat/lacking-native/app"
	nativegame "github.com/mokiat/lacking-native/game"
	nativeui "github.com/mokiat/lacking-native/ui"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/jim-ec/hello-orbit/host/resources"
	gameui "github.com/jim-ec/hello-orbit/host/ui"
)

func runApplication() error {
	storage, err := chunked.NewFileStorage("./assets")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Mouse wheels report lines on desktop; trackpad scrolling is opted
	// into by the web build, where the browser reports pixels.
	sceneConfig := gameui.DefaultSceneConfig()

	controller := createController(storage, nativegame.NewShaderCollection(), nativegame.NewShaderBuilder(), nativeui.NewShaderCollection(), sceneConfig)

	cfg := nativeapp.NewConfig("Orbit", 1280, 800)
	cfg.SetFullscreen(false)
	cfg.SetMaximized(false)
	cfg.SetMinSize(640, 400)
	cfg.SetVSync(true)
	cfg.SetIcon("ui/images/icon.png")
	cfg.SetLocator(ui.WrappedLocator(resource.NewFSLocator(resources.UI)))
	cfg.SetAudioEnabled(false)
	return nativeapp.Run(cfg, controller)
}
