//go:build js

package main

import (
	"fmt"

	jsapp "github.com/mokiat/lacking-js/app"
	jsgame "github.com/mokiat/lacking-js/game"
	jsui "github.com/mokiat/lacking-js/ui"
	"github.com/mokiat/lacking/storage/chunked"

	gameui "github.com/jim-ec/hello-orbit/host/ui"
)

func runApplication() error {
	storage, err := chunked.NewWebStorage(".")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	sceneConfig := gameui.DefaultSceneConfig()
	sceneConfig.TrackpadScroll = true
	sceneConfig.RemoteEnabled = true

	controller := createController(storage, jsgame.NewShaderCollection(), jsgame.NewShaderBuilder(), jsui.NewShaderCollection(), sceneConfig)

	cfg := jsapp.NewConfig("screen")
	cfg.AddGLExtension("EXT_color_buffer_float")
	cfg.SetFullscreen(false)
	cfg.SetAudioEnabled(false)
	return jsapp.Run(cfg, controller)
}
