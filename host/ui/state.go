package ui

import (
	"github.com/mokiat/lacking/game"

	"github.com/jim-ec/hello-orbit/remote"
)

type GlobalState struct {
	Engine      *game.Engine
	ResourceSet *game.ResourceSet
	Config      SceneConfig

	// Remote is nil unless touch pad pairing is enabled.
	Remote *remote.Host
}
