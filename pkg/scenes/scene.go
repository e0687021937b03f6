package scenes

import (
	"github.com/decker502/duckhunt/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// 编译期检查
var _ Scene = (*HuntScene)(nil)
