package entities

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
)

// newSpriteFromDef 根据配置创建精灵组件，位置取配置中的初始坐标
func newSpriteFromDef(def config.SpriteDef) *components.SpriteComponent {
	return &components.SpriteComponent{
		X:                def.X,
		Y:                def.Y,
		SheetRow:         def.Row,
		FrameCount:       def.Frames,
		FrameWidth:       def.Width,
		FrameHeight:      def.Height,
		FramesPerAdvance: def.FramesPerAdvance,
		Frame:            def.Column,
	}
}
