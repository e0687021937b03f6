package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/duckhunt/pkg/app"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	assetsFlag  = flag.String("assets", "", "Load sprite sheet and sounds from this directory instead of the embedded assets")
	configFlag  = flag.String("config", "", "Load game config from this YAML file instead of the embedded one")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据，必须在加载配置之前
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: *verboseFlag,
		Seed:    *seedFlag,
	}

	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			log.Fatalf("读取配置文件失败: %v", err)
		}
		gameConfig, err := config.ParseGameConfig(data, *configFlag)
		if err != nil {
			log.Fatalf("配置文件无效: %v", err)
		}
		cfg.Game = gameConfig
	}

	if *assetsFlag != "" {
		cfg.Assets = os.DirFS(*assetsFlag)
	} else {
		assets, err := fs.Sub(assetsFS, "assets")
		if err != nil {
			log.Fatalf("嵌入资源不可用: %v", err)
		}
		cfg.Assets = assets
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Duck Hunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
