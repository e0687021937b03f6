// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"time"

	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/game"
	"github.com/decker502/duckhunt/pkg/scenes"
	"github.com/decker502/duckhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "duckhunt"

// 操作提示
const controlsHint = "M: sound  R: restart  F11: fullscreen  Esc: quit"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
	// Assets 资源文件系统（图集、音效），路径相对于资源根目录
	Assets fs.FS
	// Game 游戏配置，为 nil 时加载内置配置
	Game *config.GameConfig
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.GameConfig
	sceneManager    *game.SceneManager
	surface         *EbitenSurface
	hud             *HUD
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	verbose         bool
	seed            int64
	restarts        int64
	presses         []utils.PointerPress
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Assets == nil {
		return nil, errors.New("资源文件系统未设置")
	}

	gameConfig := cfg.Game
	if gameConfig == nil {
		loaded, err := config.LoadGameConfig(config.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		gameConfig = loaded
	}
	log.Printf("[Config] %dx%d @ %d TPS, %d ducks, %d shots",
		gameConfig.Screen.Width, gameConfig.Screen.Height, gameConfig.FPS,
		gameConfig.DucksOnScreen, gameConfig.ShotsPerRound)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器并预加载所有资源
	resourceManager := game.NewResourceManager(audioContext, cfg.Assets)
	if err := resourceManager.Preload(gameConfig.Assets); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}
	sheet, err := resourceManager.SpriteSheet()
	if err != nil {
		return nil, err
	}

	// 设置存储（gdata 打开失败时降级为不持久化）
	settingsManager := game.NewSettingsManager(openStorage())
	if err := settingsManager.Load(); err != nil {
		log.Printf("[App] Warning: failed to load settings: %v", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized (sound enabled: %v)", audioManager.SoundEnabled())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		cfg:             gameConfig,
		surface:         NewEbitenSurface(gameConfig.Screen.Width, gameConfig.Screen.Height),
		hud:             NewHUD(float64(gameConfig.Screen.Height), float64(gameConfig.Screen.Width), float64(gameConfig.Screen.HUDHeight), controlsHint),
		audioManager:    audioManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		seed:            seed,
	}

	// 创建场景管理器，重开时通过工厂创建全新的一局
	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		state := game.NewGameState(gameConfig, game.NewTimeProvider(), a.seed+a.restarts)
		a.restarts++
		return scenes.NewHuntScene(state, a.surface, sheet, audioManager, a.hud)
	})
	if !a.sceneManager.Restart() {
		return nil, errors.New("无法创建游戏场景")
	}

	ebiten.SetTPS(gameConfig.FPS)
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// openStorage 打开 gdata 存储
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 处理输入并推进一个 tick
// ebiten 按 SetTPS 设定的频率调用
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !utils.IsMobile() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.audioManager.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if a.sceneManager.Restart() {
			log.Printf("[App] Game restarted")
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	// 点击在 tick 之前送入，落在统计栏上的点击忽略
	a.presses = utils.AppendJustPressedPointers(a.presses[:0])
	forwardPresses(a.presses, a.playfield(), a.sceneManager)

	a.sceneManager.Tick()
	return nil
}

// playfield 返回游戏画面区域（不含统计栏）
func (a *App) playfield() game.Rect {
	return game.Rect{W: float64(a.cfg.Screen.Width), H: float64(a.cfg.Screen.Height)}
}

// clickTarget 接收点击的对象，通常是 SceneManager
type clickTarget interface {
	HandleClick(x, y float64) bool
}

// forwardPresses 把落在 playfield 内的点击转发给 target
//
// 返回:
//   - int: 被 target 接受的点击数
func forwardPresses(presses []utils.PointerPress, playfield game.Rect, target clickTarget) int {
	accepted := 0
	for _, p := range presses {
		x, y := float64(p.X), float64(p.Y)
		if !playfield.Contains(x, y) {
			continue
		}
		if target.HandleClick(x, y) {
			accepted++
		}
	}
	return accepted
}

// Draw 绘制游戏画面和统计栏
func (a *App) Draw(screen *ebiten.Image) {
	screen.DrawImage(a.surface.Image(), nil)
	a.hud.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时使用最近邻缩放保持像素风格，两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（画面加统计栏）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height + a.cfg.Screen.HUDHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
