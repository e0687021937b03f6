package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/duckhunt/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内置配置文件路径（嵌入在 data/ 目录中）
const DefaultConfigPath = "data/duckhunt.yaml"

// 音效 ID，与 assets.sounds 中的键一一对应
const (
	CueShoot   = "shoot"
	CueDog     = "dog"
	CueLaugh   = "laugh"
	CueGotDuck = "gotduck"
	CuePerfect = "perfect"
)

// RequiredCues 所有必须配置的音效 ID
var RequiredCues = []string{CueShoot, CueDog, CueLaugh, CueGotDuck, CuePerfect}

// SpriteDef 单个精灵动画在图集中的定义
type SpriteDef struct {
	X                float64 `yaml:"x"`                // 初始 X 坐标
	Y                float64 `yaml:"y"`                // 初始 Y 坐标
	Column           int     `yaml:"column"`           // 起始帧索引
	Row              float64 `yaml:"row"`              // 图集中的行 Y 坐标
	Frames           int     `yaml:"frames"`           // 帧数
	Width            float64 `yaml:"width"`            // 整条动画条宽度
	Height           float64 `yaml:"height"`           // 帧高度
	FramesPerAdvance int     `yaml:"framesPerAdvance"` // 换帧间隔，0 为每 tick
}

// SpritesConfig 所有实体的精灵定义
type SpritesConfig struct {
	Duck          SpriteDef `yaml:"duck"`
	HuntedDuck    SpriteDef `yaml:"huntedDuck"`
	WalkingDog    SpriteDef `yaml:"walkingDog"`
	JumpingDog    SpriteDef `yaml:"jumpingDog"`
	BannerMiss    SpriteDef `yaml:"bannerMiss"`
	BannerOneKill SpriteDef `yaml:"bannerOneKill"`
	BannerPerfect SpriteDef `yaml:"bannerPerfect"`
}

// IntroConfig 开场动画时序（单位：tick）
type IntroConfig struct {
	WalkUntil int     `yaml:"walkUntil"` // DogTimer <= WalkUntil 时行走
	JumpUntil int     `yaml:"jumpUntil"` // DogTimer < JumpUntil 时绘制跳跃
	FinishAt  int     `yaml:"finishAt"`  // DogTimer == FinishAt 时开场结束
	WalkSpeed float64 `yaml:"walkSpeed"` // 行走速度（像素/tick）
}

// BannerConfig 结算动画参数
type BannerConfig struct {
	RiseSpeed float64 `yaml:"riseSpeed"` // 每 tick 的 Y 位移（负值向上）
	StopY     float64 `yaml:"stopY"`     // Y 不大于此值时结束
}

// BoundsConfig 鸭子可见区域
// 鸭子满足 x > MaxX、y+height < 0 或 y > MaxY 时被移除
type BoundsConfig struct {
	MaxX float64 `yaml:"maxX"`
	MaxY float64 `yaml:"maxY"`
}

// ScreenConfig 逻辑画面尺寸
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	HUDHeight int `yaml:"hudHeight"` // 画面下方统计栏高度
}

// AssetsConfig 外部资源路径（相对于资源根目录）
type AssetsConfig struct {
	Sheet  string            `yaml:"sheet"`  // 精灵图集
	Sounds map[string]string `yaml:"sounds"` // 音效 ID -> 文件路径
}

// GameConfig 游戏全部可调参数
type GameConfig struct {
	FPS              int           `yaml:"fps"`
	Screen           ScreenConfig  `yaml:"screen"`
	Background       [3]uint8      `yaml:"background"`
	DucksOnScreen    int           `yaml:"ducksOnScreen"`
	ShotsPerRound    int           `yaml:"shotsPerRound"`
	KillsPerLevel    int           `yaml:"killsPerLevel"`
	InitialDuckSpeed int           `yaml:"initialDuckSpeed"`
	DuckMaxDY        float64       `yaml:"duckMaxDY"`
	DuckSpawnMaxY    int           `yaml:"duckSpawnMaxY"`
	HuntedDuckMaxAge int           `yaml:"huntedDuckMaxAge"`
	Bounds           BoundsConfig  `yaml:"bounds"`
	Intro            IntroConfig   `yaml:"intro"`
	Banner           BannerConfig  `yaml:"banner"`
	Cooldown         time.Duration `yaml:"cooldown"`
	Sprites          SpritesConfig `yaml:"sprites"`
	Assets           AssetsConfig  `yaml:"assets"`
}

// BackgroundColor 返回背景填充色
func (c *GameConfig) BackgroundColor() color.RGBA {
	return color.RGBA{R: c.Background[0], G: c.Background[1], B: c.Background[2], A: 0xff}
}

// TickInterval 返回两个 tick 之间的目标间隔
func (c *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// DefaultGameConfig 返回内置默认配置
// 与 data/duckhunt.yaml 保持一致，测试和无资源环境直接使用
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		FPS:              15,
		Screen:           ScreenConfig{Width: 500, Height: 500, HUDHeight: 40},
		Background:       [3]uint8{55, 181, 255},
		DucksOnScreen:    2,
		ShotsPerRound:    4,
		KillsPerLevel:    10,
		InitialDuckSpeed: 3,
		DuckMaxDY:        5,
		DuckSpawnMaxY:    460,
		HuntedDuckMaxAge: 10,
		Bounds:           BoundsConfig{MaxX: 500, MaxY: 500},
		Intro:            IntroConfig{WalkUntil: 10, JumpUntil: 14, FinishAt: 16, WalkSpeed: 5},
		Banner:           BannerConfig{RiseSpeed: -5, StopY: 455},
		Cooldown:         time.Second,
		Sprites: SpritesConfig{
			Duck:          SpriteDef{X: 0, Y: 0, Row: 120, Frames: 3, Width: 120, Height: 30},
			HuntedDuck:    SpriteDef{Row: 230, Frames: 1, Width: 35, Height: 45},
			WalkingDog:    SpriteDef{X: 200, Y: 450, Row: 0, Frames: 5, Width: 300, Height: 45},
			JumpingDog:    SpriteDef{X: 200, Y: 450, Row: 60, Frames: 3, Width: 175, Height: 105, FramesPerAdvance: 2},
			BannerMiss:    SpriteDef{X: 220, Y: 500, Row: 270, Frames: 1, Width: 50, Height: 50, FramesPerAdvance: 10},
			BannerOneKill: SpriteDef{X: 220, Y: 500, Row: 320, Frames: 1, Width: 50, Height: 50, FramesPerAdvance: 10},
			BannerPerfect: SpriteDef{X: 220, Y: 500, Row: 375, Frames: 1, Width: 60, Height: 50, FramesPerAdvance: 10},
		},
		Assets: AssetsConfig{
			Sheet: "duckhunt.png",
			Sounds: map[string]string{
				CueShoot:   "sounds/gunshoot.wav",
				CueDog:     "sounds/dogsound.wav",
				CueLaugh:   "sounds/laugh.wav",
				CueGotDuck: "sounds/gotduck.wav",
				CuePerfect: "sounds/perfect.wav",
			},
		},
	}
}

// LoadGameConfig 从嵌入的 YAML 文件加载游戏配置
// 文件中缺省的字段保留 DefaultGameConfig 的值
//
// 参数：
//
//	filepath - 配置文件路径（以 data/ 开头）
//
// 返回：
//
//	*GameConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败时返回
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", filepath, err)
	}
	return ParseGameConfig(data, filepath)
}

// ParseGameConfig 解析 YAML 数据，source 仅用于错误信息
func ParseGameConfig(data []byte, source string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML from %s: %w", source, err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", source, err)
	}

	return cfg, nil
}

// validateGameConfig 校验配置的完整性和合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.DucksOnScreen <= 0 {
		return fmt.Errorf("ducksOnScreen must be positive, got %d", cfg.DucksOnScreen)
	}
	if cfg.ShotsPerRound <= 0 {
		return fmt.Errorf("shotsPerRound must be positive, got %d", cfg.ShotsPerRound)
	}
	if cfg.KillsPerLevel <= 0 {
		return fmt.Errorf("killsPerLevel must be positive, got %d", cfg.KillsPerLevel)
	}
	if cfg.DuckSpawnMaxY < 0 {
		return fmt.Errorf("duckSpawnMaxY cannot be negative, got %d", cfg.DuckSpawnMaxY)
	}
	if cfg.HuntedDuckMaxAge < 0 {
		return fmt.Errorf("huntedDuckMaxAge cannot be negative, got %d", cfg.HuntedDuckMaxAge)
	}
	if cfg.Cooldown < 0 {
		return fmt.Errorf("cooldown cannot be negative, got %s", cfg.Cooldown)
	}

	intro := cfg.Intro
	if !(intro.WalkUntil < intro.JumpUntil && intro.JumpUntil <= intro.FinishAt) {
		return fmt.Errorf("intro timings must satisfy walkUntil < jumpUntil <= finishAt, got %d/%d/%d",
			intro.WalkUntil, intro.JumpUntil, intro.FinishAt)
	}
	if cfg.Banner.RiseSpeed >= 0 {
		return fmt.Errorf("banner riseSpeed must be negative, got %f", cfg.Banner.RiseSpeed)
	}

	sprites := map[string]SpriteDef{
		"duck":          cfg.Sprites.Duck,
		"huntedDuck":    cfg.Sprites.HuntedDuck,
		"walkingDog":    cfg.Sprites.WalkingDog,
		"jumpingDog":    cfg.Sprites.JumpingDog,
		"bannerMiss":    cfg.Sprites.BannerMiss,
		"bannerOneKill": cfg.Sprites.BannerOneKill,
		"bannerPerfect": cfg.Sprites.BannerPerfect,
	}
	for name, def := range sprites {
		if def.Frames <= 0 {
			return fmt.Errorf("sprite %s: frames must be positive, got %d", name, def.Frames)
		}
		if def.Column < 0 || def.Column >= def.Frames {
			return fmt.Errorf("sprite %s: column %d out of range [0, %d)", name, def.Column, def.Frames)
		}
		if def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("sprite %s: size must be positive, got %fx%f", name, def.Width, def.Height)
		}
		if def.FramesPerAdvance < 0 {
			return fmt.Errorf("sprite %s: framesPerAdvance cannot be negative, got %d", name, def.FramesPerAdvance)
		}
	}

	for _, cue := range RequiredCues {
		if _, ok := cfg.Assets.Sounds[cue]; !ok {
			return fmt.Errorf("assets.sounds: missing cue %q", cue)
		}
	}

	return nil
}
