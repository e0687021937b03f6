// Package main 提供无窗口的回合流程验证工具
//
// 使用可控时钟和记录型绘制表面逐 tick 驱动一局游戏，
// 由脚本化的射手开枪，打印每次状态切换和统计信息。
//
// Usage:
//
//	go run ./cmd/verify_round [flags]
//
// Flags:
//
//	--rounds <n>       运行的回合数 (default: 5)
//	--seed <n>         随机数种子 (default: 1)
//	--accuracy <p>     射手命中率 0..1 (default: 0.7)
//	--interval <n>     两次射击之间的 tick 数 (default: 4)
//	--config <path>    使用外部 YAML 配置
//	--verbose          输出游戏内部日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/game"
	"github.com/decker502/duckhunt/pkg/scenes"
)

var (
	roundsFlag   = flag.Int("rounds", 5, "Number of rounds to play")
	seedFlag     = flag.Int64("seed", 1, "Random seed")
	accuracyFlag = flag.Float64("accuracy", 0.7, "Probability that the scripted shooter aims at a duck")
	intervalFlag = flag.Int("interval", 4, "Ticks between shots")
	configFlag   = flag.String("config", "", "Game config YAML file (default: built-in)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

// maxTicksPerRound 防止配置错误导致死循环
const maxTicksPerRound = 10000

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
			os.Exit(1)
		}
		cfg, err = config.ParseGameConfig(data, *configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "verify_round: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.GameConfig) error {
	clock := game.NewMockTimeProvider(time.Unix(0, 0))
	state := game.NewGameState(cfg, clock, *seedFlag)
	surface := &game.RecordingSurface{}
	cues := &game.RecordingCueSink{}
	stats := &game.RecordingStatsSink{}

	scene, err := scenes.NewHuntScene(state, surface, "verify-sheet", cues, stats)
	if err != nil {
		return err
	}

	shooter := rand.New(rand.NewSource(*seedFlag + 1))
	interval := *intervalFlag
	if interval < 1 {
		interval = 1
	}

	fmt.Printf("Duck Hunt round verification: %d rounds, seed %d, accuracy %.2f\n",
		*roundsFlag, *seedFlag, *accuracyFlag)
	fmt.Println("tick  round  transition")

	lastState := scene.RoundState()
	roundStart := 0
	shots, aimedShots := 0, 0

	for scene.Round() <= *roundsFlag {
		scene.Tick()
		clock.Advance(cfg.TickInterval())
		tick := scene.TickCount()

		if st := scene.RoundState(); st != lastState {
			fmt.Printf("%4d  %5d  %s -> %s\n", tick, scene.Round(), lastState, st)
			if st == components.RoundResolution {
				report(scene)
			}
			if st == components.RoundIntroWalk {
				roundStart = tick
			}
			lastState = st
		}

		if tick-roundStart > maxTicksPerRound {
			return fmt.Errorf("round %d did not finish within %d ticks", scene.Round(), maxTicksPerRound)
		}

		if !scene.IsRoundActive() || tick%interval != 0 {
			continue
		}
		x, y, aimed := aim(scene, shooter)
		if scene.HandleClick(x, y) {
			shots++
			if aimed {
				aimedShots++
			}
		}
	}

	final := state.Score.Snapshot()
	fmt.Println()
	fmt.Printf("ticks:   %d\n", scene.TickCount())
	fmt.Printf("shots:   %d (%d aimed)\n", shots, aimedShots)
	fmt.Printf("kills:   %d\n", final.KillsTotal)
	fmt.Printf("level:   %d (duck speed %d)\n", final.Level, state.Score.DuckSpeed())
	fmt.Printf("cues:    shoot=%d dog=%d laugh=%d gotduck=%d perfect=%d\n",
		cues.Count(config.CueShoot), cues.Count(config.CueDog), cues.Count(config.CueLaugh),
		cues.Count(config.CueGotDuck), cues.Count(config.CuePerfect))
	return nil
}

// aim 选择射击坐标：按命中率瞄准第一只鸭子的中心，否则打向画面左上角之外
func aim(scene *scenes.HuntScene, shooter *rand.Rand) (float64, float64, bool) {
	ducks := scene.LiveDucks()
	if len(ducks) == 0 || shooter.Float64() >= *accuracyFlag {
		return -1, -1, false
	}
	box := ducks[0]
	return box.X + box.W/2, box.Y + box.H/2, true
}

// report 打印本回合结算
func report(scene *scenes.HuntScene) {
	score := scene.GameState().Score
	fmt.Printf("            kills this round: %d, shots left: %d, total: %d, level: %d\n",
		score.KillsThisRound(), score.ShotsRemaining(), score.TotalKills(), score.Level())
}
