// Package main 终端版打鸭子
//
// 游戏画面按比例缩放到终端字符格，鼠标左键射击，音效由 beep 合成。
//
// Usage:
//
//	go run ./cmd/duckhunt-tty [flags]
//
// Flags:
//
//	--seed <n>         随机数种子 (default: 当前时间)
//	--config <path>    使用外部 YAML 配置
//	--mute             不播放音效
//	--log <path>       日志输出文件（终端被游戏占用）
//
// Controls:
//
//	鼠标左键  射击
//	M         切换音效
//	R         重新开始
//	Q/Esc     退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
	"unicode"

	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/game"
	"github.com/decker502/duckhunt/pkg/scenes"
	"github.com/gdamore/tcell/v2"
)

var (
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	configFlag = flag.String("config", "", "Game config YAML file (default: built-in)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	logFlag    = flag.String("log", "", "Write logs to this file")
)

// statsLine 保存最近一次统计快照，实现 game.StatsSink
type statsLine struct {
	stats game.Stats
}

func (s *statsLine) UpdateStats(stats game.Stats) {
	s.stats = stats
}

func (s *statsLine) text(soundOn bool) string {
	sound := "on"
	if !soundOn {
		sound = "off"
	}
	return fmt.Sprintf(" Ducks: %d  Level: %d  Shots: %d  Sound: %s  [M]ute [R]estart [Q]uit",
		s.stats.KillsTotal, s.stats.Level, s.stats.ShotsRemaining, sound)
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
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
		fmt.Fprintf(os.Stderr, "duckhunt-tty: %v\n", err)
		os.Exit(1)
	}
}

// command 键盘命令
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdToggleSound
	cmdRestart
)

// keyCommand 把按键映射为命令，字母键不区分大小写
func keyCommand(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
	default:
		return cmdNone
	}

	switch unicode.ToLower(r) {
	case 'q':
		return cmdQuit
	case 'm':
		return cmdToggleSound
	case 'r':
		return cmdRestart
	}
	return cmdNone
}

func run(cfg *config.GameConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cues := newBeepCues()
	if *muteFlag {
		cues.enabled = false
	} else if err := cues.init(); err != nil {
		// 没有声卡也可以玩
		log.Printf("[Sound] speaker init failed: %v", err)
	}
	defer cues.close()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	surface, err := newTermSurface(screen, cfg)
	if err != nil {
		return err
	}
	status := &statsLine{}
	restarts := int64(0)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		state := game.NewGameState(cfg, game.NewTimeProvider(), seed+restarts)
		restarts++
		return scenes.NewHuntScene(state, surface, "tty-sheet", cues, status)
	})
	if !sceneManager.Restart() {
		return fmt.Errorf("failed to create hunt scene")
	}

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var lastButtons tcell.ButtonMask
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyCommand(ev.Key(), ev.Rune()) {
				case cmdQuit:
					return nil
				case cmdToggleSound:
					log.Printf("[Sound] enabled: %v", cues.toggle())
				case cmdRestart:
					sceneManager.Restart()
				}
			case *tcell.EventMouse:
				buttons := ev.Buttons()
				pressed := buttons&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0
				lastButtons = buttons
				if !pressed {
					continue
				}
				col, row := ev.Position()
				if surface.inPlayfield(col, row) {
					x, y := surface.toGame(col, row)
					sceneManager.HandleClick(x, y)
				}
			case *tcell.EventResize:
				screen.Sync()
				surface.resize()
			}

		case <-ticker.C:
			sceneManager.Tick()
			surface.drawStatus(status.text(cues.enabled))
			screen.Show()
		}
	}
}
