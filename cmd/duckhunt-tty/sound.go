package main

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/duckhunt/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// note 合成音效中的一个音，freq 为 0 表示静音
type note struct {
	freq     float64
	duration time.Duration
}

// 各音效的合成音序列
var cueNotes = map[string][]note{
	config.CueShoot:   {{180, 120 * time.Millisecond}},
	config.CueDog:     {{520, 120 * time.Millisecond}, {0, 50 * time.Millisecond}, {520, 120 * time.Millisecond}, {0, 50 * time.Millisecond}, {620, 200 * time.Millisecond}},
	config.CueLaugh:   {{300, 100 * time.Millisecond}, {260, 100 * time.Millisecond}, {300, 100 * time.Millisecond}, {240, 200 * time.Millisecond}},
	config.CueGotDuck: {{660, 100 * time.Millisecond}, {880, 200 * time.Millisecond}},
	config.CuePerfect: {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 120 * time.Millisecond}, {1046, 300 * time.Millisecond}},
}

// beepCues 用 beep 合成音效，实现 game.CueSink
type beepCues struct {
	mixer   *beep.Mixer
	enabled bool
	ready   bool
}

func newBeepCues() *beepCues {
	return &beepCues{mixer: &beep.Mixer{}, enabled: true}
}

// init 打开扬声器，失败时静默运行
func (c *beepCues) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

func (c *beepCues) close() {
	if c.ready {
		speaker.Clear()
		speaker.Close()
		c.ready = false
	}
}

// toggle 切换音效开关，返回新状态
func (c *beepCues) toggle() bool {
	c.enabled = !c.enabled
	return c.enabled
}

// PlaySound 播放音效，不阻塞
func (c *beepCues) PlaySound(soundID string) bool {
	if !c.enabled {
		return false
	}
	streamer, err := cueStreamer(soundID)
	if err != nil {
		log.Printf("[Sound] %v", err)
		return false
	}
	if !c.ready {
		return false
	}
	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// cueStreamer 按音序合成音效
func cueStreamer(soundID string) (beep.Streamer, error) {
	notes, ok := cueNotes[soundID]
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", soundID)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sampleRate.N(n.duration)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sound %q: %w", soundID, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.7}, nil
}
