package main

import (
	"testing"

	"github.com/decker502/duckhunt/pkg/config"
)

func TestCueStreamerLength(t *testing.T) {
	for _, cue := range config.RequiredCues {
		t.Run(cue, func(t *testing.T) {
			want := 0
			for _, n := range cueNotes[cue] {
				want += sampleRate.N(n.duration)
			}

			streamer, err := cueStreamer(cue)
			if err != nil {
				t.Fatalf("cueStreamer(%q): %v", cue, err)
			}

			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := streamer.Stream(buf)
				total += n
				if !ok {
					break
				}
			}
			if total != want {
				t.Errorf("streamed %d samples, want %d", total, want)
			}
		})
	}
}

func TestCueStreamerUnknown(t *testing.T) {
	if _, err := cueStreamer("quack"); err == nil {
		t.Error("expected error for unknown cue")
	}
}

func TestBeepCuesDisabled(t *testing.T) {
	cues := newBeepCues()
	if cues.toggle() {
		t.Fatal("toggle should disable sound")
	}
	if cues.PlaySound(config.CueShoot) {
		t.Error("PlaySound should return false when disabled")
	}
	if !cues.toggle() {
		t.Error("toggle should re-enable sound")
	}
	// 扬声器未初始化时不播放
	if cues.PlaySound(config.CueShoot) {
		t.Error("PlaySound should return false without speaker")
	}
}
