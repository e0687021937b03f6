package game

import (
	"testing"
	"testing/fstest"

	"github.com/decker502/duckhunt/pkg/config"
)

// newTestAudioManager 创建已预加载全部音效的 AudioManager
func newTestAudioManager(t *testing.T, sm *SettingsManager) *AudioManager {
	t.Helper()
	rm := NewResourceManager(testAudioContext, testAssetsFS(t))
	if err := rm.Preload(config.DefaultGameConfig().Assets); err != nil {
		t.Fatalf("Preload failed: %v", err)
	}
	return NewAudioManager(rm, sm)
}

// TestAudioManagerPlaySound 已加载的音效可以播放，未知音效返回 false
func TestAudioManagerPlaySound(t *testing.T) {
	am := newTestAudioManager(t, NewSettingsManager(nil))

	for _, cue := range config.RequiredCues {
		if !am.PlaySound(cue) {
			t.Errorf("PlaySound(%s) = false, want true", cue)
		}
	}
	if am.PlaySound("quack") {
		t.Error("PlaySound of unknown cue should return false")
	}
}

// TestAudioManagerSoundDisabled 音效关闭时不播放
func TestAudioManagerSoundDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := newTestAudioManager(t, sm)

	if am.ToggleSound() {
		t.Fatal("ToggleSound should disable sound")
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("settings should record the disabled state")
	}
	if am.PlaySound(config.CueShoot) {
		t.Error("PlaySound should return false while sound is disabled")
	}
	if !am.ToggleSound() {
		t.Error("second ToggleSound should enable sound")
	}
	if !am.PlaySound(config.CueShoot) {
		t.Error("PlaySound should work after re-enabling")
	}
}

// TestAudioManagerVolume 音量读写经过 SettingsManager
func TestAudioManagerVolume(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil, fstest.MapFS{}), nil)
	if am.GetSoundVolume() != defaultSoundVolume {
		t.Errorf("volume without settings = %v, want %v", am.GetSoundVolume(), defaultSoundVolume)
	}

	sm := NewSettingsManager(nil)
	am = NewAudioManager(NewResourceManager(nil, fstest.MapFS{}), sm)
	am.SetSoundVolume(0.3)
	if am.GetSoundVolume() != 0.3 {
		t.Errorf("volume = %v, want 0.3", am.GetSoundVolume())
	}
	if am.PlaySound(config.CueShoot) {
		t.Error("PlaySound without loaded sounds should return false")
	}
}

// TestAudioManagerIsCueSink AudioManager 可以直接作为 CueSink 使用
func TestAudioManagerIsCueSink(t *testing.T) {
	var _ CueSink = NewAudioManager(nil, nil)
}
