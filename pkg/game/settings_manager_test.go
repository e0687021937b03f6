package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_duckhunt_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新的设置管理器从同一存储加载
	settings := NewSettingsManager(gdataManager).GetSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadPartial 旧文件缺少的字段保持默认值
func TestSettingsLoadPartial(t *testing.T) {
	gdataManager := openTestGdata(t, "test_duckhunt_settings_partial")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()
	if !settings.Fullscreen {
		t.Error("Fullscreen should be loaded from storage")
	}
	if !settings.SoundEnabled || settings.SoundVolume != 0.8 {
		t.Errorf("missing fields should keep defaults, got %+v", settings)
	}
}

// TestSettingsLoadCorrupt 数据损坏时回退到默认设置
func TestSettingsLoadCorrupt(t *testing.T) {
	gdataManager := openTestGdata(t, "test_duckhunt_settings_corrupt")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupt data should fall back to defaults, got %+v", sm.GetSettings())
	}
}

// TestClampVolume 测试音量范围限制
func TestClampVolume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"负数", -0.5, 0.0},
		{"零", 0.0, 0.0},
		{"中间值", 0.5, 0.5},
		{"上限", 1.0, 1.0},
		{"超出上限", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampVolume(tt.input); got != tt.want {
				t.Errorf("clampVolume(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(2)
	if sm.GetSettings().SoundVolume != 1.0 {
		t.Errorf("SoundVolume: got %v, want 1.0", sm.GetSettings().SoundVolume)
	}
	sm.SetSoundVolume(-1)
	if sm.GetSettings().SoundVolume != 0.0 {
		t.Errorf("SoundVolume: got %v, want 0.0", sm.GetSettings().SoundVolume)
	}
}
