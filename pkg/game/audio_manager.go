package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// defaultSoundVolume 没有 SettingsManager 时使用的音效音量
const defaultSoundVolume = 0.8

// AudioManager 音效管理器
// 职责：
//   - 按音效 ID 播放预加载的音效（发出即忘）
//   - 从 SettingsManager 读取音效开关和音量
//
// AudioManager 实现 CueSink，HuntScene 通过它发出音效请求。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（提供已解码的播放器）
	settingsManager *SettingsManager         // 设置管理器（可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - rm: ResourceManager 实例（音效需已通过 Preload 加载）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 从头播放音效
// 同一音效重复触发时，正在播放的实例会被重置
//
// 返回：
//   - bool: 是否成功播放（音效关闭或未加载时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.SoundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SoundEnabled 返回音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

// ToggleSound 切换音效开关并持久化，返回切换后的状态
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return true
	}

	enabled := !am.settingsManager.GetSettings().SoundEnabled
	am.settingsManager.SetSoundEnabled(enabled)
	if !enabled {
		for _, player := range am.soundPlayers {
			player.Pause()
		}
	}
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}

	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetSoundVolume 设置音效音量，影响后续播放
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	volume = clampVolume(volume)
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return defaultSoundVolume
}

// getSoundPlayer 从缓存或 ResourceManager 获取播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	if am.resourceManager != nil {
		if player := am.resourceManager.GetAudioPlayer(soundID); player != nil {
			am.soundPlayers[soundID] = player
			return player
		}
	}

	log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
	return nil
}
