package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/decker502/duckhunt/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for loading and caching the sprite sheet and
// the sound cues. Resources are read from an fs.FS so that the desktop build
// can use os.DirFS while the mobile build uses an embedded filesystem.
//
// The game loop assumes every resource is ready before the first tick:
// Preload must succeed before a HuntScene is created. Requests made before
// that return ErrAssetNotReady.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the main
// goroutine before the game loop starts.
type ResourceManager struct {
	fsys         fs.FS
	audioContext *audio.Context

	imageCache map[string]*ebiten.Image // path -> image
	soundCache map[string]*audio.Player // sound ID -> player

	sheet *ebiten.Image
	ready bool
}

// NewResourceManager creates a ResourceManager reading from fsys.
//
// Parameters:
//   - audioContext: The global audio context used for decoding sounds. May be
//     nil when the caller never loads sounds (e.g. headless tools).
//   - fsys: The filesystem holding the asset files.
func NewResourceManager(audioContext *audio.Context, fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		soundCache:   make(map[string]*audio.Player),
	}
}

// LoadImage loads an image file and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	data, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// LoadSoundEffect loads a one-shot sound effect and caches its player under
// soundID. Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadSoundEffect(soundID, p string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.soundCache[soundID]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("cannot load sound %s: no audio context", soundID)
	}

	// 整个文件读入内存，播放器可以随意 Seek
	audioData, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", p, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		stream = decodedStream
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.soundCache[soundID] = player
	return player, nil
}

// Preload loads the sprite sheet and every configured sound cue.
// The manager becomes Ready only when all of them loaded.
func (rm *ResourceManager) Preload(assets config.AssetsConfig) error {
	sheet, err := rm.LoadImage(assets.Sheet)
	if err != nil {
		return fmt.Errorf("sprite sheet: %w", err)
	}

	for _, soundID := range config.RequiredCues {
		p, ok := assets.Sounds[soundID]
		if !ok {
			return fmt.Errorf("sound %s: no path configured", soundID)
		}
		if _, err := rm.LoadSoundEffect(soundID, p); err != nil {
			return fmt.Errorf("sound %s: %w", soundID, err)
		}
	}

	rm.sheet = sheet
	rm.ready = true
	log.Printf("[ResourceManager] Preloaded sprite sheet %s and %d sounds", assets.Sheet, len(rm.soundCache))
	return nil
}

// Ready reports whether Preload completed successfully.
func (rm *ResourceManager) Ready() bool {
	return rm.ready
}

// SpriteSheet returns the preloaded sprite sheet.
func (rm *ResourceManager) SpriteSheet() (*ebiten.Image, error) {
	if !rm.ready {
		return nil, fmt.Errorf("sprite sheet: %w", ErrAssetNotReady)
	}
	return rm.sheet, nil
}

// GetAudioPlayer returns the cached player for soundID, or nil.
func (rm *ResourceManager) GetAudioPlayer(soundID string) *audio.Player {
	return rm.soundCache[soundID]
}
