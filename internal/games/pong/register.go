package pong

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-pong/internal/config"
	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/logging"
	"github.com/vovakirdan/lcd-pong/internal/registry"
)

var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset = config.DifficultyNormal
	gameLogger       = logging.Discard()
	observer         Observer
)

// SetConfigPath sets a custom config file path for games built by the registry.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for games built by the registry.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetLogger sets the logger handed to games built by the registry.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = logging.Discard()
	}
	gameLogger = l
}

// SetObserver installs an event observer for games built by the registry.
func SetObserver(o Observer) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	observer = o
}

// LoadConfig resolves the configuration the registry factories use, with
// the difficulty preset applied.
func LoadConfig() (config.PongConfig, string, error) {
	settingsMu.RLock()
	path, preset := configPath, difficultyPreset
	settingsMu.RUnlock()

	cfg, source, err := config.ResolvePong(path)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, source, nil
}

func factory(id, title string, cpu bool) registry.Factory {
	return func(rc core.RuntimeConfig, dev core.Devices) (registry.Game, error) {
		cfg, source, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		if rc.ScreenW > 0 && rc.ScreenH > 0 {
			cfg.Screen.Width, cfg.Screen.Height = rc.ScreenW, rc.ScreenH
		}

		settingsMu.RLock()
		logger, obs := gameLogger, observer
		settingsMu.RUnlock()

		logger.Debug("config resolved", "game", id, "source", source)
		return New(cfg, rc, dev, Options{
			ID:       id,
			Title:    title,
			CPU:      cpu,
			Logger:   logger.With("game", id),
			Observer: obs,
		})
	}
}

func init() {
	registry.Register("pong", "Pong", factory("pong", "Pong", false))
	registry.Register("pong-cpu", "Pong vs CPU", factory("pong-cpu", "Pong vs CPU", true))
}
