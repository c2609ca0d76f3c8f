// Package config loads and saves the application settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

const (
	envPrefix = "OTR"
	fileName  = "config"
	fileType  = "yaml"
)

// Config stores persistent application settings.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Editor  EditorConfig  `mapstructure:"editor"`
	Room    RoomConfig    `mapstructure:"room"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Window  SizeConfig    `mapstructure:"window"`
	Preview SizeConfig    `mapstructure:"preview"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type EditorConfig struct {
	GridSize     float64 `mapstructure:"grid_size"`
	Snap         bool    `mapstructure:"snap"`
	HistoryLimit int     `mapstructure:"history_limit"`
}

type RoomConfig struct {
	Width  float64 `mapstructure:"width"`
	Length float64 `mapstructure:"length"`
	Height float64 `mapstructure:"height"`
	Unit   string  `mapstructure:"unit"`
	Preset string  `mapstructure:"preset"`
}

// CatalogConfig selects the template source. File wins over DB; with
// neither set the built-in catalog is used.
type CatalogConfig struct {
	File string `mapstructure:"file"`
	DB   string `mapstructure:"db"`
}

type SizeConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("editor.grid_size", 20.0)
	v.SetDefault("editor.snap", true)
	v.SetDefault("editor.history_limit", 0)
	v.SetDefault("room.width", 4.0)
	v.SetDefault("room.length", 5.0)
	v.SetDefault("room.height", 2.8)
	v.SetDefault("room.unit", "meters")
	v.SetDefault("room.preset", "")
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.db", "")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("preview.width", 800)
	v.SetDefault("preview.height", 600)
}

// Dir returns the platform config directory, creating it if needed.
func Dir() (string, error) {
	var dir string
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\OpenTraceRoom
		dir = filepath.Join(appData, "OpenTraceRoom")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		// Linux/macOS: ~/.config/opentraceroom
		dir = filepath.Join(home, ".config", "opentraceroom")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath is the config file inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName+"."+fileType), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or the default location when path is empty. A missing
// file yields the defaults; OTR_* environment variables override both.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, fmt.Errorf("config dir: %w", err)
		}
		v.AddConfigPath(dir)
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to path, or to the default location when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	v := viper.New()
	v.Set("log.level", cfg.Log.Level)
	v.Set("editor.grid_size", cfg.Editor.GridSize)
	v.Set("editor.snap", cfg.Editor.Snap)
	v.Set("editor.history_limit", cfg.Editor.HistoryLimit)
	v.Set("room.width", cfg.Room.Width)
	v.Set("room.length", cfg.Room.Length)
	v.Set("room.height", cfg.Room.Height)
	v.Set("room.unit", cfg.Room.Unit)
	v.Set("room.preset", cfg.Room.Preset)
	v.Set("catalog.file", cfg.Catalog.File)
	v.Set("catalog.db", cfg.Catalog.DB)
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("preview.width", cfg.Preview.Width)
	v.Set("preview.height", cfg.Preview.Height)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// SceneRoom builds the initial room from the room section.
func (c *Config) SceneRoom() (scene.Room, error) {
	r := scene.DefaultRoom()
	u, err := scene.ParseUnit(c.Room.Unit)
	if err != nil {
		return r, err
	}
	r.Unit = u
	r.SetDimensions(c.Room.Width, c.Room.Length, c.Room.Height)
	if c.Room.Preset != "" {
		p, ok := scene.LookupPreset(c.Room.Preset)
		if !ok {
			return r, fmt.Errorf("unknown room preset %q", c.Room.Preset)
		}
		r.ApplyPreset(p)
	}
	return r, nil
}
