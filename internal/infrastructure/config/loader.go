// Package config loads the YAML configuration file, writing a commented
// default on first run.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/iris-go/assets"
	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/pkg/filesystem"
	"github.com/doeshing/iris-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.iris/config.yaml
// (overridable via IRIS_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. path overrides the default location
// when non-empty.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path reports where the configuration is read from.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("IRIS_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".iris", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

// hydrateDefaults fills gaps so the rest of the program never checks for
// zero values it cannot handle.
func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Assistant.Name == "" {
		cfg.Assistant.Name = "I.R.I.S"
	}
	if len(cfg.Assistant.WakeWords) == 0 {
		cfg.Assistant.WakeWords = []string{"iris", "hey iris"}
	}
	if cfg.Assistant.ConversationLimit <= 0 {
		cfg.Assistant.ConversationLimit = domain.DefaultConversationLimit
	}
	if cfg.Providers.Gemini.KeyEnvVar == "" {
		cfg.Providers.Gemini.KeyEnvVar = "GEMINI_API_KEY"
	}
	if cfg.Providers.Grok.Endpoint == "" {
		cfg.Providers.Grok.Endpoint = "https://api.x.ai/v1/chat/completions"
	}
	if cfg.Providers.Grok.KeyEnvVar == "" {
		cfg.Providers.Grok.KeyEnvVar = "GROK_API_KEY"
	}
	if cfg.Providers.Grok.Model == "" {
		cfg.Providers.Grok.Model = "grok-beta"
	}
	if cfg.Providers.Ollama.Endpoint == "" {
		cfg.Providers.Ollama.Endpoint = "http://localhost:11434/api/generate"
	}
	if cfg.Providers.Ollama.Model == "" {
		cfg.Providers.Ollama.Model = "llama2"
	}
	if len(cfg.Network.ProbeHosts) == 0 {
		cfg.Network.ProbeHosts = []string{"8.8.8.8", "1.1.1.1"}
	}
	if len(cfg.Network.HTTPEndpoints) == 0 {
		cfg.Network.HTTPEndpoints = []string{"https://www.google.com", "https://www.cloudflare.com"}
	}
	if cfg.Network.CacheTTLSeconds <= 0 {
		cfg.Network.CacheTTLSeconds = int(domain.DefaultNetworkCacheTTL.Seconds())
	}
	if cfg.Planner.MaxSteps <= 0 {
		cfg.Planner.MaxSteps = domain.DefaultMaxPlanSteps
	}
	if cfg.Planner.StepDelayMS <= 0 {
		cfg.Planner.StepDelayMS = int(domain.DefaultStepDelay.Milliseconds())
	}
	if cfg.System.Browser == "" {
		cfg.System.Browser = "firefox"
	}
	if cfg.System.VolumeCommand == "" {
		cfg.System.VolumeCommand = "pactl"
	}
	if cfg.System.ScreenshotDir == "" {
		cfg.System.ScreenshotDir = filepath.Join(filesystem.UserHomeDir(), "Pictures")
	}
	if cfg.Weather.KeyEnvVar == "" {
		cfg.Weather.KeyEnvVar = "OPENWEATHER_API_KEY"
	}
	if cfg.Weather.DefaultCity == "" {
		cfg.Weather.DefaultCity = "London"
	}
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(filesystem.UserHomeDir(), ".iris", "history", "transcript.db")
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
