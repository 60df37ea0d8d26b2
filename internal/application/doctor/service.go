// Package doctor runs environment diagnostics: configuration, API keys,
// the local Ollama daemon, network reachability and the desktop tools the
// actuators shell out to.
package doctor

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

// Service runs the checks. LookPath and HTTPClient are swappable for tests.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Network        ports.NetworkMonitor

	LookPath   func(string) (string, error)
	HTTPClient *http.Client
	Getenv     func(string) string
}

func NewService(cfg ports.ConfigProvider, network ports.NetworkMonitor) *Service {
	return &Service{
		ConfigProvider: cfg,
		Network:        network,
		LookPath:       exec.LookPath,
		HTTPClient:     &http.Client{Timeout: 3 * time.Second},
		Getenv:         os.Getenv,
	}
}

// Run executes all checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.apiKeyCheck(cfg))
	checks = append(checks, s.ollamaCheck(cfg))
	checks = append(checks, s.networkCheck(ctx))
	checks = append(checks, s.binaryChecks(cfg)...)

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) apiKeyCheck(cfg domain.Config) domain.HealthCheck {
	var missing []string
	if s.keyMissing(cfg.Providers.Gemini.KeyEnvVar, "GEMINI_API_KEY") {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if s.keyMissing(cfg.Providers.Grok.KeyEnvVar, "GROK_API_KEY") {
		missing = append(missing, "GROK_API_KEY")
	}
	if len(missing) == 0 {
		return ok("API keys", "online backends configured")
	}
	if len(missing) == 2 {
		return warn("API keys", "no online backend keys set, only Ollama will answer")
	}
	return warn("API keys", strings.Join(missing, ", ")+" missing")
}

// ollamaCheck probes the daemon's root endpoint, which answers even with
// no model pulled.
func (s *Service) ollamaCheck(cfg domain.Config) domain.HealthCheck {
	endpoint := cfg.Providers.Ollama.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:11434/api/generate"
	}
	base := strings.TrimSuffix(endpoint, "/api/generate")

	resp, err := s.HTTPClient.Get(base)
	if err != nil {
		return warn("Ollama", "not reachable, start it with: ollama serve")
	}
	resp.Body.Close()
	return ok("Ollama", fmt.Sprintf("reachable at %s (model %s)", base, cfg.Providers.Ollama.Model))
}

func (s *Service) networkCheck(ctx context.Context) domain.HealthCheck {
	if s.Network == nil {
		return warn("Network", "monitor not initialized")
	}
	status := s.Network.Status(ctx)
	if !status.Online {
		return warn("Network", "offline, only Ollama will answer")
	}
	return ok("Network", status.String())
}

func (s *Service) binaryChecks(cfg domain.Config) []domain.HealthCheck {
	browser := cfg.System.Browser
	if browser == "" {
		browser = "firefox"
	}

	required := []struct {
		name   string
		binary string
		detail string
	}{
		{"Browser", browser, "web commands will fail"},
		{"xdotool", "xdotool", "window and typing automation will fail"},
		{"pactl", "pactl", "volume control will fail"},
	}

	var checks []domain.HealthCheck
	for _, req := range required {
		if _, err := s.LookPath(req.binary); err != nil {
			checks = append(checks, warn(req.name, req.binary+" not on PATH, "+req.detail))
			continue
		}
		checks = append(checks, ok(req.name, req.binary))
	}
	return checks
}

func (s *Service) keyMissing(primary, fallback string) bool {
	if primary != "" && s.Getenv(primary) != "" {
		return false
	}
	return fallback == "" || s.Getenv(fallback) == ""
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
