// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces allow the decision core (router,
// planner, backend selector, network monitor) to remain independent of
// the actuators, HTTP clients and storage that back them.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., AIProcessor, SystemActuator)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/iris-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.iris/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRouter classifies a normalized utterance and invokes the matching
// handler. Every input resolves to some response string; unmatched input is
// forwarded to the AI backend, never rejected.
type CommandRouter interface {
	Route(ctx context.Context, utterance string) string
	Classify(utterance string) domain.Category
}

// Planner decomposes and executes multi-step requests.
type Planner interface {
	IsComplex(utterance string) bool
	Execute(ctx context.Context, utterance string) string
}

// AIProcessor answers open-ended queries by routing to one of several
// interchangeable backends with automatic failover.
type AIProcessor interface {
	ProcessQuery(ctx context.Context, query string) string
	SetManualMode(manual bool, backend domain.Provider)
	Mode() domain.AIMode
	CurrentBackend(ctx context.Context) domain.Provider
	AddToHistory(message string)
	History() []string
	ClearHistory()
}

// NetworkMonitor probes connectivity and responsiveness, caching results.
type NetworkMonitor interface {
	IsOnline(ctx context.Context) bool
	IsFastNetwork(ctx context.Context) bool
	Status(ctx context.Context) domain.NetworkStatus
	Refresh()
}

// SystemActuator performs OS-level actions. Implementations return a
// human-readable status string and never let a failure escape as a panic.
type SystemActuator interface {
	OpenApplication(name string) string
	SetVolume(direction string) string
	PowerCommand(action string) string
	TakeScreenshot(path string) string
	MinimizeWindow() string
	MaximizeWindow() string
	CloseWindow() string
}

// AutomationActuator drives the active window via UI automation.
type AutomationActuator interface {
	NavigateToURL(url string) string
	TypeText(text string) string
	PressKey(key string) string
	ExecuteInTerminal(command string) string
	SearchInBrowser(query string) string
}

// WebActuator opens web destinations in the configured browser.
type WebActuator interface {
	SearchGoogle(query string) string
	PlayYouTube(query string) string
	SearchWikipedia(query string) string
}

// WeatherService reports current conditions.
type WeatherService interface {
	CurrentWeather(ctx context.Context) string
	Weather(ctx context.Context, city string) string
}

// SecurityToolkit wraps the external security tools. Opaque to the core
// beyond "string in, string out".
type SecurityToolkit interface {
	NmapScan(target, mode string) string
	GeneratePayload(platform, kind, lhost, lport string) string
	CrackPassword(hashFile, wordlist string) string
	CaptureAndAnalyze(iface string, durationSeconds int) string
	NetworkReport(iface string) string
	DirBuster(url string) string
	SQLMap(url string) string
	Hydra(target, service, wordlist string) string
}

// FileInspector analyzes local files and checks link safety.
type FileInspector interface {
	AnalyzeFile(path string) string
	CheckLink(url string) string
}

// TranscriptRepository persists assistant exchanges.
type TranscriptRepository interface {
	Save(record domain.TranscriptRecord) error
	Records(limit int, search string) ([]domain.TranscriptRecord, error)
	Clear() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
