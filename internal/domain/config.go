// Package domain defines core business entities and value objects for IRIS.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures shared by the router, planner,
// AI selector and network monitor.
package domain

// Config mirrors ~/.iris/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Assistant           AssistantSettings `yaml:"assistant"`
	Providers           ProviderSettings  `yaml:"providers"`
	Network             NetworkSettings   `yaml:"network"`
	Planner             PlannerSettings   `yaml:"planner"`
	System              SystemSettings    `yaml:"system"`
	Weather             WeatherSettings   `yaml:"weather"`
	History             HistorySettings   `yaml:"history"`
}

// AssistantSettings captures persona level toggles.
type AssistantSettings struct {
	Name                 string   `yaml:"name"`
	WakeWords            []string `yaml:"wake_words"`
	ConversationLimit    int      `yaml:"conversation_limit"`
	OfflineMode          bool     `yaml:"offline_mode"`
	DefaultManualBackend string   `yaml:"default_manual_backend"`
}

// ProviderSettings groups the three interchangeable AI backends.
type ProviderSettings struct {
	Gemini GeminiSettings `yaml:"gemini"`
	Grok   GrokSettings   `yaml:"grok"`
	Ollama OllamaSettings `yaml:"ollama"`
}

// GeminiSettings configures the Gemini REST endpoint. The API key is read
// from the environment variable named in KeyEnvVar, never stored in the file.
type GeminiSettings struct {
	Endpoint  string `yaml:"endpoint"`
	KeyEnvVar string `yaml:"key_env_var"`
}

// GrokSettings configures the Grok (OpenAI-compatible) endpoint.
type GrokSettings struct {
	Endpoint  string `yaml:"endpoint"`
	KeyEnvVar string `yaml:"key_env_var"`
	Model     string `yaml:"model"`
}

// OllamaSettings configures the local Ollama server.
type OllamaSettings struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// NetworkSettings configures connectivity probing.
type NetworkSettings struct {
	ProbeHosts      []string `yaml:"probe_hosts"`
	HTTPEndpoints   []string `yaml:"http_endpoints"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
}

// PlannerSettings bounds multi-step plan execution.
type PlannerSettings struct {
	MaxSteps    int `yaml:"max_steps"`
	StepDelayMS int `yaml:"step_delay_ms"`
}

// SystemSettings controls which local binaries actuators invoke.
type SystemSettings struct {
	Browser       string `yaml:"browser"`
	VolumeCommand string `yaml:"volume_command"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// WeatherSettings configures the OpenWeatherMap client.
type WeatherSettings struct {
	Endpoint    string `yaml:"endpoint"`
	KeyEnvVar   string `yaml:"key_env_var"`
	DefaultCity string `yaml:"default_city"`
}

// HistorySettings controls the transcript store.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}
