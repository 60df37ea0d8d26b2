package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/iris-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateAssistant(cfg.Assistant); err != nil {
		return err
	}
	if err := validateProviders(cfg.Providers); err != nil {
		return err
	}
	if err := validateNetwork(cfg.Network); err != nil {
		return err
	}
	if err := validatePlanner(cfg.Planner); err != nil {
		return err
	}
	if err := validateSystem(cfg.System); err != nil {
		return err
	}
	return nil
}

func validateAssistant(assistant domain.AssistantSettings) error {
	if assistant.ConversationLimit <= 0 {
		return fmt.Errorf("assistant.conversation_limit must be > 0")
	}
	switch strings.ToLower(assistant.DefaultManualBackend) {
	case "", "gemini", "grok", "ollama":
	default:
		return fmt.Errorf("assistant.default_manual_backend must be gemini|grok|ollama, got %s", assistant.DefaultManualBackend)
	}
	return nil
}

func validateProviders(providers domain.ProviderSettings) error {
	if err := validateEndpoint("providers.grok.endpoint", providers.Grok.Endpoint); err != nil {
		return err
	}
	if err := validateEndpoint("providers.ollama.endpoint", providers.Ollama.Endpoint); err != nil {
		return err
	}
	if providers.Ollama.Model == "" {
		return fmt.Errorf("providers.ollama.model must be set")
	}
	return nil
}

func validateNetwork(network domain.NetworkSettings) error {
	if len(network.ProbeHosts) == 0 && len(network.HTTPEndpoints) == 0 {
		return fmt.Errorf("network needs at least one probe_hosts or http_endpoints entry")
	}
	if network.CacheTTLSeconds <= 0 {
		return fmt.Errorf("network.cache_ttl_seconds must be > 0")
	}
	return nil
}

func validatePlanner(planner domain.PlannerSettings) error {
	if planner.MaxSteps <= 0 {
		return fmt.Errorf("planner.max_steps must be > 0")
	}
	if planner.StepDelayMS < 0 {
		return fmt.Errorf("planner.step_delay_ms must be >= 0")
	}
	return nil
}

func validateSystem(system domain.SystemSettings) error {
	switch system.VolumeCommand {
	case "", "pactl", "amixer":
	default:
		return fmt.Errorf("system.volume_command must be pactl or amixer, got %s", system.VolumeCommand)
	}
	return nil
}

func validateEndpoint(field, raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%s is not a valid URL: %s", field, raw)
	}
	return nil
}
