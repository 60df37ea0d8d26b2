package domain

// Provider names one of the three interchangeable AI backends.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderGrok   Provider = "grok"
	ProviderOllama Provider = "ollama"
	// ProviderAuto is a valid manual selection meaning "defer to network
	// detection"; it is never the result of mode resolution.
	ProviderAuto Provider = "auto"
)

// KnownProvider reports whether p names a concrete backend.
func KnownProvider(p Provider) bool {
	return p == ProviderGemini || p == ProviderGrok || p == ProviderOllama
}

// AIMode is the selector's provider-selection state. It is owned exclusively
// by the backend selector and mutated only by SetManualMode and by the
// round-robin advance after each online call.
type AIMode struct {
	ManualEnabled   bool
	ManualSelection Provider
	// OnlineProvider is the round-robin pointer: the online backend to use
	// for the next auto-mode call. Only ever gemini or grok.
	OnlineProvider Provider
}

// Resolve returns the provider a call should use given a network snapshot.
// Manual mode always overrides auto-detection; otherwise a fast online
// network selects the round-robin pointer and anything else falls back to
// the local model.
func (m AIMode) Resolve(status NetworkStatus) Provider {
	if m.ManualEnabled && m.ManualSelection != ProviderAuto {
		return m.ManualSelection
	}
	if status.Online && status.Fast {
		return m.OnlineProvider
	}
	return ProviderOllama
}
