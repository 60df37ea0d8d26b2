// Package ai implements the backend selector: it chooses and calls one of
// several interchangeable AI providers, with manual override, round-robin
// alternation between the online backends, and a Grok-to-Gemini fallback
// chain. Provider errors never escape as raw errors; every failure maps to
// a user-facing guidance string.
package ai

import (
	"context"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

// Persona prefixes injected ahead of every query.
const (
	ollamaPersona = "You are I.R.I.S (Intelligent Responsive Integrated System), an AI assistant. " +
		"Respond in a helpful, intelligent, and slightly witty manner. Keep responses concise. " +
		"User query: "
	onlinePersona = "You are I.R.I.S (Intelligent Responsive Integrated System), " +
		"an advanced AI assistant for penetration testing and security analysis. " +
		"Respond in a helpful, intelligent, and professional manner. " +
		"User query: "
	grokSystemPrompt = "You are I.R.I.S (Intelligent Responsive Integrated System), " +
		"an advanced AI assistant for penetration testing and security analysis. " +
		"Respond in a helpful, intelligent, and professional manner."
)

// fallbackReply is returned whenever a provider response parses but lacks
// the expected fields.
const fallbackReply = "I couldn't generate a proper response."

// Selector owns the AI mode state. All mutation happens behind mu: mode
// resolution takes an immutable snapshot per call so concurrent queries
// cannot interleave pointer mutations unpredictably.
type Selector struct {
	cfg     domain.Config
	netmon  ports.NetworkMonitor
	log     ports.Logger
	getenv  func(string) string

	onlineClient *http.Client
	ollamaClient *http.Client

	mu      sync.Mutex
	mode    domain.AIMode
	history []string
}

// NewSelector builds a Selector. The default mode is auto with the Gemini
// round-robin pointer, unless the config names a default manual backend.
func NewSelector(cfg domain.Config, netmon ports.NetworkMonitor, log ports.Logger) *Selector {
	s := &Selector{
		cfg:    cfg,
		netmon: netmon,
		log:    log,
		getenv: os.Getenv,
		onlineClient: newHTTPClient(domain.ConnectTimeout, domain.ReadTimeoutOnline),
		ollamaClient: newHTTPClient(domain.ConnectTimeout, domain.ReadTimeoutOllama),
		mode: domain.AIMode{
			OnlineProvider: domain.ProviderGemini,
		},
	}
	if backend := domain.Provider(cfg.Assistant.DefaultManualBackend); domain.KnownProvider(backend) {
		s.SetManualMode(true, backend)
	}
	if cfg.Assistant.OfflineMode {
		s.SetManualMode(true, domain.ProviderOllama)
	}
	return s
}

// newHTTPClient separates connection establishment from the overall request
// deadline, mirroring the connect/read timeout split of the providers.
func newHTTPClient(connect, read time.Duration) *http.Client {
	return &http.Client{
		Timeout: read,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: connect}).DialContext,
			TLSHandshakeTimeout: connect,
		},
	}
}

// ProcessQuery resolves the backend for this call and dispatches to it.
// The returned string is always safe to show the user.
func (s *Selector) ProcessQuery(ctx context.Context, query string) string {
	backend := s.resolveAndAdvance(ctx)

	s.AddToHistory(query)

	switch backend {
	case domain.ProviderOllama:
		return s.queryOllama(ctx, query)
	case domain.ProviderGrok:
		return s.queryGrok(ctx, query)
	default:
		return s.queryGemini(ctx, query)
	}
}

// resolveAndAdvance snapshots the mode, picks the backend for this call and
// advances the round-robin pointer when an online backend was chosen in auto
// mode. After a Gemini call the pointer flips to Grok only if a Grok key is
// configured; after a Grok call it always flips back to Gemini.
func (s *Selector) resolveAndAdvance(ctx context.Context) domain.Provider {
	status := s.networkSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	backend := s.mode.Resolve(status)
	if !s.mode.ManualEnabled {
		switch backend {
		case domain.ProviderGemini:
			if s.grokKey() != "" {
				s.mode.OnlineProvider = domain.ProviderGrok
			}
		case domain.ProviderGrok:
			s.mode.OnlineProvider = domain.ProviderGemini
		}
	}
	return backend
}

func (s *Selector) networkSnapshot(ctx context.Context) domain.NetworkStatus {
	if s.netmon == nil {
		return domain.NetworkStatus{}
	}
	online := s.netmon.IsOnline(ctx)
	fast := false
	if online {
		fast = s.netmon.IsFastNetwork(ctx)
	}
	return domain.NetworkStatus{Online: online, Fast: fast}
}

// SetManualMode toggles the manual override. A manual selection always wins
// over network auto-detection.
func (s *Selector) SetManualMode(manual bool, backend domain.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode.ManualEnabled = manual
	if manual && domain.KnownProvider(backend) {
		s.mode.ManualSelection = backend
		if s.log != nil {
			s.log.Info("AI mode set to manual", map[string]interface{}{"backend": string(backend)})
		}
		return
	}
	if !manual {
		s.mode.ManualSelection = domain.ProviderAuto
		if s.log != nil {
			s.log.Info("AI mode set to auto", nil)
		}
	}
}

// Mode returns a copy of the current mode state.
func (s *Selector) Mode() domain.AIMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// CurrentBackend reports which backend the next call would use, without
// advancing the round-robin pointer.
func (s *Selector) CurrentBackend(ctx context.Context) domain.Provider {
	status := s.networkSnapshot(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode.Resolve(status)
}

// AddToHistory appends to the bounded conversation log. The log never
// exceeds the configured limit; the oldest entry is evicted first.
func (s *Selector) AddToHistory(message string) {
	limit := s.cfg.Assistant.ConversationLimit
	if limit <= 0 {
		limit = domain.DefaultConversationLimit
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, message)
	if len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

// History returns a copy of the conversation log.
func (s *Selector) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory empties the conversation log.
func (s *Selector) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *Selector) geminiKey() string {
	return s.keyFromEnv(s.cfg.Providers.Gemini.KeyEnvVar, "GEMINI_API_KEY")
}

func (s *Selector) grokKey() string {
	return s.keyFromEnv(s.cfg.Providers.Grok.KeyEnvVar, "GROK_API_KEY")
}

func (s *Selector) keyFromEnv(primary, fallback string) string {
	if primary != "" {
		if value := s.getenv(primary); value != "" {
			return value
		}
	}
	return s.getenv(fallback)
}

var _ ports.AIProcessor = (*Selector)(nil)
