package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
)

const defaultOllamaEndpoint = "http://localhost:11434/api/generate"

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// queryOllama posts the query to the local model server. Every failure mode
// maps to a distinct guidance string; raw transport errors never reach the
// caller.
func (s *Selector) queryOllama(ctx context.Context, query string) string {
	if strings.TrimSpace(query) == "" {
		return "I didn't receive a valid query. Please try again."
	}

	model := s.cfg.Providers.Ollama.Model
	if model == "" {
		model = "llama2"
	}
	endpoint := s.cfg.Providers.Ollama.Endpoint
	if endpoint == "" {
		endpoint = defaultOllamaEndpoint
	}

	body, err := json.Marshal(ollamaRequest{
		Model:  model,
		Prompt: ollamaPersona + query,
		Stream: false,
	})
	if err != nil {
		return fallbackReply
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fallbackReply
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.ollamaClient.Do(req)
	if err != nil {
		return s.describeOllamaError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Sprintf("Ollama model '%s' not found. Try: ollama pull %s", model, model)
		case resp.StatusCode >= 500:
			return "Ollama server error. Please restart Ollama: ollama serve"
		default:
			return fmt.Sprintf("I'm having trouble connecting to Ollama (error %d). Make sure Ollama is running: ollama serve", resp.StatusCode)
		}
	}

	var decoded ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if s.log != nil {
			s.log.Warn("failed to parse ollama response", map[string]interface{}{"error": err.Error()})
		}
		return "I had trouble understanding the response from my AI system."
	}
	if strings.TrimSpace(decoded.Response) == "" {
		return fallbackReply
	}
	return strings.TrimSpace(decoded.Response)
}

func (s *Selector) describeOllamaError(err error) string {
	if s.log != nil {
		s.log.Warn("ollama call failed", map[string]interface{}{"error": err.Error()})
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "The AI is taking too long to respond. The model might be loading. Please try again in a moment."
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "Cannot connect to Ollama. Please start it with: ollama serve"
	}
	return "I'm having trouble with my offline AI system. Please ensure Ollama is installed and running. " +
		"Install: curl -fsSL https://ollama.com/install.sh | sh"
}
