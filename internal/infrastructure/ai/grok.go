package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

const defaultGrokEndpoint = "https://api.x.ai/v1/chat/completions"

type grokMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type grokRequest struct {
	Messages    []grokMessage `json:"messages"`
	Model       string        `json:"model"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature"`
}

type grokResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// queryGrok posts an OpenAI-style chat completion. A missing key, transport
// failure or non-2xx status all fall back transparently to Gemini: the
// caller cannot distinguish the fallback from a direct Gemini call.
func (s *Selector) queryGrok(ctx context.Context, query string) string {
	key := s.grokKey()
	if key == "" {
		if s.log != nil {
			s.log.Debug("grok key not configured, falling back to gemini", nil)
		}
		return s.queryGemini(ctx, query)
	}

	endpoint := s.cfg.Providers.Grok.Endpoint
	if endpoint == "" {
		endpoint = defaultGrokEndpoint
	}
	model := s.cfg.Providers.Grok.Model
	if model == "" {
		model = "grok-beta"
	}

	body, err := json.Marshal(grokRequest{
		Messages: []grokMessage{
			{Role: "system", Content: grokSystemPrompt},
			{Role: "user", Content: query},
		},
		Model:       model,
		Stream:      false,
		Temperature: 0.7,
	})
	if err != nil {
		return s.queryGemini(ctx, query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return s.queryGemini(ctx, query)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("content-type", "application/json")

	resp, err := s.onlineClient.Do(req)
	if err != nil {
		if s.log != nil {
			s.log.Warn("grok call failed, falling back to gemini", map[string]interface{}{"error": err.Error()})
		}
		return s.queryGemini(ctx, query)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if s.log != nil {
			s.log.Warn("grok returned non-success, falling back to gemini", map[string]interface{}{"status": resp.StatusCode})
		}
		return s.queryGemini(ctx, query)
	}

	var decoded grokResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if s.log != nil {
			s.log.Warn("failed to parse grok response", map[string]interface{}{"error": err.Error()})
		}
		return "I had trouble understanding the response from Grok."
	}
	if len(decoded.Choices) == 0 {
		return fallbackReply
	}
	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return fallbackReply
	}
	return content
}
