package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// queryGemini posts the query to the Gemini REST endpoint with the API key
// as a query parameter. This path is the end of the fallback chain: with no
// key configured it returns an explicit apology instead of falling further.
func (s *Selector) queryGemini(ctx context.Context, query string) string {
	key := s.geminiKey()
	if key == "" {
		return "I'm sorry, but I need a Gemini API key to answer that question. " +
			"Please configure your API key, or enable offline mode."
	}

	endpoint := s.cfg.Providers.Gemini.Endpoint
	if endpoint == "" {
		endpoint = defaultGeminiEndpoint
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: onlinePersona + query}}}},
	})
	if err != nil {
		return fallbackReply
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?key="+key, bytes.NewReader(body))
	if err != nil {
		return fallbackReply
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.onlineClient.Do(req)
	if err != nil {
		if s.log != nil {
			s.log.Warn("gemini call failed", map[string]interface{}{"error": err.Error()})
		}
		return "I'm having trouble connecting to my AI systems right now."
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "I encountered an error while processing your request. Please check your API key."
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if s.log != nil {
			s.log.Warn("failed to parse gemini response", map[string]interface{}{"error": err.Error()})
		}
		return "I had trouble understanding the response from my AI systems."
	}
	return extractGeminiText(decoded)
}

func extractGeminiText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return fallbackReply
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return fallbackReply
	}
	return text
}
