// Package assist orchestrates a conversation session: every utterance goes
// through the router and the exchange is persisted to the transcript store.
package assist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

// Farewell is spoken when the user ends the session.
const Farewell = "Goodbye! Shutting down I.R.I.S."

// Result is the outcome of one processed utterance.
type Result struct {
	Reply  string
	Source string
	// Done reports that the user asked to end the session.
	Done bool
}

// Service is the inbound entry point for utterances.
type Service struct {
	Router      ports.CommandRouter
	Transcripts ports.TranscriptRepository
	Logger      ports.Logger

	sessionID string
	now       func() time.Time
}

// NewService starts a fresh session with its own transcript session ID.
func NewService(router ports.CommandRouter, transcripts ports.TranscriptRepository, logger ports.Logger) *Service {
	return &Service{
		Router:      router,
		Transcripts: transcripts,
		Logger:      logger,
		sessionID:   uuid.NewString(),
		now:         time.Now,
	}
}

// SessionID identifies this conversation in the transcript store.
func (s *Service) SessionID() string {
	return s.sessionID
}

// ProcessCommand routes one utterance and records the exchange. A failed
// transcript write is logged, never surfaced: losing history must not
// break the conversation.
func (s *Service) ProcessCommand(ctx context.Context, input string) (Result, error) {
	if s.Router == nil {
		return Result{}, errors.New("assist.Service dependencies not satisfied")
	}

	category := s.Router.Classify(input)
	reply := s.Router.Route(ctx, input)

	if reply == domain.ExitSentinel {
		return Result{Reply: Farewell, Source: string(category), Done: true}, nil
	}

	result := Result{Reply: reply, Source: string(category)}
	if s.Transcripts != nil {
		record := domain.TranscriptRecord{
			SessionID: s.sessionID,
			Timestamp: s.now(),
			Input:     input,
			Response:  reply,
			Source:    string(category),
		}
		if err := s.Transcripts.Save(record); err != nil && s.Logger != nil {
			s.Logger.Warn("transcript save failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return result, nil
}
