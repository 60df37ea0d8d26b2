// Package planner decomposes multi-step requests into a plan via the AI
// backend and executes the steps sequentially against the actuators.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

const decomposePromptTemplate = "You are I.R.I.S, an AI assistant. Break down this command into simple steps: '%s'. " +
	"Provide a numbered list of actions. " +
	"Format each action as a simple command. " +
	"Example for 'open whatsapp web in firefox':\n" +
	"1. Open Firefox browser\n" +
	"2. Navigate to web.whatsapp.com\n" +
	"Keep it concise and actionable."

// Planner asks the AI backend to break a request into numbered steps and
// runs them in order. A failed step is recorded, never fatal: later steps
// still run so partial progress is preserved.
type Planner struct {
	ai     ports.AIProcessor
	router ports.CommandRouter
	system ports.SystemActuator
	auto   ports.AutomationActuator
	log    ports.Logger

	maxSteps  int
	stepDelay time.Duration
	sleep     func(time.Duration)
}

// Option tunes a Planner beyond its defaults.
type Option func(*Planner)

// WithMaxSteps caps how many parsed steps execute.
func WithMaxSteps(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.maxSteps = n
		}
	}
}

// WithStepDelay sets the pause between consecutive steps.
func WithStepDelay(d time.Duration) Option {
	return func(p *Planner) {
		if d >= 0 {
			p.stepDelay = d
		}
	}
}

// WithSleeper replaces the inter-step sleep. Tests use this to run plans
// instantly.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(p *Planner) { p.sleep = sleep }
}

func New(ai ports.AIProcessor, router ports.CommandRouter, system ports.SystemActuator, auto ports.AutomationActuator, log ports.Logger, opts ...Option) *Planner {
	p := &Planner{
		ai:        ai,
		router:    router,
		system:    system,
		auto:      auto,
		log:       log,
		maxSteps:  domain.DefaultMaxPlanSteps,
		stepDelay: domain.DefaultStepDelay,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsComplex reports whether the utterance looks like a multi-step request.
// The heuristic is cheap on purpose: "open X in Y", "open X on Y", and any
// "and"/"then" conjunction.
func (p *Planner) IsComplex(utterance string) bool {
	s := strings.ToLower(utterance)
	return (strings.Contains(s, " in ") && strings.Contains(s, "open")) ||
		(strings.Contains(s, " on ") && strings.Contains(s, "open")) ||
		strings.Contains(s, " and ") ||
		strings.Contains(s, " then ")
}

// Execute asks the backend for a numbered plan, runs each step in order
// with a pause between steps, and returns a transcript of the planned
// actions and per-step outcomes.
func (p *Planner) Execute(ctx context.Context, utterance string) string {
	prompt := fmt.Sprintf(decomposePromptTemplate, utterance)
	reply := p.ai.ProcessQuery(ctx, prompt)

	plan := parsePlan(reply, p.maxSteps)
	if p.log != nil {
		p.log.Debug("decomposed command", map[string]interface{}{
			"steps":    len(plan.Steps),
			"warnings": len(plan.Warnings),
		})
	}

	var out strings.Builder
	out.WriteString("PLANNED ACTIONS:\n\n")
	out.WriteString(reply)
	for _, w := range plan.Warnings {
		out.WriteString("\n! ")
		out.WriteString(w)
	}
	out.WriteString("\n\nExecuting actions...\n")

	failed := 0
	for i, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			out.WriteString("\nx Execution stopped: " + err.Error())
			return out.String()
		}
		if i > 0 {
			p.sleep(p.stepDelay)
		}

		result := p.runStep(ctx, step)
		if result.Failed {
			failed++
			out.WriteString("\nx " + result.Output)
		} else {
			out.WriteString("\n* " + result.Output)
		}
	}

	if failed > 0 {
		fmt.Fprintf(&out, "\n\nCompleted with %d failed step(s).", failed)
	} else {
		out.WriteString("\n\nAll actions completed!")
	}
	return out.String()
}

func (p *Planner) runStep(ctx context.Context, step domain.ActionStep) domain.StepResult {
	var output string
	switch step.Kind {
	case domain.StepOpen:
		output = p.system.OpenApplication(step.Payload)
	case domain.StepNavigate:
		// Give a freshly opened browser time to come up first.
		p.sleep(p.stepDelay)
		output = p.auto.NavigateToURL(step.Payload)
	case domain.StepType:
		output = p.auto.TypeText(step.Payload)
	case domain.StepPress:
		output = p.auto.PressKey(step.Payload)
	case domain.StepSearch:
		output = p.auto.SearchInBrowser(step.Payload)
	case domain.StepWait:
		p.sleep(domain.WaitStepDelay)
		output = "Waited"
	default:
		output = p.router.Route(ctx, step.Payload)
	}
	return domain.StepResult{Step: step, Output: output, Failed: looksFailed(output)}
}

// looksFailed inspects an actuator reply. Actuators report problems as
// strings rather than errors, so the executor pattern-matches the common
// failure phrasings.
func looksFailed(output string) bool {
	lower := strings.ToLower(output)
	return strings.HasPrefix(lower, "error") ||
		strings.HasPrefix(lower, "failed") ||
		strings.Contains(lower, " failed:")
}

var _ ports.Planner = (*Planner)(nil)
