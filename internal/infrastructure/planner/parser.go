package planner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/doeshing/iris-go/internal/domain"
)

var stepNumbering = regexp.MustCompile(`^\d+\.\s*`)

// parsePlan turns the model's numbered-list reply into an ordered plan.
// Blank lines and #-comments are skipped. Lines that are empty once the
// numbering is stripped are malformed and recorded as warnings instead of
// becoming steps. The plan is capped at maxSteps with a warning for the
// overflow, never an error: a degenerate reply still produces a runnable
// (possibly empty) plan.
func parsePlan(reply string, maxSteps int) domain.Plan {
	if maxSteps <= 0 {
		maxSteps = domain.DefaultMaxPlanSteps
	}

	var plan domain.Plan
	for _, line := range strings.Split(reply, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		action := strings.TrimSpace(stepNumbering.ReplaceAllString(trimmed, ""))
		if action == "" {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("skipped malformed step line: %q", trimmed))
			continue
		}

		if len(plan.Steps) >= maxSteps {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("plan truncated at %d steps, dropped: %q", maxSteps, action))
			continue
		}
		plan.Steps = append(plan.Steps, classifyStep(action))
	}
	return plan
}

// classifyStep assigns a step kind by prefix. The payload is the action
// text with the dispatch prefix removed, lowercased for the actuators.
func classifyStep(action string) domain.ActionStep {
	lower := strings.ToLower(action)
	switch {
	case strings.HasPrefix(lower, "open "):
		return domain.ActionStep{Kind: domain.StepOpen, Payload: strings.TrimPrefix(lower, "open "), Raw: action}
	case strings.HasPrefix(lower, "navigate to "):
		return domain.ActionStep{Kind: domain.StepNavigate, Payload: strings.TrimPrefix(lower, "navigate to "), Raw: action}
	case strings.HasPrefix(lower, "go to "):
		return domain.ActionStep{Kind: domain.StepNavigate, Payload: strings.TrimPrefix(lower, "go to "), Raw: action}
	case strings.HasPrefix(lower, "type "):
		return domain.ActionStep{Kind: domain.StepType, Payload: strings.TrimPrefix(lower, "type "), Raw: action}
	case strings.HasPrefix(lower, "press "):
		return domain.ActionStep{Kind: domain.StepPress, Payload: strings.TrimPrefix(lower, "press "), Raw: action}
	case strings.HasPrefix(lower, "search for "):
		return domain.ActionStep{Kind: domain.StepSearch, Payload: strings.TrimPrefix(lower, "search for "), Raw: action}
	case strings.Contains(lower, "wait"):
		return domain.ActionStep{Kind: domain.StepWait, Payload: "", Raw: action}
	}
	return domain.ActionStep{Kind: domain.StepGeneric, Payload: lower, Raw: action}
}
