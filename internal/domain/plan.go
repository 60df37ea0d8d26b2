package domain

// StepKind tags how a decomposed action step is dispatched.
type StepKind string

const (
	StepOpen     StepKind = "open"
	StepNavigate StepKind = "navigate"
	StepType     StepKind = "type"
	StepPress    StepKind = "press"
	StepSearch   StepKind = "search"
	StepWait     StepKind = "wait"
	StepGeneric  StepKind = "generic"
)

// ActionStep is one simple imperative action sourced from a language model.
// Raw preserves the model's line after numbering was stripped; Payload is
// the argument remaining after the dispatch prefix was removed.
type ActionStep struct {
	Kind    StepKind
	Payload string
	Raw     string
}

// Plan is an ordered decomposition of a complex utterance. Step order is
// exactly the order returned by the model; no reordering or dependency
// validation happens. Warnings records lines that were skipped or truncated
// during parsing.
type Plan struct {
	Steps    []ActionStep
	Warnings []string
}

// StepResult captures a single step's outcome. A failing step never aborts
// the plan; results for all steps are aggregated into the final report.
type StepResult struct {
	Step    ActionStep
	Output  string
	Failed  bool
}
