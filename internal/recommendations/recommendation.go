package recommendations

type Kind string

const (
	KindProgressiveOverload Kind = "progressive_overload"
	KindBalance             Kind = "balance"
	KindRecovery            Kind = "recovery"
	KindConsistency         Kind = "consistency"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Confidence per rule; a fixed label of how directly the rule's condition
// is observed in the data, not a statistical estimate.
const (
	ConfidencePlateau     = 92
	ConfidenceImbalance   = 87
	ConfidenceRecovery    = 78
	ConfidenceConsistency = 95
)

type Recommendation struct {
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Action      string   `json:"action"`
	Confidence  int      `json:"confidence"`
	// Exercise is set for per-exercise recommendations only.
	Exercise string `json:"exercise,omitempty"`

	rule int
}
