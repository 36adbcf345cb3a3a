package model

type Priority string

const (
	PriorityNone   Priority = "None"
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities for list grouping; lower sorts first. None sorts
// after everything, including Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (p Priority) Icon() string {
	switch p {
	case PriorityHigh:
		return "▲"
	case PriorityMedium:
		return "●"
	case PriorityLow:
		return "▼"
	default:
		return ""
	}
}
