package recommend

import "github.com/spigell/career-compass/internal/dataset"

// Outcome tells which selection path produced a result.
type Outcome int

const (
	// OutcomeEmpty means nothing could be suggested.
	OutcomeEmpty Outcome = iota
	// OutcomeMatched means the entries matched the profile.
	OutcomeMatched
	// OutcomeFallback means nothing matched and general suggestions are returned.
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeFallback:
		return "fallback"
	default:
		return "empty"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type JobResult struct {
	Outcome Outcome             `json:"outcome"`
	Jobs    []dataset.JobRecord `json:"jobs"`
}

type CourseResult struct {
	Outcome Outcome                `json:"outcome"`
	Courses []dataset.CourseRecord `json:"courses"`
}
