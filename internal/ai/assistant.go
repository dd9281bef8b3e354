package ai

import (
	"context"

	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/profile"
)

// Advice is a free-form career note produced by a language model.
type Advice struct {
	Text string
	Raw  string
}

// Request carries the finalized profile together with what the engine already picked.
type Request struct {
	Profile *profile.Profile
	Jobs    []dataset.JobRecord
	Courses []dataset.CourseRecord
}

type Advisor interface {
	Advise(ctx context.Context, req *Request) (*Advice, error)
}
