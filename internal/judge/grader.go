package judge

import (
	"context"
	"fmt"
	"os"
)

// Grader composes a primary judge with an offline fallback. When the
// primary fails for any reason the fallback verdict is served instead, so
// grading never blocks on provider availability.
type Grader struct {
	primary  Judge
	fallback Judge
}

// NewGrader creates a Grader. primary may be nil, in which case every
// verdict comes from the fallback.
func NewGrader(primary, fallback Judge) *Grader {
	return &Grader{primary: primary, fallback: fallback}
}

// Judge runs the primary judge and degrades to the fallback on failure.
func (g *Grader) Judge(ctx context.Context, req Request) (*Verdict, error) {
	if g.primary != nil {
		v, err := g.primary.Judge(ctx, req)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(os.Stderr, "warning: judge degraded to offline mode: %v\n", err)
	}
	return g.fallback.Judge(ctx, req)
}
