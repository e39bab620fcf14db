package zipkit_test

//go:generate mockgen -destination probe_mocks_test.go -source probe_test.go -package zipkit_test

import "go.llib.dev/leafkit/pkg/cursorkit"

// StepRecorder observes every advance of a probe cursor.
type StepRecorder interface {
	Step(component string, at int)
}

// probe is a slice cursor that reports each Next call to a StepRecorder.
type probe struct {
	id  string
	rec StepRecorder
	at  cursorkit.Index[int]
}

func (p probe) Equal(oth probe) bool { return p.at.Equal(oth.at) }

func (p probe) Get() *int { return p.at.Get() }

func (p probe) Next() probe {
	if p.rec != nil {
		p.rec.Step(p.id, p.at.Offset())
	}
	p.at = p.at.Next()
	return p
}

func probeRange(id string, rec StepRecorder, vs cursorkit.Slice[int]) (begin, end probe) {
	return probe{id: id, rec: rec, at: vs.Begin()}, probe{id: id, at: vs.End()}
}
