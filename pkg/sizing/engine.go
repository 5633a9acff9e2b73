package sizing

import (
	"log/slog"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/condition"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/scaling"
)

// Engine resizes and evaluates LUT rows. It is safe for concurrent use.
type Engine struct {
	cls  scaling.Classification
	opts Options
}

// NewEngine creates an engine. The classification is copied.
func NewEngine(cls scaling.Classification, opts Options) *Engine {
	return &Engine{cls: cls.Clone(), opts: opts}
}

// Options returns the engine's options.
func (e *Engine) Options() Options { return e.opts }

// Classification returns a copy of the engine's classification.
func (e *Engine) Classification() scaling.Classification { return e.cls.Clone() }

// Plan tags conditions with the engine's classification.
func (e *Engine) Plan(conds []condition.Condition) []Term {
	return Plan(e.cls, conds)
}

// Compute parses the condition strings, resizes base and evaluates the
// result against every condition.
func (e *Engine) Compute(base *lut.Table, texts []string) (*Result, error) {
	conds, err := condition.ParseAll(texts)
	if err != nil {
		return nil, err
	}

	res, err := e.Resize(base, conds)
	if err != nil {
		return nil, err
	}
	if err := e.Evaluate(res, conds); err != nil {
		return nil, err
	}

	slog.Debug("Computed conditional table",
		"conditions", len(conds),
		"rows", res.Len(),
		"passing", len(res.Passing()))
	return res, nil
}
