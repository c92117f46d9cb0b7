package descent

import (
	"fmt"
	"math"

	"github.com/wildfunctions/autodiff/pkg/expr"
)

// Engine drives gradient descent (or ascent) on a differentiable
// expression: x <- x -/+ rate * f'(x). The expression supplies exact
// derivatives, so no finite-differencing is involved.
type Engine struct {
	cfg Config
	f   expr.Expr
}

// New creates a new engine for the given objective and config.
func New(f expr.Expr, cfg Config) (*Engine, error) {
	if cfg.Rate <= 0 {
		return nil, fmt.Errorf("learning rate must be positive, got %v", cfg.Rate)
	}
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("step budget must be positive, got %d", cfg.Steps)
	}
	if cfg.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be non-negative, got %v", cfg.Tolerance)
	}
	return &Engine{cfg: cfg, f: f}, nil
}

// Run executes the update loop and returns the final report. The loop
// stops early when the gradient magnitude drops within tolerance, or when
// the iterate goes non-finite (divergence).
func (e *Engine) Run() FinalReport {
	report := FinalReport{
		Config:    e.cfg,
		Objective: e.f.String(),
		LaTeX:     e.f.LaTeX(),
		NodeCount: e.f.NodeCount(),
		Depth:     e.f.Depth(),
	}

	x := e.cfg.Start
	var value, derivative float64

	for step := 0; step < e.cfg.Steps; step++ {
		value, derivative = e.f.Eval(x)

		sr := StepReport{Step: step, Input: x, Value: value, Derivative: derivative}
		if e.cfg.Verbose {
			report.Steps = append(report.Steps, sr)
		}
		report.StepsUsed = step + 1

		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(value) || math.IsInf(value, 0) {
			report.Diverged = true
			break
		}

		if math.Abs(derivative) <= e.cfg.Tolerance {
			report.Converged = true
			break
		}

		if e.cfg.Maximize {
			x += derivative * e.cfg.Rate
		} else {
			x -= derivative * e.cfg.Rate
		}
	}

	// Report the final iterate, not the last one probed inside the loop.
	if !report.Diverged {
		value, derivative = e.f.Eval(x)
	}
	report.Input = x
	report.Value = value
	report.Derivative = derivative

	if !report.Converged && !report.Diverged && math.Abs(derivative) <= e.cfg.Tolerance {
		report.Converged = true
	}

	return report
}
