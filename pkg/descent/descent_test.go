package descent

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/autodiff/pkg/expr"
)

func TestMinimizeParabola(t *testing.T) {
	f := expr.X.Sub(expr.C(3)).Pow(2)

	cfg := DefaultConfig()
	cfg.Steps = 200

	e, err := New(f, cfg)
	require.NoError(t, err)

	report := e.Run()

	assert.True(t, report.Converged, "expected convergence on (x-3)^2")
	assert.False(t, report.Diverged)
	assert.InDelta(t, 3.0, report.Input, 1e-6)
	assert.InDelta(t, 0.0, report.Value, 1e-9)
}

func TestMaximizeSinPlusCos(t *testing.T) {
	f := expr.X.Sin().Add(expr.X.Cos())

	cfg := DefaultConfig()
	cfg.Steps = 500
	cfg.Maximize = true

	e, err := New(f, cfg)
	require.NoError(t, err)

	report := e.Run()

	assert.True(t, report.Converged)
	assert.InDelta(t, math.Pi/4, report.Input, 1e-6)
	assert.InDelta(t, math.Sqrt2, report.Value, 1e-9)
}

// TestSolveByResidual reproduces root finding for x^2 = 2^x: descend on the
// squared residual (x^2 - 2^x)^2 until it hits one of the roots.
func TestSolveByResidual(t *testing.T) {
	lhs := expr.X.Pow(2)
	rhs := expr.Mul(expr.X, math.Ln2).Exp()
	cost := lhs.Sub(rhs).Pow(2)

	e, err := New(cost, DefaultConfig())
	require.NoError(t, err)

	report := e.Run()

	assert.False(t, report.Diverged)
	assert.Less(t, report.Value, 1e-6, "squared residual should be near zero")

	lv, _ := lhs.Eval(report.Input)
	rv, _ := rhs.Eval(report.Input)
	assert.InDelta(t, lv, rv, 1e-3, "x^2 and 2^x should agree at the solution")
}

func TestDivergenceDetected(t *testing.T) {
	// Descending on -x^2 pushes x away from the origin without bound.
	f := expr.X.Pow(2).Neg()

	cfg := DefaultConfig()
	cfg.Rate = 1.0
	cfg.Start = 1.0
	cfg.Steps = 2000

	e, err := New(f, cfg)
	require.NoError(t, err)

	report := e.Run()

	assert.True(t, report.Diverged)
	assert.False(t, report.Converged)
	assert.Less(t, report.StepsUsed, cfg.Steps)
}

func TestVerboseTrace(t *testing.T) {
	f := expr.X.Sub(expr.C(3)).Pow(2)

	cfg := DefaultConfig()
	cfg.Steps = 50
	cfg.Verbose = true

	e, err := New(f, cfg)
	require.NoError(t, err)

	report := e.Run()

	require.Len(t, report.Steps, report.StepsUsed)
	assert.Equal(t, 0, report.Steps[0].Step)
	assert.Equal(t, cfg.Start, report.Steps[0].Input)

	// Values decrease while minimizing a convex objective.
	for i := 1; i < len(report.Steps); i++ {
		assert.LessOrEqual(t, report.Steps[i].Value, report.Steps[i-1].Value,
			"step %d should not increase the objective", i)
	}
}

// A diverged run carries NaN/Inf in its report; the JSON writer must still
// produce a report, with non-finite floats mapped to null.
func TestJSONDivergedReport(t *testing.T) {
	f := expr.X.Pow(2).Neg()

	cfg := DefaultConfig()
	cfg.Rate = 1.0
	cfg.Start = 1.0
	cfg.Steps = 2000
	cfg.Verbose = true

	e, err := New(f, cfg)
	require.NoError(t, err)

	report := e.Run()
	require.True(t, report.Diverged)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONFinal(&buf, report))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["diverged"])
	assert.Nil(t, decoded["value"], "non-finite value should encode as null")

	// The verbose trace includes the non-finite final probes and must
	// encode as well.
	steps, ok := decoded["steps"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, steps)
}

func TestConfigValidation(t *testing.T) {
	f := expr.X.Pow(2)

	cfg := DefaultConfig()
	cfg.Rate = 0
	_, err := New(f, cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Steps = 0
	_, err = New(f, cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Tolerance = -1
	_, err = New(f, cfg)
	assert.Error(t, err)
}

func TestJSONReport(t *testing.T) {
	f := expr.X.Sub(expr.C(3)).Pow(2)

	cfg := DefaultConfig()
	cfg.Steps = 200
	cfg.Format = "json"

	e, err := New(f, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONFinal(&buf, e.Run()))

	var decoded FinalReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.Converged)
	assert.Equal(t, "((x - 3))^2", decoded.Objective)
}
