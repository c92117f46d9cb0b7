package descent

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// StepReport records one probe of the objective.
type StepReport struct {
	Step       int     `json:"step"`
	Input      float64 `json:"input"`
	Value      float64 `json:"value"`
	Derivative float64 `json:"derivative"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	Config     Config       `json:"config"`
	Objective  string       `json:"objective"`
	LaTeX      string       `json:"latex"`
	NodeCount  int          `json:"node_count"`
	Depth      int          `json:"depth"`
	Steps      []StepReport `json:"steps,omitempty"` // populated when Verbose
	StepsUsed  int          `json:"steps_used"`
	Input      float64      `json:"input"`
	Value      float64      `json:"value"`
	Derivative float64      `json:"derivative"`
	Converged  bool         `json:"converged"`
	Diverged   bool         `json:"diverged"`
}

// nullableFloat encodes NaN and ±Inf as JSON null. A diverged run stores
// non-finite floats in its report, and encoding/json refuses to encode
// those as numbers.
type nullableFloat float64

func (f nullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// MarshalJSON for StepReport tolerates non-finite probes.
func (r StepReport) MarshalJSON() ([]byte, error) {
	type stepJSON struct {
		Step       int           `json:"step"`
		Input      nullableFloat `json:"input"`
		Value      nullableFloat `json:"value"`
		Derivative nullableFloat `json:"derivative"`
	}
	return json.Marshal(stepJSON{
		Step:       r.Step,
		Input:      nullableFloat(r.Input),
		Value:      nullableFloat(r.Value),
		Derivative: nullableFloat(r.Derivative),
	})
}

// MarshalJSON for FinalReport tolerates the non-finite final iterate a
// diverged run produces.
func (r FinalReport) MarshalJSON() ([]byte, error) {
	type finalJSON struct {
		Config     Config        `json:"config"`
		Objective  string        `json:"objective"`
		LaTeX      string        `json:"latex"`
		NodeCount  int           `json:"node_count"`
		Depth      int           `json:"depth"`
		Steps      []StepReport  `json:"steps,omitempty"`
		StepsUsed  int           `json:"steps_used"`
		Input      nullableFloat `json:"input"`
		Value      nullableFloat `json:"value"`
		Derivative nullableFloat `json:"derivative"`
		Converged  bool          `json:"converged"`
		Diverged   bool          `json:"diverged"`
	}
	return json.Marshal(finalJSON{
		Config:     r.Config,
		Objective:  r.Objective,
		LaTeX:      r.LaTeX,
		NodeCount:  r.NodeCount,
		Depth:      r.Depth,
		Steps:      r.Steps,
		StepsUsed:  r.StepsUsed,
		Input:      nullableFloat(r.Input),
		Value:      nullableFloat(r.Value),
		Derivative: nullableFloat(r.Derivative),
		Converged:  r.Converged,
		Diverged:   r.Diverged,
	})
}

// WriteTextStep writes a step report in human-readable format.
func WriteTextStep(w io.Writer, r StepReport) {
	fmt.Fprintf(w, "Step %4d | x: %12.8f | f(x): %12.8f | f'(x): %12.8f\n",
		r.Step, r.Input, r.Value, r.Derivative)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	if r.Config.Verbose {
		for _, sr := range r.Steps {
			WriteTextStep(w, sr)
		}
	}
	fmt.Fprintln(w, "========== FINAL RESULT ==========")
	fmt.Fprintf(w, "Objective: %s\n", r.Objective)
	fmt.Fprintf(w, "LaTeX:     %s\n", r.LaTeX)
	fmt.Fprintf(w, "Tree:      %d nodes, depth %d\n", r.NodeCount, r.Depth)
	fmt.Fprintf(w, "Steps:     %d\n", r.StepsUsed)
	fmt.Fprintf(w, "x:         %.10f\n", r.Input)
	fmt.Fprintf(w, "f(x):      %.10f\n", r.Value)
	fmt.Fprintf(w, "f'(x):     %.10f\n", r.Derivative)
	switch {
	case r.Converged:
		fmt.Fprintln(w, "Status:    converged")
	case r.Diverged:
		fmt.Fprintln(w, "Status:    diverged")
	default:
		fmt.Fprintln(w, "Status:    step budget exhausted")
	}
	fmt.Fprintln(w, "==================================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
