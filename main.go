package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wildfunctions/autodiff/pkg/descent"
	"github.com/wildfunctions/autodiff/pkg/problem"
)

func main() {
	cfg := descent.DefaultConfig()
	name := "parabola"

	flag.StringVar(&name, "problem", name, "objective to optimize ("+strings.Join(problem.Names(), ", ")+")")
	flag.Float64Var(&cfg.Rate, "rate", cfg.Rate, "learning rate")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "update step budget")
	flag.Float64Var(&cfg.Start, "start", cfg.Start, "starting input")
	flag.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "gradient tolerance for convergence")
	flag.BoolVar(&cfg.Maximize, "maximize", cfg.Maximize, "ascend instead of descend")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "report every step")
	flag.Parse()

	p, err := problem.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The problem supplies its natural direction, start and rate; explicit
	// flags win over the problem's suggestions.
	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if !seen["maximize"] {
		cfg.Maximize = p.Maximize
	}
	if !seen["start"] {
		cfg.Start = p.Start
	}
	if !seen["rate"] && p.Rate > 0 {
		cfg.Rate = p.Rate
	}

	fmt.Fprintf(os.Stderr, "Running %s: %s (start %g, rate %g, %d steps)\n",
		p.Name, p.Describe, cfg.Start, cfg.Rate, cfg.Steps)

	e, err := descent.New(p.F, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report := e.Run()

	switch cfg.Format {
	case "json":
		if err := descent.WriteJSONFinal(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		descent.WriteTextFinal(os.Stdout, report)
	}
}
