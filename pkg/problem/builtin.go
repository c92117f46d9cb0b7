package problem

import (
	"math"

	"github.com/wildfunctions/autodiff/pkg/expr"
)

func init() {
	Register("parabola", func() Problem {
		return Problem{
			Name:     "parabola",
			Describe: "minimize (x - 3)^2",
			F:        expr.X.Sub(expr.C(3)).Pow(2),
			Start:    0,
			Rate:     0.1,
		}
	})

	Register("sincos", func() Problem {
		return Problem{
			Name:     "sincos",
			Describe: "maximize sin(x) + cos(x)",
			F:        expr.X.Sin().Add(expr.X.Cos()),
			Maximize: true,
			Start:    0,
			Rate:     0.1,
		}
	})

	// Root finding for x^2 = 2^x via the squared residual, with 2^x
	// written as exp(x * ln 2).
	Register("powgap", func() Problem {
		lhs := expr.X.Pow(2)
		rhs := expr.Mul(expr.X, math.Ln2).Exp()
		return Problem{
			Name:     "powgap",
			Describe: "minimize (x^2 - 2^x)^2",
			F:        lhs.Sub(rhs).Pow(2),
			Start:    0,
			Rate:     0.1,
		}
	})

	// x^2 - ln(x) has a single minimum at x = 1/sqrt(2); the ln term
	// keeps the iterate on the positive axis.
	Register("logwell", func() Problem {
		return Problem{
			Name:     "logwell",
			Describe: "minimize x^2 - ln(x)",
			F:        expr.X.Pow(2).Sub(expr.X.Ln()),
			Start:    1,
			Rate:     0.1,
		}
	})
}
