// SPDX-License-Identifier: MIT

package gridgen

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// ContourVariable is the only parameter name a contour expression may use.
const ContourVariable = "x"

// contourFunctions are the math helpers callable from a contour expression.
var contourFunctions = map[string]govaluate.ExpressionFunction{
	"sqrt": unary("sqrt", math.Sqrt),
	"exp":  unary("exp", math.Exp),
	"log":  unary("log", math.Log),
	"sin":  unary("sin", math.Sin),
	"cos":  unary("cos", math.Cos),
	"tan":  unary("tan", math.Tan),
	"tanh": unary("tanh", math.Tanh),
	"abs":  unary("abs", math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow: want 2 arguments, got %d", len(args))
		}
		b, ok1 := args[0].(float64)
		e, ok2 := args[1].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("pow: arguments must be numbers")
		}
		return math.Pow(b, e), nil
	},
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument must be a number", name)
		}
		return fn(v), nil
	}
}

// ParseContour compiles expr, an arithmetic expression in x, into a Contour.
// Supported: + - * / ** and parentheses, numeric literals, and the functions
// sqrt exp log sin cos tan tanh abs pow.
//
// Returns ErrInvalidExpression if expr does not parse, references a variable
// other than x, or does not evaluate to a number at x = 0.
// The returned Contour yields NaN when evaluation fails at some x; Generate
// rejects NaN heights.
func ParseContour(expr string) (Contour, error) {
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(expr, contourFunctions)
	if err != nil {
		return nil, fmt.Errorf("ParseContour(%q): %v: %w", expr, err, ErrInvalidExpression)
	}
	for _, v := range compiled.Vars() {
		if v != ContourVariable {
			return nil, fmt.Errorf("ParseContour(%q): unknown variable %q: %w", expr, v, ErrInvalidExpression)
		}
	}
	eval := func(x float64) (float64, error) {
		out, err := compiled.Evaluate(map[string]interface{}{ContourVariable: x})
		if err != nil {
			return 0, err
		}
		f, ok := out.(float64)
		if !ok {
			return 0, fmt.Errorf("result %v is %T, not a number", out, out)
		}
		return f, nil
	}
	if _, err := eval(0); err != nil {
		return nil, fmt.Errorf("ParseContour(%q): %v: %w", expr, err, ErrInvalidExpression)
	}

	return func(x float64) float64 {
		h, err := eval(x)
		if err != nil {
			return math.NaN()
		}
		return h
	}, nil
}
