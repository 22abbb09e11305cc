package calc

//go:generate go run go.uber.org/mock/mockgen@latest -source=calc.go -destination=mocks/calc.gen.go -package=mocks

// Evaluator interface provides floating-point expression evaluation capabilities.
type Evaluator interface {
	// Evaluate computes an expression and returns its textual result.
	Evaluate(expression string) (string, error)
}

type realEvaluator struct {
	// No fields needed for basic evaluation operations
}

// NewEvaluator creates a new Evaluator instance.
func NewEvaluator() Evaluator {
	return &realEvaluator{}
}
