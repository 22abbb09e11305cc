package toolbox

import (
	"fmt"
	"strconv"
	"strings"
)

// CalcParams contains parameters for Calc.
type CalcParams struct {
	// Expression is a free-form arithmetic expression for the evaluator.
	// When set, Op and Operands are ignored.
	Expression string
	// Op is one of add, sub, mul, div, mod.
	Op string
	// Operands are the numeric arguments for Op.
	Operands []string
}

const (
	minOperands = 2
	maxOperands = 3
)

// Calc evaluates an arithmetic expression or applies a named operation.
func (t *realToolbox) Calc(params CalcParams) (string, error) {
	if params.Expression != "" {
		return t.calcExpression(params.Expression)
	}
	return t.calcOperation(params.Op, params.Operands)
}

// calcExpression hands a free-form expression to the evaluator.
func (t *realToolbox) calcExpression(expression string) (string, error) {
	if err := t.requireTool("bc"); err != nil {
		return "", err
	}

	t.logf("calc: evaluating %q", expression)

	result, err := t.deps.Evaluator.Evaluate(expression)
	if err != nil {
		t.errorf("calc: %v", err)
		return "", err
	}

	t.logf("calc: %s = %s", expression, result)
	return result, nil
}

// calcOperation applies a named operation to two or three numeric operands.
func (t *realToolbox) calcOperation(op string, operands []string) (string, error) {
	if len(operands) < minOperands || len(operands) > maxOperands {
		return "", fmt.Errorf("%w: got %d", ErrWrongOperandCount, len(operands))
	}

	var result string
	var err error
	switch op {
	case "add", "sub", "mul", "mod":
		result, err = t.calcInteger(op, operands)
	case "div":
		result, err = t.calcDivide(operands)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if err != nil {
		t.errorf("calc: %v", err)
		return "", err
	}

	t.logf("calc: %s %s = %s", op, strings.Join(operands, " "), result)
	return result, nil
}

// calcInteger folds an integer operation left over the operands.
func (t *realToolbox) calcInteger(op string, operands []string) (string, error) {
	values := make([]int64, len(operands))
	for i, operand := range operands {
		value, err := strconv.ParseInt(operand, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidOperand, operand)
		}
		values[i] = value
	}

	result := values[0]
	for _, value := range values[1:] {
		switch op {
		case "add":
			result += value
		case "sub":
			result -= value
		case "mul":
			result *= value
		case "mod":
			if value == 0 {
				return "", ErrDivisionByZero
			}
			result %= value
		}
	}

	return strconv.FormatInt(result, 10), nil
}

// calcDivide divides the operands left to right through the evaluator and
// formats the result with six decimal places. A zero divisor is rejected
// before the evaluator is consulted.
func (t *realToolbox) calcDivide(operands []string) (string, error) {
	for i, operand := range operands {
		value, err := strconv.ParseFloat(operand, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidOperand, operand)
		}
		if i > 0 && value == 0 {
			return "", ErrDivisionByZero
		}
	}

	if err := t.requireTool("bc"); err != nil {
		return "", err
	}

	raw, err := t.deps.Evaluator.Evaluate(strings.Join(operands, " / "))
	if err != nil {
		return "", err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", fmt.Errorf("unexpected evaluator output %q: %w", raw, err)
	}

	return fmt.Sprintf("%.6f", value), nil
}
