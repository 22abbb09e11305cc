//go:build integration

package calc

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Evaluate(t *testing.T) {
	if _, err := exec.LookPath("bc"); err != nil {
		t.Skip("bc not available")
	}

	evaluator := NewEvaluator()

	result, err := evaluator.Evaluate("2+3")
	require.NoError(t, err)
	assert.Equal(t, "5", result)

	result, err = evaluator.Evaluate("10/4")
	require.NoError(t, err)
	assert.Equal(t, "2.50000000000000000000", result)

	result, err = evaluator.Evaluate("s(0)")
	require.NoError(t, err)
	assert.Equal(t, "0", result)
}

func TestEvaluator_Evaluate_DivisionByZero(t *testing.T) {
	if _, err := exec.LookPath("bc"); err != nil {
		t.Skip("bc not available")
	}

	evaluator := NewEvaluator()

	_, err := evaluator.Evaluate("1/0")
	assert.ErrorIs(t, err, ErrEvaluation)
}

func TestEvaluator_Evaluate_SyntaxError(t *testing.T) {
	if _, err := exec.LookPath("bc"); err != nil {
		t.Skip("bc not available")
	}

	evaluator := NewEvaluator()

	_, err := evaluator.Evaluate("2+")
	assert.ErrorIs(t, err, ErrEvaluation)
}
