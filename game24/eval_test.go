package game24

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		allowed []float64
		want    float64
	}{
		{"addition", "1 + 2", []float64{1, 2}, 3},
		{"precedence", "2 + 3 * 4", []float64{2, 3, 4}, 14},
		{"parentheses", "(8 - 4) * (7 - 1)", []float64{8, 4, 7, 1}, 24},
		{"unary minus binds looser than power", "-2**2", []float64{2}, -4},
		{"power is right associative", "2**3**2", []float64{2, 3}, 512},
		{"unary plus", "+3 * 8", []float64{3, 8}, 24},
		{"sqrt", "sqrt(4) * 6", []float64{4, 6}, 12},
		{"pow", "pow(2, 3) * 3", []float64{2, 3}, 24},
		{"division", "8 / (3 - 8 / 3)", []float64{8, 3}, 24},
		{"float literal", "8.0 * 3", []float64{8, 3}, 24},
		{"zero-padded float", "08.0 * 3", []float64{8, 3}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr, NewOperandSet(tt.allowed...))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, Tolerance)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	allowed := NewOperandSet(1, 2, 3, 4, 9)
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", ErrSyntax},
		{"unclosed", "(1 + 2", ErrSyntax},
		{"trailing token", "1 2", ErrSyntax},
		{"floor division", "4 // 2", ErrSyntax},
		{"comparison", "1 < 2", ErrSyntax},
		{"attribute access", "os.system", ErrSyntax},
		{"statement", "import os; os.system('ls')", ErrSyntax},
		{"dunder import", "__import__('os')", ErrSyntax},
		{"lambda", "lambda: 1", ErrSyntax},
		{"too deep", strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100), ErrSyntax},
		{"too long", strings.Repeat("1+", 200) + "1", ErrSyntax},
		{"leading zero integer", "01 + 2", ErrSyntax},
		{"number outside hand", "5 + 1", ErrRejected},
		{"unknown name", "x + 1", ErrRejected},
		{"unknown function", "abs(4)", ErrRejected},
		{"bare function name", "sqrt + 1", ErrRejected},
		{"sqrt arity", "sqrt(4, 4)", ErrRejected},
		{"pow arity", "pow(2)", ErrRejected},
		{"no arguments", "sqrt()", ErrRejected},
		{"division by zero", "3 / (2 - 2)", ErrEvaluation},
		{"negative sqrt", "sqrt(-4)", ErrEvaluation},
		{"overflow", "9**9**9", ErrEvaluation},
		{"zero to negative power", "(1 - 1) ** -1", ErrEvaluation},
		{"complex root", "(-4) ** (1 / 2)", ErrEvaluation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr, allowed)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateRunsBeforeEvaluation(t *testing.T) {
	// 3 不在集合中，即使右侧会除零也应先报白名单错误
	_, err := Evaluate("3 + 1 / 0", NewOperandSet(1, 0))
	assert.ErrorIs(t, err, ErrRejected)
}

func TestNamesResolveAgainstAllowedSet(t *testing.T) {
	env := Env{Names: cardNames(), Allowed: NewOperandSet(1, 13)}
	got, err := EvaluateEnv("K * A + A", env)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, got, Tolerance)

	_, err = EvaluateEnv("Q + A", env)
	assert.ErrorIs(t, err, ErrRejected)
}
