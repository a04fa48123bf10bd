package game24

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveReturnsOnlyCorrectSolutions(t *testing.T) {
	hands := []Hand{
		{"4", "A", "8", "7"},
		{"3", "3", "8", "8"},
		{"10", "10", "4", "4"},
		{"K", "Q", "J", "A"},
		{"5", "5", "5", "A"},
	}
	names := cardNames()
	for _, hand := range hands {
		solutions, err := Solve(hand, 24, DefaultMaxSolutions)
		require.NoError(t, err)
		require.NotEmpty(t, solutions, hand.String())
		assert.LessOrEqual(t, len(solutions), DefaultMaxSolutions)

		allowed, err := hand.Operands()
		require.NoError(t, err)
		for _, s := range solutions {
			v, err := EvaluateEnv(s, Env{Names: names, Allowed: allowed})
			require.NoError(t, err, s)
			assert.True(t, math.Abs(v-24) < Tolerance, s)
			assert.True(t, Verify(s, hand, 24), "round trip %s", s)
		}
	}
}

func TestSolveNoSolution(t *testing.T) {
	hand := Hand{"2", "2", "2", "2"}
	solutions, err := Solve(hand, 24, DefaultMaxSolutions)
	require.NoError(t, err)
	assert.Empty(t, solutions)

	ok, err := HasSolution(hand, 24)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolveFourTens(t *testing.T) {
	solutions, err := Solve(Hand{"10", "10", "10", "10"}, 40, DefaultMaxSolutions)
	require.NoError(t, err)
	require.Len(t, solutions, DefaultMaxSolutions)
	assert.Equal(t, "(((10 + 10) + 10) + 10)", solutions[0])
	for _, s := range solutions {
		assert.Equal(t, 4, countToken(s, "10"), s)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	hand := Hand{"6", "9", "Q", "2"}
	first, err := Solve(hand, 24, 10)
	require.NoError(t, err)
	second, err := Solve(hand, 24, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveRespectsMaxSolutions(t *testing.T) {
	solutions, err := Solve(Hand{"4", "A", "8", "7"}, 24, 2)
	require.NoError(t, err)
	assert.Len(t, solutions, 2)

	ok, err := HasSolution(Hand{"4", "A", "8", "7"}, 24)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSolveFiveCards(t *testing.T) {
	hand := Hand{"3", "3", "8", "8", "3"}
	solutions, err := Solve(hand, 60, DefaultMaxSolutions)
	require.NoError(t, err)
	require.NotEmpty(t, solutions)
	for _, s := range solutions {
		assert.True(t, Verify(s, hand, 60), s)
	}
}

func TestExhaustiveShapesFindSuperset(t *testing.T) {
	hand := Hand{"3", "3", "8", "8", "3"}
	curated, err := NewSolver().Solve(hand, 60, 100000)
	require.NoError(t, err)
	all, err := NewSolver(WithExhaustiveShapes()).Solve(hand, 60, 100000)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(all), len(curated))
	for _, s := range curated {
		assert.Contains(t, all, s)
	}
}

func TestSolveInvalidInput(t *testing.T) {
	_, err := Solve(nil, 24, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Solve(Hand{"A", "2"}, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Solve(Hand{"A", "2", "3", "4", "5", "6"}, 24, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Solve(Hand{"A", "Z"}, 24, 5)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestPermutationsSkipRepeatedValues(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 1}, {2, 0, 1}}, permutations([]int{1, 1, 2}))
	assert.Len(t, permutations([]int{1, 2, 3, 4}), 24)
}

func TestOpCombinationsOrder(t *testing.T) {
	combos := opCombinations(2)
	require.Len(t, combos, 16)
	assert.Equal(t, []int{0, 0}, combos[0])
	assert.Equal(t, []int{0, 1}, combos[1])
	assert.Equal(t, []int{3, 3}, combos[15])
	assert.Equal(t, [][]int{{}}, opCombinations(0))
}

func countToken(expr, tok string) int {
	toks, err := lex(expr)
	if err != nil {
		return -1
	}
	n := 0
	for _, t := range toks {
		if t.text == tok {
			n++
		}
	}
	return n
}

func BenchmarkSolveUnsolvableFive(b *testing.B) {
	hand := Hand{"K", "K", "K", "K", "K"}
	for i := 0; i < b.N; i++ {
		_, _ = Solve(hand, 1, DefaultMaxSolutions)
	}
}
