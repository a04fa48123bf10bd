package game24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineNewGame(t *testing.T) {
	e := NewEngine(EngineConfig{Seed: 99})

	deal, err := e.NewGame(Mode24, true)
	require.NoError(t, err)
	assert.Len(t, deal.Cards, 4)
	assert.Equal(t, 24, deal.Target)
	assert.True(t, deal.HasSolution)
	assert.NotEmpty(t, deal.Solutions)
	assert.LessOrEqual(t, len(deal.Solutions), 3)
	for _, s := range deal.Solutions {
		assert.True(t, e.Verify(s, deal.Cards, deal.Target), s)
	}

	deal, err = e.NewGame(Mode60, true)
	require.NoError(t, err)
	assert.Len(t, deal.Cards, 5)
	assert.Equal(t, 60, deal.Target)
	assert.True(t, deal.HasSolution)
}

func TestEngineSolutions(t *testing.T) {
	e := NewEngine(EngineConfig{Seed: 1, MaxSolutions: 2})

	res, err := e.Solutions(Hand{"2", "2", "2", "2"}, 24)
	require.NoError(t, err)
	assert.False(t, res.HasSolution)
	assert.Empty(t, res.Solutions)

	res, err = e.Solutions(Hand{"4", "A", "8", "7"}, 24)
	require.NoError(t, err)
	assert.True(t, res.HasSolution)
	assert.Len(t, res.Solutions, 2)

	_, err = e.Solutions(Hand{}, 24)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngineSolveUpTo(t *testing.T) {
	e := NewEngine(EngineConfig{Seed: 1, MaxSolutions: 1})
	hand := Hand{"10", "10", "10", "10"}

	res, err := e.SolveUpTo(hand, 40, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"(((10 + 10) + 10) + 10)"}, res.Solutions)

	res, err = e.SolveUpTo(hand, 40, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"(((10 + 10) + 10) + 10)", "((10 + 10) + (10 + 10))"}, res.Solutions)
}

func TestEngineStrictVerify(t *testing.T) {
	e := NewEngine(EngineConfig{Seed: 1, StrictVerify: true})
	assert.False(t, e.Verify("8 * (7 - 4)", Hand{"4", "A", "8", "7"}, 24))
	assert.True(t, e.Verify("(8-4)*(7-A)", Hand{"4", "A", "8", "7"}, 24))
}
