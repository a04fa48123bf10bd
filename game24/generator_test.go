package game24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealUsesAlphabet(t *testing.T) {
	g := NewGenerator(42, nil)
	for i := 0; i < 200; i++ {
		hand := g.Deal(5)
		require.Len(t, hand, 5)
		for _, c := range hand {
			_, err := ValueOf(c)
			assert.NoError(t, err)
		}
	}
	assert.Empty(t, g.Deal(0))
}

func TestDealIsSeeded(t *testing.T) {
	a, b := NewGenerator(7, nil), NewGenerator(7, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Deal(4), b.Deal(4))
	}
}

func TestDealSolvableAlwaysSolvable(t *testing.T) {
	g := NewGenerator(2024, nil)
	for i := 0; i < 1000; i++ {
		hand := g.DealSolvable(4, 24, DefaultMaxAttempts)
		ok, err := HasSolution(hand, 24)
		require.NoError(t, err)
		require.True(t, ok, hand.String())
	}
}

func TestFallbackHandsSolveTheirTargets(t *testing.T) {
	ok, err := HasSolution(fallbackHands[4], 24)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, Verify("(8 - 4) * (7 - A)", fallbackHands[4], 24))

	ok, err = HasSolution(fallbackHands[5], 60)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, Verify("((8 * 8) - 3) - (3 / 3)", fallbackHands[5], 60))
}

func TestDealSolvableFallsBack(t *testing.T) {
	g := NewGenerator(1, nil)
	// 4 张牌最大也只有 13^4，100000 不可能凑出
	hand := g.DealSolvable(4, 100000, 3)
	assert.Equal(t, fallbackHands[4], hand)

	hand[0] = "K"
	assert.Equal(t, Card("4"), fallbackHands[4][0])

	// 没有预置手牌时退化为随机发牌
	assert.Len(t, g.DealSolvable(2, 1000, 3), 2)
}
