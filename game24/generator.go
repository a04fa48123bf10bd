package game24

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// DefaultMaxAttempts 生成有解手牌时的默认尝试次数
const DefaultMaxAttempts = 100

// 找不到有解组合时使用的手牌：
// 4 张：(8 - 4) * (7 - A) = 24
// 5 张：((8 * 8) - 3) - (3 / 3) = 60
var fallbackHands = map[int]Hand{
	4: {"4", "A", "8", "7"},
	5: {"3", "3", "8", "8", "3"},
}

// Generator 随机发牌，有放回地均匀抽取
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	solver *Solver
}

// NewGenerator 创建发牌器，solver 为 nil 时使用默认求解器
func NewGenerator(seed uint64, solver *Solver) *Generator {
	if solver == nil {
		solver = defaultSolver
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		solver: solver,
	}
}

// NewRandomGenerator 以当前时间为种子
func NewRandomGenerator(solver *Solver) *Generator {
	return NewGenerator(uint64(time.Now().UnixNano()), solver)
}

// Deal 发 n 张牌
func (g *Generator) Deal(n int) Hand {
	if n <= 0 {
		return Hand{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	hand := make(Hand, n)
	for i := range hand {
		hand[i] = Alphabet[g.rng.Intn(len(Alphabet))]
	}
	return hand
}

// DealSolvable 反复发牌直到有解；超过 maxAttempts 次后返回预置手牌，
// 没有预置手牌的 n 直接返回随机手牌（可能无解）
func (g *Generator) DealSolvable(n, target, maxAttempts int) Hand {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		hand := g.Deal(n)
		if ok, err := g.solver.HasSolution(hand, target); err == nil && ok {
			return hand
		}
	}
	if fb, ok := fallbackHands[n]; ok {
		return append(Hand(nil), fb...)
	}
	return g.Deal(n)
}
