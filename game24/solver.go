package game24

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Tolerance 浮点比较容差
	Tolerance = 1e-9
	// DefaultMaxSolutions 默认最多返回的解数
	DefaultMaxSolutions = 5
)

// Solver 穷举排列、运算符与括号组合寻找解。无内部状态，可并发使用。
type Solver struct {
	shapes func(n int) []*Shape
}

// SolverOption 求解器选项
type SolverOption func(*Solver)

// WithExhaustiveShapes 使用全部括号组合，而不是精选的子集
func WithExhaustiveShapes() SolverOption {
	return func(s *Solver) { s.shapes = AllShapes }
}

// NewSolver 创建求解器
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{shapes: Shapes}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSolver = NewSolver()

// Solve 使用默认求解器
func Solve(hand Hand, target, maxSolutions int) ([]string, error) {
	return defaultSolver.Solve(hand, target, maxSolutions)
}

// HasSolution 使用默认求解器
func HasSolution(hand Hand, target int) (bool, error) {
	return defaultSolver.HasSolution(hand, target)
}

func checkProblem(hand Hand, target int) ([]int, error) {
	if len(hand) == 0 {
		return nil, fmt.Errorf("%w: 手牌为空", ErrInvalidInput)
	}
	if len(hand) > MaxHandSize {
		return nil, fmt.Errorf("%w: 手牌最多 %d 张", ErrInvalidInput, MaxHandSize)
	}
	if target <= 0 {
		return nil, fmt.Errorf("%w: 目标值必须为正数", ErrInvalidInput)
	}
	return hand.Values()
}

// Solve 返回至多 maxSolutions 个不同的解（以牌面表示），按搜索顺序排列。
// 搜索顺序为 排列 × 运算符组合 × 括号组合，结果对同样的输入是确定的。
func (s *Solver) Solve(hand Hand, target, maxSolutions int) ([]string, error) {
	values, err := checkProblem(hand, target)
	if err != nil {
		return nil, err
	}
	if maxSolutions <= 0 {
		maxSolutions = DefaultMaxSolutions
	}
	allowed, err := hand.Operands()
	if err != nil {
		return nil, err
	}
	env := Env{Allowed: allowed}
	shapes := s.shapes(len(hand))
	goal := float64(target)

	solutions := []string{}
	seen := make(map[string]struct{})

	n := len(hand)
	nums := make([]float64, n)
	labels := make([]string, n)
	ops := make([]Op, n-1)

	for _, perm := range permutations(values) {
		for i, idx := range perm {
			nums[i] = float64(values[idx])
			labels[i] = string(hand[idx])
		}
		for _, combo := range opCombinations(n - 1) {
			for i, c := range combo {
				ops[i] = BasicOps[c]
			}
			for _, shape := range shapes {
				v, err := EvalNode(shape.Build(nums, ops), env)
				if err != nil || math.Abs(v-goal) >= Tolerance {
					continue
				}
				display := shape.Render(labels, ops)
				if _, ok := seen[display]; ok {
					continue
				}
				seen[display] = struct{}{}
				solutions = append(solutions, display)
				if len(solutions) >= maxSolutions {
					return solutions, nil
				}
			}
		}
	}
	return solutions, nil
}

// HasSolution 找到第一个解即返回
func (s *Solver) HasSolution(hand Hand, target int) (bool, error) {
	solutions, err := s.Solve(hand, target, 1)
	if err != nil {
		return false, err
	}
	return len(solutions) > 0, nil
}

// permutations 按位置的字典序生成全排列（返回下标），点数序列相同的排列只保留第一个
func permutations(values []int) [][]int {
	n := len(values)
	var out [][]int
	seen := make(map[string]struct{})
	used := make([]bool, n)
	cur := make([]int, 0, n)

	var rec func()
	rec = func() {
		if len(cur) == n {
			var key strings.Builder
			for _, idx := range cur {
				fmt.Fprintf(&key, "%d,", values[idx])
			}
			if _, ok := seen[key.String()]; ok {
				return
			}
			seen[key.String()] = struct{}{}
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, i)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}

// opCombinations 生成长度为 k 的运算符下标组合，最后一位变化最快
func opCombinations(k int) [][]int {
	total := 1
	for i := 0; i < k; i++ {
		total *= len(BasicOps)
	}
	out := make([][]int, 0, total)
	for t := 0; t < total; t++ {
		combo := make([]int, k)
		rest := t
		for i := k - 1; i >= 0; i-- {
			combo[i] = rest % len(BasicOps)
			rest /= len(BasicOps)
		}
		out = append(out, combo)
	}
	return out
}
