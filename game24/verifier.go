package game24

import (
	"math"
	"reflect"
)

// Verifier 校验玩家提交的表达式
type Verifier struct {
	strict bool
}

// VerifierOption 校验器选项
type VerifierOption func(*Verifier)

// WithStrictCardUse 要求手牌中每张牌恰好使用一次
func WithStrictCardUse() VerifierOption {
	return func(v *Verifier) { v.strict = true }
}

// NewVerifier 创建校验器
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultVerifier = NewVerifier()

// Verify 使用默认校验器
func Verify(expr string, hand Hand, target int) bool {
	return defaultVerifier.Verify(expr, hand, target)
}

// Verify 表达式中的牌面按手牌点数解析，通过白名单后结果与目标值相差小于容差即为正确。
// 任何错误都返回 false，不会 panic。
func (v *Verifier) Verify(expr string, hand Hand, target int) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	allowed, err := hand.Operands()
	if err != nil || len(allowed) == 0 {
		return false
	}
	tree, err := Parse(expr)
	if err != nil {
		return false
	}
	env := Env{Names: cardNames(), Allowed: allowed}
	result, err := EvalNode(tree, env)
	if err != nil {
		return false
	}
	if math.Abs(result-float64(target)) >= Tolerance {
		return false
	}
	if v.strict {
		return usesExactly(tree, env, hand)
	}
	return true
}

// usesExactly 表达式叶子的点数多重集合是否与手牌完全一致
func usesExactly(tree Node, env Env, hand Hand) bool {
	values, err := hand.Values()
	if err != nil {
		return false
	}
	want := make([]float64, len(values))
	for i, v := range values {
		want[i] = float64(v)
	}
	got := leafValues(tree, env, nil)
	return reflect.DeepEqual(sortedValues(got), sortedValues(want))
}

func leafValues(n Node, env Env, acc []float64) []float64 {
	switch n := n.(type) {
	case *Literal:
		return append(acc, n.Value)
	case *Name:
		return append(acc, env.Names[n.ID])
	case *Binary:
		return leafValues(n.Right, env, leafValues(n.Left, env, acc))
	case *Unary:
		return leafValues(n.X, env, acc)
	case *Call:
		for _, a := range n.Args {
			acc = leafValues(a, env, acc)
		}
	}
	return acc
}
