package game24

import "strings"

// Op 二元运算符
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "**"
)

// BasicOps 求解时使用的运算符，不含乘方
var BasicOps = []Op{OpAdd, OpSub, OpMul, OpDiv}

// Shape 一种括号组合（满二叉树），叶子没有子节点
type Shape struct {
	Left, Right *Shape
}

func leaf() *Shape { return &Shape{} }

func join(l, r *Shape) *Shape { return &Shape{Left: l, Right: r} }

// IsLeaf 是否为叶子
func (s *Shape) IsLeaf() bool { return s.Left == nil && s.Right == nil }

// Leaves 叶子数，即操作数个数
func (s *Shape) Leaves() int {
	if s.IsLeaf() {
		return 1
	}
	return s.Left.Leaves() + s.Right.Leaves()
}

// 精选括号组合。5 张牌只取 14 种中的 5 种，与线上版本保持一致
var curatedShapes = map[int][]*Shape{
	1: {leaf()},
	2: {join(leaf(), leaf())},
	3: {
		join(join(leaf(), leaf()), leaf()),
		join(leaf(), join(leaf(), leaf())),
	},
	4: {
		join(join(join(leaf(), leaf()), leaf()), leaf()),
		join(join(leaf(), leaf()), join(leaf(), leaf())),
		join(join(leaf(), join(leaf(), leaf())), leaf()),
		join(leaf(), join(join(leaf(), leaf()), leaf())),
		join(leaf(), join(leaf(), join(leaf(), leaf()))),
	},
	5: {
		join(join(join(join(leaf(), leaf()), leaf()), leaf()), leaf()),
		join(join(join(leaf(), leaf()), leaf()), join(leaf(), leaf())),
		join(join(leaf(), leaf()), join(join(leaf(), leaf()), leaf())),
		join(join(leaf(), join(leaf(), leaf())), join(leaf(), leaf())),
		join(leaf(), join(join(join(leaf(), leaf()), leaf()), leaf())),
	},
}

// Shapes 返回 n 个操作数的精选括号组合，n 不在 1~5 时返回 nil
func Shapes(n int) []*Shape {
	return curatedShapes[n]
}

// AllShapes 返回 n 个叶子的全部满二叉树（卡特兰数个）
func AllShapes(n int) []*Shape {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []*Shape{leaf()}
	}
	var out []*Shape
	for k := 1; k < n; k++ {
		for _, l := range AllShapes(k) {
			for _, r := range AllShapes(n - k) {
				out = append(out, join(l, r))
			}
		}
	}
	return out
}

// Render 按从左到右的顺序把操作数和运算符填入括号组合。
// 第 k 个运算符对应中序遍历的第 k 个内部节点。
func (s *Shape) Render(operands []string, ops []Op) string {
	var b strings.Builder
	li, oi := 0, 0
	var walk func(n *Shape, root bool)
	walk = func(n *Shape, root bool) {
		if n.IsLeaf() {
			b.WriteString(operands[li])
			li++
			return
		}
		// 两个叶子直接相连的根节点不加括号，如 "a + b"
		paren := !(root && n.Left.IsLeaf() && n.Right.IsLeaf())
		if paren {
			b.WriteByte('(')
		}
		walk(n.Left, false)
		b.WriteByte(' ')
		b.WriteString(string(ops[oi]))
		oi++
		b.WriteByte(' ')
		walk(n.Right, false)
		if paren {
			b.WriteByte(')')
		}
	}
	walk(s, true)
	return b.String()
}

// Build 按与 Render 相同的顺序构造语法树
func (s *Shape) Build(values []float64, ops []Op) Node {
	li, oi := 0, 0
	var walk func(n *Shape) Node
	walk = func(n *Shape) Node {
		if n.IsLeaf() {
			v := values[li]
			li++
			return &Literal{Value: v}
		}
		l := walk(n.Left)
		op := ops[oi]
		oi++
		r := walk(n.Right)
		return &Binary{Op: op, Left: l, Right: r}
	}
	return walk(s)
}

// Expressions 返回给定操作数与运算符在每种精选括号组合下的表达式字符串。
// 只做拼接，不求值。
func Expressions(operands []string, ops []Op) []string {
	if len(operands) == 0 || len(ops) != len(operands)-1 {
		return nil
	}
	shapes := Shapes(len(operands))
	out := make([]string, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, s.Render(operands, ops))
	}
	return out
}
