package game24

// Node 表达式语法树节点
type Node interface {
	node()
}

// Literal 数字字面量
type Literal struct {
	Value float64
}

// Name 标识符，如牌面 "A"、"K"
type Name struct {
	ID string
}

// Binary 二元运算
type Binary struct {
	Op          Op
	Left, Right Node
}

// Unary 一元正负号
type Unary struct {
	Op Op
	X  Node
}

// Call 函数调用
type Call struct {
	Func string
	Args []Node
}

func (*Literal) node() {}
func (*Name) node()    {}
func (*Binary) node()  {}
func (*Unary) node()   {}
func (*Call) node()    {}
