package game24

import "fmt"

const (
	// MaxExpressionLength 表达式最大字节数
	MaxExpressionLength = 256
	// MaxNestingDepth 最大嵌套层数
	MaxNestingDepth = 64
)

// 文法：
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('**' unary)?
//	primary := NUMBER | IDENT | IDENT '(' args? ')' | '(' expr ')'
//	args    := expr (',' expr)*
type parser struct {
	toks  []token
	pos   int
	depth int
}

// Parse 把表达式解析为语法树，只做语法检查，不做白名单校验
func Parse(src string) (Node, error) {
	if len(src) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: 表达式过长", ErrSyntax)
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: 位置 %d 多余的 %q", ErrSyntax, t.pos, t.text)
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(texts ...string) bool {
	t := p.peek()
	if t.kind != tokOp {
		return false
	}
	for _, s := range texts {
		if t.text == s {
			return true
		}
	}
	return false
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return fmt.Errorf("%w: 嵌套过深", ErrSyntax)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) expr() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+", "-") {
		op := Op(p.next().text)
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.isOp("*", "/") {
		op := Op(p.next().text)
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) unary() (Node, error) {
	if p.isOp("+", "-") {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		op := Op(p.next().text)
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, X: x}, nil
	}
	return p.power()
}

// power 右结合，且比左侧的一元负号优先：-2**2 == -4
func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.isOp("**") {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.next()
		exp, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: OpPow, Left: base, Right: exp}, nil
	}
	return base, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &Literal{Value: t.value}, nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			p.next()
			args, err := p.args()
			if err != nil {
				return nil, err
			}
			return &Call{Func: t.text, Args: args}, nil
		}
		return &Name{ID: t.text}, nil
	case tokLParen:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if r := p.next(); r.kind != tokRParen {
			return nil, fmt.Errorf("%w: 位置 %d 缺少右括号", ErrSyntax, r.pos)
		}
		return n, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: 表达式意外结束", ErrSyntax)
	}
	return nil, fmt.Errorf("%w: 位置 %d 意外的 %q", ErrSyntax, t.pos, t.text)
}

// args 在已消费左括号之后解析参数列表和右括号
func (p *parser) args() ([]Node, error) {
	var args []Node
	if p.peek().kind == tokRParen {
		p.next()
		return args, nil
	}
	for {
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch t := p.next(); t.kind {
		case tokComma:
			continue
		case tokRParen:
			return args, nil
		default:
			return nil, fmt.Errorf("%w: 位置 %d 参数列表未闭合", ErrSyntax, t.pos)
		}
	}
}
