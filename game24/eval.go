package game24

import (
	"fmt"
	"math"
)

// Env 求值环境：标识符绑定与允许出现的数字
type Env struct {
	Names   map[string]float64
	Allowed OperandSet
}

// 允许调用的函数及其参数个数
var allowedFuncs = map[string]int{
	"sqrt": 1,
	"pow":  2,
}

// Validate 递归检查语法树，白名单以外的任何结构都返回 ErrRejected
func Validate(n Node, env Env) error {
	switch n := n.(type) {
	case *Literal:
		if !env.Allowed.Contains(n.Value) {
			return fmt.Errorf("%w: 数字 %v 不在手牌中", ErrRejected, n.Value)
		}
		return nil
	case *Name:
		v, ok := env.Names[n.ID]
		if !ok {
			return fmt.Errorf("%w: 不允许的名称 %q", ErrRejected, n.ID)
		}
		if !env.Allowed.Contains(v) {
			return fmt.Errorf("%w: %s 不在手牌中", ErrRejected, n.ID)
		}
		return nil
	case *Binary:
		switch n.Op {
		case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		default:
			return fmt.Errorf("%w: 不允许的运算符 %q", ErrRejected, n.Op)
		}
		if err := Validate(n.Left, env); err != nil {
			return err
		}
		return Validate(n.Right, env)
	case *Unary:
		if n.Op != OpAdd && n.Op != OpSub {
			return fmt.Errorf("%w: 不允许的一元运算符 %q", ErrRejected, n.Op)
		}
		return Validate(n.X, env)
	case *Call:
		arity, ok := allowedFuncs[n.Func]
		if !ok {
			return fmt.Errorf("%w: 不允许调用 %q", ErrRejected, n.Func)
		}
		if len(n.Args) != arity {
			return fmt.Errorf("%w: %s 需要 %d 个参数", ErrRejected, n.Func, arity)
		}
		for _, a := range n.Args {
			if err := Validate(a, env); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: 未知节点 %T", ErrRejected, n)
}

// EvalNode 先校验再计算，校验失败时不会执行任何计算
func EvalNode(n Node, env Env) (float64, error) {
	if err := Validate(n, env); err != nil {
		return 0, err
	}
	v, err := eval(n, env)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Evaluate 安全地计算数字表达式，只允许 allowed 中的数字
func Evaluate(expr string, allowed OperandSet) (float64, error) {
	return EvaluateEnv(expr, Env{Allowed: allowed})
}

// EvaluateEnv 同 Evaluate，额外允许 env.Names 中的标识符
func EvaluateEnv(expr string, env Env) (float64, error) {
	n, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return EvalNode(n, env)
}

func checked(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: 结果不是有限数", ErrEvaluation)
	}
	return v, nil
}

func eval(n Node, env Env) (float64, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil
	case *Name:
		return env.Names[n.ID], nil
	case *Unary:
		x, err := eval(n.X, env)
		if err != nil {
			return 0, err
		}
		if n.Op == OpSub {
			return -x, nil
		}
		return x, nil
	case *Binary:
		l, err := eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return checked(l + r)
		case OpSub:
			return checked(l - r)
		case OpMul:
			return checked(l * r)
		case OpDiv:
			if r == 0 {
				return 0, fmt.Errorf("%w: 除数为零", ErrEvaluation)
			}
			return checked(l / r)
		case OpPow:
			return power(l, r)
		}
	case *Call:
		args := make([]float64, len(n.Args))
		for i, a := range n.Args {
			v, err := eval(a, env)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		switch n.Func {
		case "sqrt":
			if args[0] < 0 {
				return 0, fmt.Errorf("%w: 负数开方", ErrEvaluation)
			}
			return checked(math.Sqrt(args[0]))
		case "pow":
			return power(args[0], args[1])
		}
	}
	return 0, fmt.Errorf("%w: 无法计算 %T", ErrEvaluation, n)
}

func power(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, fmt.Errorf("%w: 零的负数次幂", ErrEvaluation)
	}
	return checked(math.Pow(base, exp))
}
