package game24

import "card24/utils"

// Deal 一局新游戏
type Deal struct {
	Mode        Mode
	Cards       Hand
	Target      int
	HasSolution bool
	Solutions   []string
}

// Result 求解结果
type Result struct {
	Solutions   []string
	HasSolution bool
}

// EngineConfig 引擎参数，零值字段使用默认值
type EngineConfig struct {
	MaxSolutions     int
	PreviewSolutions int
	MaxAttempts      int
	ExhaustiveShapes bool
	StrictVerify     bool
	Seed             uint64
}

// Engine 对外提供新游戏、校验答案、求解三个操作
type Engine struct {
	cfg      EngineConfig
	solver   *Solver
	verifier *Verifier
	gen      *Generator
}

// NewEngine 创建引擎，Seed 为 0 时以当前时间为种子
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.MaxSolutions <= 0 {
		cfg.MaxSolutions = DefaultMaxSolutions
	}
	if cfg.PreviewSolutions <= 0 {
		cfg.PreviewSolutions = 3
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	var solverOpts []SolverOption
	if cfg.ExhaustiveShapes {
		solverOpts = append(solverOpts, WithExhaustiveShapes())
	}
	var verifierOpts []VerifierOption
	if cfg.StrictVerify {
		verifierOpts = append(verifierOpts, WithStrictCardUse())
	}

	solver := NewSolver(solverOpts...)
	gen := NewRandomGenerator(solver)
	if cfg.Seed != 0 {
		gen = NewGenerator(cfg.Seed, solver)
	}
	return &Engine{
		cfg:      cfg,
		solver:   solver,
		verifier: NewVerifier(verifierOpts...),
		gen:      gen,
	}
}

// NewGame 按模式发牌并附带前几个解
func (e *Engine) NewGame(mode Mode, onlySolvable bool) (Deal, error) {
	n, target := mode.CardCount(), mode.Target()
	var hand Hand
	if onlySolvable {
		hand = e.gen.DealSolvable(n, target, e.cfg.MaxAttempts)
	} else {
		hand = e.gen.Deal(n)
	}
	res, err := e.Solutions(hand, target)
	if err != nil {
		return Deal{}, err
	}
	return Deal{
		Mode:        mode,
		Cards:       hand,
		Target:      target,
		HasSolution: res.HasSolution,
		Solutions:   utils.SafeSlice(res.Solutions, e.cfg.PreviewSolutions),
	}, nil
}

// Verify 校验答案，不会返回错误
func (e *Engine) Verify(expr string, hand Hand, target int) bool {
	return e.verifier.Verify(expr, hand, target)
}

// Solutions 求解，最多返回配置的解数
func (e *Engine) Solutions(hand Hand, target int) (Result, error) {
	return e.SolveUpTo(hand, target, 0)
}

// SolveUpTo 同 Solutions，maxSolutions 不大于 0 时取配置值
func (e *Engine) SolveUpTo(hand Hand, target, maxSolutions int) (Result, error) {
	if maxSolutions <= 0 {
		maxSolutions = e.cfg.MaxSolutions
	}
	solutions, err := e.solver.Solve(hand, target, maxSolutions)
	if err != nil {
		return Result{}, err
	}
	return Result{Solutions: solutions, HasSolution: len(solutions) > 0}, nil
}
