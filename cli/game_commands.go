package cli

import (
	"errors"
	"fmt"
	"strconv"

	"card24/game24"

	"github.com/spf13/cobra"
)

// ErrIncorrect verify 命令答案错误时返回，进程以非零状态退出
var ErrIncorrect = errors.New("答案错误")

func newSolveCommand(ctx *commandContext) *cobra.Command {
	var target, maxSolutions int
	var exhaustive bool

	cmd := &cobra.Command{
		Use:   "solve CARD...",
		Short: "求出手牌凑成目标值的算式",
		Args:  cobra.RangeArgs(1, game24.MaxHandSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := game24.ParseHand(args)
			if err != nil {
				return err
			}
			res, err := ctx.engine(exhaustive, false).SolveUpTo(hand, target, maxSolutions)
			if err != nil {
				return err
			}
			solutions := res.Solutions

			out := cmd.OutOrStdout()
			if len(solutions) == 0 {
				fmt.Fprintf(out, "%s 无法凑出 %d\n", hand, target)
				return nil
			}
			rows := make([][]string, len(solutions))
			for i, s := range solutions {
				rows[i] = []string{strconv.Itoa(i + 1), s}
			}
			fmt.Fprintf(out, "%s => %d\n", hand, target)
			fmt.Fprintln(out, renderTable([]string{"#", "算式"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&target, "target", "t", 24, "目标值")
	cmd.Flags().IntVarP(&maxSolutions, "max", "n", 0, "最多输出的解数，默认取配置")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "使用全部括号组合")
	return cmd
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var target int
	var strict bool

	cmd := &cobra.Command{
		Use:   "verify EXPRESSION CARD...",
		Short: "校验算式是否用手牌凑出目标值",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := game24.ParseHand(args[1:])
			if err != nil {
				return err
			}
			if !ctx.engine(false, strict).Verify(args[0], hand, target) {
				fmt.Fprintf(cmd.OutOrStdout(), "错误: %s ≠ %d\n", args[0], target)
				return ErrIncorrect
			}
			fmt.Fprintf(cmd.OutOrStdout(), "正确: %s = %d\n", args[0], target)
			return nil
		},
	}

	cmd.Flags().IntVarP(&target, "target", "t", 24, "目标值")
	cmd.Flags().BoolVar(&strict, "strict", false, "要求每张牌恰好使用一次")
	return cmd
}

func newDealCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var solvable bool

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "随机发一手牌",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := game24.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			deal, err := ctx.engine(false, false).NewGame(mode, solvable)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s => %d\n", deal.Cards, deal.Target)
			if !deal.HasSolution {
				fmt.Fprintln(out, "（无解）")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "24", "模式：24 或 60")
	cmd.Flags().BoolVar(&solvable, "solvable", false, "只发有解的牌")
	return cmd
}
