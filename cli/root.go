package cli

import (
	"fmt"

	"card24/config"
	"card24/game24"
	"card24/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// commandContext 各子命令共享的配置和日志
type commandContext struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

func (c *commandContext) engine(exhaustive, strict bool) *game24.Engine {
	g := c.cfg.Game
	return game24.NewEngine(game24.EngineConfig{
		MaxSolutions:     g.MaxSolutions,
		PreviewSolutions: g.PreviewSolutions,
		MaxAttempts:      g.MaxAttempts,
		ExhaustiveShapes: g.ExhaustiveShapes || exhaustive,
		StrictVerify:     g.StrictVerify || strict,
	})
}

// NewRootCommand 构建 card24 命令树
func NewRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "card24",
		Short:         "24 点游戏服务与求解工具",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(ctx.configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			ctx.cfg, ctx.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ctx.log != nil {
				_ = ctx.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "config.yaml", "配置文件路径")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newSolveCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newDealCommand(ctx))

	return rootCmd
}

// Execute 运行命令行
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("card24: %w", err)
	}
	return nil
}
