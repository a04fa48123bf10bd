package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card24/config"
	"card24/controller"
	"card24/game24"
	"card24/middleware"
	"card24/repository"
	"card24/router"
	"card24/service"
	"card24/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP / WebSocket 服务",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				ctx.cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), ctx.cfg, ctx.engine(false, false), ctx.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "监听地址，覆盖配置中的 server.addr")
	return cmd
}

// newGameStore 启用 Redis 时使用 Redis，否则使用进程内存储
func newGameStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.GameStore, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("未启用 Redis，使用内存存储")
		return repository.NewMemoryGameStore(), func() {}, nil
	}
	rdb, err := repository.InitRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	log.Info("✅ Redis 连接成功", zap.String("addr", cfg.Redis.Addr))
	return repository.NewRedisGameStore(rdb), func() { rdb.Close() }, nil
}

// newHTTPHandler 组装 gin 引擎
func newHTTPHandler(cfg *config.Config, engine *game24.Engine, store repository.GameStore, log *zap.Logger) http.Handler {
	svc := service.NewGameService(engine, store, cfg.Game.SessionTTL, log)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.ZapLogger(log), middleware.Recovery(log))

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r, controller.NewGame24Controller(svc), ws.NewHub(engine, log))
	return r
}

func serve(parent context.Context, cfg *config.Config, engine *game24.Engine, log *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	store, closeStore, err := newGameStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHTTPHandler(cfg, engine, store, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("服务启动", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		log.Info("收到退出信号，正在关闭服务")
	case err := <-errChan:
		if err != nil {
			log.Error("服务异常退出", zap.Error(err))
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("服务已停止")
	return nil
}
