package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hungryangel/early-childhood-auto-doc/config"
	"github.com/hungryangel/early-childhood-auto-doc/internal/ai"
	"github.com/hungryangel/early-childhood-auto-doc/internal/api/handler"
	"github.com/hungryangel/early-childhood-auto-doc/internal/api/router"
	"github.com/hungryangel/early-childhood-auto-doc/internal/repository"
	"github.com/hungryangel/early-childhood-auto-doc/internal/service"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/database"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/kvstore"
	applogger "github.com/hungryangel/early-childhood-auto-doc/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级为内存键值存储，不中断启动）
	var kv kvstore.Store
	rdb, err := kvstore.NewRedis(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，日程模板与리포트 바구니改用内存存储", zap.Error(err))
		rdb = nil
		kv = kvstore.NewMemory()
	} else {
		kv = rdb
	}

	// 5. 初始化 Gemini 文本生成客户端
	ctx := context.Background()
	gen, err := ai.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal("Gemini 客户端初始化失败", zap.Error(err))
	}

	// 6. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, kv, gen, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, rdb, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // AI 生成接口耗时较长
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭外部连接
	gen.Close()
	if rdb != nil {
		rdb.Close()
	}
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	logger.Info("服务器已关闭")
}
