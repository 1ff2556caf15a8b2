package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/bootstrap"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/config"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/controller"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/router"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/task"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
)

// @title PhoneWraps Admin API
// @version 1.0
// @description PhoneWraps 店铺管理后台：商品目录、订单、优惠券、博客与首页内容
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if err := bootstrap.InitLogger(cfg); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// 2. 初始化依赖
	deps, err := bootstrap.Build(cfg)
	if err != nil {
		logger.L().Fatal("初始化依赖失败", zap.Error(err))
	}
	defer deps.Close()

	// 3. 启动定时任务
	tasks := initTasks(deps)
	defer tasks.Stop()

	// 4. 初始化路由
	gin.SetMode(cfg.Server.Mode)
	r := router.SetupRouter(deps.Services.Auth, initControllers(deps.Services))

	// 5. 启动服务
	startServer(r, cfg.Server.Port)
}

// initControllers 初始化所有控制器
func initControllers(svc *bootstrap.Services) *router.Controllers {
	return &router.Controllers{
		Admin:       controller.NewAdminController(svc.Auth, svc.Audit),
		Catalog:     controller.NewCatalogController(svc.Catalog),
		Product:     controller.NewProductController(svc.Product),
		Order:       controller.NewOrderController(svc.Order),
		Coupon:      controller.NewCouponController(svc.Coupon),
		Blog:        controller.NewBlogController(svc.Blog),
		DesignAsset: controller.NewDesignAssetController(svc.DesignAsset),
		PhoneBrand:  controller.NewPhoneBrandController(svc.PhoneBrand),
		HomeContent: controller.NewHomeContentController(svc.HomeContent),
		User:        controller.NewUserController(svc.User),
	}
}

// ==================== 定时任务 ====================

// initTasks 会话清理与审计日志保留
func initTasks(deps *bootstrap.Dependencies) *task.TaskManager {
	tm := task.NewTaskManager(&task.TaskManagerDeps{
		Sessions: deps.Services.Auth,
		Audit:    deps.Services.Audit,
	}, &task.TaskManagerConfig{
		SessionCleanupCron: deps.Config.Session.CleanupCron,
		AuditCleanupCron:   deps.Config.Audit.CleanupCron,
		AuditRetentionDays: deps.Config.Audit.RetentionDays,
		JobTimeout:         time.Minute,
	})
	if err := tm.Start(); err != nil {
		logger.L().Fatal("无法启动定时任务", zap.Error(err))
	}

	// 首次执行，清掉上次运行遗留的过期会话
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = tm.TriggerSessionCleanup(ctx)
	}()
	return tm
}

// ==================== 服务启动 ====================

// startServer 启动服务并等待退出信号
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 异步启动服务
	go func() {
		logger.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("服务强制关闭", zap.Error(err))
		return
	}

	logger.L().Info("服务已退出")
}
