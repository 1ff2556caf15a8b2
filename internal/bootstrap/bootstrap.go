package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/config"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/middleware"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/database"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// ==================== 依赖容器 ====================

// Dependencies 服务端与 CLI 共用的依赖
type Dependencies struct {
	Config     *config.Config
	DB         *gorm.DB
	Dispatcher net.Dispatcher
	Repos      *Repositories
	Services   *Services
}

// Repositories 仓库集合
type Repositories struct {
	// 本地
	Session  repository.SessionRepository
	AuditLog repository.AuditLogRepository

	// 店铺后端
	Auth        repository.AuthRepository
	Catalog     repository.CatalogRepository
	Order       repository.OrderRepository
	Coupon      repository.CouponRepository
	Blog        repository.BlogRepository
	DesignAsset repository.DesignAssetRepository
	PhoneBrand  repository.PhoneBrandRepository
	HomeContent repository.HomeContentRepository
	User        repository.UserRepository
}

// Services 服务集合
type Services struct {
	Audit       *service.AuditService
	Auth        *service.AuthService
	Catalog     *service.CatalogService
	Product     *service.ProductService
	Order       *service.OrderService
	Coupon      *service.CouponService
	Blog        *service.BlogService
	DesignAsset *service.DesignAssetService
	PhoneBrand  *service.PhoneBrandService
	HomeContent *service.HomeContentService
	User        *service.UserService
}

// ==================== 初始化函数 ====================

// InitLogger 按配置初始化全局日志
func InitLogger(cfg *config.Config) error {
	if _, err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	return nil
}

// Build 连接数据库并组装全部依赖
func Build(cfg *config.Config) (*Dependencies, error) {
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenTTL: cfg.JWT.AccessTTL,
		Issuer:         cfg.JWT.Issuer,
	})

	db, err := database.InitDB(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	}, &model.Session{}, &model.AuditLog{})
	if err != nil {
		return nil, err
	}

	dispatcher := net.NewClient(net.ClientConfig{
		BaseURL:       cfg.Backend.URL,
		Timeout:       cfg.Backend.Timeout,
		RatePerMinute: cfg.Backend.RatePerMinute,
		Debug:         cfg.Log.Development,
	})

	repos := initRepositories(db, dispatcher)
	services := initServices(repos, cfg)

	logger.L().Info("依赖初始化完成", zap.String("backend", cfg.Backend.URL))

	return &Dependencies{
		Config:     cfg,
		DB:         db,
		Dispatcher: dispatcher,
		Repos:      repos,
		Services:   services,
	}, nil
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB, d net.Dispatcher) *Repositories {
	return &Repositories{
		Session:  repository.NewSessionRepository(db),
		AuditLog: repository.NewAuditLogRepository(db),

		Auth:        repository.NewAuthRepository(d),
		Catalog:     repository.NewCatalogRepository(d),
		Order:       repository.NewOrderRepository(d),
		Coupon:      repository.NewCouponRepository(d),
		Blog:        repository.NewBlogRepository(d),
		DesignAsset: repository.NewDesignAssetRepository(d),
		PhoneBrand:  repository.NewPhoneBrandRepository(d),
		HomeContent: repository.NewHomeContentRepository(d),
		User:        repository.NewUserRepository(d),
	}
}

// initServices 初始化所有服务
func initServices(r *Repositories, cfg *config.Config) *Services {
	audit := service.NewAuditService(r.AuditLog)
	return &Services{
		Audit:       audit,
		Auth:        service.NewAuthService(r.Auth, r.Session, audit, cfg.Session.TTL),
		Catalog:     service.NewCatalogService(r.Catalog, audit),
		Product:     service.NewProductService(r.Catalog, audit),
		Order:       service.NewOrderService(r.Order, audit),
		Coupon:      service.NewCouponService(r.Coupon, audit),
		Blog:        service.NewBlogService(r.Blog, audit),
		DesignAsset: service.NewDesignAssetService(r.DesignAsset, audit),
		PhoneBrand:  service.NewPhoneBrandService(r.PhoneBrand, audit),
		HomeContent: service.NewHomeContentService(r.HomeContent, audit),
		User:        service.NewUserService(r.User),
	}
}

// Close 关闭数据库连接
func (d *Dependencies) Close() {
	if d.DB == nil {
		return
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
