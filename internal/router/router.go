package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/controller"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/middleware"

	_ "github.com/Sumeet011/Phone-Wraps-Admin-Pannel/docs"
)

const (
	loginCooldown = 2 * time.Second
	resetCooldown = 10 * time.Second

	maxMultipartMemory = 16 << 20
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Admin       *controller.AdminController
	Catalog     *controller.CatalogController
	Product     *controller.ProductController
	Order       *controller.OrderController
	Coupon      *controller.CouponController
	Blog        *controller.BlogController
	DesignAsset *controller.DesignAssetController
	PhoneBrand  *controller.PhoneBrandController
	HomeContent *controller.HomeContentController
	User        *controller.UserController
}

// SetupRouter 创建引擎，挂载公共中间件并注册路由
func SetupRouter(resolver middleware.SessionResolver, ctl *Controllers) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	InitRoutes(r, resolver, ctl)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, resolver middleware.SessionResolver, ctl *Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.NewCooldownLimiter()

	api := r.Group("/api")

	// 2. 公开接口
	// POST /api/admin/login
	api.POST("/admin/login", middleware.Cooldown(limiter, "login", loginCooldown), ctl.Admin.Login)

	// 3. 需要会话的接口
	auth := api.Group("", middleware.SessionAuth(resolver))
	{
		admin := auth.Group("/admin")
		{
			admin.POST("/logout", ctl.Admin.Logout)
			admin.GET("/session", ctl.Admin.Session)
			admin.GET("/audit-logs", ctl.Admin.AuditLogs)
			admin.GET("/audit-logs/stats", ctl.Admin.AuditStats)
		}

		// 商品目录
		auth.GET("/catalog", ctl.Catalog.Overview)
		collections := auth.Group("/collections")
		{
			collections.GET("", ctl.Catalog.ListCollections)
			collections.POST("", ctl.Catalog.CreateCollection)
			collections.PATCH("/:id", ctl.Catalog.UpdateCollection)
			collections.DELETE("/:id", ctl.Catalog.DeleteCollection)
		}
		groups := auth.Group("/groups")
		{
			groups.GET("", ctl.Catalog.ListGroups)
			groups.POST("", ctl.Catalog.CreateGroup)
			groups.POST("/:id/collections", ctl.Catalog.AddCollectionToGroup)
			groups.DELETE("/:id", ctl.Catalog.DeleteGroup)
		}
		products := auth.Group("/products")
		{
			products.GET("/form", ctl.Product.FormOptions)
			products.POST("", ctl.Product.Create)
			products.PATCH("/:id", ctl.Product.Update)
			products.DELETE("/:id", ctl.Product.Delete)
		}

		// 订单
		orders := auth.Group("/orders")
		{
			orders.GET("", ctl.Order.List)
			orders.GET("/:id", ctl.Order.Get)
			orders.PUT("/:id/status", ctl.Order.UpdateStatus)
			orders.PUT("/:id/tracking", ctl.Order.UpdateTracking)
			orders.PUT("/:id/return", ctl.Order.Return)
			orders.DELETE("/:id", ctl.Order.Delete)
		}

		coupons := auth.Group("/coupons")
		{
			coupons.GET("", ctl.Coupon.List)
			coupons.POST("", ctl.Coupon.Create)
			coupons.PUT("/:id", ctl.Coupon.Update)
			coupons.DELETE("/:id", ctl.Coupon.Delete)
		}

		blogs := auth.Group("/blogs")
		{
			blogs.GET("", ctl.Blog.List)
			blogs.POST("", ctl.Blog.Create)
			blogs.PUT("/:id", ctl.Blog.Update)
			blogs.DELETE("/:id", ctl.Blog.Delete)
		}

		assets := auth.Group("/design-assets")
		{
			assets.GET("", ctl.DesignAsset.List)
			assets.GET("/gallery/:category", ctl.DesignAsset.Gallery)
			assets.POST("", ctl.DesignAsset.Create)
			assets.PUT("/:id", ctl.DesignAsset.Update)
			assets.DELETE("/:id", ctl.DesignAsset.Delete)
		}

		brands := auth.Group("/phone-brands")
		{
			brands.GET("", ctl.PhoneBrand.List)
			brands.POST("", ctl.PhoneBrand.Create)
			brands.PUT("/:id", ctl.PhoneBrand.Update)
			brands.DELETE("/:id", ctl.PhoneBrand.Delete)
			brands.POST("/:id/models", ctl.PhoneBrand.AddModel)
			brands.DELETE("/:id/models/:modelName", ctl.PhoneBrand.RemoveModel)
			brands.PATCH("/:id/toggle-status", ctl.PhoneBrand.ToggleStatus)
		}

		// 首页内容
		auth.GET("/tooltips", ctl.HomeContent.Tooltips)
		auth.PUT("/tooltips", ctl.HomeContent.SaveTooltips)
		auth.GET("/settings", ctl.HomeContent.Settings)
		auth.PUT("/settings", ctl.HomeContent.SaveSettings)
		auth.POST("/settings/reset", middleware.Cooldown(limiter, "settings_reset", resetCooldown), ctl.HomeContent.ResetSettings)

		featured := auth.Group("/featured-products")
		{
			featured.GET("", ctl.HomeContent.Featured)
			featured.POST("", ctl.HomeContent.CreateFeatured)
			featured.PUT("/:id", ctl.HomeContent.UpdateFeatured)
			featured.DELETE("/:id", ctl.HomeContent.DeleteFeatured)
		}
		suggested := auth.Group("/suggested-products")
		{
			suggested.GET("", ctl.HomeContent.Suggested)
			suggested.POST("", ctl.HomeContent.CreateSuggested)
			suggested.PUT("/:id", ctl.HomeContent.UpdateSuggested)
			suggested.DELETE("/:id", ctl.HomeContent.DeleteSuggested)
		}

		auth.GET("/users", ctl.User.Report)
	}
}
