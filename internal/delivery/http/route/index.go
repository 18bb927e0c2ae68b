package route

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Brandon-S-Engineer/Freelance-1-Back-End/docs"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/assets"
	httpHandler "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/delivery/http/handler"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/delivery/http/middleware"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"
	utils "github.com/Brandon-S-Engineer/Freelance-1-Back-End/pkg"
)

// SetupRoute wires repositories, services and handlers onto the engine. Every
// mutating route passes through the auth middleware first and the ownership
// guard inside the service after it; store-scoped reads are public, matching
// the storefront consumers.
func SetupRoute(app *gin.Engine, db *mongo.Database, tokens *utils.TokenManager, destroyer assets.Destroyer) {
	// --- Repositories ---
	userRepo := repo.NewUserRepository(db)
	storeRepo := repo.NewStoreRepository(db)
	billboardRepo := repo.NewBillboardRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	sizeRepo := repo.NewSizeRepository(db)
	colorRepo := repo.NewColorRepository(db)
	productRepo := repo.NewProductRepository(db)
	orderRepo := repo.NewOrderRepository(db)

	// --- Services ---
	guard := service.NewGuard(storeRepo)
	authService := service.NewAuthService(userRepo, tokens)
	storeService := service.NewStoreService(guard, storeRepo)
	billboardService := service.NewBillboardService(guard, billboardRepo, categoryRepo, destroyer)
	categoryService := service.NewCategoryService(guard, categoryRepo, billboardRepo, productRepo)
	sizeService := service.NewAttributeService(guard, sizeRepo, productRepo, repo.ProductSizeRef)
	colorService := service.NewAttributeService(guard, colorRepo, productRepo, repo.ProductColorRef)
	productService := service.NewProductService(guard, productRepo, categoryRepo, sizeRepo, colorRepo, destroyer)
	orderService := service.NewOrderService(guard, orderRepo, productRepo)

	// --- Handlers ---
	authHandler := httpHandler.NewAuthHandler(authService)
	storeHandler := httpHandler.NewStoreHandler(storeService)
	billboardHandler := httpHandler.NewBillboardHandler(billboardService)
	categoryHandler := httpHandler.NewCategoryHandler(categoryService)
	sizeHandler := httpHandler.NewSizeHandler(sizeService)
	colorHandler := httpHandler.NewColorHandler(colorService)
	productHandler := httpHandler.NewProductHandler(productService)
	orderHandler := httpHandler.NewOrderHandler(orderService)

	authRequired := middleware.AuthRequired(tokens)

	app.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(0),
	))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/profile", authRequired, authHandler.Profile)

	stores := api.Group("/stores", authRequired)
	stores.POST("", storeHandler.Create)
	stores.GET("", storeHandler.List)
	stores.GET("/:storeId", storeHandler.Get)
	stores.PATCH("/:storeId", storeHandler.Update)
	stores.DELETE("/:storeId", storeHandler.Delete)

	scoped := api.Group("/:storeId")

	billboards := scoped.Group("/billboards")
	billboards.GET("", billboardHandler.List)
	billboards.GET("/:billboardId", billboardHandler.Get)
	billboards.POST("", authRequired, billboardHandler.Create)
	billboards.PATCH("/:billboardId", authRequired, billboardHandler.Update)
	billboards.DELETE("/:billboardId", authRequired, billboardHandler.Delete)

	categories := scoped.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:categoryId", categoryHandler.Get)
	categories.POST("", authRequired, categoryHandler.Create)
	categories.PATCH("/:categoryId", authRequired, categoryHandler.Update)
	categories.DELETE("/:categoryId", authRequired, categoryHandler.Delete)

	sizes := scoped.Group("/sizes")
	sizes.GET("", sizeHandler.List)
	sizes.GET("/:sizeId", sizeHandler.Get)
	sizes.POST("", authRequired, sizeHandler.Create)
	sizes.PATCH("/:sizeId", authRequired, sizeHandler.Update)
	sizes.DELETE("/:sizeId", authRequired, sizeHandler.Delete)

	colors := scoped.Group("/colors")
	colors.GET("", colorHandler.List)
	colors.GET("/:colorId", colorHandler.Get)
	colors.POST("", authRequired, colorHandler.Create)
	colors.PATCH("/:colorId", authRequired, colorHandler.Update)
	colors.DELETE("/:colorId", authRequired, colorHandler.Delete)

	products := scoped.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:productId", productHandler.Get)
	products.POST("", authRequired, productHandler.Create)
	products.PATCH("/:productId", authRequired, productHandler.Update)
	products.DELETE("/:productId", authRequired, productHandler.Delete)

	orders := scoped.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:orderId", orderHandler.Get)
	orders.PATCH("/:orderId", orderHandler.Update)
	orders.DELETE("/:orderId", orderHandler.Delete)
}
