package routes

import (
	"github.com/thomas-choi/myFinance-dashboard-fastserver/config"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/controller"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/database"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/middleware"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/repository"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(db *database.Client, cfg *config.SystemConfigs) (*gin.Engine, error) {
	r := gin.New()

	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimiter(cfg))

	// --- 1. Repositories ---
	tradingRepo := repository.NewTradingRepository(db.DB, cfg.Config.DBSchema)

	// --- 2. Services (Dependency Injection) ---
	tradingSvc := service.NewTradingService(tradingRepo)
	chatSvc, err := service.NewChatService(cfg.Config.ChatHistoryPath)
	if err != nil {
		return nil, err
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 3. Routes & Controllers ---
	healthCtrl := controller.NewHealthController()
	healthCtrl.RegisterRootRoutes(r)

	api := r.Group("/api")
	{
		// Health Check
		healthCtrl.RegisterRoutes(api)

		// Options Monitor Endpoints
		controller.NewTradingController(tradingSvc).RegisterRoutes(api)

		// Chat History Endpoints
		controller.NewChatController(chatSvc).RegisterRoutes(api)
	}

	return r, nil
}
