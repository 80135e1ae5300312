package middleware

import (
	"time"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.SystemConfigs) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.Config.FrontendUrls,

		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},

		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
		},

		ExposeHeaders: []string{"Content-Length"},

		AllowCredentials: true,

		// How long the browser should cache the CORS preflight (OPTIONS) response
		MaxAge: 12 * time.Hour,
	})
}
