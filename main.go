package main

import (
	"github.com/thomas-choi/myFinance-dashboard-fastserver/config"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/database"
	_ "github.com/thomas-choi/myFinance-dashboard-fastserver/docs"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Finance Dashboard API
// @version      1.0
// @description  Trading options monitor and chat history server.
// @BasePath     /api
func main() {
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Msg("Starting Finance Dashboard API Server...")

	db, err := database.NewClient(sysConfigs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	router, err := routes.SetupRouter(db, sysConfigs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up router")
	}

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8000"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
