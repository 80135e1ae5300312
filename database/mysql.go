package database

import (
	"fmt"
	"time"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/config"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Client owns the database engine and, when configured, the SSH tunnel in
// front of it. Both are acquired together and released together.
type Client struct {
	DB     *gorm.DB
	tunnel *Tunnel
}

// NewClient opens the MySQL connection described by the system configuration,
// going through an SSH tunnel when SSH credentials are present.
func NewClient(sysConfigs *config.SystemConfigs) (*Client, error) {
	cfg := sysConfigs.Config

	var tunnel *Tunnel
	network := "tcp"
	if cfg.TunnelEnabled() {
		t, err := OpenTunnel(cfg.SSHHost, cfg.SSHUser, cfg.SSHPwd)
		if err != nil {
			return nil, err
		}
		tunnel = t
		network = TunnelNetwork
	}

	dsn := buildDSN(cfg, network)

	logLevel := gormlogger.Silent
	if cfg.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		tunnel.Close()
		return nil, fmt.Errorf("failed to connect to MySQL %s/%s: %w", cfg.DBHost, cfg.DBSchema, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tunnel.Close()
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		tunnel.Close()
		return nil, fmt.Errorf("could not ping MySQL: %w", err)
	}

	log.Info().Str("schema", cfg.DBSchema).Str("network", network).Msg("Connected to MySQL")

	return &Client{DB: db, tunnel: tunnel}, nil
}

// Close releases the connection pool first, then the tunnel it rides on.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if sqlDB, err := c.DB.DB(); err == nil {
		sqlDB.Close()
	}
	if err := c.tunnel.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close SSH tunnel")
	}
	log.Info().Msg("Database connection closed")
}

func buildDSN(cfg *model.EnvConfig, network string) string {
	return fmt.Sprintf(
		"%s:%s@%s(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPwd, network, cfg.DBHost, cfg.DBPort, cfg.DBSchema,
	)
}
