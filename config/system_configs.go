package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the environment (optionally seeded from a .env file) into
// the runtime configuration. Every setting has a local-development default so
// the server can boot against a plain localhost MySQL.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	cfg := &model.EnvConfig{
		Port:        getEnv("APP_PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Debug:       getEnvBool("DEBUG", false),
		RateLimiter: getEnvBool("RATE_LIMITER", false),

		DBHost:   getEnv("DBHOST", "localhost"),
		DBPort:   getEnvInt("DBPORT", 3306),
		DBUser:   getEnv("DBUSER", "root"),
		DBPwd:    getEnv("DBPWD", ""),
		DBSchema: getEnv("DBMKTDATA", "GlobalMarketData"),

		SSHHost: getEnv("SSHHOST", ""),
		SSHUser: getEnv("SSHUSR", ""),
		SSHPwd:  getEnv("SSHPWD", ""),

		ChatHistoryPath: getEnv("CHAT_HISTORY_PATH", "./chat_history"),
		FrontendUrls:    getEnvList("FRONTEND_URLS", []string{"http://localhost:3000"}),
	}

	return &SystemConfigs{Config: cfg}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	if len(list) == 0 {
		return fallback
	}
	return list
}
