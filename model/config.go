package model

// --- SYSTEM CONFIG ---
// EnvConfig holds sensitive environment settings
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	RateLimiter bool   `json:"rateLimiter"`

	// MySQL market data source
	DBHost   string `json:"dbHost"`
	DBPort   int    `json:"dbPort"`
	DBUser   string `json:"dbUser"`
	DBPwd    string `json:"-"`
	DBSchema string `json:"dbSchema"`

	// Optional SSH tunnel in front of MySQL
	SSHHost string `json:"sshHost"`
	SSHUser string `json:"sshUser"`
	SSHPwd  string `json:"-"`

	ChatHistoryPath string   `json:"chatHistoryPath"`
	FrontendUrls    []string `json:"frontendUrls"`
}

// TunnelEnabled reports whether all SSH credentials are present.
func (c *EnvConfig) TunnelEnabled() bool {
	return c.SSHHost != "" && c.SSHUser != "" && c.SSHPwd != ""
}
