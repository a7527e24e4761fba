package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST API needs
type RestConfig struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Oura     OuraSettings     `mapstructure:"oura"`
	Polar    PolarSettings    `mapstructure:"polar"`
	Ollama   OllamaSettings   `mapstructure:"ollama"`
}

// Validate checks every settings section of the RestConfig
func (c *RestConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Oura.Validate(); err != nil {
		return err
	}
	if err := c.Polar.Validate(); err != nil {
		return err
	}
	if err := c.Ollama.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML configuration at configPath, applies
// defaults and environment overrides (HEALTH_ prefix, e.g.
// HEALTH_OURA_ACCESS_TOKEN) and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HEALTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8501)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "health.db")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	// Credentials default to empty so the HEALTH_ environment overrides bind
	v.SetDefault("oura.access_token", "")
	v.SetDefault("oura.base_url", DefaultOuraBaseURL)

	v.SetDefault("polar.client_id", "")
	v.SetDefault("polar.client_secret", "")
	v.SetDefault("polar.redirect_uri", "http://localhost:8080")
	v.SetDefault("polar.token_file", "polar_token.json")
	v.SetDefault("polar.base_url", DefaultPolarBaseURL)
	v.SetDefault("polar.auth_url", DefaultPolarAuthURL)
	v.SetDefault("polar.token_url", DefaultPolarTokenURL)

	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3:8b")
}
