package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the bind address of the REST API
type ServerSettings struct {
	Host            string   `mapstructure:"host" validate:"required"`
	Port            int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"`
}

// Address returns the host:port string the HTTP server listens on
func (s *ServerSettings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}
