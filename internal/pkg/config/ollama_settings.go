package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OllamaSettings holds the endpoint and model used for assistant completions
type OllamaSettings struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Model   string `mapstructure:"model" validate:"required"`
}

// Validate checks that all fields in OllamaSettings are valid
func (s *OllamaSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OllamaSettings: %w", err)
	}

	return nil
}
