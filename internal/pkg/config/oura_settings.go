package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default endpoint of the Oura V2 API
const DefaultOuraBaseURL = "https://api.ouraring.com/v2/usercollection"

// OuraSettings holds the personal access token and endpoint for the Oura API
type OuraSettings struct {
	AccessToken string `mapstructure:"access_token" validate:"required"`
	BaseURL     string `mapstructure:"base_url" validate:"required,url"`
}

// Validate checks that all fields in OuraSettings are valid
func (s *OuraSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OuraSettings: %w", err)
	}

	return nil
}
