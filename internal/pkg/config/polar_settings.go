package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default Polar AccessLink and OAuth2 endpoints
const (
	DefaultPolarBaseURL  = "https://www.polaraccesslink.com/v3"
	DefaultPolarAuthURL  = "https://flow.polar.com/oauth2/authorization"
	DefaultPolarTokenURL = "https://polarremote.com/v2/oauth2/token"
)

// PolarSettings holds the OAuth2 client credentials and endpoints for the
// Polar AccessLink API. The token obtained through the authorization flow
// is stored at TokenFile rather than in this configuration.
type PolarSettings struct {
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`
	RedirectURI  string `mapstructure:"redirect_uri" validate:"required,url"`
	TokenFile    string `mapstructure:"token_file" validate:"required"`
	BaseURL      string `mapstructure:"base_url" validate:"required,url"`
	AuthURL      string `mapstructure:"auth_url" validate:"required,url"`
	TokenURL     string `mapstructure:"token_url" validate:"required,url"`
}

// Validate checks that all fields in PolarSettings are valid
func (s *PolarSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PolarSettings: %w", err)
	}

	return nil
}
