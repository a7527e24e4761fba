package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/connector"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AuthCommandHandler encapsulates logic for authorizing against the wearable APIs via CLI.
type AuthCommandHandler struct {
	config *config.RestConfig
	logger logger.Logger
}

// NewAuthCommandHandler initializes and returns an AuthCommandHandler instance with
// configured logger and application configuration.
func NewAuthCommandHandler() (*AuthCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	restConfig, err := loadRestConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &AuthCommandHandler{
		config: restConfig,
		logger: loggerInstance,
	}, nil
}

// AuthPolarCmd runs the Polar AccessLink authorization code flow: it prints
// the authorization URL, waits for the browser redirect on the loopback
// server, exchanges the code for a token, registers the user and stores the
// token at the configured token file.
func (commandHandler *AuthCommandHandler) AuthPolarCmd(cmd *cobra.Command, _ []string) {
	memberOverride, err := cmd.Flags().GetString("member-id")
	if err != nil {
		commandHandler.logger.Error("invalid member-id flag ", err)
		return
	}

	flow, err := connector.NewPolarOAuthFlow(&commandHandler.config.Polar, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Open this URL in a browser to authorize access: ", flow.AuthorizationURL())
	commandHandler.logger.Info("Waiting for the authorization callback on ", commandHandler.config.Polar.RedirectURI)

	ctx, cancel := context.WithTimeout(context.Background(), connector.DefaultAuthorizationTimeout)
	defer cancel()

	code, err := flow.WaitForCallback(ctx)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	token, err := flow.Exchange(ctx, code)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.applyProfileFlags(cmd, token)

	tokenStore := connector.NewFileTokenStore(commandHandler.config.Polar.TokenFile)
	if err := tokenStore.Save(token); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Polar token saved to ", commandHandler.config.Polar.TokenFile)

	accessClient, err := connector.NewPolarAccessClient(&commandHandler.config.Polar, token, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	// The token is already stored; a registration failure can be retried
	if err := accessClient.RegisterUser(ctx, registrationMemberID(memberOverride, token)); err != nil {
		commandHandler.logger.Warn("User registration failed, rerun auth-polar to retry: ", err)
		return
	}

	commandHandler.logger.Info("Polar AccessLink authorization completed for user ", token.XUserID)
}

// registrationMemberID picks the AccessLink registration id: the --member-id
// override when set, otherwise the Polar user id carried by the token.
func registrationMemberID(override string, token *polar.Token) string {
	if override != "" {
		return override
	}
	return strconv.FormatInt(token.XUserID, 10)
}

// applyProfileFlags copies the optional athlete profile flags onto the token
// before it is stored. Unset flags leave the coaching defaults in place.
func (commandHandler *AuthCommandHandler) applyProfileFlags(cmd *cobra.Command, token *polar.Token) {
	if age, err := cmd.Flags().GetInt("age"); err == nil && age > 0 {
		token.Age = &age
	}
	if weight, err := cmd.Flags().GetFloat64("weight"); err == nil && weight > 0 {
		token.WeightKg = &weight
	}
	if height, err := cmd.Flags().GetFloat64("height"); err == nil && height > 0 {
		token.HeightCm = &height
	}
	if gender, err := cmd.Flags().GetString("gender"); err == nil && gender != "" {
		token.Gender = &gender
	}
}

// VerifyOuraCmd checks the configured Oura personal access token against the
// personal info endpoint.
func (commandHandler *AuthCommandHandler) VerifyOuraCmd(_ *cobra.Command, _ []string) {
	ouraClient, err := connector.NewOuraClient(&commandHandler.config.Oura, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := ouraClient.VerifyToken(ctx)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Oura token verified for account ", info.Email)
}

// InitAuthCommands registers authorization-related commands
func InitAuthCommands(rootCmd *cobra.Command) error {
	handler, err := NewAuthCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create auth command handler %w", err)
	}

	var authPolarCmd = &cobra.Command{
		Use:   "auth-polar",
		Short: "Authorize against Polar AccessLink and store the token",
		Run:   handler.AuthPolarCmd,
	}
	authPolarCmd.Flags().StringP("member-id", "", "", "Member id to register with AccessLink (default the Polar user id)")
	authPolarCmd.Flags().IntP("age", "", 0, "Athlete age stored with the token for coaching context")
	authPolarCmd.Flags().Float64P("weight", "", 0, "Athlete weight in kg stored with the token")
	authPolarCmd.Flags().Float64P("height", "", 0, "Athlete height in cm stored with the token")
	authPolarCmd.Flags().StringP("gender", "", "", "Athlete gender stored with the token")
	rootCmd.AddCommand(authPolarCmd)

	var verifyOuraCmd = &cobra.Command{
		Use:   "verify-oura",
		Short: "Verify the configured Oura personal access token",
		Run:   handler.VerifyOuraCmd,
	}
	rootCmd.AddCommand(verifyOuraCmd)

	return nil
}
