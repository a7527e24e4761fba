// Package main is the entry point for the health-cli application.
// It initializes the root command and registers the authorization and sync
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/CharlotteLevula/my-health-project/cmd/health-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "health-cli",
		Short: "Wearable data sync CLI tool",
		Long: `health-cli pulls health data from the Oura and Polar AccessLink APIs
into the local database that backs the coaching assistant.

Configuration is read from the YAML file at CONFIG_PATH plus HEALTH_
environment variables; a .env file in the working directory is loaded
automatically. The Polar commands require the OAuth2 client credentials
HEALTH_POLAR_CLIENT_ID and HEALTH_POLAR_CLIENT_SECRET, the Oura commands
require the personal access token HEALTH_OURA_ACCESS_TOKEN.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register authorization commands
	if err := commands.InitAuthCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize auth commands: %w", err)
	}

	// Register sync commands
	if err := commands.InitSyncCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize sync commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
