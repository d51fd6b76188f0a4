// Package main is the entry point for the rs256-cli application. It
// initializes the root command, registers the signing sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "rs256_signing_service/cmd/rs256-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rs256-cli",
		Short: "RS256 signing CLI tool",
		Long: `rs256-cli is a command-line tool for issuing and validating RS256
(RSASSA-PKCS1-v1_5 with SHA-256) signatures. It signs files with PEM-encoded
RSA private keys and verifies signatures against PEM public keys or raw
base64url JWK key components.`,
	}

	if err := commands.InitSignCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
