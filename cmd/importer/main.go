// Package main is the entry point for the character import CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/config"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "TRPG character import tool",
	Long: `importer normalizes character sheets exported from other tabletop tools
(generic JSON, XML sheets, Foundry VTT, sheet hosts, D&D Beyond, CSV)
into one canonical character record.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(detectCmd)
}

// setupLogging installs a stderr text handler at the configured level
func setupLogging(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid configuration")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return nil
}
