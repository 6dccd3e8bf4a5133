package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paul-nameless/tg/internal/logger"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tg",
	Short: "A terminal-based Telegram client",
	Long: `tg is a curses-style terminal client for Telegram: a chat list,
a message pane, and a single-line status/input bar, driven entirely
from the keyboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("tg version %s (%s)\n", version, commit)
			return nil
		}
		return run(cmd.Context(), configPath)
	},
}

// Execute runs the root command and maps a returned error to a non-zero
// exit code, matching the teacher's single top-level error boundary.
func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml")
	rootCmd.Flags().Bool("verbose", false, "verbose logging")
	rootCmd.Flags().BoolP("version", "v", false, "print version information")
}
