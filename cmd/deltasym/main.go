// cmd/deltasym/main.go — interactive delta-quantity session host.
//
// Usage:
//
//	go run cmd/deltasym/main.go [--prompt "Δ> "] [--journal]
//
// Configuration is read from the environment (DELTASYM_PROMPT,
// DELTASYM_JOURNAL); flags override it.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/physym/deltasym"
	"github.com/physym/deltasym/repl"
)

type config struct {
	Prompt  string `env:"DELTASYM_PROMPT" envDefault:"Δ> "`
	Journal bool   `env:"DELTASYM_JOURNAL"`
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		prompt  string
		journal bool
	)
	cmd := &cobra.Command{
		Use:   "deltasym",
		Short: "Interactive session for delta quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := env.Parse(&cfg); err != nil {
				return fmt.Errorf("parse env: %w", err)
			}
			if cmd.Flags().Changed("prompt") {
				cfg.Prompt = prompt
			}
			if cmd.Flags().Changed("journal") {
				cfg.Journal = journal
			}

			opts := []deltasym.SessionOption{}
			if cfg.Journal {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("build journal logger: %w", err)
				}
				defer logger.Sync() //nolint:errcheck
				opts = append(opts, deltasym.WithJournal(logger))
			}

			session := deltasym.NewSession(opts...)
			deltasym.Install(session)
			defer deltasym.Reset()

			return repl.Run(session, repl.Config{Prompt: cfg.Prompt}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "Δ> ", "session prompt")
	cmd.Flags().BoolVar(&journal, "journal", false, "log namespace writes")
	return cmd
}
