package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meal-planner/internal/app"
	"meal-planner/internal/config"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "meal-planner",
		Short:        "Planificador de Comidas - weekly breakfast and lunch planner",
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(selectCmd())
	rootCmd.AddCommand(clearCmd())
	rootCmd.AddCommand(optionsCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(metricsCleanupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withRuntime loads the configuration, opens the runtime for the duration
// of run and closes it afterwards.
func withRuntime(run func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewFromEnv()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		rt, err := app.Open(cfg)
		if err != nil {
			return err
		}
		defer rt.Close()

		return run(cmd.Context(), cmd, rt, args)
	}
}
