package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"meal-planner/internal/app"
	"meal-planner/internal/auth"
	"meal-planner/internal/config"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate this week's plan, or a variation when one already exists",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			res := rt.App.GenerateNewPlan(ctx)
			if !res.Success {
				return errors.New(res.Error)
			}

			out := cmd.OutOrStdout()
			current := rt.App.GetHistory(ctx).Data.CurrentWeek
			if current != nil && current.ID != res.Data.ID {
				fmt.Fprintf(out, "Nueva variación %s para la semana %d.\n\n", res.Data.ID, res.Data.WeekNumber)
			} else {
				fmt.Fprintf(out, "Nuevo plan %s para la semana %d.\n\n", res.Data.ID, res.Data.WeekNumber)
			}
			printPlan(out, res.Data, "Esta Semana")
			return nil
		}),
	}
}

func showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the displayed plan of the current week",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			res := rt.App.GetHistory(ctx)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res.Data.CurrentWeek)
			}

			current := res.Data.CurrentWeek
			if current == nil {
				fmt.Fprintln(out, "No hay un plan de comidas generado. Usa 'meal-planner generate'.")
				return nil
			}
			printVariations(out, current)
			printPlan(out, current.Displayed(), "Esta Semana")
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")
	return cmd
}

func historyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous weeks",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			res := rt.App.GetHistory(ctx)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res.Data)
			}
			printHistory(out, res.Data.PreviousWeeks)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")
	return cmd
}

func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [id]",
		Short: "Display a variation, or the original plan, for the current week",
		Args:  cobra.ExactArgs(1),
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			res := rt.App.SelectVariation(ctx, args[0])
			if !res.Success {
				return errors.New(res.Error)
			}
			printPlan(cmd.OutOrStdout(), res.Data, "Esta Semana")
			return nil
		}),
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole meal plan history",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			res := rt.App.ClearHistory(ctx)
			if !res.Success {
				return errors.New(res.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Historial borrado.")
			return nil
		}),
	}
}

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the food options plans are drawn from",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			printOptions(cmd.OutOrStdout(), rt.App.Catalog().Data)
			return nil
		}),
	}
}

func tokenCmd() *cobra.Command {
	var (
		ttl     time.Duration
		subject string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token signed with API_TOKEN_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.APITokenSecret == "" {
				return errors.New("API_TOKEN_SECRET is not set")
			}
			token, err := auth.IssueToken(cfg.APITokenSecret, subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "Token lifetime")
	cmd.Flags().StringVar(&subject, "subject", "cli", "Token subject")
	return cmd
}

func metricsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show recent activity and system health",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			activity, err := rt.Metrics.GetDailyActivity(ctx, days)
			if err != nil {
				return fmt.Errorf("failed to fetch metrics: %w", err)
			}
			printMetrics(cmd.OutOrStdout(), activity, rt.Config.DataDir)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&days, "days", "d", 7, "Number of days to report")
	return cmd
}

func metricsCleanupCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "metrics-cleanup",
		Short: "Remove old metric records",
		RunE: withRuntime(func(ctx context.Context, cmd *cobra.Command, rt *app.Runtime, args []string) error {
			affected, err := rt.Metrics.Cleanup(ctx, days)
			if err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully removed %d old metric records.\n", affected)
			return nil
		}),
	}
	cmd.Flags().IntVar(&days, "days", 30, "Keep records for the last N days")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
