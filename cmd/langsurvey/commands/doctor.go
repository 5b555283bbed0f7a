package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/healthcheck"
	"github.com/l3aro/go-langsurvey/pkg/language"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, the language table and a survey root",
	Long: `Reports which configuration file is in effect, summarizes the language
table including shadowed extensions, and with --root surveys a directory once
to confirm it can be walked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		root, _ := cmd.Flags().GetString("root")

		result, err := healthcheck.Check(cfg, configFilePath(cmd), language.Default(), root)
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}

		displayDoctorResult(cmd.OutOrStdout(), result)

		if result.HasError() {
			return fmt.Errorf("health check failed: %s cannot be surveyed", root)
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().String("root", "", "Directory to survey as part of the check")
}

func displayDoctorResult(w io.Writer, result *healthcheck.HealthCheckResult) {
	fmt.Fprintln(w, "Configuration")
	if result.ConfigPath == "" {
		fmt.Fprintln(w, "  file:   none (using defaults)")
	} else {
		fmt.Fprintf(w, "  file:   %s (%s)\n", result.ConfigPath, result.ConfigScope)
	}
	fmt.Fprintf(w, "  format: %s\n", result.Format)

	fmt.Fprintln(w, "\nLanguage table")
	fmt.Fprintf(w, "  %d languages, %d extensions\n", result.Languages, result.Extensions)
	for _, s := range result.Shadowed {
		fmt.Fprintf(w, "  %s is claimed by %s and %s; %s wins\n", s.Extension, s.Winner, s.Loser, s.Winner)
	}

	if result.Root == nil {
		return
	}

	fmt.Fprintln(w, "\nSurvey root")
	switch result.Root.Status {
	case "ok":
		fmt.Fprintf(w, "  ✓ %s: %d files, %d languages\n", result.Root.Path, result.Root.Files, result.Root.Languages)
	default:
		fmt.Fprintf(w, "  ✗ %s: %s\n", result.Root.Path, result.Root.Error)
	}
}
