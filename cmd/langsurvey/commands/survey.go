package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/config"
	"github.com/l3aro/go-langsurvey/internal/output"
	"github.com/l3aro/go-langsurvey/internal/scanner"
	"github.com/l3aro/go-langsurvey/pkg/language"
	"github.com/l3aro/go-langsurvey/pkg/survey"
)

// surveyCmd represents the survey command
var surveyCmd = &cobra.Command{
	Use:   "survey [path]",
	Short: "List the languages found under a directory",
	Long: `Walks every regular file under the given directory (default: current
directory) and prints the distinct languages in the order they are first
encountered. Languages are decided by file extension only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return runSurvey(cmd, path)
	},
}

func init() {
	surveyCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml or msgpack (default from config)")
	surveyCmd.Flags().BoolP("counts", "c", false, "Show per-language file counts (text format)")
	surveyCmd.Flags().Bool("follow-symlinks", false, "Visit symlinks to files inside the directory")
}

func runSurvey(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("counts") {
		cfg.ShowCounts, _ = cmd.Flags().GetBool("counts")
	}
	if cmd.Flags().Changed("follow-symlinks") {
		cfg.FollowSymlinks, _ = cmd.Flags().GetBool("follow-symlinks")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)
	s := survey.New(language.Default(),
		survey.WithScannerOptions(scanner.Options{FollowSymlinks: cfg.FollowSymlinks}),
		survey.WithLogger(logger),
	)

	res, err := s.Report(path)
	if err != nil {
		logger.Error("survey failed", "root", path, "error", err)
		return fmt.Errorf("surveying %s: %w", path, err)
	}

	return output.Write(cmd.OutOrStdout(), cfg.Format, res, output.Options{
		ShowCounts: cfg.ShowCounts && cfg.Format == config.FormatText,
	})
}
