package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	Long: `Guides you through the langsurvey settings and writes them to the
project (./.langsurvey/config.yaml) or global (~/.langsurvey/config.yaml)
configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

// initialConfig pre-fills the form from the config files only, so transient
// LANGSURVEY_* variables are not written back to disk.
func initialConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadFiles()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring existing configuration: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func runInit(cmd *cobra.Command) error {
	cfg := initialConfig(cmd)

	scope := "project"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should the configuration be saved?").
				Options(
					huh.NewOption("This project (./.langsurvey/config.yaml)", "project"),
					huh.NewOption("Global (~/.langsurvey/config.yaml)", "global"),
				).
				Value(&scope),
			huh.NewSelect[string]().
				Title("Default output format").
				Description("Used by 'langsurvey survey' unless --format is given").
				Options(
					huh.NewOption("Text (one language per line)", config.FormatText),
					huh.NewOption("JSON", config.FormatJSON),
					huh.NewOption("YAML", config.FormatYAML),
					huh.NewOption("MessagePack", config.FormatMsgpack),
				).
				Value(&cfg.Format),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show per-language file counts in text output?").
				Value(&cfg.ShowCounts),
			huh.NewConfirm().
				Title("Follow symlinks to files inside the surveyed directory?").
				Description("Directory symlinks are never followed").
				Value(&cfg.FollowSymlinks),
			huh.NewConfirm().
				Title("Enable debug logging?").
				Value(&cfg.Verbose),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	path := config.ProjectConfigFilePath()
	if scope == "global" {
		path = config.GlobalConfigFilePath()
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}
