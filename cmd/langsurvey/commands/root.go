package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/config"
	"github.com/l3aro/go-langsurvey/internal/log"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "langsurvey",
	Short: "langsurvey - Detect the languages used in a project",
	Long: `langsurvey walks a project directory and reports which programming
languages it contains, judged by file extensions only.

Commands:
  survey      List the languages found under a directory
  classify    Show the language of individual files
  languages   Print the ordered extension table
  tree        Display the file tree with each file's language
  init        Create a configuration file interactively
  doctor      Check configuration, table and a survey root

Use "langsurvey [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "Enable debug logging")
	RootCmd.PersistentFlags().String("config", "", "Config file to use instead of the global and project files")

	RootCmd.AddCommand(surveyCmd)
	RootCmd.AddCommand(classifyCmd)
	RootCmd.AddCommand(languagesCmd)
	RootCmd.AddCommand(treeCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(doctorCmd)
}

// loadConfig loads the configuration, from --config when given and from the
// layered files otherwise, and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg, writing to the command's stderr.
func newLogger(cmd *cobra.Command, cfg *config.Config) log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	return log.New(log.LoggerConfig{
		Level:      level,
		JSONOutput: cfg.LogJSON,
		Output:     cmd.ErrOrStderr(),
	})
}

// configFilePath returns the config file in effect: the --config value when
// given, otherwise the highest-priority file that exists.
func configFilePath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.EffectiveConfigFilePath()
}
