package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/output"
	"github.com/l3aro/go-langsurvey/pkg/language"
)

// Classification is the language of one path, for JSON output
type Classification struct {
	Path      string `json:"path"`
	Extension string `json:"extension,omitempty"`
	Language  string `json:"language,omitempty"`
}

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "Show the language of individual files",
	Long: `Prints the language each path is classified as, using only its
extension. The files do not need to exist. Unrecognized paths show "-".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runClassify(cmd, args, jsonOutput)
	},
}

func init() {
	classifyCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runClassify(cmd *cobra.Command, paths []string, jsonOutput bool) error {
	table := language.Default()

	results := make([]Classification, 0, len(paths))
	for _, p := range paths {
		name, _ := table.Classify(p)
		results = append(results, Classification{
			Path:      p,
			Extension: string(language.ExtensionOf(p)),
			Language:  name,
		})
	}

	if jsonOutput {
		return output.WriteJSON(cmd.OutOrStdout(), results)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range results {
		name := r.Language
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Path, name)
	}
	return tw.Flush()
}
